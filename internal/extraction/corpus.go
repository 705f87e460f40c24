// Package extraction reduces raw case docket files to flat metric summaries.
package extraction

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/jonathan/docket-sampler/internal/types"
)

// ListCaseFiles returns every .json file directly under dir in lexicographic
// order. A missing or empty directory yields an empty listing, not an error;
// callers that need the directory to exist should check up front.
func ListCaseFiles(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to list case files in %s: %w", dir, err)
	}
	// Glob output is already sorted, but the stride contract depends on a
	// stable listing order, so make it explicit.
	sort.Strings(files)
	return files, nil
}

// Stride keeps every k-th file starting from the first. A stride of one or
// less keeps the whole listing.
func Stride(files []string, k int) []string {
	if k <= 1 {
		return files
	}
	sampled := make([]string, 0, (len(files)+k-1)/k)
	for i := 0; i < len(files); i += k {
		sampled = append(sampled, files[i])
	}
	return sampled
}

// AnalyzeFiles extracts a summary from every path, skipping files that fail
// to parse and reporting the skip through logf. Progress is logged every
// progressEvery files when positive. Returns the summaries in input order
// and the number of files skipped.
func AnalyzeFiles(paths []string, progressEvery int, logf func(format string, args ...any)) ([]types.CaseSummary, int) {
	if logf == nil {
		logf = func(string, ...any) {}
	}

	summaries := make([]types.CaseSummary, 0, len(paths))
	failures := 0
	for i, path := range paths {
		if progressEvery > 0 && i%progressEvery == 0 {
			logf("Progress: %d/%d\n", i, len(paths))
		}

		summary, err := Extract(path)
		if err != nil {
			logf("Warning: failed to analyze %s: %v\n", path, err)
			failures++
			continue
		}
		summaries = append(summaries, *summary)
	}
	return summaries, failures
}
