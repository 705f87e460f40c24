// Package artifacts reads and writes the on-disk outputs of a selection run.
package artifacts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/docket-sampler/internal/types"
)

const (
	// SelectionFile is the JSON array of selected case summaries.
	SelectionFile = "selected_samples.json"
	// IDFile is the newline-terminated list of selected case ids.
	IDFile = "sample_ids.txt"
)

// WriteSelection persists the ordered selection under dir, as both the full
// JSON artifact and the bare id list. Returns the two paths written.
func WriteSelection(dir string, cases []types.CaseSummary) (jsonPath, idsPath string, err error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", "", fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	// An empty selection still writes a valid JSON array, not null.
	if cases == nil {
		cases = []types.CaseSummary{}
	}

	jsonPath = filepath.Join(dir, SelectionFile)
	jsonBytes, err := json.MarshalIndent(cases, "", "  ")
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal selection: %w", err)
	}
	if err := os.WriteFile(jsonPath, jsonBytes, 0644); err != nil {
		return "", "", fmt.Errorf("failed to write selection to %s: %w", jsonPath, err)
	}

	idsPath = filepath.Join(dir, IDFile)
	if err := os.WriteFile(idsPath, []byte(FormatIDs(cases)), 0644); err != nil {
		return "", "", fmt.Errorf("failed to write id list to %s: %w", idsPath, err)
	}

	return jsonPath, idsPath, nil
}

// FormatIDs renders the id list artifact: one case id per line, each line
// newline-terminated.
func FormatIDs(cases []types.CaseSummary) string {
	var sb strings.Builder
	for i := range cases {
		fmt.Fprintf(&sb, "%d\n", cases[i].ID)
	}
	return sb.String()
}

// ReadSelection loads a previously written selection artifact. The order of
// the returned cases is the selection order.
func ReadSelection(path string) ([]types.CaseSummary, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read selection file %s: %w", path, err)
	}

	var cases []types.CaseSummary
	if err := json.Unmarshal(content, &cases); err != nil {
		return nil, fmt.Errorf("failed to parse selection file %s: %w", path, err)
	}

	return cases, nil
}
