// Package materialize copies a selected sample of cases, plus the PDF documents of its lead case, into a self-contained sample-data tree.
package materialize

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/docket-sampler/internal/extraction"
	"github.com/jonathan/docket-sampler/internal/types"
)

const (
	// docketSubdir holds the copied case JSON files.
	docketSubdir = "docket-data"
	// readmeFile is the manifest written at the sample root.
	readmeFile = "README.md"
	// pdfCopyThreshold is the available-document count the lead case must
	// exceed before its PDF directories are pulled into the sample.
	pdfCopyThreshold = 10
)

// recapSubdir holds the copied PDF trees, mirroring the production layout.
var recapSubdir = filepath.Join("sata", "recap")

// Options configures a materialization run.
type Options struct {
	// DataRoot is the directory containing the production recap/ PDF tree.
	DataRoot string
	// OutDir is the sample-data directory to build.
	OutDir string
	// Logf receives progress and warning lines. Nil silences them.
	Logf func(format string, args ...any)
}

// Result reports what a materialization run produced.
type Result struct {
	CasesCopied   int
	PDFDirsCopied int
	PDFsCopied    int
	// SkippedDirs lists referenced PDF directories that were missing at
	// the source. They are warned about, never fatal.
	SkippedDirs []string
}

// Run builds the sample-data tree for a selection: every case file is copied
// into docket-data/, and when the lead case carries more than
// pdfCopyThreshold available documents its PDF directories are copied
// wholesale under sata/recap/. A README manifest is written last.
func Run(selection []types.CaseSummary, opts Options) (*Result, error) {
	logf := opts.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	docketDir := filepath.Join(opts.OutDir, docketSubdir)
	recapDir := filepath.Join(opts.OutDir, recapSubdir)
	if err := os.MkdirAll(docketDir, 0755); err != nil {
		return nil, &Error{Message: fmt.Sprintf("failed to create %s", docketDir), Cause: err}
	}
	if err := os.MkdirAll(recapDir, 0755); err != nil {
		return nil, &Error{Message: fmt.Sprintf("failed to create %s", recapDir), Cause: err}
	}

	result := &Result{}
	for i := range selection {
		summary := &selection[i]
		logf("%d. Copying case %d: %s\n", i+1, summary.ID, summary.DisplayName())
		logf("   Court: %s, available PDFs: %d\n", summary.Court, summary.AvailableDocs)

		dest := filepath.Join(docketDir, fmt.Sprintf("%d.json", summary.ID))
		if err := copyFile(summary.Filepath, dest); err != nil {
			return nil, &Error{Message: fmt.Sprintf("failed to copy case %d", summary.ID), Cause: err}
		}
		result.CasesCopied++

		// Only the lead case brings its PDFs along, and only when it has
		// enough of them to make the sample browsable.
		if i == 0 && summary.AvailableDocs > pdfCopyThreshold {
			if err := copyLeadCasePDFs(summary, opts, result, logf); err != nil {
				return nil, err
			}
		}
	}

	readmePath := filepath.Join(opts.OutDir, readmeFile)
	if err := WriteREADME(readmePath, selection, result); err != nil {
		return nil, &Error{Message: "failed to write README manifest", Cause: err}
	}

	return result, nil
}

// copyLeadCasePDFs re-reads the lead case record to discover which recap
// directories its documents live in, then copies each one. A record that no
// longer parses is a warning, not a failure: the case JSON itself already
// made it into the sample.
func copyLeadCasePDFs(summary *types.CaseSummary, opts Options, result *Result, logf func(string, ...any)) error {
	record, err := extraction.LoadCaseRecord(summary.Filepath)
	if err != nil {
		logf("Warning: failed to re-read case %d for PDF discovery: %v\n", summary.ID, err)
		return nil
	}

	dirs, malformed := PDFDirectories(record)
	for _, path := range malformed {
		logf("Warning: skipping document path with unexpected shape: %s\n", path)
	}

	for _, dir := range dirs {
		src := filepath.Join(opts.DataRoot, "recap", dir)
		dst := filepath.Join(opts.OutDir, recapSubdir, dir)

		if _, err := os.Stat(src); err != nil {
			logf("Warning: PDF directory not found: %s\n", src)
			result.SkippedDirs = append(result.SkippedDirs, dir)
			continue
		}

		logf("   Copying PDF directory %s...\n", dir)
		_, pdfs, err := copyTree(src, dst)
		if err != nil {
			return &Error{Message: fmt.Sprintf("failed to copy PDF directory %s", dir), Cause: err}
		}
		result.PDFDirsCopied++
		result.PDFsCopied += pdfs
		logf("   Copied %d PDFs\n", pdfs)
	}

	return nil
}
