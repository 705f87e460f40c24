// Package pipeline provides the high-level orchestration for corpus sampling runs.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/jonathan/docket-sampler/internal/artifacts"
	"github.com/jonathan/docket-sampler/internal/db"
	"github.com/jonathan/docket-sampler/internal/extraction"
	"github.com/jonathan/docket-sampler/internal/materialize"
	"github.com/jonathan/docket-sampler/internal/observability"
	"github.com/jonathan/docket-sampler/internal/selection"
	"github.com/jonathan/docket-sampler/internal/types"
)

// progressInterval controls how often extraction progress is printed.
const progressInterval = 10

// RunOptions holds configuration for running the sampling pipeline
type RunOptions struct {
	DataDir     string
	OutDir      string
	Criteria    selection.Criteria
	Verbose     bool
	DatabaseURL string

	// Materialization settings, used by RunAll
	DataRoot  string
	SampleDir string
}

// SelectionOutcome bundles everything a selection pass produced
type SelectionOutcome struct {
	Cases    []types.CaseSummary
	Report   types.SelectionReport
	JSONPath string
	IDsPath  string
}

// RunSelection orchestrates a full selection pass: scan the corpus, extract
// metrics from a stride sample, select cases, and write the artifacts.
func RunSelection(ctx context.Context, opts RunOptions) (*SelectionOutcome, error) {

	// Initialize observability printer for verbose output
	printer := observability.NewPrinter(os.Stdout)

	logf := func(format string, args ...any) {
		fmt.Printf(format, args...)
	}

	// Initialize database connection if configured
	var database *db.DB
	var runID uuid.UUID
	if opts.DatabaseURL != "" {
		var err error
		database, err = db.Connect(ctx, opts.DatabaseURL)
		if err != nil {
			fmt.Printf("Warning: Failed to connect to database: %v\n", err)
			fmt.Printf("Continuing without database persistence...\n")
		} else {
			defer database.Close()
			if err := database.EnsureSchema(ctx); err != nil {
				fmt.Printf("Warning: Failed to ensure database schema: %v\n", err)
				fmt.Printf("Continuing without database persistence...\n")
				database = nil
			} else if opts.Verbose {
				fmt.Printf("[VERBOSE] Connected to database\n")
			}
		}
	}

	if database != nil {
		var err error
		runID, err = database.CreateRun(ctx, opts.DataDir, opts.Criteria.TargetCount)
		if err != nil {
			fmt.Printf("Warning: Failed to create database run: %v\n", err)
		} else if opts.Verbose {
			fmt.Printf("[VERBOSE] Created database run: %s\n", runID)
		}
	}

	fmt.Printf("Step 1/4: Scanning corpus in %s...\n", opts.DataDir)
	files, err := extraction.ListCaseFiles(opts.DataDir)
	if err != nil {
		return nil, failRun(ctx, database, runID, fmt.Errorf("corpus scan failed: %w", err))
	}
	fmt.Printf("Found %s JSON files to analyze\n", humanize.Comma(int64(len(files))))

	sampled := extraction.Stride(files, opts.Criteria.SampleStride)

	fmt.Printf("Step 2/4: Extracting metrics from %d sampled files...\n", len(sampled))
	summaries, failures := extraction.AnalyzeFiles(sampled, progressInterval, logf)
	if failures > 0 {
		fmt.Printf("Warning: %d files could not be analyzed and were skipped\n", failures)
	}

	fmt.Printf("Step 3/4: Selecting up to %d sample cases...\n", opts.Criteria.TargetCount)
	result, err := selection.Select(summaries, opts.Criteria)
	if err != nil {
		return nil, failRun(ctx, database, runID, fmt.Errorf("sample selection failed: %w", err))
	}
	fmt.Printf("Found %d cases matching criteria\n", result.EligibleCount)

	report := types.SelectionReport{
		CorpusFiles:    len(files),
		SampledFiles:   len(sampled),
		ParseFailures:  failures,
		Eligible:       result.EligibleCount,
		Selected:       len(result.Cases),
		DistinctCourts: result.DistinctCourts(),
		TargetCount:    opts.Criteria.TargetCount,
	}
	if report.Truncated() {
		fmt.Printf("Warning: only %d of %d requested cases were selectable\n", report.Selected, report.TargetCount)
	}

	fmt.Printf("Step 4/4: Writing selection artifacts...\n")
	jsonPath, idsPath, err := artifacts.WriteSelection(opts.OutDir, result.Cases)
	if err != nil {
		return nil, failRun(ctx, database, runID, fmt.Errorf("writing artifacts failed: %w", err))
	}

	printSelectionList(result.Cases)

	if opts.Verbose {
		printer.PrintSelection(result.Cases)
		printer.PrintReport(&report)
	}

	// Save artifacts and close out the run if connected
	if database != nil && runID != uuid.Nil {
		_ = database.SaveArtifact(ctx, runID, db.StepSelection, result.Cases)
		_ = database.SaveTextArtifact(ctx, runID, db.StepIDList, artifacts.FormatIDs(result.Cases))
		_ = database.SaveArtifact(ctx, runID, db.StepReport, report)
		if err := database.CompleteRun(ctx, runID, db.StatusCompleted, &report); err != nil {
			fmt.Printf("Warning: Failed to record run completion: %v\n", err)
		}
	}

	fmt.Printf("\nResults saved to %s\n", jsonPath)
	fmt.Printf("Case IDs saved to %s\n", idsPath)

	return &SelectionOutcome{
		Cases:    result.Cases,
		Report:   report,
		JSONPath: jsonPath,
		IDsPath:  idsPath,
	}, nil
}

// RunAll runs the selection pass and then materializes the sample-data tree
// from its result.
func RunAll(ctx context.Context, opts RunOptions) error {
	outcome, err := RunSelection(ctx, opts)
	if err != nil {
		return err
	}

	logf := func(format string, args ...any) {
		fmt.Printf(format, args...)
	}

	fmt.Printf("\nMaterializing sample data into %s...\n", opts.SampleDir)
	result, err := materialize.Run(outcome.Cases, materialize.Options{
		DataRoot: opts.DataRoot,
		OutDir:   opts.SampleDir,
		Logf:     logf,
	})
	if err != nil {
		return fmt.Errorf("materialization failed: %w", err)
	}

	fmt.Printf("\nSuccessfully materialized %d cases", result.CasesCopied)
	if result.PDFsCopied > 0 {
		fmt.Printf(" and %d PDFs", result.PDFsCopied)
	}
	fmt.Printf(" into %s\n", opts.SampleDir)
	return nil
}

// failRun marks the database run failed, then hands the original error back.
func failRun(ctx context.Context, database *db.DB, runID uuid.UUID, err error) error {
	if database != nil && runID != uuid.Nil {
		_ = database.FailRun(ctx, runID)
	}
	return err
}

// printSelectionList prints the full numbered selection, one block per case.
func printSelectionList(cases []types.CaseSummary) {
	fmt.Printf("\nSelected %d sample cases:\n", len(cases))
	for i := range cases {
		summary := &cases[i]
		fmt.Printf("\n%d. Case ID: %d\n", i+1, summary.ID)
		fmt.Printf("   Name: %s\n", summary.DisplayName())
		fmt.Printf("   Court: %s\n", summary.Court)
		fmt.Printf("   Filed: %s\n", summary.FiledDate())
		fmt.Printf("   Status: %s\n", summary.Status())
		fmt.Printf("   File size: %s bytes\n", humanize.Comma(summary.FileSize))
		fmt.Printf("   Documents: %d total, %d available\n", summary.TotalDocs, summary.AvailableDocs)
	}
}
