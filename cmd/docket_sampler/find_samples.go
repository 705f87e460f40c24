// Package main implements the docket_sampler CLI for corpus sample curation.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/docket-sampler/internal/pipeline"
	"github.com/jonathan/docket-sampler/internal/selection"
)

var findSamplesCmd = &cobra.Command{
	Use:   "find-samples",
	Short: "Select a court-diverse sample of cases from a docket corpus",
	Long:  "Scans a directory of case JSON files, extracts per-case metrics from every k-th file, filters and ranks the results, and writes the selected sample as selected_samples.json plus sample_ids.txt.",
	RunE:  runFindSamples,
}

var (
	findSamplesDataDir     string
	findSamplesOutDir      string
	findSamplesTarget      int
	findSamplesMinDocs     int
	findSamplesMaxDocs     int
	findSamplesMinSize     int64
	findSamplesMaxSize     int64
	findSamplesStride      int
	findSamplesVerbose     bool
	findSamplesDatabaseURL string
)

func init() {
	findSamplesCmd.Flags().StringVarP(&findSamplesDataDir, "data-dir", "d", "", "Directory of case JSON files (required)")
	findSamplesCmd.Flags().StringVarP(&findSamplesOutDir, "out", "o", ".", "Directory for selection artifacts")
	findSamplesCmd.Flags().IntVar(&findSamplesTarget, "target", selection.DefaultTargetCount, "How many cases to select")
	findSamplesCmd.Flags().IntVar(&findSamplesMinDocs, "min-docs", selection.DefaultMinAvailableDocs, "Minimum available documents (inclusive)")
	findSamplesCmd.Flags().IntVar(&findSamplesMaxDocs, "max-docs", selection.DefaultMaxAvailableDocs, "Maximum available documents (inclusive)")
	findSamplesCmd.Flags().Int64Var(&findSamplesMinSize, "min-size", selection.DefaultMinFileSize, "Minimum case file size in bytes (inclusive)")
	findSamplesCmd.Flags().Int64Var(&findSamplesMaxSize, "max-size", selection.DefaultMaxFileSize, "Maximum case file size in bytes (inclusive)")
	findSamplesCmd.Flags().IntVar(&findSamplesStride, "stride", selection.DefaultSampleStride, "Analyze every k-th corpus file")
	findSamplesCmd.Flags().BoolVarP(&findSamplesVerbose, "verbose", "v", false, "Print detailed debug information")

	// Database URL for run history persistence
	findSamplesCmd.Flags().StringVar(&findSamplesDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	if err := findSamplesCmd.MarkFlagRequired("data-dir"); err != nil {
		panic(fmt.Sprintf("failed to mark data-dir flag as required: %v", err))
	}

	rootCmd.AddCommand(findSamplesCmd)
}

func runFindSamples(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	if _, err := os.Stat(findSamplesDataDir); os.IsNotExist(err) {
		return fmt.Errorf("data directory not found: %s", findSamplesDataDir)
	}

	criteria := selection.Criteria{
		TargetCount:      findSamplesTarget,
		MinAvailableDocs: findSamplesMinDocs,
		MaxAvailableDocs: findSamplesMaxDocs,
		MinFileSize:      findSamplesMinSize,
		MaxFileSize:      findSamplesMaxSize,
		SampleStride:     findSamplesStride,
	}
	if err := criteria.Validate(); err != nil {
		return fmt.Errorf("invalid selection criteria: %w", err)
	}

	databaseURL := findSamplesDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}

	_, err := pipeline.RunSelection(ctx, pipeline.RunOptions{
		DataDir:     findSamplesDataDir,
		OutDir:      findSamplesOutDir,
		Criteria:    criteria,
		Verbose:     findSamplesVerbose,
		DatabaseURL: databaseURL,
	})
	return err
}
