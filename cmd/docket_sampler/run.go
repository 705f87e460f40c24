// Package main implements the docket_sampler CLI for corpus sample curation.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/docket-sampler/internal/config"
	"github.com/jonathan/docket-sampler/internal/pipeline"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run selection and materialization end-to-end",
	Long: `Runs the whole sampling process in one go: scan the corpus, extract
per-case metrics, select a court-diverse sample, write the selection
artifacts, and materialize the sample-data tree.

Configuration can be loaded from a JSON file using --config.
Command-line arguments override config file values.`,
	RunE: runPipeline,
}

var (
	runConfigPath  string
	runDataDir     string
	runOutDir      string
	runDataRoot    string
	runSampleDir   string
	runTarget      int
	runMinDocs     int
	runMaxDocs     int
	runMinSize     int64
	runMaxSize     int64
	runStride      int
	runVerbose     bool
	runDatabaseURL string
)

func init() {
	// Config file flag (processed before everything else)
	runCmd.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCmd.Flags().StringVarP(&runDataDir, "data-dir", "d", "", "Directory of case JSON files")
	runCmd.Flags().StringVarP(&runOutDir, "out", "o", "", "Directory for selection artifacts")
	runCmd.Flags().StringVar(&runDataRoot, "data-root", "", "Directory containing the recap/ PDF tree")
	runCmd.Flags().StringVar(&runSampleDir, "sample-dir", "", "Destination directory for the sample tree")
	runCmd.Flags().IntVar(&runTarget, "target", 0, "How many cases to select")
	runCmd.Flags().IntVar(&runMinDocs, "min-docs", 0, "Minimum available documents (inclusive)")
	runCmd.Flags().IntVar(&runMaxDocs, "max-docs", 0, "Maximum available documents (inclusive)")
	runCmd.Flags().Int64Var(&runMinSize, "min-size", 0, "Minimum case file size in bytes (inclusive)")
	runCmd.Flags().Int64Var(&runMaxSize, "max-size", 0, "Maximum case file size in bytes (inclusive)")
	runCmd.Flags().IntVar(&runStride, "stride", 0, "Analyze every k-th corpus file")
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed debug information")

	// Database URL for run history persistence
	runCmd.Flags().StringVar(&runDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	// Note: --data-dir is not marked required here because it can come
	// from the config file. We validate after merging.

	rootCmd.AddCommand(runCmd)
}

func runPipeline(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if runConfigPath != "" {
		loadedCfg, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg

		if runVerbose {
			fmt.Printf("Loaded config from: %s\n", runConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("data-dir") {
		cfg.DataDir = runDataDir
	}
	if cmd.Flags().Changed("out") {
		cfg.OutDir = runOutDir
	}
	if cmd.Flags().Changed("data-root") {
		cfg.DataRoot = runDataRoot
	}
	if cmd.Flags().Changed("sample-dir") {
		cfg.SampleDir = runSampleDir
	}
	if cmd.Flags().Changed("target") {
		cfg.TargetCount = runTarget
	}
	if cmd.Flags().Changed("min-docs") {
		cfg.MinAvailableDocs = runMinDocs
	}
	if cmd.Flags().Changed("max-docs") {
		cfg.MaxAvailableDocs = runMaxDocs
	}
	if cmd.Flags().Changed("min-size") {
		cfg.MinFileSize = runMinSize
	}
	if cmd.Flags().Changed("max-size") {
		cfg.MaxFileSize = runMaxSize
	}
	if cmd.Flags().Changed("stride") {
		cfg.SampleStride = runStride
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = runDatabaseURL
	}

	// Step 3: Merge with defaults for anything still unset
	cfg = cfg.MergeWithDefaults(config.DefaultConfig())

	// Step 4: Validate the merged configuration
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	criteria := cfg.Criteria()
	if err := criteria.Validate(); err != nil {
		return fmt.Errorf("invalid selection criteria: %w", err)
	}

	return pipeline.RunAll(ctx, pipeline.RunOptions{
		DataDir:     cfg.DataDir,
		OutDir:      cfg.OutDir,
		Criteria:    criteria,
		Verbose:     cfg.Verbose,
		DatabaseURL: cfg.DatabaseURL,
		DataRoot:    cfg.DataRoot,
		SampleDir:   cfg.SampleDir,
	})
}
