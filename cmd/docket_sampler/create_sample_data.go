// Package main implements the docket_sampler CLI for corpus sample curation.
package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/docket-sampler/internal/artifacts"
	"github.com/jonathan/docket-sampler/internal/materialize"
)

var createSampleDataCmd = &cobra.Command{
	Use:   "create-sample-data",
	Short: "Materialize a sample-data tree from a selection artifact",
	Long:  "Reads a selected_samples.json artifact and copies the case files into <out>/docket-data/. When the lead case has more than 10 available documents its PDF directories are copied wholesale into <out>/sata/recap/. Finishes by writing a README manifest describing the sample.",
	RunE:  runCreateSampleData,
}

var (
	createSampleDataSamples  string
	createSampleDataDataRoot string
	createSampleDataOut      string
)

func init() {
	createSampleDataCmd.Flags().StringVarP(&createSampleDataSamples, "samples", "s", artifacts.SelectionFile, "Path to the selection JSON artifact")
	createSampleDataCmd.Flags().StringVar(&createSampleDataDataRoot, "data-root", filepath.Join("data", "sata"), "Directory containing the recap/ PDF tree")
	createSampleDataCmd.Flags().StringVarP(&createSampleDataOut, "out", "o", "sample-data", "Destination directory for the sample tree")

	rootCmd.AddCommand(createSampleDataCmd)
}

func runCreateSampleData(_ *cobra.Command, _ []string) error {
	selected, err := artifacts.ReadSelection(createSampleDataSamples)
	if err != nil {
		return fmt.Errorf("failed to load selection: %w", err)
	}
	if len(selected) == 0 {
		return fmt.Errorf("selection %s is empty; run find-samples first", createSampleDataSamples)
	}

	fmt.Printf("Creating sample dataset with %d cases...\n\n", len(selected))

	result, err := materialize.Run(selected, materialize.Options{
		DataRoot: createSampleDataDataRoot,
		OutDir:   createSampleDataOut,
		Logf: func(format string, args ...any) {
			fmt.Printf(format, args...)
		},
	})
	if err != nil {
		return fmt.Errorf("failed to materialize sample data: %w", err)
	}

	fmt.Printf("\nSuccessfully created sample dataset in %s\n", createSampleDataOut)
	fmt.Printf("  Cases copied: %d\n", result.CasesCopied)
	if result.PDFsCopied > 0 {
		fmt.Printf("  PDF directories copied: %d (%d PDFs)\n", result.PDFDirsCopied, result.PDFsCopied)
	}
	if len(result.SkippedDirs) > 0 {
		fmt.Printf("  Missing PDF directories skipped: %d\n", len(result.SkippedDirs))
	}
	return nil
}
