// Package main implements the docket_sampler CLI for corpus sample curation.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/docket-sampler/internal/extraction"
	"github.com/jonathan/docket-sampler/internal/observability"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Extract and display the metrics of a single case file",
	Long:  "Parses one case docket JSON file, derives its metric summary (document counts, file size, court, dates), and prints it. Optionally writes the summary as JSON.",
	RunE:  runInspect,
}

var (
	inspectInput  string
	inspectOutput string
)

func init() {
	inspectCmd.Flags().StringVarP(&inspectInput, "in", "i", "", "Path to input case JSON file (required)")
	inspectCmd.Flags().StringVarP(&inspectOutput, "out", "o", "", "Path to output summary JSON file (optional)")

	if err := inspectCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(inspectCmd)
}

func runInspect(_ *cobra.Command, _ []string) error {
	summary, err := extraction.Extract(inspectInput)
	if err != nil {
		return fmt.Errorf("failed to extract case metrics: %w", err)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintCaseSummary(summary)

	if inspectOutput != "" {
		jsonOutput, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal summary to JSON: %w", err)
		}

		outputDir := filepath.Dir(inspectOutput)
		if outputDir != "" && outputDir != "." {
			if err := os.MkdirAll(outputDir, 0755); err != nil {
				return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
			}
		}

		if err := os.WriteFile(inspectOutput, jsonOutput, 0644); err != nil {
			return fmt.Errorf("failed to write summary to %s: %w", inspectOutput, err)
		}
		fmt.Printf("Successfully wrote case summary to %s\n", inspectOutput)
	}

	return nil
}
