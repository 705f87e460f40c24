// Package main provides the entry point for the docket-sampler CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "docket_sampler",
	Short: "Docket corpus sampling tool",
	Long:  "Docket Sampler carves a small, representative sample out of a large court docket corpus: it extracts per-case metrics, selects a court-diverse set of cases, and materializes a self-contained sample-data tree for development and testing.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
