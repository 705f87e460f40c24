// Package main implements the docket_sampler CLI for corpus sample curation.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/docket-sampler/internal/db"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded sampling runs",
	Long:  "Lists recent sampling runs from the PostgreSQL run history, newest first.",
	RunE:  runHistory,
}

var (
	historyLimit       int
	historyDatabaseURL string
)

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of runs to list")
	historyCmd.Flags().StringVar(&historyDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	databaseURL := historyDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return fmt.Errorf("database URL is required: set --db-url or the DATABASE_URL environment variable")
	}

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("failed to ensure database schema: %w", err)
	}

	runs, err := database.ListRuns(ctx, historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}
	if len(runs) == 0 {
		fmt.Println("No sampling runs recorded yet.")
		return nil
	}

	headers := []string{"Run", "Data dir", "Target", "Selected", "Eligible", "Status", "Started"}
	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		rows = append(rows, []string{
			shortRunID(run.ID),
			run.DataDir,
			strconv.Itoa(run.TargetCount),
			strconv.Itoa(run.Selected),
			strconv.Itoa(run.Eligible),
			run.Status,
			humanize.Time(run.CreatedAt),
		})
	}

	// Numeric columns read better right-aligned (columns are 1-based)
	fmt.Println(renderTable(headers, rows, 3, 4, 5))
	return nil
}

// shortRunID keeps the first UUID block, which is enough to tell
// recent runs apart without swamping the table.
func shortRunID(id uuid.UUID) string {
	s := id.String()
	if i := strings.IndexByte(s, '-'); i > 0 {
		return s[:i]
	}
	return s
}
