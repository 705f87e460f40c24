// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/jonathan/docket-sampler/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintCaseSummary outputs a human-readable view of one extracted case.
func (p *Printer) PrintCaseSummary(summary *types.CaseSummary) {
	if summary == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Case:      %d\n", summary.ID))
	sb.WriteString(fmt.Sprintf("Name:      %s\n", summary.DisplayName()))
	sb.WriteString(fmt.Sprintf("Court:     %s\n", summary.Court))
	sb.WriteString(fmt.Sprintf("Filed:     %s\n", summary.FiledDate()))
	sb.WriteString(fmt.Sprintf("Status:    %s\n", summary.Status()))
	sb.WriteString(fmt.Sprintf("File size: %s bytes\n", humanize.Comma(summary.FileSize)))
	sb.WriteString(fmt.Sprintf("Documents: %d available of %d total", summary.AvailableDocs, summary.TotalDocs))

	p.printBox("CASE SUMMARY", sb.String())
}

// PrintSelection outputs the top of the final selection with per-case detail.
func (p *Printer) PrintSelection(cases []types.CaseSummary) {
	if len(cases) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Selected %d cases:\n\n", len(cases)))

	count := min(len(cases), maxItemsToShow)
	for i := 0; i < count; i++ {
		summary := &cases[i]
		sb.WriteString(fmt.Sprintf("#%d  Case %d (%s)\n", i+1, summary.ID, summary.Court))
		name := summary.DisplayName()
		if len(name) > 45 {
			name = name[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("    %s\n", name))
		sb.WriteString(fmt.Sprintf("    PDFs: %d, size: %s bytes\n", summary.AvailableDocs, humanize.Comma(summary.FileSize)))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(cases) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more cases", len(cases)-maxItemsToShow))
	}

	p.printBox("SELECTED SAMPLE CASES", sb.String())
}

// PrintReport outputs the run statistics of a selection pass, including an
// explicit truncation notice when the pool came up short.
func (p *Printer) PrintReport(report *types.SelectionReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Corpus files:    %s\n", humanize.Comma(int64(report.CorpusFiles))))
	sb.WriteString(fmt.Sprintf("Sampled files:   %d\n", report.SampledFiles))
	sb.WriteString(fmt.Sprintf("Parse failures:  %d\n", report.ParseFailures))
	sb.WriteString(fmt.Sprintf("Eligible cases:  %d\n", report.Eligible))
	sb.WriteString(fmt.Sprintf("Selected cases:  %d of %d requested\n", report.Selected, report.TargetCount))
	sb.WriteString(fmt.Sprintf("Distinct courts: %d", report.DistinctCourts))
	if report.Truncated() {
		sb.WriteString(fmt.Sprintf("\n\n⚠ Selection truncated: short by %d cases", report.Shortfall()))
	}

	p.printBox("SELECTION REPORT", sb.String())
}
