// Package materialize copies a selected sample of cases, plus the PDF documents of its lead case, into a self-contained sample-data tree.
package materialize

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/jonathan/docket-sampler/internal/types"
)

// WriteREADME renders the manifest for a materialized sample tree: what the
// directory holds, which cases were selected, and how the layout mirrors the
// production data.
func WriteREADME(path string, selection []types.CaseSummary, result *Result) error {
	var sb strings.Builder

	sb.WriteString("# Sample Data Directory\n\n")
	sb.WriteString("This directory contains a small subset of the full docket corpus for development and testing.\n\n")

	sb.WriteString("## Contents\n\n")
	fmt.Fprintf(&sb, "- **%d JSON case files** in `docket-data/`\n", result.CasesCopied)
	if result.PDFsCopied > 0 {
		fmt.Fprintf(&sb, "- **%d PDF documents** for the lead case in `sata/recap/`\n", result.PDFsCopied)
	}
	sb.WriteString("\n## Selected Cases\n\n")

	for i := range selection {
		summary := &selection[i]
		fmt.Fprintf(&sb, "%d. **Case %d**: %s\n", i+1, summary.ID, summary.DisplayName())
		fmt.Fprintf(&sb, "   - Court: %s\n", summary.Court)
		fmt.Fprintf(&sb, "   - Filed: %s\n", summary.FiledDate())
		fmt.Fprintf(&sb, "   - Status: %s\n", summary.Status())
		fmt.Fprintf(&sb, "   - File size: %s bytes\n", humanize.Comma(summary.FileSize))
		fmt.Fprintf(&sb, "   - Available PDFs: %d\n", summary.AvailableDocs)
	}

	sb.WriteString("\n## Usage\n\n")
	sb.WriteString("The sample supports developing and testing against realistic dockets without the full corpus. The layout mirrors production:\n\n")
	sb.WriteString("```\n")
	sb.WriteString("sample-data/\n")
	sb.WriteString("├── docket-data/    # JSON case metadata\n")
	sb.WriteString("└── sata/recap/     # PDF court documents\n")
	sb.WriteString("```\n")

	return os.WriteFile(path, []byte(sb.String()), 0644)
}
