package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/docket-sampler/internal/types"
)

func TestPrintCaseSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	filed := "2016-04-04"
	summary := &types.CaseSummary{
		ID:            4179280,
		CaseName:      "Perez v. Rash Curtis & Associates",
		CaseNameShort: "Perez",
		Court:         "cand",
		DateFiled:     &filed,
		FileSize:      245030,
		TotalDocs:     42,
		AvailableDocs: 14,
	}

	p.PrintCaseSummary(summary)
	output := buf.String()

	assert.Contains(t, output, "CASE SUMMARY")
	assert.Contains(t, output, "4179280")
	assert.Contains(t, output, "Perez")
	assert.Contains(t, output, "cand")
	assert.Contains(t, output, "2016-04-04")
	assert.Contains(t, output, "Open")
	assert.Contains(t, output, "245,030")
	assert.Contains(t, output, "14 available of 42 total")
}

func TestPrintCaseSummary_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCaseSummary(nil)

	assert.Empty(t, buf.String())
}

func TestPrintSelection(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	cases := []types.CaseSummary{
		{ID: 1, CaseNameShort: "Alpha", Court: "cand", AvailableDocs: 20, FileSize: 500000},
		{ID: 2, CaseNameShort: "Beta", Court: "nysd", AvailableDocs: 10, FileSize: 250000},
	}

	p.PrintSelection(cases)
	output := buf.String()

	assert.Contains(t, output, "SELECTED SAMPLE CASES")
	assert.Contains(t, output, "Selected 2 cases")
	assert.Contains(t, output, "Case 1 (cand)")
	assert.Contains(t, output, "Case 2 (nysd)")
	assert.Contains(t, output, "500,000")
}

func TestPrintSelection_TruncatesLongList(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	var cases []types.CaseSummary
	for i := int64(1); i <= 8; i++ {
		cases = append(cases, types.CaseSummary{ID: i, CaseNameShort: "X", Court: "cand"})
	}

	p.PrintSelection(cases)
	output := buf.String()

	assert.Contains(t, output, "Selected 8 cases")
	assert.Contains(t, output, "... and 3 more cases")
}

func TestPrintSelection_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSelection(nil)

	assert.Empty(t, buf.String())
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report := &types.SelectionReport{
		CorpusFiles:    284000,
		SampledFiles:   2840,
		ParseFailures:  3,
		Eligible:       41,
		Selected:       10,
		DistinctCourts: 7,
		TargetCount:    10,
	}

	p.PrintReport(report)
	output := buf.String()

	assert.Contains(t, output, "SELECTION REPORT")
	assert.Contains(t, output, "284,000")
	assert.Contains(t, output, "10 of 10 requested")
	assert.Contains(t, output, "Distinct courts: 7")
	assert.NotContains(t, output, "truncated")
}

func TestPrintReport_Truncated(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report := &types.SelectionReport{
		Eligible:    4,
		Selected:    4,
		TargetCount: 10,
	}

	p.PrintReport(report)
	output := buf.String()

	assert.Contains(t, output, "Selection truncated")
	assert.Contains(t, output, "short by 6 cases")
}
