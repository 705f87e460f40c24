// Package types provides type definitions for the structured data shared across the docket-sampler pipeline.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaseSummary_JSONMarshaling(t *testing.T) {
	filed := "2016-04-04"
	pacerID := "297130"
	summary := CaseSummary{
		ID:            4179280,
		CaseName:      "Perez v. Rash Curtis & Associates",
		CaseNameShort: "Perez",
		Court:         "cand",
		DateFiled:     &filed,
		FileSize:      245030,
		TotalDocs:     42,
		AvailableDocs: 14,
		PacerCaseID:   &pacerID,
		Filepath:      "data/docket-data/4179280.json",
	}

	jsonBytes, err := json.MarshalIndent(summary, "", "  ")
	require.NoError(t, err)
	assert.Contains(t, string(jsonBytes), `"id": 4179280`)
	assert.Contains(t, string(jsonBytes), `"case_name": "Perez v. Rash Curtis & Associates"`)
	assert.Contains(t, string(jsonBytes), `"case_name_short": "Perez"`)
	assert.Contains(t, string(jsonBytes), `"court": "cand"`)
	assert.Contains(t, string(jsonBytes), `"date_filed": "2016-04-04"`)
	assert.Contains(t, string(jsonBytes), `"date_terminated": null`)
	assert.Contains(t, string(jsonBytes), `"file_size": 245030`)
	assert.Contains(t, string(jsonBytes), `"total_docs": 42`)
	assert.Contains(t, string(jsonBytes), `"available_docs": 14`)
	assert.Contains(t, string(jsonBytes), `"pacer_case_id": "297130"`)
	assert.Contains(t, string(jsonBytes), `"filepath": "data/docket-data/4179280.json"`)
}

func TestCaseSummary_JSONRoundTrip(t *testing.T) {
	terminated := "2019-11-22"
	original := CaseSummary{
		ID:             55,
		CaseName:       "A v. B",
		CaseNameShort:  "A",
		Court:          "nysd",
		DateTerminated: &terminated,
		FileSize:       100000,
		TotalDocs:      7,
		AvailableDocs:  5,
		Filepath:       "data/55.json",
	}

	jsonBytes, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded CaseSummary
	err = json.Unmarshal(jsonBytes, &decoded)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestCaseSummary_Status(t *testing.T) {
	terminated := "2019-11-22"
	empty := ""

	open := CaseSummary{ID: 1}
	assert.True(t, open.IsOpen())
	assert.Equal(t, "Open", open.Status())

	openEmptyDate := CaseSummary{ID: 2, DateTerminated: &empty}
	assert.True(t, openEmptyDate.IsOpen())
	assert.Equal(t, "Open", openEmptyDate.Status())

	closed := CaseSummary{ID: 3, DateTerminated: &terminated}
	assert.False(t, closed.IsOpen())
	assert.Equal(t, "Closed", closed.Status())
}

func TestCaseSummary_FiledDate(t *testing.T) {
	filed := "2010-04-28"

	withDate := CaseSummary{ID: 1, DateFiled: &filed}
	assert.Equal(t, "2010-04-28", withDate.FiledDate())

	withoutDate := CaseSummary{ID: 2}
	assert.Equal(t, UnknownField, withoutDate.FiledDate())
}

func TestCaseSummary_DisplayName(t *testing.T) {
	short := CaseSummary{CaseName: "Perez v. Rash Curtis & Associates", CaseNameShort: "Perez"}
	assert.Equal(t, "Perez", short.DisplayName())

	longName := strings.Repeat("x", 80)
	noShort := CaseSummary{CaseName: longName, CaseNameShort: UnknownField}
	assert.Equal(t, strings.Repeat("x", 50), noShort.DisplayName())
	assert.Len(t, noShort.DisplayName(), 50)

	shortEnough := CaseSummary{CaseName: "A v. B"}
	assert.Equal(t, "A v. B", shortEnough.DisplayName())
}

func TestSelectionReport_Truncated(t *testing.T) {
	full := SelectionReport{Selected: 10, TargetCount: 10}
	assert.False(t, full.Truncated())
	assert.Equal(t, 0, full.Shortfall())

	short := SelectionReport{Selected: 3, TargetCount: 10}
	assert.True(t, short.Truncated())
	assert.Equal(t, 7, short.Shortfall())
}
