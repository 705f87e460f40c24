// Package extraction reduces raw case docket files to flat metric summaries.
package extraction

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/docket-sampler/internal/types"
)

// LoadCaseRecord loads a single case docket record from a JSON file.
func LoadCaseRecord(path string) (*types.CaseRecord, error) {
	// Read file
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	// Unmarshal JSON
	var record types.CaseRecord
	if err := json.Unmarshal(content, &record); err != nil {
		return nil, &ParseError{
			Message: fmt.Sprintf("failed to unmarshal JSON from %s", path),
			Cause:   err,
		}
	}

	return &record, nil
}

// Extract reduces the case record at path to a CaseSummary. Missing name and
// court fields fall back to the Unknown sentinel; a missing or non-positive
// id is a parse error because every downstream step keys cases by id.
func Extract(path string) (*types.CaseSummary, error) {
	record, err := LoadCaseRecord(path)
	if err != nil {
		return nil, err
	}

	if record.ID <= 0 {
		return nil, &ParseError{
			Message: fmt.Sprintf("case record %s has no usable id", path),
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, &ParseError{
			Message: fmt.Sprintf("failed to stat file %s", path),
			Cause:   err,
		}
	}

	total, available := record.DocumentCounts()

	return &types.CaseSummary{
		ID:             record.ID,
		CaseName:       orUnknown(record.CaseName),
		CaseNameShort:  orUnknown(record.CaseNameShort),
		Court:          orUnknown(record.Court),
		DateFiled:      record.DateFiled,
		DateTerminated: record.DateTerminated,
		FileSize:       info.Size(),
		TotalDocs:      total,
		AvailableDocs:  available,
		PacerCaseID:    record.PacerCaseID,
		Filepath:       path,
	}, nil
}

func orUnknown(value string) string {
	if value == "" {
		return types.UnknownField
	}
	return value
}
