// Package types provides type definitions for the structured data shared across the docket-sampler pipeline.
//
//nolint:revive // types is a standard Go package name pattern
package types

// UnknownField is the sentinel recorded when a text field is missing from a
// case record.
const UnknownField = "Unknown"

// displayNameLimit caps how much of a full case name is shown when no short
// name exists.
const displayNameLimit = 50

// CaseSummary is the flat per-case record the selector filters and ranks.
// The JSON tags are the artifact contract for selected_samples.json, so
// renaming a field here is a breaking change for downstream consumers.
type CaseSummary struct {
	ID             int64   `json:"id"`
	CaseName       string  `json:"case_name"`
	CaseNameShort  string  `json:"case_name_short"`
	Court          string  `json:"court"`
	DateFiled      *string `json:"date_filed"`
	DateTerminated *string `json:"date_terminated"`
	FileSize       int64   `json:"file_size"`
	TotalDocs      int     `json:"total_docs"`
	AvailableDocs  int     `json:"available_docs"`
	PacerCaseID    *string `json:"pacer_case_id"`
	Filepath       string  `json:"filepath"`
}

// IsOpen reports whether the case is still open, i.e. has no termination
// date on record.
func (s *CaseSummary) IsOpen() bool {
	return s.DateTerminated == nil || *s.DateTerminated == ""
}

// Status renders the open/closed state for reports.
func (s *CaseSummary) Status() string {
	if s.IsOpen() {
		return "Open"
	}
	return "Closed"
}

// FiledDate returns the filing date, or the Unknown sentinel when the record
// never carried one.
func (s *CaseSummary) FiledDate() string {
	if s.DateFiled == nil || *s.DateFiled == "" {
		return UnknownField
	}
	return *s.DateFiled
}

// DisplayName prefers the short case name and falls back to a truncated full
// name, keeping console listings to a single line.
func (s *CaseSummary) DisplayName() string {
	if s.CaseNameShort != "" && s.CaseNameShort != UnknownField {
		return s.CaseNameShort
	}
	name := s.CaseName
	if len(name) > displayNameLimit {
		return name[:displayNameLimit]
	}
	return name
}
