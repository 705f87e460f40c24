// Package types provides type definitions for the structured data shared across the docket-sampler pipeline.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CaseRecord is the on-disk shape of a single case docket file. Only the
// fields the pipeline reads are declared; everything else in the document is
// ignored. Optional fields are pointers so that absence survives parsing
// instead of collapsing into zero values.
type CaseRecord struct {
	ID             int64         `json:"id"`
	CaseName       string        `json:"case_name"`
	CaseNameShort  string        `json:"case_name_short"`
	Court          string        `json:"court"`
	DateFiled      *string       `json:"date_filed"`
	DateTerminated *string       `json:"date_terminated"`
	PacerCaseID    *string       `json:"pacer_case_id"`
	DocketEntries  []DocketEntry `json:"docket_entries"`
}

// DocketEntry is one chronological entry in a case's procedural history.
type DocketEntry struct {
	RecapDocuments []RecapDocument `json:"recap_documents"`
}

// RecapDocument is a court filing (typically a PDF) attached to a docket
// entry. FilepathLocal is empty when the document was never fetched.
type RecapDocument struct {
	IsAvailable   bool   `json:"is_available"`
	FilepathLocal string `json:"filepath_local"`
}

// Fetched reports whether the document is actually present on disk: the
// availability flag alone is not enough, the local path must be set too.
func (d *RecapDocument) Fetched() bool {
	return d.IsAvailable && d.FilepathLocal != ""
}

// DocumentCounts walks every docket entry's recap documents exactly once and
// returns the total document count alongside the number that are fetched.
func (r *CaseRecord) DocumentCounts() (total, available int) {
	for _, entry := range r.DocketEntries {
		for i := range entry.RecapDocuments {
			total++
			if entry.RecapDocuments[i].Fetched() {
				available++
			}
		}
	}
	return total, available
}
