// Package types provides type definitions for the structured data shared across the docket-sampler pipeline.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SelectionReport captures the run statistics a selection pass prints and,
// when a database is configured, persists alongside the artifacts.
type SelectionReport struct {
	CorpusFiles    int `json:"corpus_files"`
	SampledFiles   int `json:"sampled_files"`
	ParseFailures  int `json:"parse_failures"`
	Eligible       int `json:"eligible"`
	Selected       int `json:"selected"`
	DistinctCourts int `json:"distinct_courts"`
	TargetCount    int `json:"target_count"`
}

// Truncated reports whether the run selected fewer cases than requested
// because the eligible pool was too small.
func (r *SelectionReport) Truncated() bool {
	return r.Selected < r.TargetCount
}

// Shortfall is how many cases short of the target the run came up.
func (r *SelectionReport) Shortfall() int {
	if !r.Truncated() {
		return 0
	}
	return r.TargetCount - r.Selected
}
