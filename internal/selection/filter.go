// Package selection picks a small, court-diverse set of cases from extracted docket summaries.
package selection

import (
	"github.com/jonathan/docket-sampler/internal/types"
)

// Eligible reports whether a case satisfies the criteria bounds. Cases
// sitting exactly on a bound are eligible.
func Eligible(summary *types.CaseSummary, criteria Criteria) bool {
	if summary.AvailableDocs < criteria.MinAvailableDocs || summary.AvailableDocs > criteria.MaxAvailableDocs {
		return false
	}
	if summary.FileSize < criteria.MinFileSize || summary.FileSize > criteria.MaxFileSize {
		return false
	}
	return true
}

// Filter keeps the summaries eligible under the criteria, preserving their
// input order.
func Filter(summaries []types.CaseSummary, criteria Criteria) []types.CaseSummary {
	eligible := make([]types.CaseSummary, 0, len(summaries))
	for i := range summaries {
		if Eligible(&summaries[i], criteria) {
			eligible = append(eligible, summaries[i])
		}
	}
	return eligible
}
