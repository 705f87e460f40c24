// Package selection picks a small, court-diverse set of cases from extracted docket summaries.
package selection

import (
	"github.com/jonathan/docket-sampler/internal/types"
)

// Result is the ordered outcome of a selection pass.
type Result struct {
	// Cases is the final selection, best-ranked first. When the eligible
	// pool is smaller than the target this holds the whole pool.
	Cases []types.CaseSummary
	// EligibleCount is how many summaries survived the criteria filter.
	EligibleCount int
}

// IDs returns the selected case ids in selection order.
func (r *Result) IDs() []int64 {
	ids := make([]int64, 0, len(r.Cases))
	for i := range r.Cases {
		ids = append(ids, r.Cases[i].ID)
	}
	return ids
}

// DistinctCourts returns how many different courts appear in the selection.
func (r *Result) DistinctCourts() int {
	courts := make(map[string]bool)
	for i := range r.Cases {
		courts[r.Cases[i].Court] = true
	}
	return len(courts)
}

// Select runs a full selection pass over extracted summaries: validate the
// criteria, drop ineligible cases, rank the rest by available documents,
// then diversify across courts and fill up to the target count.
func Select(summaries []types.CaseSummary, criteria Criteria) (*Result, error) {
	if err := criteria.Validate(); err != nil {
		return nil, &Error{Message: "invalid selection criteria", Cause: err}
	}

	eligible := Filter(summaries, criteria)
	ranked := RankByAvailability(eligible)
	selected := diversify(ranked, criteria.TargetCount)

	return &Result{
		Cases:         selected,
		EligibleCount: len(eligible),
	}, nil
}
