// Package selection picks a small, court-diverse set of cases from extracted docket summaries.
package selection

import (
	"sort"

	"github.com/jonathan/docket-sampler/internal/types"
)

// RankByAvailability orders cases by available document count, highest
// first. The sort is stable: cases with equal counts keep their relative
// input order, which makes the whole selection deterministic for a given
// corpus listing. The input slice is not modified.
func RankByAvailability(cases []types.CaseSummary) []types.CaseSummary {
	ranked := make([]types.CaseSummary, len(cases))
	copy(ranked, cases)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AvailableDocs > ranked[j].AvailableDocs
	})
	return ranked
}
