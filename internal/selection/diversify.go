// Package selection picks a small, court-diverse set of cases from extracted docket summaries.
package selection

import (
	"github.com/jonathan/docket-sampler/internal/types"
)

// diversify builds the final selection with two walks over the ranked list.
//
// Pass 1 admits at most one case per court, so the sample spreads across
// jurisdictions instead of clustering in the busiest district. Pass 2 tops
// the selection up to target with the best remaining cases regardless of
// court. Membership is keyed by case id, so a case never appears twice and
// the fill pass is O(n) over the ranked list.
func diversify(ranked []types.CaseSummary, target int) []types.CaseSummary {
	selected := make([]types.CaseSummary, 0, target)
	selectedIDs := make(map[int64]bool)
	courtsSeen := make(map[string]bool)

	// 1. One case per court, best-ranked first
	for i := range ranked {
		if len(selected) >= target {
			break
		}
		if courtsSeen[ranked[i].Court] {
			continue
		}
		courtsSeen[ranked[i].Court] = true
		selectedIDs[ranked[i].ID] = true
		selected = append(selected, ranked[i])
	}

	// 2. Fill the remaining slots in rank order
	for i := range ranked {
		if len(selected) >= target {
			break
		}
		if selectedIDs[ranked[i].ID] {
			continue
		}
		selectedIDs[ranked[i].ID] = true
		selected = append(selected, ranked[i])
	}

	return selected
}
