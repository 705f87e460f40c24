package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/docket-sampler/internal/types"
)

func TestDiversify_OneCasePerCourtFirst(t *testing.T) {
	// Ranked order: two cand cases lead, but only the first may enter on
	// the diversity pass.
	ranked := []types.CaseSummary{
		newSummary(1, "cand", 40, 500000),
		newSummary(2, "cand", 35, 500000),
		newSummary(3, "nysd", 30, 500000),
		newSummary(4, "txed", 25, 500000),
	}

	selected := diversify(ranked, 3)
	require.Len(t, selected, 3)
	assert.Equal(t, int64(1), selected[0].ID)
	assert.Equal(t, int64(3), selected[1].ID)
	assert.Equal(t, int64(4), selected[2].ID)

	courts := map[string]bool{}
	for _, c := range selected {
		courts[c.Court] = true
	}
	assert.Len(t, courts, 3)
}

func TestDiversify_FillPassReturnsToSkippedCases(t *testing.T) {
	ranked := []types.CaseSummary{
		newSummary(1, "cand", 40, 500000),
		newSummary(2, "cand", 35, 500000),
		newSummary(3, "nysd", 30, 500000),
	}

	selected := diversify(ranked, 3)
	require.Len(t, selected, 3)
	// Diversity pass admits 1 and 3; the fill pass brings back 2.
	assert.Equal(t, int64(1), selected[0].ID)
	assert.Equal(t, int64(3), selected[1].ID)
	assert.Equal(t, int64(2), selected[2].ID)
}

func TestDiversify_PoolSmallerThanTarget(t *testing.T) {
	ranked := []types.CaseSummary{
		newSummary(1, "cand", 40, 500000),
		newSummary(2, "cand", 35, 500000),
	}

	selected := diversify(ranked, 10)
	require.Len(t, selected, 2)
	assert.Equal(t, int64(1), selected[0].ID)
	assert.Equal(t, int64(2), selected[1].ID)
}

func TestDiversify_StopsAtTarget(t *testing.T) {
	ranked := []types.CaseSummary{
		newSummary(1, "a", 9, 500000),
		newSummary(2, "b", 8, 500000),
		newSummary(3, "c", 7, 500000),
		newSummary(4, "d", 6, 500000),
	}

	selected := diversify(ranked, 2)
	require.Len(t, selected, 2)
	assert.Equal(t, int64(1), selected[0].ID)
	assert.Equal(t, int64(2), selected[1].ID)
}

func TestDiversify_Empty(t *testing.T) {
	assert.Empty(t, diversify(nil, 10))
}
