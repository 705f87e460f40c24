package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/docket-sampler/internal/types"
)

func TestSelect_FullPass(t *testing.T) {
	summaries := []types.CaseSummary{
		newSummary(1, "cand", 2, 500000),   // too few docs
		newSummary(2, "cand", 40, 500000),  // eligible, top ranked
		newSummary(3, "cand", 30, 500000),  // eligible, same court as 2
		newSummary(4, "nysd", 20, 500000),  // eligible
		newSummary(5, "txed", 10, 50),      // file too small
		newSummary(6, "txed", 10, 500000),  // eligible
		newSummary(7, "ilnd", 60, 500000),  // too many docs
	}
	criteria := DefaultCriteria()
	criteria.TargetCount = 4

	result, err := Select(summaries, criteria)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, 4, result.EligibleCount)
	require.Len(t, result.Cases, 4)
	// Diversity pass: 2 (cand), 4 (nysd), 6 (txed); fill pass: 3.
	assert.Equal(t, []int64{2, 4, 6, 3}, result.IDs())
	assert.Equal(t, 3, result.DistinctCourts())
}

func TestSelect_TruncatesToEligiblePool(t *testing.T) {
	summaries := []types.CaseSummary{
		newSummary(1, "cand", 10, 500000),
		newSummary(2, "nysd", 8, 500000),
	}

	result, err := Select(summaries, DefaultCriteria())
	require.NoError(t, err)
	assert.Equal(t, 2, result.EligibleCount)
	assert.Len(t, result.Cases, 2)
}

func TestSelect_EmptyCorpus(t *testing.T) {
	result, err := Select(nil, DefaultCriteria())
	require.NoError(t, err)
	assert.Equal(t, 0, result.EligibleCount)
	assert.Empty(t, result.Cases)
	assert.Empty(t, result.IDs())
	assert.Equal(t, 0, result.DistinctCourts())
}

func TestSelect_InvalidCriteria(t *testing.T) {
	criteria := DefaultCriteria()
	criteria.TargetCount = 0

	_, err := Select(nil, criteria)
	require.Error(t, err)

	selErr, ok := err.(*Error)
	require.True(t, ok, "error should be selection Error type")
	assert.Contains(t, selErr.Error(), "invalid selection criteria")
}

func TestSelect_RankOrderWithinSelection(t *testing.T) {
	summaries := []types.CaseSummary{
		newSummary(1, "a", 6, 500000),
		newSummary(2, "b", 50, 500000),
		newSummary(3, "c", 25, 500000),
	}
	criteria := DefaultCriteria()
	criteria.TargetCount = 3

	result, err := Select(summaries, criteria)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3, 1}, result.IDs())
}
