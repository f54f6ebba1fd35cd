package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func results(totals ...float64) []*Result {
	out := make([]*Result, 0, len(totals))
	for i, total := range totals {
		out = append(out, &Result{EntryId: i + 1, TotalScore: total})
	}
	return out
}

func TestCombineNormalizedBlendsBothParts(t *testing.T) {
	first := results(8.0, 6.0)
	second := results(7.0, 9.0)
	combined, dropped := CombineNormalized(first, second, 0.6, 0.4)
	require.Len(t, combined, 2)
	assert.Empty(t, dropped)

	combined = Rank(combined)
	assert.Equal(t, 1, combined[0].EntryId)
	assert.InDelta(t, 7.6, combined[0].TotalScore, 1e-9)
	assert.InDelta(t, 8.0, *combined[0].FirstTotalScore, 1e-9)
	assert.InDelta(t, 7.0, *combined[0].SecondTotalScore, 1e-9)
	assert.Equal(t, 2, combined[1].EntryId)
	assert.InDelta(t, 7.2, combined[1].TotalScore, 1e-9)
}

func TestCombineNormalizedRescalesWeights(t *testing.T) {
	combined, _ := CombineNormalized(results(8.0), results(6.0), 0.3, 0.1)
	assert.InDelta(t, 7.5, combined[0].TotalScore, 1e-9)
}

func TestCombineUsesWeightsAsGiven(t *testing.T) {
	combined, _ := Combine(results(8.0), results(6.0), 0.3, 0.1)
	assert.InDelta(t, 3.0, combined[0].TotalScore, 1e-9)
}

func TestCombineZeroWeightRelabels(t *testing.T) {
	second := results(7.0, 9.0)
	combined, dropped := Combine(results(8.0), second, 0, 1)
	assert.Nil(t, dropped)
	require.Len(t, combined, 2)
	for i, result := range combined {
		assert.Equal(t, second[i].EntryId, result.EntryId)
		assert.Equal(t, second[i].TotalScore, result.TotalScore)
		require.NotNil(t, result.SecondTotalScore)
		assert.Equal(t, second[i].TotalScore, *result.SecondTotalScore)
		assert.Nil(t, result.FirstTotalScore)
	}

	combined, _ = Combine(results(8.0), second, 1, 0)
	require.Len(t, combined, 1)
	assert.Equal(t, 8.0, *combined[0].FirstTotalScore)
	assert.Nil(t, combined[0].SecondTotalScore)
}

func TestBlendDropsEntriesMissingOneSide(t *testing.T) {
	first := results(8.0, 6.0)
	second := results(7.0)
	second = append(second, &Result{EntryId: 3, TotalScore: 5})
	blended, dropped := Blend(first, second, 0.6, 0.4)
	require.Len(t, blended, 1)
	assert.Equal(t, 1, blended[0].EntryId)
	assert.Equal(t, []int{2, 3}, dropped)
}

func TestRankSharesTies(t *testing.T) {
	ranked := Rank(results(7.0, 8.0, 7.0004, 6.0))
	assert.Equal(t, []int{2, 1, 3, 4}, []int{ranked[0].EntryId, ranked[1].EntryId, ranked[2].EntryId, ranked[3].EntryId})
	assert.Equal(t, []int{1, 2, 2, 4}, []int{ranked[0].Rank, ranked[1].Rank, ranked[2].Rank, ranked[3].Rank})
}

func TestRelabelCopies(t *testing.T) {
	original := results(5.0)
	relabeled := Relabel(original, FirstSide)
	relabeled[0].TotalScore = 1
	assert.Equal(t, 5.0, original[0].TotalScore)
	assert.Equal(t, 5.0, *relabeled[0].FirstTotalScore)
}
