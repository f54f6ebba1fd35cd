package scoring

import (
	"testing"

	"vaulting/repository"

	"github.com/stretchr/testify/assert"
)

func TestParseRecords(t *testing.T) {
	records := ParseRecords("R2 d1 M  E f5 F2,5 3 0 11")
	assert.Equal(t, 7, records.Exercises)
	// 0 and 11 are outside the accepted deduction range
	assert.Equal(t, 6.0, records.Deductions)
	assert.Equal(t, 7.5, records.Falls)
	assert.Equal(t, map[rune]int{'R': 1, 'D': 1, 'M': 1, 'E': 1}, records.Difficulty)
	assert.True(t, records.HasDifficulty())
}

func TestPerformance(t *testing.T) {
	assert.Equal(t, 0.0, ParseRecords("").Performance())
	assert.Equal(t, 0.0, ParseRecords("f10").Performance())
	assert.Equal(t, 10.0, ParseRecords("R D").Performance())
	assert.Equal(t, 0.0, ParseRecords("10 f50").Performance())
}

func TestDifficultyScoreTakesBestElementsFirst(t *testing.T) {
	records := ParseRecords("E E D R R R")
	free := repository.FreeCoefficients{R: 1, D: 0.5, M: 0.3, E: 0.1, NumberOfMaxExercises: 4}
	// three R and one D fit
	assert.InDelta(t, 3.5, records.DifficultyScore(free), 1e-9)

	free.NumberOfMaxExercises = 0
	assert.InDelta(t, 3.7, records.DifficultyScore(free), 1e-9)

	free.R = 5
	assert.Equal(t, 10.0, records.DifficultyScore(free))
}
