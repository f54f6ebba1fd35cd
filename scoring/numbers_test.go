package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLocaleNumber(t *testing.T) {
	valid := map[string]float64{
		"7,5":   7.5,
		"7.5":   7.5,
		" 8 ":   8,
		"-1,25": -1.25,
		"+3":    3,
		".5":    0.5,
		",25":   0.25,
		"7,":    7,
		"10":    10,
	}
	for input, expected := range valid {
		assert.Equal(t, expected, ParseLocaleNumber(input), input)
	}

	for _, input := range []string{"", "abc", "1.000,5", "1e3", "7,5,1", "--1", "0x10", "NaN", "Inf", "1 2"} {
		assert.True(t, math.IsNaN(ParseLocaleNumber(input)), "expected NaN for %q", input)
	}
}

func TestNumberFallsBackToZero(t *testing.T) {
	assert.Equal(t, 0.0, number("x"))
	assert.Equal(t, 0.0, number(""))
	assert.Equal(t, 6.25, number("6,25"))
}

func TestExcelRound(t *testing.T) {
	assert.Equal(t, 1.001, ExcelRound(1.0005))
	assert.Equal(t, 7.833, ExcelRound(7.8325))
	assert.Equal(t, 6.35, ExcelRound(3.2+0.15*7*3))
	assert.Equal(t, -1.001, ExcelRound(-1.0005))
	assert.Equal(t, 2.0, ExcelRound(1.9999999))
	assert.Equal(t, 0.0, ExcelRound(math.NaN()))
	assert.Equal(t, 0.0, ExcelRound(math.Inf(1)))
}

func TestFormatScore(t *testing.T) {
	assert.Equal(t, "7.833", FormatScore(7.8325))
	assert.Equal(t, "0.000", FormatScore(0))
	assert.Equal(t, "0.000", FormatScore(-0.0001))
	assert.Equal(t, "10.000", FormatScore(10))
	assert.Equal(t, "6.350", FormatScore(6.35))
}

func TestLimits(t *testing.T) {
	assert.Equal(t, 0.0, nullLimit(-2))
	assert.Equal(t, 0.0, nullLimit(math.NaN()))
	assert.Equal(t, 3.0, nullLimit(3))
	assert.Equal(t, 10.0, tenLimit(12))
	assert.Equal(t, 9.5, tenLimit(9.5))
	assert.Equal(t, 10.0, clamp(11, 0, 10))
	assert.Equal(t, 0.0, clamp(-1, 0, 10))
}
