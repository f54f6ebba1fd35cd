package scoring

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var localeNumber = regexp.MustCompile(`^[+-]?(\d+([.,]\d*)?|[.,]\d+)$`)

// ParseLocaleNumber reads a decimal typed with either a dot or a comma as
// separator. Anything else is NaN.
func ParseLocaleNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if !localeNumber.MatchString(s) {
		return math.NaN()
	}
	value, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil {
		return math.NaN()
	}
	return value
}

// number is ParseLocaleNumber with NaN read as 0.
func number(s string) float64 {
	value := ParseLocaleNumber(s)
	if math.IsNaN(value) {
		return 0
	}
	return value
}

func nullLimit(x float64) float64 {
	if x < 0 || math.IsNaN(x) {
		return 0
	}
	return x
}

func tenLimit(x float64) float64 {
	if x > 10 {
		return 10
	}
	return x
}

func clamp(x, low, high float64) float64 {
	return math.Max(low, math.Min(high, x))
}

// ExcelRound rounds half away from zero to three decimals. The small bias
// keeps values such as 7.8325 from falling to 7.832 through binary error.
func ExcelRound(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	if v < 0 {
		return -ExcelRound(-v)
	}
	return math.Round(v*1000+1e-6) / 1000
}

// FormatScore prints a score with exactly three decimals.
func FormatScore(v float64) string {
	rounded := ExcelRound(v)
	if rounded == 0 {
		rounded = 0 // no "-0.000"
	}
	return strconv.FormatFloat(rounded, 'f', 3, 64)
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, value := range values {
		sum += value
	}
	return sum / float64(len(values))
}
