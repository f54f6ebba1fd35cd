package scoring

import (
	"math"
	"strings"
	"unicode"

	"vaulting/repository"
)

const (
	defaultMaxExercises = 10
	maxFallDeduction    = 50
)

var difficultyOrder = []rune{'R', 'D', 'M', 'E'}

var techExerciseFields = []string{"techexercise1", "techexercise2", "techexercise3", "techexercise4", "techexercise5"}

// Records is a parsed records string such as "R2 D M3 1 f30". Tokens holding
// an f are falls, every other token is one exercise with an optional
// difficulty letter and an optional execution deduction.
type Records struct {
	Exercises  int
	Deductions float64
	Falls      float64
	Difficulty map[rune]int
}

func ParseRecords(records string) Records {
	parsed := Records{Difficulty: make(map[rune]int)}
	for _, token := range strings.Fields(records) {
		value := ParseLocaleNumber(strings.Map(dropLetters, token))
		if strings.ContainsAny(token, "fF") {
			if value >= 0 && value <= maxFallDeduction {
				parsed.Falls += value
			}
			continue
		}
		parsed.Exercises++
		if value >= 1 && value <= 10 {
			parsed.Deductions += value
		}
		for _, r := range strings.ToUpper(token) {
			switch r {
			case 'R', 'D', 'M', 'E':
				parsed.Difficulty[r]++
			}
		}
	}
	return parsed
}

func dropLetters(r rune) rune {
	if unicode.IsLetter(r) {
		return -1
	}
	return r
}

func (r Records) HasDifficulty() bool {
	return len(r.Difficulty) > 0
}

// Performance is 10 minus the mean execution deduction and a tenth of the
// falls. Without exercises there is nothing to score.
func (r Records) Performance() float64 {
	if r.Exercises == 0 {
		return 0
	}
	execution := math.Min(10, r.Deductions/float64(r.Exercises))
	return nullLimit(10 - execution - r.Falls/10)
}

// DifficultyScore weights the counted elements, best first, up to the
// category's maximum number of exercises.
func (r Records) DifficultyScore(free repository.FreeCoefficients) float64 {
	weights := map[rune]float64{'R': free.R, 'D': free.D, 'M': free.M, 'E': free.E}
	remaining := free.NumberOfMaxExercises
	if remaining <= 0 {
		remaining = defaultMaxExercises
	}
	total := 0.0
	for _, element := range difficultyOrder {
		count := min(r.Difficulty[element], remaining)
		total += float64(count) * weights[element]
		remaining -= count
	}
	return tenLimit(total)
}

func hasRecords(f *fields, _ *repository.Category) bool {
	return f.has("records")
}

func freeTechniqueScore(f *fields, category *repository.Category) float64 {
	records := ParseRecords(f.byId["records"])
	perfMultiplier, diffMultiplier := 1.0, 0.0
	if records.HasDifficulty() {
		perfMultiplier, diffMultiplier = 0.7, 0.3
	}
	return records.DifficultyScore(category.Free)*diffMultiplier + records.Performance()*perfMultiplier
}

func hasTechRecords(f *fields, _ *repository.Category) bool {
	return f.has("techrecords")
}

func technicalTestScore(f *fields, category *repository.Category) float64 {
	records := ParseRecords(f.byId["techrecords"])
	total := records.Performance()
	for _, id := range techExerciseFields {
		total += clamp(f.number(id), 0, 10)
	}
	divider := category.TechArtistic.TechDivider
	if divider <= 0 {
		divider = 1
	}
	return tenLimit(total / divider)
}
