package scoring

import (
	"strings"

	"vaulting/repository"
)

var movementFields = []string{"rythm", "relaxation", "connection", "impulsion", "straightness", "collection"}

var a2DeductionFields = []string{"a2ded1", "a2ded2", "a2ded3", "a2ded4", "a2ded5"}

var a3DeductionFields = []string{"a3ded1", "a3ded2", "a3ded3", "a3ded4", "a3ded5"}

var horseFields = concat(movementFields, []string{"WandO", "bint", "BinC", "lunging"}, a2DeductionFields, a3DeductionFields)

// Compulsory exercises, longest first so that a squad field such as
// "halfmill_3" is never counted as "mill".
var compulsoryExercises = []string{
	"scissorsbackward",
	"scissorsforward",
	"flanksecond",
	"flankfirst",
	"basicseat",
	"halfmill",
	"kneeling",
	"swingoff",
	"vaulton",
	"stand",
	"flag",
	"mill",
}

func concat(lists ...[]string) []string {
	out := make([]string, 0)
	for _, list := range lists {
		out = append(out, list...)
	}
	return out
}

func hasHorseFields(f *fields, _ *repository.Category) bool {
	return f.has(horseFields...)
}

func horseScore(f *fields, category *repository.Category) float64 {
	movements := make([]float64, len(movementFields))
	for i, id := range movementFields {
		movements[i] = f.number(id)
	}
	a1 := nullLimit(mean(movements)) * category.Horse.A1
	transitions := 0.5*f.number("WandO") + 0.25*f.number("BinC") + 0.25*f.number("bint")
	a2 := nullLimit(transitions-f.sum(a2DeductionFields...)) * category.Horse.A2
	a3 := nullLimit(f.number("lunging")-f.sum(a3DeductionFields...)) * category.Horse.A3
	return a1 + a2 + a3
}

func hasIndividualCompulsoryFields(f *fields, _ *repository.Category) bool {
	return f.hasAny(compulsoryExercises...)
}

func individualCompulsoryScore(f *fields, _ *repository.Category) float64 {
	marks := make([]float64, 0, len(compulsoryExercises))
	for _, id := range compulsoryExercises {
		if f.has(id) {
			marks = append(marks, f.number(id))
		}
	}
	return nullLimit(mean(marks))
}

func numberOfVaulters(category *repository.Category) int {
	if category.Type == repository.PDD {
		return 2
	}
	return 6
}

func compulsoryExerciseOf(fieldId string) (string, bool) {
	for _, exercise := range compulsoryExercises {
		if strings.Contains(fieldId, exercise) {
			return exercise, true
		}
	}
	return "", false
}

func hasSquadPddCompulsoryFields(f *fields, category *repository.Category) bool {
	if !category.IsTeam() {
		return false
	}
	for _, input := range f.ordered {
		if _, ok := compulsoryExerciseOf(input.Id); ok {
			return true
		}
	}
	return false
}

// squadPddCompulsoryScore averages every vaulter's mark of every exercise.
// Each exercise total is divided by the number of vaulters first, then the
// exercise scores are averaged.
func squadPddCompulsoryScore(f *fields, category *repository.Category) float64 {
	totals := make(map[string]float64)
	matched := 0
	for _, input := range f.ordered {
		exercise, ok := compulsoryExerciseOf(input.Id)
		if !ok {
			continue
		}
		totals[exercise] += number(input.Value)
		matched++
	}
	vaulters := float64(numberOfVaulters(category))
	exercises := float64(matched) / vaulters
	if exercises == 0 {
		return 0
	}
	sum := 0.0
	for _, total := range totals {
		sum += total / vaulters
	}
	return nullLimit(sum / exercises)
}
