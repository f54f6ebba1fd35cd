package scoring

import (
	"regexp"
	"strconv"
	"testing"

	"vaulting/repository"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
)

func sheet(pairs ...string) repository.InputDatas {
	inputs := make(repository.InputDatas, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		inputs = append(inputs, repository.InputData{Id: pairs[i], Value: pairs[i+1]})
	}
	return inputs
}

func horseSheet() repository.InputDatas {
	inputs := sheet(
		"rythm", "8", "relaxation", "8", "connection", "8",
		"impulsion", "8", "straightness", "8", "collection", "8",
		"WandO", "8", "BinC", "6", "bint", "4",
		"lunging", "7",
		"a2ded1", "0,5", "a3ded1", "1",
	)
	for _, id := range []string{"a2ded2", "a2ded3", "a2ded4", "a2ded5", "a3ded2", "a3ded3", "a3ded4", "a3ded5"} {
		inputs = append(inputs, repository.InputData{Id: id, Value: ""})
	}
	return inputs
}

var horseCategory = &repository.Category{
	Type:  repository.Individual,
	Horse: repository.HorseCoefficients{A1: 0.5, A2: 0.25, A3: 0.25},
}

func TestHorseScore(t *testing.T) {
	// A1 8*0.5, A2 (4+1.5+1-0.5)*0.25, A3 (7-1)*0.25
	evaluation := Evaluate(horseSheet(), horseCategory)
	assert.Equal(t, "horse", evaluation.Formula)
	assert.Equal(t, 7.0, evaluation.Total)
	assert.Equal(t, "7.000", CalculateScore(horseSheet(), horseCategory))
}

func TestHorseScoreNeedsAllFields(t *testing.T) {
	inputs := horseSheet()[:19]
	evaluation := Evaluate(inputs, horseCategory)
	assert.NotEqual(t, "horse", evaluation.Formula)
}

func TestHorseDeductionsNeverGoNegative(t *testing.T) {
	inputs := horseSheet()
	for i := range inputs {
		switch inputs[i].Id {
		case "a2ded2", "a3ded2":
			inputs[i].Value = "40"
		}
	}
	// only A1 remains
	assert.Equal(t, "4.000", CalculateScore(inputs, horseCategory))
}

func TestHorseBeforeIndividualCompulsory(t *testing.T) {
	inputs := append(horseSheet(), sheet("vaulton", "2", "flag", "2")...)
	evaluation := Evaluate(inputs, horseCategory)
	assert.Equal(t, "horse", evaluation.Formula)
	assert.Equal(t, 7.0, evaluation.Total)
}

func TestIndividualCompulsory(t *testing.T) {
	category := &repository.Category{Type: repository.Individual}
	assert.Equal(t, "7.500", CalculateScore(sheet("vaulton", "7", "basicseat", "7,5", "flag", "8"), category))
	// a malformed mark is present and reads as 0
	assert.Equal(t, "5.625", CalculateScore(sheet("vaulton", "7", "basicseat", "7,5", "flag", "8", "mill", "abc"), category))
	assert.Equal(t, "0.000", CalculateScore(sheet("vaulton", "-3"), category))
	assert.Equal(t, "individualCompulsory", Evaluate(sheet("swingoff", "6"), category).Formula)
}

func TestSquadCompulsory(t *testing.T) {
	category := &repository.Category{Type: repository.Squad}
	inputs := make(repository.InputDatas, 0)
	for i := 1; i <= 6; i++ {
		inputs = append(inputs,
			repository.InputData{Id: "vaulton_" + strconv.Itoa(i), Value: "6"},
			repository.InputData{Id: "basicseat_" + strconv.Itoa(i), Value: "7"},
		)
	}
	evaluation := Evaluate(inputs, category)
	assert.Equal(t, "squadPddCompulsory", evaluation.Formula)
	assert.Equal(t, 6.5, evaluation.Total)
}

func TestPddCompulsoryKeepsHalfmillApartFromMill(t *testing.T) {
	category := &repository.Category{Type: repository.PDD}
	inputs := sheet("halfmill_1", "8", "halfmill_2", "6", "mill_1", "4", "mill_2", "6")
	// halfmill 14/2, mill 10/2, two exercises
	assert.Equal(t, "6.000", CalculateScore(inputs, category))
}

func TestSquadCompulsoryOnlyForTeams(t *testing.T) {
	category := &repository.Category{Type: repository.Individual}
	evaluation := Evaluate(sheet("vaulton_1", "6", "vaulton_2", "6"), category)
	assert.Equal(t, "", evaluation.Formula)
	assert.Equal(t, "0.000", CalculateScore(sheet("vaulton_1", "6"), category))
}

var artisticCategory = &repository.Category{
	Type:         repository.Individual,
	Artistic:     repository.ArtisticCoefficients{CH: 0.4, C1: 0.15, C2: 0.15, C3: 0.15, C4: 0.15},
	TechArtistic: repository.TechArtisticCoefficients{CH: 0.4, T1: 0.2, T2: 0.2, T3: 0.2},
}

func TestArtisticScore(t *testing.T) {
	inputs := sheet("coh", "8", "c1", "7", "c2", "7", "c3", "7", "c4", "7", "ded", "0,4")
	evaluation := Evaluate(inputs, artisticCategory)
	assert.Equal(t, "artistic", evaluation.Formula)
	assert.Equal(t, "7.000", FormatScore(evaluation.Total))
}

func TestArtisticEmptyFieldIsPresentAndZero(t *testing.T) {
	inputs := sheet("coh", "8", "c1", "7", "c2", "7", "c3", "7", "c4", "")
	evaluation := Evaluate(inputs, artisticCategory)
	assert.Equal(t, "artistic", evaluation.Formula)
	assert.Equal(t, "6.350", FormatScore(evaluation.Total))
}

func TestArtisticNeverNegative(t *testing.T) {
	inputs := sheet("coh", "1", "c1", "-5", "c2", "1", "c3", "1", "c4", "1", "ded", "9")
	assert.Equal(t, "0.000", CalculateScore(inputs, artisticCategory))
}

func TestTechArtisticScore(t *testing.T) {
	inputs := sheet("tcoh", "8", "t1", "7", "t2", "7", "t3", "7", "tded", "1")
	evaluation := Evaluate(inputs, artisticCategory)
	assert.Equal(t, "technicalArtistic", evaluation.Formula)
	assert.Equal(t, "6.400", FormatScore(evaluation.Total))
}

func TestFreeTechniqueWithDifficulty(t *testing.T) {
	category := &repository.Category{Free: repository.FreeCoefficients{R: 4, D: 3, M: 2, E: 1}}
	// performance 10 - 3/4 - 5/10, difficulty 10
	evaluation := Evaluate(sheet("records", "R2 D1 M E f5"), category)
	assert.Equal(t, "freeTechnique", evaluation.Formula)
	assert.Equal(t, "9.125", FormatScore(evaluation.Total))
}

func TestFreeTechniqueWithoutDifficulty(t *testing.T) {
	category := &repository.Category{Free: repository.FreeCoefficients{R: 4, D: 3, M: 2, E: 1}}
	assert.Equal(t, "8.000", CalculateScore(sheet("records", "2 1 3"), category))
	assert.Equal(t, "0.000", CalculateScore(sheet("records", ""), category))
	// a fall of 60 is out of range and ignored: 5*0.3 + 10*0.7
	assert.Equal(t, "8.500", CalculateScore(sheet("records", "R f60"), &repository.Category{
		Free: repository.FreeCoefficients{R: 5, NumberOfMaxExercises: 2},
	}))
}

func TestTechnicalTest(t *testing.T) {
	inputs := sheet("techrecords", "1 1", "techexercise1", "8", "techexercise2", "12")
	category := &repository.Category{TechArtistic: repository.TechArtisticCoefficients{TechDivider: 3}}
	evaluation := Evaluate(inputs, category)
	assert.Equal(t, "technicalTest", evaluation.Formula)
	// (9 + 8 + 10) / 3
	assert.Equal(t, "9.000", FormatScore(evaluation.Total))

	// default divider of 1, capped at 10
	assert.Equal(t, "10.000", CalculateScore(inputs, &repository.Category{}))
}

func TestRecordsBeforeTechRecords(t *testing.T) {
	inputs := sheet("techrecords", "1", "records", "2 2")
	assert.Equal(t, "freeTechnique", Evaluate(inputs, &repository.Category{}).Formula)
}

func TestNoFormulaApplies(t *testing.T) {
	assert.Equal(t, "0.000", CalculateScore(sheet("foo", "1"), &repository.Category{}))
	assert.Equal(t, "0.000", CalculateScore(nil, nil))
	assert.Equal(t, Evaluation{}, Evaluate(repository.InputDatas{}, nil))
}

func TestFirstOccurrenceOfFieldWins(t *testing.T) {
	category := &repository.Category{Type: repository.Individual}
	assert.Equal(t, "7.000", CalculateScore(sheet("vaulton", "7", "vaulton", "1"), category))
}

func TestFormulaOrder(t *testing.T) {
	assert.Equal(t, []string{
		"horse", "individualCompulsory", "squadPddCompulsory", "artistic",
		"technicalArtistic", "freeTechnique", "technicalTest",
	}, FormulaNames())
}

var threeDecimals = regexp.MustCompile(`^\d+\.\d{3}$`)

func TestCalculateScoreIsDeterministic(t *testing.T) {
	faker := gofakeit.New(7)
	ids := append(append([]string{}, horseFields...), compulsoryExercises...)
	ids = append(ids, "coh", "c1", "c2", "c3", "c4", "ded", "tcoh", "t1", "t2", "t3", "records", "techrecords", "vaulton_1")
	categories := []*repository.Category{
		horseCategory,
		artisticCategory,
		{Type: repository.Squad, Free: repository.FreeCoefficients{R: 1, D: 0.8, M: 0.5, E: 0.3}},
		{Type: repository.PDD, TechArtistic: repository.TechArtisticCoefficients{TechDivider: 2}},
	}
	for i := 0; i < 200; i++ {
		inputs := make(repository.InputDatas, 0)
		for _, id := range ids {
			if faker.Bool() {
				continue
			}
			value := strconv.FormatFloat(faker.Float64Range(-2, 12), 'f', faker.IntRange(0, 3), 64)
			switch faker.IntRange(0, 4) {
			case 0:
				value = faker.Word()
			case 1:
				value = ""
			}
			inputs = append(inputs, repository.InputData{Id: id, Value: value})
		}
		category := categories[i%len(categories)]
		first := CalculateScore(inputs, category)
		assert.Regexp(t, threeDecimals, first)
		assert.Equal(t, first, CalculateScore(inputs, category))
		assert.GreaterOrEqual(t, Evaluate(inputs, category).Total, 0.0)
	}
}
