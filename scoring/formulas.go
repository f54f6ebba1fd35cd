package scoring

import (
	"vaulting/repository"
)

// Formula is one way of turning a judge's raw fields into a total. Formulas
// are tried in the order of the formulas table and the first one that applies
// wins, so the field sets below must not be loosened.
type Formula struct {
	Name      string
	Applies   func(fields *fields, category *repository.Category) bool
	Calculate func(fields *fields, category *repository.Category) float64
}

type Evaluation struct {
	Formula string  `json:"formula"`
	Total   float64 `json:"total"`
}

var formulas = []Formula{
	{Name: "horse", Applies: hasHorseFields, Calculate: horseScore},
	{Name: "individualCompulsory", Applies: hasIndividualCompulsoryFields, Calculate: individualCompulsoryScore},
	{Name: "squadPddCompulsory", Applies: hasSquadPddCompulsoryFields, Calculate: squadPddCompulsoryScore},
	{Name: "artistic", Applies: hasArtisticFields, Calculate: artisticScore},
	{Name: "technicalArtistic", Applies: hasTechArtisticFields, Calculate: techArtisticScore},
	{Name: "freeTechnique", Applies: hasRecords, Calculate: freeTechniqueScore},
	{Name: "technicalTest", Applies: hasTechRecords, Calculate: technicalTestScore},
}

func FormulaNames() []string {
	names := make([]string, len(formulas))
	for i, formula := range formulas {
		names[i] = formula.Name
	}
	return names
}

// Evaluate runs the first applicable formula. The returned total is already
// rounded to three decimals; Formula is empty when no formula applied.
func Evaluate(inputs repository.InputDatas, category *repository.Category) Evaluation {
	if category == nil {
		category = &repository.Category{}
	}
	f := newFields(inputs)
	for _, formula := range formulas {
		if !formula.Applies(f, category) {
			continue
		}
		total := ExcelRound(formula.Calculate(f, category))
		return Evaluation{Formula: formula.Name, Total: total}
	}
	return Evaluation{Total: 0}
}

// CalculateScore returns the three decimal total of a score sheet, "0.000"
// when no formula applies.
func CalculateScore(inputs repository.InputDatas, category *repository.Category) string {
	return FormatScore(Evaluate(inputs, category).Total)
}

// fields indexes a sheet's inputs by id. The first occurrence of an id wins.
type fields struct {
	ordered repository.InputDatas
	byId    map[string]string
}

func newFields(inputs repository.InputDatas) *fields {
	f := &fields{ordered: inputs, byId: make(map[string]string, len(inputs))}
	for _, input := range inputs {
		if _, ok := f.byId[input.Id]; !ok {
			f.byId[input.Id] = input.Value
		}
	}
	return f
}

// has reports whether every id is present. An empty value counts as present
// and reads as 0 in the formulas.
func (f *fields) has(ids ...string) bool {
	for _, id := range ids {
		if _, ok := f.byId[id]; !ok {
			return false
		}
	}
	return true
}

func (f *fields) hasAny(ids ...string) bool {
	for _, id := range ids {
		if _, ok := f.byId[id]; ok {
			return true
		}
	}
	return false
}

func (f *fields) number(id string) float64 {
	return number(f.byId[id])
}

func (f *fields) sum(ids ...string) float64 {
	total := 0.0
	for _, id := range ids {
		total += f.number(id)
	}
	return total
}
