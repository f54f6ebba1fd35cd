package service

import (
	"testing"

	"vaulting/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedYaml = `
categories:
  - name: Junior Individual 2*
    type: Individual
    age_group: junior
    star: 2
    horse: {A1: 0.5, A2: 0.25, A3: 0.25}
    free: {R: 0.4, D: 0.3, M: 0.2, E: 0.1, NumberOfMaxExercises: 10}
    artistic: {CH: 0.4, C1: 0.15, C2: 0.15, C3: 0.15, C4: 0.15}
  - name: Squad 3*
    type: Squad
    star: 3
calc_templates:
  - name: two rounds
    round1FirstP: 25
    round1SecondP: 25
    round2FirstP: 50
`

func TestParseSeed(t *testing.T) {
	seed, err := ParseSeed([]byte(seedYaml))
	require.NoError(t, err)
	require.Len(t, seed.Categories, 2)
	assert.Equal(t, repository.Individual, seed.Categories[0].Type)
	assert.Equal(t, 0.25, seed.Categories[0].Horse.A2)
	assert.Equal(t, 10, seed.Categories[0].Free.NumberOfMaxExercises)
	assert.Equal(t, 0.15, seed.Categories[0].Artistic.C4)
	assert.Equal(t, repository.Squad, seed.Categories[1].Type)
	require.Len(t, seed.CalcTemplates, 1)
	assert.Equal(t, 100.0, seed.CalcTemplates[0].Sum())
}

func TestParseSeedRejectsInvalidRules(t *testing.T) {
	_, err := ParseSeed([]byte(`
categories:
  - name: broken
    type: Team
    star: 1
`))
	assert.ErrorIs(t, err, ErrValidation)

	_, err = ParseSeed([]byte(`
categories:
  - name: too heavy
    type: Individual
    star: 1
    horse: {A1: 1.5}
`))
	assert.ErrorIs(t, err, ErrValidation)

	_, err = ParseSeed([]byte(`
calc_templates:
  - name: short
    round1FirstP: 25
    round1SecondP: 25
    round2FirstP: 25
`))
	assert.ErrorIs(t, err, ErrValidation)

	_, err = ParseSeed([]byte("categories: ["))
	assert.Error(t, err)
}

func TestValidateCalcTemplate(t *testing.T) {
	assert.NoError(t, ValidateCalcTemplate(&repository.CalcTemplate{Name: "single", Round1FirstP: 100}))
	assert.ErrorIs(t, ValidateCalcTemplate(&repository.CalcTemplate{Name: "negative", Round1FirstP: 120, Round2FirstP: -20}), ErrValidation)
	assert.ErrorIs(t, ValidateCalcTemplate(&repository.CalcTemplate{Round1FirstP: 100}), ErrValidation)
}
