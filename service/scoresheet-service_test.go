package service

import (
	"context"
	"testing"

	"vaulting/repository"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	judgeA = &repository.User{Id: 1, DisplayName: "Judge A", Permissions: pq.StringArray{"judge"}}
	judgeB = &repository.User{Id: 2, DisplayName: "Judge B", Permissions: pq.StringArray{"judge"}}
	office = &repository.User{Id: 9, DisplayName: "Office", Permissions: pq.StringArray{"office"}}
)

func compulsoryStore() (*memoryStore, *ScoreSheetService) {
	store := storeWithPart(2)
	part := store.parts[triple.TimetablePartId]
	part.Judges = []*repository.JudgeAssignment{
		{TimetablePartId: part.Id, Table: "A", UserId: judgeA.Id},
		{TimetablePartId: part.Id, Table: "B", UserId: judgeB.Id},
	}
	part.StartingOrder = []*repository.StartingOrderItem{
		{TimetablePartId: part.Id, EntryId: triple.EntryId, Order: 1, SubmittedTables: pq.StringArray{}},
	}
	store.entries[triple.EntryId] = &repository.Entry{
		Id:       triple.EntryId,
		EventId:  triple.EventId,
		Status:   repository.EntryStatusConfirmed,
		Category: &repository.Category{Id: 4, Name: "Junior", Type: repository.Individual},
	}
	return store, NewScoreSheetServiceWithStore(store, NewScoreServiceWithStore(store))
}

func submission(fe float64, pairs ...string) ScoreSheetSubmission {
	inputs := make(repository.InputDatas, 0)
	for i := 0; i+1 < len(pairs); i += 2 {
		inputs = append(inputs, repository.InputData{Id: pairs[i], Value: pairs[i+1]})
	}
	return ScoreSheetSubmission{
		TimetablePartId: triple.TimetablePartId,
		EntryId:         triple.EntryId,
		InputDatas:      inputs,
		TotalScoreFE:    fe,
	}
}

func TestSubmitCreatesScoreWhenAllJudgesSubmitted(t *testing.T) {
	store, service := compulsoryStore()

	sheet, score, err := service.Submit(context.Background(), judgeA, submission(7.5, "vaulton", "7", "flag", "8"))
	require.NoError(t, err)
	assert.Equal(t, "A", sheet.Table)
	assert.Equal(t, 7.5, sheet.TotalScoreBE)
	assert.Nil(t, score)
	assert.Equal(t, pq.StringArray{"A"}, store.parts[triple.TimetablePartId].StartingOrder[0].SubmittedTables)

	_, score, err = service.Submit(context.Background(), judgeB, submission(6.5, "vaulton", "6,5"))
	require.NoError(t, err)
	require.NotNil(t, score)
	assert.Equal(t, 7.0, score.TotalScore)
	assert.Equal(t, repository.ScoreSheetRefs{
		{ScoreSheetId: sheet.Id, Table: "A"},
		{ScoreSheetId: score.ScoreSheets[1].ScoreSheetId, Table: "B"},
	}, score.ScoreSheets)
}

func TestSubmitRejectsMismatchingTotals(t *testing.T) {
	store, service := compulsoryStore()

	_, _, err := service.Submit(context.Background(), judgeA, submission(7.4, "vaulton", "7", "flag", "8"))
	assert.ErrorIs(t, err, ErrScoreMismatch)
	assert.Empty(t, store.sheets)
	assert.Empty(t, store.parts[triple.TimetablePartId].StartingOrder[0].SubmittedTables)
}

func TestSubmitComparesRoundedTotals(t *testing.T) {
	_, service := compulsoryStore()
	_, _, err := service.Submit(context.Background(), judgeA, submission(7.33333, "vaulton", "7", "flag", "8", "mill", "7"))
	assert.NoError(t, err)
}

func TestSubmitTwiceForOneTable(t *testing.T) {
	_, service := compulsoryStore()
	_, _, err := service.Submit(context.Background(), judgeA, submission(7, "vaulton", "7"))
	require.NoError(t, err)
	_, _, err = service.Submit(context.Background(), judgeA, submission(8, "vaulton", "8"))
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
}

func TestSubmitForAnotherTable(t *testing.T) {
	_, service := compulsoryStore()
	request := submission(7, "vaulton", "7")
	request.Table = "B"
	_, _, err := service.Submit(context.Background(), judgeA, request)
	assert.ErrorIs(t, err, ErrPermission)

	stranger := &repository.User{Id: 5, Permissions: pq.StringArray{"judge"}}
	_, _, err = service.Submit(context.Background(), stranger, submission(7, "vaulton", "7"))
	assert.ErrorIs(t, err, ErrPermission)
}

func TestOfficeSubmitsForAnyTable(t *testing.T) {
	_, service := compulsoryStore()
	request := submission(7, "vaulton", "7")
	request.Table = "B"
	sheet, _, err := service.Submit(context.Background(), office, request)
	require.NoError(t, err)
	assert.Equal(t, "B", sheet.Table)

	request.Table = "C"
	_, _, err = service.Submit(context.Background(), office, request)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSubmitNeedsConfirmedEntryInStartingOrder(t *testing.T) {
	store, service := compulsoryStore()
	request := submission(7, "vaulton", "7")
	request.EntryId = 12
	_, _, err := service.Submit(context.Background(), judgeA, request)
	assert.ErrorIs(t, err, ErrValidation)

	store.entries[triple.EntryId].Status = repository.EntryStatusWithdrawn
	_, _, err = service.Submit(context.Background(), judgeA, submission(7, "vaulton", "7"))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCorrectResynchronizes(t *testing.T) {
	store, service := compulsoryStore()
	sheet, _, err := service.Submit(context.Background(), judgeA, submission(7, "vaulton", "7"))
	require.NoError(t, err)
	_, _, err = service.Submit(context.Background(), judgeB, submission(8, "vaulton", "8"))
	require.NoError(t, err)

	_, _, err = service.Correct(context.Background(), judgeA, sheet.Id, sheet.InputDatas, 7)
	assert.ErrorIs(t, err, ErrPermission)

	corrected, score, err := service.Correct(context.Background(), office, sheet.Id, repository.InputDatas{{Id: "vaulton", Value: "9"}}, 9)
	require.NoError(t, err)
	assert.Equal(t, 9.0, corrected.TotalScoreBE)
	assert.Equal(t, 8.5, score.TotalScore)
	assert.Len(t, store.scoresFor(triple), 1)

	_, _, err = service.Correct(context.Background(), office, sheet.Id, repository.InputDatas{{Id: "vaulton", Value: "9"}}, 8)
	assert.ErrorIs(t, err, ErrScoreMismatch)
}

func TestRecalculatePartAfterCoefficientChange(t *testing.T) {
	store, service := compulsoryStore()
	store.entries[triple.EntryId].Category = &repository.Category{
		Type:     repository.Individual,
		Artistic: repository.ArtisticCoefficients{CH: 0.5, C1: 0.5},
	}
	artistic := func(fe float64) ScoreSheetSubmission {
		return submission(fe, "coh", "8", "c1", "6", "c2", "0", "c3", "0", "c4", "0")
	}
	_, _, err := service.Submit(context.Background(), judgeA, artistic(7))
	require.NoError(t, err)
	_, score, err := service.Submit(context.Background(), judgeB, artistic(7))
	require.NoError(t, err)
	require.Equal(t, 7.0, score.TotalScore)

	store.entries[triple.EntryId].Category.Artistic = repository.ArtisticCoefficients{CH: 1}
	scores, err := service.RecalculatePart(context.Background(), triple.TimetablePartId)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, 8.0, scores[0].TotalScore)

	sheets, err := service.GetScoreSheetsForPart(context.Background(), triple.TimetablePartId)
	require.NoError(t, err)
	for _, sheet := range sheets {
		assert.Equal(t, 8.0, sheet.TotalScoreBE)
		assert.Equal(t, 7.0, sheet.TotalScoreFE)
	}
}

func TestSyncEntryUsesTheEventOfThePart(t *testing.T) {
	store, service := compulsoryStore()
	store.addSheet(triple, "A", 6)
	score, err := service.SyncEntry(context.Background(), triple.TimetablePartId, triple.EntryId)
	require.NoError(t, err)
	assert.Nil(t, score)

	store.addSheet(triple, "B", 7)
	score, err = service.SyncEntry(context.Background(), triple.TimetablePartId, triple.EntryId)
	require.NoError(t, err)
	require.NotNil(t, score)
	assert.Equal(t, triple.EventId, score.EventId)
	assert.Equal(t, 6.5, score.TotalScore)
}
