package service

import (
	"context"
	"sync"
	"testing"

	"vaulting/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var triple = repository.TripleKey{TimetablePartId: 1, EntryId: 11, EventId: 7}

func storeWithPart(numberOfJudges int) *memoryStore {
	store := newMemoryStore()
	store.parts[triple.TimetablePartId] = &repository.TimetablePart{
		Id:             triple.TimetablePartId,
		EventId:        triple.EventId,
		Name:           "Round 1 First Part",
		NumberOfJudges: numberOfJudges,
	}
	return store
}

func TestSyncScoreTableWaitsForAllJudges(t *testing.T) {
	store := storeWithPart(4)
	service := NewScoreServiceWithStore(store)
	totals := []float64{7.2, 6.8, 7.5}
	for i, total := range totals {
		store.addSheet(triple, repository.JudgeTables[i], total)
	}

	score, err := service.SyncScoreTable(context.Background(), triple.TimetablePartId, triple.EntryId, triple.EventId)
	require.NoError(t, err)
	assert.Nil(t, score)
	assert.Empty(t, store.scoresFor(triple))

	store.addSheet(triple, "D", 7.1)
	score, err = service.SyncScoreTable(context.Background(), triple.TimetablePartId, triple.EntryId, triple.EventId)
	require.NoError(t, err)
	require.NotNil(t, score)
	assert.InDelta(t, (7.2+6.8+7.5+7.1)/4, score.TotalScore, 1e-9)
	assert.Len(t, score.ScoreSheets, 4)
	assert.Len(t, store.scoresFor(triple), 1)
}

func TestSyncScoreTableIsIdempotent(t *testing.T) {
	store := storeWithPart(2)
	service := NewScoreServiceWithStore(store)
	store.addSheet(triple, "B", 6.4)
	store.addSheet(triple, "A", 7.3)

	first, err := service.SyncScoreTable(context.Background(), triple.TimetablePartId, triple.EntryId, triple.EventId)
	require.NoError(t, err)
	second, err := service.SyncScoreTable(context.Background(), triple.TimetablePartId, triple.EntryId, triple.EventId)
	require.NoError(t, err)

	assert.Equal(t, first.TotalScore, second.TotalScore)
	assert.Equal(t, first.ScoreSheets, second.ScoreSheets)
	assert.Equal(t, first.Id, second.Id)
	assert.Len(t, store.scoresFor(triple), 1)
}

func TestSyncScoreTableUpdatesAfterCorrection(t *testing.T) {
	store := storeWithPart(1)
	service := NewScoreServiceWithStore(store)
	sheet := store.addSheet(triple, "A", 6.0)
	_, err := service.SyncScoreTable(context.Background(), triple.TimetablePartId, triple.EntryId, triple.EventId)
	require.NoError(t, err)

	sheet.TotalScoreBE = 6.5
	require.NoError(t, store.SaveScoreSheet(context.Background(), sheet))
	score, err := service.SyncScoreTable(context.Background(), triple.TimetablePartId, triple.EntryId, triple.EventId)
	require.NoError(t, err)
	assert.Equal(t, 6.5, score.TotalScore)
	assert.Len(t, store.scoresFor(triple), 1)
}

func TestSyncScoreTableRejectsDuplicateScores(t *testing.T) {
	store := storeWithPart(1)
	store.addSheet(triple, "A", 6.0)
	store.scores = []*repository.Score{
		{Id: 1, TimetablePartId: triple.TimetablePartId, EntryId: triple.EntryId, EventId: triple.EventId},
		{Id: 2, TimetablePartId: triple.TimetablePartId, EntryId: triple.EntryId, EventId: triple.EventId},
	}
	service := NewScoreServiceWithStore(store)

	score, err := service.SyncScoreTable(context.Background(), triple.TimetablePartId, triple.EntryId, triple.EventId)
	assert.ErrorIs(t, err, ErrDataInconsistency)
	assert.Nil(t, score)
}

func TestSyncScoreTableUnknownPart(t *testing.T) {
	service := NewScoreServiceWithStore(newMemoryStore())
	_, err := service.SyncScoreTable(context.Background(), 99, 1, 1)
	assert.Error(t, err)
}

func TestConcurrentSubmissionsCreateOneScore(t *testing.T) {
	store := storeWithPart(8)
	service := NewScoreServiceWithStore(store)
	var wg sync.WaitGroup
	for i, table := range repository.JudgeTables {
		i, table := i, table
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.addSheet(triple, table, float64(5+i%3))
			_, err := service.SyncScoreTable(context.Background(), triple.TimetablePartId, triple.EntryId, triple.EventId)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	scores := store.scoresFor(triple)
	require.Len(t, scores, 1)
	assert.Len(t, scores[0].ScoreSheets, 8)
}
