package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"vaulting/metrics"
	"vaulting/repository"
	"vaulting/scoring"

	"gorm.io/gorm"
)

type ScoreSyncStore interface {
	WithinTriple(ctx context.Context, key repository.TripleKey, fn func(tx repository.ScoreTx) error) error
}

type ScoreService struct {
	store ScoreSyncStore
}

func NewScoreService(db *gorm.DB) *ScoreService {
	return NewScoreServiceWithStore(repository.NewScoreRepository(db))
}

func NewScoreServiceWithStore(store ScoreSyncStore) *ScoreService {
	return &ScoreService{store: store}
}

// SyncScoreTable brings the score of one entry in a timetable part in line
// with the submitted score sheets. It returns nil while judges are missing.
// The whole read-check-write holds the lock of the triple.
func (s *ScoreService) SyncScoreTable(ctx context.Context, timetablePartId int, entryId int, eventId int) (*repository.Score, error) {
	key := repository.TripleKey{TimetablePartId: timetablePartId, EntryId: entryId, EventId: eventId}
	var synced *repository.Score
	err := s.store.WithinTriple(ctx, key, func(tx repository.ScoreTx) error {
		part, err := tx.GetTimetablePart(timetablePartId)
		if err != nil {
			return fmt.Errorf("failed to load timetable part %d: %w", timetablePartId, err)
		}
		existing, err := tx.FindScores(key)
		if err != nil {
			return err
		}
		sheets, err := tx.FindScoreSheets(key)
		if err != nil {
			return err
		}
		plan, err := scoring.PlanSync(key, existing, sheets, part.NumberOfJudges)
		if err != nil {
			return err
		}
		switch plan.Action {
		case scoring.SyncCreate:
			err = tx.CreateScore(plan.Score)
		case scoring.SyncUpdate:
			err = tx.UpdateScore(plan.Score)
		}
		if err != nil {
			return err
		}
		metrics.SyncOutcomes.WithLabelValues(string(plan.Action)).Inc()
		synced = plan.Score
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrDataInconsistency) {
			metrics.SyncOutcomes.WithLabelValues("inconsistent").Inc()
			log.Printf("score sync failed for %s: %v", key, err)
		}
		return nil, err
	}
	return synced, nil
}
