package service

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"vaulting/repository"

	"gorm.io/gorm"
)

// memoryStore keeps parts, entries, sheets and scores in memory. The triple
// lock is a single mutex, which serializes synchronizations like the advisory
// lock does.
type memoryStore struct {
	tripleLock sync.Mutex
	mu         sync.Mutex
	nextId     int
	parts      map[int]*repository.TimetablePart
	entries    map[int]*repository.Entry
	sheets     []*repository.ScoreSheet
	scores     []*repository.Score
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		nextId:  1000,
		parts:   make(map[int]*repository.TimetablePart),
		entries: make(map[int]*repository.Entry),
	}
}

func (s *memoryStore) scoresFor(key repository.TripleKey) []*repository.Score {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*repository.Score, 0)
	for _, score := range s.scores {
		if score.Key() == key {
			copied := *score
			out = append(out, &copied)
		}
	}
	return out
}

func (s *memoryStore) WithinTriple(ctx context.Context, key repository.TripleKey, fn func(tx repository.ScoreTx) error) error {
	s.tripleLock.Lock()
	defer s.tripleLock.Unlock()
	return fn(memoryTx{s})
}

type memoryTx struct {
	s *memoryStore
}

func (t memoryTx) GetTimetablePart(partId int) (*repository.TimetablePart, error) {
	return t.s.GetTimetablePart(context.Background(), partId)
}

func (t memoryTx) FindScores(key repository.TripleKey) ([]*repository.Score, error) {
	return t.s.scoresFor(key), nil
}

func (t memoryTx) FindScoreSheets(key repository.TripleKey) ([]*repository.ScoreSheet, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	out := make([]*repository.ScoreSheet, 0)
	for _, sheet := range t.s.sheets {
		if sheet.Key() == key {
			out = append(out, sheet)
		}
	}
	return out, nil
}

func (t memoryTx) CreateScore(score *repository.Score) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	t.s.nextId++
	score.Id = t.s.nextId
	copied := *score
	t.s.scores = append(t.s.scores, &copied)
	return nil
}

func (t memoryTx) UpdateScore(score *repository.Score) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	for i, stored := range t.s.scores {
		if stored.Id == score.Id {
			copied := *score
			t.s.scores[i] = &copied
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (s *memoryStore) GetTimetablePart(ctx context.Context, partId int) (*repository.TimetablePart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	part, ok := s.parts[partId]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return part, nil
}

func (s *memoryStore) GetEntry(ctx context.Context, entryId int) (*repository.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[entryId]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return entry, nil
}

func (s *memoryStore) GetScoreSheet(ctx context.Context, id int) (*repository.ScoreSheet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sheet := range s.sheets {
		if sheet.Id == id {
			copied := *sheet
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *memoryStore) FindScoreSheetForTable(ctx context.Context, key repository.TripleKey, table string) (*repository.ScoreSheet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sheet := range s.sheets {
		if sheet.Key() == key && sheet.Table == table {
			return sheet, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *memoryStore) GetScoreSheetsForPart(ctx context.Context, partId int) ([]*repository.ScoreSheet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*repository.ScoreSheet, 0)
	for _, sheet := range s.sheets {
		if sheet.TimetablePartId == partId {
			copied := *sheet
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (s *memoryStore) CreateScoreSheet(ctx context.Context, sheet *repository.ScoreSheet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, stored := range s.sheets {
		if stored.Key() == sheet.Key() && stored.Table == sheet.Table {
			return fmt.Errorf("duplicate key value violates unique constraint \"idx_scoresheet_judge_table\"")
		}
	}
	s.nextId++
	sheet.Id = s.nextId
	copied := *sheet
	s.sheets = append(s.sheets, &copied)
	return nil
}

func (s *memoryStore) SaveScoreSheet(ctx context.Context, sheet *repository.ScoreSheet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, stored := range s.sheets {
		if stored.Id == sheet.Id {
			copied := *sheet
			s.sheets[i] = &copied
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (s *memoryStore) MarkTableSubmitted(ctx context.Context, partId int, entryId int, table string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	part, ok := s.parts[partId]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for _, item := range part.StartingOrder {
		if item.EntryId == entryId && !slices.Contains(item.SubmittedTables, table) {
			item.SubmittedTables = append(item.SubmittedTables, table)
		}
	}
	return nil
}

func (s *memoryStore) addSheet(key repository.TripleKey, table string, total float64) *repository.ScoreSheet {
	sheet := &repository.ScoreSheet{
		TimetablePartId: key.TimetablePartId,
		EntryId:         key.EntryId,
		EventId:         key.EventId,
		Table:           table,
		TotalScoreFE:    total,
		TotalScoreBE:    total,
	}
	if err := s.CreateScoreSheet(context.Background(), sheet); err != nil {
		panic(err)
	}
	return sheet
}
