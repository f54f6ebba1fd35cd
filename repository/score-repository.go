package repository

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"time"

	"gorm.io/gorm"
)

// TripleKey identifies the single Score of an entry in a timetable part.
type TripleKey struct {
	TimetablePartId int
	EntryId         int
	EventId         int
}

func (k TripleKey) String() string {
	return fmt.Sprintf("part=%d entry=%d event=%d", k.TimetablePartId, k.EntryId, k.EventId)
}

// lockId maps the key onto the int64 space of postgres advisory locks.
func (k TripleKey) lockId() int64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "score:%d:%d:%d", k.TimetablePartId, k.EntryId, k.EventId)
	return int64(h.Sum64())
}

type ScoreSheetRef struct {
	ScoreSheetId int    `json:"scoreSheetId"`
	Table        string `json:"table"`
}

type ScoreSheetRefs []ScoreSheetRef

func (s *ScoreSheetRefs) Scan(value interface{}) error {
	if value == nil {
		*s = ScoreSheetRefs{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for ScoreSheetRefs: %T", value)
	}
	return json.Unmarshal(data, s)
}

func (s ScoreSheetRefs) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

type Score struct {
	Id              int            `gorm:"primaryKey"`
	TimetablePartId int            `gorm:"not null;uniqueIndex:idx_score_triple"`
	EntryId         int            `gorm:"not null;uniqueIndex:idx_score_triple"`
	EventId         int            `gorm:"not null;uniqueIndex:idx_score_triple"`
	ScoreSheets     ScoreSheetRefs `gorm:"type:jsonb;not null"`
	TotalScore      float64        `gorm:"not null"`

	Entry *Entry `gorm:"foreignKey:EntryId;constraint:OnDelete:CASCADE;"`
}

func (s *Score) Key() TripleKey {
	return TripleKey{TimetablePartId: s.TimetablePartId, EntryId: s.EntryId, EventId: s.EventId}
}

// ScoreTx is the view of the store that score synchronization works on while
// it holds the lock of one triple.
type ScoreTx interface {
	GetTimetablePart(partId int) (*TimetablePart, error)
	FindScores(key TripleKey) ([]*Score, error)
	FindScoreSheets(key TripleKey) ([]*ScoreSheet, error)
	CreateScore(score *Score) error
	UpdateScore(score *Score) error
}

type ScoreRepository struct {
	DB *gorm.DB
}

func NewScoreRepository(db *gorm.DB) *ScoreRepository {
	return &ScoreRepository{DB: db}
}

// WithinTriple runs fn in a transaction that holds a transaction scoped
// advisory lock for the key. Concurrent synchronizations of the same triple
// run one after the other.
func (r *ScoreRepository) WithinTriple(ctx context.Context, key TripleKey, fn func(tx ScoreTx) error) error {
	defer observe("WithinTriple", time.Now())
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", key.lockId()).Error; err != nil {
			return fmt.Errorf("failed to lock %s: %w", key, err)
		}
		return fn(&scoreTx{db: tx})
	})
}

// GetScoresForPart returns the scores of the given entries in a timetable part
// with the entries' vaulters, horse and lunger populated.
func (r *ScoreRepository) GetScoresForPart(ctx context.Context, partId int, eventId int, entryIds []int) ([]*Score, error) {
	defer observe("GetScoresForPart", time.Now())
	scores := make([]*Score, 0)
	if len(entryIds) == 0 {
		return scores, nil
	}
	result := r.DB.WithContext(ctx).
		Preload("Entry").Preload("Entry.Vaulters").Preload("Entry.Horse").Preload("Entry.Lunger").
		Where("timetable_part_id = ? AND event_id = ? AND entry_id IN ?", partId, eventId, entryIds).
		Order("entry_id").
		Find(&scores)
	if result.Error != nil {
		return nil, result.Error
	}
	return scores, nil
}

func (r *ScoreRepository) GetScore(ctx context.Context, key TripleKey) (*Score, error) {
	var score Score
	result := r.DB.WithContext(ctx).First(&score, "timetable_part_id = ? AND entry_id = ? AND event_id = ?",
		key.TimetablePartId, key.EntryId, key.EventId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &score, nil
}

type scoreTx struct {
	db *gorm.DB
}

func (t *scoreTx) GetTimetablePart(partId int) (*TimetablePart, error) {
	var part TimetablePart
	if err := t.db.First(&part, partId).Error; err != nil {
		return nil, err
	}
	return &part, nil
}

func (t *scoreTx) FindScores(key TripleKey) ([]*Score, error) {
	scores := make([]*Score, 0)
	err := t.db.Where("timetable_part_id = ? AND entry_id = ? AND event_id = ?",
		key.TimetablePartId, key.EntryId, key.EventId).Order("id").Find(&scores).Error
	return scores, err
}

func (t *scoreTx) FindScoreSheets(key TripleKey) ([]*ScoreSheet, error) {
	sheets := make([]*ScoreSheet, 0)
	err := t.db.Where("timetable_part_id = ? AND entry_id = ? AND event_id = ?",
		key.TimetablePartId, key.EntryId, key.EventId).Order("\"table\", id").Find(&sheets).Error
	return sheets, err
}

func (t *scoreTx) CreateScore(score *Score) error {
	return t.db.Omit("Entry").Create(score).Error
}

func (t *scoreTx) UpdateScore(score *Score) error {
	return t.db.Model(&Score{}).Where("id = ?", score.Id).Updates(map[string]interface{}{
		"score_sheets": score.ScoreSheets,
		"total_score":  score.TotalScore,
	}).Error
}
