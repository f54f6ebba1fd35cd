package repository

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// InputData is one raw field of a judge's score sheet. Values stay strings:
// judges type locale decimals such as "7,5".
type InputData struct {
	Id    string `json:"id"`
	Value string `json:"value"`
}

type InputDatas []InputData

func (d *InputDatas) Scan(value interface{}) error {
	if value == nil {
		*d = InputDatas{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for InputDatas: %T", value)
	}
	return json.Unmarshal(data, d)
}

func (d InputDatas) Value() (driver.Value, error) {
	if d == nil {
		return "[]", nil
	}
	data, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Lookup returns the value of the first field with the given id.
func (d InputDatas) Lookup(id string) (string, bool) {
	for _, input := range d {
		if input.Id == id {
			return input.Value, true
		}
	}
	return "", false
}

type ScoreSheet struct {
	Id              int        `gorm:"primaryKey"`
	EventId         int        `gorm:"not null;uniqueIndex:idx_scoresheet_judge_table"`
	TimetablePartId int        `gorm:"not null;uniqueIndex:idx_scoresheet_judge_table"`
	EntryId         int        `gorm:"not null;uniqueIndex:idx_scoresheet_judge_table"`
	Table           string     `gorm:"not null;uniqueIndex:idx_scoresheet_judge_table"`
	JudgeUserId     int        `gorm:"not null"`
	InputDatas      InputDatas `gorm:"type:jsonb;not null"`
	TotalScoreFE    float64    `gorm:"not null"`
	TotalScoreBE    float64    `gorm:"not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	TimetablePart *TimetablePart `gorm:"foreignKey:TimetablePartId;constraint:OnDelete:CASCADE;"`
	Entry         *Entry         `gorm:"foreignKey:EntryId;constraint:OnDelete:CASCADE;"`
}

func (s *ScoreSheet) Key() TripleKey {
	return TripleKey{TimetablePartId: s.TimetablePartId, EntryId: s.EntryId, EventId: s.EventId}
}

type ScoreSheetRepository struct {
	DB *gorm.DB
}

func NewScoreSheetRepository(db *gorm.DB) *ScoreSheetRepository {
	return &ScoreSheetRepository{DB: db}
}

func (r *ScoreSheetRepository) GetScoreSheetById(ctx context.Context, id int) (*ScoreSheet, error) {
	var sheet ScoreSheet
	result := r.DB.WithContext(ctx).First(&sheet, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &sheet, nil
}

// GetScoreSheetForJudge looks a sheet up by (timetable part, entry, event, table).
func (r *ScoreSheetRepository) GetScoreSheetForJudge(ctx context.Context, key TripleKey, table string) (*ScoreSheet, error) {
	var sheet ScoreSheet
	result := r.DB.WithContext(ctx).First(&sheet,
		"timetable_part_id = ? AND entry_id = ? AND event_id = ? AND \"table\" = ?",
		key.TimetablePartId, key.EntryId, key.EventId, table)
	if result.Error != nil {
		return nil, result.Error
	}
	return &sheet, nil
}

func (r *ScoreSheetRepository) GetScoreSheetsForPart(ctx context.Context, partId int) ([]*ScoreSheet, error) {
	sheets := make([]*ScoreSheet, 0)
	result := r.DB.WithContext(ctx).Where("timetable_part_id = ?", partId).Order("entry_id, \"table\"").Find(&sheets)
	if result.Error != nil {
		return nil, result.Error
	}
	return sheets, nil
}

func (r *ScoreSheetRepository) CreateScoreSheet(ctx context.Context, sheet *ScoreSheet) (*ScoreSheet, error) {
	result := r.DB.WithContext(ctx).Create(sheet)
	if result.Error != nil {
		return nil, result.Error
	}
	return sheet, nil
}

func (r *ScoreSheetRepository) SaveScoreSheet(ctx context.Context, sheet *ScoreSheet) (*ScoreSheet, error) {
	result := r.DB.WithContext(ctx).Omit("TimetablePart", "Entry").Save(sheet)
	if result.Error != nil {
		return nil, result.Error
	}
	return sheet, nil
}
