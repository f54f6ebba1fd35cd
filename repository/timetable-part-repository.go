package repository

import (
	"context"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PartOfRound string

const (
	FirstPart  PartOfRound = "first"
	SecondPart PartOfRound = "second"
)

var JudgeTables = []string{"A", "B", "C", "D", "E", "F", "G", "H"}

type TimetablePart struct {
	Id             int                  `gorm:"primaryKey"`
	EventId        int                  `gorm:"not null;index"`
	Name           string               `gorm:"not null" validate:"required"`
	Round          int                  `gorm:"not null;default:1" validate:"oneof=1 2"`
	Part           PartOfRound          `gorm:"not null;default:first" validate:"oneof=first second"`
	StartTime      time.Time            `gorm:"null"`
	NumberOfJudges int                  `gorm:"not null;default:1" validate:"oneof=1 2 4 6 8"`
	TestType       string               `gorm:"null"`
	Categories     []*Category          `gorm:"many2many:timetable_part_categories;"`
	Judges         []*JudgeAssignment   `gorm:"foreignKey:TimetablePartId;constraint:OnDelete:CASCADE"`
	StartingOrder  []*StartingOrderItem `gorm:"foreignKey:TimetablePartId;constraint:OnDelete:CASCADE"`
}

type JudgeAssignment struct {
	TimetablePartId int    `gorm:"primaryKey"`
	Table           string `gorm:"primaryKey"`
	UserId          int    `gorm:"not null;index"`
}

type StartingOrderItem struct {
	TimetablePartId int            `gorm:"primaryKey"`
	EntryId         int            `gorm:"primaryKey"`
	Order           int            `gorm:"not null"`
	SubmittedTables pq.StringArray `gorm:"type:text[];not null;default:'{}'"`

	Entry *Entry `gorm:"foreignKey:EntryId;constraint:OnDelete:CASCADE;"`
}

// Tables returns the judge tables used by the part, A onwards.
func (p *TimetablePart) Tables() []string {
	n := min(max(p.NumberOfJudges, 0), len(JudgeTables))
	return JudgeTables[:n]
}

// TableOf returns the table the user judges in this part.
func (p *TimetablePart) TableOf(userId int) (string, bool) {
	for _, judge := range p.Judges {
		if judge.UserId == userId {
			return judge.Table, true
		}
	}
	return "", false
}

func (p *TimetablePart) HasCategory(categoryId int) bool {
	for _, category := range p.Categories {
		if category.Id == categoryId {
			return true
		}
	}
	return false
}

func (p *TimetablePart) StartingOrderFor(entryId int) *StartingOrderItem {
	for _, item := range p.StartingOrder {
		if item.EntryId == entryId {
			return item
		}
	}
	return nil
}

type TimetablePartRepository struct {
	DB *gorm.DB
}

func NewTimetablePartRepository(db *gorm.DB) *TimetablePartRepository {
	return &TimetablePartRepository{DB: db}
}

func (r *TimetablePartRepository) GetTimetablePartById(ctx context.Context, partId int, preloads ...string) (*TimetablePart, error) {
	var part TimetablePart
	query := r.DB.WithContext(ctx)
	for _, preload := range preloads {
		if preload == "StartingOrder" {
			query = query.Preload("StartingOrder", func(db *gorm.DB) *gorm.DB {
				return db.Order(`"order"`)
			})
			continue
		}
		query = query.Preload(preload)
	}
	result := query.First(&part, partId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &part, nil
}

func (r *TimetablePartRepository) GetTimetablePartsForEvent(eventId int) ([]*TimetablePart, error) {
	parts := make([]*TimetablePart, 0)
	result := r.DB.Preload("Categories").Preload("Judges").
		Where("event_id = ?", eventId).Order("start_time").Find(&parts)
	if result.Error != nil {
		return nil, result.Error
	}
	return parts, nil
}

func (r *TimetablePartRepository) SaveTimetablePart(part *TimetablePart) (*TimetablePart, error) {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Categories.*", "Judges", "StartingOrder").Save(part).Error; err != nil {
			return err
		}
		return tx.Model(part).Association("Categories").Replace(part.Categories)
	})
	if err != nil {
		return nil, err
	}
	return part, nil
}

func (r *TimetablePartRepository) ReplaceJudges(partId int, judges []*JudgeAssignment) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("timetable_part_id = ?", partId).Delete(&JudgeAssignment{}).Error; err != nil {
			return err
		}
		if len(judges) == 0 {
			return nil
		}
		for _, judge := range judges {
			judge.TimetablePartId = partId
		}
		return tx.Create(&judges).Error
	})
}

// ReplaceStartingOrder rewrites the order of the part while keeping the
// tables that already submitted for entries that stay in the list.
func (r *TimetablePartRepository) ReplaceStartingOrder(partId int, items []*StartingOrderItem) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		existing := make([]*StartingOrderItem, 0)
		if err := tx.Where("timetable_part_id = ?", partId).Find(&existing).Error; err != nil {
			return err
		}
		submitted := make(map[int]pq.StringArray)
		for _, item := range existing {
			submitted[item.EntryId] = item.SubmittedTables
		}
		if err := tx.Where("timetable_part_id = ?", partId).Delete(&StartingOrderItem{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		for _, item := range items {
			item.TimetablePartId = partId
			item.SubmittedTables = submitted[item.EntryId]
			if item.SubmittedTables == nil {
				item.SubmittedTables = pq.StringArray{}
			}
		}
		return tx.Omit(clause.Associations).Create(&items).Error
	})
}

// MarkTableSubmitted appends the table to the entry's submitted tables unless
// it is already listed.
func (r *TimetablePartRepository) MarkTableSubmitted(ctx context.Context, partId int, entryId int, table string) error {
	return r.DB.WithContext(ctx).Exec(`
		UPDATE starting_order_items
		SET submitted_tables = array_append(submitted_tables, @table)
		WHERE timetable_part_id = @partId AND entry_id = @entryId AND NOT (@table = ANY(submitted_tables))
	`, map[string]interface{}{"table": table, "partId": partId, "entryId": entryId}).Error
}

func (r *TimetablePartRepository) DeleteTimetablePart(partId int) error {
	return r.DB.Delete(&TimetablePart{}, partId).Error
}
