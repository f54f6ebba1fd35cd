package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

type EntryStatus string

const (
	EntryStatusRegistered EntryStatus = "registered"
	EntryStatusConfirmed  EntryStatus = "confirmed"
	EntryStatusWithdrawn  EntryStatus = "withdrawn"
	EntryStatusEliminated EntryStatus = "eliminated"
)

type PersonRole string

const (
	RoleVaulter PersonRole = "vaulter"
	RoleLunger  PersonRole = "lunger"
)

type Person struct {
	Id          int        `gorm:"primaryKey"`
	Name        string     `gorm:"not null"`
	Nationality string     `gorm:"null"`
	Role        PersonRole `gorm:"not null"`
}

type Horse struct {
	Id       int    `gorm:"primaryKey"`
	Name     string `gorm:"not null"`
	Passport string `gorm:"null"`
}

type Entry struct {
	Id         int         `gorm:"primaryKey"`
	EventId    int         `gorm:"not null;index:idx_entry_event_category"`
	CategoryId int         `gorm:"not null;index:idx_entry_event_category"`
	HorseId    *int        `gorm:"null"`
	LungerId   *int        `gorm:"null"`
	Club       string      `gorm:"null"`
	Status     EntryStatus `gorm:"not null;default:registered"`

	Event    *Event    `gorm:"foreignKey:EventId;constraint:OnDelete:CASCADE;"`
	Category *Category `gorm:"foreignKey:CategoryId;constraint:OnDelete:RESTRICT;"`
	Horse    *Horse    `gorm:"foreignKey:HorseId;constraint:OnDelete:SET NULL;"`
	Lunger   *Person   `gorm:"foreignKey:LungerId;constraint:OnDelete:SET NULL;"`
	Vaulters []*Person `gorm:"many2many:entry_vaulters;"`
}

// DisplayName joins the vaulter names, the way start lists print an entry.
func (e *Entry) DisplayName() string {
	names := make([]string, 0, len(e.Vaulters))
	for _, vaulter := range e.Vaulters {
		names = append(names, vaulter.Name)
	}
	if len(names) == 0 {
		return e.Club
	}
	return strings.Join(names, ", ")
}

type EntryRepository struct {
	DB *gorm.DB
}

func NewEntryRepository(db *gorm.DB) *EntryRepository {
	return &EntryRepository{DB: db}
}

func (r *EntryRepository) GetEntryById(entryId int, preloads ...string) (*Entry, error) {
	var entry Entry
	query := r.DB
	for _, preload := range preloads {
		query = query.Preload(preload)
	}
	result := query.First(&entry, entryId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &entry, nil
}

func (r *EntryRepository) GetEntriesForEvent(eventId int) ([]*Entry, error) {
	entries := make([]*Entry, 0)
	result := r.DB.Preload("Vaulters").Preload("Horse").Preload("Lunger").Preload("Category").
		Where("event_id = ?", eventId).Order("id").Find(&entries)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find entries: %v", result.Error)
	}
	return entries, nil
}

// GetConfirmedEntries returns the confirmed entries of a category with
// vaulters, horse, lunger and category populated.
func (r *EntryRepository) GetConfirmedEntries(ctx context.Context, eventId int, categoryId int) ([]*Entry, error) {
	defer observe("GetConfirmedEntries", time.Now())
	entries := make([]*Entry, 0)
	result := r.DB.WithContext(ctx).
		Preload("Vaulters").Preload("Horse").Preload("Lunger").Preload("Category").
		Where("event_id = ? AND category_id = ? AND status = ?", eventId, categoryId, EntryStatusConfirmed).
		Order("id").
		Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}
	return entries, nil
}

func (r *EntryRepository) SaveEntry(entry *Entry) (*Entry, error) {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Vaulters.*").Save(entry).Error; err != nil {
			return err
		}
		return tx.Model(entry).Association("Vaulters").Replace(entry.Vaulters)
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (r *EntryRepository) SetStatus(entryId int, status EntryStatus) error {
	return r.DB.Model(&Entry{}).Where("id = ?", entryId).Update("status", status).Error
}

func (r *EntryRepository) DeleteEntry(entryId int) error {
	return r.DB.Delete(&Entry{}, entryId).Error
}

type PersonRepository struct {
	DB *gorm.DB
}

func NewPersonRepository(db *gorm.DB) *PersonRepository {
	return &PersonRepository{DB: db}
}

func (r *PersonRepository) GetPeopleByIds(ids []int) ([]*Person, error) {
	people := make([]*Person, 0)
	if len(ids) == 0 {
		return people, nil
	}
	result := r.DB.Find(&people, "id IN ?", ids)
	if result.Error != nil {
		return nil, result.Error
	}
	return people, nil
}

func (r *PersonRepository) FindAll(role PersonRole) ([]*Person, error) {
	people := make([]*Person, 0)
	result := r.DB.Where("role = ?", role).Order("name").Find(&people)
	if result.Error != nil {
		return nil, result.Error
	}
	return people, nil
}

func (r *PersonRepository) SavePerson(person *Person) (*Person, error) {
	result := r.DB.Save(person)
	if result.Error != nil {
		return nil, result.Error
	}
	return person, nil
}

func (r *PersonRepository) SaveHorse(horse *Horse) (*Horse, error) {
	result := r.DB.Save(horse)
	if result.Error != nil {
		return nil, result.Error
	}
	return horse, nil
}

func (r *PersonRepository) FindAllHorses() ([]*Horse, error) {
	horses := make([]*Horse, 0)
	result := r.DB.Order("name").Find(&horses)
	if result.Error != nil {
		return nil, result.Error
	}
	return horses, nil
}
