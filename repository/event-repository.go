package repository

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Event struct {
	Id         int       `gorm:"primaryKey"`
	Name       string    `gorm:"not null"`
	Location   string    `gorm:"null"`
	StartDate  time.Time `gorm:"null"`
	EndDate    time.Time `gorm:"null"`
	IsSelected bool      `gorm:"not null"`
}

type EventRepository struct {
	DB *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{DB: db}
}

func (r *EventRepository) GetSelectedEvent() (*Event, error) {
	var event *Event
	result := r.DB.Where("is_selected = ?", true).First(&event)
	if result.Error != nil {
		return nil, result.Error
	}
	return event, nil
}

func (r *EventRepository) GetEventById(eventId int) (*Event, error) {
	var event *Event
	result := r.DB.First(&event, eventId)
	if result.Error != nil {
		return nil, result.Error
	}
	return event, nil
}

// Save persists the event. Selecting an event deselects every other event in
// the same transaction, so at most one event is selected at any time.
func (r *EventRepository) Save(event *Event) (*Event, error) {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if event.IsSelected {
			result := tx.Model(&Event{}).Where("is_selected = ? AND id <> ?", true, event.Id).Update("is_selected", false)
			if result.Error != nil {
				return fmt.Errorf("failed to deselect current event: %v", result.Error)
			}
		}
		return tx.Save(event).Error
	})
	if err != nil {
		return nil, err
	}
	return event, nil
}

func (r *EventRepository) Delete(eventId int) error {
	return r.DB.Delete(&Event{}, eventId).Error
}

func (r *EventRepository) FindAll() ([]*Event, error) {
	events := make([]*Event, 0)
	result := r.DB.Order("start_date DESC").Find(&events)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find events: %v", result.Error)
	}
	return events, nil
}
