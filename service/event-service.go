package service

import (
	"vaulting/repository"

	"gorm.io/gorm"
)

type EventService struct {
	event_repository *repository.EventRepository
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{
		event_repository: repository.NewEventRepository(db),
	}
}

func (e *EventService) GetAllEvents() ([]*repository.Event, error) {
	return e.event_repository.FindAll()
}

func (e *EventService) GetSelectedEvent() (*repository.Event, error) {
	return e.event_repository.GetSelectedEvent()
}

func (e *EventService) GetEventById(eventId int) (*repository.Event, error) {
	return e.event_repository.GetEventById(eventId)
}

func (e *EventService) CreateEvent(event *repository.Event) (*repository.Event, error) {
	event.Id = 0
	return e.event_repository.Save(event)
}

func (e *EventService) UpdateEvent(eventId int, event *repository.Event) (*repository.Event, error) {
	if _, err := e.event_repository.GetEventById(eventId); err != nil {
		return nil, err
	}
	event.Id = eventId
	return e.event_repository.Save(event)
}

func (e *EventService) SelectEvent(eventId int) (*repository.Event, error) {
	event, err := e.event_repository.GetEventById(eventId)
	if err != nil {
		return nil, err
	}
	event.IsSelected = true
	return e.event_repository.Save(event)
}

func (e *EventService) DeleteEvent(eventId int) error {
	return e.event_repository.Delete(eventId)
}
