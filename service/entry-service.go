package service

import (
	"fmt"
	"slices"

	"vaulting/repository"

	"gorm.io/gorm"
)

var statusTransitions = map[repository.EntryStatus][]repository.EntryStatus{
	repository.EntryStatusRegistered: {repository.EntryStatusConfirmed, repository.EntryStatusWithdrawn},
	repository.EntryStatusConfirmed:  {repository.EntryStatusWithdrawn, repository.EntryStatusEliminated},
	repository.EntryStatusWithdrawn:  {repository.EntryStatusRegistered},
}

type EntryService struct {
	entryRepository    *repository.EntryRepository
	personRepository   *repository.PersonRepository
	categoryRepository *repository.CategoryRepository
}

func NewEntryService(db *gorm.DB) *EntryService {
	return &EntryService{
		entryRepository:    repository.NewEntryRepository(db),
		personRepository:   repository.NewPersonRepository(db),
		categoryRepository: repository.NewCategoryRepository(db),
	}
}

func (s *EntryService) GetEntriesForEvent(eventId int) ([]*repository.Entry, error) {
	return s.entryRepository.GetEntriesForEvent(eventId)
}

func (s *EntryService) GetEntryById(entryId int) (*repository.Entry, error) {
	return s.entryRepository.GetEntryById(entryId, "Vaulters", "Horse", "Lunger", "Category")
}

// SaveEntry stores an entry with the given vaulters. New entries always
// start as registered; status changes go through SetStatus.
func (s *EntryService) SaveEntry(entry *repository.Entry, vaulterIds []int) (*repository.Entry, error) {
	if len(vaulterIds) == 0 {
		return nil, fmt.Errorf("%w: an entry needs at least one vaulter", ErrValidation)
	}
	if _, err := s.categoryRepository.GetCategoryById(entry.CategoryId); err != nil {
		return nil, err
	}
	vaulters, err := s.personRepository.GetPeopleByIds(vaulterIds)
	if err != nil {
		return nil, err
	}
	if len(vaulters) != len(vaulterIds) {
		return nil, fmt.Errorf("%w: unknown vaulter in %v", ErrValidation, vaulterIds)
	}
	if entry.Id == 0 {
		entry.Status = repository.EntryStatusRegistered
	} else {
		existing, err := s.entryRepository.GetEntryById(entry.Id)
		if err != nil {
			return nil, err
		}
		entry.Status = existing.Status
	}
	entry.Vaulters = vaulters
	return s.entryRepository.SaveEntry(entry)
}

func (s *EntryService) SetStatus(entryId int, status repository.EntryStatus) (*repository.Entry, error) {
	entry, err := s.entryRepository.GetEntryById(entryId)
	if err != nil {
		return nil, err
	}
	if entry.Status == status {
		return entry, nil
	}
	if !slices.Contains(statusTransitions[entry.Status], status) {
		return nil, fmt.Errorf("%w: entry cannot go from %s to %s", ErrValidation, entry.Status, status)
	}
	if err := s.entryRepository.SetStatus(entryId, status); err != nil {
		return nil, err
	}
	entry.Status = status
	return entry, nil
}

func (s *EntryService) DeleteEntry(entryId int) error {
	return s.entryRepository.DeleteEntry(entryId)
}

func (s *EntryService) GetPeople(role repository.PersonRole) ([]*repository.Person, error) {
	return s.personRepository.FindAll(role)
}

func (s *EntryService) SavePerson(person *repository.Person) (*repository.Person, error) {
	if person.Role != repository.RoleVaulter && person.Role != repository.RoleLunger {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, person.Role)
	}
	return s.personRepository.SavePerson(person)
}

func (s *EntryService) GetHorses() ([]*repository.Horse, error) {
	return s.personRepository.FindAllHorses()
}

func (s *EntryService) SaveHorse(horse *repository.Horse) (*repository.Horse, error) {
	return s.personRepository.SaveHorse(horse)
}
