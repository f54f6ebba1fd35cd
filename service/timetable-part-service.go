package service

import (
	"context"
	"fmt"
	"slices"

	"vaulting/repository"

	"gorm.io/gorm"
)

type TimetablePartService struct {
	timetablePartRepository *repository.TimetablePartRepository
	categoryRepository      *repository.CategoryRepository
	entryRepository         *repository.EntryRepository
	userRepository          *repository.UserRepository
}

func NewTimetablePartService(db *gorm.DB) *TimetablePartService {
	return &TimetablePartService{
		timetablePartRepository: repository.NewTimetablePartRepository(db),
		categoryRepository:      repository.NewCategoryRepository(db),
		entryRepository:         repository.NewEntryRepository(db),
		userRepository:          repository.NewUserRepository(db),
	}
}

func (s *TimetablePartService) GetTimetablePartsForEvent(eventId int) ([]*repository.TimetablePart, error) {
	return s.timetablePartRepository.GetTimetablePartsForEvent(eventId)
}

func (s *TimetablePartService) GetTimetablePartById(ctx context.Context, partId int) (*repository.TimetablePart, error) {
	return s.timetablePartRepository.GetTimetablePartById(ctx, partId, "Categories", "Judges", "StartingOrder")
}

func (s *TimetablePartService) SaveTimetablePart(part *repository.TimetablePart, categoryIds []int) (*repository.TimetablePart, error) {
	if err := validateStruct(part); err != nil {
		return nil, err
	}
	categories := make([]*repository.Category, 0, len(categoryIds))
	for _, categoryId := range categoryIds {
		category, err := s.categoryRepository.GetCategoryById(categoryId)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	part.Categories = categories
	return s.timetablePartRepository.SaveTimetablePart(part)
}

// ReplaceJudges assigns judges to the part's tables. Every table may be
// judged by one user and only the first NumberOfJudges tables exist.
func (s *TimetablePartService) ReplaceJudges(ctx context.Context, partId int, judges []*repository.JudgeAssignment) (*repository.TimetablePart, error) {
	part, err := s.GetTimetablePartById(ctx, partId)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	for _, judge := range judges {
		if !slices.Contains(part.Tables(), judge.Table) {
			return nil, fmt.Errorf("%w: table %q is not judged in %s", ErrValidation, judge.Table, part.Name)
		}
		if seen[judge.Table] {
			return nil, fmt.Errorf("%w: table %s is assigned twice", ErrValidation, judge.Table)
		}
		seen[judge.Table] = true
		user, err := s.userRepository.GetUserById(judge.UserId)
		if err != nil {
			return nil, err
		}
		if !user.HasPermission(repository.PermissionJudge) {
			return nil, fmt.Errorf("%w: user %d is not a judge", ErrValidation, user.Id)
		}
	}
	if err := s.timetablePartRepository.ReplaceJudges(partId, judges); err != nil {
		return nil, err
	}
	return s.GetTimetablePartById(ctx, partId)
}

// ReplaceStartingOrder sets the order in which entries start. Only confirmed
// entries of the part's event and categories may start.
func (s *TimetablePartService) ReplaceStartingOrder(ctx context.Context, partId int, entryIds []int) (*repository.TimetablePart, error) {
	part, err := s.GetTimetablePartById(ctx, partId)
	if err != nil {
		return nil, err
	}
	items := make([]*repository.StartingOrderItem, 0, len(entryIds))
	for i, entryId := range entryIds {
		entry, err := s.entryRepository.GetEntryById(entryId)
		if err != nil {
			return nil, err
		}
		if entry.EventId != part.EventId || !part.HasCategory(entry.CategoryId) {
			return nil, fmt.Errorf("%w: entry %d does not start in %s", ErrValidation, entryId, part.Name)
		}
		if entry.Status != repository.EntryStatusConfirmed {
			return nil, fmt.Errorf("%w: entry %d is %s", ErrValidation, entryId, entry.Status)
		}
		if slices.ContainsFunc(items, func(item *repository.StartingOrderItem) bool { return item.EntryId == entryId }) {
			return nil, fmt.Errorf("%w: entry %d is listed twice", ErrValidation, entryId)
		}
		items = append(items, &repository.StartingOrderItem{EntryId: entryId, Order: i + 1})
	}
	if err := s.timetablePartRepository.ReplaceStartingOrder(partId, items); err != nil {
		return nil, err
	}
	return s.GetTimetablePartById(ctx, partId)
}

func (s *TimetablePartService) DeleteTimetablePart(partId int) error {
	return s.timetablePartRepository.DeleteTimetablePart(partId)
}
