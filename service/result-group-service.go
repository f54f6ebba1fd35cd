package service

import (
	"context"
	"fmt"
	"math"

	"vaulting/repository"

	"gorm.io/gorm"
)

type ResultGroupService struct {
	resultGroupRepository   *repository.ResultGroupRepository
	calcTemplateRepository  *repository.CalcTemplateRepository
	timetablePartRepository *repository.TimetablePartRepository
}

func NewResultGroupService(db *gorm.DB) *ResultGroupService {
	return &ResultGroupService{
		resultGroupRepository:   repository.NewResultGroupRepository(db),
		calcTemplateRepository:  repository.NewCalcTemplateRepository(db),
		timetablePartRepository: repository.NewTimetablePartRepository(db),
	}
}

func (s *ResultGroupService) GetResultGroupById(ctx context.Context, id int) (*repository.ResultGroup, error) {
	return s.resultGroupRepository.GetResultGroupById(ctx, id)
}

func (s *ResultGroupService) GetResultGroupsForEvent(eventId int) ([]*repository.ResultGroup, error) {
	return s.resultGroupRepository.GetResultGroupsForEvent(eventId)
}

// SaveResultGroup checks that the referenced parts belong to the group's
// event and judge its category before storing the group.
func (s *ResultGroupService) SaveResultGroup(ctx context.Context, group *repository.ResultGroup) (*repository.ResultGroup, error) {
	if _, err := s.calcTemplateRepository.GetCalcTemplateById(group.CalcTemplateId); err != nil {
		return nil, err
	}
	for _, partId := range []*int{group.Round1FirstId, group.Round1SecondId, group.Round2FirstId} {
		if partId == nil {
			continue
		}
		part, err := s.timetablePartRepository.GetTimetablePartById(ctx, *partId, "Categories")
		if err != nil {
			return nil, err
		}
		if part.EventId != group.EventId || !part.HasCategory(group.CategoryId) {
			return nil, fmt.Errorf("%w: timetable part %d does not judge category %d", ErrValidation, part.Id, group.CategoryId)
		}
	}
	saved, err := s.resultGroupRepository.SaveResultGroup(group)
	if err != nil {
		return nil, err
	}
	return s.resultGroupRepository.GetResultGroupById(ctx, saved.Id)
}

func (s *ResultGroupService) DeleteResultGroup(id int) error {
	return s.resultGroupRepository.DeleteResultGroup(id)
}

type CalcTemplateService struct {
	calcTemplateRepository *repository.CalcTemplateRepository
}

func NewCalcTemplateService(db *gorm.DB) *CalcTemplateService {
	return &CalcTemplateService{calcTemplateRepository: repository.NewCalcTemplateRepository(db)}
}

func (s *CalcTemplateService) GetAllCalcTemplates() ([]*repository.CalcTemplate, error) {
	return s.calcTemplateRepository.FindAll()
}

func (s *CalcTemplateService) GetCalcTemplateById(id int) (*repository.CalcTemplate, error) {
	return s.calcTemplateRepository.GetCalcTemplateById(id)
}

func (s *CalcTemplateService) SaveCalcTemplate(template *repository.CalcTemplate) (*repository.CalcTemplate, error) {
	if err := ValidateCalcTemplate(template); err != nil {
		return nil, err
	}
	return s.calcTemplateRepository.SaveCalcTemplate(template)
}

func (s *CalcTemplateService) DeleteCalcTemplate(id int) error {
	return s.calcTemplateRepository.DeleteCalcTemplate(id)
}

// ValidateCalcTemplate checks the percentage ranges and that the three
// percentages add up to 100.
func ValidateCalcTemplate(template *repository.CalcTemplate) error {
	if err := validateStruct(template); err != nil {
		return err
	}
	if math.Abs(template.Sum()-100) > 1e-9 {
		return fmt.Errorf("%w: percentages of %s sum to %g, not 100", ErrValidation, template.Name, template.Sum())
	}
	return nil
}
