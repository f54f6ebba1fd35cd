package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// CalcTemplate holds the percentage weights of the three judged parts of a
// category. The percentages sum to 100.
type CalcTemplate struct {
	Id            int     `gorm:"primaryKey" yaml:"-"`
	Name          string  `gorm:"not null;uniqueIndex" yaml:"name" validate:"required"`
	Round1FirstP  float64 `gorm:"not null;default:0" yaml:"round1FirstP" validate:"min=0,max=100"`
	Round1SecondP float64 `gorm:"not null;default:0" yaml:"round1SecondP" validate:"min=0,max=100"`
	Round2FirstP  float64 `gorm:"not null;default:0" yaml:"round2FirstP" validate:"min=0,max=100"`
}

func (t *CalcTemplate) Sum() float64 {
	return t.Round1FirstP + t.Round1SecondP + t.Round2FirstP
}

type ResultGroup struct {
	Id             int  `gorm:"primaryKey"`
	EventId        int  `gorm:"not null;uniqueIndex:idx_result_group_category"`
	CategoryId     int  `gorm:"not null;uniqueIndex:idx_result_group_category"`
	Round1FirstId  *int `gorm:"null"`
	Round1SecondId *int `gorm:"null"`
	Round2FirstId  *int `gorm:"null"`
	CalcTemplateId int  `gorm:"not null"`

	Event        *Event         `gorm:"foreignKey:EventId;constraint:OnDelete:CASCADE;"`
	Category     *Category      `gorm:"foreignKey:CategoryId;constraint:OnDelete:CASCADE;"`
	Round1First  *TimetablePart `gorm:"foreignKey:Round1FirstId;constraint:OnDelete:SET NULL;"`
	Round1Second *TimetablePart `gorm:"foreignKey:Round1SecondId;constraint:OnDelete:SET NULL;"`
	Round2First  *TimetablePart `gorm:"foreignKey:Round2FirstId;constraint:OnDelete:SET NULL;"`
	CalcTemplate *CalcTemplate  `gorm:"foreignKey:CalcTemplateId;constraint:OnDelete:RESTRICT;"`
}

var ResultGroupPreloads = []string{"Category", "Round1First", "Round1Second", "Round2First", "CalcTemplate"}

type ResultGroupRepository struct {
	DB *gorm.DB
}

func NewResultGroupRepository(db *gorm.DB) *ResultGroupRepository {
	return &ResultGroupRepository{DB: db}
}

func (r *ResultGroupRepository) GetResultGroupById(ctx context.Context, id int) (*ResultGroup, error) {
	var group ResultGroup
	query := r.DB.WithContext(ctx)
	for _, preload := range ResultGroupPreloads {
		query = query.Preload(preload)
	}
	result := query.First(&group, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &group, nil
}

func (r *ResultGroupRepository) GetResultGroupsForEvent(eventId int) ([]*ResultGroup, error) {
	groups := make([]*ResultGroup, 0)
	query := r.DB
	for _, preload := range ResultGroupPreloads {
		query = query.Preload(preload)
	}
	result := query.Where("event_id = ?", eventId).Order("id").Find(&groups)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find result groups: %v", result.Error)
	}
	return groups, nil
}

func (r *ResultGroupRepository) SaveResultGroup(group *ResultGroup) (*ResultGroup, error) {
	result := r.DB.Omit("Event", "Category", "Round1First", "Round1Second", "Round2First", "CalcTemplate").Save(group)
	if result.Error != nil {
		return nil, result.Error
	}
	return group, nil
}

func (r *ResultGroupRepository) DeleteResultGroup(id int) error {
	return r.DB.Delete(&ResultGroup{}, id).Error
}

type CalcTemplateRepository struct {
	DB *gorm.DB
}

func NewCalcTemplateRepository(db *gorm.DB) *CalcTemplateRepository {
	return &CalcTemplateRepository{DB: db}
}

func (r *CalcTemplateRepository) GetCalcTemplateById(id int) (*CalcTemplate, error) {
	var template CalcTemplate
	result := r.DB.First(&template, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &template, nil
}

func (r *CalcTemplateRepository) GetCalcTemplateByName(name string) (*CalcTemplate, error) {
	var template CalcTemplate
	result := r.DB.First(&template, "name = ?", name)
	if result.Error != nil {
		return nil, result.Error
	}
	return &template, nil
}

func (r *CalcTemplateRepository) FindAll() ([]*CalcTemplate, error) {
	templates := make([]*CalcTemplate, 0)
	result := r.DB.Order("id").Find(&templates)
	if result.Error != nil {
		return nil, result.Error
	}
	return templates, nil
}

func (r *CalcTemplateRepository) SaveCalcTemplate(template *CalcTemplate) (*CalcTemplate, error) {
	result := r.DB.Save(template)
	if result.Error != nil {
		return nil, result.Error
	}
	return template, nil
}

func (r *CalcTemplateRepository) DeleteCalcTemplate(id int) error {
	return r.DB.Delete(&CalcTemplate{}, id).Error
}
