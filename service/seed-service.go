package service

import (
	"errors"
	"fmt"
	"log"
	"os"

	"vaulting/repository"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Seed is the competition rule configuration loaded at startup: the
// coefficient tables of every category and the calc templates.
type Seed struct {
	Categories    []*repository.Category     `yaml:"categories" validate:"dive"`
	CalcTemplates []*repository.CalcTemplate `yaml:"calc_templates" validate:"dive"`
}

func ParseSeed(data []byte) (*Seed, error) {
	seed := &Seed{}
	if err := yaml.Unmarshal(data, seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed: %w", err)
	}
	if err := validateStruct(seed); err != nil {
		return nil, err
	}
	for _, template := range seed.CalcTemplates {
		if err := ValidateCalcTemplate(template); err != nil {
			return nil, err
		}
	}
	return seed, nil
}

type SeedService struct {
	categoryRepository     *repository.CategoryRepository
	calcTemplateRepository *repository.CalcTemplateRepository
}

func NewSeedService(db *gorm.DB) *SeedService {
	return &SeedService{
		categoryRepository:     repository.NewCategoryRepository(db),
		calcTemplateRepository: repository.NewCalcTemplateRepository(db),
	}
}

func (s *SeedService) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	seed, err := ParseSeed(data)
	if err != nil {
		return err
	}
	return s.Apply(seed)
}

// Apply upserts the seed by name. Categories that live entries use keep
// their stored coefficients.
func (s *SeedService) Apply(seed *Seed) error {
	for _, category := range seed.Categories {
		existing, err := s.categoryRepository.GetCategoryByName(category.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if existing != nil {
			inUse, err := s.categoryRepository.HasLiveEntries(existing.Id)
			if err != nil {
				return err
			}
			if inUse {
				log.Printf("seed: category %s is in use, keeping stored coefficients", category.Name)
				continue
			}
			category.Id = existing.Id
		}
		if _, err := s.categoryRepository.SaveCategory(category); err != nil {
			return err
		}
	}
	for _, template := range seed.CalcTemplates {
		existing, err := s.calcTemplateRepository.GetCalcTemplateByName(template.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if existing != nil {
			template.Id = existing.Id
		}
		if _, err := s.calcTemplateRepository.SaveCalcTemplate(template); err != nil {
			return err
		}
	}
	log.Printf("seed: applied %d categories and %d calc templates", len(seed.Categories), len(seed.CalcTemplates))
	return nil
}
