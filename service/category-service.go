package service

import (
	"fmt"

	"vaulting/repository"

	"gorm.io/gorm"
)

type CategoryService struct {
	categoryRepository *repository.CategoryRepository
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{categoryRepository: repository.NewCategoryRepository(db)}
}

func (s *CategoryService) GetAllCategories() ([]*repository.Category, error) {
	return s.categoryRepository.FindAll()
}

func (s *CategoryService) GetCategoryById(categoryId int) (*repository.Category, error) {
	return s.categoryRepository.GetCategoryById(categoryId)
}

func (s *CategoryService) CreateCategory(category *repository.Category) (*repository.Category, error) {
	if err := validateStruct(category); err != nil {
		return nil, err
	}
	category.Id = 0
	return s.categoryRepository.SaveCategory(category)
}

// UpdateCategory replaces a category's coefficients. Categories that live
// entries use are frozen.
func (s *CategoryService) UpdateCategory(categoryId int, category *repository.Category) (*repository.Category, error) {
	if err := validateStruct(category); err != nil {
		return nil, err
	}
	if _, err := s.categoryRepository.GetCategoryById(categoryId); err != nil {
		return nil, err
	}
	if err := s.ensureUnused(categoryId); err != nil {
		return nil, err
	}
	category.Id = categoryId
	return s.categoryRepository.SaveCategory(category)
}

func (s *CategoryService) DeleteCategory(categoryId int) error {
	if err := s.ensureUnused(categoryId); err != nil {
		return err
	}
	return s.categoryRepository.DeleteCategory(categoryId)
}

func (s *CategoryService) ensureUnused(categoryId int) error {
	inUse, err := s.categoryRepository.HasLiveEntries(categoryId)
	if err != nil {
		return err
	}
	if inUse {
		return fmt.Errorf("%w: category %d", ErrCategoryInUse, categoryId)
	}
	return nil
}
