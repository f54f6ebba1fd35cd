package repository

import (
	"fmt"

	"gorm.io/gorm"
)

type CategoryType string

const (
	Individual CategoryType = "Individual"
	Squad      CategoryType = "Squad"
	PDD        CategoryType = "PDD"
)

type HorseCoefficients struct {
	A1 float64 `gorm:"not null;default:0" json:"A1" yaml:"A1" validate:"min=0,max=1"`
	A2 float64 `gorm:"not null;default:0" json:"A2" yaml:"A2" validate:"min=0,max=1"`
	A3 float64 `gorm:"not null;default:0" json:"A3" yaml:"A3" validate:"min=0,max=1"`
}

type FreeCoefficients struct {
	R float64 `gorm:"not null;default:0" json:"R" yaml:"R" validate:"min=0,max=5"`
	D float64 `gorm:"not null;default:0" json:"D" yaml:"D" validate:"min=0,max=5"`
	M float64 `gorm:"not null;default:0" json:"M" yaml:"M" validate:"min=0,max=5"`
	E float64 `gorm:"not null;default:0" json:"E" yaml:"E" validate:"min=0,max=5"`
	// zero means the default of 10 exercises
	NumberOfMaxExercises int `gorm:"not null;default:0" json:"NumberOfMaxExercises" yaml:"NumberOfMaxExercises" validate:"min=0"`
}

type ArtisticCoefficients struct {
	CH float64 `gorm:"not null;default:0" json:"CH" yaml:"CH" validate:"min=0,max=1"`
	C1 float64 `gorm:"not null;default:0" json:"C1" yaml:"C1" validate:"min=0,max=1"`
	C2 float64 `gorm:"not null;default:0" json:"C2" yaml:"C2" validate:"min=0,max=1"`
	C3 float64 `gorm:"not null;default:0" json:"C3" yaml:"C3" validate:"min=0,max=1"`
	C4 float64 `gorm:"not null;default:0" json:"C4" yaml:"C4" validate:"min=0,max=1"`
}

type TechArtisticCoefficients struct {
	CH float64 `gorm:"not null;default:0" json:"CH" yaml:"CH" validate:"min=0,max=1"`
	T1 float64 `gorm:"not null;default:0" json:"T1" yaml:"T1" validate:"min=0,max=1"`
	T2 float64 `gorm:"not null;default:0" json:"T2" yaml:"T2" validate:"min=0,max=1"`
	T3 float64 `gorm:"not null;default:0" json:"T3" yaml:"T3" validate:"min=0,max=1"`
	// zero means a divider of 1
	TechDivider float64 `gorm:"not null;default:0" json:"TechDivider" yaml:"TechDivider" validate:"min=0"`
}

type Category struct {
	Id           int                      `gorm:"primaryKey" yaml:"-"`
	Name         string                   `gorm:"not null;uniqueIndex" yaml:"name" validate:"required"`
	Type         CategoryType             `gorm:"not null" yaml:"type" validate:"required,oneof=Individual Squad PDD"`
	AgeGroup     string                   `gorm:"null" yaml:"age_group"`
	Star         int                      `gorm:"not null;default:1" yaml:"star" validate:"min=1,max=4"`
	Horse        HorseCoefficients        `gorm:"embedded;embeddedPrefix:horse_" yaml:"horse"`
	Free         FreeCoefficients         `gorm:"embedded;embeddedPrefix:free_" yaml:"free"`
	Artistic     ArtisticCoefficients     `gorm:"embedded;embeddedPrefix:artistic_" yaml:"artistic"`
	TechArtistic TechArtisticCoefficients `gorm:"embedded;embeddedPrefix:tech_artistic_" yaml:"tech_artistic"`
}

func (c *Category) IsTeam() bool {
	return c.Type == Squad || c.Type == PDD
}

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) GetCategoryById(categoryId int) (*Category, error) {
	var category Category
	result := r.DB.First(&category, categoryId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &category, nil
}

func (r *CategoryRepository) GetCategoryByName(name string) (*Category, error) {
	var category Category
	result := r.DB.First(&category, "name = ?", name)
	if result.Error != nil {
		return nil, result.Error
	}
	return &category, nil
}

func (r *CategoryRepository) FindAll() ([]*Category, error) {
	categories := make([]*Category, 0)
	result := r.DB.Order("id").Find(&categories)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find categories: %v", result.Error)
	}
	return categories, nil
}

func (r *CategoryRepository) SaveCategory(category *Category) (*Category, error) {
	result := r.DB.Save(category)
	if result.Error != nil {
		return nil, result.Error
	}
	return category, nil
}

// HasLiveEntries reports whether a not withdrawn entry uses the category.
func (r *CategoryRepository) HasLiveEntries(categoryId int) (bool, error) {
	var count int64
	err := r.DB.Model(&Entry{}).
		Where("category_id = ? AND status <> ?", categoryId, EntryStatusWithdrawn).
		Count(&count).Error
	return count > 0, err
}

func (r *CategoryRepository) DeleteCategory(categoryId int) error {
	return r.DB.Delete(&Category{}, categoryId).Error
}
