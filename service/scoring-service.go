package service

import (
	"vaulting/repository"
	"vaulting/scoring"

	"gorm.io/gorm"
)

type ScorePreview struct {
	Formula    string  `json:"formula"`
	TotalScore float64 `json:"totalScore"`
	Score      string  `json:"score"`
}

// ScoringService evaluates sheets without storing them, so score sheet
// front ends can show the total a submission will be checked against.
type ScoringService struct {
	categoryRepository *repository.CategoryRepository
}

func NewScoringService(db *gorm.DB) *ScoringService {
	return &ScoringService{categoryRepository: repository.NewCategoryRepository(db)}
}

func (s *ScoringService) Preview(categoryId int, inputs repository.InputDatas) (*ScorePreview, error) {
	category, err := s.categoryRepository.GetCategoryById(categoryId)
	if err != nil {
		return nil, err
	}
	return PreviewScore(inputs, category), nil
}

func PreviewScore(inputs repository.InputDatas, category *repository.Category) *ScorePreview {
	evaluation := scoring.Evaluate(inputs, category)
	return &ScorePreview{
		Formula:    evaluation.Formula,
		TotalScore: evaluation.Total,
		Score:      scoring.FormatScore(evaluation.Total),
	}
}

func (s *ScoringService) FormulaNames() []string {
	return scoring.FormulaNames()
}
