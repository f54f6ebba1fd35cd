package controller

import (
	"vaulting/repository"
	"vaulting/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ScoringController struct {
	scoringService *service.ScoringService
}

func NewScoringController(db *gorm.DB) *ScoringController {
	return &ScoringController{scoringService: service.NewScoringService(db)}
}

func setupScoringController(db *gorm.DB) []RouteInfo {
	e := NewScoringController(db)
	basePath := "/scoring"
	routes := []RouteInfo{
		{Method: "GET", Path: "/formulas", HandlerFunc: e.getFormulasHandler()},
		{Method: "POST", Path: "/preview", HandlerFunc: e.previewHandler(), Authenticated: true, RequiredRoles: judgeRoles},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

type PreviewRequest struct {
	CategoryId int                   `json:"categoryId" binding:"required"`
	InputDatas repository.InputDatas `json:"inputDatas"`
}

// @id GetFormulas
// @Description Lists the score formulas in the order they are tried
// @Tags scoring
// @Produce json
// @Success 200 {array} string
// @Router /scoring/formulas [get]
func (e *ScoringController) getFormulasHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, e.scoringService.FormulaNames())
	}
}

// @id PreviewScore
// @Description Computes the total of a score sheet without storing it
// @Tags scoring
// @Accept json
// @Produce json
// @Param sheet body PreviewRequest true "Inputs and category"
// @Success 200 {object} service.ScorePreview
// @Security BearerAuth
// @Router /scoring/preview [post]
func (e *ScoringController) previewHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body PreviewRequest
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		preview, err := e.scoringService.Preview(body.CategoryId, body.InputDatas)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, preview)
	}
}
