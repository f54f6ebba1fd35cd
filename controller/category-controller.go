package controller

import (
	"vaulting/repository"
	"vaulting/service"
	"vaulting/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CategoryController struct {
	categoryService *service.CategoryService
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{categoryService: service.NewCategoryService(db)}
}

func setupCategoryController(db *gorm.DB) []RouteInfo {
	e := NewCategoryController(db)
	basePath := "/categories"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getCategoriesHandler()},
		{Method: "POST", Path: "", HandlerFunc: e.createCategoryHandler(), Authenticated: true, RequiredRoles: adminRoles},
		{Method: "GET", Path: "/:category_id", HandlerFunc: e.getCategoryHandler()},
		{Method: "PATCH", Path: "/:category_id", HandlerFunc: e.updateCategoryHandler(), Authenticated: true, RequiredRoles: adminRoles},
		{Method: "DELETE", Path: "/:category_id", HandlerFunc: e.deleteCategoryHandler(), Authenticated: true, RequiredRoles: adminRoles},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// Category carries the coefficient tables the formulas read.
type Category struct {
	Id           int                                 `json:"id"`
	Name         string                              `json:"name" binding:"required"`
	Type         repository.CategoryType             `json:"type" binding:"required"`
	AgeGroup     string                              `json:"ageGroup"`
	Star         int                                 `json:"star"`
	Horse        repository.HorseCoefficients        `json:"horse"`
	Free         repository.FreeCoefficients         `json:"free"`
	Artistic     repository.ArtisticCoefficients     `json:"artistic"`
	TechArtistic repository.TechArtisticCoefficients `json:"techArtistic"`
}

func (e *Category) toModel() *repository.Category {
	return &repository.Category{
		Id:           e.Id,
		Name:         e.Name,
		Type:         e.Type,
		AgeGroup:     e.AgeGroup,
		Star:         e.Star,
		Horse:        e.Horse,
		Free:         e.Free,
		Artistic:     e.Artistic,
		TechArtistic: e.TechArtistic,
	}
}

func toCategoryResponse(category *repository.Category) Category {
	return Category{
		Id:           category.Id,
		Name:         category.Name,
		Type:         category.Type,
		AgeGroup:     category.AgeGroup,
		Star:         category.Star,
		Horse:        category.Horse,
		Free:         category.Free,
		Artistic:     category.Artistic,
		TechArtistic: category.TechArtistic,
	}
}

// @id GetCategories
// @Description Fetches all categories with their coefficients
// @Tags category
// @Produce json
// @Success 200 {array} Category
// @Router /categories [get]
func (e *CategoryController) getCategoriesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := e.categoryService.GetAllCategories()
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, utils.Map(categories, toCategoryResponse))
	}
}

// @id GetCategory
// @Description Fetches a category
// @Tags category
// @Produce json
// @Param category_id path int true "Category ID"
// @Success 200 {object} Category
// @Router /categories/{category_id} [get]
func (e *CategoryController) getCategoryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryId, ok := intParam(c, "category_id")
		if !ok {
			return
		}
		category, err := e.categoryService.GetCategoryById(categoryId)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, toCategoryResponse(category))
	}
}

// @id CreateCategory
// @Description Creates a category
// @Tags category
// @Accept json
// @Produce json
// @Param category body Category true "Category to create"
// @Success 201 {object} Category
// @Security BearerAuth
// @Router /categories [post]
func (e *CategoryController) createCategoryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body Category
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		category, err := e.categoryService.CreateCategory(body.toModel())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(201, toCategoryResponse(category))
	}
}

// @id UpdateCategory
// @Description Replaces the coefficients of a category nobody is entered in
// @Tags category
// @Accept json
// @Produce json
// @Param category_id path int true "Category ID"
// @Param category body Category true "Category"
// @Success 200 {object} Category
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /categories/{category_id} [patch]
func (e *CategoryController) updateCategoryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryId, ok := intParam(c, "category_id")
		if !ok {
			return
		}
		var body Category
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		category, err := e.categoryService.UpdateCategory(categoryId, body.toModel())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, toCategoryResponse(category))
	}
}

// @id DeleteCategory
// @Description Deletes a category nobody is entered in
// @Tags category
// @Param category_id path int true "Category ID"
// @Success 204
// @Security BearerAuth
// @Router /categories/{category_id} [delete]
func (e *CategoryController) deleteCategoryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryId, ok := intParam(c, "category_id")
		if !ok {
			return
		}
		if err := e.categoryService.DeleteCategory(categoryId); err != nil {
			respondError(c, err)
			return
		}
		c.Status(204)
	}
}
