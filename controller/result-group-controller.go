package controller

import (
	"vaulting/repository"
	"vaulting/service"
	"vaulting/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ResultGroupController struct {
	resultGroupService  *service.ResultGroupService
	calcTemplateService *service.CalcTemplateService
}

func NewResultGroupController(db *gorm.DB) *ResultGroupController {
	return &ResultGroupController{
		resultGroupService:  service.NewResultGroupService(db),
		calcTemplateService: service.NewCalcTemplateService(db),
	}
}

func setupResultGroupController(db *gorm.DB) []RouteInfo {
	e := NewResultGroupController(db)
	routes := []RouteInfo{
		{Method: "GET", Path: "/events/:event_id/result-groups", HandlerFunc: e.getResultGroupsHandler()},
		{Method: "POST", Path: "/events/:event_id/result-groups", HandlerFunc: e.createResultGroupHandler(), Authenticated: true, RequiredRoles: officeRoles},
		{Method: "GET", Path: "/result-groups/:group_id", HandlerFunc: e.getResultGroupHandler()},
		{Method: "PATCH", Path: "/result-groups/:group_id", HandlerFunc: e.updateResultGroupHandler(), Authenticated: true, RequiredRoles: officeRoles},
		{Method: "DELETE", Path: "/result-groups/:group_id", HandlerFunc: e.deleteResultGroupHandler(), Authenticated: true, RequiredRoles: officeRoles},
		{Method: "GET", Path: "/calc-templates", HandlerFunc: e.getCalcTemplatesHandler()},
		{Method: "POST", Path: "/calc-templates", HandlerFunc: e.createCalcTemplateHandler(), Authenticated: true, RequiredRoles: adminRoles},
		{Method: "PATCH", Path: "/calc-templates/:template_id", HandlerFunc: e.updateCalcTemplateHandler(), Authenticated: true, RequiredRoles: adminRoles},
		{Method: "DELETE", Path: "/calc-templates/:template_id", HandlerFunc: e.deleteCalcTemplateHandler(), Authenticated: true, RequiredRoles: adminRoles},
	}
	return routes
}

type CalcTemplate struct {
	Id            int     `json:"id"`
	Name          string  `json:"name" binding:"required"`
	Round1FirstP  float64 `json:"round1FirstP"`
	Round1SecondP float64 `json:"round1SecondP"`
	Round2FirstP  float64 `json:"round2FirstP"`
}

type ResultGroupCreate struct {
	CategoryId     int  `json:"categoryId" binding:"required"`
	Round1FirstId  *int `json:"round1FirstId"`
	Round1SecondId *int `json:"round1SecondId"`
	Round2FirstId  *int `json:"round2FirstId"`
	CalcTemplateId int  `json:"calcTemplateId" binding:"required"`
}

type ResultGroup struct {
	Id             int           `json:"id"`
	EventId        int           `json:"eventId"`
	CategoryId     int           `json:"categoryId"`
	Category       string        `json:"category,omitempty"`
	Round1FirstId  *int          `json:"round1FirstId"`
	Round1SecondId *int          `json:"round1SecondId"`
	Round2FirstId  *int          `json:"round2FirstId"`
	CalcTemplate   *CalcTemplate `json:"calcTemplate,omitempty"`
}

func toCalcTemplateResponse(template *repository.CalcTemplate) CalcTemplate {
	return CalcTemplate{
		Id:            template.Id,
		Name:          template.Name,
		Round1FirstP:  template.Round1FirstP,
		Round1SecondP: template.Round1SecondP,
		Round2FirstP:  template.Round2FirstP,
	}
}

func (e *CalcTemplate) toModel() *repository.CalcTemplate {
	return &repository.CalcTemplate{
		Id:            e.Id,
		Name:          e.Name,
		Round1FirstP:  e.Round1FirstP,
		Round1SecondP: e.Round1SecondP,
		Round2FirstP:  e.Round2FirstP,
	}
}

func (e *ResultGroupCreate) toModel(eventId int) *repository.ResultGroup {
	return &repository.ResultGroup{
		EventId:        eventId,
		CategoryId:     e.CategoryId,
		Round1FirstId:  e.Round1FirstId,
		Round1SecondId: e.Round1SecondId,
		Round2FirstId:  e.Round2FirstId,
		CalcTemplateId: e.CalcTemplateId,
	}
}

func toResultGroupResponse(group *repository.ResultGroup) ResultGroup {
	response := ResultGroup{
		Id:             group.Id,
		EventId:        group.EventId,
		CategoryId:     group.CategoryId,
		Round1FirstId:  group.Round1FirstId,
		Round1SecondId: group.Round1SecondId,
		Round2FirstId:  group.Round2FirstId,
	}
	if group.Category != nil {
		response.Category = group.Category.Name
	}
	if group.CalcTemplate != nil {
		template := toCalcTemplateResponse(group.CalcTemplate)
		response.CalcTemplate = &template
	}
	return response
}

// @id GetResultGroups
// @Description Fetches the result groups of an event
// @Tags result
// @Produce json
// @Param event_id path int true "Event ID"
// @Success 200 {array} ResultGroup
// @Router /events/{event_id}/result-groups [get]
func (e *ResultGroupController) getResultGroupsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := intParam(c, "event_id")
		if !ok {
			return
		}
		groups, err := e.resultGroupService.GetResultGroupsForEvent(eventId)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, utils.Map(groups, toResultGroupResponse))
	}
}

// @id GetResultGroup
// @Description Fetches a result group
// @Tags result
// @Produce json
// @Param group_id path int true "Result group ID"
// @Success 200 {object} ResultGroup
// @Router /result-groups/{group_id} [get]
func (e *ResultGroupController) getResultGroupHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		groupId, ok := intParam(c, "group_id")
		if !ok {
			return
		}
		group, err := e.resultGroupService.GetResultGroupById(c.Request.Context(), groupId)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, toResultGroupResponse(group))
	}
}

// @id CreateResultGroup
// @Description Creates the result group of a category
// @Tags result
// @Accept json
// @Produce json
// @Param event_id path int true "Event ID"
// @Param group body ResultGroupCreate true "Result group"
// @Success 201 {object} ResultGroup
// @Security BearerAuth
// @Router /events/{event_id}/result-groups [post]
func (e *ResultGroupController) createResultGroupHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := intParam(c, "event_id")
		if !ok {
			return
		}
		var body ResultGroupCreate
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		group, err := e.resultGroupService.SaveResultGroup(c.Request.Context(), body.toModel(eventId))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(201, toResultGroupResponse(group))
	}
}

// @id UpdateResultGroup
// @Description Updates a result group
// @Tags result
// @Accept json
// @Produce json
// @Param group_id path int true "Result group ID"
// @Param group body ResultGroupCreate true "Result group"
// @Success 200 {object} ResultGroup
// @Security BearerAuth
// @Router /result-groups/{group_id} [patch]
func (e *ResultGroupController) updateResultGroupHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		groupId, ok := intParam(c, "group_id")
		if !ok {
			return
		}
		var body ResultGroupCreate
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		existing, err := e.resultGroupService.GetResultGroupById(c.Request.Context(), groupId)
		if err != nil {
			respondError(c, err)
			return
		}
		model := body.toModel(existing.EventId)
		model.Id = groupId
		group, err := e.resultGroupService.SaveResultGroup(c.Request.Context(), model)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, toResultGroupResponse(group))
	}
}

// @id DeleteResultGroup
// @Description Deletes a result group
// @Tags result
// @Param group_id path int true "Result group ID"
// @Success 204
// @Security BearerAuth
// @Router /result-groups/{group_id} [delete]
func (e *ResultGroupController) deleteResultGroupHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		groupId, ok := intParam(c, "group_id")
		if !ok {
			return
		}
		if err := e.resultGroupService.DeleteResultGroup(groupId); err != nil {
			respondError(c, err)
			return
		}
		c.Status(204)
	}
}

// @id GetCalcTemplates
// @Description Fetches all calculation templates
// @Tags result
// @Produce json
// @Success 200 {array} CalcTemplate
// @Router /calc-templates [get]
func (e *ResultGroupController) getCalcTemplatesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		templates, err := e.calcTemplateService.GetAllCalcTemplates()
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, utils.Map(templates, toCalcTemplateResponse))
	}
}

// @id CreateCalcTemplate
// @Description Creates a calculation template, the percentages must sum to 100
// @Tags result
// @Accept json
// @Produce json
// @Param template body CalcTemplate true "Template"
// @Success 201 {object} CalcTemplate
// @Security BearerAuth
// @Router /calc-templates [post]
func (e *ResultGroupController) createCalcTemplateHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body CalcTemplate
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		body.Id = 0
		template, err := e.calcTemplateService.SaveCalcTemplate(body.toModel())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(201, toCalcTemplateResponse(template))
	}
}

// @id UpdateCalcTemplate
// @Description Updates a calculation template
// @Tags result
// @Accept json
// @Produce json
// @Param template_id path int true "Template ID"
// @Param template body CalcTemplate true "Template"
// @Success 200 {object} CalcTemplate
// @Security BearerAuth
// @Router /calc-templates/{template_id} [patch]
func (e *ResultGroupController) updateCalcTemplateHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		templateId, ok := intParam(c, "template_id")
		if !ok {
			return
		}
		var body CalcTemplate
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		if _, err := e.calcTemplateService.GetCalcTemplateById(templateId); err != nil {
			respondError(c, err)
			return
		}
		body.Id = templateId
		template, err := e.calcTemplateService.SaveCalcTemplate(body.toModel())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, toCalcTemplateResponse(template))
	}
}

// @id DeleteCalcTemplate
// @Description Deletes a calculation template no result group uses
// @Tags result
// @Param template_id path int true "Template ID"
// @Success 204
// @Security BearerAuth
// @Router /calc-templates/{template_id} [delete]
func (e *ResultGroupController) deleteCalcTemplateHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		templateId, ok := intParam(c, "template_id")
		if !ok {
			return
		}
		if err := e.calcTemplateService.DeleteCalcTemplate(templateId); err != nil {
			respondError(c, err)
			return
		}
		c.Status(204)
	}
}
