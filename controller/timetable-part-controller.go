package controller

import (
	"time"

	"vaulting/repository"
	"vaulting/service"
	"vaulting/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TimetablePartController struct {
	timetablePartService *service.TimetablePartService
}

func NewTimetablePartController(db *gorm.DB) *TimetablePartController {
	return &TimetablePartController{timetablePartService: service.NewTimetablePartService(db)}
}

func setupTimetablePartController(db *gorm.DB) []RouteInfo {
	e := NewTimetablePartController(db)
	routes := []RouteInfo{
		{Method: "GET", Path: "/events/:event_id/timetable-parts", HandlerFunc: e.getTimetablePartsHandler()},
		{Method: "POST", Path: "/events/:event_id/timetable-parts", HandlerFunc: e.createTimetablePartHandler(), Authenticated: true, RequiredRoles: officeRoles},
		{Method: "GET", Path: "/timetable-parts/:part_id", HandlerFunc: e.getTimetablePartHandler()},
		{Method: "PATCH", Path: "/timetable-parts/:part_id", HandlerFunc: e.updateTimetablePartHandler(), Authenticated: true, RequiredRoles: officeRoles},
		{Method: "DELETE", Path: "/timetable-parts/:part_id", HandlerFunc: e.deleteTimetablePartHandler(), Authenticated: true, RequiredRoles: officeRoles},
		{Method: "PUT", Path: "/timetable-parts/:part_id/judges", HandlerFunc: e.replaceJudgesHandler(), Authenticated: true, RequiredRoles: officeRoles},
		{Method: "PUT", Path: "/timetable-parts/:part_id/starting-order", HandlerFunc: e.replaceStartingOrderHandler(), Authenticated: true, RequiredRoles: officeRoles},
	}
	return routes
}

type TimetablePartCreate struct {
	Name           string                 `json:"name" binding:"required"`
	Round          int                    `json:"round"`
	Part           repository.PartOfRound `json:"part"`
	StartTime      time.Time              `json:"startTime"`
	NumberOfJudges int                    `json:"numberOfJudges"`
	TestType       string                 `json:"testType"`
	CategoryIds    []int                  `json:"categoryIds"`
}

type JudgeAssignment struct {
	Table  string `json:"table" binding:"required"`
	UserId int    `json:"userId" binding:"required"`
}

type StartingOrderItem struct {
	EntryId         int      `json:"entryId"`
	Order           int      `json:"order"`
	SubmittedTables []string `json:"submittedTables"`
}

type StartingOrderUpdate struct {
	EntryIds []int `json:"entryIds"`
}

type TimetablePart struct {
	Id             int                    `json:"id"`
	EventId        int                    `json:"eventId"`
	Name           string                 `json:"name"`
	Round          int                    `json:"round"`
	Part           repository.PartOfRound `json:"part"`
	StartTime      time.Time              `json:"startTime"`
	NumberOfJudges int                    `json:"numberOfJudges"`
	Tables         []string               `json:"tables"`
	TestType       string                 `json:"testType"`
	CategoryIds    []int                  `json:"categoryIds"`
	Judges         []JudgeAssignment      `json:"judges"`
	StartingOrder  []StartingOrderItem    `json:"startingOrder"`
}

func (e *TimetablePartCreate) toModel(eventId int) *repository.TimetablePart {
	round := e.Round
	if round == 0 {
		round = 1
	}
	part := e.Part
	if part == "" {
		part = repository.FirstPart
	}
	return &repository.TimetablePart{
		EventId:        eventId,
		Name:           e.Name,
		Round:          round,
		Part:           part,
		StartTime:      e.StartTime,
		NumberOfJudges: e.NumberOfJudges,
		TestType:       e.TestType,
	}
}

func toTimetablePartResponse(part *repository.TimetablePart) TimetablePart {
	return TimetablePart{
		Id:             part.Id,
		EventId:        part.EventId,
		Name:           part.Name,
		Round:          part.Round,
		Part:           part.Part,
		StartTime:      part.StartTime,
		NumberOfJudges: part.NumberOfJudges,
		Tables:         part.Tables(),
		TestType:       part.TestType,
		CategoryIds:    utils.Map(part.Categories, func(category *repository.Category) int { return category.Id }),
		Judges: utils.Map(part.Judges, func(judge *repository.JudgeAssignment) JudgeAssignment {
			return JudgeAssignment{Table: judge.Table, UserId: judge.UserId}
		}),
		StartingOrder: utils.Map(part.StartingOrder, func(item *repository.StartingOrderItem) StartingOrderItem {
			return StartingOrderItem{EntryId: item.EntryId, Order: item.Order, SubmittedTables: item.SubmittedTables}
		}),
	}
}

// @id GetTimetableParts
// @Description Fetches the timetable of an event
// @Tags timetable
// @Produce json
// @Param event_id path int true "Event ID"
// @Success 200 {array} TimetablePart
// @Router /events/{event_id}/timetable-parts [get]
func (e *TimetablePartController) getTimetablePartsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := intParam(c, "event_id")
		if !ok {
			return
		}
		parts, err := e.timetablePartService.GetTimetablePartsForEvent(eventId)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, utils.Map(parts, toTimetablePartResponse))
	}
}

// @id GetTimetablePart
// @Description Fetches a timetable part with its judges and starting order
// @Tags timetable
// @Produce json
// @Param part_id path int true "Timetable part ID"
// @Success 200 {object} TimetablePart
// @Router /timetable-parts/{part_id} [get]
func (e *TimetablePartController) getTimetablePartHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		partId, ok := intParam(c, "part_id")
		if !ok {
			return
		}
		part, err := e.timetablePartService.GetTimetablePartById(c.Request.Context(), partId)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, toTimetablePartResponse(part))
	}
}

// @id CreateTimetablePart
// @Description Adds a part to the timetable of an event
// @Tags timetable
// @Accept json
// @Produce json
// @Param event_id path int true "Event ID"
// @Param part body TimetablePartCreate true "Timetable part"
// @Success 201 {object} TimetablePart
// @Security BearerAuth
// @Router /events/{event_id}/timetable-parts [post]
func (e *TimetablePartController) createTimetablePartHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := intParam(c, "event_id")
		if !ok {
			return
		}
		var body TimetablePartCreate
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		part, err := e.timetablePartService.SaveTimetablePart(body.toModel(eventId), body.CategoryIds)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(201, toTimetablePartResponse(part))
	}
}

// @id UpdateTimetablePart
// @Description Updates a timetable part
// @Tags timetable
// @Accept json
// @Produce json
// @Param part_id path int true "Timetable part ID"
// @Param part body TimetablePartCreate true "Timetable part"
// @Success 200 {object} TimetablePart
// @Security BearerAuth
// @Router /timetable-parts/{part_id} [patch]
func (e *TimetablePartController) updateTimetablePartHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		partId, ok := intParam(c, "part_id")
		if !ok {
			return
		}
		var body TimetablePartCreate
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		existing, err := e.timetablePartService.GetTimetablePartById(c.Request.Context(), partId)
		if err != nil {
			respondError(c, err)
			return
		}
		model := body.toModel(existing.EventId)
		model.Id = partId
		part, err := e.timetablePartService.SaveTimetablePart(model, body.CategoryIds)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, toTimetablePartResponse(part))
	}
}

// @id DeleteTimetablePart
// @Description Deletes a timetable part
// @Tags timetable
// @Param part_id path int true "Timetable part ID"
// @Success 204
// @Security BearerAuth
// @Router /timetable-parts/{part_id} [delete]
func (e *TimetablePartController) deleteTimetablePartHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		partId, ok := intParam(c, "part_id")
		if !ok {
			return
		}
		if err := e.timetablePartService.DeleteTimetablePart(partId); err != nil {
			respondError(c, err)
			return
		}
		c.Status(204)
	}
}

// @id ReplaceJudges
// @Description Assigns judges to the tables of a timetable part
// @Tags timetable
// @Accept json
// @Produce json
// @Param part_id path int true "Timetable part ID"
// @Param judges body []JudgeAssignment true "Judges"
// @Success 200 {object} TimetablePart
// @Security BearerAuth
// @Router /timetable-parts/{part_id}/judges [put]
func (e *TimetablePartController) replaceJudgesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		partId, ok := intParam(c, "part_id")
		if !ok {
			return
		}
		var body []JudgeAssignment
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		judges := utils.Map(body, func(judge JudgeAssignment) *repository.JudgeAssignment {
			return &repository.JudgeAssignment{TimetablePartId: partId, Table: judge.Table, UserId: judge.UserId}
		})
		part, err := e.timetablePartService.ReplaceJudges(c.Request.Context(), partId, judges)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, toTimetablePartResponse(part))
	}
}

// @id ReplaceStartingOrder
// @Description Sets the order in which confirmed entries start
// @Tags timetable
// @Accept json
// @Produce json
// @Param part_id path int true "Timetable part ID"
// @Param order body StartingOrderUpdate true "Entry ids in starting order"
// @Success 200 {object} TimetablePart
// @Security BearerAuth
// @Router /timetable-parts/{part_id}/starting-order [put]
func (e *TimetablePartController) replaceStartingOrderHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		partId, ok := intParam(c, "part_id")
		if !ok {
			return
		}
		var body StartingOrderUpdate
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		part, err := e.timetablePartService.ReplaceStartingOrder(c.Request.Context(), partId, body.EntryIds)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, toTimetablePartResponse(part))
	}
}
