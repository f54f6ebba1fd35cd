package controller

import (
	"time"

	"vaulting/repository"
	"vaulting/service"
	"vaulting/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ScoreSheetController struct {
	scoreSheetService *service.ScoreSheetService
	userService       *service.UserService
}

func NewScoreSheetController(db *gorm.DB) *ScoreSheetController {
	return &ScoreSheetController{
		scoreSheetService: service.NewScoreSheetService(db),
		userService:       service.NewUserService(db),
	}
}

func setupScoreSheetController(db *gorm.DB) []RouteInfo {
	e := NewScoreSheetController(db)
	routes := []RouteInfo{
		{Method: "POST", Path: "/timetable-parts/:part_id/scoresheets", HandlerFunc: e.submitScoreSheetHandler(), Authenticated: true, RequiredRoles: judgeRoles},
		{Method: "GET", Path: "/timetable-parts/:part_id/scoresheets", HandlerFunc: e.getScoreSheetsHandler(), Authenticated: true, RequiredRoles: officeRoles},
		{Method: "POST", Path: "/timetable-parts/:part_id/recalculate", HandlerFunc: e.recalculatePartHandler(), Authenticated: true, RequiredRoles: officeRoles},
		{Method: "POST", Path: "/timetable-parts/:part_id/entries/:entry_id/recalculate", HandlerFunc: e.syncEntryHandler(), Authenticated: true, RequiredRoles: officeRoles},
		{Method: "PUT", Path: "/scoresheets/:sheet_id", HandlerFunc: e.correctScoreSheetHandler(), Authenticated: true, RequiredRoles: officeRoles},
	}
	return routes
}

type ScoreSheetCreate struct {
	EntryId int `json:"entryId" binding:"required"`
	// judges may leave the table out
	Table        string                `json:"table"`
	InputDatas   repository.InputDatas `json:"inputDatas" binding:"required"`
	TotalScoreFE float64               `json:"totalScoreFE"`
}

type ScoreSheetCorrection struct {
	InputDatas   repository.InputDatas `json:"inputDatas" binding:"required"`
	TotalScoreFE float64               `json:"totalScoreFE"`
}

type ScoreSheet struct {
	Id              int                   `json:"id"`
	EventId         int                   `json:"eventId"`
	TimetablePartId int                   `json:"timetablePartId"`
	EntryId         int                   `json:"entryId"`
	Table           string                `json:"table"`
	JudgeUserId     int                   `json:"judgeUserId"`
	InputDatas      repository.InputDatas `json:"inputDatas"`
	TotalScoreFE    float64               `json:"totalScoreFE"`
	TotalScoreBE    float64               `json:"totalScoreBE"`
	UpdatedAt       time.Time             `json:"updatedAt"`
}

type Score struct {
	Id              int                       `json:"id"`
	EventId         int                       `json:"eventId"`
	TimetablePartId int                       `json:"timetablePartId"`
	EntryId         int                       `json:"entryId"`
	ScoreSheets     repository.ScoreSheetRefs `json:"scoreSheets"`
	TotalScore      float64                   `json:"totalScore"`
}

// SubmissionResponse holds the stored sheet and the entry's score, which is
// missing until every table of the part has submitted.
type SubmissionResponse struct {
	ScoreSheet ScoreSheet `json:"scoreSheet"`
	Score      *Score     `json:"score,omitempty"`
}

func toScoreSheetResponse(sheet *repository.ScoreSheet) ScoreSheet {
	return ScoreSheet{
		Id:              sheet.Id,
		EventId:         sheet.EventId,
		TimetablePartId: sheet.TimetablePartId,
		EntryId:         sheet.EntryId,
		Table:           sheet.Table,
		JudgeUserId:     sheet.JudgeUserId,
		InputDatas:      sheet.InputDatas,
		TotalScoreFE:    sheet.TotalScoreFE,
		TotalScoreBE:    sheet.TotalScoreBE,
		UpdatedAt:       sheet.UpdatedAt,
	}
}

func toScoreResponse(score *repository.Score) Score {
	return Score{
		Id:              score.Id,
		EventId:         score.EventId,
		TimetablePartId: score.TimetablePartId,
		EntryId:         score.EntryId,
		ScoreSheets:     score.ScoreSheets,
		TotalScore:      score.TotalScore,
	}
}

func toSubmissionResponse(sheet *repository.ScoreSheet, score *repository.Score) SubmissionResponse {
	response := SubmissionResponse{ScoreSheet: toScoreSheetResponse(sheet)}
	if score != nil {
		scoreResponse := toScoreResponse(score)
		response.Score = &scoreResponse
	}
	return response
}

// @id SubmitScoreSheet
// @Description Submits a judge's score sheet. The back end total must match totalScoreFE after rounding.
// @Tags scoresheet
// @Accept json
// @Produce json
// @Param part_id path int true "Timetable part ID"
// @Param sheet body ScoreSheetCreate true "Score sheet"
// @Success 201 {object} SubmissionResponse
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /timetable-parts/{part_id}/scoresheets [post]
func (e *ScoreSheetController) submitScoreSheetHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		partId, ok := intParam(c, "part_id")
		if !ok {
			return
		}
		var body ScoreSheetCreate
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		user, err := e.userService.GetUserById(c.GetInt("user_id"))
		if err != nil {
			c.JSON(401, gin.H{"error": "Not authenticated"})
			return
		}
		sheet, score, err := e.scoreSheetService.Submit(c.Request.Context(), user, service.ScoreSheetSubmission{
			TimetablePartId: partId,
			EntryId:         body.EntryId,
			Table:           body.Table,
			InputDatas:      body.InputDatas,
			TotalScoreFE:    body.TotalScoreFE,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(201, toSubmissionResponse(sheet, score))
	}
}

// @id GetScoreSheets
// @Description Fetches all score sheets of a timetable part
// @Tags scoresheet
// @Produce json
// @Param part_id path int true "Timetable part ID"
// @Success 200 {array} ScoreSheet
// @Security BearerAuth
// @Router /timetable-parts/{part_id}/scoresheets [get]
func (e *ScoreSheetController) getScoreSheetsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		partId, ok := intParam(c, "part_id")
		if !ok {
			return
		}
		sheets, err := e.scoreSheetService.GetScoreSheetsForPart(c.Request.Context(), partId)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, utils.Map(sheets, toScoreSheetResponse))
	}
}

// @id CorrectScoreSheet
// @Description Replaces the inputs of a stored score sheet and synchronizes the entry's score
// @Tags scoresheet
// @Accept json
// @Produce json
// @Param sheet_id path int true "Score sheet ID"
// @Param sheet body ScoreSheetCorrection true "Corrected inputs"
// @Success 200 {object} SubmissionResponse
// @Security BearerAuth
// @Router /scoresheets/{sheet_id} [put]
func (e *ScoreSheetController) correctScoreSheetHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		sheetId, ok := intParam(c, "sheet_id")
		if !ok {
			return
		}
		var body ScoreSheetCorrection
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		user, err := e.userService.GetUserById(c.GetInt("user_id"))
		if err != nil {
			c.JSON(401, gin.H{"error": "Not authenticated"})
			return
		}
		sheet, score, err := e.scoreSheetService.Correct(c.Request.Context(), user, sheetId, body.InputDatas, body.TotalScoreFE)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, toSubmissionResponse(sheet, score))
	}
}

// @id RecalculatePart
// @Description Recomputes every score sheet of a timetable part and synchronizes the scores
// @Tags scoresheet
// @Produce json
// @Param part_id path int true "Timetable part ID"
// @Success 200 {array} Score
// @Security BearerAuth
// @Router /timetable-parts/{part_id}/recalculate [post]
func (e *ScoreSheetController) recalculatePartHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		partId, ok := intParam(c, "part_id")
		if !ok {
			return
		}
		scores, err := e.scoreSheetService.RecalculatePart(c.Request.Context(), partId)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, utils.Map(scores, toScoreResponse))
	}
}

// @id SyncEntryScore
// @Description Synchronizes the score of one entry from its score sheets
// @Tags scoresheet
// @Produce json
// @Param part_id path int true "Timetable part ID"
// @Param entry_id path int true "Entry ID"
// @Success 200 {object} Score
// @Success 204 "not every table has submitted yet"
// @Security BearerAuth
// @Router /timetable-parts/{part_id}/entries/{entry_id}/recalculate [post]
func (e *ScoreSheetController) syncEntryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		partId, ok := intParam(c, "part_id")
		if !ok {
			return
		}
		entryId, ok := intParam(c, "entry_id")
		if !ok {
			return
		}
		score, err := e.scoreSheetService.SyncEntry(c.Request.Context(), partId, entryId)
		if err != nil {
			respondError(c, err)
			return
		}
		if score == nil {
			c.Status(204)
			return
		}
		c.JSON(200, toScoreResponse(score))
	}
}
