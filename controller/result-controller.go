package controller

import (
	"fmt"
	"time"

	"vaulting/scoring"
	"vaulting/service"
	"vaulting/utils"

	"github.com/gin-contrib/cache"
	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ResultController struct {
	resultService      *service.ResultService
	resultGroupService *service.ResultGroupService
}

func NewResultController(db *gorm.DB) *ResultController {
	return &ResultController{
		resultService:      service.NewResultService(db),
		resultGroupService: service.NewResultGroupService(db),
	}
}

// Result views are public and read heavy while a competition runs, they are
// cached per URL for a few seconds.
func setupResultController(db *gorm.DB, store persistence.CacheStore, ttl time.Duration) []RouteInfo {
	e := NewResultController(db)
	cached := func(handler gin.HandlerFunc) gin.HandlerFunc {
		if store == nil || ttl <= 0 {
			return handler
		}
		return cache.CachePage(store, ttl, handler)
	}
	basePath := "/result-groups/:group_id/results"
	routes := []RouteInfo{
		{Method: "GET", Path: "/first/:part", HandlerFunc: cached(e.getFirstLevelHandler())},
		{Method: "GET", Path: "/second/:part", HandlerFunc: cached(e.getSecondLevelHandler())},
		{Method: "GET", Path: "/total", HandlerFunc: cached(e.getTotalLevelHandler())},
		{Method: "GET", Path: "/total/export", HandlerFunc: e.exportTotalHandler()},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

type ResultLine struct {
	Rank             int      `json:"rank,omitempty"`
	EntryId          int      `json:"entryId"`
	DisplayName      string   `json:"displayName"`
	Club             string   `json:"club"`
	Horse            string   `json:"horse,omitempty"`
	Lunger           string   `json:"lunger,omitempty"`
	FirstTotalScore  *float64 `json:"firstTotalScore,omitempty"`
	SecondTotalScore *float64 `json:"secondTotalScore,omitempty"`
	TotalScore       float64  `json:"totalScore"`
	// three decimals, the way score boards show it
	Score string `json:"score"`
}

type ResultList struct {
	Title              string       `json:"title"`
	SizeOfPointDetails int          `json:"sizeOfPointDetails,omitempty"`
	Results            []ResultLine `json:"results"`
	DroppedEntryIds    []int        `json:"droppedEntryIds,omitempty"`
}

func toResultLine(result *scoring.Result) ResultLine {
	line := ResultLine{
		Rank:             result.Rank,
		EntryId:          result.EntryId,
		FirstTotalScore:  result.FirstTotalScore,
		SecondTotalScore: result.SecondTotalScore,
		TotalScore:       result.TotalScore,
		Score:            scoring.FormatScore(result.TotalScore),
	}
	if entry := result.Entry; entry != nil {
		line.DisplayName = entry.DisplayName()
		line.Club = entry.Club
		if entry.Horse != nil {
			line.Horse = entry.Horse.Name
		}
		if entry.Lunger != nil {
			line.Lunger = entry.Lunger.Name
		}
	}
	return line
}

func toResultListResponse(list *service.ResultList) ResultList {
	return ResultList{
		Title:              list.Title,
		SizeOfPointDetails: list.SizeOfPointDetails,
		Results:            utils.Map(list.Results, toResultLine),
		DroppedEntryIds:    list.DroppedEntryIds,
	}
}

// @id GetFirstLevelResults
// @Description Lists the scores of one timetable part of a result group in starting list order
// @Tags result
// @Produce json
// @Param group_id path int true "Result group ID"
// @Param part path string true "R1F, R1S or R2F"
// @Success 200 {object} ResultList
// @Failure 404 {object} map[string]string
// @Router /result-groups/{group_id}/results/first/{part} [get]
func (e *ResultController) getFirstLevelHandler() gin.HandlerFunc {
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
		list, err := e.resultService.FirstLevel(c.Request.Context(), group, c.Param("part"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, toResultListResponse(list))
	}
}

// @id GetSecondLevelResults
// @Description Ranks a round of a result group. R1 blends both parts of round one, R2 lists round two.
// @Tags result
// @Produce json
// @Param group_id path int true "Result group ID"
// @Param part path string true "R1 or R2"
// @Success 200 {object} ResultList
// @Failure 400 {object} map[string]string
// @Router /result-groups/{group_id}/results/second/{part} [get]
func (e *ResultController) getSecondLevelHandler() gin.HandlerFunc {
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
		list, err := e.resultService.SecondLevel(c.Request.Context(), group, c.Param("part"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, toResultListResponse(list))
	}
}

// @id GetTotalResults
// @Description Ranks the result group over both rounds
// @Tags result
// @Produce json
// @Param group_id path int true "Result group ID"
// @Success 200 {object} ResultList
// @Router /result-groups/{group_id}/results/total [get]
func (e *ResultController) getTotalLevelHandler() gin.HandlerFunc {
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
		list, err := e.resultService.TotalLevel(c.Request.Context(), group)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, toResultListResponse(list))
	}
}

// @id ExportTotalResults
// @Description Downloads the total ranking and both rounds as a spreadsheet
// @Tags result
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param group_id path int true "Result group ID"
// @Success 200 {file} file
// @Router /result-groups/{group_id}/results/total/export [get]
func (e *ResultController) exportTotalHandler() gin.HandlerFunc {
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
		data, err := e.resultService.ExportTotal(c.Request.Context(), group)
		if err != nil {
			respondError(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="results-%d.xlsx"`, group.Id))
		c.Data(200, xlsxContentType, data)
	}
}
