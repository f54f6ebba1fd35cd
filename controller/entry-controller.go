package controller

import (
	"vaulting/repository"
	"vaulting/service"
	"vaulting/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type EntryController struct {
	entryService *service.EntryService
}

func NewEntryController(db *gorm.DB) *EntryController {
	return &EntryController{entryService: service.NewEntryService(db)}
}

func setupEntryController(db *gorm.DB) []RouteInfo {
	e := NewEntryController(db)
	routes := []RouteInfo{
		{Method: "GET", Path: "/events/:event_id/entries", HandlerFunc: e.getEntriesHandler()},
		{Method: "POST", Path: "/events/:event_id/entries", HandlerFunc: e.createEntryHandler(), Authenticated: true, RequiredRoles: officeRoles},
		{Method: "GET", Path: "/entries/:entry_id", HandlerFunc: e.getEntryHandler()},
		{Method: "PATCH", Path: "/entries/:entry_id", HandlerFunc: e.updateEntryHandler(), Authenticated: true, RequiredRoles: officeRoles},
		{Method: "PUT", Path: "/entries/:entry_id/status", HandlerFunc: e.setStatusHandler(), Authenticated: true, RequiredRoles: officeRoles},
		{Method: "DELETE", Path: "/entries/:entry_id", HandlerFunc: e.deleteEntryHandler(), Authenticated: true, RequiredRoles: officeRoles},
		{Method: "GET", Path: "/people", HandlerFunc: e.getPeopleHandler()},
		{Method: "POST", Path: "/people", HandlerFunc: e.savePersonHandler(), Authenticated: true, RequiredRoles: officeRoles},
		{Method: "GET", Path: "/horses", HandlerFunc: e.getHorsesHandler()},
		{Method: "POST", Path: "/horses", HandlerFunc: e.saveHorseHandler(), Authenticated: true, RequiredRoles: officeRoles},
	}
	return routes
}

type EntryCreate struct {
	CategoryId int    `json:"categoryId" binding:"required"`
	HorseId    *int   `json:"horseId"`
	LungerId   *int   `json:"lungerId"`
	Club       string `json:"club"`
	VaulterIds []int  `json:"vaulterIds" binding:"required"`
}

type StatusUpdate struct {
	Status repository.EntryStatus `json:"status" binding:"required"`
}

type Person struct {
	Id          int                   `json:"id"`
	Name        string                `json:"name" binding:"required"`
	Nationality string                `json:"nationality"`
	Role        repository.PersonRole `json:"role" binding:"required"`
}

type Horse struct {
	Id       int    `json:"id"`
	Name     string `json:"name" binding:"required"`
	Passport string `json:"passport"`
}

type Entry struct {
	Id          int                    `json:"id"`
	EventId     int                    `json:"eventId"`
	CategoryId  int                    `json:"categoryId"`
	Category    string                 `json:"category,omitempty"`
	DisplayName string                 `json:"displayName"`
	Club        string                 `json:"club"`
	Status      repository.EntryStatus `json:"status"`
	Vaulters    []Person               `json:"vaulters"`
	Horse       *Horse                 `json:"horse,omitempty"`
	Lunger      *Person                `json:"lunger,omitempty"`
}

func toPersonResponse(person *repository.Person) Person {
	return Person{Id: person.Id, Name: person.Name, Nationality: person.Nationality, Role: person.Role}
}

func toHorseResponse(horse *repository.Horse) Horse {
	return Horse{Id: horse.Id, Name: horse.Name, Passport: horse.Passport}
}

func toEntryResponse(entry *repository.Entry) Entry {
	response := Entry{
		Id:          entry.Id,
		EventId:     entry.EventId,
		CategoryId:  entry.CategoryId,
		DisplayName: entry.DisplayName(),
		Club:        entry.Club,
		Status:      entry.Status,
		Vaulters:    utils.Map(entry.Vaulters, toPersonResponse),
	}
	if entry.Category != nil {
		response.Category = entry.Category.Name
	}
	if entry.Horse != nil {
		horse := toHorseResponse(entry.Horse)
		response.Horse = &horse
	}
	if entry.Lunger != nil {
		lunger := toPersonResponse(entry.Lunger)
		response.Lunger = &lunger
	}
	return response
}

func (e *EntryCreate) toModel(eventId int) *repository.Entry {
	return &repository.Entry{
		EventId:    eventId,
		CategoryId: e.CategoryId,
		HorseId:    e.HorseId,
		LungerId:   e.LungerId,
		Club:       e.Club,
	}
}

// @id GetEntries
// @Description Fetches all entries of an event
// @Tags entry
// @Produce json
// @Param event_id path int true "Event ID"
// @Success 200 {array} Entry
// @Router /events/{event_id}/entries [get]
func (e *EntryController) getEntriesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := intParam(c, "event_id")
		if !ok {
			return
		}
		entries, err := e.entryService.GetEntriesForEvent(eventId)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, utils.Map(entries, toEntryResponse))
	}
}

// @id GetEntry
// @Description Fetches an entry
// @Tags entry
// @Produce json
// @Param entry_id path int true "Entry ID"
// @Success 200 {object} Entry
// @Router /entries/{entry_id} [get]
func (e *EntryController) getEntryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		entryId, ok := intParam(c, "entry_id")
		if !ok {
			return
		}
		entry, err := e.entryService.GetEntryById(entryId)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, toEntryResponse(entry))
	}
}

// @id CreateEntry
// @Description Registers an entry for an event
// @Tags entry
// @Accept json
// @Produce json
// @Param event_id path int true "Event ID"
// @Param entry body EntryCreate true "Entry"
// @Success 201 {object} Entry
// @Security BearerAuth
// @Router /events/{event_id}/entries [post]
func (e *EntryController) createEntryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := intParam(c, "event_id")
		if !ok {
			return
		}
		var body EntryCreate
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		entry, err := e.entryService.SaveEntry(body.toModel(eventId), body.VaulterIds)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(201, toEntryResponse(entry))
	}
}

// @id UpdateEntry
// @Description Updates an entry, its status is kept
// @Tags entry
// @Accept json
// @Produce json
// @Param entry_id path int true "Entry ID"
// @Param entry body EntryCreate true "Entry"
// @Success 200 {object} Entry
// @Security BearerAuth
// @Router /entries/{entry_id} [patch]
func (e *EntryController) updateEntryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		entryId, ok := intParam(c, "entry_id")
		if !ok {
			return
		}
		var body EntryCreate
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		existing, err := e.entryService.GetEntryById(entryId)
		if err != nil {
			respondError(c, err)
			return
		}
		model := body.toModel(existing.EventId)
		model.Id = entryId
		entry, err := e.entryService.SaveEntry(model, body.VaulterIds)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, toEntryResponse(entry))
	}
}

// @id SetEntryStatus
// @Description Confirms, withdraws or eliminates an entry
// @Tags entry
// @Accept json
// @Produce json
// @Param entry_id path int true "Entry ID"
// @Param status body StatusUpdate true "New status"
// @Success 200 {object} Entry
// @Security BearerAuth
// @Router /entries/{entry_id}/status [put]
func (e *EntryController) setStatusHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		entryId, ok := intParam(c, "entry_id")
		if !ok {
			return
		}
		var body StatusUpdate
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		entry, err := e.entryService.SetStatus(entryId, body.Status)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, toEntryResponse(entry))
	}
}

// @id DeleteEntry
// @Description Deletes an entry with its score sheets
// @Tags entry
// @Param entry_id path int true "Entry ID"
// @Success 204
// @Security BearerAuth
// @Router /entries/{entry_id} [delete]
func (e *EntryController) deleteEntryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		entryId, ok := intParam(c, "entry_id")
		if !ok {
			return
		}
		if err := e.entryService.DeleteEntry(entryId); err != nil {
			respondError(c, err)
			return
		}
		c.Status(204)
	}
}

// @id GetPeople
// @Description Fetches vaulters or lungers
// @Tags entry
// @Produce json
// @Param role query string false "vaulter or lunger" default(vaulter)
// @Success 200 {array} Person
// @Router /people [get]
func (e *EntryController) getPeopleHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := repository.PersonRole(c.DefaultQuery("role", string(repository.RoleVaulter)))
		people, err := e.entryService.GetPeople(role)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, utils.Map(people, toPersonResponse))
	}
}

// @id SavePerson
// @Description Creates or updates a vaulter or lunger
// @Tags entry
// @Accept json
// @Produce json
// @Param person body Person true "Person"
// @Success 200 {object} Person
// @Security BearerAuth
// @Router /people [post]
func (e *EntryController) savePersonHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body Person
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		person, err := e.entryService.SavePerson(&repository.Person{
			Id: body.Id, Name: body.Name, Nationality: body.Nationality, Role: body.Role,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, toPersonResponse(person))
	}
}

// @id GetHorses
// @Description Fetches all horses
// @Tags entry
// @Produce json
// @Success 200 {array} Horse
// @Router /horses [get]
func (e *EntryController) getHorsesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		horses, err := e.entryService.GetHorses()
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, utils.Map(horses, toHorseResponse))
	}
}

// @id SaveHorse
// @Description Creates or updates a horse
// @Tags entry
// @Accept json
// @Produce json
// @Param horse body Horse true "Horse"
// @Success 200 {object} Horse
// @Security BearerAuth
// @Router /horses [post]
func (e *EntryController) saveHorseHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body Horse
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		horse, err := e.entryService.SaveHorse(&repository.Horse{Id: body.Id, Name: body.Name, Passport: body.Passport})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, toHorseResponse(horse))
	}
}
