package controller

import (
	"time"

	"vaulting/repository"
	"vaulting/service"
	"vaulting/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type EventController struct {
	eventService *service.EventService
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{
		eventService: service.NewEventService(db),
	}
}

func setupEventController(db *gorm.DB) []RouteInfo {
	e := NewEventController(db)
	basePath := "/events"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getEventsHandler()},
		{Method: "POST", Path: "", HandlerFunc: e.createEventHandler(), Authenticated: true, RequiredRoles: adminRoles},
		{Method: "GET", Path: "/selected", HandlerFunc: e.getSelectedEventHandler()},
		{Method: "GET", Path: "/:event_id", HandlerFunc: e.getEventHandler()},
		{Method: "PATCH", Path: "/:event_id", HandlerFunc: e.updateEventHandler(), Authenticated: true, RequiredRoles: adminRoles},
		{Method: "POST", Path: "/:event_id/select", HandlerFunc: e.selectEventHandler(), Authenticated: true, RequiredRoles: officeRoles},
		{Method: "DELETE", Path: "/:event_id", HandlerFunc: e.deleteEventHandler(), Authenticated: true, RequiredRoles: adminRoles},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

type EventCreate struct {
	Name      string    `json:"name" binding:"required"`
	Location  string    `json:"location"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

type EventResponse struct {
	Id         int       `json:"id"`
	Name       string    `json:"name"`
	Location   string    `json:"location"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	IsSelected bool      `json:"isSelected"`
}

func (e *EventCreate) toModel() *repository.Event {
	return &repository.Event{
		Name:      e.Name,
		Location:  e.Location,
		StartDate: e.StartDate,
		EndDate:   e.EndDate,
	}
}

func toEventResponse(event *repository.Event) EventResponse {
	return EventResponse{
		Id:         event.Id,
		Name:       event.Name,
		Location:   event.Location,
		StartDate:  event.StartDate,
		EndDate:    event.EndDate,
		IsSelected: event.IsSelected,
	}
}

// @id GetEvents
// @Description Fetches all events
// @Tags event
// @Produce json
// @Success 200 {array} EventResponse
// @Router /events [get]
func (e *EventController) getEventsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		events, err := e.eventService.GetAllEvents()
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, utils.Map(events, toEventResponse))
	}
}

// @id GetSelectedEvent
// @Description Fetches the event results are computed for
// @Tags event
// @Produce json
// @Success 200 {object} EventResponse
// @Router /events/selected [get]
func (e *EventController) getSelectedEventHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		event, err := e.eventService.GetSelectedEvent()
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, toEventResponse(event))
	}
}

// @id CreateEvent
// @Description Creates an event
// @Tags event
// @Accept json
// @Produce json
// @Param event body EventCreate true "Event to create"
// @Success 201 {object} EventResponse
// @Security BearerAuth
// @Router /events [post]
func (e *EventController) createEventHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var eventCreate EventCreate
		if err := c.BindJSON(&eventCreate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		event, err := e.eventService.CreateEvent(eventCreate.toModel())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(201, toEventResponse(event))
	}
}

// @id GetEvent
// @Description Gets an event by id
// @Tags event
// @Produce json
// @Param event_id path int true "Event ID"
// @Success 200 {object} EventResponse
// @Router /events/{event_id} [get]
func (e *EventController) getEventHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := intParam(c, "event_id")
		if !ok {
			return
		}
		event, err := e.eventService.GetEventById(eventId)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, toEventResponse(event))
	}
}

// @id UpdateEvent
// @Description Updates an event
// @Tags event
// @Accept json
// @Produce json
// @Param event_id path int true "Event ID"
// @Param event body EventCreate true "Event to update"
// @Success 200 {object} EventResponse
// @Security BearerAuth
// @Router /events/{event_id} [patch]
func (e *EventController) updateEventHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := intParam(c, "event_id")
		if !ok {
			return
		}
		var eventUpdate EventCreate
		if err := c.BindJSON(&eventUpdate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		event, err := e.eventService.UpdateEvent(eventId, eventUpdate.toModel())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, toEventResponse(event))
	}
}

// @id SelectEvent
// @Description Makes the event the selected one, deselecting all others
// @Tags event
// @Produce json
// @Param event_id path int true "Event ID"
// @Success 200 {object} EventResponse
// @Security BearerAuth
// @Router /events/{event_id}/select [post]
func (e *EventController) selectEventHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := intParam(c, "event_id")
		if !ok {
			return
		}
		event, err := e.eventService.SelectEvent(eventId)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, toEventResponse(event))
	}
}

// @id DeleteEvent
// @Description Deletes an event
// @Tags event
// @Param event_id path int true "Event ID"
// @Success 204
// @Security BearerAuth
// @Router /events/{event_id} [delete]
func (e *EventController) deleteEventHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := intParam(c, "event_id")
		if !ok {
			return
		}
		if err := e.eventService.DeleteEvent(eventId); err != nil {
			respondError(c, err)
			return
		}
		c.Status(204)
	}
}
