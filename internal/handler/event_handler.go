package handler

import (
	"net/http"
	"strconv"
	"time"

	"go-event-ticketing/internal/model"
	"go-event-ticketing/internal/service"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	service service.EventService
}

func NewEventHandler(service service.EventService) *EventHandler {
	return &EventHandler{service: service}
}

func (h *EventHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("events", h.ListEvents)
		router.GET("events/:id", h.GetEvent)
		router.POST("events", h.CreateEvent)
		router.PATCH("events/:id", h.UpdateEvent)
		router.DELETE("events/:id", h.DeleteEvent)
		router.GET("organizers/:id/events", h.ListOrganizerEvents)
	}
}

func (h *EventHandler) ListEvents(c *gin.Context) {
	var filter model.EventFilter
	if err := BindQuery(c, &filter); err != nil {
		return
	}

	events, err := h.service.ListEvents(c, filter)
	if err != nil {
		handleError(c, err, "ListEvents")
		return
	}

	respond(c, events, http.StatusOK)
}

func (h *EventHandler) GetEvent(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		handleError(c, err, "GetEvent")
		return
	}

	event, err := h.service.GetEventByID(c, id)
	if err != nil {
		handleError(c, err, "GetEvent")
		return
	}

	respond(c, event, http.StatusOK)
}

func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req model.CreateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	event, err := h.service.CreateEvent(c, req)
	if err != nil {
		handleError(c, err, "CreateEvent")
		return
	}

	respond(c, event, http.StatusCreated)
}

type updateEventRequest struct {
	CategoryID  *int               `json:"category_id"`
	Title       *string            `json:"title"`
	Description *string            `json:"description"`
	Date        *time.Time         `json:"date"`
	Venue       *string            `json:"venue"`
	StateID     *int               `json:"state_id"`
	LgaID       *int               `json:"lga_id"`
	ImageURL    *string            `json:"image_url"`
	Status      *model.EventStatus `json:"status"`
}

func (h *EventHandler) UpdateEvent(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		handleError(c, err, "UpdateEvent")
		return
	}

	var req updateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	event, err := h.service.UpdateEvent(c, id, model.UpdateEventParams{
		CategoryID:  req.CategoryID,
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Venue:       req.Venue,
		StateID:     req.StateID,
		LgaID:       req.LgaID,
		ImageURL:    req.ImageURL,
		Status:      req.Status,
	})
	if err != nil {
		handleError(c, err, "UpdateEvent")
		return
	}

	respond(c, event, http.StatusOK)
}

func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		handleError(c, err, "DeleteEvent")
		return
	}

	if err := h.service.DeleteEvent(c, id); err != nil {
		handleError(c, err, "DeleteEvent")
		return
	}

	respond(c, nil, http.StatusNoContent)
}

func (h *EventHandler) ListOrganizerEvents(c *gin.Context) {
	organizerID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		handleError(c, err, "ListOrganizerEvents")
		return
	}

	events, err := h.service.ListEventsByOrganizerID(c, organizerID)
	if err != nil {
		handleError(c, err, "ListOrganizerEvents")
		return
	}

	respond(c, events, http.StatusOK)
}
