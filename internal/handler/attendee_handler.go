package handler

import (
	"net/http"
	"strconv"

	"go-event-ticketing/internal/service"

	"github.com/gin-gonic/gin"
)

type AttendeeHandler struct {
	service service.AttendeeService
}

func NewAttendeeHandler(service service.AttendeeService) *AttendeeHandler {
	return &AttendeeHandler{service: service}
}

func (h *AttendeeHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("users/:id/attendees", h.ListMyTickets)
		router.GET("events/:id/attendees", h.ListEventAttendees)
	}
}

func (h *AttendeeHandler) ListMyTickets(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		handleError(c, err, "ListMyTickets")
		return
	}

	attendees, err := h.service.ListMyTickets(c, userID)
	if err != nil {
		handleError(c, err, "ListMyTickets")
		return
	}

	respond(c, attendees, http.StatusOK)
}

func (h *AttendeeHandler) ListEventAttendees(c *gin.Context) {
	eventID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		handleError(c, err, "ListEventAttendees")
		return
	}

	attendees, err := h.service.ListEventAttendees(c, eventID)
	if err != nil {
		handleError(c, err, "ListEventAttendees")
		return
	}

	respond(c, attendees, http.StatusOK)
}
