package handler

import (
	"net/http"
	"strconv"

	"go-event-ticketing/internal/model"
	"go-event-ticketing/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type TicketHandler struct {
	service service.TicketService
}

func NewTicketHandler(service service.TicketService) *TicketHandler {
	return &TicketHandler{service: service}
}

func (h *TicketHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("tickets", h.CreateTicket)
		router.GET("tickets/:id", h.GetTicket)
		router.GET("events/:id/tickets", h.ListEventTickets)
		router.PATCH("tickets/:id", h.UpdateTicket)
		router.DELETE("tickets/:id", h.DeleteTicket)
	}
}

func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req model.CreateTicketRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	ticket, err := h.service.CreateTicket(c, req)
	if err != nil {
		handleError(c, err, "CreateTicket")
		return
	}

	respond(c, ticket, http.StatusCreated)
}

func (h *TicketHandler) GetTicket(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		handleError(c, err, "GetTicket")
		return
	}

	ticket, err := h.service.GetTicketByID(c, id)
	if err != nil {
		handleError(c, err, "GetTicket")
		return
	}

	respond(c, ticket, http.StatusOK)
}

func (h *TicketHandler) ListEventTickets(c *gin.Context) {
	eventID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		handleError(c, err, "ListEventTickets")
		return
	}

	tickets, err := h.service.ListTicketsByEventID(c, eventID)
	if err != nil {
		handleError(c, err, "ListEventTickets")
		return
	}

	respond(c, tickets, http.StatusOK)
}

type updateTicketRequest struct {
	Name  *string          `json:"name"`
	Price *decimal.Decimal `json:"price"`
}

func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		handleError(c, err, "UpdateTicket")
		return
	}

	var req updateTicketRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	ticket, err := h.service.UpdateTicket(c, id, model.UpdateTicketParams{
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		handleError(c, err, "UpdateTicket")
		return
	}

	respond(c, ticket, http.StatusOK)
}

func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		handleError(c, err, "DeleteTicket")
		return
	}

	if err := h.service.DeleteTicket(c, id); err != nil {
		handleError(c, err, "DeleteTicket")
		return
	}

	respond(c, nil, http.StatusNoContent)
}
