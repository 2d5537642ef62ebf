package handler

import (
	"net/http"
	"strconv"

	"go-event-ticketing/internal/model"
	"go-event-ticketing/internal/service"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service service.BookingService
}

func NewBookingHandler(service service.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("bookings", h.CreateBooking)
		router.GET("orders/:id", h.GetOrder)
		router.GET("users/:id/orders", h.ListUserOrders)
	}
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req model.CreateBookingRequest

	if err := BindJson(c, &req); err != nil {
		return
	}

	order, err := h.service.CreateBooking(c, req)
	if err != nil {
		handleError(c, err, "CreateBooking")
		return
	}

	respond(c, order, http.StatusCreated)
}

func (h *BookingHandler) GetOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		handleError(c, err, "GetOrder")
		return
	}

	order, err := h.service.GetOrderByID(c, id)
	if err != nil {
		handleError(c, err, "GetOrder")
		return
	}

	respond(c, order, http.StatusOK)
}

func (h *BookingHandler) ListUserOrders(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		handleError(c, err, "ListUserOrders")
		return
	}

	orders, err := h.service.ListOrdersByUserID(c, userID)
	if err != nil {
		handleError(c, err, "ListUserOrders")
		return
	}

	respond(c, orders, http.StatusOK)
}
