package handler

import (
	"net/http"

	"go-event-ticketing/internal/model"
	"go-event-ticketing/internal/service"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	service service.PaymentService
}

func NewPaymentHandler(service service.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

func (h *PaymentHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("payments/initialize", h.InitializePayment)
		// the provider redirects the buyer's browser here with
		// ?reference=... after checkout
		router.GET("payments/callback", h.PaymentCallback)
	}
}

func (h *PaymentHandler) InitializePayment(c *gin.Context) {
	var req model.InitializePaymentRequest

	if err := BindJson(c, &req); err != nil {
		return
	}

	result, err := h.service.InitializePayment(c, req.OrderID)
	if err != nil {
		handleError(c, err, "InitializePayment")
		return
	}

	respond(c, result, http.StatusOK)
}

func (h *PaymentHandler) PaymentCallback(c *gin.Context) {
	reference := c.Query("reference")
	if reference == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing reference"})
		return
	}

	order, err := h.service.ConfirmPayment(c, reference)
	if err != nil {
		handleError(c, err, "PaymentCallback")
		return
	}

	respond(c, order, http.StatusOK)
}
