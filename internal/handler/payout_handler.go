package handler

import (
	"context"
	"net/http"
	"strconv"

	"go-event-ticketing/internal/model"
	"go-event-ticketing/internal/service"

	"github.com/gin-gonic/gin"
)

type PayoutHandler struct {
	service service.PayoutService
}

func NewPayoutHandler(service service.PayoutService) *PayoutHandler {
	return &PayoutHandler{service: service}
}

func (h *PayoutHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("payouts", h.RequestPayout)
		router.GET("payouts/:id", h.GetPayout)
		router.GET("organizers/:id/payouts", h.ListOrganizerPayouts)
		router.GET("organizers/:id/balance", h.GetBalance)
		router.PUT("payouts/:id/approve", h.ApprovePayout)
		router.PUT("payouts/:id/reject", h.RejectPayout)
		router.PUT("payouts/:id/paid", h.MarkPayoutPaid)
	}
}

func (h *PayoutHandler) RequestPayout(c *gin.Context) {
	var req model.RequestPayoutRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	payout, err := h.service.RequestPayout(c, req)
	if err != nil {
		handleError(c, err, "RequestPayout")
		return
	}

	respond(c, payout, http.StatusCreated)
}

func (h *PayoutHandler) GetPayout(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		handleError(c, err, "GetPayout")
		return
	}

	payout, err := h.service.GetPayoutByID(c, id)
	if err != nil {
		handleError(c, err, "GetPayout")
		return
	}

	respond(c, payout, http.StatusOK)
}

func (h *PayoutHandler) ListOrganizerPayouts(c *gin.Context) {
	organizerID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		handleError(c, err, "ListOrganizerPayouts")
		return
	}

	payouts, err := h.service.ListPayoutsByOrganizerID(c, organizerID)
	if err != nil {
		handleError(c, err, "ListOrganizerPayouts")
		return
	}

	respond(c, payouts, http.StatusOK)
}

func (h *PayoutHandler) GetBalance(c *gin.Context) {
	organizerID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		handleError(c, err, "GetBalance")
		return
	}

	balance, err := h.service.AvailableBalance(c, organizerID)
	if err != nil {
		handleError(c, err, "GetBalance")
		return
	}

	respond(c, gin.H{"available_balance": balance}, http.StatusOK)
}

func (h *PayoutHandler) ApprovePayout(c *gin.Context) {
	h.transition(c, "ApprovePayout", h.service.ApprovePayout)
}

func (h *PayoutHandler) RejectPayout(c *gin.Context) {
	h.transition(c, "RejectPayout", h.service.RejectPayout)
}

func (h *PayoutHandler) MarkPayoutPaid(c *gin.Context) {
	h.transition(c, "MarkPayoutPaid", h.service.MarkPayoutPaid)
}

func (h *PayoutHandler) transition(c *gin.Context, operation string, fn func(ctx context.Context, id int) (*model.Payout, error)) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		handleError(c, err, operation)
		return
	}

	payout, err := fn(c, id)
	if err != nil {
		handleError(c, err, operation)
		return
	}

	respond(c, payout, http.StatusOK)
}
