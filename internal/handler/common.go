package handler

import (
	"errors"
	"net/http"

	apperrors "go-event-ticketing/pkg/app_errors"
	"go-event-ticketing/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

func BindQuery(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindQuery(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

// handleError maps sentinel errors onto HTTP responses. Validation
// problems come back 4xx with a user-visible message; anything
// unrecognized is a 500.
func handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrInvalidQuantity):
		log.Warn("Invalid quantity")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be at least 1"})
	case errors.Is(err, apperrors.ErrInsufficientStock):
		log.Warn("Insufficient stock")
		c.JSON(http.StatusConflict, gin.H{"error": "Insufficient stock"})
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		log.Warn("Insufficient payout balance")
		c.JSON(http.StatusConflict, gin.H{"error": "Insufficient payout balance"})
	case errors.Is(err, apperrors.ErrOrderAlreadyPaid):
		log.Warn("Order already paid")
		c.JSON(http.StatusConflict, gin.H{"error": "Order already paid"})
	case errors.Is(err, apperrors.ErrInvalidOrderStatus):
		log.Warn("Invalid order status")
		c.JSON(http.StatusConflict, gin.H{"error": "Invalid order status"})
	case errors.Is(err, apperrors.ErrInvalidPayoutStatus):
		log.Warn("Invalid payout status")
		c.JSON(http.StatusConflict, gin.H{"error": "Invalid payout status"})
	case errors.Is(err, apperrors.ErrPaymentInitFailed):
		log.Warn("Payment initialization failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Payment initialization failed"})
	case errors.Is(err, apperrors.ErrPaymentGateway):
		log.Error("Payment gateway error")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Payment gateway error"})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	case errors.Is(err, apperrors.ErrEventNotFound),
		errors.Is(err, apperrors.ErrTicketNotFound),
		errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrOrganizerNotFound),
		errors.Is(err, apperrors.ErrOrderNotFound),
		errors.Is(err, apperrors.ErrPayoutNotFound),
		errors.Is(err, apperrors.ErrCategoryNotFound):
		log.Warn("Not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func respond(c *gin.Context, data interface{}, statusCode int) {
	if data != nil {
		c.JSON(statusCode, data)
	} else {
		c.Status(statusCode)
	}
}
