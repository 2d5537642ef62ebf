package apperrors

import "errors"

var (
	ErrEventNotFound       = errors.New("event not found")
	ErrTicketNotFound      = errors.New("ticket not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrOrganizerNotFound   = errors.New("organizer not found")
	ErrOrderNotFound       = errors.New("order not found")
	ErrPayoutNotFound      = errors.New("payout not found")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrInvalidQuantity     = errors.New("invalid quantity")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrInvalidOrderStatus  = errors.New("invalid order status")
	ErrInvalidPayoutStatus = errors.New("invalid payout status")
	ErrOrderAlreadyPaid    = errors.New("order already paid")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInsufficientFunds   = errors.New("insufficient payout balance")
	ErrPaymentInitFailed   = errors.New("payment initialization failed")
	ErrPaymentGateway      = errors.New("payment gateway error")
	ErrInternalServerError = errors.New("internal server error")
)
