package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus state of a payment order
type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
	OrderStatusPaid    OrderStatus = "paid"
	OrderStatusFailed  OrderStatus = "failed"
)

// IsValid reports whether the status is a known value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusFailed:
		return true
	}
	return false
}

// CanTransitionTo checks a transition against the reconciliation state
// machine. Paid and failed are terminal for a given reference; re-payment
// happens by regenerating the reference, which restarts at pending.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	transitions := map[OrderStatus][]OrderStatus{
		OrderStatusPending: {OrderStatusPaid, OrderStatusFailed},
		OrderStatusPaid:    {},
		OrderStatusFailed:  {},
	}

	allowed, ok := transitions[s]
	if !ok {
		return false
	}

	for _, status := range allowed {
		if status == target {
			return true
		}
	}
	return false
}

// Order is a user's payment intent for tickets to one event. Reference is
// the unique token correlating the order with the provider transaction.
// At most one pending order exists per (user, event); a re-selection
// replaces the pending order's items in place.
type Order struct {
	ID          int             `json:"id" db:"id"`
	UserID      int             `json:"user_id" db:"user_id"`
	EventID     int             `json:"event_id" db:"event_id"`
	TotalAmount decimal.Decimal `json:"total_amount" db:"total_amount"`
	Reference   string          `json:"reference" db:"reference"`
	Status      OrderStatus     `json:"status" db:"status"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" db:"updated_at"`

	Items []*OrderItem `json:"items,omitempty" db:"-"`
}

// OrderItem is one ticket-tier line inside an order. Items are deleted
// and recreated when a still-pending order is re-selected.
type OrderItem struct {
	ID       int `json:"id" db:"id"`
	OrderID  int `json:"order_id" db:"order_id"`
	TicketID int `json:"ticket_id" db:"ticket_id"`
	Quantity int `json:"quantity" db:"quantity"`
}

// CreateBookingRequest ticket selection submitted by an attendee
type CreateBookingRequest struct {
	UserID   int `json:"user_id" binding:"required"`
	EventID  int `json:"event_id" binding:"required"`
	TicketID int `json:"ticket_id" binding:"required"`
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// InitializePaymentRequest starts provider checkout for an order.
type InitializePaymentRequest struct {
	OrderID int `json:"order_id" binding:"required"`
}

// InitializePaymentResponse carries the provider's hosted checkout URL.
type InitializePaymentResponse struct {
	AuthorizationURL string `json:"authorization_url"`
	Reference        string `json:"reference"`
}
