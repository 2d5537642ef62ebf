package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ticket is one tier of admission for an event (VIP, Regular, Free).
// QuantityAvailable is only decremented by payment reconciliation, never
// at booking time.
type Ticket struct {
	ID                int             `json:"id" db:"id"`
	EventID           int             `json:"event_id" db:"event_id"`
	Name              string          `json:"name" db:"name"`
	Price             decimal.Decimal `json:"price" db:"price"`
	QuantityAvailable int             `json:"quantity_available" db:"quantity_available"`
	QuantitySold      int             `json:"quantity_sold" db:"quantity_sold"`
	CreatedAt         time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at" db:"updated_at"`

	Event *Event `json:"event,omitempty" db:"-"`
}

// IsAvailable reports whether at least one unit can still be booked.
func (t *Ticket) IsAvailable() bool {
	return t.QuantityAvailable > 0
}

type CreateTicketRequest struct {
	EventID           int             `json:"event_id" binding:"required"`
	Name              string          `json:"name" binding:"required"`
	Price             decimal.Decimal `json:"price" binding:"required"`
	QuantityAvailable int             `json:"quantity_available" binding:"required,min=1"`
}

type UpdateTicketParams struct {
	Name  *string
	Price *decimal.Decimal
}
