package model

import "time"

// PaymentStatus of an attendee record
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFree    PaymentStatus = "free"
)

// Attendee is the issued proof-of-admission record, minted only after a
// successful payment verification. It carries a denormalized snapshot of
// the buyer's identity so the record survives later profile edits.
// BookingRef equals the payment reference of the order that produced it.
type Attendee struct {
	ID            int           `json:"id" db:"id"`
	EventID       int           `json:"event_id" db:"event_id"`
	UserID        int           `json:"user_id" db:"user_id"`
	FullName      string        `json:"full_name" db:"full_name"`
	Email         string        `json:"email" db:"email"`
	Phone         string        `json:"phone" db:"phone"`
	TicketsQty    int           `json:"tickets_qty" db:"tickets_qty"`
	PaymentStatus PaymentStatus `json:"payment_status" db:"payment_status"`
	BookingRef    string        `json:"booking_ref" db:"booking_ref"`
	RegisteredAt  time.Time     `json:"registered_at" db:"registered_at"`
}
