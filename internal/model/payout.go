package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayoutStatus state of a withdrawal request
type PayoutStatus string

const (
	PayoutStatusPending  PayoutStatus = "pending"
	PayoutStatusApproved PayoutStatus = "approved"
	PayoutStatusPaid     PayoutStatus = "paid"
	PayoutStatusRejected PayoutStatus = "rejected"
)

// IsValid reports whether the status is a known value.
func (s PayoutStatus) IsValid() bool {
	switch s {
	case PayoutStatusPending, PayoutStatusApproved, PayoutStatusPaid, PayoutStatusRejected:
		return true
	}
	return false
}

// CanTransitionTo checks the admin-driven payout flow:
// pending -> approved -> paid, pending -> rejected.
func (s PayoutStatus) CanTransitionTo(target PayoutStatus) bool {
	transitions := map[PayoutStatus][]PayoutStatus{
		PayoutStatusPending:  {PayoutStatusApproved, PayoutStatusRejected},
		PayoutStatusApproved: {PayoutStatusPaid},
		PayoutStatusPaid:     {},
		PayoutStatusRejected: {},
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

// Payout is an organizer withdrawal request against accumulated
// paid-order revenue.
type Payout struct {
	ID          int             `json:"id" db:"id"`
	OrganizerID int             `json:"organizer_id" db:"organizer_id"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	Status      PayoutStatus    `json:"status" db:"status"`
	RequestedAt time.Time       `json:"requested_at" db:"requested_at"`
	ProcessedAt *time.Time      `json:"processed_at,omitempty" db:"processed_at"`
}

type RequestPayoutRequest struct {
	OrganizerID int             `json:"organizer_id" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
}
