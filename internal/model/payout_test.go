package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPayoutStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    PayoutStatus
		to      PayoutStatus
		allowed bool
	}{
		{"pending to approved", PayoutStatusPending, PayoutStatusApproved, true},
		{"pending to rejected", PayoutStatusPending, PayoutStatusRejected, true},
		{"pending cannot skip to paid", PayoutStatusPending, PayoutStatusPaid, false},
		{"approved to paid", PayoutStatusApproved, PayoutStatusPaid, true},
		{"approved cannot be rejected", PayoutStatusApproved, PayoutStatusRejected, false},
		{"paid is terminal", PayoutStatusPaid, PayoutStatusApproved, false},
		{"rejected is terminal", PayoutStatusRejected, PayoutStatusApproved, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}
