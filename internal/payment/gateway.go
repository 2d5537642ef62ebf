package payment

import (
	"context"

	"github.com/shopspring/decimal"
)

// InitializeResult is the provider's answer to a transaction
// initialization: the hosted checkout page the browser is sent to.
type InitializeResult struct {
	AuthorizationURL string
	AccessCode       string
	Reference        string
}

// VerifyResult is the provider's answer to a verification call.
// Succeeded is true only when the provider both acknowledged the request
// and reports the transaction itself as successful.
type VerifyResult struct {
	Succeeded bool
	Status    string
	Amount    decimal.Decimal
	Reference string
}

// Gateway is the narrow capability interface in front of the payment
// provider, so reconciliation can be exercised without a live network
// dependency.
type Gateway interface {
	// Initialize creates a provider transaction. amount is in minor
	// currency units (kobo for NGN).
	Initialize(ctx context.Context, email string, amount int64, reference, callbackURL string) (*InitializeResult, error)
	// Verify fetches the outcome of a transaction by reference.
	Verify(ctx context.Context, reference string) (*VerifyResult, error)
}
