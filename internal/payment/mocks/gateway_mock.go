package mocks

import (
	"context"

	"go-event-ticketing/internal/payment"

	"github.com/stretchr/testify/mock"
)

type GatewayMock struct {
	mock.Mock
}

func NewGatewayMock() *GatewayMock {
	return &GatewayMock{}
}

func (m *GatewayMock) Initialize(ctx context.Context, email string, amount int64, reference, callbackURL string) (*payment.InitializeResult, error) {
	args := m.Called(ctx, email, amount, reference, callbackURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.InitializeResult), args.Error(1)
}

func (m *GatewayMock) Verify(ctx context.Context, reference string) (*payment.VerifyResult, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.VerifyResult), args.Error(1)
}
