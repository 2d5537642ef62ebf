package mocks

import (
	"context"

	"go-event-ticketing/internal/model"

	"github.com/stretchr/testify/mock"
)

type PaymentServiceMock struct {
	mock.Mock
}

func NewPaymentServiceMock() *PaymentServiceMock {
	return &PaymentServiceMock{}
}

func (m *PaymentServiceMock) InitializePayment(ctx context.Context, orderID int) (*model.InitializePaymentResponse, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.InitializePaymentResponse), args.Error(1)
}

func (m *PaymentServiceMock) ConfirmPayment(ctx context.Context, reference string) (*model.Order, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}
