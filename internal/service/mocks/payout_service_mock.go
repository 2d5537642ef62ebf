package mocks

import (
	"context"

	"go-event-ticketing/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type PayoutServiceMock struct {
	mock.Mock
}

func NewPayoutServiceMock() *PayoutServiceMock {
	return &PayoutServiceMock{}
}

func (m *PayoutServiceMock) RequestPayout(ctx context.Context, req model.RequestPayoutRequest) (*model.Payout, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payout), args.Error(1)
}

func (m *PayoutServiceMock) GetPayoutByID(ctx context.Context, id int) (*model.Payout, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payout), args.Error(1)
}

func (m *PayoutServiceMock) ListPayoutsByOrganizerID(ctx context.Context, organizerID int) ([]*model.Payout, error) {
	args := m.Called(ctx, organizerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Payout), args.Error(1)
}

func (m *PayoutServiceMock) AvailableBalance(ctx context.Context, organizerID int) (decimal.Decimal, error) {
	args := m.Called(ctx, organizerID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *PayoutServiceMock) ApprovePayout(ctx context.Context, id int) (*model.Payout, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payout), args.Error(1)
}

func (m *PayoutServiceMock) RejectPayout(ctx context.Context, id int) (*model.Payout, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payout), args.Error(1)
}

func (m *PayoutServiceMock) MarkPayoutPaid(ctx context.Context, id int) (*model.Payout, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payout), args.Error(1)
}
