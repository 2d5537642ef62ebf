package service

import (
	"context"

	"go-event-ticketing/internal/model"
	"go-event-ticketing/internal/repository"
	apperrors "go-event-ticketing/pkg/app_errors"

	"github.com/shopspring/decimal"
)

type PayoutService interface {
	// RequestPayout records a withdrawal request against the organizer's
	// available balance: paid-order revenue minus non-rejected payouts.
	RequestPayout(ctx context.Context, req model.RequestPayoutRequest) (*model.Payout, error)
	GetPayoutByID(ctx context.Context, id int) (*model.Payout, error)
	ListPayoutsByOrganizerID(ctx context.Context, organizerID int) ([]*model.Payout, error)
	AvailableBalance(ctx context.Context, organizerID int) (decimal.Decimal, error)

	// Admin-driven transitions: pending -> approved -> paid, pending -> rejected.
	ApprovePayout(ctx context.Context, id int) (*model.Payout, error)
	RejectPayout(ctx context.Context, id int) (*model.Payout, error)
	MarkPayoutPaid(ctx context.Context, id int) (*model.Payout, error)
}

type PayoutServiceImpl struct {
	payoutRepo    repository.PayoutRepository
	orderRepo     repository.OrderRepository
	organizerRepo repository.OrganizerRepository
}

func NewPayoutService(
	payoutRepo repository.PayoutRepository,
	orderRepo repository.OrderRepository,
	organizerRepo repository.OrganizerRepository,
) PayoutService {
	return &PayoutServiceImpl{
		payoutRepo:    payoutRepo,
		orderRepo:     orderRepo,
		organizerRepo: organizerRepo,
	}
}

func (s *PayoutServiceImpl) RequestPayout(ctx context.Context, req model.RequestPayoutRequest) (*model.Payout, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, apperrors.ErrInvalidInput
	}

	if _, err := s.organizerRepo.FindByID(ctx, req.OrganizerID); err != nil {
		return nil, err
	}

	balance, err := s.AvailableBalance(ctx, req.OrganizerID)
	if err != nil {
		return nil, err
	}

	if req.Amount.GreaterThan(balance) {
		return nil, apperrors.ErrInsufficientFunds
	}

	return s.payoutRepo.Create(ctx, &model.Payout{
		OrganizerID: req.OrganizerID,
		Amount:      req.Amount,
	})
}

func (s *PayoutServiceImpl) GetPayoutByID(ctx context.Context, id int) (*model.Payout, error) {
	return s.payoutRepo.FindByID(ctx, id)
}

func (s *PayoutServiceImpl) ListPayoutsByOrganizerID(ctx context.Context, organizerID int) ([]*model.Payout, error) {
	return s.payoutRepo.ListByOrganizerID(ctx, organizerID)
}

func (s *PayoutServiceImpl) AvailableBalance(ctx context.Context, organizerID int) (decimal.Decimal, error) {
	revenue, err := s.orderRepo.SumPaidByOrganizerID(ctx, organizerID)
	if err != nil {
		return decimal.Zero, err
	}

	withdrawn, err := s.payoutRepo.SumActiveByOrganizerID(ctx, organizerID)
	if err != nil {
		return decimal.Zero, err
	}

	return revenue.Sub(withdrawn), nil
}

func (s *PayoutServiceImpl) ApprovePayout(ctx context.Context, id int) (*model.Payout, error) {
	return s.transition(ctx, id, model.PayoutStatusApproved)
}

func (s *PayoutServiceImpl) RejectPayout(ctx context.Context, id int) (*model.Payout, error) {
	return s.transition(ctx, id, model.PayoutStatusRejected)
}

func (s *PayoutServiceImpl) MarkPayoutPaid(ctx context.Context, id int) (*model.Payout, error) {
	return s.transition(ctx, id, model.PayoutStatusPaid)
}

func (s *PayoutServiceImpl) transition(ctx context.Context, id int, target model.PayoutStatus) (*model.Payout, error) {
	payout, err := s.payoutRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !payout.Status.CanTransitionTo(target) {
		return nil, apperrors.ErrInvalidPayoutStatus
	}

	return s.payoutRepo.UpdateStatus(ctx, id, target)
}
