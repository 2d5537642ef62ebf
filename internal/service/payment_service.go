package service

import (
	"context"
	"errors"
	"time"

	"go-event-ticketing/internal/model"
	"go-event-ticketing/internal/monitoring"
	"go-event-ticketing/internal/payment"
	"go-event-ticketing/internal/queue"
	"go-event-ticketing/internal/repository"
	apperrors "go-event-ticketing/pkg/app_errors"
	"go-event-ticketing/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type PaymentService interface {
	// InitializePayment regenerates the order's reference, resets it to
	// pending and asks the provider for a hosted checkout URL. On
	// provider failure the order stays pending so the user can retry.
	InitializePayment(ctx context.Context, orderID int) (*model.InitializePaymentResponse, error)

	// ConfirmPayment reconciles a provider verification result: on
	// success it marks the order paid, mints one attendee per order item
	// and commits the ticket sale; on provider-reported failure it marks
	// the order failed and mutates nothing else. Safe to invoke more
	// than once for the same reference.
	ConfirmPayment(ctx context.Context, reference string) (*model.Order, error)
}

type PaymentServiceImpl struct {
	pool          *pgxpool.Pool
	orderRepo     repository.OrderRepository
	ticketRepo    repository.TicketRepository
	userRepo      repository.UserRepository
	attendeeRepo  repository.AttendeeRepository
	gateway       payment.Gateway
	notifications queue.NotificationQueue
	callbackURL   string
}

func NewPaymentService(
	pool *pgxpool.Pool,
	orderRepo repository.OrderRepository,
	ticketRepo repository.TicketRepository,
	userRepo repository.UserRepository,
	attendeeRepo repository.AttendeeRepository,
	gateway payment.Gateway,
	notifications queue.NotificationQueue,
	callbackURL string,
) PaymentService {
	return &PaymentServiceImpl{
		pool:          pool,
		orderRepo:     orderRepo,
		ticketRepo:    ticketRepo,
		userRepo:      userRepo,
		attendeeRepo:  attendeeRepo,
		gateway:       gateway,
		notifications: notifications,
		callbackURL:   callbackURL,
	}
}

func (s *PaymentServiceImpl) InitializePayment(ctx context.Context, orderID int) (*model.InitializePaymentResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.Status == model.OrderStatusPaid {
		return nil, apperrors.ErrOrderAlreadyPaid
	}

	user, err := s.userRepo.FindByID(ctx, order.UserID)
	if err != nil {
		return nil, err
	}

	// fresh reference per initialization attempt; the old reference is
	// dead from here on
	order, err = s.orderRepo.UpdateReference(ctx, order.ID, NewReference())
	if err != nil {
		return nil, err
	}

	amountMinor := order.TotalAmount.Mul(decimal.NewFromInt(100)).IntPart()

	start := time.Now()
	result, err := s.gateway.Initialize(ctx, user.Email, amountMinor, order.Reference, s.callbackURL)
	monitoring.ObserveGatewayCall("initialize", time.Since(start).Seconds())
	if err != nil {
		monitoring.RecordPaymentInit("failed")
		return nil, err
	}
	monitoring.RecordPaymentInit("success")

	return &model.InitializePaymentResponse{
		AuthorizationURL: result.AuthorizationURL,
		Reference:        order.Reference,
	}, nil
}

func (s *PaymentServiceImpl) ConfirmPayment(ctx context.Context, reference string) (*model.Order, error) {
	start := time.Now()
	result, err := s.gateway.Verify(ctx, reference)
	monitoring.ObserveGatewayCall("verify", time.Since(start).Seconds())
	if err != nil {
		// transport/gateway trouble is not a failed transaction; leave
		// the order untouched so the callback can be retried
		monitoring.RecordReconciliation("error")
		return nil, err
	}

	if !result.Succeeded {
		return s.markFailed(ctx, reference)
	}

	return s.markPaid(ctx, reference)
}

func (s *PaymentServiceImpl) markFailed(ctx context.Context, reference string) (*model.Order, error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	order, err := s.orderRepo.FindByReferenceWithLock(ctx, tx, reference)
	if err != nil {
		return nil, err
	}

	// paid and failed are terminal; only a pending order can fail
	if order.Status != model.OrderStatusPending {
		if err := tx.Commit(ctx); err != nil {
			return nil, err
		}
		monitoring.RecordReconciliation("duplicate")
		return order, nil
	}

	order, err = s.orderRepo.UpdateStatus(ctx, tx, order.ID, model.OrderStatusFailed)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	monitoring.RecordReconciliation("failed")
	return order, nil
}

func (s *PaymentServiceImpl) markPaid(ctx context.Context, reference string) (*model.Order, error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	order, err := s.orderRepo.FindByReferenceWithLock(ctx, tx, reference)
	if err != nil {
		return nil, err
	}

	// idempotence guard: the provider retries and users refresh the
	// callback page; a reference that already paid must not mint
	// attendees or decrement inventory a second time
	if order.Status == model.OrderStatusPaid {
		if err := tx.Commit(ctx); err != nil {
			return nil, err
		}
		monitoring.RecordReconciliation("duplicate")
		return order, nil
	}

	if !order.Status.CanTransitionTo(model.OrderStatusPaid) {
		return nil, apperrors.ErrInvalidOrderStatus
	}

	user, err := s.userRepo.FindByID(ctx, order.UserID)
	if err != nil {
		return nil, err
	}

	phone := ""
	if profile, err := s.userRepo.FindProfileByUserID(ctx, order.UserID); err == nil {
		phone = profile.Phone
	} else if !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, err
	}

	items, err := s.orderRepo.ListItemsByOrderIDTx(ctx, tx, order.ID)
	if err != nil {
		return nil, err
	}

	order, err = s.orderRepo.UpdateStatus(ctx, tx, order.ID, model.OrderStatusPaid)
	if err != nil {
		return nil, err
	}

	totalQty := 0
	for _, item := range items {
		_, err := s.attendeeRepo.Create(ctx, tx, &model.Attendee{
			EventID:       order.EventID,
			UserID:        order.UserID,
			FullName:      user.FullName(),
			Email:         user.Email,
			Phone:         phone,
			TicketsQty:    item.Quantity,
			PaymentStatus: model.PaymentStatusPaid,
			BookingRef:    reference,
		})
		if err != nil {
			return nil, err
		}

		if err := s.ticketRepo.CommitSale(ctx, tx, item.TicketID, item.Quantity); err != nil {
			return nil, err
		}

		totalQty += item.Quantity
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	monitoring.RecordReconciliation("paid")
	s.publishTicketIssued(ctx, order, user, totalQty)

	order.Items = items
	return order, nil
}

// publishTicketIssued is best-effort: the order is already paid and the
// attendee minted; a lost notification must not fail the callback.
func (s *PaymentServiceImpl) publishTicketIssued(ctx context.Context, order *model.Order, user *model.User, totalQty int) {
	if s.notifications == nil {
		return
	}

	err := s.notifications.Publish(ctx, &model.TicketIssuedNotification{
		OrderID:    order.ID,
		EventID:    order.EventID,
		BookingRef: order.Reference,
		Email:      user.Email,
		FullName:   user.FullName(),
		TicketsQty: totalQty,
	})
	if err != nil {
		logger.WithComponent("payment").Warn("failed to publish ticket issued notification",
			zap.Int("order_id", order.ID),
			zap.Error(err),
		)
	}
}
