package service

import (
	"context"
	"errors"
	"fmt"

	"go-event-ticketing/internal/model"
	"go-event-ticketing/internal/monitoring"
	"go-event-ticketing/internal/repository"
	apperrors "go-event-ticketing/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type BookingService interface {
	// CreateBooking turns a ticket selection into the user's single
	// pending order for the event. Inventory is not touched here; it is
	// only committed when the payment verifies.
	CreateBooking(ctx context.Context, req model.CreateBookingRequest) (*model.Order, error)
	GetOrderByID(ctx context.Context, id int) (*model.Order, error)
	ListOrdersByUserID(ctx context.Context, userID int) ([]*model.Order, error)
}

type BookingServiceImpl struct {
	pool       *pgxpool.Pool
	orderRepo  repository.OrderRepository
	ticketRepo repository.TicketRepository
	eventRepo  repository.EventRepository
}

func NewBookingService(
	pool *pgxpool.Pool,
	orderRepo repository.OrderRepository,
	ticketRepo repository.TicketRepository,
	eventRepo repository.EventRepository,
) BookingService {
	return &BookingServiceImpl{
		pool:       pool,
		orderRepo:  orderRepo,
		ticketRepo: ticketRepo,
		eventRepo:  eventRepo,
	}
}

// NewReference generates the unique token that correlates an order with
// a provider transaction.
func NewReference() string {
	return fmt.Sprintf("TIX-%s", uuid.New().String())
}

func (s *BookingServiceImpl) CreateBooking(ctx context.Context, req model.CreateBookingRequest) (*model.Order, error) {
	if req.Quantity < 1 {
		monitoring.RecordBooking("rejected")
		return nil, apperrors.ErrInvalidQuantity
	}

	event, err := s.eventRepo.FindByID(ctx, req.EventID)
	if err != nil {
		return nil, err
	}
	if event.Status != model.EventStatusActive {
		return nil, apperrors.ErrInvalidInput
	}

	ticket, err := s.ticketRepo.FindByID(ctx, req.TicketID)
	if err != nil {
		return nil, err
	}

	if ticket.EventID != req.EventID {
		return nil, apperrors.ErrInvalidInput
	}

	// availability is checked once, here; nothing is held until the
	// payment verifies
	if req.Quantity > ticket.QuantityAvailable {
		monitoring.RecordBooking("rejected")
		return nil, apperrors.ErrInsufficientStock
	}

	total := ticket.Price.Mul(decimal.NewFromInt(int64(req.Quantity)))

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	order, err := s.orderRepo.FindPendingByUserAndEvent(ctx, tx, req.UserID, req.EventID)
	switch {
	case err == nil:
		// reuse the retained pending order: replace its line items
		if err := s.orderRepo.DeleteItemsByOrderID(ctx, tx, order.ID); err != nil {
			return nil, err
		}
		order, err = s.orderRepo.UpdateTotalAmount(ctx, tx, order.ID, total)
		if err != nil {
			return nil, err
		}
	case errors.Is(err, apperrors.ErrOrderNotFound):
		order, err = s.orderRepo.Create(ctx, tx, &model.Order{
			UserID:      req.UserID,
			EventID:     req.EventID,
			TotalAmount: total,
			Reference:   NewReference(),
			Status:      model.OrderStatusPending,
		})
		if err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	item, err := s.orderRepo.CreateItem(ctx, tx, &model.OrderItem{
		OrderID:  order.ID,
		TicketID: req.TicketID,
		Quantity: req.Quantity,
	})
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	order.Items = []*model.OrderItem{item}
	monitoring.RecordBooking("accepted")

	return order, nil
}

func (s *BookingServiceImpl) GetOrderByID(ctx context.Context, id int) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	items, err := s.orderRepo.ListItemsByOrderID(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return order, nil
}

func (s *BookingServiceImpl) ListOrdersByUserID(ctx context.Context, userID int) ([]*model.Order, error) {
	return s.orderRepo.ListByUserID(ctx, userID)
}
