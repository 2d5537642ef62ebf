package service

import (
	"context"

	"go-event-ticketing/internal/cache"
	"go-event-ticketing/internal/model"
	"go-event-ticketing/internal/repository"
	"go-event-ticketing/pkg/logger"

	"go.uber.org/zap"
)

type TicketService interface {
	CreateTicket(ctx context.Context, req model.CreateTicketRequest) (*model.Ticket, error)
	GetTicketByID(ctx context.Context, id int) (*model.Ticket, error)
	ListTicketsByEventID(ctx context.Context, eventID int) ([]*model.Ticket, error)
	UpdateTicket(ctx context.Context, id int, params model.UpdateTicketParams) (*model.Ticket, error)
	DeleteTicket(ctx context.Context, id int) error
}

type TicketServiceImpl struct {
	ticketRepo   repository.TicketRepository
	eventRepo    repository.EventRepository
	catalogCache cache.CatalogCache
}

func NewTicketService(
	ticketRepo repository.TicketRepository,
	eventRepo repository.EventRepository,
	catalogCache cache.CatalogCache,
) TicketService {
	return &TicketServiceImpl{
		ticketRepo:   ticketRepo,
		eventRepo:    eventRepo,
		catalogCache: catalogCache,
	}
}

func (s *TicketServiceImpl) CreateTicket(ctx context.Context, req model.CreateTicketRequest) (*model.Ticket, error) {
	if _, err := s.eventRepo.FindByID(ctx, req.EventID); err != nil {
		return nil, err
	}

	ticket, err := s.ticketRepo.Create(ctx, &model.Ticket{
		EventID:           req.EventID,
		Name:              req.Name,
		Price:             req.Price,
		QuantityAvailable: req.QuantityAvailable,
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, req.EventID)
	return ticket, nil
}

func (s *TicketServiceImpl) GetTicketByID(ctx context.Context, id int) (*model.Ticket, error) {
	return s.ticketRepo.FindByID(ctx, id)
}

func (s *TicketServiceImpl) ListTicketsByEventID(ctx context.Context, eventID int) ([]*model.Ticket, error) {
	return s.ticketRepo.ListByEventID(ctx, eventID)
}

func (s *TicketServiceImpl) UpdateTicket(ctx context.Context, id int, params model.UpdateTicketParams) (*model.Ticket, error) {
	ticket, err := s.ticketRepo.Update(ctx, id, params)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, ticket.EventID)
	return ticket, nil
}

func (s *TicketServiceImpl) DeleteTicket(ctx context.Context, id int) error {
	ticket, err := s.ticketRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.ticketRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, ticket.EventID)
	return nil
}

func (s *TicketServiceImpl) invalidate(ctx context.Context, eventID int) {
	if s.catalogCache == nil {
		return
	}
	if err := s.catalogCache.InvalidateEvent(ctx, eventID); err != nil {
		logger.WithComponent("catalog").Warn("cache invalidation failed", zap.Int("event_id", eventID), zap.Error(err))
	}
}
