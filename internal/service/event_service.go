package service

import (
	"context"

	"go-event-ticketing/internal/cache"
	"go-event-ticketing/internal/model"
	"go-event-ticketing/internal/repository"
	"go-event-ticketing/pkg/logger"

	"go.uber.org/zap"
)

type EventService interface {
	CreateEvent(ctx context.Context, req model.CreateEventRequest) (*model.Event, error)
	ListEvents(ctx context.Context, filter model.EventFilter) ([]*model.Event, error)
	GetEventByID(ctx context.Context, id int) (*model.Event, error)
	ListEventsByOrganizerID(ctx context.Context, organizerID int) ([]*model.Event, error)
	UpdateEvent(ctx context.Context, id int, params model.UpdateEventParams) (*model.Event, error)
	DeleteEvent(ctx context.Context, id int) error
}

type EventServiceImpl struct {
	eventRepo     repository.EventRepository
	ticketRepo    repository.TicketRepository
	organizerRepo repository.OrganizerRepository
	catalogCache  cache.CatalogCache
}

func NewEventService(
	eventRepo repository.EventRepository,
	ticketRepo repository.TicketRepository,
	organizerRepo repository.OrganizerRepository,
	catalogCache cache.CatalogCache,
) EventService {
	return &EventServiceImpl{
		eventRepo:     eventRepo,
		ticketRepo:    ticketRepo,
		organizerRepo: organizerRepo,
		catalogCache:  catalogCache,
	}
}

func (s *EventServiceImpl) CreateEvent(ctx context.Context, req model.CreateEventRequest) (*model.Event, error) {
	// only an existing organizer can own events
	if _, err := s.organizerRepo.FindByID(ctx, req.OrganizerID); err != nil {
		return nil, err
	}

	return s.eventRepo.Create(ctx, &model.Event{
		OrganizerID: req.OrganizerID,
		CategoryID:  req.CategoryID,
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Venue:       req.Venue,
		StateID:     req.StateID,
		LgaID:       req.LgaID,
		ImageURL:    req.ImageURL,
	})
}

func (s *EventServiceImpl) ListEvents(ctx context.Context, filter model.EventFilter) ([]*model.Event, error) {
	return s.eventRepo.List(ctx, filter)
}

// GetEventByID serves the event detail page: the event plus its ticket
// tiers, through the catalog cache.
func (s *EventServiceImpl) GetEventByID(ctx context.Context, id int) (*model.Event, error) {
	if s.catalogCache != nil {
		cached, err := s.catalogCache.GetEvent(ctx, id)
		if err != nil {
			logger.WithComponent("catalog").Warn("cache read failed", zap.Int("event_id", id), zap.Error(err))
		}
		if cached != nil {
			return cached, nil
		}
	}

	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	tickets, err := s.ticketRepo.ListByEventID(ctx, id)
	if err != nil {
		return nil, err
	}
	event.Tickets = tickets

	if s.catalogCache != nil {
		if err := s.catalogCache.SetEvent(ctx, event); err != nil {
			logger.WithComponent("catalog").Warn("cache write failed", zap.Int("event_id", id), zap.Error(err))
		}
	}

	return event, nil
}

func (s *EventServiceImpl) ListEventsByOrganizerID(ctx context.Context, organizerID int) ([]*model.Event, error) {
	return s.eventRepo.ListByOrganizerID(ctx, organizerID)
}

func (s *EventServiceImpl) UpdateEvent(ctx context.Context, id int, params model.UpdateEventParams) (*model.Event, error) {
	event, err := s.eventRepo.Update(ctx, id, params)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)
	return event, nil
}

func (s *EventServiceImpl) DeleteEvent(ctx context.Context, id int) error {
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, id)
	return nil
}

func (s *EventServiceImpl) invalidate(ctx context.Context, eventID int) {
	if s.catalogCache == nil {
		return
	}
	if err := s.catalogCache.InvalidateEvent(ctx, eventID); err != nil {
		logger.WithComponent("catalog").Warn("cache invalidation failed", zap.Int("event_id", eventID), zap.Error(err))
	}
}
