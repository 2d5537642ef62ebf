package service

import (
	"context"

	"go-event-ticketing/internal/model"
	"go-event-ticketing/internal/repository"
)

type AttendeeService interface {
	// ListMyTickets is the "my tickets" view: every admission record the
	// user has been issued.
	ListMyTickets(ctx context.Context, userID int) ([]*model.Attendee, error)
	ListEventAttendees(ctx context.Context, eventID int) ([]*model.Attendee, error)
}

type AttendeeServiceImpl struct {
	attendeeRepo repository.AttendeeRepository
	eventRepo    repository.EventRepository
}

func NewAttendeeService(attendeeRepo repository.AttendeeRepository, eventRepo repository.EventRepository) AttendeeService {
	return &AttendeeServiceImpl{
		attendeeRepo: attendeeRepo,
		eventRepo:    eventRepo,
	}
}

func (s *AttendeeServiceImpl) ListMyTickets(ctx context.Context, userID int) ([]*model.Attendee, error) {
	return s.attendeeRepo.ListByUserID(ctx, userID)
}

func (s *AttendeeServiceImpl) ListEventAttendees(ctx context.Context, eventID int) ([]*model.Attendee, error) {
	if _, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		return nil, err
	}
	return s.attendeeRepo.ListByEventID(ctx, eventID)
}
