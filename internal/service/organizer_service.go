package service

import (
	"context"

	"go-event-ticketing/internal/model"
	"go-event-ticketing/internal/repository"

	"github.com/shopspring/decimal"
)

// DashboardStats is the organizer dashboard summary.
type DashboardStats struct {
	EventsCount      int             `json:"events_count"`
	TicketsSold      int             `json:"tickets_sold"`
	GrossRevenue     decimal.Decimal `json:"gross_revenue"`
	AvailableBalance decimal.Decimal `json:"available_balance"`
}

type OrganizerService interface {
	RegisterOrganizer(ctx context.Context, req model.CreateOrganizerRequest) (*model.Organizer, error)
	GetOrganizerByID(ctx context.Context, id int) (*model.Organizer, error)
	GetOrganizerByUserID(ctx context.Context, userID int) (*model.Organizer, error)
	UpdateOrganizer(ctx context.Context, id int, params model.UpdateOrganizerParams) (*model.Organizer, error)
	Dashboard(ctx context.Context, organizerID int) (*DashboardStats, error)
}

type OrganizerServiceImpl struct {
	organizerRepo repository.OrganizerRepository
	userRepo      repository.UserRepository
	eventRepo     repository.EventRepository
	ticketRepo    repository.TicketRepository
	orderRepo     repository.OrderRepository
	payoutService PayoutService
}

func NewOrganizerService(
	organizerRepo repository.OrganizerRepository,
	userRepo repository.UserRepository,
	eventRepo repository.EventRepository,
	ticketRepo repository.TicketRepository,
	orderRepo repository.OrderRepository,
	payoutService PayoutService,
) OrganizerService {
	return &OrganizerServiceImpl{
		organizerRepo: organizerRepo,
		userRepo:      userRepo,
		eventRepo:     eventRepo,
		ticketRepo:    ticketRepo,
		orderRepo:     orderRepo,
		payoutService: payoutService,
	}
}

func (s *OrganizerServiceImpl) RegisterOrganizer(ctx context.Context, req model.CreateOrganizerRequest) (*model.Organizer, error) {
	if _, err := s.userRepo.FindByID(ctx, req.UserID); err != nil {
		return nil, err
	}

	return s.organizerRepo.Create(ctx, &model.Organizer{
		UserID:           req.UserID,
		OrganizationName: req.OrganizationName,
		Email:            req.Email,
		Phone:            req.Phone,
		Bio:              req.Bio,
	})
}

func (s *OrganizerServiceImpl) GetOrganizerByID(ctx context.Context, id int) (*model.Organizer, error) {
	return s.organizerRepo.FindByID(ctx, id)
}

func (s *OrganizerServiceImpl) GetOrganizerByUserID(ctx context.Context, userID int) (*model.Organizer, error) {
	return s.organizerRepo.FindByUserID(ctx, userID)
}

func (s *OrganizerServiceImpl) UpdateOrganizer(ctx context.Context, id int, params model.UpdateOrganizerParams) (*model.Organizer, error) {
	return s.organizerRepo.Update(ctx, id, params)
}

func (s *OrganizerServiceImpl) Dashboard(ctx context.Context, organizerID int) (*DashboardStats, error) {
	if _, err := s.organizerRepo.FindByID(ctx, organizerID); err != nil {
		return nil, err
	}

	eventsCount, err := s.eventRepo.CountByOrganizerID(ctx, organizerID)
	if err != nil {
		return nil, err
	}

	ticketsSold, err := s.ticketRepo.SumSoldByOrganizerID(ctx, organizerID)
	if err != nil {
		return nil, err
	}

	revenue, err := s.orderRepo.SumPaidByOrganizerID(ctx, organizerID)
	if err != nil {
		return nil, err
	}

	balance, err := s.payoutService.AvailableBalance(ctx, organizerID)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		EventsCount:      eventsCount,
		TicketsSold:      ticketsSold,
		GrossRevenue:     revenue,
		AvailableBalance: balance,
	}, nil
}
