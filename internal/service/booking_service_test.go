package service_test

import (
	"context"
	"testing"

	"go-event-ticketing/internal/model"
	"go-event-ticketing/internal/repository"
	"go-event-ticketing/internal/service"
	apperrors "go-event-ticketing/pkg/app_errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBookingService() service.BookingService {
	db := getTestDB()
	return service.NewBookingService(
		db,
		repository.NewOrderRepository(db),
		repository.NewTicketRepository(db),
		repository.NewEventRepository(db),
	)
}

func TestBookingService_CreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		setupTestWithTruncate(t)
		bookingService := newBookingService()

		buyerID := createTestUser(t, "buyer", "Ada", "Obi", "ada@example.com")
		ownerID := createTestUser(t, "owner", "Tunde", "Bello", "tunde@example.com")
		organizerID := createTestOrganizer(t, ownerID, "Lagos Events")
		eventID := createTestEvent(t, organizerID, "Tech Conference", model.EventStatusActive)
		ticketID := createTestTicket(t, eventID, "VIP", "50.00", 10)

		order, err := bookingService.CreateBooking(ctx, model.CreateBookingRequest{
			UserID:   buyerID,
			EventID:  eventID,
			TicketID: ticketID,
			Quantity: 3,
		})

		require.NoError(t, err)
		assert.Equal(t, model.OrderStatusPending, order.Status)
		assert.True(t, decimal.RequireFromString("150.00").Equal(order.TotalAmount))
		assert.NotEmpty(t, order.Reference)
		require.Len(t, order.Items, 1)
		assert.Equal(t, 3, order.Items[0].Quantity)

		// booking holds nothing; inventory moves only at reconciliation
		available, sold := getTicketQuantities(t, ticketID)
		assert.Equal(t, 10, available)
		assert.Equal(t, 0, sold)
	})

	t.Run("Success - re-selection replaces the pending order", func(t *testing.T) {
		setupTestWithTruncate(t)
		bookingService := newBookingService()

		buyerID := createTestUser(t, "buyer", "Ada", "Obi", "ada@example.com")
		ownerID := createTestUser(t, "owner", "Tunde", "Bello", "tunde@example.com")
		organizerID := createTestOrganizer(t, ownerID, "Lagos Events")
		eventID := createTestEvent(t, organizerID, "Tech Conference", model.EventStatusActive)
		vipID := createTestTicket(t, eventID, "VIP", "50.00", 10)
		regularID := createTestTicket(t, eventID, "Regular", "20.00", 100)

		first, err := bookingService.CreateBooking(ctx, model.CreateBookingRequest{
			UserID: buyerID, EventID: eventID, TicketID: vipID, Quantity: 3,
		})
		require.NoError(t, err)

		second, err := bookingService.CreateBooking(ctx, model.CreateBookingRequest{
			UserID: buyerID, EventID: eventID, TicketID: regularID, Quantity: 2,
		})
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.True(t, decimal.RequireFromString("40.00").Equal(second.TotalAmount))
		require.Len(t, second.Items, 1)
		assert.Equal(t, regularID, second.Items[0].TicketID)

		// the old items are gone, not accumulated
		fetched, err := bookingService.GetOrderByID(ctx, second.ID)
		require.NoError(t, err)
		require.Len(t, fetched.Items, 1)
		assert.Equal(t, 2, fetched.Items[0].Quantity)
	})

	t.Run("Failed - ErrInsufficientStock", func(t *testing.T) {
		setupTestWithTruncate(t)
		bookingService := newBookingService()

		buyerID := createTestUser(t, "buyer", "Ada", "Obi", "ada@example.com")
		ownerID := createTestUser(t, "owner", "Tunde", "Bello", "tunde@example.com")
		organizerID := createTestOrganizer(t, ownerID, "Lagos Events")
		eventID := createTestEvent(t, organizerID, "Tech Conference", model.EventStatusActive)
		ticketID := createTestTicket(t, eventID, "VIP", "50.00", 10)

		_, err := bookingService.CreateBooking(ctx, model.CreateBookingRequest{
			UserID: buyerID, EventID: eventID, TicketID: ticketID, Quantity: 11,
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInsufficientStock)
	})

	t.Run("Failed - ErrInvalidQuantity", func(t *testing.T) {
		setupTestWithTruncate(t)
		bookingService := newBookingService()

		_, err := bookingService.CreateBooking(ctx, model.CreateBookingRequest{
			UserID: 1, EventID: 1, TicketID: 1, Quantity: 0,
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInvalidQuantity)
	})

	t.Run("Failed - event not active", func(t *testing.T) {
		setupTestWithTruncate(t)
		bookingService := newBookingService()

		buyerID := createTestUser(t, "buyer", "Ada", "Obi", "ada@example.com")
		ownerID := createTestUser(t, "owner", "Tunde", "Bello", "tunde@example.com")
		organizerID := createTestOrganizer(t, ownerID, "Lagos Events")
		eventID := createTestEvent(t, organizerID, "Cancelled Show", model.EventStatusCancelled)
		ticketID := createTestTicket(t, eventID, "VIP", "50.00", 10)

		_, err := bookingService.CreateBooking(ctx, model.CreateBookingRequest{
			UserID: buyerID, EventID: eventID, TicketID: ticketID, Quantity: 1,
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Failed - ticket belongs to another event", func(t *testing.T) {
		setupTestWithTruncate(t)
		bookingService := newBookingService()

		buyerID := createTestUser(t, "buyer", "Ada", "Obi", "ada@example.com")
		ownerID := createTestUser(t, "owner", "Tunde", "Bello", "tunde@example.com")
		organizerID := createTestOrganizer(t, ownerID, "Lagos Events")
		eventID := createTestEvent(t, organizerID, "Tech Conference", model.EventStatusActive)
		otherEventID := createTestEvent(t, organizerID, "Music Night", model.EventStatusActive)
		ticketID := createTestTicket(t, otherEventID, "VIP", "50.00", 10)

		_, err := bookingService.CreateBooking(ctx, model.CreateBookingRequest{
			UserID: buyerID, EventID: eventID, TicketID: ticketID, Quantity: 1,
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}
