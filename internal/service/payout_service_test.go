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

func newPayoutService() service.PayoutService {
	db := getTestDB()
	return service.NewPayoutService(
		repository.NewPayoutRepository(db),
		repository.NewOrderRepository(db),
		repository.NewOrganizerRepository(db),
	)
}

// seedRevenue gives the organizer one paid order worth 500.00.
func seedRevenue(t *testing.T) (organizerID int) {
	t.Helper()

	buyerID := createTestUser(t, "buyer", "Ada", "Obi", "ada@example.com")
	ownerID := createTestUser(t, "owner", "Tunde", "Bello", "tunde@example.com")
	organizerID = createTestOrganizer(t, ownerID, "Lagos Events")
	eventID := createTestEvent(t, organizerID, "Tech Conference", model.EventStatusActive)
	createTestOrder(t, buyerID, eventID, "500.00", "TIX-rev-1", model.OrderStatusPaid)

	return organizerID
}

func TestPayoutService_RequestPayout(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		setupTestWithTruncate(t)
		payoutService := newPayoutService()
		organizerID := seedRevenue(t)

		payout, err := payoutService.RequestPayout(ctx, model.RequestPayoutRequest{
			OrganizerID: organizerID,
			Amount:      decimal.RequireFromString("200.00"),
		})

		require.NoError(t, err)
		assert.Equal(t, model.PayoutStatusPending, payout.Status)

		balance, err := payoutService.AvailableBalance(ctx, organizerID)
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("300.00").Equal(balance))
	})

	t.Run("Failed - ErrInsufficientFunds", func(t *testing.T) {
		setupTestWithTruncate(t)
		payoutService := newPayoutService()
		organizerID := seedRevenue(t)

		_, err := payoutService.RequestPayout(ctx, model.RequestPayoutRequest{
			OrganizerID: organizerID,
			Amount:      decimal.RequireFromString("500.01"),
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInsufficientFunds)
	})

	t.Run("Failed - non-positive amount", func(t *testing.T) {
		setupTestWithTruncate(t)
		payoutService := newPayoutService()
		organizerID := seedRevenue(t)

		_, err := payoutService.RequestPayout(ctx, model.RequestPayoutRequest{
			OrganizerID: organizerID,
			Amount:      decimal.Zero,
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Pending orders contribute nothing", func(t *testing.T) {
		setupTestWithTruncate(t)
		payoutService := newPayoutService()

		buyerID := createTestUser(t, "buyer", "Ada", "Obi", "ada@example.com")
		ownerID := createTestUser(t, "owner", "Tunde", "Bello", "tunde@example.com")
		organizerID := createTestOrganizer(t, ownerID, "Lagos Events")
		eventID := createTestEvent(t, organizerID, "Tech Conference", model.EventStatusActive)
		createTestOrder(t, buyerID, eventID, "500.00", "TIX-pend-1", model.OrderStatusPending)

		balance, err := payoutService.AvailableBalance(ctx, organizerID)
		require.NoError(t, err)
		assert.True(t, balance.IsZero())
	})
}

func TestPayoutService_Transitions(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - pending to approved to paid", func(t *testing.T) {
		setupTestWithTruncate(t)
		payoutService := newPayoutService()
		organizerID := seedRevenue(t)

		payout, err := payoutService.RequestPayout(ctx, model.RequestPayoutRequest{
			OrganizerID: organizerID,
			Amount:      decimal.RequireFromString("200.00"),
		})
		require.NoError(t, err)

		payout, err = payoutService.ApprovePayout(ctx, payout.ID)
		require.NoError(t, err)
		assert.Equal(t, model.PayoutStatusApproved, payout.Status)

		payout, err = payoutService.MarkPayoutPaid(ctx, payout.ID)
		require.NoError(t, err)
		assert.Equal(t, model.PayoutStatusPaid, payout.Status)
		assert.NotNil(t, payout.ProcessedAt)
	})

	t.Run("Failed - cannot skip approval", func(t *testing.T) {
		setupTestWithTruncate(t)
		payoutService := newPayoutService()
		organizerID := seedRevenue(t)

		payout, err := payoutService.RequestPayout(ctx, model.RequestPayoutRequest{
			OrganizerID: organizerID,
			Amount:      decimal.RequireFromString("200.00"),
		})
		require.NoError(t, err)

		_, err = payoutService.MarkPayoutPaid(ctx, payout.ID)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInvalidPayoutStatus)
	})

	t.Run("Rejected payout releases the reserved balance", func(t *testing.T) {
		setupTestWithTruncate(t)
		payoutService := newPayoutService()
		organizerID := seedRevenue(t)

		payout, err := payoutService.RequestPayout(ctx, model.RequestPayoutRequest{
			OrganizerID: organizerID,
			Amount:      decimal.RequireFromString("200.00"),
		})
		require.NoError(t, err)

		_, err = payoutService.RejectPayout(ctx, payout.ID)
		require.NoError(t, err)

		balance, err := payoutService.AvailableBalance(ctx, organizerID)
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("500.00").Equal(balance))
	})
}
