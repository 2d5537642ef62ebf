package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-event-ticketing/internal/handler"
	"go-event-ticketing/internal/model"
	"go-event-ticketing/internal/service/mocks"
	apperrors "go-event-ticketing/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupPayoutTestRouter(mockService *mocks.PayoutServiceMock) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler.NewPayoutHandler(mockService).RegisterRoutes(router)
	return router
}

func TestRequestPayout(t *testing.T) {
	payoutRequest := model.RequestPayoutRequest{
		OrganizerID: 1,
		Amount:      decimal.RequireFromString("200.00"),
	}

	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewPayoutServiceMock()
		router := setupPayoutTestRouter(mockService)

		mockService.On("RequestPayout", mock.Anything, mock.Anything).Return(&model.Payout{
			ID:          1,
			OrganizerID: 1,
			Amount:      payoutRequest.Amount,
			Status:      model.PayoutStatusPending,
		}, nil).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/payouts", payoutRequest)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - ErrInsufficientFunds", func(t *testing.T) {
		mockService := mocks.NewPayoutServiceMock()
		router := setupPayoutTestRouter(mockService)

		mockService.On("RequestPayout", mock.Anything, mock.Anything).Return(nil, apperrors.ErrInsufficientFunds).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/payouts", payoutRequest)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		mockService.AssertExpectations(t)
	})
}

func TestPayoutTransitions(t *testing.T) {
	t.Run("Success - approve", func(t *testing.T) {
		mockService := mocks.NewPayoutServiceMock()
		router := setupPayoutTestRouter(mockService)

		mockService.On("ApprovePayout", mock.Anything, 3).Return(&model.Payout{
			ID:     3,
			Status: model.PayoutStatusApproved,
		}, nil).Once()

		req := createJSONHTTPRequest("PUT", "/api/v1/payouts/3/approve", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - mark paid before approval", func(t *testing.T) {
		mockService := mocks.NewPayoutServiceMock()
		router := setupPayoutTestRouter(mockService)

		mockService.On("MarkPayoutPaid", mock.Anything, 3).Return(nil, apperrors.ErrInvalidPayoutStatus).Once()

		req := createJSONHTTPRequest("PUT", "/api/v1/payouts/3/paid", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		mockService.AssertExpectations(t)
	})
}

func TestGetBalance(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewPayoutServiceMock()
		router := setupPayoutTestRouter(mockService)

		mockService.On("AvailableBalance", mock.Anything, 1).Return(decimal.RequireFromString("150.00"), nil).Once()

		req := createJSONHTTPRequest("GET", "/api/v1/organizers/1/balance", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "available_balance")
		mockService.AssertExpectations(t)
	})
}
