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

func setupBookingTestRouter(mockService *mocks.BookingServiceMock) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler.NewBookingHandler(mockService).RegisterRoutes(router)
	return router
}

func TestCreateBooking(t *testing.T) {
	bookingRequest := model.CreateBookingRequest{
		UserID:   1,
		EventID:  2,
		TicketID: 3,
		Quantity: 2,
	}

	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewBookingServiceMock()
		router := setupBookingTestRouter(mockService)

		mockService.On("CreateBooking", mock.Anything, bookingRequest).Return(&model.Order{
			ID:          1,
			UserID:      1,
			EventID:     2,
			TotalAmount: decimal.RequireFromString("100.00"),
			Reference:   "TIX-abc",
			Status:      model.OrderStatusPending,
		}, nil).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/bookings", bookingRequest)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - ErrInsufficientStock", func(t *testing.T) {
		mockService := mocks.NewBookingServiceMock()
		router := setupBookingTestRouter(mockService)

		mockService.On("CreateBooking", mock.Anything, bookingRequest).Return(nil, apperrors.ErrInsufficientStock).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/bookings", bookingRequest)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - ErrEventNotFound", func(t *testing.T) {
		mockService := mocks.NewBookingServiceMock()
		router := setupBookingTestRouter(mockService)

		mockService.On("CreateBooking", mock.Anything, bookingRequest).Return(nil, apperrors.ErrEventNotFound).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/bookings", bookingRequest)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - BindingError", func(t *testing.T) {
		mockService := mocks.NewBookingServiceMock()
		router := setupBookingTestRouter(mockService)

		req := createJSONHTTPRequest("POST", "/api/v1/bookings", InvalidJSON)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "CreateBooking")
	})

	t.Run("Failed - zero quantity rejected by binding", func(t *testing.T) {
		mockService := mocks.NewBookingServiceMock()
		router := setupBookingTestRouter(mockService)

		req := createJSONHTTPRequest("POST", "/api/v1/bookings", map[string]interface{}{
			"user_id": 1, "event_id": 2, "ticket_id": 3, "quantity": 0,
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "CreateBooking")
	})
}

func TestGetOrder(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewBookingServiceMock()
		router := setupBookingTestRouter(mockService)

		mockService.On("GetOrderByID", mock.Anything, 7).Return(&model.Order{
			ID:     7,
			Status: model.OrderStatusPending,
		}, nil).Once()

		req := createJSONHTTPRequest("GET", "/api/v1/orders/7", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - ErrOrderNotFound", func(t *testing.T) {
		mockService := mocks.NewBookingServiceMock()
		router := setupBookingTestRouter(mockService)

		mockService.On("GetOrderByID", mock.Anything, 7).Return(nil, apperrors.ErrOrderNotFound).Once()

		req := createJSONHTTPRequest("GET", "/api/v1/orders/7", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockService.AssertExpectations(t)
	})

}

func TestListUserOrders(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewBookingServiceMock()
		router := setupBookingTestRouter(mockService)

		mockService.On("ListOrdersByUserID", mock.Anything, 1).Return([]*model.Order{
			{ID: 1, UserID: 1, Status: model.OrderStatusPaid},
			{ID: 2, UserID: 1, Status: model.OrderStatusPending},
		}, nil).Once()

		req := createJSONHTTPRequest("GET", "/api/v1/users/1/orders", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})
}
