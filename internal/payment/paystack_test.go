package payment_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-event-ticketing/config"
	"go-event-ticketing/internal/payment"
	apperrors "go-event-ticketing/pkg/app_errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *payment.PaystackClient {
	return payment.NewPaystackClient(&config.PaystackConfig{
		BaseURL:   baseURL,
		SecretKey: "sk_test_xxx",
		Timeout:   2 * time.Second,
	})
}

func TestPaystackClient_Initialize(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var gotAuth string
		var gotBody map[string]interface{}

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/transaction/initialize", r.URL.Path)
			gotAuth = r.Header.Get("Authorization")
			_ = json.NewDecoder(r.Body).Decode(&gotBody)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"status": true,
				"message": "Authorization URL created",
				"data": {
					"authorization_url": "https://checkout.example.com/abc123",
					"access_code": "abc123",
					"reference": "TIX-ref-1"
				}
			}`))
		}))
		defer srv.Close()

		client := newTestClient(srv.URL)
		result, err := client.Initialize(context.Background(), "buyer@example.com", 15000, "TIX-ref-1", "http://localhost/callback")

		require.NoError(t, err)
		assert.Equal(t, "https://checkout.example.com/abc123", result.AuthorizationURL)
		assert.Equal(t, "TIX-ref-1", result.Reference)
		assert.Equal(t, "Bearer sk_test_xxx", gotAuth)
		assert.Equal(t, "buyer@example.com", gotBody["email"])
		assert.Equal(t, float64(15000), gotBody["amount"])
		assert.Equal(t, "TIX-ref-1", gotBody["reference"])
		assert.Equal(t, "http://localhost/callback", gotBody["callback_url"])
	})

	t.Run("Failed - provider rejects", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"status": false, "message": "Invalid key"}`))
		}))
		defer srv.Close()

		client := newTestClient(srv.URL)
		_, err := client.Initialize(context.Background(), "buyer@example.com", 15000, "TIX-ref-1", "http://localhost/callback")

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrPaymentInitFailed)
	})

	t.Run("Failed - transport error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // connection refused from here on

		client := newTestClient(srv.URL)
		_, err := client.Initialize(context.Background(), "buyer@example.com", 15000, "TIX-ref-1", "http://localhost/callback")

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrPaymentGateway)
	})
}

func TestPaystackClient_Verify(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/transaction/verify/TIX-ref-1", r.URL.Path)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"status": true,
				"message": "Verification successful",
				"data": {"status": "success", "reference": "TIX-ref-1", "amount": 15000}
			}`))
		}))
		defer srv.Close()

		client := newTestClient(srv.URL)
		result, err := client.Verify(context.Background(), "TIX-ref-1")

		require.NoError(t, err)
		assert.True(t, result.Succeeded)
		assert.Equal(t, "success", result.Status)
		assert.Equal(t, "TIX-ref-1", result.Reference)
		assert.True(t, decimal.NewFromInt(150).Equal(result.Amount))
	})

	t.Run("Declined - not a transport error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"status": true,
				"message": "Verification successful",
				"data": {"status": "failed", "reference": "TIX-ref-1", "amount": 15000}
			}`))
		}))
		defer srv.Close()

		client := newTestClient(srv.URL)
		result, err := client.Verify(context.Background(), "TIX-ref-1")

		require.NoError(t, err)
		assert.False(t, result.Succeeded)
		assert.Equal(t, "failed", result.Status)
	})

	t.Run("Failed - transport error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		client := newTestClient(srv.URL)
		_, err := client.Verify(context.Background(), "TIX-ref-1")

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrPaymentGateway)
	})
}
