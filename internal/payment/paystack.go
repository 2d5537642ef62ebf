package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go-event-ticketing/config"
	"go-event-ticketing/pkg/logger"
	apperrors "go-event-ticketing/pkg/app_errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const providerSuccessStatus = "success"

// PaystackClient talks to the Paystack REST API with bearer-token auth.
type PaystackClient struct {
	// baseURL is the API root, overridable for tests.
	baseURL string

	// secretKey authenticates every call.
	secretKey string

	// hc is the http client, with an explicit timeout so a hung
	// provider cannot pin a request handler forever.
	hc *http.Client
}

func NewPaystackClient(cfg *config.PaystackConfig) *PaystackClient {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &PaystackClient{
		baseURL:   cfg.BaseURL,
		secretKey: cfg.SecretKey,
		hc: &http.Client{
			Timeout: timeout,
		},
	}
}

type initializeRequest struct {
	Email       string `json:"email"`
	Amount      int64  `json:"amount"`
	Reference   string `json:"reference"`
	CallbackURL string `json:"callback_url"`
}

type initializeResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	} `json:"data"`
}

type verifyResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Status    string `json:"status"`
		Reference string `json:"reference"`
		Amount    int64  `json:"amount"`
	} `json:"data"`
}

func (c *PaystackClient) Initialize(ctx context.Context, email string, amount int64, reference, callbackURL string) (*InitializeResult, error) {
	body, err := json.Marshal(initializeRequest{
		Email:       email,
		Amount:      amount,
		Reference:   reference,
		CallbackURL: callbackURL,
	})
	if err != nil {
		return nil, fmt.Errorf("paystack initialize: marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/transaction/initialize", c.baseURL), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("paystack initialize: new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("paystack initialize: %w: %v", apperrors.ErrPaymentGateway, err)
	}
	defer resp.Body.Close()

	var parsed initializeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("paystack initialize: decode: %w", err)
	}

	if !parsed.Status {
		logger.WithComponent("paystack").Warn("initialize rejected",
			zap.String("reference", reference),
			zap.String("message", parsed.Message),
		)
		return nil, fmt.Errorf("%w: %s", apperrors.ErrPaymentInitFailed, parsed.Message)
	}

	return &InitializeResult{
		AuthorizationURL: parsed.Data.AuthorizationURL,
		AccessCode:       parsed.Data.AccessCode,
		Reference:        parsed.Data.Reference,
	}, nil
}

func (c *PaystackClient) Verify(ctx context.Context, reference string) (*VerifyResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/transaction/verify/%s", c.baseURL, url.PathEscape(reference)), nil)
	if err != nil {
		return nil, fmt.Errorf("paystack verify: new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.hc.Do(req)
	if err != nil {
		// transport failure is a gateway error, not a provider-reported
		// failed transaction
		return nil, fmt.Errorf("paystack verify: %w: %v", apperrors.ErrPaymentGateway, err)
	}
	defer resp.Body.Close()

	var parsed verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("paystack verify: decode: %w", err)
	}

	// amounts come back in minor units
	amount := decimal.NewFromInt(parsed.Data.Amount).Div(decimal.NewFromInt(100))

	return &VerifyResult{
		Succeeded: parsed.Status && parsed.Data.Status == providerSuccessStatus,
		Status:    parsed.Data.Status,
		Amount:    amount,
		Reference: parsed.Data.Reference,
	}, nil
}
