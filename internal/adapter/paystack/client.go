// Package paystack talks to the Paystack transaction API. It opens checkouts
// for new deposits and answers verification queries for the reconciler.
package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/simaogato/dreambox-backend/internal/domain"
)

// DefaultBaseURL is the production API endpoint
const DefaultBaseURL = "https://api.paystack.co"

// Config holds the client credentials and limits
type Config struct {
	SecretKey   string
	BaseURL     string
	CallbackURL string
	Timeout     time.Duration // Per request

	// Circuit breaker
	MaxConsecutiveFailures uint32
	OpenTimeout            time.Duration // Time spent open before letting a probe through
}

// Client implements domain.PaymentVerifier and domain.CheckoutInitiator
type Client struct {
	cfg     Config
	http    *http.Client
	breaker *gobreaker.CircuitBreaker
	logger  *zap.Logger
}

var (
	_ domain.PaymentVerifier   = (*Client)(nil)
	_ domain.CheckoutInitiator = (*Client)(nil)
)

var (
	// errServer marks 5xx answers so the breaker counts them as failures
	errServer = errors.New("paystack server error")
	// errRefused marks 4xx answers that say nothing about the transaction
	// (bad credentials, throttling) and count against the breaker too
	errRefused = errors.New("paystack refused request")
)

// NewClient creates a new Client. The secret key is required.
func NewClient(cfg Config, logger *zap.Logger) (*Client, error) {
	if strings.TrimSpace(cfg.SecretKey) == "" {
		return nil, errors.New("paystack secret key not configured")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.MaxConsecutiveFailures == 0 {
		cfg.MaxConsecutiveFailures = 5
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = 30 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "paystack",
		Timeout: cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.MaxConsecutiveFailures
		},
		IsSuccessful: func(err error) bool {
			// A refused checkout is a healthy answer
			return err == nil || errors.Is(err, domain.ErrCheckoutRejected)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})
	return c, nil
}

// envelope is the common Paystack response shape
type envelope[T any] struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

type verifyData struct {
	Status    string `json:"status"`
	Reference string `json:"reference"`
	Amount    int64  `json:"amount"` // kobo
}

type initializeRequest struct {
	Email       string                  `json:"email"`
	Amount      int64                   `json:"amount"` // kobo
	Reference   string                  `json:"reference"`
	CallbackURL string                  `json:"callback_url,omitempty"`
	Metadata    domain.CheckoutMetadata `json:"metadata"`
}

type initializeData struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

// Verify asks Paystack for the status of reference.
// 400 and 404 are a definitive "not paid". Any other 4xx, 5xx, transport
// errors and an open breaker are reported as domain.ErrOracleUnavailable.
func (c *Client) Verify(ctx context.Context, reference string) (*domain.Verification, error) {
	result, err := c.execute(func() (interface{}, error) {
		var body envelope[verifyData]
		status, err := c.do(ctx, http.MethodGet, "/transaction/verify/"+url.PathEscape(reference), nil, &body)
		if err != nil {
			return nil, err
		}
		if status >= http.StatusBadRequest {
			if !isDefinitive(status) {
				return nil, fmt.Errorf("%w: verify returned %d: %s", errRefused, status, body.Message)
			}
			c.logger.Info("paystack rejected verification",
				zap.String("reference", reference),
				zap.Int("status", status),
				zap.String("message", body.Message),
			)
			return &domain.Verification{Reference: reference, Status: domain.PaymentStatusFailed}, nil
		}
		return &domain.Verification{
			Reference: reference,
			Status:    mapStatus(body.Data.Status),
			Amount:    fromKobo(body.Data.Amount),
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*domain.Verification), nil
}

// Initiate opens a Paystack checkout for the request
func (c *Client) Initiate(ctx context.Context, req domain.CheckoutRequest) (*domain.CheckoutSession, error) {
	payload := initializeRequest{
		Email:       req.Email,
		Amount:      toKobo(req.Amount),
		Reference:   req.Reference,
		CallbackURL: c.cfg.CallbackURL,
		Metadata:    req.Metadata,
	}

	result, err := c.execute(func() (interface{}, error) {
		var body envelope[initializeData]
		status, err := c.do(ctx, http.MethodPost, "/transaction/initialize", payload, &body)
		if err != nil {
			return nil, err
		}
		if status >= http.StatusBadRequest && !isDefinitive(status) {
			return nil, fmt.Errorf("%w: initialize returned %d: %s", errRefused, status, body.Message)
		}
		if status >= http.StatusBadRequest || !body.Status {
			return nil, fmt.Errorf("%w: %s", domain.ErrCheckoutRejected, body.Message)
		}
		return &domain.CheckoutSession{
			CheckoutURL: body.Data.AuthorizationURL,
			Reference:   body.Data.Reference,
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*domain.CheckoutSession), nil
}

// execute runs fn through the breaker and folds every failure into ErrOracleUnavailable
func (c *Client) execute(fn func() (interface{}, error)) (interface{}, error) {
	result, err := c.breaker.Execute(fn)
	if err == nil {
		return result, nil
	}
	if errors.Is(err, domain.ErrCheckoutRejected) {
		return nil, err
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: circuit breaker: %w", domain.ErrOracleUnavailable, err)
	}
	return nil, fmt.Errorf("%w: %w", domain.ErrOracleUnavailable, err)
}

// do sends one request and decodes the JSON answer into out.
// It returns the HTTP status for anything below 500.
func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) (int, error) {
	var reqBody io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return 0, fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, reqBody)
	if err != nil {
		return 0, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.SecretKey)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("paystack request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return resp.StatusCode, fmt.Errorf("%w: %s %s returned %d", errServer, method, path, resp.StatusCode)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(out); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			// Error bodies are informational only
			return resp.StatusCode, nil
		}
		return resp.StatusCode, fmt.Errorf("failed to decode paystack response: %w", err)
	}
	return resp.StatusCode, nil
}

// isDefinitive reports whether a 4xx answer is a judgement on the request
// itself rather than on the caller's credentials or rate.
func isDefinitive(status int) bool {
	return status == http.StatusBadRequest || status == http.StatusNotFound
}

func mapStatus(s string) domain.PaymentStatus {
	switch strings.ToLower(s) {
	case "success":
		return domain.PaymentStatusSuccess
	case "failed", "abandoned", "reversed":
		return domain.PaymentStatusFailed
	default:
		return domain.PaymentStatusPending
	}
}

func fromKobo(kobo int64) decimal.Decimal {
	return decimal.New(kobo, -2)
}

func toKobo(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}
