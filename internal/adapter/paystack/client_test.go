package paystack

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/dreambox-backend/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Config{
		SecretKey:              "sk_test_123",
		BaseURL:                server.URL + "/",
		CallbackURL:            "https://dreambox.example/callback",
		Timeout:                time.Second,
		MaxConsecutiveFailures: 2,
		OpenTimeout:            time.Minute,
	}, nil)
	require.NoError(t, err)
	return client
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func TestNewClient_RequiresSecretKey(t *testing.T) {
	_, err := NewClient(Config{}, nil)
	assert.Error(t, err)
}

func TestVerify_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		httpStatus int
		body       string
		wantStatus domain.PaymentStatus
		wantAmount decimal.Decimal
	}{
		{
			name:       "Success converts kobo",
			httpStatus: http.StatusOK,
			body:       `{"status":true,"message":"Verification successful","data":{"status":"success","reference":"dbx_1","amount":1050075}}`,
			wantStatus: domain.PaymentStatusSuccess,
			wantAmount: decimal.RequireFromString("10500.75"),
		},
		{
			name:       "Abandoned is failed",
			httpStatus: http.StatusOK,
			body:       `{"status":true,"data":{"status":"abandoned","reference":"dbx_1","amount":100}}`,
			wantStatus: domain.PaymentStatusFailed,
			wantAmount: decimal.NewFromInt(1),
		},
		{
			name:       "Reversed is failed",
			httpStatus: http.StatusOK,
			body:       `{"status":true,"data":{"status":"reversed","reference":"dbx_1","amount":100}}`,
			wantStatus: domain.PaymentStatusFailed,
			wantAmount: decimal.NewFromInt(1),
		},
		{
			name:       "Ongoing is pending",
			httpStatus: http.StatusOK,
			body:       `{"status":true,"data":{"status":"ongoing","reference":"dbx_1","amount":0}}`,
			wantStatus: domain.PaymentStatusPending,
			wantAmount: decimal.Zero,
		},
		{
			name:       "Unknown reference is failed",
			httpStatus: http.StatusBadRequest,
			body:       `{"status":false,"message":"Transaction reference not found"}`,
			wantStatus: domain.PaymentStatusFailed,
			wantAmount: decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/transaction/verify/dbx_1", r.URL.Path)
				assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))
				writeJSON(w, tt.httpStatus, tt.body)
			})

			v, err := client.Verify(context.Background(), "dbx_1")

			require.NoError(t, err)
			assert.Equal(t, "dbx_1", v.Reference)
			assert.Equal(t, tt.wantStatus, v.Status)
			assert.True(t, tt.wantAmount.Equal(v.Amount), "got %s", v.Amount)
		})
	}
}

func TestVerify_ServerErrorIsUnavailable(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadGateway, `{"status":false}`)
	})

	_, err := client.Verify(context.Background(), "dbx_1")

	assert.ErrorIs(t, err, domain.ErrOracleUnavailable)
}

func TestVerify_ClientErrorClassification(t *testing.T) {
	tests := []struct {
		name        string
		httpStatus  int
		body        string
		unavailable bool
	}{
		{"Bad request is failed", http.StatusBadRequest, `{"status":false,"message":"Invalid reference"}`, false},
		{"Not found is failed", http.StatusNotFound, `{"status":false,"message":"Transaction reference not found"}`, false},
		{"Bad secret key is unavailable", http.StatusUnauthorized, `{"status":false,"message":"Invalid key"}`, true},
		{"Forbidden is unavailable", http.StatusForbidden, `{"status":false,"message":"IP not whitelisted"}`, true},
		{"Throttled is unavailable", http.StatusTooManyRequests, `{"status":false,"message":"Too many requests"}`, true},
		{"Other 4xx is unavailable", http.StatusConflict, `not json`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.httpStatus, tt.body)
			})

			v, err := client.Verify(context.Background(), "dbx_1")

			if tt.unavailable {
				assert.ErrorIs(t, err, domain.ErrOracleUnavailable)
				assert.Nil(t, v)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.PaymentStatusFailed, v.Status)
		})
	}
}

func TestVerify_UnauthorizedOpensBreaker(t *testing.T) {
	var hits atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		writeJSON(w, http.StatusUnauthorized, `{"status":false,"message":"Invalid key"}`)
	})

	for i := 0; i < 2; i++ {
		_, err := client.Verify(context.Background(), "dbx_1")
		assert.ErrorIs(t, err, domain.ErrOracleUnavailable)
	}

	_, err := client.Verify(context.Background(), "dbx_1")
	assert.ErrorIs(t, err, domain.ErrOracleUnavailable)
	assert.Contains(t, err.Error(), "circuit breaker")
	assert.Equal(t, int32(2), hits.Load())
}

func TestVerify_TimeoutIsUnavailable(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := client.Verify(ctx, "dbx_1")

	assert.ErrorIs(t, err, domain.ErrOracleUnavailable)
}

func TestVerify_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	var hits atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		writeJSON(w, http.StatusServiceUnavailable, `{}`)
	})

	for i := 0; i < 2; i++ {
		_, err := client.Verify(context.Background(), "dbx_1")
		assert.ErrorIs(t, err, domain.ErrOracleUnavailable)
	}

	// Open: rejected without reaching the server
	_, err := client.Verify(context.Background(), "dbx_1")
	assert.ErrorIs(t, err, domain.ErrOracleUnavailable)
	assert.Contains(t, err.Error(), "circuit breaker")
	assert.Equal(t, int32(2), hits.Load())
}

func TestVerify_DefinitiveAnswersKeepBreakerClosed(t *testing.T) {
	var hits atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		writeJSON(w, http.StatusNotFound, `{"status":false,"message":"not found"}`)
	})

	for i := 0; i < 5; i++ {
		v, err := client.Verify(context.Background(), "dbx_1")
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusFailed, v.Status)
	}
	assert.Equal(t, int32(5), hits.Load())
}

func TestInitiate(t *testing.T) {
	ownerID := uuid.New()
	goalID := uuid.New()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/transaction/initialize", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "ada@example.com", payload["email"])
		assert.Equal(t, float64(2550), payload["amount"])
		assert.Equal(t, "dbx_abc", payload["reference"])
		assert.Equal(t, "https://dreambox.example/callback", payload["callback_url"])

		metadata := payload["metadata"].(map[string]interface{})
		assert.Equal(t, "safelock", metadata["account_type"])
		assert.Equal(t, goalID.String(), metadata["goal_id"])
		assert.Equal(t, ownerID.String(), metadata["user_id"])

		writeJSON(w, http.StatusOK, `{"status":true,"message":"Authorization URL created","data":{"authorization_url":"https://checkout.paystack.com/xyz","access_code":"xyz","reference":"dbx_abc"}}`)
	})

	session, err := client.Initiate(context.Background(), domain.CheckoutRequest{
		Email:     "ada@example.com",
		Amount:    decimal.RequireFromString("25.50"),
		Reference: "dbx_abc",
		Metadata: domain.CheckoutMetadata{
			TargetKind: domain.AccountKindLockedGoal,
			GoalID:     &goalID,
			OwnerID:    ownerID,
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "https://checkout.paystack.com/xyz", session.CheckoutURL)
	assert.Equal(t, "dbx_abc", session.Reference)
}

func TestInitiate_Rejected(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, `{"status":false,"message":"Invalid email"}`)
	})

	_, err := client.Initiate(context.Background(), domain.CheckoutRequest{Email: "nope", Amount: decimal.NewFromInt(1), Reference: "dbx_x"})

	assert.ErrorIs(t, err, domain.ErrCheckoutRejected)
	assert.NotErrorIs(t, err, domain.ErrOracleUnavailable)
	assert.Contains(t, err.Error(), "Invalid email")
}

func TestInitiate_UnauthorizedIsUnavailable(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"status":false,"message":"Invalid key"}`)
	})

	_, err := client.Initiate(context.Background(), domain.CheckoutRequest{Email: "ada@example.com", Amount: decimal.NewFromInt(1), Reference: "dbx_x"})

	assert.ErrorIs(t, err, domain.ErrOracleUnavailable)
	assert.NotErrorIs(t, err, domain.ErrCheckoutRejected)
}

func TestKoboConversion(t *testing.T) {
	assert.Equal(t, int64(10000), toKobo(decimal.NewFromInt(100)))
	assert.Equal(t, int64(1), toKobo(decimal.RequireFromString("0.01")))
	assert.Equal(t, int64(3333), toKobo(decimal.RequireFromString("33.333")))
	assert.True(t, fromKobo(3333).Equal(decimal.RequireFromString("33.33")))
}
