package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/config"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/logger"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := config.DefaultConfig().Backend
	cfg.BackendAddr = server.URL
	cfg.PriceAddr = server.URL + "/price"
	return NewClient(cfg, nil)
}

func TestClientLogin(t *testing.T) {
	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}
	defer logger.Sync()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/login" {
			t.Errorf("Unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Authorization") != "" {
			t.Errorf("Login must not carry a bearer header")
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("Expected JSON content type, got: '%s'", r.Header.Get("Content-Type"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token":"token-123"}`))
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	token, err := client.Login(ctx, models.Credentials{Email: "user@example.com", Password: "password1"})
	if err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	if token != "token-123" {
		t.Errorf("Expected token: 'token-123', got: '%s'", token)
	}
}

func TestClientWalletBalance(t *testing.T) {
	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}
	defer logger.Sync()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer token-123" {
			t.Errorf("Expected bearer header, got: '%s'", r.Header.Get("Authorization"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"balance":"1.25000000"}`))
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	wallet, err := client.WalletBalance(ctx, "token-123")
	if err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	if !wallet.Balance.Equal(decimal.RequireFromString("1.25")) {
		t.Errorf("Expected balance 1.25, got: '%s'", wallet.Balance.String())
	}
}

func TestClientErrorClassification(t *testing.T) {
	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}
	defer logger.Sync()

	testCases := []struct {
		TestName   string
		StatusCode int
		Body       string
		Check      func(err error) bool
	}{
		{
			TestName:   "401 clears the session #1",
			StatusCode: http.StatusUnauthorized,
			Body:       `{"error":"Invalid token"}`,
			Check:      IsUnauthorized,
		},
		{
			TestName:   "403 is treated like 401 #2",
			StatusCode: http.StatusForbidden,
			Body:       `{"error":"Admin access required"}`,
			Check:      IsUnauthorized,
		},
		{
			TestName:   "404 is an absent resource #3",
			StatusCode: http.StatusNotFound,
			Body:       `{"message":"Wallet not found"}`,
			Check:      IsNotFound,
		},
		{
			TestName:   "409 is a business conflict #4",
			StatusCode: http.StatusConflict,
			Body:       `{"error":"Wallet already exists"}`,
			Check:      IsConflict,
		},
		{
			TestName:   "400 with the funding rejection maps to the sentinel #5",
			StatusCode: http.StatusBadRequest,
			Body:       `{"error":"Lender does not have sufficient funds"}`,
			Check: func(err error) bool {
				return errors.Is(err, ErrInsufficientFunds)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.StatusCode)
				w.Write([]byte(tc.Body))
			})

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			err := client.CreateWallet(ctx, "token-123")
			if err == nil {
				t.Fatalf("Expected error, got nil")
			}
			if !tc.Check(err) {
				t.Errorf("Wrong classification for %d: '%v'", tc.StatusCode, err)
			}
		})
	}
}

func TestClientErrorMessage(t *testing.T) {
	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}
	defer logger.Sync()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":"Withdraw remaining funds first"}`))
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err := client.DeleteWallet(ctx, "token-123")
	if Message(err) != "Withdraw remaining funds first" {
		t.Errorf("Expected server message, got: '%s'", Message(err))
	}
}
