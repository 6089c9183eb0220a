package gateway

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/sethvargo/go-retry"
	"github.com/sony/gobreaker"

	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/config"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/logger"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client - the single shared client for the lending backend. Replaces the
// per-view fetches of the old browser client with one abstraction that owns
// bearer attachment, error classification, retry and circuit breaking.
type Client struct {
	baseURL    string
	priceURL   string
	httpClient HTTPClient
	breaker    *gobreaker.CircuitBreaker
}

func InitCircuitBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "lending-backend",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("Circuit Breaker '%s': %s → %s", name, from, to)
		},
	})
}

func NewClient(cfg config.BackendConfig, httpClient HTTPClient) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.RequestTimeout}
	}
	return &Client{
		baseURL:    cfg.BackendAddr,
		priceURL:   cfg.PriceAddr,
		httpClient: httpClient,
		breaker:    InitCircuitBreaker(),
	}
}

const (
	retryAttempts = 3
	retryBase     = 250 * time.Millisecond
)

// get - issues an idempotent GET with retry on availability failures.
func (c *Client) get(ctx context.Context, path string, token string, out interface{}) error {
	backoff := retry.WithMaxRetries(retryAttempts, retry.NewExponential(retryBase))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := c.do(ctx, http.MethodGet, path, token, nil, out)
		if err != nil && IsUnavailable(err) {
			return retry.RetryableError(err)
		}
		return err
	})
}

// do - issues a single request and decodes a 2xx JSON body into out.
// Mutating calls use this directly: they must not be retried blindly.
func (c *Client) do(ctx context.Context, method string, path string, token string, body interface{}, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encode request body")
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	// Business errors (4xx) come back through the result value so only
	// availability failures feed the breaker.
	result, err := c.breaker.Execute(func() (interface{}, error) {
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, errors.Wrap(err, "backend unreachable")
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			respErr := HandleErrorResponse(resp)
			if IsKind(respErr, KindUnavailable) {
				return nil, respErr
			}
			return respErr, nil
		}
		if out == nil {
			return nil, nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return nil, errors.Wrap(err, "decode response body")
		}
		return nil, nil
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return &Error{Kind: KindUnavailable, Message: "backend temporarily unavailable"}
	}
	if err != nil {
		return err
	}
	if respErr, ok := result.(error); ok {
		return respErr
	}
	return nil
}
