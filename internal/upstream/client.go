package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

const httpTimeout = 10 * time.Second

// Client is the shared HTTP transport for all provider adapters. One
// circuit breaker per provider: repeated failures open the breaker and
// short-circuit straight to the fallback path without burning the
// request budget on a dead upstream.
type Client struct {
	http    *http.Client
	breaker *gobreaker.CircuitBreaker
}

// NewClient constructs a Client for the named provider with a
// 10-second per-call budget.
func NewClient(provider string) *Client {
	return &Client{
		http: &http.Client{Timeout: httpTimeout},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    provider,
			Timeout: 30 * time.Second,
			ReadyToTrip: func(c gobreaker.Counts) bool {
				return c.ConsecutiveFailures >= 5
			},
		}),
	}
}

// GetJSON performs a GET request and decodes the JSON response into
// dst. Non-2xx responses become *StatusError; undecodable 2xx bodies
// become *DecodeError.
func (c *Client) GetJSON(ctx context.Context, rawURL string, dst any) error {
	_, err := c.breaker.Execute(func() (any, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return nil, fmt.Errorf("creating request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, &StatusError{Status: resp.StatusCode}
		}

		if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
			return nil, &DecodeError{Err: err}
		}
		return nil, nil
	})
	return err
}
