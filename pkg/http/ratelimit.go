// Package http provides a shared HTTP client that retries rate-limited
// requests a bounded number of times before giving up.
package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// ErrRateLimited marks a request that stayed rate limited through every
// allowed attempt. Callers match it with errors.Is to degrade the query
// instead of failing.
var ErrRateLimited = errors.New("rate limited")

// Doer is the part of http.Client the rate-limited wrapper needs.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

const (
	DefaultMaxAttempts = 3
	DefaultBaseBackoff = time.Millisecond * 500
)

// RateLimitedClient wraps a Doer and retries requests answered with 429.
// Retries are capped; a query that stays rate limited surfaces an error so
// callers can treat it as an empty result instead of stalling the run.
type RateLimitedClient struct {
	inner       Doer
	baseBackoff time.Duration
	maxAttempts int
}

type Option func(*RateLimitedClient)

func WithMaxAttempts(n int) Option {
	return func(c *RateLimitedClient) {
		c.maxAttempts = n
	}
}

func WithBaseBackoff(d time.Duration) Option {
	return func(c *RateLimitedClient) {
		c.baseBackoff = d
	}
}

func WithDoer(d Doer) Option {
	return func(c *RateLimitedClient) {
		c.inner = d
	}
}

func NewRateLimitedClient(opts ...Option) *RateLimitedClient {
	c := &RateLimitedClient{
		inner:       http.DefaultClient,
		maxAttempts: DefaultMaxAttempts,
		baseBackoff: DefaultBaseBackoff,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do issues the request, waiting out 429 responses up to the attempt cap.
// When the cap is exhausted no response is returned; the error wraps
// ErrRateLimited. The wait respects the request context.
func (c *RateLimitedClient) Do(req *http.Request) (*http.Response, error) {
	for attempt := 0; attempt < c.maxAttempts; attempt++ {
		resp, err := c.inner.Do(req)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}

		delay := c.retryDelay(resp, attempt)
		resp.Body.Close()

		timer := time.NewTimer(delay)
		select {
		case <-req.Context().Done():
			timer.Stop()
			return nil, req.Context().Err()
		case <-timer.C:
		}
	}

	return nil, fmt.Errorf("%w after %d attempts", ErrRateLimited, c.maxAttempts)
}

// retryDelay honors a numeric Retry-After header, otherwise backs off
// exponentially from the base delay.
func (c *RateLimitedClient) retryDelay(resp *http.Response, attempt int) time.Duration {
	if header := resp.Header.Get("Retry-After"); header != "" {
		if seconds, err := strconv.Atoi(header); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return time.Duration(1<<attempt) * c.baseBackoff
}
