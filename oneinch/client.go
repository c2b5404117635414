package oneinch

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// StatusHandler receives the outcome of each upstream request attempt
type StatusHandler interface {
	// OnRequest handles a request with its status result
	OnRequest(status string)
	// OnRetry handles retry events
	OnRetry()
}

// RetryOptions configures retry behavior for upstream requests
type RetryOptions struct {
	MaxRetries        int
	BaseBackoff       time.Duration
	LogPrefix         string
	ConnectionTimeout time.Duration // Timeout for establishing connection
	RequestTimeout    time.Duration // Total request timeout including reading response
}

// DefaultRetryOptions returns default retry options
func DefaultRetryOptions() RetryOptions {
	return RetryOptions{
		MaxRetries:        3,
		BaseBackoff:       1000 * time.Millisecond,
		LogPrefix:         "Aggregator",
		ConnectionTimeout: 10 * time.Second,
		RequestTimeout:    30 * time.Second,
	}
}

// Client executes upstream requests with rate limiting and retries.
// Only idempotent GET requests pass through here, so attempts can reuse the
// same request object.
type Client struct {
	httpClient    *http.Client
	opts          RetryOptions
	statusHandler StatusHandler
	limiter       *rate.Limiter
}

// NewClient creates a new upstream client
func NewClient(opts RetryOptions, handler StatusHandler, limiter *rate.Limiter) *Client {
	httpClient := &http.Client{
		Timeout: opts.RequestTimeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: opts.ConnectionTimeout,
			}).DialContext,
		},
	}

	return &Client{
		httpClient:    httpClient,
		opts:          opts,
		statusHandler: handler,
		limiter:       limiter,
	}
}

// Execute performs the request, retrying on retryable statuses with
// exponential backoff and jitter. 401 fails immediately with
// ErrUnauthorized; a 429 that survives all attempts yields ErrRateLimited.
func (c *Client) Execute(req *http.Request) ([]byte, time.Duration, error) {
	var lastErr error

	for attempt := 0; attempt < c.opts.MaxRetries; attempt++ {
		if attempt > 0 {
			log.Printf("%s: Retry %d/%d after error: %v",
				c.opts.LogPrefix, attempt, c.opts.MaxRetries-1, lastErr)

			if c.statusHandler != nil {
				c.statusHandler.OnRetry()
			}

			backoff := calculateBackoffWithJitter(c.opts.BaseBackoff, attempt)
			select {
			case <-req.Context().Done():
				return nil, 0, req.Context().Err()
			case <-time.After(backoff):
			}
		}

		if c.limiter != nil {
			if err := c.limiter.Wait(req.Context()); err != nil {
				c.recordStatus("error")
				return nil, 0, fmt.Errorf("rate limiter wait failed: %w", err)
			}
		}

		requestStart := time.Now()
		resp, err := c.httpClient.Do(req)
		requestDuration := time.Since(requestStart)

		if err != nil {
			lastErr = fmt.Errorf("request failed after %.2fs: %v", requestDuration.Seconds(), err)
			c.recordStatus("error")
			continue
		}

		body, err := c.processResponse(resp)
		if err != nil {
			if errors.Is(err, ErrUnauthorized) {
				c.recordStatus("unauthorized")
				return nil, requestDuration, err
			}
			if isRetryableStatus(resp.StatusCode) {
				lastErr = err
				c.recordStatus("rate_limited")
				continue
			}
			c.recordStatus("error")
			return nil, requestDuration, err
		}

		c.recordStatus("success")
		return body, requestDuration, nil
	}

	if errors.Is(lastErr, ErrRateLimited) {
		return nil, 0, fmt.Errorf("all %d attempts failed: %w", c.opts.MaxRetries, ErrRateLimited)
	}
	return nil, 0, fmt.Errorf("all %d attempts failed, last error: %v", c.opts.MaxRetries, lastErr)
}

func (c *Client) recordStatus(status string) {
	if c.statusHandler != nil {
		c.statusHandler.OnRequest(status)
	}
}

// processResponse reads and classifies the HTTP response
func (c *Client) processResponse(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("error reading response: %v", err)
		}
		return body, nil
	}

	body, _ := io.ReadAll(resp.Body)

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, fmt.Errorf("%w (status %d)", ErrUnauthorized, resp.StatusCode)
	case http.StatusTooManyRequests:
		retryAfter := resp.Header.Get("Retry-After")
		return nil, fmt.Errorf("%w (status %d), retry after %q", ErrRateLimited, resp.StatusCode, retryAfter)
	}

	return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
}

// calculateBackoffWithJitter calculates backoff duration with jitter for retries
func calculateBackoffWithJitter(baseBackoff time.Duration, attempt int) time.Duration {
	if attempt <= 0 {
		return baseBackoff
	}

	multiplier := uint(1) << uint(attempt-1)
	backoff := time.Duration(float64(baseBackoff) * float64(multiplier))
	jitter := time.Duration(rand.Int63n(int64(backoff / 2)))
	return backoff + jitter
}

// isRetryableStatus determines if a status code should trigger a retry
func isRetryableStatus(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests ||
		statusCode == http.StatusInternalServerError ||
		statusCode == http.StatusBadGateway ||
		statusCode == http.StatusServiceUnavailable ||
		statusCode == http.StatusGatewayTimeout
}
