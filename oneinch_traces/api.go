package oneinch_traces

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/status-im/wallet-proxy/config"
	"github.com/status-im/wallet-proxy/metrics"
	"github.com/status-im/wallet-proxy/oneinch"
)

const (
	BLOCK_TRACE_API_PATH = "/traces/v1.0/chain/%d/block-trace/%s"
	TX_TRACE_API_PATH    = "/traces/v1.0/chain/%d/block-trace/%s/tx-hash/%s"
)

// APIClient defines interface for upstream trace operations. Traces are
// large and schema-heavy, so bodies pass through unparsed.
type APIClient interface {
	// FetchBlockTrace returns the full trace of a block
	FetchBlockTrace(ctx context.Context, chainID int, blockNumber string) ([]byte, error)
	// FetchTransactionTrace returns the trace of one transaction in a block
	FetchTransactionTrace(ctx context.Context, chainID int, blockNumber, txHash string) ([]byte, error)
	// Healthy checks if at least one fetch has succeeded
	Healthy() bool
}

// Client implements APIClient against the aggregator traces endpoints
type Client struct {
	config          *config.Config
	httpClient      *oneinch.Client
	successfulFetch atomic.Bool
}

// NewClient creates a new traces API client
func NewClient(cfg *config.Config, metricsWriter *metrics.MetricsWriter) *Client {
	retryOpts := oneinch.DefaultRetryOptions()
	retryOpts.LogPrefix = "Traces"

	return &Client{
		config:     cfg,
		httpClient: oneinch.NewClient(retryOpts, metricsWriter, oneinch.SharedLimiter(cfg.RateLimit)),
	}
}

// Healthy checks if the API has had at least one successful fetch
func (c *Client) Healthy() bool {
	return c.successfulFetch.Load()
}

func (c *Client) fetch(ctx context.Context, path string) ([]byte, error) {
	request, err := oneinch.NewRequestBuilder(oneinch.BaseURL(c.config), path).
		WithBearerToken(c.config.Credentials.APIKey).
		Build()
	if err != nil {
		return nil, err
	}

	body, _, err := c.httpClient.Execute(request.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	c.successfulFetch.Store(true)
	return body, nil
}

// FetchBlockTrace returns the full trace of a block
func (c *Client) FetchBlockTrace(ctx context.Context, chainID int, blockNumber string) ([]byte, error) {
	return c.fetch(ctx, fmt.Sprintf(BLOCK_TRACE_API_PATH, chainID, blockNumber))
}

// FetchTransactionTrace returns the trace of one transaction in a block
func (c *Client) FetchTransactionTrace(ctx context.Context, chainID int, blockNumber, txHash string) ([]byte, error) {
	return c.fetch(ctx, fmt.Sprintf(TX_TRACE_API_PATH, chainID, blockNumber, txHash))
}
