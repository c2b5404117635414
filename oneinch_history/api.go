package oneinch_history

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"sync/atomic"

	"github.com/status-im/wallet-proxy/config"
	"github.com/status-im/wallet-proxy/metrics"
	"github.com/status-im/wallet-proxy/oneinch"
)

const HISTORY_API_PATH = "/history/v2.0/history/%s/events"

// APIClient defines interface for upstream wallet history operations
type APIClient interface {
	// FetchHistory returns the recent transaction events for an address
	FetchHistory(ctx context.Context, params HistoryParams) ([]Transaction, error)
	// Healthy checks if at least one fetch has succeeded
	Healthy() bool
}

// Client implements APIClient against the aggregator history endpoint
type Client struct {
	config          *config.Config
	httpClient      *oneinch.Client
	successfulFetch atomic.Bool
}

// NewClient creates a new history API client
func NewClient(cfg *config.Config, metricsWriter *metrics.MetricsWriter) *Client {
	retryOpts := oneinch.DefaultRetryOptions()
	retryOpts.LogPrefix = "History"

	return &Client{
		config:     cfg,
		httpClient: oneinch.NewClient(retryOpts, metricsWriter, oneinch.SharedLimiter(cfg.RateLimit)),
	}
}

// Healthy checks if the API has had at least one successful fetch
func (c *Client) Healthy() bool {
	return c.successfulFetch.Load()
}

// FetchHistory returns the recent transaction events for an address
func (c *Client) FetchHistory(ctx context.Context, params HistoryParams) ([]Transaction, error) {
	rb := oneinch.NewRequestBuilder(oneinch.BaseURL(c.config), fmt.Sprintf(HISTORY_API_PATH, params.Address)).
		With("limit", strconv.Itoa(params.Limit))
	if params.ChainID > 0 {
		rb = rb.With("chainId", strconv.Itoa(params.ChainID))
	}

	request, err := rb.WithBearerToken(c.config.Credentials.APIKey).Build()
	if err != nil {
		return nil, err
	}

	body, _, err := c.httpClient.Execute(request.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	var upstream historyUpstreamResponse
	if err := json.Unmarshal(body, &upstream); err != nil {
		log.Printf("History: Error parsing JSON response: %v", err)
		return nil, err
	}

	c.successfulFetch.Store(true)
	return flattenHistory(upstream.Items), nil
}
