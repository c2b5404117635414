package oneinch_gas

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync/atomic"

	"github.com/status-im/wallet-proxy/config"
	"github.com/status-im/wallet-proxy/metrics"
	"github.com/status-im/wallet-proxy/oneinch"
)

const (
	// Path template for the gas price API endpoint
	GAS_PRICE_API_PATH = "/gas-price/v1.4/%d"
)

// APIClient defines interface for upstream gas price operations
type APIClient interface {
	// FetchGasPrices fetches the current fee tiers for a chain
	FetchGasPrices(ctx context.Context, chainID int) (*GasPrices, error)
	// Healthy checks if at least one fetch has succeeded
	Healthy() bool
}

// Client implements APIClient against the aggregator gas price endpoint
type Client struct {
	config          *config.Config
	httpClient      *oneinch.Client
	successfulFetch atomic.Bool
}

// NewClient creates a new gas price API client
func NewClient(cfg *config.Config, metricsWriter *metrics.MetricsWriter) *Client {
	retryOpts := oneinch.DefaultRetryOptions()
	retryOpts.LogPrefix = "Gas"

	return &Client{
		config:     cfg,
		httpClient: oneinch.NewClient(retryOpts, metricsWriter, oneinch.SharedLimiter(cfg.RateLimit)),
	}
}

// Healthy checks if the API has had at least one successful fetch
func (c *Client) Healthy() bool {
	return c.successfulFetch.Load()
}

// FetchGasPrices fetches fee tiers for a chain and converts them to gwei
func (c *Client) FetchGasPrices(ctx context.Context, chainID int) (*GasPrices, error) {
	path := fmt.Sprintf(GAS_PRICE_API_PATH, chainID)
	request, err := oneinch.NewRequestBuilder(oneinch.BaseURL(c.config), path).
		WithBearerToken(c.config.Credentials.APIKey).
		Build()
	if err != nil {
		return nil, err
	}

	body, duration, err := c.httpClient.Execute(request.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	var upstream gasPricesUpstream
	if err := json.Unmarshal(body, &upstream); err != nil {
		log.Printf("Gas: Error parsing JSON response: %v", err)
		return nil, err
	}

	prices, err := transformGasPrices(chainID, upstream)
	if err != nil {
		return nil, err
	}

	log.Printf("Gas: Fetched fee tiers for chain %d in %.2fs", chainID, duration.Seconds())
	c.successfulFetch.Store(true)

	return prices, nil
}
