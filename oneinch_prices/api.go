package oneinch_prices

import (
	"context"
	"encoding/json"
	"log"
	"sync/atomic"

	"github.com/status-im/wallet-proxy/config"
	"github.com/status-im/wallet-proxy/metrics"
	"github.com/status-im/wallet-proxy/oneinch"
)

//go:generate mockgen -destination=mocks/api_client.go -package=mocks . APIClient

// APIClient defines interface for upstream price operations
type APIClient interface {
	// FetchPrices fetches spot prices for the given addresses.
	// Returns a map of address -> base-unit price string.
	FetchPrices(ctx context.Context, chainID int, addresses []string, currency string) (map[string]string, error)
	// Healthy checks if at least one fetch has succeeded
	Healthy() bool
}

// Client implements APIClient against the aggregator spot price endpoint
type Client struct {
	config          *config.Config
	httpClient      *oneinch.Client
	successfulFetch atomic.Bool
}

// NewClient creates a new spot price API client
func NewClient(cfg *config.Config, metricsWriter *metrics.MetricsWriter) *Client {
	retryOpts := oneinch.DefaultRetryOptions()
	retryOpts.LogPrefix = "Prices"

	return &Client{
		config:     cfg,
		httpClient: oneinch.NewClient(retryOpts, metricsWriter, oneinch.SharedLimiter(cfg.RateLimit)),
	}
}

// Healthy checks if the API has had at least one successful fetch
func (c *Client) Healthy() bool {
	return c.successfulFetch.Load()
}

// FetchPrices fetches spot prices for the given addresses
func (c *Client) FetchPrices(ctx context.Context, chainID int, addresses []string, currency string) (map[string]string, error) {
	request, err := NewPricesRequestBuilder(oneinch.BaseURL(c.config), chainID, addresses).
		WithCurrency(currency).
		WithBearerToken(c.config.Credentials.APIKey).
		Build()
	if err != nil {
		return nil, err
	}

	body, duration, err := c.httpClient.Execute(request.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	var prices map[string]string
	if err := json.Unmarshal(body, &prices); err != nil {
		log.Printf("Prices: Error parsing JSON response: %v", err)
		return nil, err
	}

	log.Printf("Prices: Fetched %d prices on chain %d in %.2fs", len(prices), chainID, duration.Seconds())
	c.successfulFetch.Store(true)

	return prices, nil
}
