package oneinch_portfolio

import (
	"context"
	"encoding/json"
	"log"
	"sync/atomic"

	"github.com/status-im/wallet-proxy/config"
	"github.com/status-im/wallet-proxy/metrics"
	"github.com/status-im/wallet-proxy/oneinch"
)

const PORTFOLIO_API_PATH = "/portfolio/v4/overview/erc20/current_value"

// APIClient defines interface for upstream portfolio operations
type APIClient interface {
	// FetchCurrentValue returns the aggregated ERC20 value per address.
	// Addresses are passed as a single comma-joined query parameter.
	FetchCurrentValue(ctx context.Context, addresses []string) ([]PortfolioValue, error)
	// Healthy checks if at least one fetch has succeeded
	Healthy() bool
}

// Client implements APIClient against the aggregator portfolio endpoint
type Client struct {
	config          *config.Config
	httpClient      *oneinch.Client
	successfulFetch atomic.Bool
}

// NewClient creates a new portfolio API client
func NewClient(cfg *config.Config, metricsWriter *metrics.MetricsWriter) *Client {
	retryOpts := oneinch.DefaultRetryOptions()
	retryOpts.LogPrefix = "Portfolio"

	return &Client{
		config:     cfg,
		httpClient: oneinch.NewClient(retryOpts, metricsWriter, oneinch.SharedLimiter(cfg.RateLimit)),
	}
}

// Healthy checks if the API has had at least one successful fetch
func (c *Client) Healthy() bool {
	return c.successfulFetch.Load()
}

// FetchCurrentValue returns the aggregated ERC20 value per address
func (c *Client) FetchCurrentValue(ctx context.Context, addresses []string) ([]PortfolioValue, error) {
	rb := oneinch.NewRequestBuilder(oneinch.BaseURL(c.config), PORTFOLIO_API_PATH).
		With("addresses", joinAddresses(addresses)).
		WithBearerToken(c.config.Credentials.APIKey)

	request, err := rb.Build()
	if err != nil {
		return nil, err
	}

	body, _, err := c.httpClient.Execute(request.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	var upstream portfolioUpstreamResponse
	if err := json.Unmarshal(body, &upstream); err != nil {
		log.Printf("Portfolio: Error parsing JSON response: %v", err)
		return nil, err
	}

	c.successfulFetch.Store(true)
	return upstream.Result, nil
}
