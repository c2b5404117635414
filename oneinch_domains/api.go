package oneinch_domains

import (
	"context"
	"encoding/json"
	"log"
	"sync/atomic"

	"github.com/status-im/wallet-proxy/config"
	"github.com/status-im/wallet-proxy/metrics"
	"github.com/status-im/wallet-proxy/oneinch"
)

const (
	DOMAINS_LOOKUP_API_PATH  = "/domains/v2.0/lookup"
	DOMAINS_REVERSE_API_PATH = "/domains/v2.0/reverse-lookup"
)

// APIClient defines interface for upstream domain resolution operations
type APIClient interface {
	// Lookup resolves a domain name to addresses across naming protocols
	Lookup(ctx context.Context, name string) ([]DomainRecord, error)
	// ReverseLookup resolves an address back to its primary domain
	ReverseLookup(ctx context.Context, address string) (*ReverseRecord, error)
	// Healthy checks if at least one fetch has succeeded
	Healthy() bool
}

// Client implements APIClient against the aggregator domains endpoints
type Client struct {
	config          *config.Config
	httpClient      *oneinch.Client
	successfulFetch atomic.Bool
}

// NewClient creates a new domains API client
func NewClient(cfg *config.Config, metricsWriter *metrics.MetricsWriter) *Client {
	retryOpts := oneinch.DefaultRetryOptions()
	retryOpts.LogPrefix = "Domains"

	return &Client{
		config:     cfg,
		httpClient: oneinch.NewClient(retryOpts, metricsWriter, oneinch.SharedLimiter(cfg.RateLimit)),
	}
}

// Healthy checks if the API has had at least one successful fetch
func (c *Client) Healthy() bool {
	return c.successfulFetch.Load()
}

func (c *Client) fetch(ctx context.Context, path, paramKey, paramValue string, out interface{}) error {
	rb := oneinch.NewRequestBuilder(oneinch.BaseURL(c.config), path).
		With(paramKey, paramValue).
		WithBearerToken(c.config.Credentials.APIKey)

	request, err := rb.Build()
	if err != nil {
		return err
	}

	body, _, err := c.httpClient.Execute(request.WithContext(ctx))
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		log.Printf("Domains: Error parsing JSON response: %v", err)
		return err
	}

	c.successfulFetch.Store(true)
	return nil
}

// Lookup resolves a domain name to addresses across naming protocols
func (c *Client) Lookup(ctx context.Context, name string) ([]DomainRecord, error) {
	var upstream lookupUpstreamResponse
	if err := c.fetch(ctx, DOMAINS_LOOKUP_API_PATH, "name", name, &upstream); err != nil {
		return nil, err
	}
	return upstream.Result, nil
}

// ReverseLookup resolves an address back to its primary domain
func (c *Client) ReverseLookup(ctx context.Context, address string) (*ReverseRecord, error) {
	var upstream reverseUpstreamResponse
	if err := c.fetch(ctx, DOMAINS_REVERSE_API_PATH, "address", address, &upstream); err != nil {
		return nil, err
	}
	return &upstream.Result, nil
}
