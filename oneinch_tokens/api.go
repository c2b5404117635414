package oneinch_tokens

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

const (
	// Path templates for the token API endpoints
	TOKEN_LIST_API_PATH   = "/token/v1.2/%d"
	TOKEN_SEARCH_API_PATH = "/token/v1.2/%d/search"
	TOKEN_CUSTOM_API_PATH = "/token/v1.2/%d/custom/%s"
)

// APIClient defines interface for upstream token metadata operations
type APIClient interface {
	// FetchTokenList fetches the whitelisted token map for a chain.
	// The upstream returns a map keyed by token address.
	FetchTokenList(ctx context.Context, chainID int) (map[string]Token, error)
	// SearchTokens searches tokens by name or symbol
	SearchTokens(ctx context.Context, chainID int, query string, limit int) ([]Token, error)
	// FetchCustomToken resolves metadata for an arbitrary token contract
	FetchCustomToken(ctx context.Context, chainID int, address string) (*Token, error)
	// Healthy checks if at least one fetch has succeeded
	Healthy() bool
}

// Client implements APIClient against the aggregator token endpoints
type Client struct {
	config          *config.Config
	httpClient      *oneinch.Client
	successfulFetch atomic.Bool
}

// NewClient creates a new token API client
func NewClient(cfg *config.Config, metricsWriter *metrics.MetricsWriter) *Client {
	retryOpts := oneinch.DefaultRetryOptions()
	retryOpts.LogPrefix = "Tokens"

	return &Client{
		config:     cfg,
		httpClient: oneinch.NewClient(retryOpts, metricsWriter, oneinch.SharedLimiter(cfg.RateLimit)),
	}
}

// Healthy checks if the API has had at least one successful fetch
func (c *Client) Healthy() bool {
	return c.successfulFetch.Load()
}

func (c *Client) execute(ctx context.Context, rb *oneinch.RequestBuilder, out interface{}) error {
	request, err := rb.WithBearerToken(c.config.Credentials.APIKey).Build()
	if err != nil {
		return err
	}

	body, _, err := c.httpClient.Execute(request.WithContext(ctx))
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		log.Printf("Tokens: Error parsing JSON response: %v", err)
		return err
	}

	c.successfulFetch.Store(true)
	return nil
}

// FetchTokenList fetches the whitelisted token map for a chain
func (c *Client) FetchTokenList(ctx context.Context, chainID int) (map[string]Token, error) {
	rb := oneinch.NewRequestBuilder(oneinch.BaseURL(c.config), fmt.Sprintf(TOKEN_LIST_API_PATH, chainID))

	var tokens map[string]Token
	if err := c.execute(ctx, rb, &tokens); err != nil {
		return nil, err
	}

	log.Printf("Tokens: Fetched %d tokens for chain %d", len(tokens), chainID)
	return tokens, nil
}

// SearchTokens searches tokens by name or symbol
func (c *Client) SearchTokens(ctx context.Context, chainID int, query string, limit int) ([]Token, error) {
	rb := oneinch.NewRequestBuilder(oneinch.BaseURL(c.config), fmt.Sprintf(TOKEN_SEARCH_API_PATH, chainID)).
		With("query", query).
		With("limit", strconv.Itoa(limit))

	var tokens []Token
	if err := c.execute(ctx, rb, &tokens); err != nil {
		return nil, err
	}

	return tokens, nil
}

// FetchCustomToken resolves metadata for an arbitrary token contract
func (c *Client) FetchCustomToken(ctx context.Context, chainID int, address string) (*Token, error) {
	rb := oneinch.NewRequestBuilder(oneinch.BaseURL(c.config), fmt.Sprintf(TOKEN_CUSTOM_API_PATH, chainID, address))

	var token Token
	if err := c.execute(ctx, rb, &token); err != nil {
		return nil, err
	}

	return &token, nil
}
