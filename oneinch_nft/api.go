package oneinch_nft

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/status-im/wallet-proxy/config"
	"github.com/status-im/wallet-proxy/metrics"
	"github.com/status-im/wallet-proxy/oneinch"
)

const NFT_API_PATH = "/nft/v1/byaddress"

// APIClient defines interface for upstream NFT listing operations
type APIClient interface {
	// FetchNFTs lists NFT assets owned by an address across chains
	FetchNFTs(ctx context.Context, params NFTParams) (*NFTResponse, error)
	// Healthy checks if at least one fetch has succeeded
	Healthy() bool
}

// Client implements APIClient against the aggregator NFT endpoint
type Client struct {
	config          *config.Config
	httpClient      *oneinch.Client
	successfulFetch atomic.Bool
}

// NewClient creates a new NFT API client
func NewClient(cfg *config.Config, metricsWriter *metrics.MetricsWriter) *Client {
	retryOpts := oneinch.DefaultRetryOptions()
	retryOpts.LogPrefix = "NFT"

	return &Client{
		config:     cfg,
		httpClient: oneinch.NewClient(retryOpts, metricsWriter, oneinch.SharedLimiter(cfg.RateLimit)),
	}
}

// Healthy checks if the API has had at least one successful fetch
func (c *Client) Healthy() bool {
	return c.successfulFetch.Load()
}

// FetchNFTs lists NFT assets owned by an address across chains
func (c *Client) FetchNFTs(ctx context.Context, params NFTParams) (*NFTResponse, error) {
	chainIDs := make([]string, 0, len(params.ChainIDs))
	for _, chainID := range params.ChainIDs {
		chainIDs = append(chainIDs, strconv.Itoa(chainID))
	}

	rb := oneinch.NewRequestBuilder(oneinch.BaseURL(c.config), NFT_API_PATH).
		With("chainIds", strings.Join(chainIDs, ",")).
		With("address", params.Address).
		With("limit", strconv.Itoa(params.Limit)).
		With("offset", strconv.Itoa(params.Offset)).
		WithBearerToken(c.config.Credentials.APIKey)

	request, err := rb.Build()
	if err != nil {
		return nil, err
	}

	body, _, err := c.httpClient.Execute(request.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	var upstream nftUpstreamResponse
	if err := json.Unmarshal(body, &upstream); err != nil {
		log.Printf("NFT: Error parsing JSON response: %v", err)
		return nil, err
	}

	c.successfulFetch.Store(true)
	return buildNFTResponse(params, upstream), nil
}
