package oneinch_nft

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/status-im/wallet-proxy/cache"
	"github.com/status-im/wallet-proxy/config"
	"github.com/status-im/wallet-proxy/interfaces"
	"github.com/status-im/wallet-proxy/metrics"
)

// Service provides NFT listings with per-page caching
type Service struct {
	cache         cache.Cache
	config        *config.Config
	apiClient     APIClient
	metricsWriter *metrics.MetricsWriter
}

// NewService creates a new NFT listing service
func NewService(cache cache.Cache, config *config.Config) *Service {
	metricsWriter := metrics.NewMetricsWriter(metrics.ServiceNFT)

	return &Service{
		cache:         cache,
		config:        config,
		apiClient:     NewClient(config, metricsWriter),
		metricsWriter: metricsWriter,
	}
}

// Start implements core.Interface
func (s *Service) Start(ctx context.Context) error {
	if s.cache == nil {
		return fmt.Errorf("cache dependency not provided")
	}
	return nil
}

// Stop implements core.Interface
func (s *Service) Stop() {}

// NFTs returns a page of NFT assets owned by an address
func (s *Service) NFTs(ctx context.Context, params NFTParams) (*NFTResponse, interfaces.CacheStatus, error) {
	if params.Limit <= 0 {
		params.Limit = s.config.NFT.DefaultLimit
	}

	cacheStatus := interfaces.CacheStatusFull
	key := cacheKey(params)

	loader := func(missingKeys []string) (map[string][]byte, error) {
		cacheStatus = interfaces.CacheStatusMiss

		response, err := s.apiClient.FetchNFTs(ctx, params)
		if err != nil {
			return nil, err
		}

		data, err := json.Marshal(response)
		if err != nil {
			return nil, err
		}
		return map[string][]byte{key: data}, nil
	}

	ttl := time.Duration(s.config.NFT.TTLSeconds) * time.Second
	cached, err := s.cache.GetOrLoad([]string{key}, loader, ttl)
	if err != nil {
		return nil, cacheStatus, fmt.Errorf("failed to get NFTs: %w", err)
	}

	data, found := cached[key]
	if !found {
		return nil, cacheStatus, fmt.Errorf("no NFT data for %s", params.Address)
	}

	var response NFTResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, cacheStatus, fmt.Errorf("failed to unmarshal cached NFTs: %w", err)
	}

	return &response, cacheStatus, nil
}

// Healthy checks if the service is operational
func (s *Service) Healthy() bool {
	return s.apiClient.Healthy()
}
