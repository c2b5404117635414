package oneinch_portfolio

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

// Service provides portfolio overviews with per-address-set caching
type Service struct {
	cache         cache.Cache
	config        *config.Config
	apiClient     APIClient
	metricsWriter *metrics.MetricsWriter
}

// NewService creates a new portfolio service
func NewService(cache cache.Cache, config *config.Config) *Service {
	metricsWriter := metrics.NewMetricsWriter(metrics.ServicePortfolio)

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

// CurrentValue returns the aggregated ERC20 value for a set of addresses
func (s *Service) CurrentValue(ctx context.Context, addresses []string) (*PortfolioResponse, interfaces.CacheStatus, error) {
	cacheStatus := interfaces.CacheStatusFull
	key := cacheKey(addresses)

	loader := func(missingKeys []string) (map[string][]byte, error) {
		cacheStatus = interfaces.CacheStatusMiss

		values, err := s.apiClient.FetchCurrentValue(ctx, addresses)
		if err != nil {
			return nil, err
		}

		data, err := json.Marshal(buildPortfolioResponse(addresses, values))
		if err != nil {
			return nil, err
		}
		return map[string][]byte{key: data}, nil
	}

	ttl := time.Duration(s.config.Portfolio.TTLSeconds) * time.Second
	cached, err := s.cache.GetOrLoad([]string{key}, loader, ttl)
	if err != nil {
		return nil, cacheStatus, fmt.Errorf("failed to get portfolio: %w", err)
	}

	data, found := cached[key]
	if !found {
		return nil, cacheStatus, fmt.Errorf("no portfolio data for %s", joinAddresses(addresses))
	}

	var response PortfolioResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, cacheStatus, fmt.Errorf("failed to unmarshal cached portfolio: %w", err)
	}

	return &response, cacheStatus, nil
}

// Healthy checks if the service is operational
func (s *Service) Healthy() bool {
	return s.apiClient.Healthy()
}
