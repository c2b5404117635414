package oneinch_gas

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/status-im/wallet-proxy/cache"
	"github.com/status-im/wallet-proxy/config"
	"github.com/status-im/wallet-proxy/interfaces"
	"github.com/status-im/wallet-proxy/metrics"
	"github.com/status-im/wallet-proxy/scheduler"
)

// Service provides gas price tiers with caching and a periodic refresher
// that keeps the configured chains warm
type Service struct {
	cache         cache.Cache
	config        *config.Config
	apiClient     APIClient
	metricsWriter *metrics.MetricsWriter
	refresher     *scheduler.Scheduler
}

// NewService creates a new gas price service
func NewService(cache cache.Cache, config *config.Config) *Service {
	metricsWriter := metrics.NewMetricsWriter(metrics.ServiceGas)

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

	interval := time.Duration(s.config.Gas.RefreshIntervalMs) * time.Millisecond
	if len(s.config.Gas.Chains) > 0 && interval > 0 {
		s.refresher = scheduler.New(interval, s.refreshChains)
		s.refresher.Start(ctx, true)
	}

	return nil
}

// Stop implements core.Interface
func (s *Service) Stop() {
	if s.refresher != nil {
		s.refresher.Stop()
	}
}

// GasPrices returns the fee tiers for a chain, cached per chain
func (s *Service) GasPrices(ctx context.Context, chainID int) (*GasPrices, interfaces.CacheStatus, error) {
	cacheStatus := interfaces.CacheStatusFull
	key := cacheKey(chainID)

	loader := func(missingKeys []string) (map[string][]byte, error) {
		cacheStatus = interfaces.CacheStatusMiss

		prices, err := s.apiClient.FetchGasPrices(ctx, chainID)
		if err != nil {
			return nil, err
		}

		data, err := json.Marshal(prices)
		if err != nil {
			return nil, err
		}
		return map[string][]byte{key: data}, nil
	}

	ttl := time.Duration(s.config.Gas.TTLSeconds) * time.Second
	cached, err := s.cache.GetOrLoad([]string{key}, loader, ttl)
	if err != nil {
		return nil, cacheStatus, fmt.Errorf("failed to get gas prices: %w", err)
	}

	data, found := cached[key]
	if !found {
		return nil, cacheStatus, fmt.Errorf("no gas price data for chain %d", chainID)
	}

	var prices GasPrices
	if err := json.Unmarshal(data, &prices); err != nil {
		return nil, cacheStatus, fmt.Errorf("failed to unmarshal cached gas prices: %w", err)
	}

	return &prices, cacheStatus, nil
}

func (s *Service) refreshChains(ctx context.Context) {
	start := time.Now()
	for _, chainID := range s.config.Gas.Chains {
		if _, _, err := s.GasPrices(ctx, chainID); err != nil {
			log.Printf("Gas: refresh failed for chain %d: %v", chainID, err)
		}
	}
	s.metricsWriter.RecordFetchDuration(time.Since(start))
}

// Healthy checks if the service is operational
func (s *Service) Healthy() bool {
	return s.apiClient.Healthy()
}
