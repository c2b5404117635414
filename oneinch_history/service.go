package oneinch_history

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/status-im/wallet-proxy/cache"
	"github.com/status-im/wallet-proxy/config"
	"github.com/status-im/wallet-proxy/interfaces"
	"github.com/status-im/wallet-proxy/metrics"
)

// Service provides wallet transaction history with per-query caching
type Service struct {
	cache         cache.Cache
	config        *config.Config
	apiClient     APIClient
	metricsWriter *metrics.MetricsWriter
}

// NewService creates a new wallet history service
func NewService(cache cache.Cache, config *config.Config) *Service {
	metricsWriter := metrics.NewMetricsWriter(metrics.ServiceHistory)

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

// History returns the recent transactions for an address
func (s *Service) History(ctx context.Context, params HistoryParams) (*HistoryResponse, interfaces.CacheStatus, error) {
	if params.Limit <= 0 {
		params.Limit = s.config.History.DefaultLimit
	}

	cacheStatus := interfaces.CacheStatusFull
	key := cacheKey(params)

	loader := func(missingKeys []string) (map[string][]byte, error) {
		cacheStatus = interfaces.CacheStatusMiss

		transactions, err := s.apiClient.FetchHistory(ctx, params)
		if err != nil {
			return nil, err
		}

		response := &HistoryResponse{
			Address:      strings.ToLower(params.Address),
			ChainID:      params.ChainID,
			Count:        len(transactions),
			Transactions: transactions,
		}

		data, err := json.Marshal(response)
		if err != nil {
			return nil, err
		}
		return map[string][]byte{key: data}, nil
	}

	ttl := time.Duration(s.config.History.TTLSeconds) * time.Second
	cached, err := s.cache.GetOrLoad([]string{key}, loader, ttl)
	if err != nil {
		return nil, cacheStatus, fmt.Errorf("failed to get history: %w", err)
	}

	data, found := cached[key]
	if !found {
		return nil, cacheStatus, fmt.Errorf("no history data for %s", params.Address)
	}

	var response HistoryResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, cacheStatus, fmt.Errorf("failed to unmarshal cached history: %w", err)
	}

	return &response, cacheStatus, nil
}

// Healthy checks if the service is operational
func (s *Service) Healthy() bool {
	return s.apiClient.Healthy()
}
