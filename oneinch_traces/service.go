package oneinch_traces

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/status-im/wallet-proxy/cache"
	"github.com/status-im/wallet-proxy/config"
	"github.com/status-im/wallet-proxy/interfaces"
	"github.com/status-im/wallet-proxy/metrics"
)

// Service provides transaction traces as an opaque passthrough. Traces
// are immutable once the block is final, so cached entries never go
// stale within their TTL.
type Service struct {
	cache         cache.Cache
	config        *config.Config
	apiClient     APIClient
	metricsWriter *metrics.MetricsWriter
}

// NewService creates a new trace service
func NewService(cache cache.Cache, config *config.Config) *Service {
	metricsWriter := metrics.NewMetricsWriter(metrics.ServiceTraces)

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

func blockCacheKey(chainID int, blockNumber string) string {
	return fmt.Sprintf("traces:block:%d:%s", chainID, blockNumber)
}

func txCacheKey(chainID int, blockNumber, txHash string) string {
	return fmt.Sprintf("traces:tx:%d:%s:%s", chainID, blockNumber, strings.ToLower(txHash))
}

func (s *Service) getOrLoad(key string, fetch func() ([]byte, error)) ([]byte, interfaces.CacheStatus, error) {
	cacheStatus := interfaces.CacheStatusFull

	loader := func(missingKeys []string) (map[string][]byte, error) {
		cacheStatus = interfaces.CacheStatusMiss

		body, err := fetch()
		if err != nil {
			return nil, err
		}
		return map[string][]byte{key: body}, nil
	}

	ttl := time.Duration(s.config.Traces.TTLSeconds) * time.Second
	cached, err := s.cache.GetOrLoad([]string{key}, loader, ttl)
	if err != nil {
		return nil, cacheStatus, err
	}

	data, found := cached[key]
	if !found {
		return nil, cacheStatus, fmt.Errorf("no trace data for key %s", key)
	}

	return data, cacheStatus, nil
}

// BlockTrace returns the raw trace of a block
func (s *Service) BlockTrace(ctx context.Context, chainID int, blockNumber string) ([]byte, interfaces.CacheStatus, error) {
	data, status, err := s.getOrLoad(blockCacheKey(chainID, blockNumber), func() ([]byte, error) {
		return s.apiClient.FetchBlockTrace(ctx, chainID, blockNumber)
	})
	if err != nil {
		return nil, status, fmt.Errorf("failed to get block trace: %w", err)
	}
	return data, status, nil
}

// TransactionTrace returns the raw trace of one transaction
func (s *Service) TransactionTrace(ctx context.Context, chainID int, blockNumber, txHash string) ([]byte, interfaces.CacheStatus, error) {
	data, status, err := s.getOrLoad(txCacheKey(chainID, blockNumber, txHash), func() ([]byte, error) {
		return s.apiClient.FetchTransactionTrace(ctx, chainID, blockNumber, txHash)
	})
	if err != nil {
		return nil, status, fmt.Errorf("failed to get transaction trace: %w", err)
	}
	return data, status, nil
}

// Healthy checks if the service is operational
func (s *Service) Healthy() bool {
	return s.apiClient.Healthy()
}
