package oneinch_tokens

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

// Service provides token metadata with per-key caching
type Service struct {
	cache         cache.Cache
	config        *config.Config
	apiClient     APIClient
	metricsWriter *metrics.MetricsWriter
}

// NewService creates a new token metadata service
func NewService(cache cache.Cache, config *config.Config) *Service {
	metricsWriter := metrics.NewMetricsWriter(metrics.ServiceTokens)

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

func (s *Service) ttl() time.Duration {
	return time.Duration(s.config.Tokens.TTLSeconds) * time.Second
}

// getOrLoadJSON is the shared cached-fetch path. The loader fetches a
// fresh value when the key is missing and the result round-trips
// through JSON so the cache stores plain bytes.
func (s *Service) getOrLoadJSON(key string, fetch func() (interface{}, error), out interface{}) (interfaces.CacheStatus, error) {
	cacheStatus := interfaces.CacheStatusFull

	loader := func(missingKeys []string) (map[string][]byte, error) {
		cacheStatus = interfaces.CacheStatusMiss

		value, err := fetch()
		if err != nil {
			return nil, err
		}

		data, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		return map[string][]byte{key: data}, nil
	}

	cached, err := s.cache.GetOrLoad([]string{key}, loader, s.ttl())
	if err != nil {
		return cacheStatus, err
	}

	data, found := cached[key]
	if !found {
		return cacheStatus, fmt.Errorf("no data for key %s", key)
	}

	return cacheStatus, json.Unmarshal(data, out)
}

// TokenList returns the flattened whitelisted token list for a chain
func (s *Service) TokenList(ctx context.Context, chainID int) (*TokenListResponse, interfaces.CacheStatus, error) {
	var response TokenListResponse

	status, err := s.getOrLoadJSON(listCacheKey(chainID), func() (interface{}, error) {
		tokens, err := s.apiClient.FetchTokenList(ctx, chainID)
		if err != nil {
			return nil, err
		}

		flat := flattenTokenMap(chainID, tokens)
		return &TokenListResponse{
			ChainID: chainID,
			Count:   len(flat),
			Tokens:  flat,
		}, nil
	}, &response)
	if err != nil {
		return nil, status, fmt.Errorf("failed to get token list: %w", err)
	}

	return &response, status, nil
}

// Search returns tokens matching a name or symbol query
func (s *Service) Search(ctx context.Context, chainID int, query string, limit int) ([]Token, interfaces.CacheStatus, error) {
	if limit <= 0 {
		limit = s.config.Tokens.SearchLimit
	}

	var tokens []Token
	status, err := s.getOrLoadJSON(searchCacheKey(chainID, query, limit), func() (interface{}, error) {
		return s.apiClient.SearchTokens(ctx, chainID, query, limit)
	}, &tokens)
	if err != nil {
		return nil, status, fmt.Errorf("failed to search tokens: %w", err)
	}

	return tokens, status, nil
}

// CustomToken resolves metadata for a token contract outside the whitelist
func (s *Service) CustomToken(ctx context.Context, chainID int, address string) (*Token, interfaces.CacheStatus, error) {
	var token Token
	status, err := s.getOrLoadJSON(customCacheKey(chainID, address), func() (interface{}, error) {
		return s.apiClient.FetchCustomToken(ctx, chainID, address)
	}, &token)
	if err != nil {
		return nil, status, fmt.Errorf("failed to get custom token: %w", err)
	}

	return &token, status, nil
}

// Healthy checks if the service is operational
func (s *Service) Healthy() bool {
	return s.apiClient.Healthy()
}
