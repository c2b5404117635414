package oneinch_domains

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

// Service provides domain resolution with per-query caching
type Service struct {
	cache         cache.Cache
	config        *config.Config
	apiClient     APIClient
	metricsWriter *metrics.MetricsWriter
}

// NewService creates a new domain resolution service
func NewService(cache cache.Cache, config *config.Config) *Service {
	metricsWriter := metrics.NewMetricsWriter(metrics.ServiceDomains)

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

func lookupCacheKey(name string) string {
	return fmt.Sprintf("domains:lookup:%s", strings.ToLower(name))
}

func reverseCacheKey(address string) string {
	return fmt.Sprintf("domains:reverse:%s", strings.ToLower(address))
}

func (s *Service) getOrLoad(key string, fetch func() (interface{}, error), out interface{}) (interfaces.CacheStatus, error) {
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

	ttl := time.Duration(s.config.Domains.TTLSeconds) * time.Second
	cached, err := s.cache.GetOrLoad([]string{key}, loader, ttl)
	if err != nil {
		return cacheStatus, err
	}

	data, found := cached[key]
	if !found {
		return cacheStatus, fmt.Errorf("no data for key %s", key)
	}

	return cacheStatus, json.Unmarshal(data, out)
}

// Lookup resolves a domain name to addresses
func (s *Service) Lookup(ctx context.Context, name string) (*LookupResponse, interfaces.CacheStatus, error) {
	var response LookupResponse

	status, err := s.getOrLoad(lookupCacheKey(name), func() (interface{}, error) {
		records, err := s.apiClient.Lookup(ctx, name)
		if err != nil {
			return nil, err
		}
		if records == nil {
			records = []DomainRecord{}
		}
		return &LookupResponse{Name: name, Records: records}, nil
	}, &response)
	if err != nil {
		return nil, status, fmt.Errorf("failed to lookup domain: %w", err)
	}

	return &response, status, nil
}

// ReverseLookup resolves an address back to its primary domain
func (s *Service) ReverseLookup(ctx context.Context, address string) (*ReverseResponse, interfaces.CacheStatus, error) {
	var response ReverseResponse

	status, err := s.getOrLoad(reverseCacheKey(address), func() (interface{}, error) {
		record, err := s.apiClient.ReverseLookup(ctx, address)
		if err != nil {
			return nil, err
		}
		return &ReverseResponse{Address: strings.ToLower(address), Record: record}, nil
	}, &response)
	if err != nil {
		return nil, status, fmt.Errorf("failed to reverse lookup address: %w", err)
	}

	return &response, status, nil
}

// Healthy checks if the service is operational
func (s *Service) Healthy() bool {
	return s.apiClient.Healthy()
}
