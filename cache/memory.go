package cache

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/status-im/wallet-proxy/config"
)

// Service implements Cache on top of an in-memory go-cache instance
type Service struct {
	store *gocache.Cache
}

// NewService creates a cache service from configuration. A disabled cache
// still gets a short-lived store so callers don't need a special path.
func NewService(cfg config.CacheConfig) *Service {
	defaultExpiration := time.Duration(cfg.DefaultExpirationSeconds) * time.Second
	cleanupInterval := time.Duration(cfg.CleanupIntervalSeconds) * time.Second

	if !cfg.Enabled || defaultExpiration <= 0 {
		defaultExpiration = 1 * time.Minute
	}
	if cleanupInterval <= 0 {
		cleanupInterval = 2 * time.Minute
	}

	return &Service{
		store: gocache.New(defaultExpiration, cleanupInterval),
	}
}

// Start implements core.Interface
func (s *Service) Start(ctx context.Context) error {
	if s.store == nil {
		return fmt.Errorf("cache service not properly initialized")
	}
	return nil
}

// Stop implements core.Interface
func (s *Service) Stop() {
	if s.store != nil {
		s.store.Flush()
	}
}

// Get retrieves cached data for keys, returning found entries and missing keys
func (s *Service) Get(keys []string) (map[string][]byte, []string) {
	found := make(map[string][]byte)
	missing := make([]string, 0)

	for _, key := range keys {
		value, ok := s.store.Get(key)
		if !ok {
			missing = append(missing, key)
			continue
		}
		data, ok := value.([]byte)
		if !ok {
			missing = append(missing, key)
			continue
		}
		found[key] = data
	}

	return found, missing
}

// Set stores data with the specified ttl
func (s *Service) Set(data map[string][]byte, ttl time.Duration) {
	for key, value := range data {
		s.store.Set(key, value, ttl)
	}
}

// GetOrLoad retrieves data for keys, loading and caching the missing ones
func (s *Service) GetOrLoad(keys []string, loader LoaderFunc, ttl time.Duration) (map[string][]byte, error) {
	if len(keys) == 0 {
		return make(map[string][]byte), nil
	}

	result, missing := s.Get(keys)
	if len(missing) == 0 {
		return result, nil
	}

	loaded, err := loader(missing)
	if err != nil {
		return nil, fmt.Errorf("failed to load data: %w", err)
	}

	if len(loaded) > 0 {
		s.Set(loaded, ttl)
	}

	for key, value := range loaded {
		result[key] = value
	}

	return result, nil
}

// ItemCount returns the number of items currently cached
func (s *Service) ItemCount() int {
	return s.store.ItemCount()
}

// Delete removes items from cache by keys
func (s *Service) Delete(keys []string) {
	for _, key := range keys {
		s.store.Delete(key)
	}
}

// Clear removes all items from cache
func (s *Service) Clear() {
	s.store.Flush()
}
