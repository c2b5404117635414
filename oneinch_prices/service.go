package oneinch_prices

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/status-im/wallet-proxy/cache"
	"github.com/status-im/wallet-proxy/config"
	"github.com/status-im/wallet-proxy/events"
	"github.com/status-im/wallet-proxy/interfaces"
	"github.com/status-im/wallet-proxy/metrics"
	"github.com/status-im/wallet-proxy/oneinch"
	"github.com/status-im/wallet-proxy/scheduler"
)

const (
	DEFAULT_CHUNK_SIZE    = 50
	DEFAULT_REQUEST_DELAY = 200 * time.Millisecond
)

// Service provides spot price fetching with caching and update notifications
type Service struct {
	cache               cache.Cache
	config              *config.Config
	apiClient           APIClient
	metricsWriter       *metrics.MetricsWriter
	subscriptionManager *events.SubscriptionManager
	refresher           *scheduler.Scheduler
}

// NewService creates a new price service with the given cache and config
func NewService(cache cache.Cache, config *config.Config) *Service {
	metricsWriter := metrics.NewMetricsWriter(metrics.ServicePrices)

	return &Service{
		cache:               cache,
		config:              config,
		apiClient:           NewClient(config, metricsWriter),
		metricsWriter:       metricsWriter,
		subscriptionManager: events.NewSubscriptionManager(),
	}
}

// Start implements core.Interface. When watch addresses are configured the
// service refreshes them periodically and notifies stream subscribers.
func (s *Service) Start(ctx context.Context) error {
	if s.cache == nil {
		return fmt.Errorf("cache dependency not provided")
	}

	interval := time.Duration(s.config.Prices.RefreshIntervalMs) * time.Millisecond
	if len(s.config.Prices.WatchAddresses) > 0 && interval > 0 {
		s.refresher = scheduler.New(interval, s.refreshWatched)
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

// SpotPrices fetches prices for the given parameters, serving cached entries
// where possible. The returned slice order matches params.Addresses.
func (s *Service) SpotPrices(ctx context.Context, params PriceParams) ([]PriceEntry, interfaces.CacheStatus, error) {
	cacheStatus := interfaces.CacheStatusFull
	if len(params.Addresses) == 0 {
		return []PriceEntry{}, cacheStatus, nil
	}

	cacheKeys := createCacheKeys(params)
	requested := len(params.Addresses)

	loader := func(missingKeys []string) (map[string][]byte, error) {
		if requested > len(missingKeys) {
			cacheStatus = interfaces.CacheStatusPartial
		} else {
			cacheStatus = interfaces.CacheStatusMiss
		}
		return s.loadMissingPrices(ctx, missingKeys, params)
	}

	ttl := time.Duration(s.config.Prices.TTLSeconds) * time.Second
	cachedData, err := s.cache.GetOrLoad(cacheKeys, loader, ttl)
	if err != nil {
		return nil, cacheStatus, fmt.Errorf("failed to get prices from cache: %w", err)
	}

	entries := make([]PriceEntry, 0, requested)
	for i, address := range params.Addresses {
		data, found := cachedData[cacheKeys[i]]
		if !found {
			continue
		}

		wei := string(data)
		price, err := oneinch.FormatUnits(wei, priceDecimals)
		if err != nil {
			return nil, cacheStatus, fmt.Errorf("malformed upstream price for %s: %w", address, err)
		}

		entries = append(entries, PriceEntry{
			Address: address,
			Price:   price,
			Wei:     wei,
		})
	}

	return entries, cacheStatus, nil
}

// loadMissingPrices fetches price data for missing cache keys in chunks
func (s *Service) loadMissingPrices(ctx context.Context, missingKeys []string, params PriceParams) (map[string][]byte, error) {
	missingAddresses := make([]string, 0, len(missingKeys))
	for _, key := range missingKeys {
		missingAddresses = append(missingAddresses, extractAddressFromKey(key))
	}

	chunkSize := s.config.Prices.ChunkSize
	if chunkSize <= 0 {
		chunkSize = DEFAULT_CHUNK_SIZE
	}
	delay := time.Duration(s.config.Prices.RequestDelayMs) * time.Millisecond
	if s.config.Prices.RequestDelayMs <= 0 {
		delay = DEFAULT_REQUEST_DELAY
	}

	prices, err := oneinch.ChunkMapFetcher(ctx, missingAddresses, chunkSize, delay,
		func(ctx context.Context, chunk []string) (map[string]string, error) {
			return s.apiClient.FetchPrices(ctx, params.ChainID, chunk, params.Currency)
		})
	if err != nil {
		log.Printf("Prices: failed to fetch missing prices: %v", err)
		return nil, err
	}

	result := make(map[string][]byte)
	for address, wei := range prices {
		key := createCacheKey(params.ChainID, params.Currency, address)
		result[key] = []byte(wei)
	}

	return result, nil
}

// WatchedPrices fetches prices for the configured watch addresses
func (s *Service) WatchedPrices(ctx context.Context) ([]PriceEntry, interfaces.CacheStatus, error) {
	params := PriceParams{
		ChainID:   1,
		Addresses: s.config.Prices.WatchAddresses,
		Currency:  s.config.Prices.Currency,
	}
	return s.SpotPrices(ctx, params)
}

func (s *Service) refreshWatched(ctx context.Context) {
	start := time.Now()
	if _, _, err := s.WatchedPrices(ctx); err != nil {
		log.Printf("Prices: watch refresh failed: %v", err)
		return
	}
	s.metricsWriter.RecordFetchDuration(time.Since(start))
	s.subscriptionManager.Emit(ctx)
}

// SubscribeOnUpdate subscribes to watch price update notifications
func (s *Service) SubscribeOnUpdate() *events.Subscription {
	return s.subscriptionManager.Subscribe()
}

// Healthy checks if the service is operational
func (s *Service) Healthy() bool {
	return s.apiClient.Healthy()
}
