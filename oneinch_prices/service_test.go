package oneinch_prices

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/status-im/wallet-proxy/cache"
	"github.com/status-im/wallet-proxy/config"
	"github.com/status-im/wallet-proxy/events"
	"github.com/status-im/wallet-proxy/interfaces"
	"github.com/status-im/wallet-proxy/metrics"
	"github.com/status-im/wallet-proxy/oneinch_prices/mocks"
)

const (
	addrWETH = "0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2"
	addrDAI  = "0x6b175474e89094c44da98b954eedeac495271d0f"
)

func newTestService(t *testing.T, apiClient APIClient) *Service {
	cfg := &config.Config{
		Prices: config.PricesFetcher{
			TTLSeconds: 30,
			ChunkSize:  2,
			Currency:   "usd",
		},
	}

	return &Service{
		cache: cache.NewService(config.CacheConfig{
			DefaultExpirationSeconds: 60,
			CleanupIntervalSeconds:   120,
			Enabled:                  true,
		}),
		config:              cfg,
		apiClient:           apiClient,
		metricsWriter:       metrics.NewMetricsWriter(metrics.ServicePrices),
		subscriptionManager: events.NewSubscriptionManager(),
	}
}

func TestSpotPrices_FetchesAndConverts(t *testing.T) {
	ctrl := gomock.NewController(t)
	apiClient := mocks.NewMockAPIClient(ctrl)
	s := newTestService(t, apiClient)

	apiClient.EXPECT().
		FetchPrices(gomock.Any(), 1, []string{addrWETH, addrDAI}, "usd").
		Return(map[string]string{
			addrWETH: "1500000000000000000",
			addrDAI:  "1000000000000000000",
		}, nil)

	entries, status, err := s.SpotPrices(context.Background(), PriceParams{
		ChainID:   1,
		Addresses: []string{addrWETH, addrDAI},
		Currency:  "usd",
	})

	require.NoError(t, err)
	assert.Equal(t, interfaces.CacheStatusMiss, status)
	require.Len(t, entries, 2)

	// Result order matches request order
	assert.Equal(t, addrWETH, entries[0].Address)
	assert.Equal(t, "1.5", entries[0].Price)
	assert.Equal(t, "1500000000000000000", entries[0].Wei)
	assert.Equal(t, addrDAI, entries[1].Address)
	assert.Equal(t, "1", entries[1].Price)
}

func TestSpotPrices_ServesFromCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	apiClient := mocks.NewMockAPIClient(ctrl)
	s := newTestService(t, apiClient)

	params := PriceParams{ChainID: 1, Addresses: []string{addrWETH}, Currency: "usd"}

	// Only one upstream call for two identical requests
	apiClient.EXPECT().
		FetchPrices(gomock.Any(), 1, []string{addrWETH}, "usd").
		Return(map[string]string{addrWETH: "2000000000000000000"}, nil).
		Times(1)

	_, status, err := s.SpotPrices(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, interfaces.CacheStatusMiss, status)

	entries, status, err := s.SpotPrices(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, interfaces.CacheStatusFull, status)
	require.Len(t, entries, 1)
	assert.Equal(t, "2", entries[0].Price)
}

func TestSpotPrices_PartialCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	apiClient := mocks.NewMockAPIClient(ctrl)
	s := newTestService(t, apiClient)

	apiClient.EXPECT().
		FetchPrices(gomock.Any(), 1, []string{addrWETH}, "usd").
		Return(map[string]string{addrWETH: "1000000000000000000"}, nil)
	apiClient.EXPECT().
		FetchPrices(gomock.Any(), 1, []string{addrDAI}, "usd").
		Return(map[string]string{addrDAI: "3000000000000000000"}, nil)

	_, _, err := s.SpotPrices(context.Background(), PriceParams{
		ChainID: 1, Addresses: []string{addrWETH}, Currency: "usd",
	})
	require.NoError(t, err)

	entries, status, err := s.SpotPrices(context.Background(), PriceParams{
		ChainID: 1, Addresses: []string{addrWETH, addrDAI}, Currency: "usd",
	})
	require.NoError(t, err)
	assert.Equal(t, interfaces.CacheStatusPartial, status)
	require.Len(t, entries, 2)
	assert.Equal(t, "3", entries[1].Price)
}

func TestSpotPrices_UpstreamErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	apiClient := mocks.NewMockAPIClient(ctrl)
	s := newTestService(t, apiClient)

	apiClient.EXPECT().
		FetchPrices(gomock.Any(), 1, gomock.Any(), "usd").
		Return(nil, errors.New("status 500"))

	_, _, err := s.SpotPrices(context.Background(), PriceParams{
		ChainID: 1, Addresses: []string{addrWETH}, Currency: "usd",
	})
	assert.ErrorContains(t, err, "status 500")
}

func TestSpotPrices_EmptyAddresses(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := newTestService(t, mocks.NewMockAPIClient(ctrl))

	entries, status, err := s.SpotPrices(context.Background(), PriceParams{ChainID: 1})
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Equal(t, interfaces.CacheStatusFull, status)
}

func TestSpotPrices_ChunksLargeRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	apiClient := mocks.NewMockAPIClient(ctrl)
	s := newTestService(t, apiClient)
	s.config.Prices.RequestDelayMs = 1

	third := "0x3333333333333333333333333333333333333333"

	// Chunk size 2 splits three addresses into two upstream calls
	apiClient.EXPECT().
		FetchPrices(gomock.Any(), 1, []string{addrWETH, addrDAI}, "usd").
		Return(map[string]string{
			addrWETH: "1000000000000000000",
			addrDAI:  "1000000000000000000",
		}, nil)
	apiClient.EXPECT().
		FetchPrices(gomock.Any(), 1, []string{third}, "usd").
		Return(map[string]string{third: "1000000000000000000"}, nil)

	entries, _, err := s.SpotPrices(context.Background(), PriceParams{
		ChainID: 1, Addresses: []string{addrWETH, addrDAI, third}, Currency: "usd",
	})
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}
