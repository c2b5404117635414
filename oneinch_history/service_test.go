package oneinch_history

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/status-im/wallet-proxy/cache"
	"github.com/status-im/wallet-proxy/config"
	"github.com/status-im/wallet-proxy/interfaces"
	"github.com/status-im/wallet-proxy/metrics"
)

type fakeAPIClient struct {
	calls        int32
	lastParams   HistoryParams
	transactions []Transaction
	err          error
	healthy      bool
}

func (f *fakeAPIClient) FetchHistory(ctx context.Context, params HistoryParams) ([]Transaction, error) {
	atomic.AddInt32(&f.calls, 1)
	f.lastParams = params
	return f.transactions, f.err
}

func (f *fakeAPIClient) Healthy() bool { return f.healthy }

func newTestService(apiClient APIClient) *Service {
	return &Service{
		cache: cache.NewService(config.CacheConfig{
			DefaultExpirationSeconds: 60,
			CleanupIntervalSeconds:   120,
			Enabled:                  true,
		}),
		config:        &config.Config{History: config.HistoryFetcher{TTLSeconds: 30, DefaultLimit: 100}},
		apiClient:     apiClient,
		metricsWriter: metrics.NewMetricsWriter(metrics.ServiceHistory),
	}
}

const testAddress = "0x7E5F4552091A69125d5DfCb7b8C2659029395Bdf"

func TestHistory_FetchesOnMiss(t *testing.T) {
	apiClient := &fakeAPIClient{
		transactions: []Transaction{
			{ID: "evt-1", Hash: "0xabc", ChainID: 1},
			{ID: "evt-2", Hash: "0xdef", ChainID: 1},
		},
	}
	s := newTestService(apiClient)

	response, status, err := s.History(context.Background(), HistoryParams{Address: testAddress, ChainID: 1, Limit: 50})
	require.NoError(t, err)

	assert.Equal(t, interfaces.CacheStatusMiss, status)
	assert.Equal(t, 2, response.Count)
	assert.Equal(t, "evt-1", response.Transactions[0].ID)
	assert.Equal(t, "0x7e5f4552091a69125d5dfcb7b8c2659029395bdf", response.Address)
}

func TestHistory_DefaultLimitApplied(t *testing.T) {
	apiClient := &fakeAPIClient{}
	s := newTestService(apiClient)

	_, _, err := s.History(context.Background(), HistoryParams{Address: testAddress})
	require.NoError(t, err)
	assert.Equal(t, 100, apiClient.lastParams.Limit)
}

func TestHistory_SecondCallHitsCache(t *testing.T) {
	apiClient := &fakeAPIClient{transactions: []Transaction{{ID: "evt-1"}}}
	s := newTestService(apiClient)

	params := HistoryParams{Address: testAddress, Limit: 50}

	_, _, err := s.History(context.Background(), params)
	require.NoError(t, err)

	_, status, err := s.History(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, interfaces.CacheStatusFull, status)
	assert.Equal(t, int32(1), atomic.LoadInt32(&apiClient.calls))
}

func TestHistory_UpstreamErrorPropagates(t *testing.T) {
	apiClient := &fakeAPIClient{err: errors.New("status 500")}
	s := newTestService(apiClient)

	_, _, err := s.History(context.Background(), HistoryParams{Address: testAddress, Limit: 50})
	assert.ErrorContains(t, err, "status 500")
}
