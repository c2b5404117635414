package oneinch_nft

import (
	"context"
	"encoding/json"
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
	calls   int32
	assets  []json.RawMessage
	err     error
	healthy bool
}

func (f *fakeAPIClient) FetchNFTs(ctx context.Context, params NFTParams) (*NFTResponse, error) {
	atomic.AddInt32(&f.calls, 1)
	if f.err != nil {
		return nil, f.err
	}
	return buildNFTResponse(params, nftUpstreamResponse{Assets: f.assets}), nil
}

func (f *fakeAPIClient) Healthy() bool { return f.healthy }

func newTestService(apiClient APIClient) *Service {
	return &Service{
		cache: cache.NewService(config.CacheConfig{
			DefaultExpirationSeconds: 60,
			CleanupIntervalSeconds:   120,
			Enabled:                  true,
		}),
		config:        &config.Config{NFT: config.NFTFetcher{TTLSeconds: 30, DefaultLimit: 25}},
		apiClient:     apiClient,
		metricsWriter: metrics.NewMetricsWriter(metrics.ServiceNFT),
	}
}

const testAddress = "0x7E5F4552091A69125d5DfCb7b8C2659029395Bdf"

func TestNFTs_FetchesOnMiss(t *testing.T) {
	apiClient := &fakeAPIClient{
		assets: []json.RawMessage{
			json.RawMessage(`{"id":"1","name":"Punk"}`),
			json.RawMessage(`{"id":"2","name":"Ape"}`),
		},
	}
	s := newTestService(apiClient)

	response, status, err := s.NFTs(context.Background(), NFTParams{
		ChainIDs: []int{1, 137},
		Address:  testAddress,
		Limit:    10,
	})
	require.NoError(t, err)

	assert.Equal(t, interfaces.CacheStatusMiss, status)
	assert.Equal(t, 2, response.Count)
	assert.False(t, response.HasMore)
	assert.Equal(t, []int{1, 137}, response.ChainIDs)
	assert.JSONEq(t, `{"id":"1","name":"Punk"}`, string(response.Assets[0]))
}

func TestNFTs_DefaultLimitApplied(t *testing.T) {
	apiClient := &fakeAPIClient{}
	s := newTestService(apiClient)

	response, _, err := s.NFTs(context.Background(), NFTParams{
		ChainIDs: []int{1},
		Address:  testAddress,
	})
	require.NoError(t, err)
	assert.Equal(t, 25, response.Limit)
}

func TestNFTs_SecondCallHitsCache(t *testing.T) {
	apiClient := &fakeAPIClient{assets: []json.RawMessage{json.RawMessage(`{"id":"1"}`)}}
	s := newTestService(apiClient)

	params := NFTParams{ChainIDs: []int{1}, Address: testAddress, Limit: 10}

	_, _, err := s.NFTs(context.Background(), params)
	require.NoError(t, err)

	_, status, err := s.NFTs(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, interfaces.CacheStatusFull, status)
	assert.Equal(t, int32(1), atomic.LoadInt32(&apiClient.calls))
}

func TestNFTs_DistinctPagesCachedSeparately(t *testing.T) {
	apiClient := &fakeAPIClient{assets: []json.RawMessage{json.RawMessage(`{"id":"1"}`)}}
	s := newTestService(apiClient)

	_, _, err := s.NFTs(context.Background(), NFTParams{ChainIDs: []int{1}, Address: testAddress, Limit: 1, Offset: 0})
	require.NoError(t, err)
	_, status, err := s.NFTs(context.Background(), NFTParams{ChainIDs: []int{1}, Address: testAddress, Limit: 1, Offset: 1})
	require.NoError(t, err)

	assert.Equal(t, interfaces.CacheStatusMiss, status)
	assert.Equal(t, int32(2), atomic.LoadInt32(&apiClient.calls))
}

func TestNFTs_UpstreamErrorPropagates(t *testing.T) {
	apiClient := &fakeAPIClient{err: errors.New("status 503")}
	s := newTestService(apiClient)

	_, _, err := s.NFTs(context.Background(), NFTParams{ChainIDs: []int{1}, Address: testAddress, Limit: 10})
	assert.ErrorContains(t, err, "status 503")
}

func TestBuildNFTResponse_HasMore(t *testing.T) {
	assets := []json.RawMessage{json.RawMessage(`{}`), json.RawMessage(`{}`)}
	response := buildNFTResponse(NFTParams{Address: testAddress, Limit: 2}, nftUpstreamResponse{Assets: assets})
	assert.True(t, response.HasMore)

	response = buildNFTResponse(NFTParams{Address: testAddress, Limit: 3}, nftUpstreamResponse{Assets: assets})
	assert.False(t, response.HasMore)
}

func TestCacheKey(t *testing.T) {
	key := cacheKey(NFTParams{ChainIDs: []int{1, 137}, Address: testAddress, Limit: 25, Offset: 50})
	assert.Equal(t, "nft:1,137:0x7e5f4552091a69125d5dfcb7b8c2659029395bdf:25:50", key)
}
