package oneinch_tokens

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
	listCalls   int32
	searchCalls int32
	customCalls int32
	tokens      map[string]Token
	searchHits  []Token
	custom      *Token
	err         error
	healthy     bool
}

func (f *fakeAPIClient) FetchTokenList(ctx context.Context, chainID int) (map[string]Token, error) {
	atomic.AddInt32(&f.listCalls, 1)
	return f.tokens, f.err
}

func (f *fakeAPIClient) SearchTokens(ctx context.Context, chainID int, query string, limit int) ([]Token, error) {
	atomic.AddInt32(&f.searchCalls, 1)
	if f.err != nil {
		return nil, f.err
	}
	if limit < len(f.searchHits) {
		return f.searchHits[:limit], nil
	}
	return f.searchHits, nil
}

func (f *fakeAPIClient) FetchCustomToken(ctx context.Context, chainID int, address string) (*Token, error) {
	atomic.AddInt32(&f.customCalls, 1)
	return f.custom, f.err
}

func (f *fakeAPIClient) Healthy() bool { return f.healthy }

func newTestService(apiClient APIClient) *Service {
	return &Service{
		cache: cache.NewService(config.CacheConfig{
			DefaultExpirationSeconds: 60,
			CleanupIntervalSeconds:   120,
			Enabled:                  true,
		}),
		config: &config.Config{
			Tokens: config.TokensFetcher{TTLSeconds: 300, SearchLimit: 10},
		},
		apiClient:     apiClient,
		metricsWriter: metrics.NewMetricsWriter(metrics.ServiceTokens),
	}
}

func TestTokenList_FlattensAndSorts(t *testing.T) {
	apiClient := &fakeAPIClient{
		tokens: map[string]Token{
			"0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2": {Symbol: "WETH", Decimals: 18},
			"0x6B175474E89094C44Da98b954EedeAC495271d0F": {Symbol: "DAI", Decimals: 18},
		},
	}
	s := newTestService(apiClient)

	response, status, err := s.TokenList(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, interfaces.CacheStatusMiss, status)
	assert.Equal(t, 1, response.ChainID)
	assert.Equal(t, 2, response.Count)
	assert.Equal(t, "DAI", response.Tokens[0].Symbol)
	assert.Equal(t, "WETH", response.Tokens[1].Symbol)
}

func TestTokenList_SecondCallHitsCache(t *testing.T) {
	apiClient := &fakeAPIClient{
		tokens: map[string]Token{
			"0x6B175474E89094C44Da98b954EedeAC495271d0F": {Symbol: "DAI", Decimals: 18},
		},
	}
	s := newTestService(apiClient)

	_, _, err := s.TokenList(context.Background(), 1)
	require.NoError(t, err)

	response, status, err := s.TokenList(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, interfaces.CacheStatusFull, status)
	assert.Equal(t, 1, response.Count)
	assert.Equal(t, int32(1), atomic.LoadInt32(&apiClient.listCalls))
}

func TestSearch_DefaultsLimitFromConfig(t *testing.T) {
	apiClient := &fakeAPIClient{
		searchHits: []Token{{Symbol: "USDC"}, {Symbol: "USDC.e"}},
	}
	s := newTestService(apiClient)

	tokens, status, err := s.Search(context.Background(), 1, "usdc", 0)
	require.NoError(t, err)

	assert.Equal(t, interfaces.CacheStatusMiss, status)
	assert.Len(t, tokens, 2)
}

func TestSearch_CachedPerQuery(t *testing.T) {
	apiClient := &fakeAPIClient{searchHits: []Token{{Symbol: "USDC"}}}
	s := newTestService(apiClient)

	_, _, err := s.Search(context.Background(), 1, "usdc", 5)
	require.NoError(t, err)
	_, status, err := s.Search(context.Background(), 1, "usdc", 5)
	require.NoError(t, err)
	assert.Equal(t, interfaces.CacheStatusFull, status)

	_, status, err = s.Search(context.Background(), 1, "dai", 5)
	require.NoError(t, err)
	assert.Equal(t, interfaces.CacheStatusMiss, status)
	assert.Equal(t, int32(2), atomic.LoadInt32(&apiClient.searchCalls))
}

func TestCustomToken(t *testing.T) {
	apiClient := &fakeAPIClient{
		custom: &Token{Address: "0xdef1", Symbol: "CSTM", Decimals: 8},
	}
	s := newTestService(apiClient)

	token, status, err := s.CustomToken(context.Background(), 1, "0xDEF1")
	require.NoError(t, err)
	assert.Equal(t, interfaces.CacheStatusMiss, status)
	assert.Equal(t, "CSTM", token.Symbol)

	_, status, err = s.CustomToken(context.Background(), 1, "0xdef1")
	require.NoError(t, err)
	assert.Equal(t, interfaces.CacheStatusFull, status)
	assert.Equal(t, int32(1), atomic.LoadInt32(&apiClient.customCalls))
}

func TestTokenList_UpstreamErrorPropagates(t *testing.T) {
	apiClient := &fakeAPIClient{err: errors.New("status 500")}
	s := newTestService(apiClient)

	_, _, err := s.TokenList(context.Background(), 1)
	assert.ErrorContains(t, err, "status 500")
}
