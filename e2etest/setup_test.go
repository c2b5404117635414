package e2etest

import (
	"net/http/httptest"
	"testing"

	"github.com/status-im/wallet-proxy/api"
	"github.com/status-im/wallet-proxy/cache"
	"github.com/status-im/wallet-proxy/config"
	"github.com/status-im/wallet-proxy/oneinch_domains"
	"github.com/status-im/wallet-proxy/oneinch_gas"
	"github.com/status-im/wallet-proxy/oneinch_history"
	"github.com/status-im/wallet-proxy/oneinch_nft"
	"github.com/status-im/wallet-proxy/oneinch_portfolio"
	"github.com/status-im/wallet-proxy/oneinch_prices"
	"github.com/status-im/wallet-proxy/oneinch_tokens"
	"github.com/status-im/wallet-proxy/oneinch_traces"
)

const (
	testAPIKey    = "test-key"
	testProjectID = "wc-test-project"
)

// TestEnv wires the real router against a fake upstream
type TestEnv struct {
	Upstream *MockUpstream
	Frontend *httptest.Server
}

func testConfig(upstreamURL string) *config.Config {
	return &config.Config{
		Port:                  8081,
		OverrideAggregatorURL: upstreamURL,

		Tokens:    config.TokensFetcher{TTLSeconds: 60, SearchLimit: 25, DefaultChain: 1},
		Prices:    config.PricesFetcher{TTLSeconds: 60, ChunkSize: 50, RequestDelayMs: 1, Currency: "usd"},
		Gas:       config.GasFetcher{TTLSeconds: 60},
		NFT:       config.NFTFetcher{TTLSeconds: 60, DefaultLimit: 25},
		Portfolio: config.PortfolioFetcher{TTLSeconds: 60},
		Domains:   config.DomainsFetcher{TTLSeconds: 60},
		History:   config.HistoryFetcher{TTLSeconds: 60, DefaultLimit: 50},
		Traces:    config.TracesFetcher{TTLSeconds: 60},

		Batch: config.BatchConfig{ItemDelayMs: 1, MaxOperations: 10},
		// Effectively unlimited so tests never throttle
		RateLimit: config.RateLimitConfig{RateLimitPerMinute: 6000000, Burst: 10000},
		Cache:     config.CacheConfig{DefaultExpirationSeconds: 60, CleanupIntervalSeconds: 120, Enabled: true},

		Credentials: config.Credentials{
			APIKey:                 testAPIKey,
			WalletConnectProjectID: testProjectID,
		},
	}
}

// SetupTest builds the full service stack against a mock upstream and
// serves the real router over httptest
func SetupTest(t *testing.T) *TestEnv {
	t.Helper()

	upstream := NewMockUpstream()
	cfg := testConfig(upstream.URL())

	cacheService := cache.NewService(cfg.Cache)

	server := api.New(cfg,
		oneinch_tokens.NewService(cacheService, cfg),
		oneinch_prices.NewService(cacheService, cfg),
		oneinch_gas.NewService(cacheService, cfg),
		oneinch_nft.NewService(cacheService, cfg),
		oneinch_portfolio.NewService(cacheService, cfg),
		oneinch_domains.NewService(cacheService, cfg),
		oneinch_history.NewService(cacheService, cfg),
		oneinch_traces.NewService(cacheService, cfg),
	)

	frontend := httptest.NewServer(server.Router())

	t.Cleanup(func() {
		frontend.Close()
		upstream.Close()
	})

	return &TestEnv{
		Upstream: upstream,
		Frontend: frontend,
	}
}
