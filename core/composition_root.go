package core

import (
	"context"

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

// Setup creates and registers all services
func Setup(ctx context.Context, cfg *config.Config) (*Registry, error) {
	registry := NewRegistry()

	// Cache service is shared by all data domains
	cacheService := cache.NewService(cfg.Cache)
	registry.Register(cacheService)

	tokensService := oneinch_tokens.NewService(cacheService, cfg)
	registry.Register(tokensService)

	pricesService := oneinch_prices.NewService(cacheService, cfg)
	registry.Register(pricesService)

	gasService := oneinch_gas.NewService(cacheService, cfg)
	registry.Register(gasService)

	nftService := oneinch_nft.NewService(cacheService, cfg)
	registry.Register(nftService)

	portfolioService := oneinch_portfolio.NewService(cacheService, cfg)
	registry.Register(portfolioService)

	domainsService := oneinch_domains.NewService(cacheService, cfg)
	registry.Register(domainsService)

	historyService := oneinch_history.NewService(cacheService, cfg)
	registry.Register(historyService)

	tracesService := oneinch_traces.NewService(cacheService, cfg)
	registry.Register(tracesService)

	// HTTP server goes last so every service it serves is started first
	server := api.New(cfg, tokensService, pricesService, gasService, nftService, portfolioService, domainsService, historyService, tracesService)
	registry.Register(server)

	return registry, nil
}
