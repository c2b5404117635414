package oneinch

import "github.com/status-im/wallet-proxy/config"

const (
	// Base URL for the aggregator developer portal API
	AggregatorBaseURL = "https://api.1inch.dev"
)

// BaseURL returns the upstream base URL, honoring the config override
func BaseURL(cfg *config.Config) string {
	if cfg != nil && cfg.OverrideAggregatorURL != "" {
		return cfg.OverrideAggregatorURL
	}
	return AggregatorBaseURL
}
