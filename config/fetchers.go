package config

// TokensFetcher represents configuration for the token metadata service
type TokensFetcher struct {
	TTLSeconds   int `yaml:"ttl_seconds"`   // Cache TTL for token lists and lookups
	SearchLimit  int `yaml:"search_limit"`  // Max results returned by token search
	DefaultChain int `yaml:"default_chain"` // Chain id used when the request omits one
}

// PricesFetcher represents configuration for the spot prices service
type PricesFetcher struct {
	TTLSeconds        int      `yaml:"ttl_seconds"`
	ChunkSize         int      `yaml:"chunk_size"`       // Number of addresses per upstream request
	RequestDelayMs    int      `yaml:"request_delay_ms"` // Delay between chunked requests
	Currency          string   `yaml:"currency"`         // Default quote currency
	RefreshIntervalMs int      `yaml:"refresh_interval_ms"`
	WatchAddresses    []string `yaml:"watch_addresses"` // Addresses pushed over the price stream
}

// GasFetcher represents configuration for the gas price service
type GasFetcher struct {
	TTLSeconds        int   `yaml:"ttl_seconds"`
	RefreshIntervalMs int   `yaml:"refresh_interval_ms"`
	Chains            []int `yaml:"chains"` // Chains kept warm by the periodic refresher
}

// NFTFetcher represents configuration for the NFT service
type NFTFetcher struct {
	TTLSeconds   int `yaml:"ttl_seconds"`
	DefaultLimit int `yaml:"default_limit"`
}

// PortfolioFetcher represents configuration for the portfolio value service
type PortfolioFetcher struct {
	TTLSeconds int `yaml:"ttl_seconds"`
}

// DomainsFetcher represents configuration for the domain lookup service
type DomainsFetcher struct {
	TTLSeconds int `yaml:"ttl_seconds"`
}

// HistoryFetcher represents configuration for the wallet history service
type HistoryFetcher struct {
	TTLSeconds   int `yaml:"ttl_seconds"`
	DefaultLimit int `yaml:"default_limit"`
}

// TracesFetcher represents configuration for the transaction trace service
type TracesFetcher struct {
	TTLSeconds int `yaml:"ttl_seconds"`
}

// BatchConfig controls the batch endpoint. Items are processed strictly
// sequentially with ItemDelayMs between calls to stay under upstream rate
// limits.
type BatchConfig struct {
	ItemDelayMs   int `yaml:"item_delay_ms"`
	MaxOperations int `yaml:"max_operations"`
}

// RateLimitConfig is a simple rpm + burst pair applied to upstream calls
type RateLimitConfig struct {
	RateLimitPerMinute int `yaml:"rate_limit_per_minute"`
	Burst              int `yaml:"burst"`
}

// CacheConfig configures the in-memory cache service
type CacheConfig struct {
	DefaultExpirationSeconds int  `yaml:"default_expiration_seconds"`
	CleanupIntervalSeconds   int  `yaml:"cleanup_interval_seconds"`
	Enabled                  bool `yaml:"enabled"`
}
