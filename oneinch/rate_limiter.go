package oneinch

import (
	"math"
	"sync"

	"golang.org/x/time/rate"

	"github.com/status-im/wallet-proxy/config"
)

// Default requests per minute when config does not provide a value.
// Matches the portal's entry-tier allowance of one request per second.
const defaultRPM = 60

var (
	limiterOnce   sync.Once
	globalLimiter *rate.Limiter
)

// SharedLimiter returns the process-wide upstream limiter. All domain
// clients go through the same bucket since the portal rate-limits the
// bearer key, not the endpoint.
func SharedLimiter(cfg config.RateLimitConfig) *rate.Limiter {
	limiterOnce.Do(func() {
		globalLimiter = NewLimiter(cfg)
	})
	return globalLimiter
}

// NewLimiter builds a token bucket limiter from config
func NewLimiter(cfg config.RateLimitConfig) *rate.Limiter {
	rpm := cfg.RateLimitPerMinute
	if rpm <= 0 {
		rpm = defaultRPM
	}

	limit := rate.Limit(float64(rpm) / 60.0)

	burst := cfg.Burst
	if burst <= 0 {
		burst = defaultBurstForLimit(limit)
	}

	return rate.NewLimiter(limit, burst)
}

func defaultBurstForLimit(limit rate.Limit) int {
	if limit <= 1.0 {
		return 1
	}
	return int(math.Ceil(float64(limit)))
}
