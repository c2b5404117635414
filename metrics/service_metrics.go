package metrics

import (
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsPrefix is the prefix used for all metrics
const MetricsPrefix = "wallet_proxy_"

// Service constants, one per upstream data domain
const (
	ServiceTokens    = "tokens"
	ServicePrices    = "prices"
	ServiceGas       = "gas"
	ServiceNFT       = "nft"
	ServicePortfolio = "portfolio"
	ServiceDomains   = "domains"
	ServiceHistory   = "history"
	ServiceTraces    = "traces"
)

var (
	// Global upstream request counter (all services)
	// Cardinality: ~4 (success, error, rate_limited, unauthorized)
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "upstream_requests_total",
			Help: "Total number of HTTP requests to the aggregator API across all services",
		},
		[]string{"status"},
	)

	// Service-specific upstream request counter
	// Cardinality: ~32 (8 services x 4 statuses)
	ServiceUpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "service_upstream_requests_total",
			Help: "Total number of HTTP requests to the aggregator API per service",
		},
		[]string{"service", "status"},
	)

	// Upstream fetch duration per service
	// Cardinality: ~8 (number of services)
	UpstreamFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: MetricsPrefix + "upstream_fetch_duration_seconds",
			Help: "Time taken to fetch data from the aggregator API",
		},
		[]string{"service"},
	)

	// Service cache size
	// Cardinality: ~8 (number of services)
	ServiceCacheSizeGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricsPrefix + "service_cache_size",
			Help: "Number of items in service cache",
		},
		[]string{"service"},
	)

	// Retry attempts counter
	// Cardinality: ~8 (number of services)
	ServiceRetryCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "service_retry_attempts_total",
			Help: "Total number of retry attempts per service",
		},
		[]string{"service"},
	)

	// Batch item results counter
	// Cardinality: ~8 (4 actions x 2 outcomes)
	BatchItemsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "batch_items_total",
			Help: "Total number of batch items processed by action and outcome",
		},
		[]string{"action", "outcome"},
	)
)

// RecordBatchItem records the outcome of a single batch operation
func RecordBatchItem(action string, success bool) {
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	BatchItemsTotal.WithLabelValues(action, outcome).Inc()
}

// MetricsWriter provides a unified interface for recording service metrics
type MetricsWriter struct {
	serviceName string
}

// NewMetricsWriter creates a new MetricsWriter for the specified service
func NewMetricsWriter(serviceName string) *MetricsWriter {
	return &MetricsWriter{
		serviceName: serviceName,
	}
}

// GetServiceName returns the service name
func (mw *MetricsWriter) GetServiceName() string {
	return mw.serviceName
}

// RecordUpstreamRequest records an upstream API request with its status
func (mw *MetricsWriter) RecordUpstreamRequest(status string) {
	UpstreamRequestsTotal.WithLabelValues(status).Inc()
	ServiceUpstreamRequestsTotal.WithLabelValues(mw.serviceName, status).Inc()
}

// RecordFetchDuration records the duration of an upstream fetch
func (mw *MetricsWriter) RecordFetchDuration(duration time.Duration) {
	UpstreamFetchDuration.WithLabelValues(mw.serviceName).Observe(duration.Seconds())
}

// RecordCacheSize records the number of items in service cache
func (mw *MetricsWriter) RecordCacheSize(size int) {
	ServiceCacheSizeGauge.WithLabelValues(mw.serviceName).Set(float64(size))
}

// RecordRetryAttempt records a retry attempt
func (mw *MetricsWriter) RecordRetryAttempt() {
	ServiceRetryCounter.WithLabelValues(mw.serviceName).Inc()
	log.Printf("Metrics: %s recorded a retry attempt", mw.serviceName)
}

// Implement the upstream status handler interface for MetricsWriter

// OnRequest records an HTTP request with its status
func (mw *MetricsWriter) OnRequest(status string) {
	mw.RecordUpstreamRequest(status)
}

// OnRetry records an HTTP retry attempt
func (mw *MetricsWriter) OnRetry() {
	mw.RecordRetryAttempt()
}
