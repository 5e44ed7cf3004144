package metrics

import (
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsPrefix is the prefix used for all metrics
const MetricsPrefix = "coin_proxy_"

// Service constants
const (
	ServiceCoinsList  = "coins-list"
	ServiceCryptoData = "crypto-data"
)

var (
	// Global CoinMarketCap request counter (all services)
	// Cardinality: ~4 (success, error, rate_limited, canceled)
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "coinmarketcap_requests_total",
			Help: "Total number of HTTP requests to CoinMarketCap API across all services",
		},
		[]string{"status"},
	)

	// Service-specific CoinMarketCap request counter
	// Cardinality: ~8 (2 services × 4 statuses)
	ServiceUpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "service_coinmarketcap_requests_total",
			Help: "Total number of HTTP requests to CoinMarketCap API per service",
		},
		[]string{"service", "status"},
	)

	// Retry attempts counter
	// Cardinality: ~2 (number of services)
	ServiceRetryCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "service_retry_attempts_total",
			Help: "Total number of retry attempts per service",
		},
		[]string{"service"},
	)

	// Cache lookups by result
	// Cardinality: ~4 (2 services × hit/miss)
	CacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "cache_lookups_total",
			Help: "Number of cache lookups by service and result",
		},
		[]string{"service", "result"},
	)

	// Service cache size
	// Cardinality: ~2 (number of services)
	ServiceCacheSizeGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricsPrefix + "service_cache_size",
			Help: "Number of items in service cache",
		},
		[]string{"service"},
	)

	// Request latency per endpoint
	// Cardinality: ~2 (number of proxied endpoints)
	RequestLatencyHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: MetricsPrefix + "request_latency_seconds",
			Help: "HTTP request latency by service and endpoint",
		},
		[]string{"service", "endpoint"},
	)

	// Responses by status code
	// Cardinality: ~10 (2 services × a handful of codes)
	ResponsesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "responses_total",
			Help: "Responses written by service and HTTP status code",
		},
		[]string{"service", "code"},
	)
)

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

// RecordUpstreamRequest records a service-specific CoinMarketCap API request
func (mw *MetricsWriter) RecordUpstreamRequest(status string) {
	UpstreamRequestsTotal.WithLabelValues(status).Inc()
	ServiceUpstreamRequestsTotal.WithLabelValues(mw.serviceName, status).Inc()
}

// RecordRetryAttempt records a retry attempt
func (mw *MetricsWriter) RecordRetryAttempt() {
	ServiceRetryCounter.WithLabelValues(mw.serviceName).Inc()
	log.Printf("Metrics: %s recorded a retry attempt", mw.serviceName)
}

// RecordCacheLookup records a cache hit or miss
func (mw *MetricsWriter) RecordCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	CacheLookupsTotal.WithLabelValues(mw.serviceName, result).Inc()
}

// RecordCacheSize records the number of items in service cache
func (mw *MetricsWriter) RecordCacheSize(size int) {
	ServiceCacheSizeGauge.WithLabelValues(mw.serviceName).Set(float64(size))
}

// RecordRequestLatency records how long an endpoint took to respond
func (mw *MetricsWriter) RecordRequestLatency(endpoint string, start time.Time) {
	RequestLatencyHistogram.WithLabelValues(mw.serviceName, endpoint).Observe(time.Since(start).Seconds())
}

// RecordResponse records the status code written for a request
func (mw *MetricsWriter) RecordResponse(code string) {
	ResponsesTotal.WithLabelValues(mw.serviceName, code).Inc()
}

// MetricsWriter satisfies coinmarketcap.StatusReporter

// OnRequest records an HTTP request with its status
func (mw *MetricsWriter) OnRequest(status string) {
	mw.RecordUpstreamRequest(status)
}

// OnRetry records an HTTP retry attempt
func (mw *MetricsWriter) OnRetry() {
	mw.RecordRetryAttempt()
}
