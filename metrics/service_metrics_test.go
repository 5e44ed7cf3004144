package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsWriter_CacheLookup(t *testing.T) {
	mw := NewMetricsWriter("test-cache-lookup")

	mw.RecordCacheLookup(true)
	mw.RecordCacheLookup(true)
	mw.RecordCacheLookup(false)

	assert.Equal(t, 2.0, testutil.ToFloat64(CacheLookupsTotal.WithLabelValues("test-cache-lookup", "hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(CacheLookupsTotal.WithLabelValues("test-cache-lookup", "miss")))
}

func TestMetricsWriter_StatusHandler(t *testing.T) {
	mw := NewMetricsWriter("test-status-handler")

	mw.OnRequest("success")
	mw.OnRequest("error")
	mw.OnRetry()

	assert.Equal(t, 1.0, testutil.ToFloat64(ServiceUpstreamRequestsTotal.WithLabelValues("test-status-handler", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(ServiceUpstreamRequestsTotal.WithLabelValues("test-status-handler", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(ServiceRetryCounter.WithLabelValues("test-status-handler")))
	assert.Equal(t, "test-status-handler", mw.GetServiceName())
}

func TestMetricsWriter_CacheSize(t *testing.T) {
	mw := NewMetricsWriter("test-cache-size")
	mw.RecordCacheSize(7)
	assert.Equal(t, 7.0, testutil.ToFloat64(ServiceCacheSizeGauge.WithLabelValues("test-cache-size")))
}

func TestRecordWidgetPoll(t *testing.T) {
	RecordWidgetPoll("test-coin", nil)
	RecordWidgetPoll("test-coin", errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(WidgetPollsTotal.WithLabelValues("test-coin", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(WidgetPollsTotal.WithLabelValues("test-coin", "error")))
}
