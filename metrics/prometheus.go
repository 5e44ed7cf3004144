package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// WidgetPollsTotal tracks widget poll outcomes
	WidgetPollsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "widget_polls_total",
			Help: "Widget poll results by coin and outcome",
		},
		[]string{"coin", "result"},
	)
)

// RecordWidgetPoll records the outcome of one widget poll
func RecordWidgetPoll(coin string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	WidgetPollsTotal.WithLabelValues(coin, result).Inc()
}
