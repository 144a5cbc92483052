package playground

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the Prometheus metrics for the playground server.
type metrics struct {
	registry *prometheus.Registry

	rendersTotal   *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
	wsMessages     prometheus.Counter
	wsErrors       prometheus.Counter
}

// newMetrics builds the metric set on its own registry, so multiple servers
// (and tests) never fight over the default registerer.
func newMetrics() *metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &metrics{
		registry: registry,

		rendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "htmlwriter",
			Name:      "renders_total",
			Help:      "Total number of render requests by operation and status",
		}, []string{"op", "status"}),

		renderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "htmlwriter",
			Name:      "render_duration_seconds",
			Help:      "Render request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),

		wsMessages: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "htmlwriter",
			Name:      "websocket_messages_total",
			Help:      "Total number of live-preview messages handled",
		}),

		wsErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "htmlwriter",
			Name:      "websocket_errors_total",
			Help:      "Total number of live-preview errors",
		}),
	}
}

// observe records one render attempt.
func (m *metrics) observe(op string, seconds float64, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.rendersTotal.WithLabelValues(op, status).Inc()
	m.renderDuration.WithLabelValues(op).Observe(seconds)
}
