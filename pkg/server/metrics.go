package server

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// serverMetrics holds the Prometheus instruments for the session kernel.
type serverMetrics struct {
	activeSessions prometheus.Gauge
	sessionsTotal  prometheus.Counter
	inputsReceived prometheus.Counter
	messagesSent   *prometheus.CounterVec
	wsErrors       *prometheus.CounterVec
}

var (
	globalMetrics     *serverMetrics
	globalMetricsOnce sync.Once
)

// metrics returns the singleton metrics instance, registering the
// instruments on the default registerer on first use.
func metrics() *serverMetrics {
	globalMetricsOnce.Do(func() {
		globalMetrics = newMetrics(prometheus.DefaultRegisterer)
	})
	return globalMetrics
}

// newMetrics registers the instruments with the given registerer.
func newMetrics(reg prometheus.Registerer) *serverMetrics {
	factory := promauto.With(reg)

	return &serverMetrics{
		activeSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "shinywidgets",
			Name:      "active_sessions",
			Help:      "Number of active websocket sessions",
		}),
		sessionsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "shinywidgets",
			Name:      "sessions_total",
			Help:      "Total number of sessions created",
		}),
		inputsReceived: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "shinywidgets",
			Name:      "inputs_received_total",
			Help:      "Total number of input frames received from clients",
		}),
		messagesSent: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "shinywidgets",
			Name:      "messages_sent_total",
			Help:      "Total custom messages sent to clients, by handler name",
		}, []string{"handler"}),
		wsErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "shinywidgets",
			Name:      "websocket_errors_total",
			Help:      "Total websocket errors by type",
		}, []string{"type"}),
	}
}
