package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all prometheus collectors for the engine.
// Collectors are registered against an explicit registry so parallel
// tests never fight over the default one.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests    *prometheus.CounterVec
	HTTPDuration    *prometheus.HistogramVec
	WSConnections   prometheus.Gauge
	WSMessages      prometheus.Counter
	PlayersJoined   prometheus.Counter
	PositionUpdates prometheus.Counter
	Goals           *prometheus.CounterVec
}

// New creates a Metrics instance with its own registry
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "arena_http_requests_total",
			Help: "HTTP requests by method, route and status code",
		}, []string{"method", "route", "status"}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "arena_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		WSConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name: "arena_ws_connections",
			Help: "Currently connected websocket clients",
		}),
		WSMessages: factory.NewCounter(prometheus.CounterOpts{
			Name: "arena_ws_messages_total",
			Help: "Snapshot messages pushed over websocket",
		}),
		PlayersJoined: factory.NewCounter(prometheus.CounterOpts{
			Name: "arena_players_joined_total",
			Help: "Players that have joined the match",
		}),
		PositionUpdates: factory.NewCounter(prometheus.CounterOpts{
			Name: "arena_position_updates_total",
			Help: "Accepted player position and move updates",
		}),
		Goals: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "arena_goals_total",
			Help: "Goals scored by team",
		}, []string{"team"}),
	}
}

// Handler returns the /metrics scrape endpoint
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
