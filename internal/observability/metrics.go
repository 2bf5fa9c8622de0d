package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for the platform
type Metrics struct {
	registry *prometheus.Registry

	SearchRequests   *prometheus.CounterVec
	PolicyViolations *prometheus.CounterVec
	SearchDuration   *prometheus.HistogramVec
}

// NewMetrics creates and registers the platform collectors on a dedicated
// registry, keeping test instances isolated from the default registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		SearchRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tripforge_search_requests_total",
			Help: "Search requests by tenant and vertical",
		}, []string{"tenant", "vertical"}),
		PolicyViolations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tripforge_policy_violations_total",
			Help: "Policy violations emitted during annotation, by tenant, rule, and severity",
		}, []string{"tenant", "rule", "severity"}),
		SearchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tripforge_search_duration_seconds",
			Help:    "End-to-end search latency by vertical",
			Buckets: prometheus.DefBuckets,
		}, []string{"vertical"}),
	}

	registry.MustRegister(m.SearchRequests, m.PolicyViolations, m.SearchDuration)
	return m
}

// Handler returns the HTTP handler serving the /metrics endpoint
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
