package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Lookup outcome label values.
const (
	OutcomeOnline     = "online"
	OutcomeOffline    = "offline"
	OutcomeBadRequest = "bad_request"
)

// Metrics holds the service's Prometheus collectors on a private
// registry, so tests can create throwaway instances.
type Metrics struct {
	registry *prometheus.Registry

	LookupsTotal   *prometheus.CounterVec
	FetchDuration  prometheus.Histogram
	FallbacksTotal prometheus.Counter
}

// New creates and registers all collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		LookupsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fedipeek_lookups_total",
			Help: "Lookup requests by outcome.",
		}, []string{"outcome"}),
		FetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "fedipeek_fetch_duration_seconds",
			Help:    "Wall time of the upstream meta fetch (POST plus optional GET fallback).",
			Buckets: prometheus.DefBuckets,
		}),
		FallbacksTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fedipeek_fetch_fallbacks_total",
			Help: "Meta fetches where the POST leg failed and GET was attempted.",
		}),
	}

	reg.MustRegister(
		m.LookupsTotal,
		m.FetchDuration,
		m.FallbacksTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Handler exposes the registry in Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
