package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus gauges, counters and histograms for the
// viewer.
type Metrics struct {
	RecordsLoaded prometheus.Gauge
	RowsSkipped   prometheus.Gauge

	RequestsTotal    *prometheus.CounterVec // labels: endpoint
	RenderDuration   *prometheus.HistogramVec
	UnmatchedRecords prometheus.Counter
}

// NewMetrics creates and registers all viewer metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.RecordsLoaded,
		m.RowsSkipped,
		m.RequestsTotal,
		m.RenderDuration,
		m.UnmatchedRecords,
	)
	return m
}

// NewMetricsForTesting creates Metrics without touching the default
// registry, avoiding "already registered" panics across tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		RecordsLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "incendios",
			Name:      "records_loaded",
			Help:      "Fire records held in memory after the startup load.",
		}),
		RowsSkipped: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "incendios",
			Name:      "rows_skipped",
			Help:      "Source rows dropped during load for an unparsable year.",
		}),
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "incendios",
			Name:      "requests_total",
			Help:      "API requests by endpoint.",
		}, []string{"endpoint"}),
		RenderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "incendios",
			Name:      "render_duration_seconds",
			Help:      "Filter plus render time per endpoint.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"endpoint"}),
		UnmatchedRecords: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "incendios",
			Name:      "choropleth_unmatched_records_total",
			Help:      "Records dropped from map layers for lack of a matching province boundary.",
		}),
	}
}
