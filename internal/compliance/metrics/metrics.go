package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the compliance overview.
type Metrics struct {
	// Input gathering latencies by source
	GatherLatency *prometheus.HistogramVec

	// Overview cache lookups by result (hit, miss, error)
	CacheLookups *prometheus.CounterVec

	// Full overview computation latency, cache misses only
	OverviewLatency prometheus.Histogram
}

// New creates and registers the compliance metrics.
func New() *Metrics {
	return &Metrics{
		GatherLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "comply_overview_gather_duration_seconds",
			Help:    "Duration of overview input gathering by source",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"source"}), // source: "documents", "tasks", "policies", "people"

		CacheLookups: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "comply_overview_cache_lookups_total",
			Help: "Overview cache lookups by result",
		}, []string{"result"}),

		OverviewLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "comply_overview_compute_duration_seconds",
			Help:    "Duration of a full overview computation",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
	}
}

func (m *Metrics) ObserveGatherLatency(source string, d time.Duration) {
	if m != nil {
		m.GatherLatency.WithLabelValues(source).Observe(d.Seconds())
	}
}

func (m *Metrics) IncCacheLookup(result string) {
	if m != nil {
		m.CacheLookups.WithLabelValues(result).Inc()
	}
}

func (m *Metrics) ObserveOverviewLatency(d time.Duration) {
	if m != nil {
		m.OverviewLatency.Observe(d.Seconds())
	}
}
