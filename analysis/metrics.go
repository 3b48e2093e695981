package analysis

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the small set of Prometheus collectors the orchestrator
// updates. The core never starts an HTTP server or registers with the
// global default registry itself (out of scope per spec.md §1); a host
// process supplies its own *prometheus.Registry and is responsible for
// exposing it.
type Metrics struct {
	CalculateDuration prometheus.Histogram
	DriverCount       prometheus.Gauge
	NullModelTrials   prometheus.Counter
}

// NewMetrics registers netctrl's collectors against reg and returns the
// handles the orchestrator updates during Run.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	return &Metrics{
		CalculateDuration: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "netctrl_calculate_duration_seconds",
			Help:    "Time spent in a solver's Calculate call.",
			Buckets: prometheus.DefBuckets,
		}),
		DriverCount: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "netctrl_driver_count",
			Help: "Number of driver nodes found by the most recent Calculate call.",
		}),
		NullModelTrials: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "netctrl_null_model_trials_total",
			Help: "Total number of null-model trials run across all ensembles.",
		}),
	}
}
