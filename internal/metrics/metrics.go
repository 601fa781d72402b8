package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the run counters on a private registry. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	registry        *prometheus.Registry
	sources         *prometheus.CounterVec
	recordsInserted prometheus.Counter
	storeErrors     *prometheus.CounterVec
	venueDuration   prometheus.Histogram
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		sources: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "specials",
			Name:      "sources_total",
			Help:      "Sources processed, by kind and terminal status.",
		}, []string{"kind", "status"}),
		recordsInserted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "specials",
			Name:      "records_inserted_total",
			Help:      "Special records written to the store.",
		}),
		storeErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "specials",
			Name:      "store_errors_total",
			Help:      "Store failures, by operation.",
		}, []string{"op"}),
		venueDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "specials",
			Name:      "venue_duration_seconds",
			Help:      "Wall time spent per venue.",
			Buckets:   []float64{1, 5, 10, 30, 60, 120, 300},
		}),
	}
	m.registry.MustRegister(m.sources, m.recordsInserted, m.storeErrors, m.venueDuration)
	return m
}

func (m *Metrics) SourceDone(kind, status string) {
	if m == nil {
		return
	}
	m.sources.WithLabelValues(kind, status).Inc()
}

func (m *Metrics) RecordsInserted(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.recordsInserted.Add(float64(n))
}

func (m *Metrics) StoreError(op string) {
	if m == nil {
		return
	}
	m.storeErrors.WithLabelValues(op).Inc()
}

func (m *Metrics) VenueDuration(d time.Duration) {
	if m == nil {
		return
	}
	m.venueDuration.Observe(d.Seconds())
}

// WriteTextfile writes the current values in the node_exporter textfile format.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil || path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.registry)
}
