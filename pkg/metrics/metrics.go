// Package metrics defines the Prometheus collectors for a counting run and
// writes them in the node-exporter textfile format.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all Prometheus collectors for a run. Each Metrics has its
// own registry so tests and repeated runs never collide.
type Metrics struct {
	registry *prometheus.Registry

	FilesTotal         *prometheus.CounterVec
	WordsTotal         prometheus.Counter
	BytesTotal         prometheus.Counter
	FileDuration       prometheus.Histogram
	DistinctWords      prometheus.Gauge
	Workers            prometheus.Gauge
	RunDurationSeconds prometheus.Gauge
}

// New creates and registers all metrics.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		FilesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wordstat_files_total",
				Help: "Files processed by outcome (ok, read_error, encoding_error, cancelled).",
			},
			[]string{"status"},
		),
		WordsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "wordstat_words_total",
				Help: "Words counted across all files.",
			},
		),
		BytesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "wordstat_bytes_read_total",
				Help: "Bytes read from input files.",
			},
		),
		FileDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "wordstat_file_duration_seconds",
				Help:    "Time to read, tokenize and count one file.",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
		),
		DistinctWords: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "wordstat_aggregate_distinct_words",
				Help: "Distinct words in the combined view of the last run.",
			},
		),
		Workers: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "wordstat_workers",
				Help: "Size of the worker pool.",
			},
		),
		RunDurationSeconds: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "wordstat_run_duration_seconds",
				Help: "Wall time of the last run.",
			},
		),
	}

	m.registry.MustRegister(
		m.FilesTotal,
		m.WordsTotal,
		m.BytesTotal,
		m.FileDuration,
		m.DistinctWords,
		m.Workers,
		m.RunDurationSeconds,
	)
	return m
}

// Gatherer exposes the underlying registry.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteTextfile writes every metric to path atomically, for the
// node-exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
