package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/nicholas-fedor/bidsort/pkg/session"
)

var metrics *Metrics

// errRegisterFailed indicates a collector could not be registered.
var errRegisterFailed = errors.New("failed to register metric")

// errWriteTextfile indicates the textfile export failed.
var errWriteTextfile = errors.New("failed to write metrics textfile")

// Metrics holds the bidsort collectors.
type Metrics struct {
	sortDuration  *prometheus.HistogramVec // Sort durations by algorithm.
	sortsTotal    *prometheus.CounterVec   // Completed sorts by algorithm.
	lastSort      *prometheus.GaugeVec     // Duration of the latest sort by algorithm.
	recordsLoaded prometheus.Gauge         // Bids held after the last load.
	loadDuration  prometheus.Gauge         // Duration of the last load.
	gatherer      prometheus.Gatherer      // Source for textfile export.
}

// NewWithRegistry creates collectors and registers them with registerer.
//
// Parameters:
//   - registerer: Registry the collectors are added to.
//   - gatherer: Registry read by WriteTextfile, normally the same registry.
//
// Returns:
//   - (*Metrics, error): Metrics handler, or an error if any collector fails to register.
func NewWithRegistry(registerer prometheus.Registerer, gatherer prometheus.Gatherer) (*Metrics, error) {
	// Ten exponential buckets from 10µs to roughly 2.6s.
	buckets := prometheus.ExponentialBuckets(0.00001, 4, 10)

	m := &Metrics{
		sortDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bidsort_sort_duration_seconds",
			Help:    "Wall-clock duration of bid sorts",
			Buckets: buckets,
		}, []string{"algorithm"}),
		sortsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bidsort_sorts_total",
			Help: "Number of completed bid sorts",
		}, []string{"algorithm"}),
		lastSort: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "bidsort_last_sort_duration_seconds",
			Help: "Wall-clock duration of the most recent sort",
		}, []string{"algorithm"}),
		recordsLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bidsort_records_loaded",
			Help: "Number of bids held after the last load",
		}),
		loadDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bidsort_load_duration_seconds",
			Help: "Wall-clock duration of the last load",
		}),
		gatherer: gatherer,
	}

	collectors := []prometheus.Collector{
		m.sortDuration,
		m.sortsTotal,
		m.lastSort,
		m.recordsLoaded,
		m.loadDuration,
	}
	for _, c := range collectors {
		if err := registerer.Register(c); err != nil {
			return nil, fmt.Errorf("%w: %w", errRegisterFailed, err)
		}
	}

	return m, nil
}

// Default initializes or returns the singleton handler on the default Prometheus registry.
// It panics on registration failure.
func Default() *Metrics {
	if metrics != nil {
		return metrics
	}

	var err error

	metrics, err = NewWithRegistry(prometheus.DefaultRegisterer, prometheus.DefaultGatherer)
	if err != nil {
		panic(err)
	}

	return metrics
}

// ObserveSort records a completed sort.
//
// Parameters:
//   - algorithm: Label value, normally sorter.Algorithm.String().
//   - result: Timed sort.
func (m *Metrics) ObserveSort(algorithm string, result session.Result) {
	m.sortDuration.WithLabelValues(algorithm).Observe(result.Seconds())
	m.sortsTotal.WithLabelValues(algorithm).Inc()
	m.lastSort.WithLabelValues(algorithm).Set(result.Seconds())
}

// ObserveLoad records a completed load.
func (m *Metrics) ObserveLoad(result session.Result) {
	m.recordsLoaded.Set(float64(result.Records))
	m.loadDuration.Set(result.Seconds())
}

// WriteTextfile writes every metric of the gatherer to path in the text exposition format.
// The file is written atomically through a temporary file.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.gatherer); err != nil {
		return fmt.Errorf("%w: %w", errWriteTextfile, err)
	}

	return nil
}
