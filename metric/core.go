package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Resolution outcomes used as the "result" label
const (
	ResultFound    = "found"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

// Metrics contains the metadata loading metrics
type Metrics struct {
	ResolutionsTotal   *prometheus.CounterVec
	ResolutionDuration *prometheus.HistogramVec
	FieldsLoaded       *prometheus.CounterVec
	ChildrenSkipped    prometheus.Counter
}

// NewMetrics creates a new, unregistered Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		ResolutionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "rdfmeta",
				Subsystem: "driver",
				Name:      "resolutions_total",
				Help:      "Total number of class metadata resolutions by result (found, not_found, error)",
			},
			[]string{"result"},
		),

		ResolutionDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "rdfmeta",
				Subsystem: "driver",
				Name:      "resolution_duration_seconds",
				Help:      "Time spent locating and building a type descriptor",
				Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
			},
			[]string{"result"},
		),

		FieldsLoaded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "rdfmeta",
				Subsystem: "driver",
				Name:      "fields_loaded_total",
				Help:      "Total number of field descriptors built, by kind",
			},
			[]string{"kind"},
		),

		ChildrenSkipped: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "rdfmeta",
				Subsystem: "driver",
				Name:      "children_skipped_total",
				Help:      "Total number of unknown child elements ignored under <children>",
			},
		),
	}
}

// RecordResolution counts one resolution and observes its duration
func (m *Metrics) RecordResolution(result string, duration time.Duration) {
	m.ResolutionsTotal.WithLabelValues(result).Inc()
	m.ResolutionDuration.WithLabelValues(result).Observe(duration.Seconds())
}

// RecordField counts one built field of the given kind
func (m *Metrics) RecordField(kind string) {
	m.FieldsLoaded.WithLabelValues(kind).Inc()
}

// RecordSkippedChild counts one ignored child element
func (m *Metrics) RecordSkippedChild() {
	m.ChildrenSkipped.Inc()
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.ResolutionsTotal,
		m.ResolutionDuration,
		m.FieldsLoaded,
		m.ChildrenSkipped,
	}
}
