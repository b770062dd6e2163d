package cache

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pebsconsulting/createphp/errors"
	"github.com/pebsconsulting/createphp/metric"
)

// cacheMetrics mirrors Statistics as Prometheus collectors. A nil
// *cacheMetrics records nothing.
type cacheMetrics struct {
	hits      prometheus.Counter
	misses    prometheus.Counter
	sets      prometheus.Counter
	deletes   prometheus.Counter
	evictions prometheus.Counter
	size      prometheus.Gauge
}

func newCacheMetrics(registrar metric.MetricsRegistrar, component, method string) (*cacheMetrics, error) {
	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "rdfmeta",
			Subsystem:   "cache",
			Name:        name,
			Help:        help,
			ConstLabels: prometheus.Labels{"component": component},
		})
	}

	m := &cacheMetrics{
		hits:      counter("hits_total", "Total number of cache hits"),
		misses:    counter("misses_total", "Total number of cache misses"),
		sets:      counter("sets_total", "Total number of cache writes"),
		deletes:   counter("deletes_total", "Total number of cache deletes"),
		evictions: counter("evictions_total", "Total number of entries evicted by size"),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "rdfmeta",
			Subsystem:   "cache",
			Name:        "size",
			Help:        "Current number of cache entries",
			ConstLabels: prometheus.Labels{"component": component},
		}),
	}

	counters := []struct {
		name    string
		counter prometheus.Counter
	}{
		{"cache_hits", m.hits},
		{"cache_misses", m.misses},
		{"cache_sets", m.sets},
		{"cache_deletes", m.deletes},
		{"cache_evictions", m.evictions},
	}
	for _, c := range counters {
		if err := registrar.RegisterCounter(component, c.name, c.counter); err != nil {
			return nil, errors.Wrap(err, "cache", method, "metrics registration")
		}
	}
	if err := registrar.RegisterGauge(component, "cache_size", m.size); err != nil {
		return nil, errors.Wrap(err, "cache", method, "metrics registration")
	}

	return m, nil
}

func (m *cacheMetrics) recordHit() {
	if m != nil {
		m.hits.Inc()
	}
}

func (m *cacheMetrics) recordMiss() {
	if m != nil {
		m.misses.Inc()
	}
}

func (m *cacheMetrics) recordSet(size int) {
	if m != nil {
		m.sets.Inc()
		m.size.Set(float64(size))
	}
}

func (m *cacheMetrics) recordDelete(size int) {
	if m != nil {
		m.deletes.Inc()
		m.size.Set(float64(size))
	}
}

func (m *cacheMetrics) recordEviction() {
	if m != nil {
		m.evictions.Inc()
	}
}

func (m *cacheMetrics) updateSize(size int) {
	if m != nil {
		m.size.Set(float64(size))
	}
}
