package cache

import (
	"github.com/pebsconsulting/createphp/metric"
)

// Option configures a cache
type Option[V any] func(*cacheOptions[V])

type cacheOptions[V any] struct {
	registrar metric.MetricsRegistrar
	component string
	evictFn   EvictCallback[V]
}

// WithMetrics exports the cache counters to registrar, labelled with
// component. It is ignored when registrar is nil or component is empty.
func WithMetrics[V any](registrar metric.MetricsRegistrar, component string) Option[V] {
	return func(opts *cacheOptions[V]) {
		if registrar != nil && component != "" {
			opts.registrar = registrar
			opts.component = component
		}
	}
}

// WithEvictionCallback sets the function called for entries leaving the cache
func WithEvictionCallback[V any](callback EvictCallback[V]) Option[V] {
	return func(opts *cacheOptions[V]) {
		opts.evictFn = callback
	}
}

func applyOptions[V any](options ...Option[V]) *cacheOptions[V] {
	opts := &cacheOptions[V]{}
	for _, opt := range options {
		if opt != nil {
			opt(opts)
		}
	}
	return opts
}

func (o *cacheOptions[V]) metrics(method string) (*cacheMetrics, error) {
	if o.registrar == nil {
		return nil, nil
	}
	return newCacheMetrics(o.registrar, o.component, method)
}
