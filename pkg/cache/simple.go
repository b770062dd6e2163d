package cache

import (
	"sync"
)

// simpleCache holds entries until they are deleted or cleared
type simpleCache[V any] struct {
	mu      sync.RWMutex
	items   map[string]V
	stats   *Statistics
	metrics *cacheMetrics
	evictFn EvictCallback[V]
}

func newSimpleCache[V any](opts *cacheOptions[V]) (*simpleCache[V], error) {
	metrics, err := opts.metrics("NewSimple")
	if err != nil {
		return nil, err
	}
	return &simpleCache[V]{
		items:   make(map[string]V),
		stats:   NewStatistics(),
		metrics: metrics,
		evictFn: opts.evictFn,
	}, nil
}

func (c *simpleCache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	value, ok := c.items[key]
	c.mu.RUnlock()

	if ok {
		c.stats.hit()
		c.metrics.recordHit()
	} else {
		c.stats.miss()
		c.metrics.recordMiss()
	}
	return value, ok
}

func (c *simpleCache[V]) Set(key string, value V) (bool, error) {
	if err := validateKey("Set", key); err != nil {
		return false, err
	}

	c.mu.Lock()
	_, exists := c.items[key]
	c.items[key] = value
	size := len(c.items)
	c.mu.Unlock()

	c.stats.set()
	c.stats.updateSize(size)
	c.metrics.recordSet(size)
	return !exists, nil
}

func (c *simpleCache[V]) Delete(key string) (bool, error) {
	if err := validateKey("Delete", key); err != nil {
		return false, err
	}

	c.mu.Lock()
	value, ok := c.items[key]
	if ok {
		delete(c.items, key)
	}
	size := len(c.items)
	c.mu.Unlock()

	if !ok {
		return false, nil
	}
	c.stats.delete()
	c.stats.updateSize(size)
	c.metrics.recordDelete(size)
	notify(c.evictFn, []evicted[V]{{key, value}})
	return true, nil
}

func (c *simpleCache[V]) Clear() error {
	c.mu.Lock()
	var removed []evicted[V]
	if c.evictFn != nil {
		removed = make([]evicted[V], 0, len(c.items))
		for key, value := range c.items {
			removed = append(removed, evicted[V]{key, value})
		}
	}
	c.items = make(map[string]V)
	c.mu.Unlock()

	c.stats.updateSize(0)
	c.metrics.updateSize(0)
	notify(c.evictFn, removed)
	return nil
}

func (c *simpleCache[V]) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *simpleCache[V]) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	keys := make([]string, 0, len(c.items))
	for key := range c.items {
		keys = append(keys, key)
	}
	return keys
}

func (c *simpleCache[V]) Stats() *Statistics {
	return c.stats
}
