package cache

import (
	"container/list"
	"sync"
)

// lruCache evicts the least recently used entry once it holds more than
// maxSize entries. Get counts as a use.
type lruCache[V any] struct {
	mu      sync.Mutex
	maxSize int
	items   map[string]*list.Element
	order   *list.List // front is most recently used
	stats   *Statistics
	metrics *cacheMetrics
	evictFn EvictCallback[V]
}

func newLRUCache[V any](maxSize int, opts *cacheOptions[V]) (*lruCache[V], error) {
	metrics, err := opts.metrics("NewLRU")
	if err != nil {
		return nil, err
	}
	return &lruCache[V]{
		maxSize: maxSize,
		items:   make(map[string]*list.Element),
		order:   list.New(),
		stats:   NewStatistics(),
		metrics: metrics,
		evictFn: opts.evictFn,
	}, nil
}

func (c *lruCache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	element, ok := c.items[key]
	if !ok {
		c.mu.Unlock()
		c.stats.miss()
		c.metrics.recordMiss()
		var zero V
		return zero, false
	}
	c.order.MoveToFront(element)
	value := element.Value.(*evicted[V]).value
	c.mu.Unlock()

	c.stats.hit()
	c.metrics.recordHit()
	return value, true
}

func (c *lruCache[V]) Set(key string, value V) (bool, error) {
	if err := validateKey("Set", key); err != nil {
		return false, err
	}

	c.mu.Lock()
	created := true
	if element, ok := c.items[key]; ok {
		element.Value.(*evicted[V]).value = value
		c.order.MoveToFront(element)
		created = false
	} else {
		c.items[key] = c.order.PushFront(&evicted[V]{key: key, value: value})
	}

	var removed []evicted[V]
	for len(c.items) > c.maxSize {
		removed = append(removed, c.removeOldest())
	}
	size := len(c.items)
	c.mu.Unlock()

	c.stats.set()
	c.stats.updateSize(size)
	c.metrics.recordSet(size)
	for range removed {
		c.stats.eviction()
		c.metrics.recordEviction()
	}
	notify(c.evictFn, removed)
	return created, nil
}

func (c *lruCache[V]) Delete(key string) (bool, error) {
	if err := validateKey("Delete", key); err != nil {
		return false, err
	}

	c.mu.Lock()
	element, ok := c.items[key]
	if !ok {
		c.mu.Unlock()
		return false, nil
	}
	entry := c.remove(element)
	size := len(c.items)
	c.mu.Unlock()

	c.stats.delete()
	c.stats.updateSize(size)
	c.metrics.recordDelete(size)
	notify(c.evictFn, []evicted[V]{entry})
	return true, nil
}

func (c *lruCache[V]) Clear() error {
	c.mu.Lock()
	var removed []evicted[V]
	if c.evictFn != nil {
		removed = make([]evicted[V], 0, len(c.items))
		for element := c.order.Back(); element != nil; element = element.Prev() {
			removed = append(removed, *element.Value.(*evicted[V]))
		}
	}
	c.items = make(map[string]*list.Element)
	c.order.Init()
	c.mu.Unlock()

	c.stats.updateSize(0)
	c.metrics.updateSize(0)
	notify(c.evictFn, removed)
	return nil
}

func (c *lruCache[V]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Keys returns the keys from most to least recently used
func (c *lruCache[V]) Keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	keys := make([]string, 0, len(c.items))
	for element := c.order.Front(); element != nil; element = element.Next() {
		keys = append(keys, element.Value.(*evicted[V]).key)
	}
	return keys
}

func (c *lruCache[V]) Stats() *Statistics {
	return c.stats
}

// removeOldest must be called with c.mu held
func (c *lruCache[V]) removeOldest() evicted[V] {
	return c.remove(c.order.Back())
}

// remove must be called with c.mu held
func (c *lruCache[V]) remove(element *list.Element) evicted[V] {
	entry := element.Value.(*evicted[V])
	delete(c.items, entry.key)
	c.order.Remove(element)
	return *entry
}
