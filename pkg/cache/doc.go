// Package cache provides generic, thread-safe caches keyed by string.
//
// Two eviction strategies are available:
//   - simple: entries stay until deleted or cleared
//   - lru: least recently used entries are evicted once MaxSize is exceeded
//
// Every cache keeps Statistics. Prometheus counters are added with
// WithMetrics:
//
//	types, err := cache.New[*entity.Type](cache.Config{
//		Enabled:  true,
//		Strategy: cache.StrategyLRU,
//		MaxSize:  256,
//	}, cache.WithMetrics[*entity.Type](registry, "typefactory"))
//
// A disabled Config yields a cache that never stores anything.
package cache
