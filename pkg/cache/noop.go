package cache

// NewNoop returns a cache that stores nothing; every Get misses.
func NewNoop[V any]() Cache[V] {
	return noopCache[V]{}
}

type noopCache[V any] struct{}

func (noopCache[V]) Get(string) (V, bool) {
	var zero V
	return zero, false
}

func (noopCache[V]) Set(string, V) (bool, error) { return false, nil }

func (noopCache[V]) Delete(string) (bool, error) { return false, nil }

func (noopCache[V]) Clear() error { return nil }

func (noopCache[V]) Size() int { return 0 }

func (noopCache[V]) Keys() []string { return nil }

func (noopCache[V]) Stats() *Statistics { return nil }
