package cache

import (
	"github.com/pebsconsulting/createphp/errors"
)

// Cache is a string-keyed cache of values of type V
type Cache[V any] interface {
	// Get returns the value stored under key and whether it was present.
	Get(key string) (V, bool)

	// Set stores value under key. It reports true when a new entry was created.
	Set(key string, value V) (bool, error)

	// Delete removes key. It reports true when the key was present.
	Delete(key string) (bool, error)

	// Clear removes every entry.
	Clear() error

	// Size returns the number of entries.
	Size() int

	// Keys returns the keys currently held.
	Keys() []string

	// Stats returns the cache statistics, or nil for a disabled cache.
	Stats() *Statistics
}

// EvictCallback is called with each entry that leaves the cache through
// Delete, Clear or LRU eviction.
type EvictCallback[V any] func(key string, value V)

type evicted[V any] struct {
	key   string
	value V
}

func notify[V any](fn EvictCallback[V], entries []evicted[V]) {
	if fn == nil {
		return
	}
	for _, e := range entries {
		fn(e.key, e.value)
	}
}

func validateKey(method, key string) error {
	if key == "" {
		return errors.WrapInvalid(errors.ErrInvalidData, "cache", method, "key cannot be empty")
	}
	return nil
}
