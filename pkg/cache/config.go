package cache

import (
	"fmt"

	"github.com/pebsconsulting/createphp/errors"
)

// Strategy selects the eviction policy
type Strategy string

const (
	// StrategySimple never evicts.
	StrategySimple Strategy = "simple"

	// StrategyLRU evicts the least recently used entry beyond MaxSize.
	StrategyLRU Strategy = "lru"
)

// Config describes a cache
type Config struct {
	Enabled  bool     `json:"enabled" yaml:"enabled"`
	Strategy Strategy `json:"strategy" yaml:"strategy"`

	// MaxSize bounds the number of entries of an LRU cache.
	MaxSize int `json:"max_size" yaml:"max_size"`
}

// DefaultConfig returns an enabled LRU cache of 1000 entries
func DefaultConfig() Config {
	return Config{
		Enabled:  true,
		Strategy: StrategyLRU,
		MaxSize:  1000,
	}
}

// Validate checks the configuration. A disabled configuration is always valid.
func (c Config) Validate() error {
	if !c.Enabled {
		return nil
	}

	switch c.Strategy {
	case StrategySimple:
	case StrategyLRU:
		if c.MaxSize <= 0 {
			return errors.WrapInvalid(errors.ErrInvalidConfig, "cache", "Validate",
				fmt.Sprintf("max_size must be positive for lru cache, got %d", c.MaxSize))
		}
	default:
		return errors.WrapInvalid(errors.ErrInvalidConfig, "cache", "Validate",
			fmt.Sprintf("unknown cache strategy %q", c.Strategy))
	}
	return nil
}

// New creates the cache described by config. A disabled config yields a
// no-op cache.
func New[V any](config Config, options ...Option[V]) (Cache[V], error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	if !config.Enabled {
		return NewNoop[V](), nil
	}

	if config.Strategy == StrategyLRU {
		return NewLRU[V](config.MaxSize, options...)
	}
	return NewSimple[V](options...)
}

// NewLRU creates an LRU cache holding at most maxSize entries
func NewLRU[V any](maxSize int, options ...Option[V]) (Cache[V], error) {
	if maxSize <= 0 {
		return nil, errors.WrapInvalid(errors.ErrInvalidConfig, "cache", "NewLRU",
			fmt.Sprintf("max size %d", maxSize))
	}
	return newLRUCache[V](maxSize, applyOptions(options...))
}

// NewSimple creates a cache without eviction
func NewSimple[V any](options ...Option[V]) (Cache[V], error) {
	return newSimpleCache[V](applyOptions(options...))
}
