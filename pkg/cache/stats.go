package cache

import (
	"sync/atomic"
)

// Statistics counts cache operations. All methods are safe for concurrent use.
type Statistics struct {
	hits      atomic.Int64
	misses    atomic.Int64
	sets      atomic.Int64
	deletes   atomic.Int64
	evictions atomic.Int64
	size      atomic.Int64
	peak      atomic.Int64
}

// NewStatistics creates zeroed statistics
func NewStatistics() *Statistics {
	return &Statistics{}
}

func (s *Statistics) hit()      { s.hits.Add(1) }
func (s *Statistics) miss()     { s.misses.Add(1) }
func (s *Statistics) set()      { s.sets.Add(1) }
func (s *Statistics) delete()   { s.deletes.Add(1) }
func (s *Statistics) eviction() { s.evictions.Add(1) }

func (s *Statistics) updateSize(size int) {
	n := int64(size)
	s.size.Store(n)
	for {
		peak := s.peak.Load()
		if n <= peak || s.peak.CompareAndSwap(peak, n) {
			return
		}
	}
}

// Hits returns the number of lookups that found an entry
func (s *Statistics) Hits() int64 { return s.hits.Load() }

// Misses returns the number of lookups that found nothing
func (s *Statistics) Misses() int64 { return s.misses.Load() }

// Sets returns the number of writes
func (s *Statistics) Sets() int64 { return s.sets.Load() }

// Deletes returns the number of successful deletes
func (s *Statistics) Deletes() int64 { return s.deletes.Load() }

// Evictions returns the number of entries dropped by the LRU policy
func (s *Statistics) Evictions() int64 { return s.evictions.Load() }

// CurrentSize returns the number of entries after the last write
func (s *Statistics) CurrentSize() int64 { return s.size.Load() }

// MaxSize returns the largest size the cache has reached
func (s *Statistics) MaxSize() int64 { return s.peak.Load() }

// HitRatio returns hits / (hits + misses), or 0 before any lookup
func (s *Statistics) HitRatio() float64 {
	hits, misses := s.Hits(), s.Misses()
	if hits+misses == 0 {
		return 0
	}
	return float64(hits) / float64(hits+misses)
}

// Summary is a point-in-time copy of Statistics
type Summary struct {
	Hits        int64   `json:"hits" yaml:"hits"`
	Misses      int64   `json:"misses" yaml:"misses"`
	Sets        int64   `json:"sets" yaml:"sets"`
	Deletes     int64   `json:"deletes" yaml:"deletes"`
	Evictions   int64   `json:"evictions" yaml:"evictions"`
	CurrentSize int64   `json:"current_size" yaml:"current_size"`
	MaxSize     int64   `json:"max_size" yaml:"max_size"`
	HitRatio    float64 `json:"hit_ratio" yaml:"hit_ratio"`
}

// Summary returns a snapshot of the counters
func (s *Statistics) Summary() Summary {
	return Summary{
		Hits:        s.Hits(),
		Misses:      s.Misses(),
		Sets:        s.Sets(),
		Deletes:     s.Deletes(),
		Evictions:   s.Evictions(),
		CurrentSize: s.CurrentSize(),
		MaxSize:     s.MaxSize(),
		HitRatio:    s.HitRatio(),
	}
}
