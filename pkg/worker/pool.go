package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/pebsconsulting/createphp/errors"
	"github.com/pebsconsulting/createphp/metric"
)

// Default sizes used when NewPool is given non-positive values
const (
	DefaultWorkers   = 4
	DefaultQueueSize = 1000
)

// Pool processes work items of type T on a fixed number of goroutines
type Pool[T any] struct {
	workers   int
	queueSize int
	processor func(context.Context, T) error

	workChan chan T
	wg       sync.WaitGroup
	metrics  *poolMetrics

	lifecycleMu sync.Mutex
	started     bool
	stopped     bool

	submitted atomic.Int64
	processed atomic.Int64
	failed    atomic.Int64
	dropped   atomic.Int64
}

// Option configures a Pool
type Option[T any] func(*poolOptions)

type poolOptions struct {
	registrar metric.MetricsRegistrar
	name      string
}

// WithMetrics exports the pool counters to registrar, labelled with name
func WithMetrics[T any](registrar metric.MetricsRegistrar, name string) Option[T] {
	return func(o *poolOptions) {
		if registrar != nil && name != "" {
			o.registrar = registrar
			o.name = name
		}
	}
}

// NewPool creates a pool. Non-positive sizes fall back to the defaults.
// It fails when processor is nil or metrics cannot be registered.
func NewPool[T any](workers, queueSize int, processor func(context.Context, T) error, opts ...Option[T]) (*Pool[T], error) {
	if processor == nil {
		return nil, errors.WrapInvalid(ErrNilProcessor, "Pool", "NewPool", "check processor")
	}
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}

	o := &poolOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	p := &Pool[T]{
		workers:   workers,
		queueSize: queueSize,
		processor: processor,
		workChan:  make(chan T, queueSize),
	}

	if o.registrar != nil {
		m, err := newPoolMetrics(o.registrar, o.name)
		if err != nil {
			return nil, errors.Wrap(err, "Pool", "NewPool", "metrics registration")
		}
		p.metrics = m
	}
	return p, nil
}

// Start launches the workers. They exit when ctx is cancelled or the pool is
// stopped and its queue drained.
func (p *Pool[T]) Start(ctx context.Context) error {
	p.lifecycleMu.Lock()
	defer p.lifecycleMu.Unlock()

	if p.started {
		return ErrPoolAlreadyStarted
	}

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
	p.started = true
	return nil
}

// Submit queues work without blocking. It returns ErrQueueFull and drops the
// item when the queue is at capacity.
func (p *Pool[T]) Submit(work T) error {
	p.lifecycleMu.Lock()
	defer p.lifecycleMu.Unlock()

	if !p.started {
		return ErrPoolNotStarted
	}
	if p.stopped {
		return ErrPoolStopped
	}

	select {
	case p.workChan <- work:
		p.submitted.Add(1)
		p.metrics.recordSubmitted(len(p.workChan))
		return nil
	default:
		p.dropped.Add(1)
		p.metrics.recordDropped()
		return ErrQueueFull
	}
}

// Stop closes the queue and waits until the workers have processed every
// queued item, or until ctx is done.
func (p *Pool[T]) Stop(ctx context.Context) error {
	p.lifecycleMu.Lock()
	if !p.started || p.stopped {
		p.lifecycleMu.Unlock()
		return nil
	}
	p.stopped = true
	close(p.workChan)
	p.lifecycleMu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.WrapTransient(ctx.Err(), "Pool", "Stop", "wait for workers")
	}
}

// Stats returns the current pool statistics
func (p *Pool[T]) Stats() PoolStats {
	return PoolStats{
		Workers:    p.workers,
		QueueSize:  p.queueSize,
		QueueDepth: len(p.workChan),
		Submitted:  p.submitted.Load(),
		Processed:  p.processed.Load(),
		Failed:     p.failed.Load(),
		Dropped:    p.dropped.Load(),
	}
}

// PoolStats is a snapshot of the pool counters
type PoolStats struct {
	Workers    int   `json:"workers"`
	QueueSize  int   `json:"queue_size"`
	QueueDepth int   `json:"queue_depth"`
	Submitted  int64 `json:"submitted"`
	Processed  int64 `json:"processed"`
	Failed     int64 `json:"failed"`
	Dropped    int64 `json:"dropped"`
}

func (p *Pool[T]) worker(ctx context.Context) {
	defer p.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case work, ok := <-p.workChan:
			if !ok {
				return
			}

			err := p.processor(ctx, work)
			p.processed.Add(1)
			if err != nil {
				p.failed.Add(1)
			}
			p.metrics.recordProcessed(err, len(p.workChan))
		}
	}
}

// poolMetrics mirrors the pool counters. A nil *poolMetrics records nothing.
type poolMetrics struct {
	queueDepth prometheus.Gauge
	submitted  prometheus.Counter
	processed  prometheus.Counter
	failed     prometheus.Counter
	dropped    prometheus.Counter
}

func newPoolMetrics(registrar metric.MetricsRegistrar, name string) (*poolMetrics, error) {
	labels := prometheus.Labels{"pool": name}
	counter := func(metricName, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "rdfmeta",
			Subsystem:   "worker",
			Name:        metricName,
			Help:        help,
			ConstLabels: labels,
		})
	}

	m := &poolMetrics{
		queueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "rdfmeta",
			Subsystem:   "worker",
			Name:        "queue_depth",
			Help:        "Current worker pool queue depth",
			ConstLabels: labels,
		}),
		submitted: counter("submitted_total", "Total work items submitted"),
		processed: counter("processed_total", "Total work items processed"),
		failed:    counter("failed_total", "Total work items whose processing failed"),
		dropped:   counter("dropped_total", "Total work items dropped on a full queue"),
	}

	if err := registrar.RegisterGauge(name, "worker_queue_depth", m.queueDepth); err != nil {
		return nil, err
	}
	for metricName, c := range map[string]prometheus.Counter{
		"worker_submitted": m.submitted,
		"worker_processed": m.processed,
		"worker_failed":    m.failed,
		"worker_dropped":   m.dropped,
	} {
		if err := registrar.RegisterCounter(name, metricName, c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *poolMetrics) recordSubmitted(depth int) {
	if m != nil {
		m.submitted.Inc()
		m.queueDepth.Set(float64(depth))
	}
}

func (m *poolMetrics) recordDropped() {
	if m != nil {
		m.dropped.Inc()
	}
}

func (m *poolMetrics) recordProcessed(err error, depth int) {
	if m != nil {
		m.processed.Inc()
		if err != nil {
			m.failed.Inc()
		}
		m.queueDepth.Set(float64(depth))
	}
}
