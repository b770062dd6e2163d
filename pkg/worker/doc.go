// Package worker provides a generic worker pool with a bounded queue.
//
// A fixed number of goroutines take work items from a buffered channel and
// hand them to a processor function. Submit never blocks: when the queue is
// full the item is dropped and ErrQueueFull is returned, so callers that must
// not lose work size the queue for the whole batch.
//
//	pool := worker.NewPool(4, len(classes), func(ctx context.Context, class string) error {
//		_, err := factory.GetType(class)
//		return err
//	})
//	if err := pool.Start(ctx); err != nil {
//		return err
//	}
//	for _, class := range classes {
//		_ = pool.Submit(class)
//	}
//	err := pool.Stop(ctx) // drains the queue
//
// Statistics are always tracked. WithMetrics additionally exports them to a
// metric.MetricsRegistrar.
package worker
