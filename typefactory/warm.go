package typefactory

import (
	"context"
	stderrors "errors"
	"sync"

	"github.com/pebsconsulting/createphp/entity"
	"github.com/pebsconsulting/createphp/errors"
	"github.com/pebsconsulting/createphp/pkg/worker"
)

var errNotWarmed = errors.WrapTransient(stderrors.New("class was not resolved"), "Factory", "Warm", "resolve class")

// WarmResult is the outcome of resolving one class during Warm
type WarmResult struct {
	Class string
	Type  *entity.Type
	Err   error
}

// Warm resolves classNames on up to workers goroutines, filling the cache.
// Results are returned in the order of classNames. The error is non-nil only
// when the pool could not run; per-class failures are in the results.
func (f *Factory) Warm(ctx context.Context, classNames []string, workers int) ([]WarmResult, error) {
	results := make([]WarmResult, len(classNames))
	if len(classNames) == 0 {
		return results, nil
	}

	done := make([]bool, len(classNames))
	var mu sync.Mutex
	pool, err := worker.NewPool(workers, len(classNames), func(_ context.Context, i int) error {
		typ, err := f.GetType(classNames[i])
		mu.Lock()
		results[i] = WarmResult{Class: classNames[i], Type: typ, Err: err}
		done[i] = true
		mu.Unlock()
		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "Factory", "Warm", "create worker pool")
	}

	if err := pool.Start(ctx); err != nil {
		return nil, errors.Wrap(err, "Factory", "Warm", "start worker pool")
	}
	for i := range classNames {
		if err := pool.Submit(i); err != nil {
			_ = pool.Stop(ctx)
			return nil, errors.Wrap(err, "Factory", "Warm", "submit "+classNames[i])
		}
	}
	if err := pool.Stop(ctx); err != nil {
		return nil, err
	}

	mu.Lock()
	for i := range results {
		if done[i] {
			continue
		}
		err := ctx.Err()
		if err == nil {
			err = errNotWarmed
		}
		results[i] = WarmResult{Class: classNames[i], Err: err}
	}
	mu.Unlock()

	stats := pool.Stats()
	f.logger.Debug("warmed type cache",
		"classes", len(classNames),
		"failed", stats.Failed,
		"workers", stats.Workers)
	return results, nil
}
