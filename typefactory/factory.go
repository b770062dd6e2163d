package typefactory

import (
	"fmt"
	"log/slog"

	"github.com/pebsconsulting/createphp/entity"
	"github.com/pebsconsulting/createphp/errors"
	"github.com/pebsconsulting/createphp/metadata"
	"github.com/pebsconsulting/createphp/metric"
	"github.com/pebsconsulting/createphp/pkg/cache"
)

// MetricsComponent labels the factory's cache metrics
const MetricsComponent = "typefactory"

// Option configures a Factory
type Option func(*options)

type options struct {
	cacheConfig cache.Config
	registrar   metric.MetricsRegistrar
	logger      *slog.Logger
}

// WithCache sets the cache configuration. The default is cache.DefaultConfig().
func WithCache(config cache.Config) Option {
	return func(o *options) {
		o.cacheConfig = config
	}
}

// WithMetrics exports the cache metrics to registrar
func WithMetrics(registrar metric.MetricsRegistrar) Option {
	return func(o *options) {
		o.registrar = registrar
	}
}

// WithLogger sets the logger. Without it slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Factory resolves type descriptors through a driver and caches the results.
// It is safe for concurrent use.
type Factory struct {
	driver metadata.Driver
	mapper entity.Mapper
	types  cache.Cache[*entity.Type]
	logger *slog.Logger
}

var _ entity.TypeFactory = (*Factory)(nil)

// New creates a factory loading types through driver. mapper may be nil, in
// which case class names are used as given.
func New(driver metadata.Driver, mapper entity.Mapper, opts ...Option) (*Factory, error) {
	if driver == nil {
		return nil, errors.WrapInvalid(errors.ErrMissingConfig, "Factory", "New", "driver is required")
	}

	o := &options{cacheConfig: cache.DefaultConfig()}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	var cacheOpts []cache.Option[*entity.Type]
	if o.registrar != nil {
		cacheOpts = append(cacheOpts, cache.WithMetrics[*entity.Type](o.registrar, MetricsComponent))
	}
	types, err := cache.New[*entity.Type](o.cacheConfig, cacheOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "Factory", "New", "create type cache")
	}

	return &Factory{
		driver: driver,
		mapper: mapper,
		types:  types,
		logger: o.logger,
	}, nil
}

// GetType returns the descriptor of className. It returns an error wrapping
// errors.ErrTypeNotFound when no metadata document exists for the class.
// Driver errors are returned as is and are not cached.
func (f *Factory) GetType(className string) (*entity.Type, error) {
	name, err := f.canonicalName("GetType", className)
	if err != nil {
		return nil, err
	}

	if typ, ok := f.types.Get(name); ok {
		if typ == nil {
			return nil, notFound(name)
		}
		return typ, nil
	}

	typ, err := f.driver.LoadTypeForClass(name, f.mapper, f)
	if err != nil {
		return nil, errors.Wrap(err, "Factory", "GetType", fmt.Sprintf("load %s", name))
	}

	if _, err := f.types.Set(name, typ); err != nil {
		f.logger.Warn("failed to cache rdf type", "class", name, "error", err)
	}

	if typ == nil {
		f.logger.Debug("no rdf metadata for class", "class", name)
		return nil, notFound(name)
	}
	return typ, nil
}

// Invalidate drops the cached result for className, found or not
func (f *Factory) Invalidate(className string) bool {
	name, err := f.canonicalName("Invalidate", className)
	if err != nil {
		return false
	}
	deleted, _ := f.types.Delete(name)
	return deleted
}

// Clear drops every cached result
func (f *Factory) Clear() error {
	return f.types.Clear()
}

// Stats returns the cache statistics, or nil when caching is disabled
func (f *Factory) Stats() *cache.Statistics {
	return f.types.Stats()
}

func (f *Factory) canonicalName(method, className string) (string, error) {
	name := className
	if f.mapper != nil {
		name = f.mapper.CanonicalName(className)
	}
	if name == "" {
		return "", errors.WrapInvalid(errors.ErrInvalidData, "Factory", method, "class name is empty")
	}
	return name, nil
}

func notFound(className string) error {
	return fmt.Errorf("%w: %s", errors.ErrTypeNotFound, className)
}
