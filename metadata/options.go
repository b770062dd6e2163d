package metadata

import (
	"log/slog"

	"github.com/go-git/go-billy/v5"

	"github.com/pebsconsulting/createphp/metric"
)

// Option configures a Locator or an XMLDriver
type Option func(*options)

type options struct {
	fs      billy.Filesystem
	logger  *slog.Logger
	metrics *metric.Metrics
}

// WithFilesystem sets the filesystem metadata documents are read from.
// Without it the host filesystem is used.
func WithFilesystem(fs billy.Filesystem) Option {
	return func(o *options) {
		if fs != nil {
			o.fs = fs
		}
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

// WithMetrics enables resolution metrics. Ignored by Locator.
func WithMetrics(m *metric.Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

func applyOptions(opts ...Option) *options {
	o := &options{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}
