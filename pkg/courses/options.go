package courses

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/coursemap/pkg/logging"
)

// options holds the catalog configuration.
type options struct {
	logger   *zerolog.Logger
	capacity int
}

// Option configures a Catalog.
type Option func(*options)

// defaults returns the default catalog options.
func defaults() *options {
	return &options{
		logger: logging.Default(),
	}
}

// apply applies the given options.
func (o *options) apply(opts ...Option) *options {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets the logger used for load summaries and warnings.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithCapacity pre-sizes the tree arena and lookup index.
func WithCapacity(capacity int) Option {
	return func(o *options) {
		o.capacity = capacity
	}
}
