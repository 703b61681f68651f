// SPDX-License-Identifier: MIT

package addability

import "go.uber.org/zap"

// Option configures an Index.
type Option func(*Options)

// Options holds the configurable parts of an Index.
type Options struct {
	// Logger receives Debug records for construction, toggles and refreshes,
	// and a Warn when the selection stops being planar. Defaults to zap.NewNop().
	Logger *zap.Logger

	// Metrics enables the package Prometheus collectors. Default true.
	Metrics bool
}

// DefaultOptions returns a no-op logger with metrics enabled.
func DefaultOptions() Options {
	return Options{
		Logger:  zap.NewNop(),
		Metrics: true,
	}
}

// WithLogger sets the logger. A nil logger has no effect.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics enables or disables metric collection.
func WithMetrics(enabled bool) Option {
	return func(o *Options) {
		o.Metrics = enabled
	}
}
