package engine

import (
	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
	"github.com/AntonStoeckl/library-catalog-go/catalog/shell"
)

// Option defines a functional option for configuring an Engine.
type Option func(*Engine) error

// WithLogger sets the logger handlers report to.
func WithLogger(logger shell.Logger) Option {
	return func(e *Engine) error {
		e.logger = logger
		return nil
	}
}

// WithContextualLogger sets a context-aware logger. It takes precedence over WithLogger.
func WithContextualLogger(logger shell.ContextualLogger) Option {
	return func(e *Engine) error {
		e.contextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for handler metrics.
func WithMetrics(collector shell.MetricsCollector) Option {
	return func(e *Engine) error {
		e.metricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector for handler spans.
func WithTracing(collector shell.TracingCollector) Option {
	return func(e *Engine) error {
		e.tracingCollector = collector
		return nil
	}
}

// WithIDGenerator replaces the random book id generator.
func WithIDGenerator(generate core.IDGenerator) Option {
	return func(e *Engine) error {
		e.generateID = generate
		return nil
	}
}
