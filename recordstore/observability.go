package recordstore

import (
	"context"
	"time"
)

// Logger interface for operational logging, warnings, and error reporting of record store engines.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// MetricsCollector interface for collecting record store performance and operational metrics.
type MetricsCollector interface {
	RecordDuration(metric string, duration time.Duration, labels map[string]string)
	IncrementCounter(metric string, labels map[string]string)
	RecordValue(metric string, value float64, labels map[string]string)
}

// ContextualMetricsCollector extends MetricsCollector with context-aware methods for trace correlation.
// Engines use the context-aware methods when available and fall back to MetricsCollector otherwise.
type ContextualMetricsCollector interface {
	MetricsCollector
	RecordDurationContext(ctx context.Context, metric string, duration time.Duration, labels map[string]string)
	IncrementCounterContext(ctx context.Context, metric string, labels map[string]string)
	RecordValueContext(ctx context.Context, metric string, value float64, labels map[string]string)
}

const (
	// MetricLoadDuration tracks how long loading a whole collection takes.
	MetricLoadDuration = "recordstore_load_duration_seconds"

	// MetricSaveDuration tracks how long saving a whole collection takes.
	MetricSaveDuration = "recordstore_save_duration_seconds"

	// MetricDocumentCount records the number of documents loaded or saved.
	MetricDocumentCount = "recordstore_documents"

	// MetricMalformedCollection counts collections that could not be decoded.
	MetricMalformedCollection = "recordstore_malformed_collection_total"

	// MetricStorageErrors counts failed storage operations.
	MetricStorageErrors = "recordstore_storage_errors_total"

	// LabelCollection is the metric label carrying the collection name.
	LabelCollection = "collection"

	// LabelOperation is the metric label carrying the operation (load or save).
	LabelOperation = "operation"

	// OperationLoad labels load operations.
	OperationLoad = "load"

	// OperationSave labels save operations.
	OperationSave = "save"
)

// RecordDurationMetric records a duration with the collector, using the context-aware method when available.
// A nil collector is ignored.
func RecordDurationMetric(
	ctx context.Context,
	collector MetricsCollector,
	metric string,
	duration time.Duration,
	labels map[string]string,
) {
	if collector == nil {
		return
	}

	if contextualCollector, ok := collector.(ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, metric, duration, labels)
		return
	}

	collector.RecordDuration(metric, duration, labels)
}

// IncrementCounterMetric increments a counter with the collector, using the context-aware method when available.
// A nil collector is ignored.
func IncrementCounterMetric(ctx context.Context, collector MetricsCollector, metric string, labels map[string]string) {
	if collector == nil {
		return
	}

	if contextualCollector, ok := collector.(ContextualMetricsCollector); ok {
		contextualCollector.IncrementCounterContext(ctx, metric, labels)
		return
	}

	collector.IncrementCounter(metric, labels)
}

// RecordValueMetric records a value with the collector, using the context-aware method when available.
// A nil collector is ignored.
func RecordValueMetric(
	ctx context.Context,
	collector MetricsCollector,
	metric string,
	value float64,
	labels map[string]string,
) {
	if collector == nil {
		return
	}

	if contextualCollector, ok := collector.(ContextualMetricsCollector); ok {
		contextualCollector.RecordValueContext(ctx, metric, value, labels)
		return
	}

	collector.RecordValue(metric, value, labels)
}

// OperationLabels builds the standard label set for a collection operation.
func OperationLabels(collection Collection, operation string) map[string]string {
	return map[string]string{
		LabelCollection: string(collection),
		LabelOperation:  operation,
	}
}
