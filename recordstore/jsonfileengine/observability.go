package jsonfileengine

import (
	"context"
	"math"
	"time"

	"github.com/AntonStoeckl/library-catalog-go/recordstore"
)

// logDebug logs file level details at debug level if the logger is configured.
func (rs RecordStore) logDebug(msg string, args ...any) {
	if rs.logger != nil {
		rs.logger.Debug(msg, args...)
	}
}

// logOperation logs operational information at info level if the logger is configured.
func (rs RecordStore) logOperation(action string, args ...any) {
	if rs.logger != nil {
		rs.logger.Info(logMsgOperation+action, args...)
	}
}

// logWarn logs non-critical issues at warn level if the logger is configured.
func (rs RecordStore) logWarn(msg string, args ...any) {
	if rs.logger != nil {
		rs.logger.Warn(msg, args...)
	}
}

// logError logs error information at the error level if the logger is configured.
func (rs RecordStore) logError(msg string, err error, args ...any) {
	if rs.logger != nil {
		allArgs := []any{logAttrError, err.Error()}
		allArgs = append(allArgs, args...)
		rs.logger.Error(msg, allArgs...)
	}
}

// recordSuccess records duration and document count metrics of a finished operation.
func (rs RecordStore) recordSuccess(
	ctx context.Context,
	collection recordstore.Collection,
	operation string,
	durationMetric string,
	duration time.Duration,
	documentCount int,
) {
	labels := recordstore.OperationLabels(collection, operation)
	recordstore.RecordDurationMetric(ctx, rs.metricsCollector, durationMetric, duration, labels)
	recordstore.RecordValueMetric(ctx, rs.metricsCollector, recordstore.MetricDocumentCount, float64(documentCount), labels)
}

// recordError counts a failed operation by error type.
func (rs RecordStore) recordError(ctx context.Context, collection recordstore.Collection, operation, errorType string) {
	labels := recordstore.OperationLabels(collection, operation)
	labels[metricLabelErrorType] = errorType
	recordstore.IncrementCounterMetric(ctx, rs.metricsCollector, recordstore.MetricStorageErrors, labels)
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
