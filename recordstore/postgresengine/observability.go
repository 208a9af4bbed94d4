package postgresengine

import (
	"context"
	"math"
	"time"

	"github.com/AntonStoeckl/library-catalog-go/recordstore"
)

// logQueryWithDuration logs SQL statements with execution time at debug level if the logger is configured.
func (rs RecordStore) logQueryWithDuration(sqlQuery string, action string, duration time.Duration) {
	if rs.logger != nil {
		rs.logger.Debug(logMsgSQLExecuted+action, logAttrDurationMS, durationToMilliseconds(duration), logAttrQuery, sqlQuery)
	}
}

// logOperation logs operational information at info level if the logger is configured.
func (rs RecordStore) logOperation(action string, args ...any) {
	if rs.logger != nil {
		rs.logger.Info(logMsgOperation+action, args...)
	}
}

func (rs RecordStore) logWarn(msg string, args ...any) {
	if rs.logger != nil {
		rs.logger.Warn(msg, args...)
	}
}

func (rs RecordStore) logError(msg string, err error, args ...any) {
	if rs.logger != nil {
		rs.logger.Error(msg, append([]any{logAttrError, err.Error()}, args...)...)
	}
}

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

func (rs RecordStore) recordError(ctx context.Context, collection recordstore.Collection, operation, errorType string) {
	labels := recordstore.OperationLabels(collection, operation)
	labels[metricLabelErrorType] = errorType
	recordstore.IncrementCounterMetric(ctx, rs.metricsCollector, recordstore.MetricStorageErrors, labels)
}

// durationToMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func durationToMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
