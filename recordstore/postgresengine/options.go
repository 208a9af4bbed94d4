package postgresengine

import (
	"github.com/AntonStoeckl/library-catalog-go/recordstore"
)

// Option defines a functional option for configuring RecordStore.
type Option func(*RecordStore) error

// WithTableName sets the table name for the RecordStore.
func WithTableName(tableName string) Option {
	return func(rs *RecordStore) error {
		if tableName == "" {
			return recordstore.ErrEmptyTableName
		}

		rs.tableName = tableName

		return nil
	}
}

// WithLogger sets the logger for the RecordStore.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: SQL statements with execution timing (development use)
// Info level: collections loaded or saved with document counts (production-safe)
// Warn level: malformed rows treated as empty, failed row cleanup
// Error level: Critical failures that cause operation failures.
func WithLogger(logger recordstore.Logger) Option {
	return func(rs *RecordStore) error {
		rs.logger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the RecordStore.
func WithMetrics(collector recordstore.MetricsCollector) Option {
	return func(rs *RecordStore) error {
		rs.metricsCollector = collector
		return nil
	}
}

// WithStrictDecoding makes Load return recordstore.ErrMalformedCollection when a stored
// document array cannot be decoded.
func WithStrictDecoding() Option {
	return func(rs *RecordStore) error {
		rs.strictDecoding = true
		return nil
	}
}
