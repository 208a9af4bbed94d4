package jsonfileengine

import (
	"errors"
	"io/fs"

	"github.com/AntonStoeckl/library-catalog-go/recordstore"
)

// ErrInvalidFileMode is returned when a file mode without owner read/write permission is supplied.
var ErrInvalidFileMode = errors.New("file mode must allow the owner to read and write")

// Option defines a functional option for configuring RecordStore.
type Option func(*RecordStore) error

// WithLogger sets the logger for the RecordStore.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: file paths, byte counts, and durations of every load and save
// Info level: collections loaded or saved with document counts
// Warn level: malformed collection files that were treated as empty
// Error level: failures that cause the operation to fail.
func WithLogger(logger recordstore.Logger) Option {
	return func(rs *RecordStore) error {
		rs.logger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the RecordStore.
// The collector will receive load/save durations, document counts, malformed-file counts, and storage errors.
func WithMetrics(collector recordstore.MetricsCollector) Option {
	return func(rs *RecordStore) error {
		rs.metricsCollector = collector
		return nil
	}
}

// WithStrictDecoding makes Load return recordstore.ErrMalformedCollection for undecodable files
// instead of silently treating them as empty collections.
func WithStrictDecoding() Option {
	return func(rs *RecordStore) error {
		rs.strictDecoding = true
		return nil
	}
}

// WithFileMode sets the permission bits of written collection files.
func WithFileMode(mode fs.FileMode) Option {
	return func(rs *RecordStore) error {
		if mode&0o600 != 0o600 {
			return ErrInvalidFileMode
		}

		rs.fileMode = mode

		return nil
	}
}
