package testdoubles

import (
	"context"
	"log/slog"
	"sync"
)

// LogHandlerSpy is a slog.Handler implementation that captures log records for testing.
type LogHandlerSpy struct {
	records []slog.Record
	mu      *sync.Mutex
}

// NewLogHandlerSpy creates a new LogHandlerSpy.
func NewLogHandlerSpy() *LogHandlerSpy {
	return &LogHandlerSpy{mu: &sync.Mutex{}}
}

// NewLogger returns a *slog.Logger writing into a new LogHandlerSpy.
func NewLogger() (*slog.Logger, *LogHandlerSpy) {
	spy := NewLogHandlerSpy()
	return slog.New(spy), spy
}

// Handle implements slog.Handler interface.
func (h *LogHandlerSpy) Handle(_ context.Context, record slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.records = append(h.records, record.Clone())

	return nil
}

// Enabled implements slog.Handler interface.
func (h *LogHandlerSpy) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

// WithAttrs implements slog.Handler interface.
func (h *LogHandlerSpy) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

// WithGroup implements slog.Handler interface.
func (h *LogHandlerSpy) WithGroup(_ string) slog.Handler {
	return h
}

// Records returns a copy of all captured log records.
func (h *LogHandlerSpy) Records() []slog.Record {
	h.mu.Lock()
	defer h.mu.Unlock()

	records := make([]slog.Record, len(h.records))
	copy(records, h.records)

	return records
}

// HasLog checks if there's a log record with the specified level and message.
func (h *LogHandlerSpy) HasLog(level slog.Level, message string) bool {
	_, found := h.FindLog(level, message)
	return found
}

// FindLog returns the first log record with the specified level and message.
func (h *LogHandlerSpy) FindLog(level slog.Level, message string) (slog.Record, bool) {
	for _, record := range h.Records() {
		if record.Level == level && record.Message == message {
			return record, true
		}
	}

	return slog.Record{}, false
}

// AttrValue returns the value of the named attribute of a log record.
func AttrValue(record slog.Record, key string) (slog.Value, bool) {
	var value slog.Value
	found := false

	record.Attrs(func(attr slog.Attr) bool {
		if attr.Key == key {
			value = attr.Value
			found = true

			return false
		}

		return true
	})

	return value, found
}
