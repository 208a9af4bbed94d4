package testdoubles

import (
	"context"
	"sync"
)

// SpyLogRecord is one captured contextual log call.
type SpyLogRecord struct {
	Level   string
	Message string
	Args    []any
	Ctx     context.Context //nolint:containedctx
}

// ContextualLoggerSpy is a ContextualLogger implementation that captures logging calls for testing.
type ContextualLoggerSpy struct {
	records []SpyLogRecord
	mu      sync.Mutex
}

// NewContextualLoggerSpy creates a new ContextualLoggerSpy.
func NewContextualLoggerSpy() *ContextualLoggerSpy {
	return &ContextualLoggerSpy{}
}

// DebugContext implements the ContextualLogger interface.
func (s *ContextualLoggerSpy) DebugContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "debug", msg, args)
}

// InfoContext implements the ContextualLogger interface.
func (s *ContextualLoggerSpy) InfoContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "info", msg, args)
}

// WarnContext implements the ContextualLogger interface.
func (s *ContextualLoggerSpy) WarnContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "warn", msg, args)
}

// ErrorContext implements the ContextualLogger interface.
func (s *ContextualLoggerSpy) ErrorContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "error", msg, args)
}

// Records returns a copy of all captured log calls.
func (s *ContextualLoggerSpy) Records() []SpyLogRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]SpyLogRecord, len(s.records))
	copy(records, s.records)

	return records
}

// HasLog checks if there's a captured call with the given level ("debug", "info", "warn", "error") and message.
func (s *ContextualLoggerSpy) HasLog(level, message string) bool {
	for _, record := range s.Records() {
		if record.Level == level && record.Message == message {
			return true
		}
	}

	return false
}

func (s *ContextualLoggerSpy) record(ctx context.Context, level, msg string, args []any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, SpyLogRecord{
		Level:   level,
		Message: msg,
		Args:    append([]any(nil), args...),
		Ctx:     ctx,
	})
}
