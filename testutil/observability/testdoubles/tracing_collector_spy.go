package testdoubles

import (
	"context"
	"maps"
	"sync"

	"github.com/AntonStoeckl/library-catalog-go/catalog/shell"
)

// SpySpanRecord represents a span that was started and possibly finished.
type SpySpanRecord struct {
	Name        string
	StartAttrs  map[string]string
	FinalStatus string
	FinalAttrs  map[string]string
	Finished    bool
}

// SpySpanContext is the SpanContext handed out by TracingCollectorSpy.
type SpySpanContext struct {
	index int
	spy   *TracingCollectorSpy
}

// SetStatus implements the SpanContext interface.
func (s *SpySpanContext) SetStatus(status string) {
	s.spy.mu.Lock()
	defer s.spy.mu.Unlock()

	s.spy.spans[s.index].FinalStatus = status
}

// AddAttribute implements the SpanContext interface.
func (s *SpySpanContext) AddAttribute(key, value string) {
	s.spy.mu.Lock()
	defer s.spy.mu.Unlock()

	s.spy.spans[s.index].FinalAttrs[key] = value
}

// TracingCollectorSpy is a TracingCollector implementation that captures spans for testing.
type TracingCollectorSpy struct {
	spans []SpySpanRecord
	mu    sync.Mutex
}

// NewTracingCollectorSpy creates a new TracingCollectorSpy.
func NewTracingCollectorSpy() *TracingCollectorSpy {
	return &TracingCollectorSpy{}
}

// StartSpan implements the TracingCollector interface.
func (s *TracingCollectorSpy) StartSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, shell.SpanContext) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.spans = append(s.spans, SpySpanRecord{
		Name:       name,
		StartAttrs: maps.Clone(attrs),
		FinalAttrs: make(map[string]string),
	})

	return ctx, &SpySpanContext{index: len(s.spans) - 1, spy: s}
}

// FinishSpan implements the TracingCollector interface.
func (s *TracingCollectorSpy) FinishSpan(spanCtx shell.SpanContext, status string, attrs map[string]string) {
	spySpan, ok := spanCtx.(*SpySpanContext)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record := &s.spans[spySpan.index]
	record.FinalStatus = status
	record.Finished = true

	for k, v := range attrs {
		record.FinalAttrs[k] = v
	}
}

// FindSpan returns the first span with the given name.
func (s *TracingCollectorSpy) FindSpan(name string) (SpySpanRecord, bool) {
	for _, span := range s.Spans() {
		if span.Name == name {
			return span, true
		}
	}

	return SpySpanRecord{}, false
}

// Spans returns a copy of all captured spans.
func (s *TracingCollectorSpy) Spans() []SpySpanRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	spans := make([]SpySpanRecord, len(s.spans))
	for i, span := range s.spans {
		span.StartAttrs = maps.Clone(span.StartAttrs)
		span.FinalAttrs = maps.Clone(span.FinalAttrs)
		spans[i] = span
	}

	return spans
}
