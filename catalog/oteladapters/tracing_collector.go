package oteladapters

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/AntonStoeckl/library-catalog-go/catalog/shell"
)

const (
	attrStatus   = "status"
	descFailed   = "Operation failed"
	descCanceled = "Operation canceled"
	descTimeout  = "Operation timed out"
)

// TracingCollector implements shell.TracingCollector on the OpenTelemetry tracing API.
type TracingCollector struct {
	tracer trace.Tracer
}

// NewTracingCollector creates a new OpenTelemetry tracing collector.
// The tracer should come from your OpenTelemetry TracerProvider.
func NewTracingCollector(tracer trace.Tracer) *TracingCollector {
	return &TracingCollector{tracer: tracer}
}

// StartSpan starts a span carrying the given attributes and returns the context holding it.
func (t *TracingCollector) StartSpan(
	ctx context.Context,
	name string,
	attrs map[string]string,
) (context.Context, shell.SpanContext) {

	spanCtx, span := t.tracer.Start(ctx, name, trace.WithAttributes(toAttributes(attrs)...))

	return spanCtx, &OTelSpanContext{span: span}
}

// FinishSpan adds the final attributes, maps the status and ends the span.
// Spans not created by this collector are ignored.
func (t *TracingCollector) FinishSpan(spanCtx shell.SpanContext, status string, attrs map[string]string) {
	otelSpanCtx, ok := spanCtx.(*OTelSpanContext)
	if !ok {
		return
	}

	otelSpanCtx.span.SetAttributes(toAttributes(attrs)...)
	otelSpanCtx.setSpanStatus(status)
	otelSpanCtx.span.End()
}

var _ shell.TracingCollector = (*TracingCollector)(nil)

// OTelSpanContext implements shell.SpanContext by wrapping an OpenTelemetry span.
type OTelSpanContext struct {
	span trace.Span
}

// SetStatus maps the status to an OpenTelemetry status code.
func (s *OTelSpanContext) SetStatus(status string) {
	s.setSpanStatus(status)
}

// AddAttribute adds an attribute to the span.
func (s *OTelSpanContext) AddAttribute(key, value string) {
	s.span.SetAttributes(attribute.String(key, value))
}

// setSpanStatus treats idempotent and no-match outcomes as successful: they are business results.
func (s *OTelSpanContext) setSpanStatus(status string) {
	switch status {
	case shell.StatusSuccess, shell.StatusIdempotent, shell.StatusNoMatch:
		s.span.SetStatus(codes.Ok, "")
	case shell.StatusError:
		s.span.SetStatus(codes.Error, descFailed)
	case shell.StatusCanceled:
		s.span.SetStatus(codes.Error, descCanceled)
	case shell.StatusTimeout:
		s.span.SetStatus(codes.Error, descTimeout)
	default:
		s.span.SetAttributes(attribute.String(attrStatus, status))
	}
}

var _ shell.SpanContext = (*OTelSpanContext)(nil)
