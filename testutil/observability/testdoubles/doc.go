// Package testdoubles provides test doubles (spies) for the observability interfaces
// used by the record store engines and the catalog command and query handlers:
//   - MetricsCollectorSpy: captures metrics recording calls for verification
//   - TracingCollectorSpy: captures started and finished spans
//   - ContextualLoggerSpy: captures context-aware logging calls
//   - LogHandlerSpy: a slog.Handler capturing log records
//
// These test doubles enable testing of observability instrumentation
// without requiring actual telemetry backends.
package testdoubles
