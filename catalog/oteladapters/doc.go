// Package oteladapters provides OpenTelemetry implementations of the observability interfaces
// used by the record store engines and the catalog handlers.
//
//   - MetricsCollector maps durations to histograms, counters to counters and values to gauges.
//   - TracingCollector opens one span per handled command or query.
//   - SlogBridgeLogger and OTelLogger are contextual loggers; the slog bridge adds trace correlation.
package oteladapters
