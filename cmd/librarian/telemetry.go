package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/AntonStoeckl/library-catalog-go/catalog/oteladapters"
	"github.com/AntonStoeckl/library-catalog-go/catalog/shell"
)

const instrumentationName = "github.com/AntonStoeckl/library-catalog-go/cmd/librarian"

// telemetry keeps in-process OpenTelemetry providers so --stats can report what one invocation did.
type telemetry struct {
	reader         *sdkmetric.ManualReader
	meterProvider  *sdkmetric.MeterProvider
	tracerProvider *sdktrace.TracerProvider
	metrics        *oteladapters.MetricsCollector
	tracing        *oteladapters.TracingCollector
}

func newTelemetry() *telemetry {
	reader := sdkmetric.NewManualReader()
	meterProvider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	tracerProvider := sdktrace.NewTracerProvider()

	return &telemetry{
		reader:         reader,
		meterProvider:  meterProvider,
		tracerProvider: tracerProvider,
		metrics:        oteladapters.NewMetricsCollector(meterProvider.Meter(instrumentationName)),
		tracing:        oteladapters.NewTracingCollector(tracerProvider.Tracer(instrumentationName)),
	}
}

// printStats writes one line per handler type and status with the number of calls.
func (t *telemetry) printStats(ctx context.Context, w io.Writer) error {
	rm := metricdata.ResourceMetrics{}
	if err := t.reader.Collect(ctx, &rm); err != nil {
		return err
	}

	lines := make([]string, 0)

	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != shell.CommandHandlerCallsMetric && m.Name != shell.QueryHandlerCallsMetric {
				continue
			}

			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}

			for _, dp := range sum.DataPoints {
				handlerType, _ := dp.Attributes.Value(shell.LogAttrCommandType)
				if handlerType.AsString() == "" {
					handlerType, _ = dp.Attributes.Value(shell.LogAttrQueryType)
				}

				status, _ := dp.Attributes.Value(shell.LogAttrStatus)
				lines = append(lines, fmt.Sprintf("%-20s %-12s %d", handlerType.AsString(), status.AsString(), dp.Value))
			}
		}
	}

	slices.Sort(lines)

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}

func (t *telemetry) shutdown(ctx context.Context) error {
	return errors.Join(t.meterProvider.Shutdown(ctx), t.tracerProvider.Shutdown(ctx))
}
