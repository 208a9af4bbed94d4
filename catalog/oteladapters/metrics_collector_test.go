package oteladapters_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/AntonStoeckl/library-catalog-go/catalog/oteladapters"
	"github.com/AntonStoeckl/library-catalog-go/catalog/shell"
	"github.com/AntonStoeckl/library-catalog-go/recordstore"
)

func Test_MetricsCollector_RecordDuration_RecordsHistogramInSeconds(t *testing.T) {
	// arrange
	reader, collector := givenMetricsCollector()

	// act
	collector.RecordDuration(recordstore.MetricLoadDuration, 1500*time.Millisecond, map[string]string{"collection": "books"})

	// assert
	m := collectMetric(t, reader, recordstore.MetricLoadDuration)
	histogram, ok := m.Data.(metricdata.Histogram[float64])
	require.True(t, ok, "expected a float64 histogram")
	require.Len(t, histogram.DataPoints, 1)
	assert.Equal(t, uint64(1), histogram.DataPoints[0].Count)
	assert.InDelta(t, 1.5, histogram.DataPoints[0].Sum, 0.0001)
	assert.Equal(t, "s", m.Unit)
	assert.Equal(t, "Record store operation duration", m.Description)

	value, found := histogram.DataPoints[0].Attributes.Value("collection")
	require.True(t, found)
	assert.Equal(t, "books", value.AsString())
}

func Test_MetricsCollector_IncrementCounter_SumsPerLabelSet(t *testing.T) {
	// arrange
	reader, collector := givenMetricsCollector()
	labels := shell.BuildCommandLabels("IssueBook", shell.StatusNoMatch)

	// act
	collector.IncrementCounter(shell.CommandHandlerNoMatchMetric, labels)
	collector.IncrementCounterContext(context.Background(), shell.CommandHandlerNoMatchMetric, labels)

	// assert
	m := collectMetric(t, reader, shell.CommandHandlerNoMatchMetric)
	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok, "expected an int64 sum")
	require.Len(t, sum.DataPoints, 1)
	assert.Equal(t, int64(2), sum.DataPoints[0].Value)
	assert.Equal(t, "Catalog handler counter", m.Description)
}

func Test_MetricsCollector_RecordValue_KeepsLastValue(t *testing.T) {
	// arrange
	reader, collector := givenMetricsCollector()

	// act
	collector.RecordValue(recordstore.MetricDocumentCount, 3, nil)
	collector.RecordValueContext(context.Background(), recordstore.MetricDocumentCount, 24, nil)

	// assert
	m := collectMetric(t, reader, recordstore.MetricDocumentCount)
	gauge, ok := m.Data.(metricdata.Gauge[float64])
	require.True(t, ok, "expected a float64 gauge")
	require.Len(t, gauge.DataPoints, 1)
	assert.InDelta(t, 24.0, gauge.DataPoints[0].Value, 0.0001)
}

func Test_MetricsCollector_IsSafeForConcurrentUse(t *testing.T) {
	// arrange
	reader, collector := givenMetricsCollector()
	wg := sync.WaitGroup{}

	// act
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			collector.IncrementCounter(shell.QueryHandlerCallsMetric, nil)
		}()
	}
	wg.Wait()

	// assert
	m := collectMetric(t, reader, shell.QueryHandlerCallsMetric)
	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	assert.Equal(t, int64(20), sum.DataPoints[0].Value)
}

func givenMetricsCollector() (*sdkmetric.ManualReader, *oteladapters.MetricsCollector) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	return reader, oteladapters.NewMetricsCollector(provider.Meter("library-catalog-test"))
}

func collectMetric(t *testing.T, reader *sdkmetric.ManualReader, name string) metricdata.Metrics {
	t.Helper()

	rm := metricdata.ResourceMetrics{}
	require.NoError(t, reader.Collect(context.Background(), &rm))

	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name == name {
				return m
			}
		}
	}

	require.Failf(t, "metric not found", "metric %q was not collected", name)

	return metricdata.Metrics{}
}
