package shell_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-catalog-go/catalog/shell"
	"github.com/AntonStoeckl/library-catalog-go/testutil/observability/testdoubles"
)

func Test_RecordCommandMetrics_CountsOutcomeSpecificMetric(t *testing.T) {
	// arrange
	metricsSpy := testdoubles.NewMetricsCollectorSpy()

	// act
	shell.RecordCommandMetrics(context.Background(), metricsSpy, "IssueBook", shell.StatusNoMatch, time.Millisecond)

	// assert
	assert.True(t, metricsSpy.HasDurationRecord(shell.CommandHandlerDurationMetric))
	assert.True(t, metricsSpy.HasCounterRecordWithLabel(shell.CommandHandlerCallsMetric, shell.LogAttrStatus, shell.StatusNoMatch))
	assert.True(t, metricsSpy.HasCounterRecord(shell.CommandHandlerNoMatchMetric))
	assert.False(t, metricsSpy.HasCounterRecord(shell.CommandHandlerIdempotentMetric))
}

func Test_RecordCommandMetrics_WithNilCollector_DoesNothing(t *testing.T) {
	assert.NotPanics(t, func() {
		shell.RecordCommandMetrics(context.Background(), nil, "IssueBook", shell.StatusSuccess, time.Millisecond)
		shell.RecordQueryMetrics(context.Background(), nil, "ListBooks", shell.StatusSuccess, time.Millisecond)
	})
}

func Test_StartAndFinishSpan(t *testing.T) {
	// arrange
	tracingSpy := testdoubles.NewTracingCollectorSpy()

	// act
	_, span := shell.StartSpan(context.Background(), tracingSpy, shell.SpanNameCommandHandle, shell.LogAttrCommandType, "ReturnBook")
	shell.FinishSpan(tracingSpy, span, shell.StatusError, 2*time.Millisecond, errors.New("disk full"))

	// assert
	record, found := tracingSpy.FindSpan(shell.SpanNameCommandHandle)
	require.True(t, found)
	assert.Equal(t, "ReturnBook", record.StartAttrs[shell.LogAttrCommandType])
	assert.True(t, record.Finished)
	assert.Equal(t, shell.StatusError, record.FinalStatus)
	assert.Equal(t, "disk full", record.FinalAttrs[shell.LogAttrError])
}

func Test_StartSpan_WithoutCollector_ReturnsNilSpan(t *testing.T) {
	ctx := context.Background()

	returnedCtx, span := shell.StartSpan(ctx, nil, shell.SpanNameQueryHandle, shell.LogAttrQueryType, "Counts")

	assert.Equal(t, ctx, returnedCtx)
	assert.Nil(t, span)
}

func Test_StatusFromError(t *testing.T) {
	assert.Equal(t, shell.StatusCanceled, shell.StatusFromError(fmt.Errorf("wrapped: %w", context.Canceled)))
	assert.Equal(t, shell.StatusTimeout, shell.StatusFromError(context.DeadlineExceeded))
	assert.Equal(t, shell.StatusError, shell.StatusFromError(errors.New("other")))
}

func Test_LogInfo_PrefersContextualLogger(t *testing.T) {
	// arrange
	logger, logSpy := testdoubles.NewLogger()
	contextualSpy := testdoubles.NewContextualLoggerSpy()

	// act
	shell.LogInfo(context.Background(), logger, contextualSpy, shell.LogMsgCommandStarted)
	shell.LogInfo(context.Background(), logger, nil, shell.LogMsgCommandCompleted)

	// assert
	assert.True(t, contextualSpy.HasLog("info", shell.LogMsgCommandStarted))
	require.Len(t, logSpy.Records(), 1)
	assert.Equal(t, shell.LogMsgCommandCompleted, logSpy.Records()[0].Message)
}

func Test_HandlerResult_BusinessOutcome(t *testing.T) {
	assert.Equal(t, shell.StatusIdempotent, shell.NewIdempotentResult().BusinessOutcome())
	assert.Equal(t, shell.StatusNoMatch, shell.NewNoMatchResult().BusinessOutcome())
	assert.Equal(t, shell.StatusSuccess, shell.NewSuccessResult(true, false).BusinessOutcome())
	assert.Equal(t, []string{"year"}, shell.NewSuccessResult(true, false).WithSkippedFields([]string{"year"}).SkippedFields)
}
