package mcp

import (
	"context"
	"testing"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteStreaming_MergesBatchesWithFinalResult(t *testing.T) {
	caller := &fakeCaller{stream: func(onProgress func(*mcpsdk.ProgressNotificationParams)) (*mcpsdk.CallToolResult, error) {
		onProgress(&mcpsdk.ProgressNotificationParams{Message: `{"results":["b1","b2"]}`})
		onProgress(&mcpsdk.ProgressNotificationParams{Message: `{"results":["b3"]}`})
		return structuredPage(map[string]any{"results": []any{"tail"}, "numFound": 10}), nil
	}}
	e := newPaginationExecutor(t, caller, nil)
	cc, _ := recordingContext()

	merged, batches, err := e.executeStreaming(context.Background(), dataQueryDescriptor(),
		map[string]any{"stream": true}, cc)
	require.NoError(t, err)

	assert.Equal(t, 2, batches)
	assert.Equal(t, []any{"b1", "b2", "b3", "tail"}, merged["results"])
	assert.Equal(t, 4, merged["count"])
	assert.Equal(t, 2, merged["_batchCount"])
	assert.Equal(t, 10, merged["numFound"])
}

func TestExecuteStreaming_NumFoundDefaultsToAccumulated(t *testing.T) {
	caller := &fakeCaller{stream: func(onProgress func(*mcpsdk.ProgressNotificationParams)) (*mcpsdk.CallToolResult, error) {
		onProgress(&mcpsdk.ProgressNotificationParams{Message: `{"results":["b1"]}`})
		return structuredPage(map[string]any{}), nil
	}}
	e := newPaginationExecutor(t, caller, nil)
	cc, _ := recordingContext()

	merged, _, err := e.executeStreaming(context.Background(), dataQueryDescriptor(),
		map[string]any{"stream": true}, cc)
	require.NoError(t, err)
	assert.Equal(t, 1, merged["numFound"])
}

func TestExecuteStreaming_ErrorBatchAborts(t *testing.T) {
	caller := &fakeCaller{stream: func(onProgress func(*mcpsdk.ProgressNotificationParams)) (*mcpsdk.CallToolResult, error) {
		onProgress(&mcpsdk.ProgressNotificationParams{Message: `{"results":["b1"]}`})
		onProgress(&mcpsdk.ProgressNotificationParams{Message: `{"isError":true,"message":"cluster worker died"}`})
		return structuredPage(map[string]any{"results": []any{"tail"}}), nil
	}}
	e := newPaginationExecutor(t, caller, nil)
	cc, events := recordingContext()

	_, _, err := e.executeStreaming(context.Background(), dataQueryDescriptor(),
		map[string]any{"stream": true}, cc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cluster worker died")
	assert.Contains(t, *events, "query_error")
}

func TestHandleStreamNotification_BareProgressForwarded(t *testing.T) {
	e := newPaginationExecutor(t, &fakeCaller{}, nil)
	acc := &streamAccumulator{}

	var payloads []map[string]any
	cc := &CallContext{Emit: func(event string, payload map[string]any) {
		require.Equal(t, "query_progress", event)
		payloads = append(payloads, payload)
	}}

	e.handleStreamNotification(acc, dataQueryDescriptor(),
		&mcpsdk.ProgressNotificationParams{Message: "fetching batch 3", Progress: 25, Total: 50}, cc)

	require.Len(t, payloads, 1)
	assert.Equal(t, 25, payloads[0]["current"])
	assert.Equal(t, 50, payloads[0]["total"])
	assert.Equal(t, 50, payloads[0]["percentage"])
	assert.Equal(t, 0, acc.batches)
}

func TestHandleStreamNotification_CancelledCheckpointStopsAccumulation(t *testing.T) {
	e := newPaginationExecutor(t, &fakeCaller{}, nil)
	acc := &streamAccumulator{}
	cc := &CallContext{Cancelled: func() bool { return true }}

	e.handleStreamNotification(acc, dataQueryDescriptor(),
		&mcpsdk.ProgressNotificationParams{Message: `{"results":["b1"]}`}, cc)

	assert.True(t, acc.cancelled)
	assert.Empty(t, acc.results)
}

func TestParseBatchRecord(t *testing.T) {
	batch, ok := parseBatchRecord(`  {"results":["r1"],"batch":2}`)
	require.True(t, ok)
	assert.Equal(t, []any{"r1"}, batch["results"])

	_, ok = parseBatchRecord("fetched 500 of 2000 records")
	assert.False(t, ok)

	_, ok = parseBatchRecord("{not json")
	assert.False(t, ok)
}
