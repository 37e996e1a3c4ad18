package mcp

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cucinellclark/bvbrc-copilot/pkg/config"
	"github.com/cucinellclark/bvbrc-copilot/pkg/filestore"
)

// fakeCaller scripts CallTool responses page by page and records the
// arguments of every call.
type fakeCaller struct {
	pages  []*mcpsdk.CallToolResult
	errs   []error
	calls  []map[string]any
	stream func(onProgress func(*mcpsdk.ProgressNotificationParams)) (*mcpsdk.CallToolResult, error)
}

func (f *fakeCaller) CallTool(_ context.Context, _, _ string, args map[string]any) (*mcpsdk.CallToolResult, error) {
	f.calls = append(f.calls, args)
	i := len(f.calls) - 1
	if i < len(f.errs) && f.errs[i] != nil {
		return nil, f.errs[i]
	}
	if i < len(f.pages) {
		return f.pages[i], nil
	}
	return structuredPage(map[string]any{"results": []any{}}), nil
}

func (f *fakeCaller) CallToolStreaming(_ context.Context, _, _ string, _ map[string]any, onProgress func(*mcpsdk.ProgressNotificationParams)) (*mcpsdk.CallToolResult, error) {
	return f.stream(onProgress)
}

func structuredPage(m map[string]any) *mcpsdk.CallToolResult {
	return &mcpsdk.CallToolResult{StructuredContent: m}
}

func newPaginationExecutor(t *testing.T, caller toolCaller, fileCfg *config.FileManagerConfig) *Executor {
	t.Helper()
	if fileCfg == nil {
		fileCfg = config.DefaultFileManagerConfig()
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &Executor{
		client: caller,
		files:  filestore.NewStore(fileCfg, nil, nil, logger),
		logger: logger,
	}
}

func dataQueryDescriptor() *ToolDescriptor {
	return &ToolDescriptor{
		ID:        "bvbrc_server.bvbrc_search_data",
		ServerKey: "bvbrc_server",
		Name:      "bvbrc_search_data",
		InputSchema: map[string]any{
			"properties": map[string]any{
				"cursorId": map[string]any{"type": "string"},
				"limit":    map[string]any{"type": "integer"},
			},
		},
	}
}

// recordingContext returns a CallContext whose emitted events accumulate in
// the returned slice.
func recordingContext() (*CallContext, *[]string) {
	var events []string
	cc := &CallContext{Emit: func(event string, _ map[string]any) {
		events = append(events, event)
	}}
	return cc, &events
}

func TestPaginate_AccumulatesPagesThroughCursor(t *testing.T) {
	caller := &fakeCaller{pages: []*mcpsdk.CallToolResult{
		structuredPage(map[string]any{"results": []any{"r3"}, "nextCursorId": "c2", "numFound": 999}),
		structuredPage(map[string]any{"results": []any{"r4"}}),
	}}
	e := newPaginationExecutor(t, caller, nil)
	cc, _ := recordingContext()

	first := map[string]any{
		"results":      []any{"r1", "r2"},
		"numFound":     4,
		"nextCursorId": "c1",
		"source":       "genome",
	}
	merged, batches, err := e.paginate(context.Background(), dataQueryDescriptor(),
		map[string]any{"q": "e. coli"}, first, cc)
	require.NoError(t, err)

	assert.Equal(t, 3, batches)
	assert.Equal(t, []any{"r1", "r2", "r3", "r4"}, merged["results"])
	assert.Equal(t, 4, merged["count"])
	assert.Equal(t, 3, merged["_batchCount"])
	assert.Equal(t, "genome", merged["source"])
	assert.NotContains(t, merged, "partial")

	// The total comes from the first page; later pages never rewrite it.
	assert.Equal(t, 4, merged["numFound"])

	// The internal cursor threads through each fetch.
	require.Len(t, caller.calls, 2)
	assert.Equal(t, "c1", caller.calls[0]["cursorId"])
	assert.Equal(t, "c2", caller.calls[1]["cursorId"])
}

func TestPaginate_StopsAtConfiguredPageCap(t *testing.T) {
	endless := structuredPage(map[string]any{"results": []any{"r"}, "nextCursorId": "again"})
	caller := &fakeCaller{pages: []*mcpsdk.CallToolResult{endless, endless, endless, endless}}
	cfg := config.DefaultFileManagerConfig()
	cfg.MaxAccumulatePages = 2
	e := newPaginationExecutor(t, caller, cfg)
	cc, events := recordingContext()

	first := map[string]any{"results": []any{"r0"}, "numFound": 1000, "nextCursorId": "c1"}
	merged, batches, err := e.paginate(context.Background(), dataQueryDescriptor(),
		map[string]any{}, first, cc)
	require.NoError(t, err)

	assert.Equal(t, 2, batches)
	assert.Len(t, caller.calls, 1)
	assert.Equal(t, 2, merged["_batchCount"])
	assert.Contains(t, *events, "query_warning")
}

func TestMaxBatchesHardCap(t *testing.T) {
	cfg := config.DefaultFileManagerConfig()

	cfg.MaxAccumulatePages = 0
	e := newPaginationExecutor(t, &fakeCaller{}, cfg)
	assert.Equal(t, MaxPaginationBatches, e.maxBatches())

	cfg.MaxAccumulatePages = 500
	e = newPaginationExecutor(t, &fakeCaller{}, cfg)
	assert.Equal(t, MaxPaginationBatches, e.maxBatches())

	cfg.MaxAccumulatePages = 3
	e = newPaginationExecutor(t, &fakeCaller{}, cfg)
	assert.Equal(t, 3, e.maxBatches())
}

func TestPaginate_StopsAtSizeThreshold(t *testing.T) {
	caller := &fakeCaller{}
	cfg := config.DefaultFileManagerConfig()
	cfg.AccumulateSizeThreshold = 1
	e := newPaginationExecutor(t, caller, cfg)
	cc, events := recordingContext()

	first := map[string]any{"results": []any{"a long record"}, "nextCursorId": "c1"}
	_, batches, err := e.paginate(context.Background(), dataQueryDescriptor(),
		map[string]any{}, first, cc)
	require.NoError(t, err)

	assert.Equal(t, 1, batches)
	assert.Empty(t, caller.calls)
	assert.Contains(t, *events, "query_warning")
}

func TestPaginate_BatchFailureYieldsPartialResult(t *testing.T) {
	caller := &fakeCaller{errs: []error{errors.New("connection reset by peer")}}
	e := newPaginationExecutor(t, caller, nil)
	cc, events := recordingContext()

	first := map[string]any{"results": []any{"r1", "r2"}, "numFound": 50, "nextCursorId": "c1"}
	merged, batches, err := e.paginate(context.Background(), dataQueryDescriptor(),
		map[string]any{}, first, cc)
	require.NoError(t, err)

	assert.Equal(t, 1, batches)
	assert.Equal(t, []any{"r1", "r2"}, merged["results"])
	assert.Equal(t, true, merged["partial"])
	assert.Equal(t, 1, merged["batchesReceived"])
	require.Len(t, merged["paginationErrors"], 1)
	assert.Contains(t, merged["paginationErrors"].([]string)[0], "connection reset")
	assert.Contains(t, *events, "query_error")
}

func TestPaginate_EmptyPageEndsLoop(t *testing.T) {
	caller := &fakeCaller{pages: []*mcpsdk.CallToolResult{
		structuredPage(map[string]any{"results": []any{}, "nextCursorId": "c2"}),
	}}
	e := newPaginationExecutor(t, caller, nil)
	cc, _ := recordingContext()

	first := map[string]any{"results": []any{"r1"}, "nextCursorId": "c1"}
	merged, batches, err := e.paginate(context.Background(), dataQueryDescriptor(),
		map[string]any{}, first, cc)
	require.NoError(t, err)

	assert.Equal(t, 1, batches)
	assert.Len(t, caller.calls, 1)
	assert.Equal(t, []any{"r1"}, merged["results"])
	assert.NotContains(t, merged, "partial")
}

func TestPaginate_TSVStripsRepeatedHeader(t *testing.T) {
	caller := &fakeCaller{pages: []*mcpsdk.CallToolResult{
		structuredPage(map[string]any{"tsv": "genome_id\tname\n3.4\tr3\n"}),
	}}
	e := newPaginationExecutor(t, caller, nil)
	cc, _ := recordingContext()

	first := map[string]any{"tsv": "genome_id\tname\n1.2\tr1\n2.3\tr2\n", "numFound": 3, "nextCursorId": "c1"}
	merged, _, err := e.paginate(context.Background(), dataQueryDescriptor(),
		map[string]any{}, first, cc)
	require.NoError(t, err)

	assert.Equal(t, "genome_id\tname\n1.2\tr1\n2.3\tr2\n3.4\tr3", merged["results"])
	assert.Equal(t, 3, merged["count"])
}

func TestPaginate_CallerLimitTruncates(t *testing.T) {
	caller := &fakeCaller{pages: []*mcpsdk.CallToolResult{
		structuredPage(map[string]any{"results": []any{"r3", "r4", "r5"}, "nextCursorId": "c2"}),
	}}
	e := newPaginationExecutor(t, caller, nil)
	cc, _ := recordingContext()

	first := map[string]any{"results": []any{"r1", "r2"}, "numFound": 100, "nextCursorId": "c1"}
	merged, batches, err := e.paginate(context.Background(), dataQueryDescriptor(),
		map[string]any{"limit": 3}, first, cc)
	require.NoError(t, err)

	// The limit is reached mid-stream; no further fetch happens and the
	// merged payload is cut to the requested count.
	assert.Equal(t, 2, batches)
	assert.Len(t, caller.calls, 1)
	assert.Equal(t, []any{"r1", "r2", "r3"}, merged["results"])
	assert.Equal(t, 3, merged["count"])
}

func TestExecutePaginated_CallerCursorSkipsPagination(t *testing.T) {
	caller := &fakeCaller{pages: []*mcpsdk.CallToolResult{
		structuredPage(map[string]any{"results": []any{"r1"}, "nextCursorId": "c9"}),
	}}
	e := newPaginationExecutor(t, caller, nil)
	cc, _ := recordingContext()

	args := map[string]any{"cursorId": "c5"}
	page, batches, err := e.executePaginated(context.Background(), dataQueryDescriptor(), args, cc)
	require.NoError(t, err)

	// A caller driving its own cursor gets exactly one page back, live
	// cursor included.
	assert.Equal(t, 1, batches)
	assert.Len(t, caller.calls, 1)
	assert.Equal(t, "c9", page["nextCursorId"])
	assert.NotContains(t, page, "_batchCount")
}
