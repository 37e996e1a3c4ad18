package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/cucinellclark/bvbrc-copilot/pkg/config"
	"github.com/cucinellclark/bvbrc-copilot/pkg/filestore"
	"github.com/cucinellclark/bvbrc-copilot/pkg/models"
)

// CallContext carries the trusted per-job context into execution. Values
// here always override planner-supplied parameters.
type CallContext struct {
	JobID     string
	SessionID string
	UserID    string
	AuthToken string

	// Conversation context for context-aware tools.
	Query          string
	Summary        string
	RecentMessages []string
	SessionState   string
	WorkspaceItems []string

	// Cancelled is polled at every labeled checkpoint: before the RPC,
	// after the RPC, before each pagination batch, and on every streamed
	// batch. nil means not cancellable.
	Cancelled func() bool

	// Emit publishes an SSE event for the job (query_progress,
	// query_warning, query_error). nil means events are dropped.
	Emit func(event string, payload map[string]any)
}

func (cc *CallContext) checkpoint() error {
	if cc.Cancelled != nil && cc.Cancelled() {
		return models.ErrJobCancelled
	}
	return nil
}

func (cc *CallContext) emit(event string, payload map[string]any) {
	if cc.Emit != nil {
		cc.Emit(event, payload)
	}
}

// ResultKind tags the variant of an execution result.
type ResultKind string

const (
	// ResultFile: the payload was materialized into a FileReference.
	ResultFile ResultKind = "file"
	// ResultRag: the tool is RAG-classified; documents returned directly.
	ResultRag ResultKind = "rag"
	// ResultBypass: the raw payload is returned without materialization.
	ResultBypass ResultKind = "bypass"
)

// Result is the tagged outcome of a tool execution. Exactly one of File,
// Rag, or Raw is set, matching Kind.
type Result struct {
	Kind ResultKind
	File *models.FileReference
	Rag  *models.RagResult
	Raw  map[string]any

	// Tool is the canonical tool id that executed.
	Tool string
	// ArgumentsExecuted are the exact parameters sent after overrides.
	ArgumentsExecuted map[string]any
}

// IsError reports whether the result carries an error payload.
func (r *Result) IsError() bool {
	return r.Kind == ResultFile && r.File != nil && r.File.IsError
}

// toolCaller is the client surface the executor invokes tools through.
type toolCaller interface {
	CallTool(ctx context.Context, serverKey, toolName string, args map[string]any) (*mcpsdk.CallToolResult, error)
	CallToolStreaming(ctx context.Context, serverKey, toolName string, args map[string]any, onProgress func(*mcpsdk.ProgressNotificationParams)) (*mcpsdk.CallToolResult, error)
}

// Executor runs tool calls against the federated MCP servers: parameter
// overrides, the RPC itself, pagination or batch-stream accumulation, and
// result classification. One Executor is created per job, wrapping that
// job's Client.
type Executor struct {
	registry *ToolRegistry
	client   toolCaller
	policy   *config.ToolPolicy
	agentCfg *config.AgentConfig
	files    *filestore.Store
	logger   *slog.Logger
}

// NewExecutor creates an executor around a per-job client.
func NewExecutor(registry *ToolRegistry, client *Client, policy *config.ToolPolicy, agentCfg *config.AgentConfig, files *filestore.Store, logger *slog.Logger) *Executor {
	return &Executor{
		registry: registry,
		client:   client,
		policy:   policy,
		agentCfg: agentCfg,
		files:    files,
		logger:   logger.With("component", "mcp_executor"),
	}
}

// Execute runs one tool invocation end to end.
func (e *Executor) Execute(ctx context.Context, toolID string, params map[string]any, cc *CallContext) (*Result, error) {
	desc, err := e.registry.Get(toolID)
	if err != nil {
		return nil, err
	}

	args, err := e.applyOverrides(desc, params, cc)
	if err != nil {
		return nil, err
	}

	if err := cc.checkpoint(); err != nil {
		return nil, err
	}

	var page map[string]any
	var batchCount int
	streaming, _ := args["stream"].(bool)
	if streaming && desc.StreamingHint() {
		page, batchCount, err = e.executeStreaming(ctx, desc, args, cc)
	} else {
		page, batchCount, err = e.executePaginated(ctx, desc, args, cc)
	}
	if err != nil {
		return nil, err
	}

	if err := cc.checkpoint(); err != nil {
		return nil, err
	}

	result := &Result{
		Tool:              desc.ID,
		ArgumentsExecuted: args,
	}

	switch {
	case e.policy.IsRag(desc.ID):
		result.Kind = ResultRag
		result.Rag = normalizeRagResult(page, cc.Query, e.agentCfg.RagMaxDocs)
	case e.policy.IsBypass(desc.ID):
		result.Kind = ResultBypass
		result.Raw = stripUIFields(page)
	default:
		ref, err := e.files.SaveResult(ctx, filestore.SaveInput{
			SessionID:       cc.SessionID,
			UserID:          cc.UserID,
			ToolID:          desc.ID,
			Raw:             page,
			QueryParameters: params,
			Call:            e.replayCall(desc, args, batchCount),
			AuthToken:       cc.AuthToken,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to materialize result of %s: %w", desc.ID, err)
		}
		result.Kind = ResultFile
		result.File = ref
	}

	return result, nil
}

// executePaginated performs a non-streaming call and drives cursor
// pagination when the response carries a nextCursorId and the caller did
// not supply its own cursor.
func (e *Executor) executePaginated(ctx context.Context, desc *ToolDescriptor, args map[string]any, cc *CallContext) (map[string]any, int, error) {
	raw, err := e.client.CallTool(ctx, desc.ServerKey, desc.Name, args)
	if err != nil {
		return nil, 0, fmt.Errorf("MCP tool error from %s: %w", desc.ID, err)
	}

	page := decodeResult(raw)
	if raw.IsError {
		page["error"] = true
	}

	_, callerCursor := args["cursorId"]
	if isDataQueryTool(desc) && !callerCursor && page["nextCursorId"] != nil {
		return e.paginate(ctx, desc, args, page, cc)
	}
	return page, 1, nil
}

// replayCall builds the replay envelope attached to materialized results.
// The pagination cursor is internal and never recorded.
func (e *Executor) replayCall(desc *ToolDescriptor, args map[string]any, batchCount int) *models.ReplayCall {
	recorded := make(map[string]any, len(args))
	for k, v := range args {
		if k == "cursorId" {
			continue
		}
		recorded[k] = v
	}

	call := &models.ReplayCall{
		Tool:              desc.ID,
		ArgumentsExecuted: recorded,
		Replayable:        e.policy.IsReplayable(desc.ID),
	}
	if call.Replayable && isDataQueryTool(desc) {
		call.Replay = map[string]any{
			"page_size": e.agentCfg.ReplayDataPageSize,
			"batches":   batchCount,
		}
	}
	return call
}

// decodeResult flattens a CallToolResult into a generic page map. Prefers
// structuredContent; falls back to parsing content[0].text; wraps plain
// text payloads under "text".
func decodeResult(result *mcpsdk.CallToolResult) map[string]any {
	if result == nil {
		return map[string]any{}
	}

	if sc := flattenToMap(result.StructuredContent); len(sc) > 0 {
		return sc
	}

	text := textContent(result)
	if text == "" {
		return map[string]any{}
	}

	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "{") {
		var m map[string]any
		if err := json.Unmarshal([]byte(trimmed), &m); err == nil {
			return m
		}
	}
	if strings.HasPrefix(trimmed, "[") {
		var arr []any
		if err := json.Unmarshal([]byte(trimmed), &arr); err == nil {
			return map[string]any{"results": arr}
		}
	}
	return map[string]any{"text": text}
}

// textContent concatenates all text content items of a result.
func textContent(result *mcpsdk.CallToolResult) string {
	var parts []string
	for _, c := range result.Content {
		if tc, ok := c.(*mcpsdk.TextContent); ok {
			parts = append(parts, tc.Text)
		}
	}
	return strings.Join(parts, "\n")
}

// stripUIFields removes the MCP server's UI hint fields from a bypass
// payload. The orchestrator derives UI metadata from its own policy, not
// from upstream hints.
func stripUIFields(page map[string]any) map[string]any {
	out := make(map[string]any, len(page))
	for k, v := range page {
		if k == "chatSummary" || k == "uiAction" {
			continue
		}
		out[k] = v
	}
	return out
}
