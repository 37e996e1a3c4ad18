// Package agent implements the iterative planning loop: plan with the LLM,
// detect duplicate plans, execute MCP tools, update session memory, and
// synthesize the final response.
package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cucinellclark/bvbrc-copilot/ent"
	"github.com/cucinellclark/bvbrc-copilot/pkg/agent/prompt"
	"github.com/cucinellclark/bvbrc-copilot/pkg/config"
	"github.com/cucinellclark/bvbrc-copilot/pkg/events"
	"github.com/cucinellclark/bvbrc-copilot/pkg/filestore"
	"github.com/cucinellclark/bvbrc-copilot/pkg/llm"
	"github.com/cucinellclark/bvbrc-copilot/pkg/mcp"
	"github.com/cucinellclark/bvbrc-copilot/pkg/memory"
	"github.com/cucinellclark/bvbrc-copilot/pkg/models"
)

// RunInput carries one job into the loop.
type RunInput struct {
	JobID string
	Data  models.JobData

	// Cancelled is polled at every checkpoint; nil means not cancellable.
	Cancelled func() bool

	// Emit publishes one SSE event for the job.
	Emit func(event string, payload map[string]any)
}

func (in *RunInput) cancelled() bool {
	return in.Cancelled != nil && in.Cancelled()
}

func (in *RunInput) emit(event string, payload map[string]any) {
	if in.Emit != nil {
		in.Emit(event, payload)
	}
}

// Orchestrator owns the planning loop. It invokes the executor through its
// interface; the executor never calls back into the planner.
type Orchestrator struct {
	db       *ent.Client
	llm      llm.Client
	registry *mcp.ToolRegistry
	clients  *mcp.ClientFactory
	files    *filestore.Store
	memory   *memory.Service
	policy   *config.ToolPolicy
	cfg      *config.AgentConfig
	prompts  *prompt.Builder
	logger   *slog.Logger
}

// NewOrchestrator wires the loop's collaborators.
func NewOrchestrator(
	db *ent.Client,
	llmClient llm.Client,
	registry *mcp.ToolRegistry,
	clients *mcp.ClientFactory,
	files *filestore.Store,
	mem *memory.Service,
	policy *config.ToolPolicy,
	cfg *config.AgentConfig,
	logger *slog.Logger,
) *Orchestrator {
	return &Orchestrator{
		db:       db,
		llm:      llmClient,
		registry: registry,
		clients:  clients,
		files:    files,
		memory:   mem,
		policy:   policy,
		cfg:      cfg,
		prompts:  prompt.NewBuilder(),
		logger:   logger.With("component", "orchestrator"),
	}
}

// Run executes one agent job end to end and returns its terminal summary.
// models.ErrJobCancelled propagates without retry.
func (o *Orchestrator) Run(ctx context.Context, in *RunInput) (*models.JobResult, error) {
	data := &in.Data
	log := o.logger.With("job_id", in.JobID, "session_id", data.SessionID)

	// 1. Persist the user message before any tool execution so a
	// mid-flight cancel still records intent.
	if data.SaveChat {
		if err := ensureSession(ctx, o.db, data.SessionID, data.UserID); err != nil {
			return nil, err
		}
		if _, err := persistUserMessage(ctx, o.db, data.SessionID, data.Query, data.Images); err != nil {
			return nil, err
		}
	}

	// 2. Gather conversation context.
	var history []prompt.HistoryEntry
	var summary string
	if data.IncludeHistory {
		var err error
		history, summary, err = loadHistory(ctx, o.db, data.SessionID)
		if err != nil {
			log.Warn("Failed to load history, continuing without", "error", err)
		}
	}
	memoryBlock, err := o.memory.Render(ctx, data.SessionID)
	if err != nil {
		log.Warn("Failed to render session memory, continuing without", "error", err)
	}

	// 3. Per-job MCP client and executor.
	client, err := o.clients.CreateClient(ctx, nil, data.AuthToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create MCP client: %w", err)
	}
	defer func() { _ = client.Close() }()
	executor := mcp.NewExecutor(o.registry, client, o.policy, o.cfg, o.files, o.logger)

	cc := &mcp.CallContext{
		JobID:          in.JobID,
		SessionID:      data.SessionID,
		UserID:         data.UserID,
		AuthToken:      data.AuthToken,
		Query:          data.Query,
		Summary:        summary,
		RecentMessages: historyLines(history),
		SessionState:   memoryBlock,
		WorkspaceItems: data.WorkspaceItems,
		Cancelled:      in.Cancelled,
		Emit:           in.Emit,
	}

	if len(data.Images) > 0 {
		in.emit(events.EventImageContext, map[string]any{"count": len(data.Images)})
	}

	// 4. The planning loop.
	maxIter := data.MaxIterations
	if maxIter <= 0 {
		maxIter = o.cfg.MaxIterations
	}

	tr := newTrace()
	var executed []*mcp.Result
	var resultSummaries []string
	finalSource := ""
	iterations := 0

loop:
	for iteration := 1; iteration <= maxIter; iteration++ {
		iterations = iteration
		if in.cancelled() {
			return nil, models.ErrJobCancelled
		}
		in.emit(events.EventProgress, map[string]any{
			"iteration":  iteration,
			"percentage": (iteration - 1) * 100 / maxIter,
		})

		// Plan.
		decision, planErr := o.plan(ctx, data, tr, resultSummaries, memoryBlock, summary, history)
		if planErr != nil {
			if errors.Is(planErr, context.Canceled) || in.cancelled() {
				return nil, models.ErrJobCancelled
			}
			log.Warn("Planner iteration failed", "iteration", iteration, "error", planErr)
			tr.append(models.ToolInvocation{
				Iteration: iteration,
				ActionID:  "PLAN",
				Status:    models.InvocationWarning,
				Error:     planErr.Error(),
				Timestamp: time.Now().UTC(),
			}, nil)
			continue
		}

		in.emit(events.EventToolSelected, map[string]any{
			"iteration":  iteration,
			"tool":       decision.Action,
			"reasoning":  decision.Reasoning,
			"parameters": decision.Parameters,
		})

		if decision.IsFinalize() {
			break
		}

		// Duplicate check for costly tools.
		if o.policy.IsDuplicateTracked(decision.Action) {
			normalized := mcp.NormalizeParams(decision.Parameters)
			if tr.findDuplicate(decision.Action, normalized) {
				in.emit(events.EventDuplicateDetected, map[string]any{
					"iteration": iteration,
					"tool":      decision.Action,
				})
				if hasUsableData(executed) {
					in.emit(events.EventForcedFinalize, map[string]any{
						"iteration": iteration,
						"reason":    "duplicate_with_data",
					})
					break
				}
				tr.appendDuplicateMarker(iteration, decision.Action, decision.Reasoning, normalized)
				continue
			}
		}

		// Execute.
		res, execErr := executor.Execute(ctx, decision.Action, decision.Parameters, cc)
		if errors.Is(execErr, models.ErrJobCancelled) {
			return nil, models.ErrJobCancelled
		}
		if execErr != nil {
			tr.append(models.ToolInvocation{
				Iteration:  iteration,
				ActionID:   decision.Action,
				Reasoning:  decision.Reasoning,
				Parameters: decision.Parameters,
				Status:     models.InvocationFailed,
				Error:      execErr.Error(),
				Timestamp:  time.Now().UTC(),
			}, decision.Parameters)
			in.emit(events.EventToolExecuted, map[string]any{
				"iteration": iteration,
				"tool":      decision.Action,
				"status":    models.InvocationFailed,
				"error":     execErr.Error(),
			})
			if tr.shouldStopAfterFailure(execErr, len(executed)) {
				log.Warn("Stopping loop after unrecoverable failures", "iteration", iteration)
				break loop
			}
			continue
		}

		executed = append(executed, res)
		status := models.InvocationSuccess
		if res.IsError() {
			status = models.InvocationError
		}
		tr.append(models.ToolInvocation{
			Iteration:  iteration,
			ActionID:   res.Tool,
			Reasoning:  decision.Reasoning,
			Parameters: res.ArgumentsExecuted,
			Status:     status,
			ResultMeta: resultMeta(res),
			Error:      fileErrorMessage(res),
			Timestamp:  time.Now().UTC(),
		}, decision.Parameters)

		o.afterExecution(ctx, in, iteration, res, status)
		resultSummaries = append(resultSummaries, describeResult(res))

		if status == models.InvocationSuccess && o.policy.IsFinalize(res.Tool) {
			finalSource = res.Tool
			break
		}
	}

	if in.cancelled() {
		return nil, models.ErrJobCancelled
	}

	// 5. Final response.
	finalText, err := o.finalize(ctx, in, executed, history, finalSource)
	if err != nil {
		if errors.Is(err, models.ErrJobCancelled) {
			return nil, err
		}
		return nil, fmt.Errorf("final response failed: %w", err)
	}

	// 6. Assemble and persist the assistant message.
	msg := o.assembleMessage(finalText, finalSource, executed, tr)
	if data.SaveChat {
		if err := persistAssistantMessage(ctx, o.db, data.SessionID, msg, tr.asMaps()); err != nil {
			return nil, err
		}
	}

	return &models.JobResult{
		Iterations: iterations,
		ToolsUsed:  len(executed),
		MessageID:  msg.MessageID,
	}, nil
}

// plan runs one planner LLM call and parses its decision.
func (o *Orchestrator) plan(
	ctx context.Context,
	data *models.JobData,
	tr *trace,
	resultSummaries []string,
	memoryBlock, summary string,
	history []prompt.HistoryEntry,
) (*models.PlannerDecision, error) {
	messages := o.prompts.BuildPlannerMessages(&prompt.PlanInput{
		SystemPrompt:      data.SystemPrompt,
		Query:             data.Query,
		ToolsText:         o.registry.PromptText(),
		Trace:             tr.entries,
		Duplicates:        tr.duplicates,
		ResultSummaries:   resultSummaries,
		Memory:            memoryBlock,
		Summary:           summary,
		History:           history,
		WorkspaceItems:    data.WorkspaceItems,
		SelectedJobs:      data.SelectedJobs,
		SelectedWorkflows: data.SelectedWorkflows,
		HasImages:         len(data.Images) > 0,
	})

	model := data.Model
	if model == "" {
		model = o.cfg.PlannerModel
	}
	raw, err := o.llm.Chat(ctx, &llm.ChatInput{
		Model:    model,
		Messages: messages,
		JSONMode: true,
	})
	if err != nil {
		return nil, err
	}
	return ParseDecision(raw)
}

// afterExecution handles the success-path side effects of one invocation:
// memory update, SSE events, and the workflow-id session record.
func (o *Orchestrator) afterExecution(ctx context.Context, in *RunInput, iteration int, res *mcp.Result, status string) {
	data := &in.Data

	if status == models.InvocationSuccess {
		record := memory.ExtractRecord(resultValue(res))
		if err := o.memory.RecordInvocation(ctx, data.SessionID, data.UserID, res.Tool, res.ArgumentsExecuted, record); err != nil {
			o.logger.Warn("Failed to update session memory",
				"job_id", in.JobID, "tool", res.Tool, "error", err)
		}
	}

	payload := map[string]any{
		"iteration": iteration,
		"tool":      res.Tool,
		"status":    status,
	}
	if call := resultCall(res); call != nil {
		payload["call"] = call
	}
	if res.Kind == mcp.ResultFile && res.File != nil {
		payload["result"] = map[string]any{
			"type":      models.FileReferenceType,
			"file_id":   res.File.FileID,
			"file_name": res.File.FileName,
			"is_error":  res.File.IsError,
		}
	}
	in.emit(events.EventToolExecuted, payload)

	if res.Kind == mcp.ResultFile && res.File != nil {
		filePayload := map[string]any{
			"iteration":  iteration,
			"session_id": data.SessionID,
			"tool":       res.Tool,
			"file": map[string]any{
				"file_id":   res.File.FileID,
				"file_name": res.File.FileName,
				"is_error":  res.File.IsError,
				"summary":   res.File.Summary,
			},
		}
		if res.File.Workspace != nil {
			filePayload["file"].(map[string]any)["workspace"] = res.File.Workspace
		}
		in.emit(events.EventSessionFileCreated, filePayload)
	}

	if status == models.InvocationSuccess && isWorkflowTool(res.Tool) {
		if id := extractWorkflowID(res); id != "" {
			if err := appendWorkflowID(ctx, o.db, data.SessionID, id); err != nil {
				o.logger.Warn("Failed to record workflow id",
					"job_id", in.JobID, "workflow_id", id, "error", err)
			}
		}
	}
}

// hasUsableData reports whether any non-error materialized result carries
// records, which lets a duplicate plan short-circuit into finalization.
func hasUsableData(executed []*mcp.Result) bool {
	for _, res := range executed {
		if res.Kind == mcp.ResultFile && res.File != nil &&
			!res.File.IsError && res.File.Summary.RecordCount > 0 {
			return true
		}
	}
	return false
}

func resultMeta(res *mcp.Result) models.ResultMeta {
	meta := models.ResultMeta{HasResult: true}
	if res.Kind == mcp.ResultFile && res.File != nil {
		meta.ResultType = res.File.Summary.DataType
	}
	return meta
}

func fileErrorMessage(res *mcp.Result) string {
	if res.Kind == mcp.ResultFile && res.File != nil && res.File.IsError {
		return res.File.ErrorMessage
	}
	return ""
}

func resultValue(res *mcp.Result) any {
	switch res.Kind {
	case mcp.ResultFile:
		return res.File
	case mcp.ResultBypass:
		return res.Raw
	default:
		return nil
	}
}

// describeResult renders a one-line result summary for the next planner
// iteration.
func describeResult(res *mcp.Result) string {
	switch res.Kind {
	case mcp.ResultFile:
		if res.File == nil {
			return res.Tool + ": no result"
		}
		if res.File.IsError {
			return fmt.Sprintf("%s: error (%s)", res.Tool, res.File.ErrorMessage)
		}
		return fmt.Sprintf("%s: %d %s records, fields %v",
			res.Tool, res.File.Summary.RecordCount, res.File.Summary.DataType, res.File.Summary.Fields)
	case mcp.ResultRag:
		return fmt.Sprintf("%s: %d documents retrieved", res.Tool, res.Rag.Count)
	case mcp.ResultBypass:
		if data, err := json.Marshal(res.Raw); err == nil && len(data) < 400 {
			return fmt.Sprintf("%s: %s", res.Tool, data)
		}
		return res.Tool + ": payload returned"
	}
	return res.Tool
}

func historyLines(history []prompt.HistoryEntry) []string {
	out := make([]string, 0, len(history))
	for _, h := range history {
		out = append(out, fmt.Sprintf("[%s] %s", h.Role, h.Content))
	}
	return out
}
