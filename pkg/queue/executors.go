package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cucinellclark/bvbrc-copilot/ent"
	"github.com/cucinellclark/bvbrc-copilot/ent/chatsession"
	"github.com/cucinellclark/bvbrc-copilot/pkg/agent"
	"github.com/cucinellclark/bvbrc-copilot/pkg/config"
	"github.com/cucinellclark/bvbrc-copilot/pkg/events"
	"github.com/cucinellclark/bvbrc-copilot/pkg/models"
)

// AgentExecutor runs agent-class jobs through the planning loop and
// schedules follow-up maintenance work on the session.
type AgentExecutor struct {
	orchestrator *agent.Orchestrator
	client       *ent.Client
	service      *Service
	agentCfg     *config.AgentConfig
	logger       *slog.Logger
}

// NewAgentExecutor creates the agent-class executor. service may be nil in
// tests; maintenance enqueueing is then skipped.
func NewAgentExecutor(orchestrator *agent.Orchestrator, client *ent.Client, service *Service, agentCfg *config.AgentConfig, logger *slog.Logger) *AgentExecutor {
	return &AgentExecutor{
		orchestrator: orchestrator,
		client:       client,
		service:      service,
		agentCfg:     agentCfg,
		logger:       logger.With("component", "agent_executor"),
	}
}

// Execute implements JobExecutor.
func (e *AgentExecutor) Execute(ctx context.Context, row *ent.Job, emit func(string, map[string]any), cancelled func() bool) (*models.JobResult, error) {
	data, err := jobDataFromMap(row.Data)
	if err != nil {
		return nil, fmt.Errorf("invalid job data: %w", err)
	}

	result, err := e.orchestrator.Run(ctx, &agent.RunInput{
		JobID:     row.ID,
		Data:      *data,
		Cancelled: cancelled,
		Emit:      e.progressTap(row.ID, data, emit),
	})
	if err != nil {
		return nil, err
	}

	e.scheduleMaintenance(ctx, data, result)
	return result, nil
}

// progressTap forwards every event unchanged while mirroring progress and
// tool-selection events into the job row, so the status endpoint reflects
// live progress without subscribing to the stream.
func (e *AgentExecutor) progressTap(jobID string, data *models.JobData, emit func(string, map[string]any)) func(string, map[string]any) {
	maxIter := data.MaxIterations
	if maxIter <= 0 {
		maxIter = e.agentCfg.MaxIterations
	}
	progress := models.JobProgress{MaxIterations: maxIter}

	return func(event string, payload map[string]any) {
		emit(event, payload)

		dirty := false
		switch event {
		case events.EventProgress:
			if pct, ok := asInt(payload["percentage"]); ok {
				progress.Percentage = pct
				dirty = true
			}
			if iter, ok := asInt(payload["iteration"]); ok {
				progress.CurrentIteration = iter
				dirty = true
			}
		case events.EventToolSelected:
			if tool, ok := payload["tool"].(string); ok {
				progress.CurrentTool = tool
				dirty = true
			}
		}
		if !dirty {
			return
		}

		// Best-effort on a background context: progress writes must not
		// fail the job, and the job context may be near its deadline.
		err := e.client.Job.UpdateOneID(jobID).
			SetProgress(map[string]any{
				"percentage":        progress.Percentage,
				"current_iteration": progress.CurrentIteration,
				"max_iterations":    progress.MaxIterations,
				"current_tool":      progress.CurrentTool,
			}).
			Exec(context.Background())
		if err != nil {
			e.logger.Debug("Progress write failed", "job_id", jobID, "error", err)
		}
	}
}

// scheduleMaintenance enqueues background summary and facts jobs after a
// successful run. Summary fires once the session passes the message-count
// floor and enough new messages accumulated since the last roll-up; facts
// fire whenever the run used at least one tool.
func (e *AgentExecutor) scheduleMaintenance(ctx context.Context, data *models.JobData, result *models.JobResult) {
	if e.service == nil || !data.SaveChat {
		return
	}

	background := &models.JobData{
		SessionID: data.SessionID,
		UserID:    data.UserID,
	}

	if e.summaryDue(ctx, data.SessionID) {
		if _, err := e.service.EnqueueBackground(ctx, config.QueueSummary, background); err != nil {
			e.logger.Warn("Failed to enqueue summary job", "session_id", data.SessionID, "error", err)
		}
	}

	if result != nil && result.ToolsUsed > 0 {
		if _, err := e.service.EnqueueBackground(ctx, config.QueueFacts, background); err != nil {
			e.logger.Warn("Failed to enqueue facts job", "session_id", data.SessionID, "error", err)
		}
	}
}

func (e *AgentExecutor) summaryDue(ctx context.Context, sessionID string) bool {
	session, err := e.client.ChatSession.Query().
		Where(chatsession.ID(sessionID)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			e.logger.Warn("Failed to check summary threshold", "session_id", sessionID, "error", err)
		}
		return false
	}
	if session.MessageCount < e.agentCfg.MinMessagesForSummary {
		return false
	}
	return session.MessageCount-session.SummarizedCount >= e.agentCfg.SummaryTriggerEveryN
}

// RagExecutor runs rag-class jobs: one retrieval call plus synthesis,
// bypassing the planning loop.
type RagExecutor struct {
	orchestrator *agent.Orchestrator
	logger       *slog.Logger
}

// NewRagExecutor creates the rag-class executor.
func NewRagExecutor(orchestrator *agent.Orchestrator, logger *slog.Logger) *RagExecutor {
	return &RagExecutor{
		orchestrator: orchestrator,
		logger:       logger.With("component", "rag_executor"),
	}
}

// Execute implements JobExecutor.
func (e *RagExecutor) Execute(ctx context.Context, row *ent.Job, emit func(string, map[string]any), cancelled func() bool) (*models.JobResult, error) {
	data, err := jobDataFromMap(row.Data)
	if err != nil {
		return nil, fmt.Errorf("invalid job data: %w", err)
	}
	return e.orchestrator.RunRag(ctx, &agent.RunInput{
		JobID:     row.ID,
		Data:      *data,
		Cancelled: cancelled,
		Emit:      emit,
	})
}

func asInt(v any) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case float64:
		return int(t), true
	}
	return 0, false
}
