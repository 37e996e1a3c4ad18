package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cucinellclark/bvbrc-copilot/ent"
	"github.com/cucinellclark/bvbrc-copilot/pkg/agent"
	"github.com/cucinellclark/bvbrc-copilot/pkg/models"
)

// SummaryExecutor rolls unsummarized messages into the session summary.
// Idempotent: a retried or duplicate job past the threshold is a no-op.
type SummaryExecutor struct {
	orchestrator *agent.Orchestrator
	logger       *slog.Logger
}

// NewSummaryExecutor creates the summary-class executor.
func NewSummaryExecutor(orchestrator *agent.Orchestrator, logger *slog.Logger) *SummaryExecutor {
	return &SummaryExecutor{
		orchestrator: orchestrator,
		logger:       logger.With("component", "summary_executor"),
	}
}

// Execute implements JobExecutor.
func (e *SummaryExecutor) Execute(ctx context.Context, row *ent.Job, emit func(string, map[string]any), cancelled func() bool) (*models.JobResult, error) {
	data, err := jobDataFromMap(row.Data)
	if err != nil {
		return nil, fmt.Errorf("invalid job data: %w", err)
	}
	if cancelled() {
		return nil, models.ErrJobCancelled
	}
	if err := e.orchestrator.RunSummary(ctx, data.SessionID); err != nil {
		return nil, err
	}
	return &models.JobResult{}, nil
}

// FactsExecutor regenerates the session's authoritative fact block from its
// latest tool invocation. Idempotent on unchanged memory.
type FactsExecutor struct {
	orchestrator *agent.Orchestrator
	logger       *slog.Logger
}

// NewFactsExecutor creates the facts-class executor.
func NewFactsExecutor(orchestrator *agent.Orchestrator, logger *slog.Logger) *FactsExecutor {
	return &FactsExecutor{
		orchestrator: orchestrator,
		logger:       logger.With("component", "facts_executor"),
	}
}

// Execute implements JobExecutor.
func (e *FactsExecutor) Execute(ctx context.Context, row *ent.Job, emit func(string, map[string]any), cancelled func() bool) (*models.JobResult, error) {
	data, err := jobDataFromMap(row.Data)
	if err != nil {
		return nil, fmt.Errorf("invalid job data: %w", err)
	}
	if cancelled() {
		return nil, models.ErrJobCancelled
	}
	if err := e.orchestrator.RunFacts(ctx, data.SessionID, data.UserID); err != nil {
		return nil, err
	}
	return &models.JobResult{}, nil
}
