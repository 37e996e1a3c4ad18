package agent

import (
	"context"
	"fmt"

	"github.com/cucinellclark/bvbrc-copilot/pkg/agent/prompt"
	"github.com/cucinellclark/bvbrc-copilot/pkg/mcp"
	"github.com/cucinellclark/bvbrc-copilot/pkg/models"
)

// RunRag executes one retrieval job: a single call to the configured RAG
// tool followed by final-response synthesis over the returned documents.
// No planning loop is involved.
func (o *Orchestrator) RunRag(ctx context.Context, in *RunInput) (*models.JobResult, error) {
	data := &in.Data

	if data.SaveChat {
		if err := ensureSession(ctx, o.db, data.SessionID, data.UserID); err != nil {
			return nil, err
		}
		if _, err := persistUserMessage(ctx, o.db, data.SessionID, data.Query, nil); err != nil {
			return nil, err
		}
	}

	toolID, err := o.ragToolID()
	if err != nil {
		return nil, err
	}

	client, err := o.clients.CreateClient(ctx, nil, data.AuthToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create MCP client: %w", err)
	}
	defer func() { _ = client.Close() }()
	executor := mcp.NewExecutor(o.registry, client, o.policy, o.cfg, o.files, o.logger)

	cc := &mcp.CallContext{
		JobID:     in.JobID,
		SessionID: data.SessionID,
		UserID:    data.UserID,
		AuthToken: data.AuthToken,
		Query:     data.Query,
		Cancelled: in.Cancelled,
		Emit:      in.Emit,
	}

	res, err := executor.Execute(ctx, toolID, map[string]any{"query": data.Query}, cc)
	if err != nil {
		return nil, err
	}
	executed := []*mcp.Result{res}

	var history []prompt.HistoryEntry
	if data.IncludeHistory {
		history, _, _ = loadHistory(ctx, o.db, data.SessionID)
	}
	finalText, err := o.finalize(ctx, in, executed, history, toolID)
	if err != nil {
		return nil, err
	}

	msg := o.assembleMessage(finalText, toolID, executed, newTrace())
	if data.SaveChat {
		if err := persistAssistantMessage(ctx, o.db, data.SessionID, msg, nil); err != nil {
			return nil, err
		}
	}

	return &models.JobResult{
		Iterations: 1,
		ToolsUsed:  1,
		MessageID:  msg.MessageID,
	}, nil
}

// ragToolID resolves the first configured RAG tool present in the registry.
func (o *Orchestrator) ragToolID() (string, error) {
	for _, toolID := range o.policy.RagTools {
		if desc, err := o.registry.Get(toolID); err == nil {
			return desc.ID, nil
		}
	}
	return "", fmt.Errorf("no configured RAG tool is available")
}
