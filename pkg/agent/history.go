package agent

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/cucinellclark/bvbrc-copilot/ent"
	"github.com/cucinellclark/bvbrc-copilot/ent/chatmessage"
	"github.com/cucinellclark/bvbrc-copilot/ent/chatsession"
	"github.com/cucinellclark/bvbrc-copilot/pkg/agent/prompt"
	"github.com/cucinellclark/bvbrc-copilot/pkg/models"
)

// historyLimit bounds the prior turns injected into prompts.
const historyLimit = 10

// ensureSession creates the chat session row if it does not exist yet.
func ensureSession(ctx context.Context, db *ent.Client, sessionID, userID string) error {
	exists, err := db.ChatSession.Query().
		Where(chatsession.ID(sessionID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check session: %w", err)
	}
	if exists {
		return nil
	}
	err = db.ChatSession.Create().
		SetID(sessionID).
		SetUserID(userID).
		Exec(ctx)
	if err != nil && !ent.IsConstraintError(err) {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// persistUserMessage stores the user's query before any tool execution so a
// mid-flight cancel still records intent.
func persistUserMessage(ctx context.Context, db *ent.Client, sessionID, content string, attachments []string) (string, error) {
	id := uuid.NewString()
	create := db.ChatMessage.Create().
		SetID(id).
		SetSessionID(sessionID).
		SetRole(chatmessage.RoleUser).
		SetContent(content).
		SetTimestamp(time.Now().UTC())
	if len(attachments) > 0 {
		create.SetAttachments(attachments)
	}
	if err := create.Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to persist user message: %w", err)
	}

	err := db.ChatSession.UpdateOneID(sessionID).
		AddMessageCount(1).
		Exec(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to bump message count: %w", err)
	}
	return id, nil
}

// persistAssistantMessage stores the assembled assistant message with its
// full trace and UI metadata.
func persistAssistantMessage(ctx context.Context, db *ent.Client, sessionID string, msg *models.ChatMessage, traceMaps []map[string]any) error {
	create := db.ChatMessage.Create().
		SetID(msg.MessageID).
		SetSessionID(sessionID).
		SetRole(chatmessage.RoleAssistant).
		SetContent(msg.Content).
		SetTimestamp(msg.Timestamp).
		SetIsWorkflow(msg.IsWorkflow).
		SetIsWorkspaceBrowse(msg.IsWorkspaceBrowse).
		SetIsJobsBrowse(msg.IsJobsBrowse)
	if msg.ToolCall != nil {
		create.SetToolCall(replayCallMap(msg.ToolCall))
	}
	if msg.UIToolCall != nil {
		create.SetUIToolCall(replayCallMap(msg.UIToolCall))
	}
	if msg.SourceTool != "" {
		create.SetSourceTool(msg.SourceTool)
	}
	if msg.UISourceTool != "" {
		create.SetUISourceTool(msg.UISourceTool)
	}
	if msg.WorkflowID != "" {
		create.SetWorkflowID(msg.WorkflowID)
	}
	if msg.ChatSummary != "" {
		create.SetChatSummary(msg.ChatSummary)
	}
	if msg.UIAction != "" {
		create.SetUIAction(msg.UIAction)
	}
	if len(msg.Documents) > 0 {
		create.SetDocuments(documentMaps(msg.Documents))
	}
	if len(traceMaps) > 0 {
		create.SetAgentTrace(traceMaps)
	}
	if err := create.Exec(ctx); err != nil {
		return fmt.Errorf("failed to persist assistant message: %w", err)
	}

	err := db.ChatSession.UpdateOneID(sessionID).
		AddMessageCount(1).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to bump message count: %w", err)
	}
	return nil
}

// loadHistory returns the most recent turns oldest-first, plus the stored
// conversation summary.
func loadHistory(ctx context.Context, db *ent.Client, sessionID string) ([]prompt.HistoryEntry, string, error) {
	session, err := db.ChatSession.Query().
		Where(chatsession.ID(sessionID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to load session: %w", err)
	}

	rows, err := db.ChatMessage.Query().
		Where(chatmessage.SessionID(sessionID)).
		Order(ent.Desc(chatmessage.FieldTimestamp)).
		Limit(historyLimit).
		All(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load history: %w", err)
	}

	history := make([]prompt.HistoryEntry, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		history = append(history, prompt.HistoryEntry{
			Role:    string(rows[i].Role),
			Content: rows[i].Content,
		})
	}
	return history, session.Summary, nil
}

// appendWorkflowID records a workflow id on the session, preserving
// insertion order and deduplicating.
func appendWorkflowID(ctx context.Context, db *ent.Client, sessionID, workflowID string) error {
	session, err := db.ChatSession.Query().
		Where(chatsession.ID(sessionID)).
		Only(ctx)
	if err != nil {
		return fmt.Errorf("failed to load session for workflow id: %w", err)
	}
	if slices.Contains(session.WorkflowIds, workflowID) {
		return nil
	}
	ids := append(session.WorkflowIds, workflowID)
	err = db.ChatSession.UpdateOneID(sessionID).
		SetWorkflowIds(ids).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to append workflow id: %w", err)
	}
	return nil
}

func replayCallMap(call *models.ReplayCall) map[string]any {
	m := map[string]any{
		"tool":               call.Tool,
		"arguments_executed": call.ArgumentsExecuted,
		"replayable":         call.Replayable,
	}
	if call.Replay != nil {
		m["replay"] = call.Replay
	}
	return m
}

func documentMaps(docs []models.RagDocument) []map[string]any {
	out := make([]map[string]any, 0, len(docs))
	for _, d := range docs {
		m := map[string]any{"content": d.Content}
		if d.Title != "" {
			m["title"] = d.Title
		}
		if d.Source != "" {
			m["source"] = d.Source
		}
		if d.Score != 0 {
			m["score"] = d.Score
		}
		if len(d.Metadata) > 0 {
			m["metadata"] = d.Metadata
		}
		out = append(out, m)
	}
	return out
}
