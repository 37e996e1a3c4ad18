package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cucinellclark/bvbrc-copilot/ent"
	"github.com/cucinellclark/bvbrc-copilot/ent/chatmessage"
	"github.com/cucinellclark/bvbrc-copilot/ent/chatsession"
	"github.com/cucinellclark/bvbrc-copilot/pkg/agent/prompt"
	"github.com/cucinellclark/bvbrc-copilot/pkg/llm"
)

// RunSummary rolls messages past the last summarized point into the
// session's rolling conversation summary. Safe to run repeatedly: the
// summarized count advances only after a successful LLM call, and
// re-running over the same window produces the same summary.
func (o *Orchestrator) RunSummary(ctx context.Context, sessionID string) error {
	session, err := o.db.ChatSession.Query().
		Where(chatsession.ID(sessionID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}

	if session.MessageCount < o.cfg.MinMessagesForSummary {
		return nil
	}
	pending := session.MessageCount - session.SummarizedCount
	if pending <= 0 {
		return nil
	}

	rows, err := o.db.ChatMessage.Query().
		Where(chatmessage.SessionID(sessionID)).
		Order(ent.Asc(chatmessage.FieldTimestamp)).
		Offset(session.SummarizedCount).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load unsummarized messages: %w", err)
	}
	if len(rows) == 0 {
		return nil
	}

	turns := make([]prompt.HistoryEntry, 0, len(rows))
	for _, row := range rows {
		turns = append(turns, prompt.HistoryEntry{
			Role:    string(row.Role),
			Content: row.Content,
		})
	}

	summary, err := o.llm.Chat(ctx, &llm.ChatInput{
		Model:    o.cfg.ChatModel,
		Messages: o.prompts.BuildSummaryMessages(session.Summary, turns),
	})
	if err != nil {
		return fmt.Errorf("summary generation failed: %w", err)
	}

	err = o.db.ChatSession.UpdateOneID(sessionID).
		SetSummary(summary).
		SetSummarizedCount(session.SummarizedCount + len(rows)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to store summary: %w", err)
	}

	o.logger.Info("Session summary updated",
		"session_id", sessionID, "messages_rolled", len(rows))
	return nil
}

// RunFacts regenerates the session's authoritative fact block from the most
// recent tool invocation. Replaces heuristic extraction with LLM output;
// no-op when the session has no memory or no recorded invocation yet.
func (o *Orchestrator) RunFacts(ctx context.Context, sessionID, userID string) error {
	mem, err := o.memory.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if mem == nil || len(mem.LastTool) == 0 {
		return nil
	}

	toolID, _ := mem.LastTool["tool"].(string)
	if toolID == "" {
		return nil
	}
	parameters, _ := mem.LastTool["parameters"].(map[string]any)
	record, _ := mem.ToolFacts[toolID].(map[string]any)

	query, err := o.latestUserQuery(ctx, sessionID)
	if err != nil {
		return err
	}

	raw, err := o.llm.Chat(ctx, &llm.ChatInput{
		Model:    o.cfg.PlannerModel,
		Messages: o.prompts.BuildFactsMessages(query, toolID, parameters, record),
		JSONMode: true,
	})
	if err != nil {
		return fmt.Errorf("facts generation failed: %w", err)
	}

	var facts map[string]any
	if err := json.Unmarshal([]byte(extractJSONObject(raw)), &facts); err != nil {
		return fmt.Errorf("facts output is not a JSON object: %w", err)
	}
	if len(facts) == 0 {
		return nil
	}

	if err := o.memory.SetAuthoritativeFacts(ctx, sessionID, userID, facts); err != nil {
		return err
	}
	o.logger.Info("Authoritative facts updated",
		"session_id", sessionID, "fact_count", len(facts))
	return nil
}

func (o *Orchestrator) latestUserQuery(ctx context.Context, sessionID string) (string, error) {
	row, err := o.db.ChatMessage.Query().
		Where(
			chatmessage.SessionID(sessionID),
			chatmessage.RoleEQ(chatmessage.RoleUser),
		).
		Order(ent.Desc(chatmessage.FieldTimestamp)).
		First(ctx)
	if ent.IsNotFound(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to load latest user message: %w", err)
	}
	return row.Content, nil
}
