package memory

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/cucinellclark/bvbrc-copilot/ent"
	"github.com/cucinellclark/bvbrc-copilot/ent/sessionmemory"
	"github.com/cucinellclark/bvbrc-copilot/pkg/models"
)

// Service persists per-session memory. Updates are last-writer-wins per
// session; concurrent jobs on one session are de-facto serialized by the
// client UI.
type Service struct {
	db     *ent.Client
	logger *slog.Logger
}

// NewService creates a memory service.
func NewService(db *ent.Client, logger *slog.Logger) *Service {
	return &Service{
		db:     db,
		logger: logger.With("component", "memory"),
	}
}

// Get returns the memory row for a session, or nil when none exists yet.
func (s *Service) Get(ctx context.Context, sessionID string) (*ent.SessionMemory, error) {
	mem, err := s.db.SessionMemory.Query().
		Where(sessionmemory.SessionID(sessionID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session memory: %w", err)
	}
	return mem, nil
}

// RecordInvocation updates memory after a successful tool invocation:
// extracts facts from the result record, merges them under the
// authoritative-facts rule, promotes focus, and sets last_tool.
func (s *Service) RecordInvocation(ctx context.Context, sessionID, userID, toolID string, parameters map[string]any, record map[string]any) error {
	mem, err := s.Get(ctx, sessionID)
	if err != nil {
		return err
	}

	var existingFacts, factsMeta, toolFacts map[string]any
	if mem != nil {
		existingFacts = mem.Facts
		factsMeta = mem.FactsMeta
		toolFacts = mem.ToolFacts
	}

	extracted := ExtractFacts(record)
	merged := MergeFacts(existingFacts, extracted, factsMeta)
	focus := PromoteFocus(merged)

	if toolFacts == nil {
		toolFacts = map[string]any{}
	}
	if len(extracted) > 0 {
		toolFacts[toolID] = extracted
	}

	lastTool := map[string]any{
		"tool":       toolID,
		"parameters": parameters,
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
	}

	if mem == nil {
		create := s.db.SessionMemory.Create().
			SetID(uuid.NewString()).
			SetSessionID(sessionID).
			SetUserID(userID).
			SetFacts(merged).
			SetToolFacts(toolFacts).
			SetLastTool(lastTool)
		if focus != nil {
			create.SetFocus(focus)
		}
		if _, err := create.Save(ctx); err != nil {
			return fmt.Errorf("failed to create session memory: %w", err)
		}
		return nil
	}

	update := s.db.SessionMemory.UpdateOneID(mem.ID).
		SetFacts(merged).
		SetToolFacts(toolFacts).
		SetLastTool(lastTool)
	if focus != nil {
		update.SetFocus(focus)
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update session memory: %w", err)
	}
	return nil
}

// SetAuthoritativeFacts replaces the fact block with LLM-generated facts.
// Marks facts_meta.source=llm so heuristic extraction stops overwriting
// these keys.
func (s *Service) SetAuthoritativeFacts(ctx context.Context, sessionID, userID string, facts map[string]any) error {
	meta := map[string]any{
		"source":     "llm",
		"updated_at": time.Now().UTC().Format(time.RFC3339),
	}

	mem, err := s.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if mem == nil {
		_, err := s.db.SessionMemory.Create().
			SetID(uuid.NewString()).
			SetSessionID(sessionID).
			SetUserID(userID).
			SetFacts(facts).
			SetFactsMeta(meta).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to create session memory: %w", err)
		}
		return nil
	}

	if err := s.db.SessionMemory.UpdateOneID(mem.ID).
		SetFacts(facts).
		SetFactsMeta(meta).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to set authoritative facts: %w", err)
	}
	return nil
}

// ExtractRecord picks the record used for fact extraction from an
// execution result: a FileReference's sample record when available,
// otherwise the raw payload of a bypass result.
func ExtractRecord(result any) map[string]any {
	switch t := result.(type) {
	case *models.FileReference:
		if t == nil || t.IsError {
			return nil
		}
		if sample, ok := t.Summary.SampleRecord.(map[string]any); ok {
			return sample
		}
		return nil
	case map[string]any:
		return t
	default:
		return nil
	}
}

// Render returns the compact prompt block for a session's memory.
func (s *Service) Render(ctx context.Context, sessionID string) (string, error) {
	mem, err := s.Get(ctx, sessionID)
	if err != nil || mem == nil {
		return "", err
	}
	return RenderCompact(mem.Focus, mem.Facts, mem.LastTool), nil
}
