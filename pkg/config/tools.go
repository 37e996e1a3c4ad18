package config

import (
	"slices"
	"strings"
	"sync"
)

// ToolPolicy groups the configured tool capability sets. Capabilities are
// plain membership checks: a tool "is terminal" or "is replayable" because
// an operator listed it here, not because of anything in its descriptor.
//
// Tool ids are fully qualified ("server.tool"). Unqualified entries match
// the tool name on any server.
type ToolPolicy struct {
	// DisabledTools are filtered out of discovery entirely.
	DisabledTools []string `yaml:"disabled_tools,omitempty"`

	// FinalizeTools end the planning loop on successful execution and
	// become the final-response source.
	FinalizeTools []string `yaml:"finalize_tools,omitempty"`

	// ReplayableTools may be re-issued by the UI with the recorded
	// arguments to reconstruct a result grid.
	ReplayableTools []string `yaml:"replayable_tools,omitempty"`

	// RagTools return retrieval documents and bypass file materialization.
	RagTools []string `yaml:"rag_tools,omitempty"`

	// BypassFileHandlingTools return their raw payload directly
	// (workspace browse, job list, ...).
	BypassFileHandlingTools []string `yaml:"bypass_file_handling_tools,omitempty"`

	// ContextAwareTools receive a compact conversation-context block
	// prepended to their user_query parameter.
	ContextAwareTools []string `yaml:"context_aware_tools,omitempty"`

	// DuplicateTrackedTools are costly tools subject to duplicate-plan
	// detection in the orchestrator.
	DuplicateTrackedTools []string `yaml:"duplicate_tracked_tools,omitempty"`

	// ToolPromptEnhancements maps tool ids to extra guidance appended to
	// the final-response prompt when the tool was executed.
	ToolPromptEnhancements map[string]string `yaml:"tool_prompt_enhancements,omitempty"`

	mu sync.RWMutex
}

// matches reports whether toolID is covered by an entry list. Entries may be
// fully qualified ("server.tool") or bare tool names.
func matches(list []string, toolID string) bool {
	if slices.Contains(list, toolID) {
		return true
	}
	if _, name, ok := strings.Cut(toolID, "."); ok {
		return slices.Contains(list, name)
	}
	return false
}

// IsDisabled reports whether a tool is excluded from discovery.
func (p *ToolPolicy) IsDisabled(toolID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return matches(p.DisabledTools, toolID)
}

// IsFinalize reports whether a successful execution ends planning.
func (p *ToolPolicy) IsFinalize(toolID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return matches(p.FinalizeTools, toolID)
}

// IsReplayable reports whether the UI may replay this tool.
func (p *ToolPolicy) IsReplayable(toolID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return matches(p.ReplayableTools, toolID)
}

// IsRag reports whether results are normalized as retrieval documents.
func (p *ToolPolicy) IsRag(toolID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return matches(p.RagTools, toolID)
}

// IsBypass reports whether the raw payload skips file materialization.
func (p *ToolPolicy) IsBypass(toolID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return matches(p.BypassFileHandlingTools, toolID)
}

// IsContextAware reports whether conversation context is injected.
func (p *ToolPolicy) IsContextAware(toolID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return matches(p.ContextAwareTools, toolID)
}

// IsDuplicateTracked reports whether duplicate plans are detected for a tool.
func (p *ToolPolicy) IsDuplicateTracked(toolID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return matches(p.DuplicateTrackedTools, toolID)
}

// PromptEnhancement returns extra final-response guidance for a tool, if any.
func (p *ToolPolicy) PromptEnhancement(toolID string) (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if v, ok := p.ToolPromptEnhancements[toolID]; ok {
		return v, true
	}
	if _, name, ok := strings.Cut(toolID, "."); ok {
		v, ok2 := p.ToolPromptEnhancements[name]
		return v, ok2
	}
	return "", false
}
