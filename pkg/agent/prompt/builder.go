package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cucinellclark/bvbrc-copilot/pkg/llm"
	"github.com/cucinellclark/bvbrc-copilot/pkg/models"
)

// HistoryEntry is one prior conversation turn injected into a prompt.
type HistoryEntry struct {
	Role    string
	Content string
}

// PlanInput carries everything the planner prompt is composed from.
type PlanInput struct {
	SystemPrompt string
	Query        string

	// ToolsText is the prompt-friendly tool catalog rendering.
	ToolsText string

	// Trace is the execution trace so far; Duplicates flags trace indexes
	// whose parameters repeated an earlier successful call.
	Trace      []models.ToolInvocation
	Duplicates map[int]bool

	// ResultSummaries are compact per-invocation result descriptions,
	// aligned with successful trace entries in order.
	ResultSummaries []string

	Memory  string
	Summary string
	History []HistoryEntry

	WorkspaceItems    []string
	SelectedJobs      []map[string]any
	SelectedWorkflows []map[string]any
	HasImages         bool
}

// FinalInput carries everything the final-response prompt is composed from.
type FinalInput struct {
	SystemPrompt string
	Query        string
	History      []HistoryEntry

	// ResultChunks are serialized tool results, already sanitized; Budget
	// is the shared character cap across all of them.
	ResultChunks []string
	Budget       int

	// Enhancements are per-tool guidance lines for tools that executed.
	Enhancements []string

	Images []string
}

// Builder composes planner and final-response prompts. Stateless and
// thread-safe.
type Builder struct{}

// NewBuilder creates a prompt builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// BuildPlannerMessages builds the conversation for one planning iteration.
func (b *Builder) BuildPlannerMessages(in *PlanInput) []llm.Message {
	system := fmt.Sprintf(plannerSystemTemplate, strings.TrimSpace(in.SystemPrompt))

	var u strings.Builder
	u.WriteString(plannerContextHeader)
	u.WriteString(in.ToolsText)
	u.WriteString("\n")

	if in.Summary != "" {
		u.WriteString("\n## Conversation summary\n")
		u.WriteString(in.Summary)
		u.WriteString("\n")
	}
	if in.Memory != "" {
		u.WriteString("\n## Session memory\n")
		u.WriteString(in.Memory)
	}
	writeHistory(&u, in.History)

	if len(in.WorkspaceItems) > 0 {
		u.WriteString("\n## Selected workspace items\n")
		for _, item := range in.WorkspaceItems {
			u.WriteString("- " + item + "\n")
		}
	}
	writeSelection(&u, "Selected jobs", in.SelectedJobs)
	writeSelection(&u, "Selected workflows", in.SelectedWorkflows)

	if len(in.Trace) > 0 {
		u.WriteString("\n## Steps taken so far\n")
		u.WriteString(RenderTrace(in.Trace, in.Duplicates))
	}
	if len(in.ResultSummaries) > 0 {
		u.WriteString("\n## Data gathered\n")
		for _, s := range in.ResultSummaries {
			u.WriteString("- " + s + "\n")
		}
	}
	if in.HasImages {
		u.WriteString("\nThe user attached images; they will be provided to the answering model. Plan accordingly.\n")
	}

	u.WriteString("\n## Current user query\n")
	u.WriteString(in.Query)
	u.WriteString("\n\nDecide the next step. Respond with strict JSON only.")

	return []llm.Message{
		{Role: models.RoleSystem, Content: system},
		{Role: models.RoleUser, Content: u.String()},
	}
}

// RenderTrace renders the execution trace for the planner, annotating
// duplicate plans so the model stops repeating itself.
func RenderTrace(trace []models.ToolInvocation, duplicates map[int]bool) string {
	var b strings.Builder
	for i, inv := range trace {
		fmt.Fprintf(&b, "%d. %s - %s", inv.Iteration, inv.ActionID, inv.Status)
		if inv.Error != "" {
			fmt.Fprintf(&b, " (%s)", inv.Error)
		}
		if len(inv.Parameters) > 0 {
			if data, err := json.Marshal(inv.Parameters); err == nil {
				fmt.Fprintf(&b, " parameters=%s", data)
			}
		}
		if duplicates[i] {
			b.WriteString(duplicateTraceNote)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// BuildDirectFinalMessages builds the response prompt for a conversation
// that used no tools.
func (b *Builder) BuildDirectFinalMessages(in *FinalInput) []llm.Message {
	messages := []llm.Message{{Role: models.RoleSystem, Content: directFinalSystem}}
	messages = appendHistoryMessages(messages, in.History)
	messages = append(messages, llm.Message{
		Role:    models.RoleUser,
		Content: in.Query,
		Images:  in.Images,
	})
	return messages
}

// BuildToolFinalMessages builds the synthesis prompt from gathered tool
// results. Every chunk is sanitized and the shared character budget applied.
func (b *Builder) BuildToolFinalMessages(in *FinalInput) []llm.Message {
	system := fmt.Sprintf(toolFinalSystemTemplate, strings.TrimSpace(in.SystemPrompt))
	if len(in.Enhancements) > 0 {
		system += "\n\nAdditional guidance:\n"
		for _, e := range in.Enhancements {
			system += "- " + e + "\n"
		}
	}

	sanitized := make([]string, len(in.ResultChunks))
	for i, chunk := range in.ResultChunks {
		sanitized[i] = SanitizeToolIdentifiers(chunk)
	}
	budgeted := ApplyBudget(sanitized, in.Budget)

	var u strings.Builder
	u.WriteString("## Gathered data\n")
	for _, chunk := range budgeted {
		u.WriteString(chunk)
		u.WriteString("\n\n")
	}
	u.WriteString("## User question\n")
	u.WriteString(in.Query)

	messages := []llm.Message{{Role: models.RoleSystem, Content: system}}
	messages = appendHistoryMessages(messages, in.History)
	messages = append(messages, llm.Message{
		Role:    models.RoleUser,
		Content: u.String(),
		Images:  in.Images,
	})
	return messages
}

// BuildFactsMessages builds the authoritative session-facts rewrite prompt
// for the background facts worker.
func (b *Builder) BuildFactsMessages(query, toolID string, parameters, record map[string]any) []llm.Message {
	var u strings.Builder
	u.WriteString("Latest user query:\n" + query + "\n")
	if toolID != "" {
		fmt.Fprintf(&u, "\nLast tool: %s\n", toolID)
	}
	if len(parameters) > 0 {
		if data, err := json.Marshal(parameters); err == nil {
			fmt.Fprintf(&u, "Parameters: %s\n", data)
		}
	}
	if len(record) > 0 {
		if data, err := json.Marshal(record); err == nil {
			fmt.Fprintf(&u, "Result sample: %s\n", data)
		}
	}
	u.WriteString("\nOutput the updated fact sheet as strict JSON.")
	return []llm.Message{
		{Role: models.RoleSystem, Content: factsSystemPrompt},
		{Role: models.RoleUser, Content: u.String()},
	}
}

// BuildSummaryMessages builds the conversation-summary prompt for the
// background summary worker.
func (b *Builder) BuildSummaryMessages(previousSummary string, turns []HistoryEntry) []llm.Message {
	var u strings.Builder
	if previousSummary != "" {
		u.WriteString("Previous summary:\n" + previousSummary + "\n\n")
	}
	u.WriteString("New conversation turns:\n")
	for _, t := range turns {
		fmt.Fprintf(&u, "[%s] %s\n", t.Role, t.Content)
	}
	u.WriteString("\nProduce the updated summary.")
	return []llm.Message{
		{Role: models.RoleSystem, Content: summarySystemPrompt},
		{Role: models.RoleUser, Content: u.String()},
	}
}

func writeHistory(b *strings.Builder, history []HistoryEntry) {
	if len(history) == 0 {
		return
	}
	b.WriteString("\n## Recent conversation\n")
	for _, h := range history {
		fmt.Fprintf(b, "[%s] %s\n", h.Role, h.Content)
	}
}

func writeSelection(b *strings.Builder, title string, items []map[string]any) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "\n## %s\n", title)
	for _, item := range items {
		if data, err := json.Marshal(item); err == nil {
			b.WriteString("- " + string(data) + "\n")
		}
	}
}

func appendHistoryMessages(messages []llm.Message, history []HistoryEntry) []llm.Message {
	for _, h := range history {
		role := h.Role
		if role != models.RoleUser && role != models.RoleAssistant {
			role = models.RoleUser
		}
		messages = append(messages, llm.Message{Role: role, Content: h.Content})
	}
	return messages
}
