package models

import "time"

// Message roles.
const (
	RoleUser      = "user"
	RoleSystem    = "system"
	RoleAssistant = "assistant"
)

// UI actions attached to assistant messages for frontend dispatch.
const (
	UIActionOpenWorkspaceTab   = "open_workspace_tab"
	UIActionOpenJobsTab        = "open_jobs_tab"
	UIActionOpenWorkflowViewer = "open_workflow_viewer"
)

// ChatMessage is the persisted shape of one conversation turn. User messages
// are persisted at loop start so a mid-flight cancel still records intent.
type ChatMessage struct {
	MessageID   string    `json:"message_id"`
	Role        string    `json:"role"`
	Content     string    `json:"content"`
	Timestamp   time.Time `json:"timestamp"`
	Attachments []string  `json:"attachments,omitempty"`

	// Tool provenance and UI replay metadata. SourceTool records which
	// tool produced the final-response content; UISourceTool is the most
	// recent successful, replayable, non-excluded tool: they may differ.
	ToolCall     *ReplayCall `json:"tool_call,omitempty"`
	UIToolCall   *ReplayCall `json:"ui_tool_call,omitempty"`
	SourceTool   string      `json:"source_tool,omitempty"`
	UISourceTool string      `json:"ui_source_tool,omitempty"`

	// Workflow display metadata.
	WorkflowID string `json:"workflow_id,omitempty"`
	IsWorkflow bool   `json:"is_workflow,omitempty"`

	// Browse-surface display metadata.
	IsWorkspaceBrowse bool   `json:"is_workspace_browse,omitempty"`
	IsJobsBrowse      bool   `json:"is_jobs_browse,omitempty"`
	ChatSummary       string `json:"chat_summary,omitempty"`
	UIAction          string `json:"ui_action,omitempty"`

	// RAG documents attached to the answer, if any.
	Documents []RagDocument `json:"documents,omitempty"`

	// AgentTrace is the full execution trace for debugging surfaces.
	AgentTrace []ToolInvocation `json:"agent_trace,omitempty"`
}
