package models

import "time"

// JobData is the durable payload of a queued agent or RAG job.
type JobData struct {
	Query             string           `json:"query"`
	Model             string           `json:"model,omitempty"`
	SessionID         string           `json:"session_id"`
	UserID            string           `json:"user_id"`
	SystemPrompt      string           `json:"system_prompt,omitempty"`
	SaveChat          bool             `json:"save_chat"`
	IncludeHistory    bool             `json:"include_history"`
	MaxIterations     int              `json:"max_iterations,omitempty"`
	AuthToken         string           `json:"auth_token,omitempty"`
	WorkspaceItems    []string         `json:"workspace_items,omitempty"`
	SelectedJobs      []map[string]any `json:"selected_jobs,omitempty"`
	SelectedWorkflows []map[string]any `json:"selected_workflows,omitempty"`
	Images            []string         `json:"images,omitempty"` // base64, max 10
}

// MaxJobImages caps the images accepted per job.
const MaxJobImages = 10

// JobProgress is the live progress record kept on active jobs.
type JobProgress struct {
	Percentage       int    `json:"percentage"`
	CurrentIteration int    `json:"current_iteration,omitempty"`
	MaxIterations    int    `json:"max_iterations,omitempty"`
	CurrentTool      string `json:"current_tool,omitempty"`
}

// JobResult is the terminal payload stored on completed jobs, replayed to
// reconnecting clients.
type JobResult struct {
	Iterations int    `json:"iterations"`
	ToolsUsed  int    `json:"tools_used"`
	MessageID  string `json:"message_id,omitempty"`
	Cancelled  bool   `json:"cancelled,omitempty"`
}

// JobStatusView is the API shape of GET /job/{id}/status.
type JobStatusView struct {
	Found        bool           `json:"found"`
	JobID        string         `json:"job_id,omitempty"`
	Status       string         `json:"status,omitempty"`
	Progress     *JobProgress   `json:"progress,omitempty"`
	Error        string         `json:"error,omitempty"`
	Result       map[string]any `json:"result,omitempty"`
	Attempts     int            `json:"attempts,omitempty"`
	CreatedAt    *time.Time     `json:"created_at,omitempty"`
	StartedAt    *time.Time     `json:"started_at,omitempty"`
	CompletedAt  *time.Time     `json:"completed_at,omitempty"`
	DataOverview *JobDataView   `json:"data,omitempty"`
}

// JobDataView exposes only the non-sensitive job data fields.
type JobDataView struct {
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
}
