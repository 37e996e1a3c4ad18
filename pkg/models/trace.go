package models

import "time"

// Invocation statuses recorded in the execution trace.
const (
	InvocationPending = "pending"
	InvocationSuccess = "success"
	InvocationError   = "error"
	InvocationFailed  = "failed"
	InvocationWarning = "warning"
)

// Duplicate-detection trace marker action.
const ActionDuplicateDetected = "DUPLICATE_DETECTED"

// ActionFinalize is the planner action that ends the loop.
const ActionFinalize = "FINALIZE"

// ResultMeta summarizes what an invocation produced without the payload.
type ResultMeta struct {
	HasResult  bool   `json:"has_result"`
	ResultType string `json:"result_type,omitempty"`
}

// ToolInvocation is one entry of the per-job execution trace. Entries are
// appended in iteration order and never rewritten; the stored Parameters
// are the exact arguments sent to the MCP server after overrides.
type ToolInvocation struct {
	Iteration  int            `json:"iteration"`
	ActionID   string         `json:"action_id"`
	Reasoning  string         `json:"reasoning,omitempty"`
	Parameters map[string]any `json:"parameters,omitempty"`
	Status     string         `json:"status"`
	ResultMeta ResultMeta     `json:"result_meta"`
	Error      string         `json:"error,omitempty"`
	Timestamp  time.Time      `json:"timestamp"`
}

// PlannerDecision is the parsed planner output for one iteration.
type PlannerDecision struct {
	Action     string         `json:"action"` // "server.tool" or "FINALIZE"
	Reasoning  string         `json:"reasoning"`
	Parameters map[string]any `json:"parameters"`
}

// IsFinalize reports whether the decision ends the loop.
func (d *PlannerDecision) IsFinalize() bool {
	return d.Action == ActionFinalize
}
