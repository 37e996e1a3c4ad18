package agent

import (
	"errors"
	"strings"
	"time"

	"github.com/cucinellclark/bvbrc-copilot/pkg/mcp"
	"github.com/cucinellclark/bvbrc-copilot/pkg/models"
)

// trace accumulates the per-job execution record. Entries are appended in
// iteration order and never rewritten. The persisted Parameters are the
// exact post-override arguments; the planner's proposed parameters are kept
// separately for duplicate detection.
type trace struct {
	entries    []models.ToolInvocation
	planned    map[int]map[string]any
	duplicates map[int]bool
}

func newTrace() *trace {
	return &trace{
		planned:    make(map[int]map[string]any),
		duplicates: make(map[int]bool),
	}
}

func (t *trace) append(inv models.ToolInvocation, plannedParams map[string]any) {
	t.entries = append(t.entries, inv)
	if plannedParams != nil {
		t.planned[len(t.entries)-1] = mcp.NormalizeParams(plannedParams)
	}
}

func (t *trace) appendDuplicateMarker(iteration int, toolID, reasoning string, params map[string]any) {
	t.entries = append(t.entries, models.ToolInvocation{
		Iteration:  iteration,
		ActionID:   models.ActionDuplicateDetected,
		Reasoning:  reasoning,
		Parameters: map[string]any{"tool": toolID, "parameters": params},
		Status:     models.InvocationWarning,
		Timestamp:  time.Now().UTC(),
	})
	t.duplicates[len(t.entries)-1] = true
}

// findDuplicate reports whether a past successful invocation of toolID was
// planned with deeply-equal normalized parameters.
func (t *trace) findDuplicate(toolID string, normalized map[string]any) bool {
	for i, inv := range t.entries {
		if inv.ActionID != toolID || inv.Status != models.InvocationSuccess {
			continue
		}
		if mcp.ParamsEqual(t.planned[i], normalized) {
			return true
		}
	}
	return false
}

// successCount returns the number of successful tool invocations.
func (t *trace) successCount() int {
	n := 0
	for _, inv := range t.entries {
		if inv.Status == models.InvocationSuccess && inv.ActionID != models.ActionDuplicateDetected {
			n++
		}
	}
	return n
}

// lastSuccessfulTool returns the most recent successful action id, or "".
func (t *trace) lastSuccessfulTool() string {
	for i := len(t.entries) - 1; i >= 0; i-- {
		inv := t.entries[i]
		if inv.Status == models.InvocationSuccess && inv.ActionID != models.ActionDuplicateDetected {
			return inv.ActionID
		}
	}
	return ""
}

// shouldStopAfterFailure decides whether the loop gives up after a failed
// execution: unrecoverable error classes with nothing gathered yet, or two
// failures within the last three entries. An invalidated MCP session is not
// unrecoverable on its own: the client already cleared it and the next call
// performs a fresh handshake, so the loop gets another try (repeat failures
// still trip the recent-failure rule).
func (t *trace) shouldStopAfterFailure(execErr error, resultsGathered int) bool {
	lower := strings.ToLower(execErr.Error())
	unrecoverable := strings.Contains(lower, "session") ||
		strings.Contains(lower, "auth") ||
		strings.Contains(lower, "not found")
	if errors.Is(execErr, mcp.ErrSessionInvalidated) {
		unrecoverable = false
	}
	if unrecoverable && resultsGathered == 0 {
		return true
	}

	failures := 0
	start := len(t.entries) - 3
	if start < 0 {
		start = 0
	}
	for _, inv := range t.entries[start:] {
		if inv.Status == models.InvocationFailed || inv.Status == models.InvocationError {
			failures++
		}
	}
	return failures >= 2
}

// asMaps converts the trace for JSON persistence on the assistant message.
func (t *trace) asMaps() []map[string]any {
	out := make([]map[string]any, 0, len(t.entries))
	for _, inv := range t.entries {
		entry := map[string]any{
			"iteration": inv.Iteration,
			"action_id": inv.ActionID,
			"status":    inv.Status,
			"timestamp": inv.Timestamp.Format(time.RFC3339),
			"result_meta": map[string]any{
				"has_result":  inv.ResultMeta.HasResult,
				"result_type": inv.ResultMeta.ResultType,
			},
		}
		if inv.Reasoning != "" {
			entry["reasoning"] = inv.Reasoning
		}
		if len(inv.Parameters) > 0 {
			entry["parameters"] = inv.Parameters
		}
		if inv.Error != "" {
			entry["error"] = inv.Error
		}
		out = append(out, entry)
	}
	return out
}
