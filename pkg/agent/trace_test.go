package agent

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cucinellclark/bvbrc-copilot/pkg/mcp"
	"github.com/cucinellclark/bvbrc-copilot/pkg/models"
)

func successEntry(iteration int, tool string, executedParams map[string]any) models.ToolInvocation {
	return models.ToolInvocation{
		Iteration:  iteration,
		ActionID:   tool,
		Parameters: executedParams,
		Status:     models.InvocationSuccess,
		Timestamp:  time.Now().UTC(),
	}
}

func TestTrace_DuplicateUsesPlannedParams(t *testing.T) {
	tr := newTrace()

	// The executor rewrote the stored parameters (context injection), but
	// the planner proposed the same call twice.
	planned := map[string]any{"keywords": []any{"E. coli"}, "limit": 25}
	executed := map[string]any{"keywords": []any{"E. coli"}, "limit": 25, "session_id": "s1"}
	tr.append(successEntry(1, "bvbrc_server.bvbrc_search_data", executed), planned)

	assert.True(t, tr.findDuplicate("bvbrc_server.bvbrc_search_data", mcp.NormalizeParams(planned)))
	assert.False(t, tr.findDuplicate("bvbrc_server.bvbrc_search_data",
		mcp.NormalizeParams(map[string]any{"keywords": []any{"E. coli"}, "limit": 50})))
	assert.False(t, tr.findDuplicate("other_server.other_tool", mcp.NormalizeParams(planned)))
}

func TestTrace_DuplicateIgnoresFailedEntries(t *testing.T) {
	tr := newTrace()
	params := map[string]any{"q": "x"}
	tr.append(models.ToolInvocation{
		Iteration: 1, ActionID: "tool", Status: models.InvocationFailed,
	}, params)

	assert.False(t, tr.findDuplicate("tool", mcp.NormalizeParams(params)))
}

func TestTrace_NormalizationMakesEquivalentParamsDuplicate(t *testing.T) {
	tr := newTrace()
	tr.append(successEntry(1, "tool", nil), map[string]any{"q": " genome ", "flag": "true"})

	assert.True(t, tr.findDuplicate("tool",
		mcp.NormalizeParams(map[string]any{"q": "genome", "flag": true})))
}

func TestTrace_ShouldStopAfterFailure(t *testing.T) {
	tr := newTrace()

	// Unrecoverable error class with nothing gathered stops immediately.
	assert.True(t, tr.shouldStopAfterFailure(errors.New("MCP session expired"), 0))
	assert.True(t, tr.shouldStopAfterFailure(errors.New("authentication required"), 0))
	assert.True(t, tr.shouldStopAfterFailure(errors.New("genome not found"), 0))

	// Same error with prior results lets the planner adapt.
	assert.False(t, tr.shouldStopAfterFailure(errors.New("session expired"), 1))

	// Two failures within the last three entries stop the loop.
	tr.append(models.ToolInvocation{Iteration: 1, ActionID: "a", Status: models.InvocationFailed}, nil)
	assert.False(t, tr.shouldStopAfterFailure(errors.New("timeout"), 1))
	tr.append(models.ToolInvocation{Iteration: 2, ActionID: "b", Status: models.InvocationFailed}, nil)
	assert.True(t, tr.shouldStopAfterFailure(errors.New("timeout"), 1))
}

func TestTrace_ShouldStopAfterFailure_InvalidatedSessionRetries(t *testing.T) {
	tr := newTrace()

	// The client clears a rejected session and wraps the error with its
	// sentinel; the loop must try again even with nothing gathered yet.
	cleared := fmt.Errorf("MCP tool error from bvbrc_server.bvbrc_search_data: %w on %q: invalid session id",
		mcp.ErrSessionInvalidated, "bvbrc-api")
	assert.False(t, tr.shouldStopAfterFailure(cleared, 0))

	// A bare session error without the sentinel still stops the loop.
	assert.True(t, tr.shouldStopAfterFailure(errors.New("invalid session id"), 0))

	// Repeat session failures exhaust the recent-failure rule regardless.
	tr.append(models.ToolInvocation{Iteration: 1, ActionID: "a", Status: models.InvocationFailed}, nil)
	tr.append(models.ToolInvocation{Iteration: 2, ActionID: "a", Status: models.InvocationFailed}, nil)
	assert.True(t, tr.shouldStopAfterFailure(cleared, 0))
}

func TestTrace_SuccessCountSkipsDuplicateMarkers(t *testing.T) {
	tr := newTrace()
	tr.append(successEntry(1, "tool", nil), map[string]any{"q": "x"})
	tr.appendDuplicateMarker(2, "tool", "same plan", map[string]any{"q": "x"})

	assert.Equal(t, 1, tr.successCount())
	assert.Equal(t, "tool", tr.lastSuccessfulTool())
	assert.True(t, tr.duplicates[1])
}

func TestTrace_AsMapsCarriesErrorAndParameters(t *testing.T) {
	tr := newTrace()
	tr.append(models.ToolInvocation{
		Iteration:  1,
		ActionID:   "tool",
		Parameters: map[string]any{"q": "x"},
		Status:     models.InvocationFailed,
		Error:      "boom",
		Timestamp:  time.Now().UTC(),
	}, nil)

	maps := tr.asMaps()
	assert.Len(t, maps, 1)
	assert.Equal(t, "tool", maps[0]["action_id"])
	assert.Equal(t, "boom", maps[0]["error"])
	assert.Equal(t, map[string]any{"q": "x"}, maps[0]["parameters"])
}
