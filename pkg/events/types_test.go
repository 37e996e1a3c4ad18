package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTransient(t *testing.T) {
	assert.True(t, IsTransient(EventProgress))
	assert.True(t, IsTransient(EventQueryProgress))
	assert.True(t, IsTransient(EventFinalResponse))
	assert.True(t, IsTransient(EventImageContext))

	assert.False(t, IsTransient(EventQueued))
	assert.False(t, IsTransient(EventToolExecuted))
	assert.False(t, IsTransient(EventDone))
	assert.False(t, IsTransient(EventCancelled))
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(EventDone))
	assert.True(t, IsTerminal(EventError))
	assert.True(t, IsTerminal(EventCancelled))

	assert.False(t, IsTerminal(EventCancelRequested))
	assert.False(t, IsTerminal(EventFinalResponse))
}

func TestJobChannel(t *testing.T) {
	assert.Equal(t, "job:abc-123", JobChannel("abc-123"))
}

func TestTruncateIfNeeded_SmallPayloadUnchanged(t *testing.T) {
	payload := []byte(`{"event":"done","job_id":"j1","iterations":2}`)
	out, err := truncateIfNeeded(payload)
	require.NoError(t, err)
	assert.JSONEq(t, string(payload), out)
}

func TestTruncateIfNeeded_OversizePayloadKeepsRouting(t *testing.T) {
	big := map[string]any{
		"event":  "tool_executed",
		"job_id": "j1",
		"result": strings.Repeat("x", notifyLimit),
	}
	payload, err := json.Marshal(big)
	require.NoError(t, err)

	out, err := truncateIfNeeded(payload)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(out), notifyLimit)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, "tool_executed", m["event"])
	assert.Equal(t, "j1", m["job_id"])
	assert.Equal(t, true, m["truncated"])
	assert.NotContains(t, m, "result")
}

func TestInjectEventIDAndTruncate(t *testing.T) {
	out, err := injectEventIDAndTruncate([]byte(`{"event":"started","job_id":"j1"}`), 42)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, float64(42), m["db_event_id"])
}

func TestInjectEventIDAndTruncate_OversizeKeepsCursor(t *testing.T) {
	big := map[string]any{
		"event":  "session_file_created",
		"job_id": "j1",
		"file":   strings.Repeat("y", notifyLimit),
	}
	payload, err := json.Marshal(big)
	require.NoError(t, err)

	out, err := injectEventIDAndTruncate(payload, 7)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, float64(7), m["db_event_id"])
	assert.Equal(t, true, m["truncated"])
}
