package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecision_PlainJSON(t *testing.T) {
	decision, err := ParseDecision(`{"action":"bvbrc_server.bvbrc_search_data","reasoning":"search","parameters":{"limit":25}}`)
	require.NoError(t, err)
	assert.Equal(t, "bvbrc_server.bvbrc_search_data", decision.Action)
	assert.Equal(t, "search", decision.Reasoning)
	assert.Equal(t, float64(25), decision.Parameters["limit"])
}

func TestParseDecision_CodeFence(t *testing.T) {
	raw := "```json\n{\"action\":\"FINALIZE\",\"parameters\":{}}\n```"
	decision, err := ParseDecision(raw)
	require.NoError(t, err)
	assert.True(t, decision.IsFinalize())
}

func TestParseDecision_SurroundingProse(t *testing.T) {
	raw := `Sure, here is my plan: {"action":"FINALIZE","reasoning":"done"} — let me know.`
	decision, err := ParseDecision(raw)
	require.NoError(t, err)
	assert.Equal(t, "FINALIZE", decision.Action)
	assert.NotNil(t, decision.Parameters)
}

func TestParseDecision_BracesInsideStrings(t *testing.T) {
	raw := `{"action":"tool","reasoning":"use {\"nested\": true} syntax","parameters":{"q":"a}b"}}`
	decision, err := ParseDecision(raw)
	require.NoError(t, err)
	assert.Equal(t, "tool", decision.Action)
	assert.Equal(t, "a}b", decision.Parameters["q"])
}

func TestParseDecision_MissingAction(t *testing.T) {
	_, err := ParseDecision(`{"reasoning":"no action here"}`)
	require.ErrorIs(t, err, ErrPlannerParse)
}

func TestParseDecision_NoObject(t *testing.T) {
	_, err := ParseDecision("I cannot decide on a tool right now.")
	require.ErrorIs(t, err, ErrPlannerParse)
}

func TestParseDecision_DefaultsParameters(t *testing.T) {
	decision, err := ParseDecision(`{"action":"FINALIZE"}`)
	require.NoError(t, err)
	require.NotNil(t, decision.Parameters)
	assert.Empty(t, decision.Parameters)
}
