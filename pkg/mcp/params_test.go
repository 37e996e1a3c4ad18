package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeParams(t *testing.T) {
	in := map[string]any{
		"query":   "  E. coli  ",
		"empty":   "",
		"enabled": "true",
		"strict":  "false",
		"limit":   float64(25),
		"nested": map[string]any{
			"cursor": " abc ",
			"tags":   []any{" a ", ""},
		},
	}

	out := NormalizeParams(in)

	assert.Equal(t, "E. coli", out["query"])
	assert.Nil(t, out["empty"])
	assert.Equal(t, true, out["enabled"])
	assert.Equal(t, false, out["strict"])
	assert.Equal(t, float64(25), out["limit"])

	nested := out["nested"].(map[string]any)
	assert.Equal(t, "abc", nested["cursor"])
	assert.Equal(t, []any{"a", nil}, nested["tags"])

	// Input untouched.
	assert.Equal(t, "  E. coli  ", in["query"])
}

func TestNormalizeParams_Nil(t *testing.T) {
	out := NormalizeParams(nil)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestParamsEqual(t *testing.T) {
	a := map[string]any{"q": " genome ", "flag": "true", "n": float64(2)}
	b := map[string]any{"flag": true, "n": float64(2), "q": "genome"}
	assert.True(t, ParamsEqual(a, b))

	c := map[string]any{"q": "genome", "flag": true, "n": float64(3)}
	assert.False(t, ParamsEqual(a, c))
}

func TestCanonicalParams_Deterministic(t *testing.T) {
	a := CanonicalParams(map[string]any{"b": 1, "a": 2})
	b := CanonicalParams(map[string]any{"a": 2, "b": 1})
	assert.Equal(t, a, b)
	assert.NotEmpty(t, a)
}
