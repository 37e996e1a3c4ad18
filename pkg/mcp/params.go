package mcp

import (
	"encoding/json"
	"strings"
)

// maxNormalizeDepth bounds recursion into nested parameter objects.
const maxNormalizeDepth = 8

// NormalizeParams canonicalizes planner-supplied parameters for duplicate
// detection and for the invocation trace:
//   - strings are trimmed; empty strings become null
//   - "true"/"false" strings become booleans
//   - nested objects and arrays are normalized recursively
//
// The input is never mutated.
func NormalizeParams(params map[string]any) map[string]any {
	if params == nil {
		return map[string]any{}
	}
	out := make(map[string]any, len(params))
	for k, v := range params {
		out[k] = normalizeValue(v, 0)
	}
	return out
}

func normalizeValue(v any, depth int) any {
	if depth > maxNormalizeDepth {
		return v
	}
	switch t := v.(type) {
	case string:
		trimmed := strings.TrimSpace(t)
		switch trimmed {
		case "":
			return nil
		case "true":
			return true
		case "false":
			return false
		}
		return trimmed
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = normalizeValue(item, depth+1)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = normalizeValue(item, depth+1)
		}
		return out
	default:
		return v
	}
}

// CanonicalParams renders normalized parameters as deterministic JSON
// (object keys sorted). Two parameter sets are duplicates when their
// canonical forms are equal.
func CanonicalParams(params map[string]any) string {
	data, err := json.Marshal(NormalizeParams(params))
	if err != nil {
		return ""
	}
	return string(data)
}

// ParamsEqual reports whether two parameter sets are deeply equal after
// normalization.
func ParamsEqual(a, b map[string]any) bool {
	ca, cb := CanonicalParams(a), CanonicalParams(b)
	return ca != "" && ca == cb
}
