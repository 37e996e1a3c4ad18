package agent

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/cucinellclark/bvbrc-copilot/pkg/models"
)

// ErrPlannerParse tags a planner response that could not be decoded. The
// loop records a warning trace entry and continues when iterations remain.
var ErrPlannerParse = errors.New("planner response is not valid JSON")

// ParseDecision decodes the planner's JSON decision defensively: code
// fences are stripped and surrounding prose tolerated by extracting the
// first balanced JSON object.
func ParseDecision(raw string) (*models.PlannerDecision, error) {
	text := stripCodeFences(strings.TrimSpace(raw))

	candidate := extractJSONObject(text)
	if candidate == "" {
		return nil, fmt.Errorf("%w: no JSON object found in %q", ErrPlannerParse, truncateForError(raw))
	}

	var decision models.PlannerDecision
	if err := json.Unmarshal([]byte(candidate), &decision); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPlannerParse, err)
	}
	decision.Action = strings.TrimSpace(decision.Action)
	if decision.Action == "" {
		return nil, fmt.Errorf("%w: missing action", ErrPlannerParse)
	}
	if decision.Parameters == nil {
		decision.Parameters = map[string]any{}
	}
	return &decision, nil
}

// stripCodeFences removes a surrounding ``` or ```json fence if present.
func stripCodeFences(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	if idx := strings.Index(text, "\n"); idx >= 0 {
		// Drop the language tag line ("json", "JSON", or empty).
		first := strings.TrimSpace(text[:idx])
		if len(first) <= 8 {
			text = text[idx+1:]
		}
	}
	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}

// extractJSONObject returns the first balanced top-level JSON object in the
// text, respecting string literals and escapes.
func extractJSONObject(text string) string {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}
	return ""
}

func truncateForError(s string) string {
	const max = 120
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
