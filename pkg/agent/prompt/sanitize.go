package prompt

import (
	"regexp"
	"strings"
)

// toolIDPattern matches qualified "server.tool" identifiers so they can be
// redacted from any text injected into a user-visible prompt.
var toolIDPattern = regexp.MustCompile(`\b[a-z][a-z0-9_-]*_(server|mcp)\.[a-z][a-z0-9_]*\b`)

// genericToolIDPattern is the fallback for "word.word" tool ids whose server
// key does not carry a server/mcp suffix.
var genericToolIDPattern = regexp.MustCompile(`\b[a-z][a-z0-9_-]{2,}\.[a-z][a-z0-9_]{2,}_[a-z0-9_]+\b`)

// tmpPathPattern matches local session scratch paths.
var tmpPathPattern = regexp.MustCompile(`(/tmp/[^\s"',}\]]+|/sessions/[0-9a-fA-F-]{8,}[^\s"',}\]]*)`)

// SanitizeToolIdentifiers replaces qualified tool ids with "[tool]" and
// redacts obvious internal server vocabulary. Applied to every tool-result
// chunk before it enters a final-response prompt.
func SanitizeToolIdentifiers(text string) string {
	text = toolIDPattern.ReplaceAllString(text, "[tool]")
	text = genericToolIDPattern.ReplaceAllString(text, "[tool]")
	text = strings.ReplaceAll(text, "internal_server", "[internal]")
	return text
}

// internalKeys are stripped from result payloads before prompt injection.
var internalKeys = map[string]bool{
	"file_id":    true,
	"session_id": true,
	"file_path":  true,
	"job_id":     true,
	"auth_token": true,
}

// StripInternalMetadata removes internal identifiers and local paths from a
// result payload copy. The input is never mutated.
func StripInternalMetadata(payload map[string]any) map[string]any {
	if payload == nil {
		return nil
	}
	out := make(map[string]any, len(payload))
	for k, v := range payload {
		if internalKeys[k] {
			continue
		}
		switch t := v.(type) {
		case map[string]any:
			out[k] = StripInternalMetadata(t)
		case string:
			out[k] = tmpPathPattern.ReplaceAllString(t, "[path]")
		default:
			out[k] = v
		}
	}
	return out
}

// ApplyBudget truncates a list of text chunks to a shared character budget.
// Chunks that fit are kept whole; the first chunk that would overflow is cut
// at the remaining budget and the dropped tail is replaced by one omission
// note.
func ApplyBudget(chunks []string, budget int) []string {
	if budget <= 0 {
		return chunks
	}
	out := make([]string, 0, len(chunks))
	remaining := budget
	for _, chunk := range chunks {
		if len(chunk) <= remaining {
			out = append(out, chunk)
			remaining -= len(chunk)
			continue
		}
		if remaining > 0 {
			out = append(out, chunk[:remaining])
		}
		out = append(out, budgetOmissionNote)
		break
	}
	return out
}
