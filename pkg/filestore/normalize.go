package filestore

import (
	"encoding/json"
	"strings"
)

// Source tags recognized by the source-specific extraction step.
const (
	sourceBVBRCData      = "bvbrc-mcp-data"
	sourceBVBRCWorkspace = "bvbrc-workspace"
)

// Normalize unwraps a raw JSON-RPC result into the canonical payload plus
// source metadata. The input is never mutated.
//
// Unwrap priority:
//  1. structuredContent.result (parsed if string, sibling keys preserved)
//  2. content[0].text (parsed if it looks like JSON)
//  3. top-level result field with sibling preservation
//
// Source-specific extraction then applies for known source tags.
func Normalize(raw map[string]any) (data any, meta map[string]any) {
	meta = map[string]any{}

	data, ok := unwrapStructuredContent(raw, meta)
	if !ok {
		data, ok = unwrapContentText(raw)
	}
	if !ok {
		data, ok = unwrapTopLevelResult(raw, meta)
	}
	if !ok {
		data = raw
	}

	data = extractBySource(data, meta)

	if len(meta) == 0 {
		meta = nil
	}
	return data, meta
}

func unwrapStructuredContent(raw map[string]any, meta map[string]any) (any, bool) {
	sc, ok := raw["structuredContent"].(map[string]any)
	if !ok {
		return nil, false
	}
	result, ok := sc["result"]
	if !ok {
		return sc, true
	}
	for k, v := range sc {
		if k != "result" {
			meta[k] = v
		}
	}
	return parseIfJSONString(result), true
}

func unwrapContentText(raw map[string]any) (any, bool) {
	content, ok := raw["content"].([]any)
	if !ok || len(content) == 0 {
		return nil, false
	}
	first, ok := content[0].(map[string]any)
	if !ok {
		return nil, false
	}
	text, ok := first["text"].(string)
	if !ok {
		return nil, false
	}
	return parseIfJSONString(text), true
}

func unwrapTopLevelResult(raw map[string]any, meta map[string]any) (any, bool) {
	result, ok := raw["result"]
	if !ok {
		return nil, false
	}
	for k, v := range raw {
		if k != "result" {
			meta[k] = v
		}
	}
	return parseIfJSONString(result), true
}

// parseIfJSONString parses a string payload when it looks like serialized
// JSON. Anything else passes through unchanged.
func parseIfJSONString(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "{") && !strings.HasPrefix(trimmed, "[") {
		return v
	}
	var parsed any
	if err := json.Unmarshal([]byte(trimmed), &parsed); err != nil {
		return v
	}
	return parsed
}

// extractBySource applies source-specific payload extraction for the data
// and workspace MCP servers. The source tag may live on the payload itself
// or among the sibling metadata keys.
func extractBySource(data any, meta map[string]any) any {
	m, ok := data.(map[string]any)
	if !ok {
		return data
	}

	source, _ := m["source"].(string)
	if source == "" {
		source, _ = meta["source"].(string)
	}

	switch source {
	case sourceBVBRCData:
		return extractDataServer(m, meta)
	case sourceBVBRCWorkspace:
		return extractWorkspaceServer(m)
	default:
		return data
	}
}

func extractDataServer(m, meta map[string]any) any {
	if fasta, ok := m["fasta"].(string); ok {
		return fasta
	}
	if tsv, ok := m["tsv"].(string); ok {
		return tsv
	}
	if results, ok := m["results"].([]any); ok {
		if count, ok := m["count"]; ok {
			meta["totalCount"] = count
		} else if numFound, ok := m["numFound"]; ok {
			meta["totalCount"] = numFound
		}
		return results
	}
	return m
}

func extractWorkspaceServer(m map[string]any) any {
	// Items may be nested one level down or flat on the payload.
	if items, ok := m["items"].([]any); ok {
		return items
	}
	if inner, ok := m["data"].(map[string]any); ok {
		if items, ok := inner["items"].([]any); ok {
			return items
		}
		return inner
	}
	if metadata, ok := m["metadata"].(map[string]any); ok {
		return metadata
	}
	return m
}

// IsErrorPayload reports whether a raw or normalized payload is an error
// envelope ({error: true} or {isError: true}).
func IsErrorPayload(v any) bool {
	m, ok := v.(map[string]any)
	if !ok {
		return false
	}
	if b, ok := m["error"].(bool); ok && b {
		return true
	}
	if b, ok := m["isError"].(bool); ok && b {
		return true
	}
	return false
}
