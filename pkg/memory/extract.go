// Package memory maintains per-session structured memory: primitive facts
// extracted from tool results, the promoted focus identifier, and the
// last-tool record. A separate queued LLM pass may rewrite facts
// authoritatively; heuristic extraction never overwrites that pass.
package memory

import (
	"fmt"
	"sort"
	"strings"
)

// Extraction caps. Primitives only, bounded in count, length, and depth.
const (
	MaxFactKeys        = 200
	MaxKeysPerUpdate   = 25
	MaxFactStringChars = 200
	MaxFactDepth       = 2
)

// focusPriority orders identifier keys for focus promotion. The first key
// present in the extracted facts wins.
var focusPriority = []string{
	"genome_id",
	"workflow_id",
	"feature_id",
	"job_id",
	"taxon_id",
	"experiment_id",
}

// ExtractFacts pulls primitive facts from a tool-result record (either a
// FileReference sample record or a raw result map). At most
// MaxKeysPerUpdate keys are taken per call; strings are truncated and
// nested objects flattened up to MaxFactDepth with dotted keys.
func ExtractFacts(record map[string]any) map[string]any {
	if len(record) == 0 {
		return nil
	}

	facts := make(map[string]any)
	keys := make([]string, 0, len(record))
	for k := range record {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if len(facts) >= MaxKeysPerUpdate {
			break
		}
		extractValue(facts, k, record[k], 1)
	}
	return facts
}

func extractValue(facts map[string]any, key string, v any, depth int) {
	if len(facts) >= MaxKeysPerUpdate {
		return
	}
	switch t := v.(type) {
	case string:
		if t == "" {
			return
		}
		if len(t) > MaxFactStringChars {
			t = t[:MaxFactStringChars]
		}
		facts[key] = t
	case bool, float64, int, int64:
		facts[key] = t
	case map[string]any:
		if depth >= MaxFactDepth {
			return
		}
		nested := make([]string, 0, len(t))
		for k := range t {
			nested = append(nested, k)
		}
		sort.Strings(nested)
		for _, k := range nested {
			extractValue(facts, key+"."+k, t[k], depth+1)
		}
	}
}

// PromoteFocus selects the highest-priority identifier fact as the session
// focus. Returns nil when no identifier is present.
func PromoteFocus(facts map[string]any) map[string]any {
	for _, key := range focusPriority {
		if value := lookupFact(facts, key); value != nil {
			return map[string]any{
				"type":  focusType(key),
				"key":   key,
				"value": value,
			}
		}
	}
	return nil
}

// lookupFact matches a fact by exact key or by dotted suffix
// (e.g. "sample_record.genome_id" matches "genome_id").
func lookupFact(facts map[string]any, key string) any {
	if v, ok := facts[key]; ok {
		return v
	}
	suffix := "." + key
	var matched []string
	for k := range facts {
		if strings.HasSuffix(k, suffix) {
			matched = append(matched, k)
		}
	}
	if len(matched) == 0 {
		return nil
	}
	sort.Strings(matched)
	return facts[matched[0]]
}

func focusType(key string) string {
	base := strings.TrimSuffix(key, "_id")
	if base == key {
		return "identifier"
	}
	return base
}

// MergeFacts folds newly extracted facts into the existing fact map,
// respecting the key cap and never overwriting LLM-authoritative keys.
func MergeFacts(existing, extracted, meta map[string]any) map[string]any {
	merged := make(map[string]any, len(existing)+len(extracted))
	for k, v := range existing {
		merged[k] = v
	}

	authoritative := false
	if meta != nil {
		if source, _ := meta["source"].(string); source == "llm" {
			authoritative = true
		}
	}

	keys := make([]string, 0, len(extracted))
	for k := range extracted {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if authoritative {
			if _, exists := merged[k]; exists {
				continue
			}
		}
		if _, exists := merged[k]; !exists && len(merged) >= MaxFactKeys {
			continue
		}
		merged[k] = extracted[k]
	}
	return merged
}

// RenderCompact renders memory into a short prompt block for the planner.
func RenderCompact(focus, facts, lastTool map[string]any) string {
	var b strings.Builder
	if focus != nil {
		fmt.Fprintf(&b, "Focus: %v=%v\n", focus["key"], focus["value"])
	}
	if len(facts) > 0 {
		keys := make([]string, 0, len(facts))
		for k := range facts {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteString("Known facts:\n")
		for _, k := range keys {
			fmt.Fprintf(&b, "  %s: %v\n", k, facts[k])
		}
	}
	if lastTool != nil {
		fmt.Fprintf(&b, "Last tool: %v\n", lastTool["tool"])
	}
	return b.String()
}
