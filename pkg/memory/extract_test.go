package memory

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFacts_PrimitivesAndNesting(t *testing.T) {
	record := map[string]any{
		"genome_id":   "83333.111",
		"genome_name": "Escherichia coli K-12",
		"complete":    true,
		"length":      float64(4641652),
		"empty":       "",
		"stats": map[string]any{
			"contigs": float64(1),
			"deep": map[string]any{
				"ignored": "below depth cap",
			},
		},
	}

	facts := ExtractFacts(record)

	assert.Equal(t, "83333.111", facts["genome_id"])
	assert.Equal(t, true, facts["complete"])
	assert.Equal(t, float64(1), facts["stats.contigs"])
	assert.NotContains(t, facts, "empty")
	assert.NotContains(t, facts, "stats.deep.ignored")
}

func TestExtractFacts_TruncatesLongStrings(t *testing.T) {
	facts := ExtractFacts(map[string]any{"seq": strings.Repeat("A", 500)})
	require.Contains(t, facts, "seq")
	assert.Len(t, facts["seq"], MaxFactStringChars)
}

func TestExtractFacts_CapsKeysPerUpdate(t *testing.T) {
	record := map[string]any{}
	for i := 0; i < 100; i++ {
		record[fmt.Sprintf("key_%03d", i)] = "v"
	}
	facts := ExtractFacts(record)
	assert.Len(t, facts, MaxKeysPerUpdate)
}

func TestPromoteFocus_PriorityOrder(t *testing.T) {
	focus := PromoteFocus(map[string]any{
		"job_id":    "j1",
		"genome_id": "83333.111",
	})
	require.NotNil(t, focus)
	assert.Equal(t, "genome_id", focus["key"])
	assert.Equal(t, "83333.111", focus["value"])
	assert.Equal(t, "genome", focus["type"])
}

func TestPromoteFocus_DottedSuffixMatch(t *testing.T) {
	focus := PromoteFocus(map[string]any{"result.workflow_id": "wf-9"})
	require.NotNil(t, focus)
	assert.Equal(t, "workflow_id", focus["key"])
	assert.Equal(t, "wf-9", focus["value"])
}

func TestPromoteFocus_NoIdentifier(t *testing.T) {
	assert.Nil(t, PromoteFocus(map[string]any{"name": "x"}))
}

func TestMergeFacts_AuthoritativeKeysWin(t *testing.T) {
	existing := map[string]any{"genome_id": "llm-decided"}
	meta := map[string]any{"source": "llm"}

	merged := MergeFacts(existing, map[string]any{"genome_id": "heuristic", "new_key": "v"}, meta)

	assert.Equal(t, "llm-decided", merged["genome_id"])
	assert.Equal(t, "v", merged["new_key"])
}

func TestMergeFacts_HeuristicOverwritesHeuristic(t *testing.T) {
	merged := MergeFacts(map[string]any{"genome_id": "old"}, map[string]any{"genome_id": "new"}, nil)
	assert.Equal(t, "new", merged["genome_id"])
}

func TestMergeFacts_RespectsKeyCap(t *testing.T) {
	existing := map[string]any{}
	for i := 0; i < MaxFactKeys; i++ {
		existing[fmt.Sprintf("key_%03d", i)] = "v"
	}

	merged := MergeFacts(existing, map[string]any{"overflow": "x", "key_000": "updated"}, nil)

	assert.Len(t, merged, MaxFactKeys)
	assert.NotContains(t, merged, "overflow")
	assert.Equal(t, "updated", merged["key_000"])
}

func TestRenderCompact(t *testing.T) {
	out := RenderCompact(
		map[string]any{"type": "genome", "key": "genome_id", "value": "83333.111"},
		map[string]any{"genome_name": "E. coli"},
		map[string]any{"tool": "bvbrc_server.bvbrc_search_data"},
	)

	assert.Contains(t, out, "Focus: genome_id=83333.111")
	assert.Contains(t, out, "genome_name: E. coli")
	assert.Contains(t, out, "Last tool: bvbrc_server.bvbrc_search_data")
}
