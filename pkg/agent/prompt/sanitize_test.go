package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeToolIdentifiers(t *testing.T) {
	in := "Data came from bvbrc_server.bvbrc_search_data and internal_server helpers."
	out := SanitizeToolIdentifiers(in)

	assert.NotContains(t, out, "bvbrc_server.bvbrc_search_data")
	assert.NotContains(t, out, "internal_server")
	assert.Contains(t, out, "[tool]")
	assert.Contains(t, out, "[internal]")
}

func TestSanitizeToolIdentifiers_LeavesPlainTextAlone(t *testing.T) {
	in := "E. coli strain K-12 has 4.6 Mbp."
	assert.Equal(t, in, SanitizeToolIdentifiers(in))
}

func TestStripInternalMetadata(t *testing.T) {
	in := map[string]any{
		"file_id":    "abc-123",
		"session_id": "sess",
		"genome_id":  "83333.111",
		"nested": map[string]any{
			"auth_token": "secret",
			"count":      float64(3),
		},
		"path_note": "saved to /tmp/copilot/sess/out.tsv for later",
	}

	out := StripInternalMetadata(in)

	assert.NotContains(t, out, "file_id")
	assert.NotContains(t, out, "session_id")
	assert.Equal(t, "83333.111", out["genome_id"])

	nested := out["nested"].(map[string]any)
	assert.NotContains(t, nested, "auth_token")
	assert.Equal(t, float64(3), nested["count"])

	assert.Contains(t, out["path_note"], "[path]")
	assert.NotContains(t, out["path_note"], "/tmp/")

	// Input untouched.
	assert.Contains(t, in, "file_id")
	assert.Equal(t, "secret", in["nested"].(map[string]any)["auth_token"])
}

func TestApplyBudget_FitsUnchanged(t *testing.T) {
	chunks := []string{"aaaa", "bbbb"}
	assert.Equal(t, chunks, ApplyBudget(chunks, 100))
}

func TestApplyBudget_TruncatesTail(t *testing.T) {
	chunks := []string{strings.Repeat("a", 10), strings.Repeat("b", 10), strings.Repeat("c", 10)}
	out := ApplyBudget(chunks, 15)

	assert.Len(t, out, 3)
	assert.Equal(t, strings.Repeat("a", 10), out[0])
	assert.Equal(t, strings.Repeat("b", 5), out[1])
	assert.Equal(t, budgetOmissionNote, out[2])
}

func TestApplyBudget_ExactBoundaryDropsRemainder(t *testing.T) {
	chunks := []string{strings.Repeat("a", 10), strings.Repeat("b", 10)}
	out := ApplyBudget(chunks, 10)

	assert.Equal(t, []string{strings.Repeat("a", 10), budgetOmissionNote}, out)
}

func TestApplyBudget_ZeroBudgetDisabled(t *testing.T) {
	chunks := []string{"a", "b"}
	assert.Equal(t, chunks, ApplyBudget(chunks, 0))
}
