package filestore

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cucinellclark/bvbrc-copilot/pkg/models"
)

func TestDetectDataType(t *testing.T) {
	tests := []struct {
		name string
		data any
		want string
	}{
		{"nil", nil, models.DataTypeNull},
		{"empty array", []any{}, models.DataTypeEmptyArray},
		{"json array", []any{map[string]any{"a": 1}}, models.DataTypeJSONArray},
		{"scalar array", []any{"a", "b"}, models.DataTypeArray},
		{"object", map[string]any{"a": 1}, models.DataTypeJSONObject},
		{"fasta", ">seq1\nACGT\n>seq2\nTTTT", models.DataTypeFasta},
		{"tsv", "genome_id\tname\n83333.111\tE. coli", models.DataTypeTSV},
		{"csv", "genome_id,name\n83333.111,E. coli", models.DataTypeCSV},
		{"tsv wins over commas", "id\tdescription\n1\tlarge, round colonies", models.DataTypeTSV},
		{"plain text", "just a sentence", models.DataTypeText},
		{"single line with comma", "a, b, c", models.DataTypeText},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectDataType(tt.data))
		})
	}
}

func TestExtensionFor(t *testing.T) {
	assert.Equal(t, "tsv", ExtensionFor(models.DataTypeTSV))
	assert.Equal(t, "csv", ExtensionFor(models.DataTypeCSV))
	assert.Equal(t, "fa", ExtensionFor(models.DataTypeFasta))
	assert.Equal(t, "json", ExtensionFor(models.DataTypeJSONArray))
	assert.Equal(t, "txt", ExtensionFor(models.DataTypeText))
}

func TestSummarize_JSONArray(t *testing.T) {
	data := []any{
		map[string]any{"genome_id": "83333.111", "genome_name": "E. coli"},
		map[string]any{"genome_id": "83333.112", "genome_name": "E. coli B"},
	}
	serialized := []byte(`[{"genome_id":"83333.111"}]`)

	summary := Summarize(data, models.DataTypeJSONArray, serialized, nil)

	assert.Equal(t, 2, summary.RecordCount)
	assert.ElementsMatch(t, []string{"genome_id", "genome_name"}, summary.Fields)
	assert.Equal(t, int64(len(serialized)), summary.Size)
	sample := summary.SampleRecord.(map[string]any)
	assert.Equal(t, "83333.111", sample["genome_id"])
}

func TestSummarize_TSVCountsRowsWithoutHeader(t *testing.T) {
	tsv := "genome_id\tname\n1\ta\n2\tb\n3\tc\n"
	summary := Summarize(tsv, models.DataTypeTSV, []byte(tsv), nil)

	assert.Equal(t, 3, summary.RecordCount)
	assert.Equal(t, []string{"genome_id", "name"}, summary.Fields)
}

func TestSummarize_FastaCountsSequences(t *testing.T) {
	fasta := ">seq1\nACGT\n>seq2\nTTTT\n>seq3\nGGGG"
	summary := Summarize(fasta, models.DataTypeFasta, []byte(fasta), nil)

	assert.Equal(t, 3, summary.RecordCount)
}

func TestSummarize_EmptyKinds(t *testing.T) {
	summary := Summarize(nil, models.DataTypeNull, []byte("null"), nil)
	assert.Equal(t, 0, summary.RecordCount)

	summary = Summarize([]any{}, models.DataTypeEmptyArray, []byte("[]"), nil)
	assert.Equal(t, 0, summary.RecordCount)
}

func TestSummarize_HeaderOnlyDelimited(t *testing.T) {
	summary := Summarize("a\tb", models.DataTypeTSV, []byte("a\tb"), nil)
	assert.Equal(t, 0, summary.RecordCount)
}
