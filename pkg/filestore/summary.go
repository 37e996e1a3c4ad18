package filestore

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/cucinellclark/bvbrc-copilot/pkg/models"
)

const (
	// maxSummaryFields bounds how many field names are listed per file.
	maxSummaryFields = 20

	// sampleRecordMaxChars bounds the serialized length of any single value
	// inside the sample record.
	sampleRecordMaxChars = 500
)

// Summarize computes a FileSummary for a normalized payload. serialized is
// the exact byte form written to disk, so summary.size always matches the
// on-disk file.
func Summarize(data any, dataType string, serialized []byte, meta map[string]any) models.FileSummary {
	summary := models.FileSummary{
		DataType:       dataType,
		Size:           int64(len(serialized)),
		SizeFormatted:  formatSize(int64(len(serialized))),
		Fields:         []string{},
		SourceMetadata: meta,
	}

	switch dataType {
	case models.DataTypeJSONArray:
		arr := data.([]any)
		summary.RecordCount = len(arr)
		if first, ok := arr[0].(map[string]any); ok {
			summary.Fields = fieldNames(first)
			summary.SampleRecord = sampleRecord(first)
		}
	case models.DataTypeArray:
		summary.RecordCount = len(data.([]any))
		summary.SampleRecord = truncateValue(data.([]any)[0])
	case models.DataTypeJSONObject:
		obj := data.(map[string]any)
		summary.RecordCount = 1
		summary.Fields = fieldNames(obj)
		summary.SampleRecord = sampleRecord(obj)
	case models.DataTypeFasta:
		summary.RecordCount = countFastaSequences(data.(string))
		summary.SampleRecord = firstLines(data.(string), 3)
	case models.DataTypeCSV, models.DataTypeTSV:
		s := data.(string)
		summary.RecordCount = countDelimitedRecords(s)
		summary.Fields = headerFields(s, dataType)
		summary.SampleRecord = firstLines(s, 2)
	case models.DataTypeText:
		summary.RecordCount = 1
		if s, ok := data.(string); ok {
			summary.SampleRecord = truncateString(s)
		}
	case models.DataTypeNull, models.DataTypeEmptyArray:
		summary.RecordCount = 0
	}

	return summary
}

func fieldNames(m map[string]any) []string {
	fields := make([]string, 0, len(m))
	for k := range m {
		fields = append(fields, k)
	}
	sort.Strings(fields)
	if len(fields) > maxSummaryFields {
		fields = fields[:maxSummaryFields]
	}
	return fields
}

// sampleRecord renders one record with every value truncated so the sample
// stays readable in prompts and UI tooltips. Nested structures are replaced
// by compact truncated JSON.
func sampleRecord(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = truncateValue(v)
	}
	return out
}

func truncateValue(v any) any {
	switch t := v.(type) {
	case string:
		return truncateString(t)
	case nil, bool, float64, int, int64:
		return t
	default:
		data, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprintf("%v", t)
		}
		return truncateString(string(data))
	}
}

func truncateString(s string) string {
	if len(s) <= sampleRecordMaxChars {
		return s
	}
	return s[:sampleRecordMaxChars] + "..."
}

func countFastaSequences(s string) int {
	count := 0
	for _, line := range strings.Split(s, "\n") {
		if strings.HasPrefix(line, ">") {
			count++
		}
	}
	return count
}

// countDelimitedRecords counts data rows, excluding the header line.
func countDelimitedRecords(s string) int {
	lines := 0
	for _, line := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		if strings.TrimSpace(line) != "" {
			lines++
		}
	}
	if lines <= 1 {
		return 0
	}
	return lines - 1
}

func headerFields(s, dataType string) []string {
	header, _, _ := strings.Cut(s, "\n")
	sep := ","
	if dataType == models.DataTypeTSV {
		sep = "\t"
	}
	parts := strings.Split(header, sep)
	if len(parts) > maxSummaryFields {
		parts = parts[:maxSummaryFields]
	}
	fields := make([]string, len(parts))
	for i, p := range parts {
		fields[i] = strings.TrimSpace(p)
	}
	return fields
}

func firstLines(s string, n int) string {
	lines := strings.SplitN(s, "\n", n+1)
	if len(lines) > n {
		lines = lines[:n]
	}
	return truncateString(strings.Join(lines, "\n"))
}

func formatSize(bytes int64) string {
	switch {
	case bytes < 1024:
		return fmt.Sprintf("%d B", bytes)
	case bytes < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(bytes)/(1024*1024))
	}
}
