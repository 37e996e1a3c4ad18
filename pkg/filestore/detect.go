// Package filestore materializes normalized tool results into typed files
// under a per-session downloads directory, mirrors their metadata in the
// database, and optionally uploads them to the user's remote workspace.
package filestore

import (
	"strings"

	"github.com/cucinellclark/bvbrc-copilot/pkg/models"
)

// DetectDataType classifies a normalized payload into one of the data type
// tags. Detection is coarse on purpose: the file store does not parse
// bioinformatics formats beyond what is needed to pick an extension and a
// counting rule.
func DetectDataType(data any) string {
	switch v := data.(type) {
	case nil:
		return models.DataTypeNull
	case []any:
		if len(v) == 0 {
			return models.DataTypeEmptyArray
		}
		if _, ok := v[0].(map[string]any); ok {
			return models.DataTypeJSONArray
		}
		return models.DataTypeArray
	case map[string]any:
		return models.DataTypeJSONObject
	case string:
		return detectStringType(v)
	default:
		return models.DataTypeText
	}
}

func detectStringType(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return models.DataTypeText
	}
	if strings.HasPrefix(trimmed, ">") && strings.Contains(trimmed, "\n") {
		return models.DataTypeFasta
	}
	if strings.Contains(trimmed, "\n") {
		// Tab wins over comma: TSV rows frequently contain commas in
		// free-text columns.
		if strings.Contains(trimmed, "\t") {
			return models.DataTypeTSV
		}
		if strings.Contains(trimmed, ",") {
			return models.DataTypeCSV
		}
	}
	return models.DataTypeText
}

// ExtensionFor maps a data type tag to the file extension used on disk.
func ExtensionFor(dataType string) string {
	switch dataType {
	case models.DataTypeJSONArray, models.DataTypeJSONObject,
		models.DataTypeArray, models.DataTypeEmptyArray, models.DataTypeNull:
		return "json"
	case models.DataTypeFasta:
		return "fa"
	case models.DataTypeCSV:
		return "csv"
	case models.DataTypeTSV:
		return "tsv"
	default:
		return "txt"
	}
}

// MIMEFor maps a data type tag to the Content-Type used for uploads.
func MIMEFor(dataType string) string {
	switch dataType {
	case models.DataTypeJSONArray, models.DataTypeJSONObject,
		models.DataTypeArray, models.DataTypeEmptyArray, models.DataTypeNull:
		return "application/json"
	case models.DataTypeCSV:
		return "text/csv"
	case models.DataTypeTSV:
		return "text/tab-separated-values"
	default:
		return "text/plain"
	}
}

// WorkspaceTypeFor maps a data type tag to the workspace semantic object
// type used when creating the remote object.
func WorkspaceTypeFor(dataType string) string {
	switch dataType {
	case models.DataTypeFasta:
		return "contigs"
	case models.DataTypeCSV:
		return "csv"
	case models.DataTypeTSV:
		return "tsv"
	case models.DataTypeJSONArray, models.DataTypeJSONObject,
		models.DataTypeArray, models.DataTypeEmptyArray, models.DataTypeNull:
		return "json"
	default:
		return "txt"
	}
}
