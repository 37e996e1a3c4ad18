// Package models defines the shared domain types exchanged between the
// orchestrator, executor, file store, queue, and API layers.
package models

import "time"

// Detected data type tags for materialized tool results.
const (
	DataTypeJSONArray  = "json_array"
	DataTypeJSONObject = "json_object"
	DataTypeArray      = "array"
	DataTypeFasta      = "fasta"
	DataTypeCSV        = "csv"
	DataTypeTSV        = "tsv"
	DataTypeText       = "text"
	DataTypeNull       = "null"
	DataTypeEmptyArray = "empty_array"
)

// FileSummary describes a materialized payload without carrying the data.
type FileSummary struct {
	DataType       string         `json:"data_type"`
	Size           int64          `json:"size"`
	SizeFormatted  string         `json:"size_formatted"`
	RecordCount    int            `json:"record_count"`
	Fields         []string       `json:"fields"`
	SampleRecord   any            `json:"sample_record,omitempty"`
	SourceMetadata map[string]any `json:"source_metadata,omitempty"`
}

// WorkspaceInfo records a successful mirror into the user's remote workspace.
type WorkspaceInfo struct {
	WorkspacePath string    `json:"workspace_path"`
	WorkspaceURL  string    `json:"workspace_url"`
	UploadedAt    time.Time `json:"uploaded_at"`
}

// ReplayCall is the envelope the UI uses to re-issue a tool call.
type ReplayCall struct {
	Tool              string         `json:"tool"`
	ArgumentsExecuted map[string]any `json:"arguments_executed"`
	Replayable        bool           `json:"replayable"`
	Replay            map[string]any `json:"replay,omitempty"`
}

// FileReference is the canonical tool-result envelope after materialization.
// Exactly one FileReference exists per successful tool call unless the tool
// is on the bypass list.
type FileReference struct {
	Type            string         `json:"type"` // always "file_reference"
	FileID          string         `json:"file_id"`
	FileName        string         `json:"file_name"`
	FilePath        string         `json:"file_path"`
	IsError         bool           `json:"is_error"`
	Summary         FileSummary    `json:"summary"`
	QueryParameters map[string]any `json:"query_parameters,omitempty"`
	Call            *ReplayCall    `json:"call,omitempty"`
	Workspace       *WorkspaceInfo `json:"workspace,omitempty"`
	ErrorType       string         `json:"error_type,omitempty"`
	ErrorMessage    string         `json:"error_message,omitempty"`
	Message         string         `json:"message"`
}

// FileReferenceType is the tag carried by every FileReference.
const FileReferenceType = "file_reference"

// RagDocument is one retrieved document from a RAG-classified tool.
type RagDocument struct {
	Title    string         `json:"title,omitempty"`
	Content  string         `json:"content"`
	Source   string         `json:"source,omitempty"`
	Score    float64        `json:"score,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// RagResult is the normalized response of a RAG-classified tool. It is
// returned directly to the orchestrator without file materialization.
type RagResult struct {
	Type      string        `json:"type"` // always "rag_result"
	Query     string        `json:"query"`
	Count     int           `json:"count"`
	Summary   string        `json:"summary,omitempty"`
	Documents []RagDocument `json:"documents"`
}

// RagResultType is the tag carried by every RagResult.
const RagResultType = "rag_result"
