package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FileRecord holds the schema definition for materialized tool-result files.
// The row and the on-disk file at file_path must both exist or both be
// absent; the file store writes the row only after a successful disk write
// and removes the file if the row write fails.
type FileRecord struct {
	ent.Schema
}

// Fields of the FileRecord.
func (FileRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("file_id").
			Unique().
			Immutable(),
		field.String("session_id"),
		field.String("tool_id").
			Comment("Fully qualified tool id that produced the file"),
		field.String("file_name"),
		field.String("file_path"),
		field.Bool("is_error").
			Default(false),
		field.JSON("summary", map[string]interface{}{}).
			Comment("FileSummary: data_type, size, record_count, fields, sample_record"),
		field.JSON("query_parameters", map[string]interface{}{}).
			Optional(),
		field.JSON("call", map[string]interface{}{}).
			Optional().
			Comment("Replay envelope for replayable tools"),
		field.JSON("workspace", map[string]interface{}{}).
			Optional().
			Comment("Remote workspace mirror info, absent unless uploaded"),
		field.String("error_type").
			Optional(),
		field.Text("error_message").
			Optional(),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the FileRecord.
func (FileRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", ChatSession.Type).
			Ref("files").
			Field("session_id").
			Unique().
			Required(),
	}
}

// Indexes of the FileRecord.
func (FileRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "created_at"),
	}
}
