package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatSession holds the schema definition for a copilot chat session.
type ChatSession struct {
	ent.Schema
}

// Fields of the ChatSession.
func (ChatSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("user_id"),
		field.String("title").
			Optional(),
		field.JSON("workflow_ids", []string{}).
			Optional().
			Comment("Workflow ids extracted from workflow-tool results, insertion order, deduplicated"),
		field.Int("message_count").
			Default(0),
		field.Int("summarized_count").
			Default(0).
			Comment("Message count covered by the stored summary"),
		field.Text("summary").
			Optional().
			Comment("Compact conversation summary maintained by the summary worker"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the ChatSession.
func (ChatSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("messages", ChatMessage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("files", FileRecord.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("memory", SessionMemory.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the ChatSession.
func (ChatSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("user_id", "updated_at"),
	}
}
