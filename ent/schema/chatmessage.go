package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatMessage holds the schema definition for a persisted conversation turn.
type ChatMessage struct {
	ent.Schema
}

// Fields of the ChatMessage.
func (ChatMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("session_id"),
		field.Enum("role").
			Values("user", "system", "assistant"),
		field.Text("content"),
		field.Time("timestamp").
			Default(time.Now),
		field.JSON("attachments", []string{}).
			Optional(),
		field.JSON("tool_call", map[string]interface{}{}).
			Optional(),
		field.JSON("ui_tool_call", map[string]interface{}{}).
			Optional(),
		field.String("source_tool").
			Optional(),
		field.String("ui_source_tool").
			Optional(),
		field.String("workflow_id").
			Optional(),
		field.Bool("is_workflow").
			Default(false),
		field.Bool("is_workspace_browse").
			Default(false),
		field.Bool("is_jobs_browse").
			Default(false),
		field.Text("chat_summary").
			Optional(),
		field.String("ui_action").
			Optional(),
		field.JSON("documents", []map[string]interface{}{}).
			Optional(),
		field.JSON("agent_trace", []map[string]interface{}{}).
			Optional(),
	}
}

// Edges of the ChatMessage.
func (ChatMessage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", ChatSession.Type).
			Ref("messages").
			Field("session_id").
			Unique().
			Required(),
	}
}

// Indexes of the ChatMessage.
func (ChatMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "timestamp"),
	}
}
