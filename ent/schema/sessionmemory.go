package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// SessionMemory holds the schema definition for per-session structured
// memory: primitive facts, per-tool extracted facts, entities, and the
// last-tool record. One row per session.
type SessionMemory struct {
	ent.Schema
}

// Fields of the SessionMemory.
func (SessionMemory) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("memory_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Unique(),
		field.String("user_id"),
		field.JSON("focus", map[string]interface{}{}).
			Optional().
			Comment("Promoted identifier: {type, key, value}"),
		field.JSON("facts", map[string]interface{}{}).
			Optional().
			Comment("Primitive facts, max 200 keys, strings <= 200 chars"),
		field.JSON("facts_meta", map[string]interface{}{}).
			Optional().
			Comment("source=llm marks authoritative facts never overwritten by heuristics"),
		field.JSON("tool_facts", map[string]interface{}{}).
			Optional(),
		field.JSON("entities", map[string]interface{}{}).
			Optional(),
		field.JSON("last_tool", map[string]interface{}{}).
			Optional().
			Comment("{tool, parameters, timestamp} of the most recent invocation"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the SessionMemory.
func (SessionMemory) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", ChatSession.Type).
			Ref("memory").
			Field("session_id").
			Unique().
			Required(),
	}
}
