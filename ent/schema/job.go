package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Job holds the schema definition for the durable job queue. All four queue
// classes (agent, rag, summary, facts) share this table, discriminated by
// the queue column.
type Job struct {
	ent.Schema
}

// Fields of the Job.
func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.String("queue").
			Comment("Queue class: agent, rag, summary, facts"),
		field.Enum("status").
			Values("waiting", "delayed", "active", "cancelling", "completed", "failed", "cancelled").
			Default("waiting"),
		field.Int("priority").
			Default(0).
			Comment("Lower runs sooner within a queue class"),
		field.JSON("data", map[string]interface{}{}).
			Comment("JobData payload (query, session, auth token, ...)"),
		field.Int("attempts_made").
			Default(0),
		field.Int("max_attempts").
			Default(1),
		field.Time("next_attempt_at").
			Optional().
			Nillable().
			Comment("Earliest claim time for delayed (retrying) jobs"),
		field.JSON("progress", map[string]interface{}{}).
			Optional(),
		field.JSON("result", map[string]interface{}{}).
			Optional().
			Comment("Terminal JobResult, replayed on reconnect"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the Job.
func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("queue", "status", "priority", "created_at"),
		index.Fields("status", "last_heartbeat_at"),
		index.Fields("status", "completed_at").
			Annotations(entsql.IndexWhere("status IN ('completed', 'failed')")),
	}
}
