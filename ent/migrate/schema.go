// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ChatMessagesColumns holds the columns for the "chat_messages" table.
	ChatMessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "system", "assistant"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "attachments", Type: field.TypeJSON, Nullable: true},
		{Name: "tool_call", Type: field.TypeJSON, Nullable: true},
		{Name: "ui_tool_call", Type: field.TypeJSON, Nullable: true},
		{Name: "source_tool", Type: field.TypeString, Nullable: true},
		{Name: "ui_source_tool", Type: field.TypeString, Nullable: true},
		{Name: "workflow_id", Type: field.TypeString, Nullable: true},
		{Name: "is_workflow", Type: field.TypeBool, Default: false},
		{Name: "is_workspace_browse", Type: field.TypeBool, Default: false},
		{Name: "is_jobs_browse", Type: field.TypeBool, Default: false},
		{Name: "chat_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "ui_action", Type: field.TypeString, Nullable: true},
		{Name: "documents", Type: field.TypeJSON, Nullable: true},
		{Name: "agent_trace", Type: field.TypeJSON, Nullable: true},
		{Name: "session_id", Type: field.TypeString},
	}
	// ChatMessagesTable holds the schema information for the "chat_messages" table.
	ChatMessagesTable = &schema.Table{
		Name:       "chat_messages",
		Columns:    ChatMessagesColumns,
		PrimaryKey: []*schema.Column{ChatMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chat_messages_chat_sessions_messages",
				Columns:    []*schema.Column{ChatMessagesColumns[17]},
				RefColumns: []*schema.Column{ChatSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chatmessage_session_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ChatMessagesColumns[17], ChatMessagesColumns[3]},
			},
		},
	}
	// ChatSessionsColumns holds the columns for the "chat_sessions" table.
	ChatSessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "workflow_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "message_count", Type: field.TypeInt, Default: 0},
		{Name: "summarized_count", Type: field.TypeInt, Default: 0},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ChatSessionsTable holds the schema information for the "chat_sessions" table.
	ChatSessionsTable = &schema.Table{
		Name:       "chat_sessions",
		Columns:    ChatSessionsColumns,
		PrimaryKey: []*schema.Column{ChatSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "chatsession_user_id",
				Unique:  false,
				Columns: []*schema.Column{ChatSessionsColumns[1]},
			},
			{
				Name:    "chatsession_user_id_updated_at",
				Unique:  false,
				Columns: []*schema.Column{ChatSessionsColumns[1], ChatSessionsColumns[8]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "job_id", Type: field.TypeString},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_job_id_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1], EventsColumns[0]},
			},
			{
				Name:    "event_channel_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2], EventsColumns[0]},
			},
		},
	}
	// FileRecordsColumns holds the columns for the "file_records" table.
	FileRecordsColumns = []*schema.Column{
		{Name: "file_id", Type: field.TypeString, Unique: true},
		{Name: "tool_id", Type: field.TypeString},
		{Name: "file_name", Type: field.TypeString},
		{Name: "file_path", Type: field.TypeString},
		{Name: "is_error", Type: field.TypeBool, Default: false},
		{Name: "summary", Type: field.TypeJSON},
		{Name: "query_parameters", Type: field.TypeJSON, Nullable: true},
		{Name: "call", Type: field.TypeJSON, Nullable: true},
		{Name: "workspace", Type: field.TypeJSON, Nullable: true},
		{Name: "error_type", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// FileRecordsTable holds the schema information for the "file_records" table.
	FileRecordsTable = &schema.Table{
		Name:       "file_records",
		Columns:    FileRecordsColumns,
		PrimaryKey: []*schema.Column{FileRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "file_records_chat_sessions_files",
				Columns:    []*schema.Column{FileRecordsColumns[12]},
				RefColumns: []*schema.Column{ChatSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "filerecord_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{FileRecordsColumns[12], FileRecordsColumns[11]},
			},
		},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "queue", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"waiting", "delayed", "active", "cancelling", "completed", "failed", "cancelled"}, Default: "waiting"},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "data", Type: field.TypeJSON},
		{Name: "attempts_made", Type: field.TypeInt, Default: 0},
		{Name: "max_attempts", Type: field.TypeInt, Default: 1},
		{Name: "next_attempt_at", Type: field.TypeTime, Nullable: true},
		{Name: "progress", Type: field.TypeJSON, Nullable: true},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "job_status",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[2]},
			},
			{
				Name:    "job_queue_status_priority_created_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[1], JobsColumns[2], JobsColumns[3], JobsColumns[13]},
			},
			{
				Name:    "job_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[2], JobsColumns[12]},
			},
			{
				Name:    "job_status_completed_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[2], JobsColumns[15]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status IN ('completed', 'failed')",
				},
			},
		},
	}
	// SessionMemoriesColumns holds the columns for the "session_memories" table.
	SessionMemoriesColumns = []*schema.Column{
		{Name: "memory_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "focus", Type: field.TypeJSON, Nullable: true},
		{Name: "facts", Type: field.TypeJSON, Nullable: true},
		{Name: "facts_meta", Type: field.TypeJSON, Nullable: true},
		{Name: "tool_facts", Type: field.TypeJSON, Nullable: true},
		{Name: "entities", Type: field.TypeJSON, Nullable: true},
		{Name: "last_tool", Type: field.TypeJSON, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Unique: true},
	}
	// SessionMemoriesTable holds the schema information for the "session_memories" table.
	SessionMemoriesTable = &schema.Table{
		Name:       "session_memories",
		Columns:    SessionMemoriesColumns,
		PrimaryKey: []*schema.Column{SessionMemoriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "session_memories_chat_sessions_memory",
				Columns:    []*schema.Column{SessionMemoriesColumns[9]},
				RefColumns: []*schema.Column{ChatSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ChatMessagesTable,
		ChatSessionsTable,
		EventsTable,
		FileRecordsTable,
		JobsTable,
		SessionMemoriesTable,
	}
)

func init() {
	ChatMessagesTable.ForeignKeys[0].RefTable = ChatSessionsTable
	FileRecordsTable.ForeignKeys[0].RefTable = ChatSessionsTable
	SessionMemoriesTable.ForeignKeys[0].RefTable = ChatSessionsTable
}
