// Code generated by ent, DO NOT EDIT.

package chatmessage

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the chatmessage type in the database.
	Label = "chat_message"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "message_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldAttachments holds the string denoting the attachments field in the database.
	FieldAttachments = "attachments"
	// FieldToolCall holds the string denoting the tool_call field in the database.
	FieldToolCall = "tool_call"
	// FieldUIToolCall holds the string denoting the ui_tool_call field in the database.
	FieldUIToolCall = "ui_tool_call"
	// FieldSourceTool holds the string denoting the source_tool field in the database.
	FieldSourceTool = "source_tool"
	// FieldUISourceTool holds the string denoting the ui_source_tool field in the database.
	FieldUISourceTool = "ui_source_tool"
	// FieldWorkflowID holds the string denoting the workflow_id field in the database.
	FieldWorkflowID = "workflow_id"
	// FieldIsWorkflow holds the string denoting the is_workflow field in the database.
	FieldIsWorkflow = "is_workflow"
	// FieldIsWorkspaceBrowse holds the string denoting the is_workspace_browse field in the database.
	FieldIsWorkspaceBrowse = "is_workspace_browse"
	// FieldIsJobsBrowse holds the string denoting the is_jobs_browse field in the database.
	FieldIsJobsBrowse = "is_jobs_browse"
	// FieldChatSummary holds the string denoting the chat_summary field in the database.
	FieldChatSummary = "chat_summary"
	// FieldUIAction holds the string denoting the ui_action field in the database.
	FieldUIAction = "ui_action"
	// FieldDocuments holds the string denoting the documents field in the database.
	FieldDocuments = "documents"
	// FieldAgentTrace holds the string denoting the agent_trace field in the database.
	FieldAgentTrace = "agent_trace"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// ChatSessionFieldID holds the string denoting the ID field of the ChatSession.
	ChatSessionFieldID = "session_id"
	// Table holds the table name of the chatmessage in the database.
	Table = "chat_messages"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "chat_messages"
	// SessionInverseTable is the table name for the ChatSession entity.
	// It exists in this package in order to avoid circular dependency with the "chatsession" package.
	SessionInverseTable = "chat_sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
)

// Columns holds all SQL columns for chatmessage fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldRole,
	FieldContent,
	FieldTimestamp,
	FieldAttachments,
	FieldToolCall,
	FieldUIToolCall,
	FieldSourceTool,
	FieldUISourceTool,
	FieldWorkflowID,
	FieldIsWorkflow,
	FieldIsWorkspaceBrowse,
	FieldIsJobsBrowse,
	FieldChatSummary,
	FieldUIAction,
	FieldDocuments,
	FieldAgentTrace,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// DefaultIsWorkflow holds the default value on creation for the "is_workflow" field.
	DefaultIsWorkflow bool
	// DefaultIsWorkspaceBrowse holds the default value on creation for the "is_workspace_browse" field.
	DefaultIsWorkspaceBrowse bool
	// DefaultIsJobsBrowse holds the default value on creation for the "is_jobs_browse" field.
	DefaultIsJobsBrowse bool
)

// Role defines the type for the "role" enum field.
type Role string

// Role values.
const (
	RoleUser      Role = "user"
	RoleSystem    Role = "system"
	RoleAssistant Role = "assistant"
)

func (r Role) String() string {
	return string(r)
}

// RoleValidator is a validator for the "role" field enum values. It is called by the builders before save.
func RoleValidator(r Role) error {
	switch r {
	case RoleUser, RoleSystem, RoleAssistant:
		return nil
	default:
		return fmt.Errorf("chatmessage: invalid enum value for role field: %q", r)
	}
}

// OrderOption defines the ordering options for the ChatMessage queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySourceTool orders the results by the source_tool field.
func BySourceTool(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceTool, opts...).ToFunc()
}

// ByUISourceTool orders the results by the ui_source_tool field.
func ByUISourceTool(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUISourceTool, opts...).ToFunc()
}

// ByWorkflowID orders the results by the workflow_id field.
func ByWorkflowID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkflowID, opts...).ToFunc()
}

// ByIsWorkflow orders the results by the is_workflow field.
func ByIsWorkflow(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsWorkflow, opts...).ToFunc()
}

// ByIsWorkspaceBrowse orders the results by the is_workspace_browse field.
func ByIsWorkspaceBrowse(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsWorkspaceBrowse, opts...).ToFunc()
}

// ByIsJobsBrowse orders the results by the is_jobs_browse field.
func ByIsJobsBrowse(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsJobsBrowse, opts...).ToFunc()
}

// ByChatSummary orders the results by the chat_summary field.
func ByChatSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChatSummary, opts...).ToFunc()
}

// ByUIAction orders the results by the ui_action field.
func ByUIAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUIAction, opts...).ToFunc()
}

// BySessionField orders the results by session field.
func BySessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionStep(), sql.OrderByField(field, opts...))
	}
}
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, ChatSessionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
	)
}
