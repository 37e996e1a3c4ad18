// Code generated by ent, DO NOT EDIT.

package sessionmemory

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the sessionmemory type in the database.
	Label = "session_memory"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "memory_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldFocus holds the string denoting the focus field in the database.
	FieldFocus = "focus"
	// FieldFacts holds the string denoting the facts field in the database.
	FieldFacts = "facts"
	// FieldFactsMeta holds the string denoting the facts_meta field in the database.
	FieldFactsMeta = "facts_meta"
	// FieldToolFacts holds the string denoting the tool_facts field in the database.
	FieldToolFacts = "tool_facts"
	// FieldEntities holds the string denoting the entities field in the database.
	FieldEntities = "entities"
	// FieldLastTool holds the string denoting the last_tool field in the database.
	FieldLastTool = "last_tool"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// ChatSessionFieldID holds the string denoting the ID field of the ChatSession.
	ChatSessionFieldID = "session_id"
	// Table holds the table name of the sessionmemory in the database.
	Table = "session_memories"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "session_memories"
	// SessionInverseTable is the table name for the ChatSession entity.
	// It exists in this package in order to avoid circular dependency with the "chatsession" package.
	SessionInverseTable = "chat_sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
)

// Columns holds all SQL columns for sessionmemory fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldUserID,
	FieldFocus,
	FieldFacts,
	FieldFactsMeta,
	FieldToolFacts,
	FieldEntities,
	FieldLastTool,
	FieldUpdatedAt,
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
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the SessionMemory queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
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
		sqlgraph.Edge(sqlgraph.O2O, true, SessionTable, SessionColumn),
	)
}
