// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cucinellclark/bvbrc-copilot/ent/chatsession"
	"github.com/cucinellclark/bvbrc-copilot/ent/sessionmemory"
)

// SessionMemory is the model entity for the SessionMemory schema.
type SessionMemory struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Promoted identifier: {type, key, value}
	Focus map[string]interface{} `json:"focus,omitempty"`
	// Primitive facts, max 200 keys, strings <= 200 chars
	Facts map[string]interface{} `json:"facts,omitempty"`
	// source=llm marks authoritative facts never overwritten by heuristics
	FactsMeta map[string]interface{} `json:"facts_meta,omitempty"`
	// ToolFacts holds the value of the "tool_facts" field.
	ToolFacts map[string]interface{} `json:"tool_facts,omitempty"`
	// Entities holds the value of the "entities" field.
	Entities map[string]interface{} `json:"entities,omitempty"`
	// {tool, parameters, timestamp} of the most recent invocation
	LastTool map[string]interface{} `json:"last_tool,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SessionMemoryQuery when eager-loading is set.
	Edges        SessionMemoryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SessionMemoryEdges holds the relations/edges for other nodes in the graph.
type SessionMemoryEdges struct {
	// Session holds the value of the session edge.
	Session *ChatSession `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SessionMemoryEdges) SessionOrErr() (*ChatSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: chatsession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SessionMemory) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sessionmemory.FieldFocus, sessionmemory.FieldFacts, sessionmemory.FieldFactsMeta, sessionmemory.FieldToolFacts, sessionmemory.FieldEntities, sessionmemory.FieldLastTool:
			values[i] = new([]byte)
		case sessionmemory.FieldID, sessionmemory.FieldSessionID, sessionmemory.FieldUserID:
			values[i] = new(sql.NullString)
		case sessionmemory.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SessionMemory fields.
func (_m *SessionMemory) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sessionmemory.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case sessionmemory.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case sessionmemory.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case sessionmemory.FieldFocus:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field focus", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Focus); err != nil {
					return fmt.Errorf("unmarshal field focus: %w", err)
				}
			}
		case sessionmemory.FieldFacts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field facts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Facts); err != nil {
					return fmt.Errorf("unmarshal field facts: %w", err)
				}
			}
		case sessionmemory.FieldFactsMeta:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field facts_meta", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FactsMeta); err != nil {
					return fmt.Errorf("unmarshal field facts_meta: %w", err)
				}
			}
		case sessionmemory.FieldToolFacts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tool_facts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ToolFacts); err != nil {
					return fmt.Errorf("unmarshal field tool_facts: %w", err)
				}
			}
		case sessionmemory.FieldEntities:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field entities", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Entities); err != nil {
					return fmt.Errorf("unmarshal field entities: %w", err)
				}
			}
		case sessionmemory.FieldLastTool:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field last_tool", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.LastTool); err != nil {
					return fmt.Errorf("unmarshal field last_tool: %w", err)
				}
			}
		case sessionmemory.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SessionMemory.
// This includes values selected through modifiers, order, etc.
func (_m *SessionMemory) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the SessionMemory entity.
func (_m *SessionMemory) QuerySession() *ChatSessionQuery {
	return NewSessionMemoryClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this SessionMemory.
// Note that you need to call SessionMemory.Unwrap() before calling this method if this SessionMemory
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SessionMemory) Update() *SessionMemoryUpdateOne {
	return NewSessionMemoryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SessionMemory entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SessionMemory) Unwrap() *SessionMemory {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SessionMemory is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SessionMemory) String() string {
	var builder strings.Builder
	builder.WriteString("SessionMemory(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("focus=")
	builder.WriteString(fmt.Sprintf("%v", _m.Focus))
	builder.WriteString(", ")
	builder.WriteString("facts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Facts))
	builder.WriteString(", ")
	builder.WriteString("facts_meta=")
	builder.WriteString(fmt.Sprintf("%v", _m.FactsMeta))
	builder.WriteString(", ")
	builder.WriteString("tool_facts=")
	builder.WriteString(fmt.Sprintf("%v", _m.ToolFacts))
	builder.WriteString(", ")
	builder.WriteString("entities=")
	builder.WriteString(fmt.Sprintf("%v", _m.Entities))
	builder.WriteString(", ")
	builder.WriteString("last_tool=")
	builder.WriteString(fmt.Sprintf("%v", _m.LastTool))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SessionMemories is a parsable slice of SessionMemory.
type SessionMemories []*SessionMemory
