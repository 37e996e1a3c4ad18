// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cucinellclark/bvbrc-copilot/ent/chatmessage"
	"github.com/cucinellclark/bvbrc-copilot/ent/chatsession"
)

// ChatMessage is the model entity for the ChatMessage schema.
type ChatMessage struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// Role holds the value of the "role" field.
	Role chatmessage.Role `json:"role,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// Timestamp holds the value of the "timestamp" field.
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Attachments holds the value of the "attachments" field.
	Attachments []string `json:"attachments,omitempty"`
	// ToolCall holds the value of the "tool_call" field.
	ToolCall map[string]interface{} `json:"tool_call,omitempty"`
	// UIToolCall holds the value of the "ui_tool_call" field.
	UIToolCall map[string]interface{} `json:"ui_tool_call,omitempty"`
	// SourceTool holds the value of the "source_tool" field.
	SourceTool string `json:"source_tool,omitempty"`
	// UISourceTool holds the value of the "ui_source_tool" field.
	UISourceTool string `json:"ui_source_tool,omitempty"`
	// WorkflowID holds the value of the "workflow_id" field.
	WorkflowID string `json:"workflow_id,omitempty"`
	// IsWorkflow holds the value of the "is_workflow" field.
	IsWorkflow bool `json:"is_workflow,omitempty"`
	// IsWorkspaceBrowse holds the value of the "is_workspace_browse" field.
	IsWorkspaceBrowse bool `json:"is_workspace_browse,omitempty"`
	// IsJobsBrowse holds the value of the "is_jobs_browse" field.
	IsJobsBrowse bool `json:"is_jobs_browse,omitempty"`
	// ChatSummary holds the value of the "chat_summary" field.
	ChatSummary string `json:"chat_summary,omitempty"`
	// UIAction holds the value of the "ui_action" field.
	UIAction string `json:"ui_action,omitempty"`
	// Documents holds the value of the "documents" field.
	Documents []map[string]interface{} `json:"documents,omitempty"`
	// AgentTrace holds the value of the "agent_trace" field.
	AgentTrace []map[string]interface{} `json:"agent_trace,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ChatMessageQuery when eager-loading is set.
	Edges        ChatMessageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ChatMessageEdges holds the relations/edges for other nodes in the graph.
type ChatMessageEdges struct {
	// Session holds the value of the session edge.
	Session *ChatSession `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ChatMessageEdges) SessionOrErr() (*ChatSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: chatsession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ChatMessage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case chatmessage.FieldAttachments, chatmessage.FieldToolCall, chatmessage.FieldUIToolCall, chatmessage.FieldDocuments, chatmessage.FieldAgentTrace:
			values[i] = new([]byte)
		case chatmessage.FieldIsWorkflow, chatmessage.FieldIsWorkspaceBrowse, chatmessage.FieldIsJobsBrowse:
			values[i] = new(sql.NullBool)
		case chatmessage.FieldID, chatmessage.FieldSessionID, chatmessage.FieldRole, chatmessage.FieldContent, chatmessage.FieldSourceTool, chatmessage.FieldUISourceTool, chatmessage.FieldWorkflowID, chatmessage.FieldChatSummary, chatmessage.FieldUIAction:
			values[i] = new(sql.NullString)
		case chatmessage.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ChatMessage fields.
func (_m *ChatMessage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case chatmessage.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case chatmessage.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case chatmessage.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = chatmessage.Role(value.String)
			}
		case chatmessage.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case chatmessage.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case chatmessage.FieldAttachments:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field attachments", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Attachments); err != nil {
					return fmt.Errorf("unmarshal field attachments: %w", err)
				}
			}
		case chatmessage.FieldToolCall:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tool_call", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ToolCall); err != nil {
					return fmt.Errorf("unmarshal field tool_call: %w", err)
				}
			}
		case chatmessage.FieldUIToolCall:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field ui_tool_call", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.UIToolCall); err != nil {
					return fmt.Errorf("unmarshal field ui_tool_call: %w", err)
				}
			}
		case chatmessage.FieldSourceTool:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_tool", values[i])
			} else if value.Valid {
				_m.SourceTool = value.String
			}
		case chatmessage.FieldUISourceTool:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ui_source_tool", values[i])
			} else if value.Valid {
				_m.UISourceTool = value.String
			}
		case chatmessage.FieldWorkflowID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workflow_id", values[i])
			} else if value.Valid {
				_m.WorkflowID = value.String
			}
		case chatmessage.FieldIsWorkflow:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_workflow", values[i])
			} else if value.Valid {
				_m.IsWorkflow = value.Bool
			}
		case chatmessage.FieldIsWorkspaceBrowse:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_workspace_browse", values[i])
			} else if value.Valid {
				_m.IsWorkspaceBrowse = value.Bool
			}
		case chatmessage.FieldIsJobsBrowse:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_jobs_browse", values[i])
			} else if value.Valid {
				_m.IsJobsBrowse = value.Bool
			}
		case chatmessage.FieldChatSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chat_summary", values[i])
			} else if value.Valid {
				_m.ChatSummary = value.String
			}
		case chatmessage.FieldUIAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ui_action", values[i])
			} else if value.Valid {
				_m.UIAction = value.String
			}
		case chatmessage.FieldDocuments:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field documents", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Documents); err != nil {
					return fmt.Errorf("unmarshal field documents: %w", err)
				}
			}
		case chatmessage.FieldAgentTrace:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field agent_trace", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AgentTrace); err != nil {
					return fmt.Errorf("unmarshal field agent_trace: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ChatMessage.
// This includes values selected through modifiers, order, etc.
func (_m *ChatMessage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the ChatMessage entity.
func (_m *ChatMessage) QuerySession() *ChatSessionQuery {
	return NewChatMessageClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this ChatMessage.
// Note that you need to call ChatMessage.Unwrap() before calling this method if this ChatMessage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ChatMessage) Update() *ChatMessageUpdateOne {
	return NewChatMessageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ChatMessage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ChatMessage) Unwrap() *ChatMessage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ChatMessage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ChatMessage) String() string {
	var builder strings.Builder
	builder.WriteString("ChatMessage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(fmt.Sprintf("%v", _m.Role))
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("attachments=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attachments))
	builder.WriteString(", ")
	builder.WriteString("tool_call=")
	builder.WriteString(fmt.Sprintf("%v", _m.ToolCall))
	builder.WriteString(", ")
	builder.WriteString("ui_tool_call=")
	builder.WriteString(fmt.Sprintf("%v", _m.UIToolCall))
	builder.WriteString(", ")
	builder.WriteString("source_tool=")
	builder.WriteString(_m.SourceTool)
	builder.WriteString(", ")
	builder.WriteString("ui_source_tool=")
	builder.WriteString(_m.UISourceTool)
	builder.WriteString(", ")
	builder.WriteString("workflow_id=")
	builder.WriteString(_m.WorkflowID)
	builder.WriteString(", ")
	builder.WriteString("is_workflow=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsWorkflow))
	builder.WriteString(", ")
	builder.WriteString("is_workspace_browse=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsWorkspaceBrowse))
	builder.WriteString(", ")
	builder.WriteString("is_jobs_browse=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsJobsBrowse))
	builder.WriteString(", ")
	builder.WriteString("chat_summary=")
	builder.WriteString(_m.ChatSummary)
	builder.WriteString(", ")
	builder.WriteString("ui_action=")
	builder.WriteString(_m.UIAction)
	builder.WriteString(", ")
	builder.WriteString("documents=")
	builder.WriteString(fmt.Sprintf("%v", _m.Documents))
	builder.WriteString(", ")
	builder.WriteString("agent_trace=")
	builder.WriteString(fmt.Sprintf("%v", _m.AgentTrace))
	builder.WriteByte(')')
	return builder.String()
}

// ChatMessages is a parsable slice of ChatMessage.
type ChatMessages []*ChatMessage
