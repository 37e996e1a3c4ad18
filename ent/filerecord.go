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
	"github.com/cucinellclark/bvbrc-copilot/ent/filerecord"
)

// FileRecord is the model entity for the FileRecord schema.
type FileRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// Fully qualified tool id that produced the file
	ToolID string `json:"tool_id,omitempty"`
	// FileName holds the value of the "file_name" field.
	FileName string `json:"file_name,omitempty"`
	// FilePath holds the value of the "file_path" field.
	FilePath string `json:"file_path,omitempty"`
	// IsError holds the value of the "is_error" field.
	IsError bool `json:"is_error,omitempty"`
	// FileSummary: data_type, size, record_count, fields, sample_record
	Summary map[string]interface{} `json:"summary,omitempty"`
	// QueryParameters holds the value of the "query_parameters" field.
	QueryParameters map[string]interface{} `json:"query_parameters,omitempty"`
	// Replay envelope for replayable tools
	Call map[string]interface{} `json:"call,omitempty"`
	// Remote workspace mirror info, absent unless uploaded
	Workspace map[string]interface{} `json:"workspace,omitempty"`
	// ErrorType holds the value of the "error_type" field.
	ErrorType string `json:"error_type,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FileRecordQuery when eager-loading is set.
	Edges        FileRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FileRecordEdges holds the relations/edges for other nodes in the graph.
type FileRecordEdges struct {
	// Session holds the value of the session edge.
	Session *ChatSession `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FileRecordEdges) SessionOrErr() (*ChatSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: chatsession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FileRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case filerecord.FieldSummary, filerecord.FieldQueryParameters, filerecord.FieldCall, filerecord.FieldWorkspace:
			values[i] = new([]byte)
		case filerecord.FieldIsError:
			values[i] = new(sql.NullBool)
		case filerecord.FieldID, filerecord.FieldSessionID, filerecord.FieldToolID, filerecord.FieldFileName, filerecord.FieldFilePath, filerecord.FieldErrorType, filerecord.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case filerecord.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FileRecord fields.
func (_m *FileRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case filerecord.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case filerecord.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case filerecord.FieldToolID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tool_id", values[i])
			} else if value.Valid {
				_m.ToolID = value.String
			}
		case filerecord.FieldFileName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_name", values[i])
			} else if value.Valid {
				_m.FileName = value.String
			}
		case filerecord.FieldFilePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_path", values[i])
			} else if value.Valid {
				_m.FilePath = value.String
			}
		case filerecord.FieldIsError:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_error", values[i])
			} else if value.Valid {
				_m.IsError = value.Bool
			}
		case filerecord.FieldSummary:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Summary); err != nil {
					return fmt.Errorf("unmarshal field summary: %w", err)
				}
			}
		case filerecord.FieldQueryParameters:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field query_parameters", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.QueryParameters); err != nil {
					return fmt.Errorf("unmarshal field query_parameters: %w", err)
				}
			}
		case filerecord.FieldCall:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field call", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Call); err != nil {
					return fmt.Errorf("unmarshal field call: %w", err)
				}
			}
		case filerecord.FieldWorkspace:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field workspace", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Workspace); err != nil {
					return fmt.Errorf("unmarshal field workspace: %w", err)
				}
			}
		case filerecord.FieldErrorType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_type", values[i])
			} else if value.Valid {
				_m.ErrorType = value.String
			}
		case filerecord.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = value.String
			}
		case filerecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FileRecord.
// This includes values selected through modifiers, order, etc.
func (_m *FileRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the FileRecord entity.
func (_m *FileRecord) QuerySession() *ChatSessionQuery {
	return NewFileRecordClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this FileRecord.
// Note that you need to call FileRecord.Unwrap() before calling this method if this FileRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FileRecord) Update() *FileRecordUpdateOne {
	return NewFileRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FileRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FileRecord) Unwrap() *FileRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FileRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FileRecord) String() string {
	var builder strings.Builder
	builder.WriteString("FileRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("tool_id=")
	builder.WriteString(_m.ToolID)
	builder.WriteString(", ")
	builder.WriteString("file_name=")
	builder.WriteString(_m.FileName)
	builder.WriteString(", ")
	builder.WriteString("file_path=")
	builder.WriteString(_m.FilePath)
	builder.WriteString(", ")
	builder.WriteString("is_error=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsError))
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(fmt.Sprintf("%v", _m.Summary))
	builder.WriteString(", ")
	builder.WriteString("query_parameters=")
	builder.WriteString(fmt.Sprintf("%v", _m.QueryParameters))
	builder.WriteString(", ")
	builder.WriteString("call=")
	builder.WriteString(fmt.Sprintf("%v", _m.Call))
	builder.WriteString(", ")
	builder.WriteString("workspace=")
	builder.WriteString(fmt.Sprintf("%v", _m.Workspace))
	builder.WriteString(", ")
	builder.WriteString("error_type=")
	builder.WriteString(_m.ErrorType)
	builder.WriteString(", ")
	builder.WriteString("error_message=")
	builder.WriteString(_m.ErrorMessage)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// FileRecords is a parsable slice of FileRecord.
type FileRecords []*FileRecord
