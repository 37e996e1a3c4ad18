// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cucinellclark/bvbrc-copilot/ent/chatmessage"
	"github.com/cucinellclark/bvbrc-copilot/ent/chatsession"
	"github.com/cucinellclark/bvbrc-copilot/ent/event"
	"github.com/cucinellclark/bvbrc-copilot/ent/filerecord"
	"github.com/cucinellclark/bvbrc-copilot/ent/job"
	"github.com/cucinellclark/bvbrc-copilot/ent/predicate"
	"github.com/cucinellclark/bvbrc-copilot/ent/sessionmemory"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeChatMessage   = "ChatMessage"
	TypeChatSession   = "ChatSession"
	TypeEvent         = "Event"
	TypeFileRecord    = "FileRecord"
	TypeJob           = "Job"
	TypeSessionMemory = "SessionMemory"
)

// ChatMessageMutation represents an operation that mutates the ChatMessage nodes in the graph.
type ChatMessageMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	role                *chatmessage.Role
	content             *string
	timestamp           *time.Time
	attachments         *[]string
	appendattachments   []string
	tool_call           *map[string]interface{}
	ui_tool_call        *map[string]interface{}
	source_tool         *string
	ui_source_tool      *string
	workflow_id         *string
	is_workflow         *bool
	is_workspace_browse *bool
	is_jobs_browse      *bool
	chat_summary        *string
	ui_action           *string
	documents           *[]map[string]interface{}
	appenddocuments     []map[string]interface{}
	agent_trace         *[]map[string]interface{}
	appendagent_trace   []map[string]interface{}
	clearedFields       map[string]struct{}
	session             *string
	clearedsession      bool
	done                bool
	oldValue            func(context.Context) (*ChatMessage, error)
	predicates          []predicate.ChatMessage
}

var _ ent.Mutation = (*ChatMessageMutation)(nil)

// chatmessageOption allows management of the mutation configuration using functional options.
type chatmessageOption func(*ChatMessageMutation)

// newChatMessageMutation creates new mutation for the ChatMessage entity.
func newChatMessageMutation(c config, op Op, opts ...chatmessageOption) *ChatMessageMutation {
	m := &ChatMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeChatMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChatMessageID sets the ID field of the mutation.
func withChatMessageID(id string) chatmessageOption {
	return func(m *ChatMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *ChatMessage
		)
		m.oldValue = func(ctx context.Context) (*ChatMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChatMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChatMessage sets the old ChatMessage of the mutation.
func withChatMessage(node *ChatMessage) chatmessageOption {
	return func(m *ChatMessageMutation) {
		m.oldValue = func(context.Context) (*ChatMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChatMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChatMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ChatMessage entities.
func (m *ChatMessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChatMessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChatMessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChatMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *ChatMessageMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ChatMessageMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ChatMessageMutation) ResetSessionID() {
	m.session = nil
}

// SetRole sets the "role" field.
func (m *ChatMessageMutation) SetRole(c chatmessage.Role) {
	m.role = &c
}

// Role returns the value of the "role" field in the mutation.
func (m *ChatMessageMutation) Role() (r chatmessage.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldRole(ctx context.Context) (v chatmessage.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *ChatMessageMutation) ResetRole() {
	m.role = nil
}

// SetContent sets the "content" field.
func (m *ChatMessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ChatMessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *ChatMessageMutation) ResetContent() {
	m.content = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *ChatMessageMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ChatMessageMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *ChatMessageMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetAttachments sets the "attachments" field.
func (m *ChatMessageMutation) SetAttachments(s []string) {
	m.attachments = &s
	m.appendattachments = nil
}

// Attachments returns the value of the "attachments" field in the mutation.
func (m *ChatMessageMutation) Attachments() (r []string, exists bool) {
	v := m.attachments
	if v == nil {
		return
	}
	return *v, true
}

// OldAttachments returns the old "attachments" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldAttachments(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttachments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttachments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttachments: %w", err)
	}
	return oldValue.Attachments, nil
}

// AppendAttachments adds s to the "attachments" field.
func (m *ChatMessageMutation) AppendAttachments(s []string) {
	m.appendattachments = append(m.appendattachments, s...)
}

// AppendedAttachments returns the list of values that were appended to the "attachments" field in this mutation.
func (m *ChatMessageMutation) AppendedAttachments() ([]string, bool) {
	if len(m.appendattachments) == 0 {
		return nil, false
	}
	return m.appendattachments, true
}

// ClearAttachments clears the value of the "attachments" field.
func (m *ChatMessageMutation) ClearAttachments() {
	m.attachments = nil
	m.appendattachments = nil
	m.clearedFields[chatmessage.FieldAttachments] = struct{}{}
}

// AttachmentsCleared returns if the "attachments" field was cleared in this mutation.
func (m *ChatMessageMutation) AttachmentsCleared() bool {
	_, ok := m.clearedFields[chatmessage.FieldAttachments]
	return ok
}

// ResetAttachments resets all changes to the "attachments" field.
func (m *ChatMessageMutation) ResetAttachments() {
	m.attachments = nil
	m.appendattachments = nil
	delete(m.clearedFields, chatmessage.FieldAttachments)
}

// SetToolCall sets the "tool_call" field.
func (m *ChatMessageMutation) SetToolCall(value map[string]interface{}) {
	m.tool_call = &value
}

// ToolCall returns the value of the "tool_call" field in the mutation.
func (m *ChatMessageMutation) ToolCall() (r map[string]interface{}, exists bool) {
	v := m.tool_call
	if v == nil {
		return
	}
	return *v, true
}

// OldToolCall returns the old "tool_call" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldToolCall(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolCall is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolCall requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolCall: %w", err)
	}
	return oldValue.ToolCall, nil
}

// ClearToolCall clears the value of the "tool_call" field.
func (m *ChatMessageMutation) ClearToolCall() {
	m.tool_call = nil
	m.clearedFields[chatmessage.FieldToolCall] = struct{}{}
}

// ToolCallCleared returns if the "tool_call" field was cleared in this mutation.
func (m *ChatMessageMutation) ToolCallCleared() bool {
	_, ok := m.clearedFields[chatmessage.FieldToolCall]
	return ok
}

// ResetToolCall resets all changes to the "tool_call" field.
func (m *ChatMessageMutation) ResetToolCall() {
	m.tool_call = nil
	delete(m.clearedFields, chatmessage.FieldToolCall)
}

// SetUIToolCall sets the "ui_tool_call" field.
func (m *ChatMessageMutation) SetUIToolCall(value map[string]interface{}) {
	m.ui_tool_call = &value
}

// UIToolCall returns the value of the "ui_tool_call" field in the mutation.
func (m *ChatMessageMutation) UIToolCall() (r map[string]interface{}, exists bool) {
	v := m.ui_tool_call
	if v == nil {
		return
	}
	return *v, true
}

// OldUIToolCall returns the old "ui_tool_call" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldUIToolCall(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUIToolCall is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUIToolCall requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUIToolCall: %w", err)
	}
	return oldValue.UIToolCall, nil
}

// ClearUIToolCall clears the value of the "ui_tool_call" field.
func (m *ChatMessageMutation) ClearUIToolCall() {
	m.ui_tool_call = nil
	m.clearedFields[chatmessage.FieldUIToolCall] = struct{}{}
}

// UIToolCallCleared returns if the "ui_tool_call" field was cleared in this mutation.
func (m *ChatMessageMutation) UIToolCallCleared() bool {
	_, ok := m.clearedFields[chatmessage.FieldUIToolCall]
	return ok
}

// ResetUIToolCall resets all changes to the "ui_tool_call" field.
func (m *ChatMessageMutation) ResetUIToolCall() {
	m.ui_tool_call = nil
	delete(m.clearedFields, chatmessage.FieldUIToolCall)
}

// SetSourceTool sets the "source_tool" field.
func (m *ChatMessageMutation) SetSourceTool(s string) {
	m.source_tool = &s
}

// SourceTool returns the value of the "source_tool" field in the mutation.
func (m *ChatMessageMutation) SourceTool() (r string, exists bool) {
	v := m.source_tool
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceTool returns the old "source_tool" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldSourceTool(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceTool is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceTool requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceTool: %w", err)
	}
	return oldValue.SourceTool, nil
}

// ClearSourceTool clears the value of the "source_tool" field.
func (m *ChatMessageMutation) ClearSourceTool() {
	m.source_tool = nil
	m.clearedFields[chatmessage.FieldSourceTool] = struct{}{}
}

// SourceToolCleared returns if the "source_tool" field was cleared in this mutation.
func (m *ChatMessageMutation) SourceToolCleared() bool {
	_, ok := m.clearedFields[chatmessage.FieldSourceTool]
	return ok
}

// ResetSourceTool resets all changes to the "source_tool" field.
func (m *ChatMessageMutation) ResetSourceTool() {
	m.source_tool = nil
	delete(m.clearedFields, chatmessage.FieldSourceTool)
}

// SetUISourceTool sets the "ui_source_tool" field.
func (m *ChatMessageMutation) SetUISourceTool(s string) {
	m.ui_source_tool = &s
}

// UISourceTool returns the value of the "ui_source_tool" field in the mutation.
func (m *ChatMessageMutation) UISourceTool() (r string, exists bool) {
	v := m.ui_source_tool
	if v == nil {
		return
	}
	return *v, true
}

// OldUISourceTool returns the old "ui_source_tool" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldUISourceTool(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUISourceTool is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUISourceTool requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUISourceTool: %w", err)
	}
	return oldValue.UISourceTool, nil
}

// ClearUISourceTool clears the value of the "ui_source_tool" field.
func (m *ChatMessageMutation) ClearUISourceTool() {
	m.ui_source_tool = nil
	m.clearedFields[chatmessage.FieldUISourceTool] = struct{}{}
}

// UISourceToolCleared returns if the "ui_source_tool" field was cleared in this mutation.
func (m *ChatMessageMutation) UISourceToolCleared() bool {
	_, ok := m.clearedFields[chatmessage.FieldUISourceTool]
	return ok
}

// ResetUISourceTool resets all changes to the "ui_source_tool" field.
func (m *ChatMessageMutation) ResetUISourceTool() {
	m.ui_source_tool = nil
	delete(m.clearedFields, chatmessage.FieldUISourceTool)
}

// SetWorkflowID sets the "workflow_id" field.
func (m *ChatMessageMutation) SetWorkflowID(s string) {
	m.workflow_id = &s
}

// WorkflowID returns the value of the "workflow_id" field in the mutation.
func (m *ChatMessageMutation) WorkflowID() (r string, exists bool) {
	v := m.workflow_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowID returns the old "workflow_id" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldWorkflowID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowID: %w", err)
	}
	return oldValue.WorkflowID, nil
}

// ClearWorkflowID clears the value of the "workflow_id" field.
func (m *ChatMessageMutation) ClearWorkflowID() {
	m.workflow_id = nil
	m.clearedFields[chatmessage.FieldWorkflowID] = struct{}{}
}

// WorkflowIDCleared returns if the "workflow_id" field was cleared in this mutation.
func (m *ChatMessageMutation) WorkflowIDCleared() bool {
	_, ok := m.clearedFields[chatmessage.FieldWorkflowID]
	return ok
}

// ResetWorkflowID resets all changes to the "workflow_id" field.
func (m *ChatMessageMutation) ResetWorkflowID() {
	m.workflow_id = nil
	delete(m.clearedFields, chatmessage.FieldWorkflowID)
}

// SetIsWorkflow sets the "is_workflow" field.
func (m *ChatMessageMutation) SetIsWorkflow(b bool) {
	m.is_workflow = &b
}

// IsWorkflow returns the value of the "is_workflow" field in the mutation.
func (m *ChatMessageMutation) IsWorkflow() (r bool, exists bool) {
	v := m.is_workflow
	if v == nil {
		return
	}
	return *v, true
}

// OldIsWorkflow returns the old "is_workflow" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldIsWorkflow(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsWorkflow is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsWorkflow requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsWorkflow: %w", err)
	}
	return oldValue.IsWorkflow, nil
}

// ResetIsWorkflow resets all changes to the "is_workflow" field.
func (m *ChatMessageMutation) ResetIsWorkflow() {
	m.is_workflow = nil
}

// SetIsWorkspaceBrowse sets the "is_workspace_browse" field.
func (m *ChatMessageMutation) SetIsWorkspaceBrowse(b bool) {
	m.is_workspace_browse = &b
}

// IsWorkspaceBrowse returns the value of the "is_workspace_browse" field in the mutation.
func (m *ChatMessageMutation) IsWorkspaceBrowse() (r bool, exists bool) {
	v := m.is_workspace_browse
	if v == nil {
		return
	}
	return *v, true
}

// OldIsWorkspaceBrowse returns the old "is_workspace_browse" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldIsWorkspaceBrowse(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsWorkspaceBrowse is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsWorkspaceBrowse requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsWorkspaceBrowse: %w", err)
	}
	return oldValue.IsWorkspaceBrowse, nil
}

// ResetIsWorkspaceBrowse resets all changes to the "is_workspace_browse" field.
func (m *ChatMessageMutation) ResetIsWorkspaceBrowse() {
	m.is_workspace_browse = nil
}

// SetIsJobsBrowse sets the "is_jobs_browse" field.
func (m *ChatMessageMutation) SetIsJobsBrowse(b bool) {
	m.is_jobs_browse = &b
}

// IsJobsBrowse returns the value of the "is_jobs_browse" field in the mutation.
func (m *ChatMessageMutation) IsJobsBrowse() (r bool, exists bool) {
	v := m.is_jobs_browse
	if v == nil {
		return
	}
	return *v, true
}

// OldIsJobsBrowse returns the old "is_jobs_browse" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldIsJobsBrowse(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsJobsBrowse is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsJobsBrowse requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsJobsBrowse: %w", err)
	}
	return oldValue.IsJobsBrowse, nil
}

// ResetIsJobsBrowse resets all changes to the "is_jobs_browse" field.
func (m *ChatMessageMutation) ResetIsJobsBrowse() {
	m.is_jobs_browse = nil
}

// SetChatSummary sets the "chat_summary" field.
func (m *ChatMessageMutation) SetChatSummary(s string) {
	m.chat_summary = &s
}

// ChatSummary returns the value of the "chat_summary" field in the mutation.
func (m *ChatMessageMutation) ChatSummary() (r string, exists bool) {
	v := m.chat_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldChatSummary returns the old "chat_summary" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldChatSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatSummary: %w", err)
	}
	return oldValue.ChatSummary, nil
}

// ClearChatSummary clears the value of the "chat_summary" field.
func (m *ChatMessageMutation) ClearChatSummary() {
	m.chat_summary = nil
	m.clearedFields[chatmessage.FieldChatSummary] = struct{}{}
}

// ChatSummaryCleared returns if the "chat_summary" field was cleared in this mutation.
func (m *ChatMessageMutation) ChatSummaryCleared() bool {
	_, ok := m.clearedFields[chatmessage.FieldChatSummary]
	return ok
}

// ResetChatSummary resets all changes to the "chat_summary" field.
func (m *ChatMessageMutation) ResetChatSummary() {
	m.chat_summary = nil
	delete(m.clearedFields, chatmessage.FieldChatSummary)
}

// SetUIAction sets the "ui_action" field.
func (m *ChatMessageMutation) SetUIAction(s string) {
	m.ui_action = &s
}

// UIAction returns the value of the "ui_action" field in the mutation.
func (m *ChatMessageMutation) UIAction() (r string, exists bool) {
	v := m.ui_action
	if v == nil {
		return
	}
	return *v, true
}

// OldUIAction returns the old "ui_action" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldUIAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUIAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUIAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUIAction: %w", err)
	}
	return oldValue.UIAction, nil
}

// ClearUIAction clears the value of the "ui_action" field.
func (m *ChatMessageMutation) ClearUIAction() {
	m.ui_action = nil
	m.clearedFields[chatmessage.FieldUIAction] = struct{}{}
}

// UIActionCleared returns if the "ui_action" field was cleared in this mutation.
func (m *ChatMessageMutation) UIActionCleared() bool {
	_, ok := m.clearedFields[chatmessage.FieldUIAction]
	return ok
}

// ResetUIAction resets all changes to the "ui_action" field.
func (m *ChatMessageMutation) ResetUIAction() {
	m.ui_action = nil
	delete(m.clearedFields, chatmessage.FieldUIAction)
}

// SetDocuments sets the "documents" field.
func (m *ChatMessageMutation) SetDocuments(value []map[string]interface{}) {
	m.documents = &value
	m.appenddocuments = nil
}

// Documents returns the value of the "documents" field in the mutation.
func (m *ChatMessageMutation) Documents() (r []map[string]interface{}, exists bool) {
	v := m.documents
	if v == nil {
		return
	}
	return *v, true
}

// OldDocuments returns the old "documents" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldDocuments(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocuments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocuments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocuments: %w", err)
	}
	return oldValue.Documents, nil
}

// AppendDocuments adds value to the "documents" field.
func (m *ChatMessageMutation) AppendDocuments(value []map[string]interface{}) {
	m.appenddocuments = append(m.appenddocuments, value...)
}

// AppendedDocuments returns the list of values that were appended to the "documents" field in this mutation.
func (m *ChatMessageMutation) AppendedDocuments() ([]map[string]interface{}, bool) {
	if len(m.appenddocuments) == 0 {
		return nil, false
	}
	return m.appenddocuments, true
}

// ClearDocuments clears the value of the "documents" field.
func (m *ChatMessageMutation) ClearDocuments() {
	m.documents = nil
	m.appenddocuments = nil
	m.clearedFields[chatmessage.FieldDocuments] = struct{}{}
}

// DocumentsCleared returns if the "documents" field was cleared in this mutation.
func (m *ChatMessageMutation) DocumentsCleared() bool {
	_, ok := m.clearedFields[chatmessage.FieldDocuments]
	return ok
}

// ResetDocuments resets all changes to the "documents" field.
func (m *ChatMessageMutation) ResetDocuments() {
	m.documents = nil
	m.appenddocuments = nil
	delete(m.clearedFields, chatmessage.FieldDocuments)
}

// SetAgentTrace sets the "agent_trace" field.
func (m *ChatMessageMutation) SetAgentTrace(value []map[string]interface{}) {
	m.agent_trace = &value
	m.appendagent_trace = nil
}

// AgentTrace returns the value of the "agent_trace" field in the mutation.
func (m *ChatMessageMutation) AgentTrace() (r []map[string]interface{}, exists bool) {
	v := m.agent_trace
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentTrace returns the old "agent_trace" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldAgentTrace(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentTrace is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentTrace requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentTrace: %w", err)
	}
	return oldValue.AgentTrace, nil
}

// AppendAgentTrace adds value to the "agent_trace" field.
func (m *ChatMessageMutation) AppendAgentTrace(value []map[string]interface{}) {
	m.appendagent_trace = append(m.appendagent_trace, value...)
}

// AppendedAgentTrace returns the list of values that were appended to the "agent_trace" field in this mutation.
func (m *ChatMessageMutation) AppendedAgentTrace() ([]map[string]interface{}, bool) {
	if len(m.appendagent_trace) == 0 {
		return nil, false
	}
	return m.appendagent_trace, true
}

// ClearAgentTrace clears the value of the "agent_trace" field.
func (m *ChatMessageMutation) ClearAgentTrace() {
	m.agent_trace = nil
	m.appendagent_trace = nil
	m.clearedFields[chatmessage.FieldAgentTrace] = struct{}{}
}

// AgentTraceCleared returns if the "agent_trace" field was cleared in this mutation.
func (m *ChatMessageMutation) AgentTraceCleared() bool {
	_, ok := m.clearedFields[chatmessage.FieldAgentTrace]
	return ok
}

// ResetAgentTrace resets all changes to the "agent_trace" field.
func (m *ChatMessageMutation) ResetAgentTrace() {
	m.agent_trace = nil
	m.appendagent_trace = nil
	delete(m.clearedFields, chatmessage.FieldAgentTrace)
}

// ClearSession clears the "session" edge to the ChatSession entity.
func (m *ChatMessageMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[chatmessage.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the ChatSession entity was cleared.
func (m *ChatMessageMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *ChatMessageMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *ChatMessageMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the ChatMessageMutation builder.
func (m *ChatMessageMutation) Where(ps ...predicate.ChatMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChatMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChatMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChatMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChatMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChatMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChatMessage).
func (m *ChatMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChatMessageMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.session != nil {
		fields = append(fields, chatmessage.FieldSessionID)
	}
	if m.role != nil {
		fields = append(fields, chatmessage.FieldRole)
	}
	if m.content != nil {
		fields = append(fields, chatmessage.FieldContent)
	}
	if m.timestamp != nil {
		fields = append(fields, chatmessage.FieldTimestamp)
	}
	if m.attachments != nil {
		fields = append(fields, chatmessage.FieldAttachments)
	}
	if m.tool_call != nil {
		fields = append(fields, chatmessage.FieldToolCall)
	}
	if m.ui_tool_call != nil {
		fields = append(fields, chatmessage.FieldUIToolCall)
	}
	if m.source_tool != nil {
		fields = append(fields, chatmessage.FieldSourceTool)
	}
	if m.ui_source_tool != nil {
		fields = append(fields, chatmessage.FieldUISourceTool)
	}
	if m.workflow_id != nil {
		fields = append(fields, chatmessage.FieldWorkflowID)
	}
	if m.is_workflow != nil {
		fields = append(fields, chatmessage.FieldIsWorkflow)
	}
	if m.is_workspace_browse != nil {
		fields = append(fields, chatmessage.FieldIsWorkspaceBrowse)
	}
	if m.is_jobs_browse != nil {
		fields = append(fields, chatmessage.FieldIsJobsBrowse)
	}
	if m.chat_summary != nil {
		fields = append(fields, chatmessage.FieldChatSummary)
	}
	if m.ui_action != nil {
		fields = append(fields, chatmessage.FieldUIAction)
	}
	if m.documents != nil {
		fields = append(fields, chatmessage.FieldDocuments)
	}
	if m.agent_trace != nil {
		fields = append(fields, chatmessage.FieldAgentTrace)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChatMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chatmessage.FieldSessionID:
		return m.SessionID()
	case chatmessage.FieldRole:
		return m.Role()
	case chatmessage.FieldContent:
		return m.Content()
	case chatmessage.FieldTimestamp:
		return m.Timestamp()
	case chatmessage.FieldAttachments:
		return m.Attachments()
	case chatmessage.FieldToolCall:
		return m.ToolCall()
	case chatmessage.FieldUIToolCall:
		return m.UIToolCall()
	case chatmessage.FieldSourceTool:
		return m.SourceTool()
	case chatmessage.FieldUISourceTool:
		return m.UISourceTool()
	case chatmessage.FieldWorkflowID:
		return m.WorkflowID()
	case chatmessage.FieldIsWorkflow:
		return m.IsWorkflow()
	case chatmessage.FieldIsWorkspaceBrowse:
		return m.IsWorkspaceBrowse()
	case chatmessage.FieldIsJobsBrowse:
		return m.IsJobsBrowse()
	case chatmessage.FieldChatSummary:
		return m.ChatSummary()
	case chatmessage.FieldUIAction:
		return m.UIAction()
	case chatmessage.FieldDocuments:
		return m.Documents()
	case chatmessage.FieldAgentTrace:
		return m.AgentTrace()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChatMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chatmessage.FieldSessionID:
		return m.OldSessionID(ctx)
	case chatmessage.FieldRole:
		return m.OldRole(ctx)
	case chatmessage.FieldContent:
		return m.OldContent(ctx)
	case chatmessage.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case chatmessage.FieldAttachments:
		return m.OldAttachments(ctx)
	case chatmessage.FieldToolCall:
		return m.OldToolCall(ctx)
	case chatmessage.FieldUIToolCall:
		return m.OldUIToolCall(ctx)
	case chatmessage.FieldSourceTool:
		return m.OldSourceTool(ctx)
	case chatmessage.FieldUISourceTool:
		return m.OldUISourceTool(ctx)
	case chatmessage.FieldWorkflowID:
		return m.OldWorkflowID(ctx)
	case chatmessage.FieldIsWorkflow:
		return m.OldIsWorkflow(ctx)
	case chatmessage.FieldIsWorkspaceBrowse:
		return m.OldIsWorkspaceBrowse(ctx)
	case chatmessage.FieldIsJobsBrowse:
		return m.OldIsJobsBrowse(ctx)
	case chatmessage.FieldChatSummary:
		return m.OldChatSummary(ctx)
	case chatmessage.FieldUIAction:
		return m.OldUIAction(ctx)
	case chatmessage.FieldDocuments:
		return m.OldDocuments(ctx)
	case chatmessage.FieldAgentTrace:
		return m.OldAgentTrace(ctx)
	}
	return nil, fmt.Errorf("unknown ChatMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chatmessage.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case chatmessage.FieldRole:
		v, ok := value.(chatmessage.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case chatmessage.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case chatmessage.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case chatmessage.FieldAttachments:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttachments(v)
		return nil
	case chatmessage.FieldToolCall:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolCall(v)
		return nil
	case chatmessage.FieldUIToolCall:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUIToolCall(v)
		return nil
	case chatmessage.FieldSourceTool:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceTool(v)
		return nil
	case chatmessage.FieldUISourceTool:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUISourceTool(v)
		return nil
	case chatmessage.FieldWorkflowID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowID(v)
		return nil
	case chatmessage.FieldIsWorkflow:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsWorkflow(v)
		return nil
	case chatmessage.FieldIsWorkspaceBrowse:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsWorkspaceBrowse(v)
		return nil
	case chatmessage.FieldIsJobsBrowse:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsJobsBrowse(v)
		return nil
	case chatmessage.FieldChatSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatSummary(v)
		return nil
	case chatmessage.FieldUIAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUIAction(v)
		return nil
	case chatmessage.FieldDocuments:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocuments(v)
		return nil
	case chatmessage.FieldAgentTrace:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentTrace(v)
		return nil
	}
	return fmt.Errorf("unknown ChatMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChatMessageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChatMessageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ChatMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChatMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(chatmessage.FieldAttachments) {
		fields = append(fields, chatmessage.FieldAttachments)
	}
	if m.FieldCleared(chatmessage.FieldToolCall) {
		fields = append(fields, chatmessage.FieldToolCall)
	}
	if m.FieldCleared(chatmessage.FieldUIToolCall) {
		fields = append(fields, chatmessage.FieldUIToolCall)
	}
	if m.FieldCleared(chatmessage.FieldSourceTool) {
		fields = append(fields, chatmessage.FieldSourceTool)
	}
	if m.FieldCleared(chatmessage.FieldUISourceTool) {
		fields = append(fields, chatmessage.FieldUISourceTool)
	}
	if m.FieldCleared(chatmessage.FieldWorkflowID) {
		fields = append(fields, chatmessage.FieldWorkflowID)
	}
	if m.FieldCleared(chatmessage.FieldChatSummary) {
		fields = append(fields, chatmessage.FieldChatSummary)
	}
	if m.FieldCleared(chatmessage.FieldUIAction) {
		fields = append(fields, chatmessage.FieldUIAction)
	}
	if m.FieldCleared(chatmessage.FieldDocuments) {
		fields = append(fields, chatmessage.FieldDocuments)
	}
	if m.FieldCleared(chatmessage.FieldAgentTrace) {
		fields = append(fields, chatmessage.FieldAgentTrace)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChatMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChatMessageMutation) ClearField(name string) error {
	switch name {
	case chatmessage.FieldAttachments:
		m.ClearAttachments()
		return nil
	case chatmessage.FieldToolCall:
		m.ClearToolCall()
		return nil
	case chatmessage.FieldUIToolCall:
		m.ClearUIToolCall()
		return nil
	case chatmessage.FieldSourceTool:
		m.ClearSourceTool()
		return nil
	case chatmessage.FieldUISourceTool:
		m.ClearUISourceTool()
		return nil
	case chatmessage.FieldWorkflowID:
		m.ClearWorkflowID()
		return nil
	case chatmessage.FieldChatSummary:
		m.ClearChatSummary()
		return nil
	case chatmessage.FieldUIAction:
		m.ClearUIAction()
		return nil
	case chatmessage.FieldDocuments:
		m.ClearDocuments()
		return nil
	case chatmessage.FieldAgentTrace:
		m.ClearAgentTrace()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChatMessageMutation) ResetField(name string) error {
	switch name {
	case chatmessage.FieldSessionID:
		m.ResetSessionID()
		return nil
	case chatmessage.FieldRole:
		m.ResetRole()
		return nil
	case chatmessage.FieldContent:
		m.ResetContent()
		return nil
	case chatmessage.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case chatmessage.FieldAttachments:
		m.ResetAttachments()
		return nil
	case chatmessage.FieldToolCall:
		m.ResetToolCall()
		return nil
	case chatmessage.FieldUIToolCall:
		m.ResetUIToolCall()
		return nil
	case chatmessage.FieldSourceTool:
		m.ResetSourceTool()
		return nil
	case chatmessage.FieldUISourceTool:
		m.ResetUISourceTool()
		return nil
	case chatmessage.FieldWorkflowID:
		m.ResetWorkflowID()
		return nil
	case chatmessage.FieldIsWorkflow:
		m.ResetIsWorkflow()
		return nil
	case chatmessage.FieldIsWorkspaceBrowse:
		m.ResetIsWorkspaceBrowse()
		return nil
	case chatmessage.FieldIsJobsBrowse:
		m.ResetIsJobsBrowse()
		return nil
	case chatmessage.FieldChatSummary:
		m.ResetChatSummary()
		return nil
	case chatmessage.FieldUIAction:
		m.ResetUIAction()
		return nil
	case chatmessage.FieldDocuments:
		m.ResetDocuments()
		return nil
	case chatmessage.FieldAgentTrace:
		m.ResetAgentTrace()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChatMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, chatmessage.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChatMessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case chatmessage.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChatMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChatMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChatMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, chatmessage.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChatMessageMutation) EdgeCleared(name string) bool {
	switch name {
	case chatmessage.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChatMessageMutation) ClearEdge(name string) error {
	switch name {
	case chatmessage.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChatMessageMutation) ResetEdge(name string) error {
	switch name {
	case chatmessage.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage edge %s", name)
}

// ChatSessionMutation represents an operation that mutates the ChatSession nodes in the graph.
type ChatSessionMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	user_id             *string
	title               *string
	workflow_ids        *[]string
	appendworkflow_ids  []string
	message_count       *int
	addmessage_count    *int
	summarized_count    *int
	addsummarized_count *int
	summary             *string
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	messages            map[string]struct{}
	removedmessages     map[string]struct{}
	clearedmessages     bool
	files               map[string]struct{}
	removedfiles        map[string]struct{}
	clearedfiles        bool
	memory              *string
	clearedmemory       bool
	done                bool
	oldValue            func(context.Context) (*ChatSession, error)
	predicates          []predicate.ChatSession
}

var _ ent.Mutation = (*ChatSessionMutation)(nil)

// chatsessionOption allows management of the mutation configuration using functional options.
type chatsessionOption func(*ChatSessionMutation)

// newChatSessionMutation creates new mutation for the ChatSession entity.
func newChatSessionMutation(c config, op Op, opts ...chatsessionOption) *ChatSessionMutation {
	m := &ChatSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeChatSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChatSessionID sets the ID field of the mutation.
func withChatSessionID(id string) chatsessionOption {
	return func(m *ChatSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *ChatSession
		)
		m.oldValue = func(ctx context.Context) (*ChatSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChatSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChatSession sets the old ChatSession of the mutation.
func withChatSession(node *ChatSession) chatsessionOption {
	return func(m *ChatSessionMutation) {
		m.oldValue = func(context.Context) (*ChatSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChatSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChatSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ChatSession entities.
func (m *ChatSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChatSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChatSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChatSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ChatSessionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ChatSessionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ChatSessionMutation) ResetUserID() {
	m.user_id = nil
}

// SetTitle sets the "title" field.
func (m *ChatSessionMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ChatSessionMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *ChatSessionMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[chatsession.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *ChatSessionMutation) TitleCleared() bool {
	_, ok := m.clearedFields[chatsession.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *ChatSessionMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, chatsession.FieldTitle)
}

// SetWorkflowIds sets the "workflow_ids" field.
func (m *ChatSessionMutation) SetWorkflowIds(s []string) {
	m.workflow_ids = &s
	m.appendworkflow_ids = nil
}

// WorkflowIds returns the value of the "workflow_ids" field in the mutation.
func (m *ChatSessionMutation) WorkflowIds() (r []string, exists bool) {
	v := m.workflow_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowIds returns the old "workflow_ids" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldWorkflowIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowIds: %w", err)
	}
	return oldValue.WorkflowIds, nil
}

// AppendWorkflowIds adds s to the "workflow_ids" field.
func (m *ChatSessionMutation) AppendWorkflowIds(s []string) {
	m.appendworkflow_ids = append(m.appendworkflow_ids, s...)
}

// AppendedWorkflowIds returns the list of values that were appended to the "workflow_ids" field in this mutation.
func (m *ChatSessionMutation) AppendedWorkflowIds() ([]string, bool) {
	if len(m.appendworkflow_ids) == 0 {
		return nil, false
	}
	return m.appendworkflow_ids, true
}

// ClearWorkflowIds clears the value of the "workflow_ids" field.
func (m *ChatSessionMutation) ClearWorkflowIds() {
	m.workflow_ids = nil
	m.appendworkflow_ids = nil
	m.clearedFields[chatsession.FieldWorkflowIds] = struct{}{}
}

// WorkflowIdsCleared returns if the "workflow_ids" field was cleared in this mutation.
func (m *ChatSessionMutation) WorkflowIdsCleared() bool {
	_, ok := m.clearedFields[chatsession.FieldWorkflowIds]
	return ok
}

// ResetWorkflowIds resets all changes to the "workflow_ids" field.
func (m *ChatSessionMutation) ResetWorkflowIds() {
	m.workflow_ids = nil
	m.appendworkflow_ids = nil
	delete(m.clearedFields, chatsession.FieldWorkflowIds)
}

// SetMessageCount sets the "message_count" field.
func (m *ChatSessionMutation) SetMessageCount(i int) {
	m.message_count = &i
	m.addmessage_count = nil
}

// MessageCount returns the value of the "message_count" field in the mutation.
func (m *ChatSessionMutation) MessageCount() (r int, exists bool) {
	v := m.message_count
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageCount returns the old "message_count" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldMessageCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageCount: %w", err)
	}
	return oldValue.MessageCount, nil
}

// AddMessageCount adds i to the "message_count" field.
func (m *ChatSessionMutation) AddMessageCount(i int) {
	if m.addmessage_count != nil {
		*m.addmessage_count += i
	} else {
		m.addmessage_count = &i
	}
}

// AddedMessageCount returns the value that was added to the "message_count" field in this mutation.
func (m *ChatSessionMutation) AddedMessageCount() (r int, exists bool) {
	v := m.addmessage_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetMessageCount resets all changes to the "message_count" field.
func (m *ChatSessionMutation) ResetMessageCount() {
	m.message_count = nil
	m.addmessage_count = nil
}

// SetSummarizedCount sets the "summarized_count" field.
func (m *ChatSessionMutation) SetSummarizedCount(i int) {
	m.summarized_count = &i
	m.addsummarized_count = nil
}

// SummarizedCount returns the value of the "summarized_count" field in the mutation.
func (m *ChatSessionMutation) SummarizedCount() (r int, exists bool) {
	v := m.summarized_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSummarizedCount returns the old "summarized_count" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldSummarizedCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummarizedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummarizedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummarizedCount: %w", err)
	}
	return oldValue.SummarizedCount, nil
}

// AddSummarizedCount adds i to the "summarized_count" field.
func (m *ChatSessionMutation) AddSummarizedCount(i int) {
	if m.addsummarized_count != nil {
		*m.addsummarized_count += i
	} else {
		m.addsummarized_count = &i
	}
}

// AddedSummarizedCount returns the value that was added to the "summarized_count" field in this mutation.
func (m *ChatSessionMutation) AddedSummarizedCount() (r int, exists bool) {
	v := m.addsummarized_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSummarizedCount resets all changes to the "summarized_count" field.
func (m *ChatSessionMutation) ResetSummarizedCount() {
	m.summarized_count = nil
	m.addsummarized_count = nil
}

// SetSummary sets the "summary" field.
func (m *ChatSessionMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *ChatSessionMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *ChatSessionMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[chatsession.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *ChatSessionMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[chatsession.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *ChatSessionMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, chatsession.FieldSummary)
}

// SetCreatedAt sets the "created_at" field.
func (m *ChatSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChatSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChatSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ChatSessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ChatSessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ChatSessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddMessageIDs adds the "messages" edge to the ChatMessage entity by ids.
func (m *ChatSessionMutation) AddMessageIDs(ids ...string) {
	if m.messages == nil {
		m.messages = make(map[string]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the ChatMessage entity.
func (m *ChatSessionMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the ChatMessage entity was cleared.
func (m *ChatSessionMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the ChatMessage entity by IDs.
func (m *ChatSessionMutation) RemoveMessageIDs(ids ...string) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the ChatMessage entity.
func (m *ChatSessionMutation) RemovedMessagesIDs() (ids []string) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *ChatSessionMutation) MessagesIDs() (ids []string) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *ChatSessionMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// AddFileIDs adds the "files" edge to the FileRecord entity by ids.
func (m *ChatSessionMutation) AddFileIDs(ids ...string) {
	if m.files == nil {
		m.files = make(map[string]struct{})
	}
	for i := range ids {
		m.files[ids[i]] = struct{}{}
	}
}

// ClearFiles clears the "files" edge to the FileRecord entity.
func (m *ChatSessionMutation) ClearFiles() {
	m.clearedfiles = true
}

// FilesCleared reports if the "files" edge to the FileRecord entity was cleared.
func (m *ChatSessionMutation) FilesCleared() bool {
	return m.clearedfiles
}

// RemoveFileIDs removes the "files" edge to the FileRecord entity by IDs.
func (m *ChatSessionMutation) RemoveFileIDs(ids ...string) {
	if m.removedfiles == nil {
		m.removedfiles = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.files, ids[i])
		m.removedfiles[ids[i]] = struct{}{}
	}
}

// RemovedFiles returns the removed IDs of the "files" edge to the FileRecord entity.
func (m *ChatSessionMutation) RemovedFilesIDs() (ids []string) {
	for id := range m.removedfiles {
		ids = append(ids, id)
	}
	return
}

// FilesIDs returns the "files" edge IDs in the mutation.
func (m *ChatSessionMutation) FilesIDs() (ids []string) {
	for id := range m.files {
		ids = append(ids, id)
	}
	return
}

// ResetFiles resets all changes to the "files" edge.
func (m *ChatSessionMutation) ResetFiles() {
	m.files = nil
	m.clearedfiles = false
	m.removedfiles = nil
}

// SetMemoryID sets the "memory" edge to the SessionMemory entity by id.
func (m *ChatSessionMutation) SetMemoryID(id string) {
	m.memory = &id
}

// ClearMemory clears the "memory" edge to the SessionMemory entity.
func (m *ChatSessionMutation) ClearMemory() {
	m.clearedmemory = true
}

// MemoryCleared reports if the "memory" edge to the SessionMemory entity was cleared.
func (m *ChatSessionMutation) MemoryCleared() bool {
	return m.clearedmemory
}

// MemoryID returns the "memory" edge ID in the mutation.
func (m *ChatSessionMutation) MemoryID() (id string, exists bool) {
	if m.memory != nil {
		return *m.memory, true
	}
	return
}

// MemoryIDs returns the "memory" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MemoryID instead. It exists only for internal usage by the builders.
func (m *ChatSessionMutation) MemoryIDs() (ids []string) {
	if id := m.memory; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMemory resets all changes to the "memory" edge.
func (m *ChatSessionMutation) ResetMemory() {
	m.memory = nil
	m.clearedmemory = false
}

// Where appends a list predicates to the ChatSessionMutation builder.
func (m *ChatSessionMutation) Where(ps ...predicate.ChatSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChatSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChatSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChatSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChatSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChatSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChatSession).
func (m *ChatSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChatSessionMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.user_id != nil {
		fields = append(fields, chatsession.FieldUserID)
	}
	if m.title != nil {
		fields = append(fields, chatsession.FieldTitle)
	}
	if m.workflow_ids != nil {
		fields = append(fields, chatsession.FieldWorkflowIds)
	}
	if m.message_count != nil {
		fields = append(fields, chatsession.FieldMessageCount)
	}
	if m.summarized_count != nil {
		fields = append(fields, chatsession.FieldSummarizedCount)
	}
	if m.summary != nil {
		fields = append(fields, chatsession.FieldSummary)
	}
	if m.created_at != nil {
		fields = append(fields, chatsession.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, chatsession.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChatSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chatsession.FieldUserID:
		return m.UserID()
	case chatsession.FieldTitle:
		return m.Title()
	case chatsession.FieldWorkflowIds:
		return m.WorkflowIds()
	case chatsession.FieldMessageCount:
		return m.MessageCount()
	case chatsession.FieldSummarizedCount:
		return m.SummarizedCount()
	case chatsession.FieldSummary:
		return m.Summary()
	case chatsession.FieldCreatedAt:
		return m.CreatedAt()
	case chatsession.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChatSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chatsession.FieldUserID:
		return m.OldUserID(ctx)
	case chatsession.FieldTitle:
		return m.OldTitle(ctx)
	case chatsession.FieldWorkflowIds:
		return m.OldWorkflowIds(ctx)
	case chatsession.FieldMessageCount:
		return m.OldMessageCount(ctx)
	case chatsession.FieldSummarizedCount:
		return m.OldSummarizedCount(ctx)
	case chatsession.FieldSummary:
		return m.OldSummary(ctx)
	case chatsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case chatsession.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ChatSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chatsession.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case chatsession.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case chatsession.FieldWorkflowIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowIds(v)
		return nil
	case chatsession.FieldMessageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageCount(v)
		return nil
	case chatsession.FieldSummarizedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummarizedCount(v)
		return nil
	case chatsession.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case chatsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case chatsession.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ChatSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChatSessionMutation) AddedFields() []string {
	var fields []string
	if m.addmessage_count != nil {
		fields = append(fields, chatsession.FieldMessageCount)
	}
	if m.addsummarized_count != nil {
		fields = append(fields, chatsession.FieldSummarizedCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChatSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case chatsession.FieldMessageCount:
		return m.AddedMessageCount()
	case chatsession.FieldSummarizedCount:
		return m.AddedSummarizedCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case chatsession.FieldMessageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMessageCount(v)
		return nil
	case chatsession.FieldSummarizedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSummarizedCount(v)
		return nil
	}
	return fmt.Errorf("unknown ChatSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChatSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(chatsession.FieldTitle) {
		fields = append(fields, chatsession.FieldTitle)
	}
	if m.FieldCleared(chatsession.FieldWorkflowIds) {
		fields = append(fields, chatsession.FieldWorkflowIds)
	}
	if m.FieldCleared(chatsession.FieldSummary) {
		fields = append(fields, chatsession.FieldSummary)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChatSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChatSessionMutation) ClearField(name string) error {
	switch name {
	case chatsession.FieldTitle:
		m.ClearTitle()
		return nil
	case chatsession.FieldWorkflowIds:
		m.ClearWorkflowIds()
		return nil
	case chatsession.FieldSummary:
		m.ClearSummary()
		return nil
	}
	return fmt.Errorf("unknown ChatSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChatSessionMutation) ResetField(name string) error {
	switch name {
	case chatsession.FieldUserID:
		m.ResetUserID()
		return nil
	case chatsession.FieldTitle:
		m.ResetTitle()
		return nil
	case chatsession.FieldWorkflowIds:
		m.ResetWorkflowIds()
		return nil
	case chatsession.FieldMessageCount:
		m.ResetMessageCount()
		return nil
	case chatsession.FieldSummarizedCount:
		m.ResetSummarizedCount()
		return nil
	case chatsession.FieldSummary:
		m.ResetSummary()
		return nil
	case chatsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case chatsession.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ChatSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChatSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.messages != nil {
		edges = append(edges, chatsession.EdgeMessages)
	}
	if m.files != nil {
		edges = append(edges, chatsession.EdgeFiles)
	}
	if m.memory != nil {
		edges = append(edges, chatsession.EdgeMemory)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChatSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case chatsession.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	case chatsession.EdgeFiles:
		ids := make([]ent.Value, 0, len(m.files))
		for id := range m.files {
			ids = append(ids, id)
		}
		return ids
	case chatsession.EdgeMemory:
		if id := m.memory; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChatSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedmessages != nil {
		edges = append(edges, chatsession.EdgeMessages)
	}
	if m.removedfiles != nil {
		edges = append(edges, chatsession.EdgeFiles)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChatSessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case chatsession.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	case chatsession.EdgeFiles:
		ids := make([]ent.Value, 0, len(m.removedfiles))
		for id := range m.removedfiles {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChatSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedmessages {
		edges = append(edges, chatsession.EdgeMessages)
	}
	if m.clearedfiles {
		edges = append(edges, chatsession.EdgeFiles)
	}
	if m.clearedmemory {
		edges = append(edges, chatsession.EdgeMemory)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChatSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case chatsession.EdgeMessages:
		return m.clearedmessages
	case chatsession.EdgeFiles:
		return m.clearedfiles
	case chatsession.EdgeMemory:
		return m.clearedmemory
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChatSessionMutation) ClearEdge(name string) error {
	switch name {
	case chatsession.EdgeMemory:
		m.ClearMemory()
		return nil
	}
	return fmt.Errorf("unknown ChatSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChatSessionMutation) ResetEdge(name string) error {
	switch name {
	case chatsession.EdgeMessages:
		m.ResetMessages()
		return nil
	case chatsession.EdgeFiles:
		m.ResetFiles()
		return nil
	case chatsession.EdgeMemory:
		m.ResetMemory()
		return nil
	}
	return fmt.Errorf("unknown ChatSession edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op            Op
	typ           string
	id            *int64
	job_id        *string
	channel       *string
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Event, error)
	predicates    []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int64) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Event entities.
func (m *EventMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *EventMutation) SetJobID(s string) {
	m.job_id = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *EventMutation) JobID() (r string, exists bool) {
	v := m.job_id
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *EventMutation) ResetJobID() {
	m.job_id = nil
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.job_id != nil {
		fields = append(fields, event.FieldJobID)
	}
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldJobID:
		return m.JobID()
	case event.FieldChannel:
		return m.Channel()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldJobID:
		return m.OldJobID(ctx)
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldJobID:
		m.ResetJobID()
		return nil
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// FileRecordMutation represents an operation that mutates the FileRecord nodes in the graph.
type FileRecordMutation struct {
	config
	op               Op
	typ              string
	id               *string
	tool_id          *string
	file_name        *string
	file_path        *string
	is_error         *bool
	summary          *map[string]interface{}
	query_parameters *map[string]interface{}
	call             *map[string]interface{}
	workspace        *map[string]interface{}
	error_type       *string
	error_message    *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	session          *string
	clearedsession   bool
	done             bool
	oldValue         func(context.Context) (*FileRecord, error)
	predicates       []predicate.FileRecord
}

var _ ent.Mutation = (*FileRecordMutation)(nil)

// filerecordOption allows management of the mutation configuration using functional options.
type filerecordOption func(*FileRecordMutation)

// newFileRecordMutation creates new mutation for the FileRecord entity.
func newFileRecordMutation(c config, op Op, opts ...filerecordOption) *FileRecordMutation {
	m := &FileRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeFileRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFileRecordID sets the ID field of the mutation.
func withFileRecordID(id string) filerecordOption {
	return func(m *FileRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *FileRecord
		)
		m.oldValue = func(ctx context.Context) (*FileRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FileRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFileRecord sets the old FileRecord of the mutation.
func withFileRecord(node *FileRecord) filerecordOption {
	return func(m *FileRecordMutation) {
		m.oldValue = func(context.Context) (*FileRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FileRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FileRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FileRecord entities.
func (m *FileRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FileRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FileRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FileRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *FileRecordMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *FileRecordMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the FileRecord entity.
// If the FileRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileRecordMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *FileRecordMutation) ResetSessionID() {
	m.session = nil
}

// SetToolID sets the "tool_id" field.
func (m *FileRecordMutation) SetToolID(s string) {
	m.tool_id = &s
}

// ToolID returns the value of the "tool_id" field in the mutation.
func (m *FileRecordMutation) ToolID() (r string, exists bool) {
	v := m.tool_id
	if v == nil {
		return
	}
	return *v, true
}

// OldToolID returns the old "tool_id" field's value of the FileRecord entity.
// If the FileRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileRecordMutation) OldToolID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolID: %w", err)
	}
	return oldValue.ToolID, nil
}

// ResetToolID resets all changes to the "tool_id" field.
func (m *FileRecordMutation) ResetToolID() {
	m.tool_id = nil
}

// SetFileName sets the "file_name" field.
func (m *FileRecordMutation) SetFileName(s string) {
	m.file_name = &s
}

// FileName returns the value of the "file_name" field in the mutation.
func (m *FileRecordMutation) FileName() (r string, exists bool) {
	v := m.file_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFileName returns the old "file_name" field's value of the FileRecord entity.
// If the FileRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileRecordMutation) OldFileName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileName: %w", err)
	}
	return oldValue.FileName, nil
}

// ResetFileName resets all changes to the "file_name" field.
func (m *FileRecordMutation) ResetFileName() {
	m.file_name = nil
}

// SetFilePath sets the "file_path" field.
func (m *FileRecordMutation) SetFilePath(s string) {
	m.file_path = &s
}

// FilePath returns the value of the "file_path" field in the mutation.
func (m *FileRecordMutation) FilePath() (r string, exists bool) {
	v := m.file_path
	if v == nil {
		return
	}
	return *v, true
}

// OldFilePath returns the old "file_path" field's value of the FileRecord entity.
// If the FileRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileRecordMutation) OldFilePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilePath: %w", err)
	}
	return oldValue.FilePath, nil
}

// ResetFilePath resets all changes to the "file_path" field.
func (m *FileRecordMutation) ResetFilePath() {
	m.file_path = nil
}

// SetIsError sets the "is_error" field.
func (m *FileRecordMutation) SetIsError(b bool) {
	m.is_error = &b
}

// IsError returns the value of the "is_error" field in the mutation.
func (m *FileRecordMutation) IsError() (r bool, exists bool) {
	v := m.is_error
	if v == nil {
		return
	}
	return *v, true
}

// OldIsError returns the old "is_error" field's value of the FileRecord entity.
// If the FileRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileRecordMutation) OldIsError(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsError: %w", err)
	}
	return oldValue.IsError, nil
}

// ResetIsError resets all changes to the "is_error" field.
func (m *FileRecordMutation) ResetIsError() {
	m.is_error = nil
}

// SetSummary sets the "summary" field.
func (m *FileRecordMutation) SetSummary(value map[string]interface{}) {
	m.summary = &value
}

// Summary returns the value of the "summary" field in the mutation.
func (m *FileRecordMutation) Summary() (r map[string]interface{}, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the FileRecord entity.
// If the FileRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileRecordMutation) OldSummary(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ResetSummary resets all changes to the "summary" field.
func (m *FileRecordMutation) ResetSummary() {
	m.summary = nil
}

// SetQueryParameters sets the "query_parameters" field.
func (m *FileRecordMutation) SetQueryParameters(value map[string]interface{}) {
	m.query_parameters = &value
}

// QueryParameters returns the value of the "query_parameters" field in the mutation.
func (m *FileRecordMutation) QueryParameters() (r map[string]interface{}, exists bool) {
	v := m.query_parameters
	if v == nil {
		return
	}
	return *v, true
}

// OldQueryParameters returns the old "query_parameters" field's value of the FileRecord entity.
// If the FileRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileRecordMutation) OldQueryParameters(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueryParameters is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueryParameters requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueryParameters: %w", err)
	}
	return oldValue.QueryParameters, nil
}

// ClearQueryParameters clears the value of the "query_parameters" field.
func (m *FileRecordMutation) ClearQueryParameters() {
	m.query_parameters = nil
	m.clearedFields[filerecord.FieldQueryParameters] = struct{}{}
}

// QueryParametersCleared returns if the "query_parameters" field was cleared in this mutation.
func (m *FileRecordMutation) QueryParametersCleared() bool {
	_, ok := m.clearedFields[filerecord.FieldQueryParameters]
	return ok
}

// ResetQueryParameters resets all changes to the "query_parameters" field.
func (m *FileRecordMutation) ResetQueryParameters() {
	m.query_parameters = nil
	delete(m.clearedFields, filerecord.FieldQueryParameters)
}

// SetCall sets the "call" field.
func (m *FileRecordMutation) SetCall(value map[string]interface{}) {
	m.call = &value
}

// Call returns the value of the "call" field in the mutation.
func (m *FileRecordMutation) Call() (r map[string]interface{}, exists bool) {
	v := m.call
	if v == nil {
		return
	}
	return *v, true
}

// OldCall returns the old "call" field's value of the FileRecord entity.
// If the FileRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileRecordMutation) OldCall(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCall is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCall requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCall: %w", err)
	}
	return oldValue.Call, nil
}

// ClearCall clears the value of the "call" field.
func (m *FileRecordMutation) ClearCall() {
	m.call = nil
	m.clearedFields[filerecord.FieldCall] = struct{}{}
}

// CallCleared returns if the "call" field was cleared in this mutation.
func (m *FileRecordMutation) CallCleared() bool {
	_, ok := m.clearedFields[filerecord.FieldCall]
	return ok
}

// ResetCall resets all changes to the "call" field.
func (m *FileRecordMutation) ResetCall() {
	m.call = nil
	delete(m.clearedFields, filerecord.FieldCall)
}

// SetWorkspace sets the "workspace" field.
func (m *FileRecordMutation) SetWorkspace(value map[string]interface{}) {
	m.workspace = &value
}

// Workspace returns the value of the "workspace" field in the mutation.
func (m *FileRecordMutation) Workspace() (r map[string]interface{}, exists bool) {
	v := m.workspace
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspace returns the old "workspace" field's value of the FileRecord entity.
// If the FileRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileRecordMutation) OldWorkspace(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspace is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspace requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspace: %w", err)
	}
	return oldValue.Workspace, nil
}

// ClearWorkspace clears the value of the "workspace" field.
func (m *FileRecordMutation) ClearWorkspace() {
	m.workspace = nil
	m.clearedFields[filerecord.FieldWorkspace] = struct{}{}
}

// WorkspaceCleared returns if the "workspace" field was cleared in this mutation.
func (m *FileRecordMutation) WorkspaceCleared() bool {
	_, ok := m.clearedFields[filerecord.FieldWorkspace]
	return ok
}

// ResetWorkspace resets all changes to the "workspace" field.
func (m *FileRecordMutation) ResetWorkspace() {
	m.workspace = nil
	delete(m.clearedFields, filerecord.FieldWorkspace)
}

// SetErrorType sets the "error_type" field.
func (m *FileRecordMutation) SetErrorType(s string) {
	m.error_type = &s
}

// ErrorType returns the value of the "error_type" field in the mutation.
func (m *FileRecordMutation) ErrorType() (r string, exists bool) {
	v := m.error_type
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorType returns the old "error_type" field's value of the FileRecord entity.
// If the FileRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileRecordMutation) OldErrorType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorType: %w", err)
	}
	return oldValue.ErrorType, nil
}

// ClearErrorType clears the value of the "error_type" field.
func (m *FileRecordMutation) ClearErrorType() {
	m.error_type = nil
	m.clearedFields[filerecord.FieldErrorType] = struct{}{}
}

// ErrorTypeCleared returns if the "error_type" field was cleared in this mutation.
func (m *FileRecordMutation) ErrorTypeCleared() bool {
	_, ok := m.clearedFields[filerecord.FieldErrorType]
	return ok
}

// ResetErrorType resets all changes to the "error_type" field.
func (m *FileRecordMutation) ResetErrorType() {
	m.error_type = nil
	delete(m.clearedFields, filerecord.FieldErrorType)
}

// SetErrorMessage sets the "error_message" field.
func (m *FileRecordMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *FileRecordMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the FileRecord entity.
// If the FileRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileRecordMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *FileRecordMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[filerecord.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *FileRecordMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[filerecord.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *FileRecordMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, filerecord.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *FileRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FileRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FileRecord entity.
// If the FileRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FileRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the ChatSession entity.
func (m *FileRecordMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[filerecord.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the ChatSession entity was cleared.
func (m *FileRecordMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *FileRecordMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *FileRecordMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the FileRecordMutation builder.
func (m *FileRecordMutation) Where(ps ...predicate.FileRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FileRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FileRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FileRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FileRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FileRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FileRecord).
func (m *FileRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FileRecordMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.session != nil {
		fields = append(fields, filerecord.FieldSessionID)
	}
	if m.tool_id != nil {
		fields = append(fields, filerecord.FieldToolID)
	}
	if m.file_name != nil {
		fields = append(fields, filerecord.FieldFileName)
	}
	if m.file_path != nil {
		fields = append(fields, filerecord.FieldFilePath)
	}
	if m.is_error != nil {
		fields = append(fields, filerecord.FieldIsError)
	}
	if m.summary != nil {
		fields = append(fields, filerecord.FieldSummary)
	}
	if m.query_parameters != nil {
		fields = append(fields, filerecord.FieldQueryParameters)
	}
	if m.call != nil {
		fields = append(fields, filerecord.FieldCall)
	}
	if m.workspace != nil {
		fields = append(fields, filerecord.FieldWorkspace)
	}
	if m.error_type != nil {
		fields = append(fields, filerecord.FieldErrorType)
	}
	if m.error_message != nil {
		fields = append(fields, filerecord.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, filerecord.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FileRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case filerecord.FieldSessionID:
		return m.SessionID()
	case filerecord.FieldToolID:
		return m.ToolID()
	case filerecord.FieldFileName:
		return m.FileName()
	case filerecord.FieldFilePath:
		return m.FilePath()
	case filerecord.FieldIsError:
		return m.IsError()
	case filerecord.FieldSummary:
		return m.Summary()
	case filerecord.FieldQueryParameters:
		return m.QueryParameters()
	case filerecord.FieldCall:
		return m.Call()
	case filerecord.FieldWorkspace:
		return m.Workspace()
	case filerecord.FieldErrorType:
		return m.ErrorType()
	case filerecord.FieldErrorMessage:
		return m.ErrorMessage()
	case filerecord.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FileRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case filerecord.FieldSessionID:
		return m.OldSessionID(ctx)
	case filerecord.FieldToolID:
		return m.OldToolID(ctx)
	case filerecord.FieldFileName:
		return m.OldFileName(ctx)
	case filerecord.FieldFilePath:
		return m.OldFilePath(ctx)
	case filerecord.FieldIsError:
		return m.OldIsError(ctx)
	case filerecord.FieldSummary:
		return m.OldSummary(ctx)
	case filerecord.FieldQueryParameters:
		return m.OldQueryParameters(ctx)
	case filerecord.FieldCall:
		return m.OldCall(ctx)
	case filerecord.FieldWorkspace:
		return m.OldWorkspace(ctx)
	case filerecord.FieldErrorType:
		return m.OldErrorType(ctx)
	case filerecord.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case filerecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FileRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FileRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case filerecord.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case filerecord.FieldToolID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolID(v)
		return nil
	case filerecord.FieldFileName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileName(v)
		return nil
	case filerecord.FieldFilePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilePath(v)
		return nil
	case filerecord.FieldIsError:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsError(v)
		return nil
	case filerecord.FieldSummary:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case filerecord.FieldQueryParameters:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueryParameters(v)
		return nil
	case filerecord.FieldCall:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCall(v)
		return nil
	case filerecord.FieldWorkspace:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspace(v)
		return nil
	case filerecord.FieldErrorType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorType(v)
		return nil
	case filerecord.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case filerecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FileRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FileRecordMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FileRecordMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FileRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown FileRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FileRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(filerecord.FieldQueryParameters) {
		fields = append(fields, filerecord.FieldQueryParameters)
	}
	if m.FieldCleared(filerecord.FieldCall) {
		fields = append(fields, filerecord.FieldCall)
	}
	if m.FieldCleared(filerecord.FieldWorkspace) {
		fields = append(fields, filerecord.FieldWorkspace)
	}
	if m.FieldCleared(filerecord.FieldErrorType) {
		fields = append(fields, filerecord.FieldErrorType)
	}
	if m.FieldCleared(filerecord.FieldErrorMessage) {
		fields = append(fields, filerecord.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FileRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FileRecordMutation) ClearField(name string) error {
	switch name {
	case filerecord.FieldQueryParameters:
		m.ClearQueryParameters()
		return nil
	case filerecord.FieldCall:
		m.ClearCall()
		return nil
	case filerecord.FieldWorkspace:
		m.ClearWorkspace()
		return nil
	case filerecord.FieldErrorType:
		m.ClearErrorType()
		return nil
	case filerecord.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown FileRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FileRecordMutation) ResetField(name string) error {
	switch name {
	case filerecord.FieldSessionID:
		m.ResetSessionID()
		return nil
	case filerecord.FieldToolID:
		m.ResetToolID()
		return nil
	case filerecord.FieldFileName:
		m.ResetFileName()
		return nil
	case filerecord.FieldFilePath:
		m.ResetFilePath()
		return nil
	case filerecord.FieldIsError:
		m.ResetIsError()
		return nil
	case filerecord.FieldSummary:
		m.ResetSummary()
		return nil
	case filerecord.FieldQueryParameters:
		m.ResetQueryParameters()
		return nil
	case filerecord.FieldCall:
		m.ResetCall()
		return nil
	case filerecord.FieldWorkspace:
		m.ResetWorkspace()
		return nil
	case filerecord.FieldErrorType:
		m.ResetErrorType()
		return nil
	case filerecord.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case filerecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown FileRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FileRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, filerecord.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FileRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case filerecord.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FileRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FileRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FileRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, filerecord.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FileRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case filerecord.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FileRecordMutation) ClearEdge(name string) error {
	switch name {
	case filerecord.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown FileRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FileRecordMutation) ResetEdge(name string) error {
	switch name {
	case filerecord.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown FileRecord edge %s", name)
}

// JobMutation represents an operation that mutates the Job nodes in the graph.
type JobMutation struct {
	config
	op                Op
	typ               string
	id                *string
	queue             *string
	status            *job.Status
	priority          *int
	addpriority       *int
	data              *map[string]interface{}
	attempts_made     *int
	addattempts_made  *int
	max_attempts      *int
	addmax_attempts   *int
	next_attempt_at   *time.Time
	progress          *map[string]interface{}
	result            *map[string]interface{}
	error_message     *string
	pod_id            *string
	last_heartbeat_at *time.Time
	created_at        *time.Time
	started_at        *time.Time
	completed_at      *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*Job, error)
	predicates        []predicate.Job
}

var _ ent.Mutation = (*JobMutation)(nil)

// jobOption allows management of the mutation configuration using functional options.
type jobOption func(*JobMutation)

// newJobMutation creates new mutation for the Job entity.
func newJobMutation(c config, op Op, opts ...jobOption) *JobMutation {
	m := &JobMutation{
		config:        c,
		op:            op,
		typ:           TypeJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobID sets the ID field of the mutation.
func withJobID(id string) jobOption {
	return func(m *JobMutation) {
		var (
			err   error
			once  sync.Once
			value *Job
		)
		m.oldValue = func(ctx context.Context) (*Job, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Job.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJob sets the old Job of the mutation.
func withJob(node *Job) jobOption {
	return func(m *JobMutation) {
		m.oldValue = func(context.Context) (*Job, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Job entities.
func (m *JobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Job.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetQueue sets the "queue" field.
func (m *JobMutation) SetQueue(s string) {
	m.queue = &s
}

// Queue returns the value of the "queue" field in the mutation.
func (m *JobMutation) Queue() (r string, exists bool) {
	v := m.queue
	if v == nil {
		return
	}
	return *v, true
}

// OldQueue returns the old "queue" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldQueue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueue: %w", err)
	}
	return oldValue.Queue, nil
}

// ResetQueue resets all changes to the "queue" field.
func (m *JobMutation) ResetQueue() {
	m.queue = nil
}

// SetStatus sets the "status" field.
func (m *JobMutation) SetStatus(j job.Status) {
	m.status = &j
}

// Status returns the value of the "status" field in the mutation.
func (m *JobMutation) Status() (r job.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStatus(ctx context.Context) (v job.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *JobMutation) ResetStatus() {
	m.status = nil
}

// SetPriority sets the "priority" field.
func (m *JobMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *JobMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *JobMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *JobMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *JobMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetData sets the "data" field.
func (m *JobMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *JobMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ResetData resets all changes to the "data" field.
func (m *JobMutation) ResetData() {
	m.data = nil
}

// SetAttemptsMade sets the "attempts_made" field.
func (m *JobMutation) SetAttemptsMade(i int) {
	m.attempts_made = &i
	m.addattempts_made = nil
}

// AttemptsMade returns the value of the "attempts_made" field in the mutation.
func (m *JobMutation) AttemptsMade() (r int, exists bool) {
	v := m.attempts_made
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptsMade returns the old "attempts_made" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldAttemptsMade(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptsMade is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptsMade requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptsMade: %w", err)
	}
	return oldValue.AttemptsMade, nil
}

// AddAttemptsMade adds i to the "attempts_made" field.
func (m *JobMutation) AddAttemptsMade(i int) {
	if m.addattempts_made != nil {
		*m.addattempts_made += i
	} else {
		m.addattempts_made = &i
	}
}

// AddedAttemptsMade returns the value that was added to the "attempts_made" field in this mutation.
func (m *JobMutation) AddedAttemptsMade() (r int, exists bool) {
	v := m.addattempts_made
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttemptsMade resets all changes to the "attempts_made" field.
func (m *JobMutation) ResetAttemptsMade() {
	m.attempts_made = nil
	m.addattempts_made = nil
}

// SetMaxAttempts sets the "max_attempts" field.
func (m *JobMutation) SetMaxAttempts(i int) {
	m.max_attempts = &i
	m.addmax_attempts = nil
}

// MaxAttempts returns the value of the "max_attempts" field in the mutation.
func (m *JobMutation) MaxAttempts() (r int, exists bool) {
	v := m.max_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxAttempts returns the old "max_attempts" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldMaxAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxAttempts: %w", err)
	}
	return oldValue.MaxAttempts, nil
}

// AddMaxAttempts adds i to the "max_attempts" field.
func (m *JobMutation) AddMaxAttempts(i int) {
	if m.addmax_attempts != nil {
		*m.addmax_attempts += i
	} else {
		m.addmax_attempts = &i
	}
}

// AddedMaxAttempts returns the value that was added to the "max_attempts" field in this mutation.
func (m *JobMutation) AddedMaxAttempts() (r int, exists bool) {
	v := m.addmax_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxAttempts resets all changes to the "max_attempts" field.
func (m *JobMutation) ResetMaxAttempts() {
	m.max_attempts = nil
	m.addmax_attempts = nil
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (m *JobMutation) SetNextAttemptAt(t time.Time) {
	m.next_attempt_at = &t
}

// NextAttemptAt returns the value of the "next_attempt_at" field in the mutation.
func (m *JobMutation) NextAttemptAt() (r time.Time, exists bool) {
	v := m.next_attempt_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextAttemptAt returns the old "next_attempt_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldNextAttemptAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextAttemptAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextAttemptAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextAttemptAt: %w", err)
	}
	return oldValue.NextAttemptAt, nil
}

// ClearNextAttemptAt clears the value of the "next_attempt_at" field.
func (m *JobMutation) ClearNextAttemptAt() {
	m.next_attempt_at = nil
	m.clearedFields[job.FieldNextAttemptAt] = struct{}{}
}

// NextAttemptAtCleared returns if the "next_attempt_at" field was cleared in this mutation.
func (m *JobMutation) NextAttemptAtCleared() bool {
	_, ok := m.clearedFields[job.FieldNextAttemptAt]
	return ok
}

// ResetNextAttemptAt resets all changes to the "next_attempt_at" field.
func (m *JobMutation) ResetNextAttemptAt() {
	m.next_attempt_at = nil
	delete(m.clearedFields, job.FieldNextAttemptAt)
}

// SetProgress sets the "progress" field.
func (m *JobMutation) SetProgress(value map[string]interface{}) {
	m.progress = &value
}

// Progress returns the value of the "progress" field in the mutation.
func (m *JobMutation) Progress() (r map[string]interface{}, exists bool) {
	v := m.progress
	if v == nil {
		return
	}
	return *v, true
}

// OldProgress returns the old "progress" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldProgress(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgress: %w", err)
	}
	return oldValue.Progress, nil
}

// ClearProgress clears the value of the "progress" field.
func (m *JobMutation) ClearProgress() {
	m.progress = nil
	m.clearedFields[job.FieldProgress] = struct{}{}
}

// ProgressCleared returns if the "progress" field was cleared in this mutation.
func (m *JobMutation) ProgressCleared() bool {
	_, ok := m.clearedFields[job.FieldProgress]
	return ok
}

// ResetProgress resets all changes to the "progress" field.
func (m *JobMutation) ResetProgress() {
	m.progress = nil
	delete(m.clearedFields, job.FieldProgress)
}

// SetResult sets the "result" field.
func (m *JobMutation) SetResult(value map[string]interface{}) {
	m.result = &value
}

// Result returns the value of the "result" field in the mutation.
func (m *JobMutation) Result() (r map[string]interface{}, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *JobMutation) ClearResult() {
	m.result = nil
	m.clearedFields[job.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *JobMutation) ResultCleared() bool {
	_, ok := m.clearedFields[job.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *JobMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, job.FieldResult)
}

// SetErrorMessage sets the "error_message" field.
func (m *JobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *JobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *JobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[job.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *JobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[job.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *JobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, job.FieldErrorMessage)
}

// SetPodID sets the "pod_id" field.
func (m *JobMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *JobMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *JobMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[job.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *JobMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[job.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *JobMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, job.FieldPodID)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *JobMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *JobMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *JobMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[job.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *JobMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[job.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *JobMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, job.FieldLastHeartbeatAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *JobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *JobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *JobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *JobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[job.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *JobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *JobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, job.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *JobMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *JobMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *JobMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[job.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *JobMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *JobMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, job.FieldCompletedAt)
}

// Where appends a list predicates to the JobMutation builder.
func (m *JobMutation) Where(ps ...predicate.Job) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Job, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Job).
func (m *JobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.queue != nil {
		fields = append(fields, job.FieldQueue)
	}
	if m.status != nil {
		fields = append(fields, job.FieldStatus)
	}
	if m.priority != nil {
		fields = append(fields, job.FieldPriority)
	}
	if m.data != nil {
		fields = append(fields, job.FieldData)
	}
	if m.attempts_made != nil {
		fields = append(fields, job.FieldAttemptsMade)
	}
	if m.max_attempts != nil {
		fields = append(fields, job.FieldMaxAttempts)
	}
	if m.next_attempt_at != nil {
		fields = append(fields, job.FieldNextAttemptAt)
	}
	if m.progress != nil {
		fields = append(fields, job.FieldProgress)
	}
	if m.result != nil {
		fields = append(fields, job.FieldResult)
	}
	if m.error_message != nil {
		fields = append(fields, job.FieldErrorMessage)
	}
	if m.pod_id != nil {
		fields = append(fields, job.FieldPodID)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, job.FieldLastHeartbeatAt)
	}
	if m.created_at != nil {
		fields = append(fields, job.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, job.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, job.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case job.FieldQueue:
		return m.Queue()
	case job.FieldStatus:
		return m.Status()
	case job.FieldPriority:
		return m.Priority()
	case job.FieldData:
		return m.Data()
	case job.FieldAttemptsMade:
		return m.AttemptsMade()
	case job.FieldMaxAttempts:
		return m.MaxAttempts()
	case job.FieldNextAttemptAt:
		return m.NextAttemptAt()
	case job.FieldProgress:
		return m.Progress()
	case job.FieldResult:
		return m.Result()
	case job.FieldErrorMessage:
		return m.ErrorMessage()
	case job.FieldPodID:
		return m.PodID()
	case job.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case job.FieldCreatedAt:
		return m.CreatedAt()
	case job.FieldStartedAt:
		return m.StartedAt()
	case job.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case job.FieldQueue:
		return m.OldQueue(ctx)
	case job.FieldStatus:
		return m.OldStatus(ctx)
	case job.FieldPriority:
		return m.OldPriority(ctx)
	case job.FieldData:
		return m.OldData(ctx)
	case job.FieldAttemptsMade:
		return m.OldAttemptsMade(ctx)
	case job.FieldMaxAttempts:
		return m.OldMaxAttempts(ctx)
	case job.FieldNextAttemptAt:
		return m.OldNextAttemptAt(ctx)
	case job.FieldProgress:
		return m.OldProgress(ctx)
	case job.FieldResult:
		return m.OldResult(ctx)
	case job.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case job.FieldPodID:
		return m.OldPodID(ctx)
	case job.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case job.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case job.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case job.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Job field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case job.FieldQueue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueue(v)
		return nil
	case job.FieldStatus:
		v, ok := value.(job.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case job.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case job.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	case job.FieldAttemptsMade:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptsMade(v)
		return nil
	case job.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxAttempts(v)
		return nil
	case job.FieldNextAttemptAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextAttemptAt(v)
		return nil
	case job.FieldProgress:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgress(v)
		return nil
	case job.FieldResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case job.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case job.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case job.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case job.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case job.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case job.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, job.FieldPriority)
	}
	if m.addattempts_made != nil {
		fields = append(fields, job.FieldAttemptsMade)
	}
	if m.addmax_attempts != nil {
		fields = append(fields, job.FieldMaxAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case job.FieldPriority:
		return m.AddedPriority()
	case job.FieldAttemptsMade:
		return m.AddedAttemptsMade()
	case job.FieldMaxAttempts:
		return m.AddedMaxAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case job.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case job.FieldAttemptsMade:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttemptsMade(v)
		return nil
	case job.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown Job numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(job.FieldNextAttemptAt) {
		fields = append(fields, job.FieldNextAttemptAt)
	}
	if m.FieldCleared(job.FieldProgress) {
		fields = append(fields, job.FieldProgress)
	}
	if m.FieldCleared(job.FieldResult) {
		fields = append(fields, job.FieldResult)
	}
	if m.FieldCleared(job.FieldErrorMessage) {
		fields = append(fields, job.FieldErrorMessage)
	}
	if m.FieldCleared(job.FieldPodID) {
		fields = append(fields, job.FieldPodID)
	}
	if m.FieldCleared(job.FieldLastHeartbeatAt) {
		fields = append(fields, job.FieldLastHeartbeatAt)
	}
	if m.FieldCleared(job.FieldStartedAt) {
		fields = append(fields, job.FieldStartedAt)
	}
	if m.FieldCleared(job.FieldCompletedAt) {
		fields = append(fields, job.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobMutation) ClearField(name string) error {
	switch name {
	case job.FieldNextAttemptAt:
		m.ClearNextAttemptAt()
		return nil
	case job.FieldProgress:
		m.ClearProgress()
		return nil
	case job.FieldResult:
		m.ClearResult()
		return nil
	case job.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case job.FieldPodID:
		m.ClearPodID()
		return nil
	case job.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	case job.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case job.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Job nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobMutation) ResetField(name string) error {
	switch name {
	case job.FieldQueue:
		m.ResetQueue()
		return nil
	case job.FieldStatus:
		m.ResetStatus()
		return nil
	case job.FieldPriority:
		m.ResetPriority()
		return nil
	case job.FieldData:
		m.ResetData()
		return nil
	case job.FieldAttemptsMade:
		m.ResetAttemptsMade()
		return nil
	case job.FieldMaxAttempts:
		m.ResetMaxAttempts()
		return nil
	case job.FieldNextAttemptAt:
		m.ResetNextAttemptAt()
		return nil
	case job.FieldProgress:
		m.ResetProgress()
		return nil
	case job.FieldResult:
		m.ResetResult()
		return nil
	case job.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case job.FieldPodID:
		m.ResetPodID()
		return nil
	case job.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case job.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case job.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case job.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Job unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Job edge %s", name)
}

// SessionMemoryMutation represents an operation that mutates the SessionMemory nodes in the graph.
type SessionMemoryMutation struct {
	config
	op             Op
	typ            string
	id             *string
	user_id        *string
	focus          *map[string]interface{}
	facts          *map[string]interface{}
	facts_meta     *map[string]interface{}
	tool_facts     *map[string]interface{}
	entities       *map[string]interface{}
	last_tool      *map[string]interface{}
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	session        *string
	clearedsession bool
	done           bool
	oldValue       func(context.Context) (*SessionMemory, error)
	predicates     []predicate.SessionMemory
}

var _ ent.Mutation = (*SessionMemoryMutation)(nil)

// sessionmemoryOption allows management of the mutation configuration using functional options.
type sessionmemoryOption func(*SessionMemoryMutation)

// newSessionMemoryMutation creates new mutation for the SessionMemory entity.
func newSessionMemoryMutation(c config, op Op, opts ...sessionmemoryOption) *SessionMemoryMutation {
	m := &SessionMemoryMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionMemory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionMemoryID sets the ID field of the mutation.
func withSessionMemoryID(id string) sessionmemoryOption {
	return func(m *SessionMemoryMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionMemory
		)
		m.oldValue = func(ctx context.Context) (*SessionMemory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionMemory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionMemory sets the old SessionMemory of the mutation.
func withSessionMemory(node *SessionMemory) sessionmemoryOption {
	return func(m *SessionMemoryMutation) {
		m.oldValue = func(context.Context) (*SessionMemory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionMemoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionMemoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SessionMemory entities.
func (m *SessionMemoryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionMemoryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionMemoryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionMemory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *SessionMemoryMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SessionMemoryMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the SessionMemory entity.
// If the SessionMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMemoryMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SessionMemoryMutation) ResetSessionID() {
	m.session = nil
}

// SetUserID sets the "user_id" field.
func (m *SessionMemoryMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SessionMemoryMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the SessionMemory entity.
// If the SessionMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMemoryMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SessionMemoryMutation) ResetUserID() {
	m.user_id = nil
}

// SetFocus sets the "focus" field.
func (m *SessionMemoryMutation) SetFocus(value map[string]interface{}) {
	m.focus = &value
}

// Focus returns the value of the "focus" field in the mutation.
func (m *SessionMemoryMutation) Focus() (r map[string]interface{}, exists bool) {
	v := m.focus
	if v == nil {
		return
	}
	return *v, true
}

// OldFocus returns the old "focus" field's value of the SessionMemory entity.
// If the SessionMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMemoryMutation) OldFocus(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFocus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFocus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFocus: %w", err)
	}
	return oldValue.Focus, nil
}

// ClearFocus clears the value of the "focus" field.
func (m *SessionMemoryMutation) ClearFocus() {
	m.focus = nil
	m.clearedFields[sessionmemory.FieldFocus] = struct{}{}
}

// FocusCleared returns if the "focus" field was cleared in this mutation.
func (m *SessionMemoryMutation) FocusCleared() bool {
	_, ok := m.clearedFields[sessionmemory.FieldFocus]
	return ok
}

// ResetFocus resets all changes to the "focus" field.
func (m *SessionMemoryMutation) ResetFocus() {
	m.focus = nil
	delete(m.clearedFields, sessionmemory.FieldFocus)
}

// SetFacts sets the "facts" field.
func (m *SessionMemoryMutation) SetFacts(value map[string]interface{}) {
	m.facts = &value
}

// Facts returns the value of the "facts" field in the mutation.
func (m *SessionMemoryMutation) Facts() (r map[string]interface{}, exists bool) {
	v := m.facts
	if v == nil {
		return
	}
	return *v, true
}

// OldFacts returns the old "facts" field's value of the SessionMemory entity.
// If the SessionMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMemoryMutation) OldFacts(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFacts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFacts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFacts: %w", err)
	}
	return oldValue.Facts, nil
}

// ClearFacts clears the value of the "facts" field.
func (m *SessionMemoryMutation) ClearFacts() {
	m.facts = nil
	m.clearedFields[sessionmemory.FieldFacts] = struct{}{}
}

// FactsCleared returns if the "facts" field was cleared in this mutation.
func (m *SessionMemoryMutation) FactsCleared() bool {
	_, ok := m.clearedFields[sessionmemory.FieldFacts]
	return ok
}

// ResetFacts resets all changes to the "facts" field.
func (m *SessionMemoryMutation) ResetFacts() {
	m.facts = nil
	delete(m.clearedFields, sessionmemory.FieldFacts)
}

// SetFactsMeta sets the "facts_meta" field.
func (m *SessionMemoryMutation) SetFactsMeta(value map[string]interface{}) {
	m.facts_meta = &value
}

// FactsMeta returns the value of the "facts_meta" field in the mutation.
func (m *SessionMemoryMutation) FactsMeta() (r map[string]interface{}, exists bool) {
	v := m.facts_meta
	if v == nil {
		return
	}
	return *v, true
}

// OldFactsMeta returns the old "facts_meta" field's value of the SessionMemory entity.
// If the SessionMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMemoryMutation) OldFactsMeta(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFactsMeta is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFactsMeta requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFactsMeta: %w", err)
	}
	return oldValue.FactsMeta, nil
}

// ClearFactsMeta clears the value of the "facts_meta" field.
func (m *SessionMemoryMutation) ClearFactsMeta() {
	m.facts_meta = nil
	m.clearedFields[sessionmemory.FieldFactsMeta] = struct{}{}
}

// FactsMetaCleared returns if the "facts_meta" field was cleared in this mutation.
func (m *SessionMemoryMutation) FactsMetaCleared() bool {
	_, ok := m.clearedFields[sessionmemory.FieldFactsMeta]
	return ok
}

// ResetFactsMeta resets all changes to the "facts_meta" field.
func (m *SessionMemoryMutation) ResetFactsMeta() {
	m.facts_meta = nil
	delete(m.clearedFields, sessionmemory.FieldFactsMeta)
}

// SetToolFacts sets the "tool_facts" field.
func (m *SessionMemoryMutation) SetToolFacts(value map[string]interface{}) {
	m.tool_facts = &value
}

// ToolFacts returns the value of the "tool_facts" field in the mutation.
func (m *SessionMemoryMutation) ToolFacts() (r map[string]interface{}, exists bool) {
	v := m.tool_facts
	if v == nil {
		return
	}
	return *v, true
}

// OldToolFacts returns the old "tool_facts" field's value of the SessionMemory entity.
// If the SessionMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMemoryMutation) OldToolFacts(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolFacts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolFacts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolFacts: %w", err)
	}
	return oldValue.ToolFacts, nil
}

// ClearToolFacts clears the value of the "tool_facts" field.
func (m *SessionMemoryMutation) ClearToolFacts() {
	m.tool_facts = nil
	m.clearedFields[sessionmemory.FieldToolFacts] = struct{}{}
}

// ToolFactsCleared returns if the "tool_facts" field was cleared in this mutation.
func (m *SessionMemoryMutation) ToolFactsCleared() bool {
	_, ok := m.clearedFields[sessionmemory.FieldToolFacts]
	return ok
}

// ResetToolFacts resets all changes to the "tool_facts" field.
func (m *SessionMemoryMutation) ResetToolFacts() {
	m.tool_facts = nil
	delete(m.clearedFields, sessionmemory.FieldToolFacts)
}

// SetEntities sets the "entities" field.
func (m *SessionMemoryMutation) SetEntities(value map[string]interface{}) {
	m.entities = &value
}

// Entities returns the value of the "entities" field in the mutation.
func (m *SessionMemoryMutation) Entities() (r map[string]interface{}, exists bool) {
	v := m.entities
	if v == nil {
		return
	}
	return *v, true
}

// OldEntities returns the old "entities" field's value of the SessionMemory entity.
// If the SessionMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMemoryMutation) OldEntities(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntities is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntities requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntities: %w", err)
	}
	return oldValue.Entities, nil
}

// ClearEntities clears the value of the "entities" field.
func (m *SessionMemoryMutation) ClearEntities() {
	m.entities = nil
	m.clearedFields[sessionmemory.FieldEntities] = struct{}{}
}

// EntitiesCleared returns if the "entities" field was cleared in this mutation.
func (m *SessionMemoryMutation) EntitiesCleared() bool {
	_, ok := m.clearedFields[sessionmemory.FieldEntities]
	return ok
}

// ResetEntities resets all changes to the "entities" field.
func (m *SessionMemoryMutation) ResetEntities() {
	m.entities = nil
	delete(m.clearedFields, sessionmemory.FieldEntities)
}

// SetLastTool sets the "last_tool" field.
func (m *SessionMemoryMutation) SetLastTool(value map[string]interface{}) {
	m.last_tool = &value
}

// LastTool returns the value of the "last_tool" field in the mutation.
func (m *SessionMemoryMutation) LastTool() (r map[string]interface{}, exists bool) {
	v := m.last_tool
	if v == nil {
		return
	}
	return *v, true
}

// OldLastTool returns the old "last_tool" field's value of the SessionMemory entity.
// If the SessionMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMemoryMutation) OldLastTool(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastTool is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastTool requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastTool: %w", err)
	}
	return oldValue.LastTool, nil
}

// ClearLastTool clears the value of the "last_tool" field.
func (m *SessionMemoryMutation) ClearLastTool() {
	m.last_tool = nil
	m.clearedFields[sessionmemory.FieldLastTool] = struct{}{}
}

// LastToolCleared returns if the "last_tool" field was cleared in this mutation.
func (m *SessionMemoryMutation) LastToolCleared() bool {
	_, ok := m.clearedFields[sessionmemory.FieldLastTool]
	return ok
}

// ResetLastTool resets all changes to the "last_tool" field.
func (m *SessionMemoryMutation) ResetLastTool() {
	m.last_tool = nil
	delete(m.clearedFields, sessionmemory.FieldLastTool)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SessionMemoryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SessionMemoryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SessionMemory entity.
// If the SessionMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMemoryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SessionMemoryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearSession clears the "session" edge to the ChatSession entity.
func (m *SessionMemoryMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[sessionmemory.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the ChatSession entity was cleared.
func (m *SessionMemoryMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *SessionMemoryMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *SessionMemoryMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the SessionMemoryMutation builder.
func (m *SessionMemoryMutation) Where(ps ...predicate.SessionMemory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionMemoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionMemoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionMemory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionMemoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionMemoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionMemory).
func (m *SessionMemoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionMemoryMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.session != nil {
		fields = append(fields, sessionmemory.FieldSessionID)
	}
	if m.user_id != nil {
		fields = append(fields, sessionmemory.FieldUserID)
	}
	if m.focus != nil {
		fields = append(fields, sessionmemory.FieldFocus)
	}
	if m.facts != nil {
		fields = append(fields, sessionmemory.FieldFacts)
	}
	if m.facts_meta != nil {
		fields = append(fields, sessionmemory.FieldFactsMeta)
	}
	if m.tool_facts != nil {
		fields = append(fields, sessionmemory.FieldToolFacts)
	}
	if m.entities != nil {
		fields = append(fields, sessionmemory.FieldEntities)
	}
	if m.last_tool != nil {
		fields = append(fields, sessionmemory.FieldLastTool)
	}
	if m.updated_at != nil {
		fields = append(fields, sessionmemory.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionMemoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessionmemory.FieldSessionID:
		return m.SessionID()
	case sessionmemory.FieldUserID:
		return m.UserID()
	case sessionmemory.FieldFocus:
		return m.Focus()
	case sessionmemory.FieldFacts:
		return m.Facts()
	case sessionmemory.FieldFactsMeta:
		return m.FactsMeta()
	case sessionmemory.FieldToolFacts:
		return m.ToolFacts()
	case sessionmemory.FieldEntities:
		return m.Entities()
	case sessionmemory.FieldLastTool:
		return m.LastTool()
	case sessionmemory.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionMemoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessionmemory.FieldSessionID:
		return m.OldSessionID(ctx)
	case sessionmemory.FieldUserID:
		return m.OldUserID(ctx)
	case sessionmemory.FieldFocus:
		return m.OldFocus(ctx)
	case sessionmemory.FieldFacts:
		return m.OldFacts(ctx)
	case sessionmemory.FieldFactsMeta:
		return m.OldFactsMeta(ctx)
	case sessionmemory.FieldToolFacts:
		return m.OldToolFacts(ctx)
	case sessionmemory.FieldEntities:
		return m.OldEntities(ctx)
	case sessionmemory.FieldLastTool:
		return m.OldLastTool(ctx)
	case sessionmemory.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SessionMemory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMemoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessionmemory.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case sessionmemory.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case sessionmemory.FieldFocus:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFocus(v)
		return nil
	case sessionmemory.FieldFacts:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFacts(v)
		return nil
	case sessionmemory.FieldFactsMeta:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFactsMeta(v)
		return nil
	case sessionmemory.FieldToolFacts:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolFacts(v)
		return nil
	case sessionmemory.FieldEntities:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntities(v)
		return nil
	case sessionmemory.FieldLastTool:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastTool(v)
		return nil
	case sessionmemory.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SessionMemory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionMemoryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionMemoryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMemoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SessionMemory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionMemoryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sessionmemory.FieldFocus) {
		fields = append(fields, sessionmemory.FieldFocus)
	}
	if m.FieldCleared(sessionmemory.FieldFacts) {
		fields = append(fields, sessionmemory.FieldFacts)
	}
	if m.FieldCleared(sessionmemory.FieldFactsMeta) {
		fields = append(fields, sessionmemory.FieldFactsMeta)
	}
	if m.FieldCleared(sessionmemory.FieldToolFacts) {
		fields = append(fields, sessionmemory.FieldToolFacts)
	}
	if m.FieldCleared(sessionmemory.FieldEntities) {
		fields = append(fields, sessionmemory.FieldEntities)
	}
	if m.FieldCleared(sessionmemory.FieldLastTool) {
		fields = append(fields, sessionmemory.FieldLastTool)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionMemoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionMemoryMutation) ClearField(name string) error {
	switch name {
	case sessionmemory.FieldFocus:
		m.ClearFocus()
		return nil
	case sessionmemory.FieldFacts:
		m.ClearFacts()
		return nil
	case sessionmemory.FieldFactsMeta:
		m.ClearFactsMeta()
		return nil
	case sessionmemory.FieldToolFacts:
		m.ClearToolFacts()
		return nil
	case sessionmemory.FieldEntities:
		m.ClearEntities()
		return nil
	case sessionmemory.FieldLastTool:
		m.ClearLastTool()
		return nil
	}
	return fmt.Errorf("unknown SessionMemory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionMemoryMutation) ResetField(name string) error {
	switch name {
	case sessionmemory.FieldSessionID:
		m.ResetSessionID()
		return nil
	case sessionmemory.FieldUserID:
		m.ResetUserID()
		return nil
	case sessionmemory.FieldFocus:
		m.ResetFocus()
		return nil
	case sessionmemory.FieldFacts:
		m.ResetFacts()
		return nil
	case sessionmemory.FieldFactsMeta:
		m.ResetFactsMeta()
		return nil
	case sessionmemory.FieldToolFacts:
		m.ResetToolFacts()
		return nil
	case sessionmemory.FieldEntities:
		m.ResetEntities()
		return nil
	case sessionmemory.FieldLastTool:
		m.ResetLastTool()
		return nil
	case sessionmemory.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SessionMemory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionMemoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, sessionmemory.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionMemoryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case sessionmemory.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionMemoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionMemoryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionMemoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, sessionmemory.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionMemoryMutation) EdgeCleared(name string) bool {
	switch name {
	case sessionmemory.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionMemoryMutation) ClearEdge(name string) error {
	switch name {
	case sessionmemory.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown SessionMemory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionMemoryMutation) ResetEdge(name string) error {
	switch name {
	case sessionmemory.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown SessionMemory edge %s", name)
}
