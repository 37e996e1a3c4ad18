// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/cucinellclark/bvbrc-copilot/ent/chatmessage"
	"github.com/cucinellclark/bvbrc-copilot/ent/chatsession"
	"github.com/cucinellclark/bvbrc-copilot/ent/predicate"
)

// ChatMessageUpdate is the builder for updating ChatMessage entities.
type ChatMessageUpdate struct {
	config
	hooks    []Hook
	mutation *ChatMessageMutation
}

// Where appends a list predicates to the ChatMessageUpdate builder.
func (_u *ChatMessageUpdate) Where(ps ...predicate.ChatMessage) *ChatMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ChatMessageUpdate) SetSessionID(v string) *ChatMessageUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableSessionID(v *string) *ChatMessageUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *ChatMessageUpdate) SetRole(v chatmessage.Role) *ChatMessageUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableRole(v *chatmessage.Role) *ChatMessageUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ChatMessageUpdate) SetContent(v string) *ChatMessageUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableContent(v *string) *ChatMessageUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *ChatMessageUpdate) SetTimestamp(v time.Time) *ChatMessageUpdate {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableTimestamp(v *time.Time) *ChatMessageUpdate {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetAttachments sets the "attachments" field.
func (_u *ChatMessageUpdate) SetAttachments(v []string) *ChatMessageUpdate {
	_u.mutation.SetAttachments(v)
	return _u
}

// AppendAttachments appends value to the "attachments" field.
func (_u *ChatMessageUpdate) AppendAttachments(v []string) *ChatMessageUpdate {
	_u.mutation.AppendAttachments(v)
	return _u
}

// ClearAttachments clears the value of the "attachments" field.
func (_u *ChatMessageUpdate) ClearAttachments() *ChatMessageUpdate {
	_u.mutation.ClearAttachments()
	return _u
}

// SetToolCall sets the "tool_call" field.
func (_u *ChatMessageUpdate) SetToolCall(v map[string]interface{}) *ChatMessageUpdate {
	_u.mutation.SetToolCall(v)
	return _u
}

// ClearToolCall clears the value of the "tool_call" field.
func (_u *ChatMessageUpdate) ClearToolCall() *ChatMessageUpdate {
	_u.mutation.ClearToolCall()
	return _u
}

// SetUIToolCall sets the "ui_tool_call" field.
func (_u *ChatMessageUpdate) SetUIToolCall(v map[string]interface{}) *ChatMessageUpdate {
	_u.mutation.SetUIToolCall(v)
	return _u
}

// ClearUIToolCall clears the value of the "ui_tool_call" field.
func (_u *ChatMessageUpdate) ClearUIToolCall() *ChatMessageUpdate {
	_u.mutation.ClearUIToolCall()
	return _u
}

// SetSourceTool sets the "source_tool" field.
func (_u *ChatMessageUpdate) SetSourceTool(v string) *ChatMessageUpdate {
	_u.mutation.SetSourceTool(v)
	return _u
}

// SetNillableSourceTool sets the "source_tool" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableSourceTool(v *string) *ChatMessageUpdate {
	if v != nil {
		_u.SetSourceTool(*v)
	}
	return _u
}

// ClearSourceTool clears the value of the "source_tool" field.
func (_u *ChatMessageUpdate) ClearSourceTool() *ChatMessageUpdate {
	_u.mutation.ClearSourceTool()
	return _u
}

// SetUISourceTool sets the "ui_source_tool" field.
func (_u *ChatMessageUpdate) SetUISourceTool(v string) *ChatMessageUpdate {
	_u.mutation.SetUISourceTool(v)
	return _u
}

// SetNillableUISourceTool sets the "ui_source_tool" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableUISourceTool(v *string) *ChatMessageUpdate {
	if v != nil {
		_u.SetUISourceTool(*v)
	}
	return _u
}

// ClearUISourceTool clears the value of the "ui_source_tool" field.
func (_u *ChatMessageUpdate) ClearUISourceTool() *ChatMessageUpdate {
	_u.mutation.ClearUISourceTool()
	return _u
}

// SetWorkflowID sets the "workflow_id" field.
func (_u *ChatMessageUpdate) SetWorkflowID(v string) *ChatMessageUpdate {
	_u.mutation.SetWorkflowID(v)
	return _u
}

// SetNillableWorkflowID sets the "workflow_id" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableWorkflowID(v *string) *ChatMessageUpdate {
	if v != nil {
		_u.SetWorkflowID(*v)
	}
	return _u
}

// ClearWorkflowID clears the value of the "workflow_id" field.
func (_u *ChatMessageUpdate) ClearWorkflowID() *ChatMessageUpdate {
	_u.mutation.ClearWorkflowID()
	return _u
}

// SetIsWorkflow sets the "is_workflow" field.
func (_u *ChatMessageUpdate) SetIsWorkflow(v bool) *ChatMessageUpdate {
	_u.mutation.SetIsWorkflow(v)
	return _u
}

// SetNillableIsWorkflow sets the "is_workflow" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableIsWorkflow(v *bool) *ChatMessageUpdate {
	if v != nil {
		_u.SetIsWorkflow(*v)
	}
	return _u
}

// SetIsWorkspaceBrowse sets the "is_workspace_browse" field.
func (_u *ChatMessageUpdate) SetIsWorkspaceBrowse(v bool) *ChatMessageUpdate {
	_u.mutation.SetIsWorkspaceBrowse(v)
	return _u
}

// SetNillableIsWorkspaceBrowse sets the "is_workspace_browse" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableIsWorkspaceBrowse(v *bool) *ChatMessageUpdate {
	if v != nil {
		_u.SetIsWorkspaceBrowse(*v)
	}
	return _u
}

// SetIsJobsBrowse sets the "is_jobs_browse" field.
func (_u *ChatMessageUpdate) SetIsJobsBrowse(v bool) *ChatMessageUpdate {
	_u.mutation.SetIsJobsBrowse(v)
	return _u
}

// SetNillableIsJobsBrowse sets the "is_jobs_browse" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableIsJobsBrowse(v *bool) *ChatMessageUpdate {
	if v != nil {
		_u.SetIsJobsBrowse(*v)
	}
	return _u
}

// SetChatSummary sets the "chat_summary" field.
func (_u *ChatMessageUpdate) SetChatSummary(v string) *ChatMessageUpdate {
	_u.mutation.SetChatSummary(v)
	return _u
}

// SetNillableChatSummary sets the "chat_summary" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableChatSummary(v *string) *ChatMessageUpdate {
	if v != nil {
		_u.SetChatSummary(*v)
	}
	return _u
}

// ClearChatSummary clears the value of the "chat_summary" field.
func (_u *ChatMessageUpdate) ClearChatSummary() *ChatMessageUpdate {
	_u.mutation.ClearChatSummary()
	return _u
}

// SetUIAction sets the "ui_action" field.
func (_u *ChatMessageUpdate) SetUIAction(v string) *ChatMessageUpdate {
	_u.mutation.SetUIAction(v)
	return _u
}

// SetNillableUIAction sets the "ui_action" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableUIAction(v *string) *ChatMessageUpdate {
	if v != nil {
		_u.SetUIAction(*v)
	}
	return _u
}

// ClearUIAction clears the value of the "ui_action" field.
func (_u *ChatMessageUpdate) ClearUIAction() *ChatMessageUpdate {
	_u.mutation.ClearUIAction()
	return _u
}

// SetDocuments sets the "documents" field.
func (_u *ChatMessageUpdate) SetDocuments(v []map[string]interface{}) *ChatMessageUpdate {
	_u.mutation.SetDocuments(v)
	return _u
}

// AppendDocuments appends value to the "documents" field.
func (_u *ChatMessageUpdate) AppendDocuments(v []map[string]interface{}) *ChatMessageUpdate {
	_u.mutation.AppendDocuments(v)
	return _u
}

// ClearDocuments clears the value of the "documents" field.
func (_u *ChatMessageUpdate) ClearDocuments() *ChatMessageUpdate {
	_u.mutation.ClearDocuments()
	return _u
}

// SetAgentTrace sets the "agent_trace" field.
func (_u *ChatMessageUpdate) SetAgentTrace(v []map[string]interface{}) *ChatMessageUpdate {
	_u.mutation.SetAgentTrace(v)
	return _u
}

// AppendAgentTrace appends value to the "agent_trace" field.
func (_u *ChatMessageUpdate) AppendAgentTrace(v []map[string]interface{}) *ChatMessageUpdate {
	_u.mutation.AppendAgentTrace(v)
	return _u
}

// ClearAgentTrace clears the value of the "agent_trace" field.
func (_u *ChatMessageUpdate) ClearAgentTrace() *ChatMessageUpdate {
	_u.mutation.ClearAgentTrace()
	return _u
}

// SetSession sets the "session" edge to the ChatSession entity.
func (_u *ChatMessageUpdate) SetSession(v *ChatSession) *ChatMessageUpdate {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the ChatMessageMutation object of the builder.
func (_u *ChatMessageUpdate) Mutation() *ChatMessageMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the ChatSession entity.
func (_u *ChatMessageUpdate) ClearSession() *ChatMessageUpdate {
	_u.mutation.ClearSession()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChatMessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChatMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatMessageUpdate) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := chatmessage.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "ChatMessage.role": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ChatMessage.session"`)
	}
	return nil
}

func (_u *ChatMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatmessage.Table, chatmessage.Columns, sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(chatmessage.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(chatmessage.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(chatmessage.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Attachments(); ok {
		_spec.SetField(chatmessage.FieldAttachments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAttachments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, chatmessage.FieldAttachments, value)
		})
	}
	if _u.mutation.AttachmentsCleared() {
		_spec.ClearField(chatmessage.FieldAttachments, field.TypeJSON)
	}
	if value, ok := _u.mutation.ToolCall(); ok {
		_spec.SetField(chatmessage.FieldToolCall, field.TypeJSON, value)
	}
	if _u.mutation.ToolCallCleared() {
		_spec.ClearField(chatmessage.FieldToolCall, field.TypeJSON)
	}
	if value, ok := _u.mutation.UIToolCall(); ok {
		_spec.SetField(chatmessage.FieldUIToolCall, field.TypeJSON, value)
	}
	if _u.mutation.UIToolCallCleared() {
		_spec.ClearField(chatmessage.FieldUIToolCall, field.TypeJSON)
	}
	if value, ok := _u.mutation.SourceTool(); ok {
		_spec.SetField(chatmessage.FieldSourceTool, field.TypeString, value)
	}
	if _u.mutation.SourceToolCleared() {
		_spec.ClearField(chatmessage.FieldSourceTool, field.TypeString)
	}
	if value, ok := _u.mutation.UISourceTool(); ok {
		_spec.SetField(chatmessage.FieldUISourceTool, field.TypeString, value)
	}
	if _u.mutation.UISourceToolCleared() {
		_spec.ClearField(chatmessage.FieldUISourceTool, field.TypeString)
	}
	if value, ok := _u.mutation.WorkflowID(); ok {
		_spec.SetField(chatmessage.FieldWorkflowID, field.TypeString, value)
	}
	if _u.mutation.WorkflowIDCleared() {
		_spec.ClearField(chatmessage.FieldWorkflowID, field.TypeString)
	}
	if value, ok := _u.mutation.IsWorkflow(); ok {
		_spec.SetField(chatmessage.FieldIsWorkflow, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsWorkspaceBrowse(); ok {
		_spec.SetField(chatmessage.FieldIsWorkspaceBrowse, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsJobsBrowse(); ok {
		_spec.SetField(chatmessage.FieldIsJobsBrowse, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ChatSummary(); ok {
		_spec.SetField(chatmessage.FieldChatSummary, field.TypeString, value)
	}
	if _u.mutation.ChatSummaryCleared() {
		_spec.ClearField(chatmessage.FieldChatSummary, field.TypeString)
	}
	if value, ok := _u.mutation.UIAction(); ok {
		_spec.SetField(chatmessage.FieldUIAction, field.TypeString, value)
	}
	if _u.mutation.UIActionCleared() {
		_spec.ClearField(chatmessage.FieldUIAction, field.TypeString)
	}
	if value, ok := _u.mutation.Documents(); ok {
		_spec.SetField(chatmessage.FieldDocuments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDocuments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, chatmessage.FieldDocuments, value)
		})
	}
	if _u.mutation.DocumentsCleared() {
		_spec.ClearField(chatmessage.FieldDocuments, field.TypeJSON)
	}
	if value, ok := _u.mutation.AgentTrace(); ok {
		_spec.SetField(chatmessage.FieldAgentTrace, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAgentTrace(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, chatmessage.FieldAgentTrace, value)
		})
	}
	if _u.mutation.AgentTraceCleared() {
		_spec.ClearField(chatmessage.FieldAgentTrace, field.TypeJSON)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   chatmessage.SessionTable,
			Columns: []string{chatmessage.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatsession.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   chatmessage.SessionTable,
			Columns: []string{chatmessage.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChatMessageUpdateOne is the builder for updating a single ChatMessage entity.
type ChatMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChatMessageMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ChatMessageUpdateOne) SetSessionID(v string) *ChatMessageUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableSessionID(v *string) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *ChatMessageUpdateOne) SetRole(v chatmessage.Role) *ChatMessageUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableRole(v *chatmessage.Role) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ChatMessageUpdateOne) SetContent(v string) *ChatMessageUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableContent(v *string) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *ChatMessageUpdateOne) SetTimestamp(v time.Time) *ChatMessageUpdateOne {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableTimestamp(v *time.Time) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetAttachments sets the "attachments" field.
func (_u *ChatMessageUpdateOne) SetAttachments(v []string) *ChatMessageUpdateOne {
	_u.mutation.SetAttachments(v)
	return _u
}

// AppendAttachments appends value to the "attachments" field.
func (_u *ChatMessageUpdateOne) AppendAttachments(v []string) *ChatMessageUpdateOne {
	_u.mutation.AppendAttachments(v)
	return _u
}

// ClearAttachments clears the value of the "attachments" field.
func (_u *ChatMessageUpdateOne) ClearAttachments() *ChatMessageUpdateOne {
	_u.mutation.ClearAttachments()
	return _u
}

// SetToolCall sets the "tool_call" field.
func (_u *ChatMessageUpdateOne) SetToolCall(v map[string]interface{}) *ChatMessageUpdateOne {
	_u.mutation.SetToolCall(v)
	return _u
}

// ClearToolCall clears the value of the "tool_call" field.
func (_u *ChatMessageUpdateOne) ClearToolCall() *ChatMessageUpdateOne {
	_u.mutation.ClearToolCall()
	return _u
}

// SetUIToolCall sets the "ui_tool_call" field.
func (_u *ChatMessageUpdateOne) SetUIToolCall(v map[string]interface{}) *ChatMessageUpdateOne {
	_u.mutation.SetUIToolCall(v)
	return _u
}

// ClearUIToolCall clears the value of the "ui_tool_call" field.
func (_u *ChatMessageUpdateOne) ClearUIToolCall() *ChatMessageUpdateOne {
	_u.mutation.ClearUIToolCall()
	return _u
}

// SetSourceTool sets the "source_tool" field.
func (_u *ChatMessageUpdateOne) SetSourceTool(v string) *ChatMessageUpdateOne {
	_u.mutation.SetSourceTool(v)
	return _u
}

// SetNillableSourceTool sets the "source_tool" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableSourceTool(v *string) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetSourceTool(*v)
	}
	return _u
}

// ClearSourceTool clears the value of the "source_tool" field.
func (_u *ChatMessageUpdateOne) ClearSourceTool() *ChatMessageUpdateOne {
	_u.mutation.ClearSourceTool()
	return _u
}

// SetUISourceTool sets the "ui_source_tool" field.
func (_u *ChatMessageUpdateOne) SetUISourceTool(v string) *ChatMessageUpdateOne {
	_u.mutation.SetUISourceTool(v)
	return _u
}

// SetNillableUISourceTool sets the "ui_source_tool" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableUISourceTool(v *string) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetUISourceTool(*v)
	}
	return _u
}

// ClearUISourceTool clears the value of the "ui_source_tool" field.
func (_u *ChatMessageUpdateOne) ClearUISourceTool() *ChatMessageUpdateOne {
	_u.mutation.ClearUISourceTool()
	return _u
}

// SetWorkflowID sets the "workflow_id" field.
func (_u *ChatMessageUpdateOne) SetWorkflowID(v string) *ChatMessageUpdateOne {
	_u.mutation.SetWorkflowID(v)
	return _u
}

// SetNillableWorkflowID sets the "workflow_id" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableWorkflowID(v *string) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetWorkflowID(*v)
	}
	return _u
}

// ClearWorkflowID clears the value of the "workflow_id" field.
func (_u *ChatMessageUpdateOne) ClearWorkflowID() *ChatMessageUpdateOne {
	_u.mutation.ClearWorkflowID()
	return _u
}

// SetIsWorkflow sets the "is_workflow" field.
func (_u *ChatMessageUpdateOne) SetIsWorkflow(v bool) *ChatMessageUpdateOne {
	_u.mutation.SetIsWorkflow(v)
	return _u
}

// SetNillableIsWorkflow sets the "is_workflow" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableIsWorkflow(v *bool) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetIsWorkflow(*v)
	}
	return _u
}

// SetIsWorkspaceBrowse sets the "is_workspace_browse" field.
func (_u *ChatMessageUpdateOne) SetIsWorkspaceBrowse(v bool) *ChatMessageUpdateOne {
	_u.mutation.SetIsWorkspaceBrowse(v)
	return _u
}

// SetNillableIsWorkspaceBrowse sets the "is_workspace_browse" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableIsWorkspaceBrowse(v *bool) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetIsWorkspaceBrowse(*v)
	}
	return _u
}

// SetIsJobsBrowse sets the "is_jobs_browse" field.
func (_u *ChatMessageUpdateOne) SetIsJobsBrowse(v bool) *ChatMessageUpdateOne {
	_u.mutation.SetIsJobsBrowse(v)
	return _u
}

// SetNillableIsJobsBrowse sets the "is_jobs_browse" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableIsJobsBrowse(v *bool) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetIsJobsBrowse(*v)
	}
	return _u
}

// SetChatSummary sets the "chat_summary" field.
func (_u *ChatMessageUpdateOne) SetChatSummary(v string) *ChatMessageUpdateOne {
	_u.mutation.SetChatSummary(v)
	return _u
}

// SetNillableChatSummary sets the "chat_summary" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableChatSummary(v *string) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetChatSummary(*v)
	}
	return _u
}

// ClearChatSummary clears the value of the "chat_summary" field.
func (_u *ChatMessageUpdateOne) ClearChatSummary() *ChatMessageUpdateOne {
	_u.mutation.ClearChatSummary()
	return _u
}

// SetUIAction sets the "ui_action" field.
func (_u *ChatMessageUpdateOne) SetUIAction(v string) *ChatMessageUpdateOne {
	_u.mutation.SetUIAction(v)
	return _u
}

// SetNillableUIAction sets the "ui_action" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableUIAction(v *string) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetUIAction(*v)
	}
	return _u
}

// ClearUIAction clears the value of the "ui_action" field.
func (_u *ChatMessageUpdateOne) ClearUIAction() *ChatMessageUpdateOne {
	_u.mutation.ClearUIAction()
	return _u
}

// SetDocuments sets the "documents" field.
func (_u *ChatMessageUpdateOne) SetDocuments(v []map[string]interface{}) *ChatMessageUpdateOne {
	_u.mutation.SetDocuments(v)
	return _u
}

// AppendDocuments appends value to the "documents" field.
func (_u *ChatMessageUpdateOne) AppendDocuments(v []map[string]interface{}) *ChatMessageUpdateOne {
	_u.mutation.AppendDocuments(v)
	return _u
}

// ClearDocuments clears the value of the "documents" field.
func (_u *ChatMessageUpdateOne) ClearDocuments() *ChatMessageUpdateOne {
	_u.mutation.ClearDocuments()
	return _u
}

// SetAgentTrace sets the "agent_trace" field.
func (_u *ChatMessageUpdateOne) SetAgentTrace(v []map[string]interface{}) *ChatMessageUpdateOne {
	_u.mutation.SetAgentTrace(v)
	return _u
}

// AppendAgentTrace appends value to the "agent_trace" field.
func (_u *ChatMessageUpdateOne) AppendAgentTrace(v []map[string]interface{}) *ChatMessageUpdateOne {
	_u.mutation.AppendAgentTrace(v)
	return _u
}

// ClearAgentTrace clears the value of the "agent_trace" field.
func (_u *ChatMessageUpdateOne) ClearAgentTrace() *ChatMessageUpdateOne {
	_u.mutation.ClearAgentTrace()
	return _u
}

// SetSession sets the "session" edge to the ChatSession entity.
func (_u *ChatMessageUpdateOne) SetSession(v *ChatSession) *ChatMessageUpdateOne {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the ChatMessageMutation object of the builder.
func (_u *ChatMessageUpdateOne) Mutation() *ChatMessageMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the ChatSession entity.
func (_u *ChatMessageUpdateOne) ClearSession() *ChatMessageUpdateOne {
	_u.mutation.ClearSession()
	return _u
}

// Where appends a list predicates to the ChatMessageUpdate builder.
func (_u *ChatMessageUpdateOne) Where(ps ...predicate.ChatMessage) *ChatMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChatMessageUpdateOne) Select(field string, fields ...string) *ChatMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChatMessage entity.
func (_u *ChatMessageUpdateOne) Save(ctx context.Context) (*ChatMessage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatMessageUpdateOne) SaveX(ctx context.Context) *ChatMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChatMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatMessageUpdateOne) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := chatmessage.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "ChatMessage.role": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ChatMessage.session"`)
	}
	return nil
}

func (_u *ChatMessageUpdateOne) sqlSave(ctx context.Context) (_node *ChatMessage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatmessage.Table, chatmessage.Columns, sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChatMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chatmessage.FieldID)
		for _, f := range fields {
			if !chatmessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != chatmessage.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(chatmessage.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(chatmessage.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(chatmessage.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Attachments(); ok {
		_spec.SetField(chatmessage.FieldAttachments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAttachments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, chatmessage.FieldAttachments, value)
		})
	}
	if _u.mutation.AttachmentsCleared() {
		_spec.ClearField(chatmessage.FieldAttachments, field.TypeJSON)
	}
	if value, ok := _u.mutation.ToolCall(); ok {
		_spec.SetField(chatmessage.FieldToolCall, field.TypeJSON, value)
	}
	if _u.mutation.ToolCallCleared() {
		_spec.ClearField(chatmessage.FieldToolCall, field.TypeJSON)
	}
	if value, ok := _u.mutation.UIToolCall(); ok {
		_spec.SetField(chatmessage.FieldUIToolCall, field.TypeJSON, value)
	}
	if _u.mutation.UIToolCallCleared() {
		_spec.ClearField(chatmessage.FieldUIToolCall, field.TypeJSON)
	}
	if value, ok := _u.mutation.SourceTool(); ok {
		_spec.SetField(chatmessage.FieldSourceTool, field.TypeString, value)
	}
	if _u.mutation.SourceToolCleared() {
		_spec.ClearField(chatmessage.FieldSourceTool, field.TypeString)
	}
	if value, ok := _u.mutation.UISourceTool(); ok {
		_spec.SetField(chatmessage.FieldUISourceTool, field.TypeString, value)
	}
	if _u.mutation.UISourceToolCleared() {
		_spec.ClearField(chatmessage.FieldUISourceTool, field.TypeString)
	}
	if value, ok := _u.mutation.WorkflowID(); ok {
		_spec.SetField(chatmessage.FieldWorkflowID, field.TypeString, value)
	}
	if _u.mutation.WorkflowIDCleared() {
		_spec.ClearField(chatmessage.FieldWorkflowID, field.TypeString)
	}
	if value, ok := _u.mutation.IsWorkflow(); ok {
		_spec.SetField(chatmessage.FieldIsWorkflow, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsWorkspaceBrowse(); ok {
		_spec.SetField(chatmessage.FieldIsWorkspaceBrowse, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsJobsBrowse(); ok {
		_spec.SetField(chatmessage.FieldIsJobsBrowse, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ChatSummary(); ok {
		_spec.SetField(chatmessage.FieldChatSummary, field.TypeString, value)
	}
	if _u.mutation.ChatSummaryCleared() {
		_spec.ClearField(chatmessage.FieldChatSummary, field.TypeString)
	}
	if value, ok := _u.mutation.UIAction(); ok {
		_spec.SetField(chatmessage.FieldUIAction, field.TypeString, value)
	}
	if _u.mutation.UIActionCleared() {
		_spec.ClearField(chatmessage.FieldUIAction, field.TypeString)
	}
	if value, ok := _u.mutation.Documents(); ok {
		_spec.SetField(chatmessage.FieldDocuments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDocuments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, chatmessage.FieldDocuments, value)
		})
	}
	if _u.mutation.DocumentsCleared() {
		_spec.ClearField(chatmessage.FieldDocuments, field.TypeJSON)
	}
	if value, ok := _u.mutation.AgentTrace(); ok {
		_spec.SetField(chatmessage.FieldAgentTrace, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAgentTrace(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, chatmessage.FieldAgentTrace, value)
		})
	}
	if _u.mutation.AgentTraceCleared() {
		_spec.ClearField(chatmessage.FieldAgentTrace, field.TypeJSON)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   chatmessage.SessionTable,
			Columns: []string{chatmessage.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatsession.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   chatmessage.SessionTable,
			Columns: []string{chatmessage.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ChatMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
