// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cucinellclark/bvbrc-copilot/ent/chatmessage"
	"github.com/cucinellclark/bvbrc-copilot/ent/chatsession"
)

// ChatMessageCreate is the builder for creating a ChatMessage entity.
type ChatMessageCreate struct {
	config
	mutation *ChatMessageMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *ChatMessageCreate) SetSessionID(v string) *ChatMessageCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *ChatMessageCreate) SetRole(v chatmessage.Role) *ChatMessageCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *ChatMessageCreate) SetContent(v string) *ChatMessageCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ChatMessageCreate) SetTimestamp(v time.Time) *ChatMessageCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ChatMessageCreate) SetNillableTimestamp(v *time.Time) *ChatMessageCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetAttachments sets the "attachments" field.
func (_c *ChatMessageCreate) SetAttachments(v []string) *ChatMessageCreate {
	_c.mutation.SetAttachments(v)
	return _c
}

// SetToolCall sets the "tool_call" field.
func (_c *ChatMessageCreate) SetToolCall(v map[string]interface{}) *ChatMessageCreate {
	_c.mutation.SetToolCall(v)
	return _c
}

// SetUIToolCall sets the "ui_tool_call" field.
func (_c *ChatMessageCreate) SetUIToolCall(v map[string]interface{}) *ChatMessageCreate {
	_c.mutation.SetUIToolCall(v)
	return _c
}

// SetSourceTool sets the "source_tool" field.
func (_c *ChatMessageCreate) SetSourceTool(v string) *ChatMessageCreate {
	_c.mutation.SetSourceTool(v)
	return _c
}

// SetNillableSourceTool sets the "source_tool" field if the given value is not nil.
func (_c *ChatMessageCreate) SetNillableSourceTool(v *string) *ChatMessageCreate {
	if v != nil {
		_c.SetSourceTool(*v)
	}
	return _c
}

// SetUISourceTool sets the "ui_source_tool" field.
func (_c *ChatMessageCreate) SetUISourceTool(v string) *ChatMessageCreate {
	_c.mutation.SetUISourceTool(v)
	return _c
}

// SetNillableUISourceTool sets the "ui_source_tool" field if the given value is not nil.
func (_c *ChatMessageCreate) SetNillableUISourceTool(v *string) *ChatMessageCreate {
	if v != nil {
		_c.SetUISourceTool(*v)
	}
	return _c
}

// SetWorkflowID sets the "workflow_id" field.
func (_c *ChatMessageCreate) SetWorkflowID(v string) *ChatMessageCreate {
	_c.mutation.SetWorkflowID(v)
	return _c
}

// SetNillableWorkflowID sets the "workflow_id" field if the given value is not nil.
func (_c *ChatMessageCreate) SetNillableWorkflowID(v *string) *ChatMessageCreate {
	if v != nil {
		_c.SetWorkflowID(*v)
	}
	return _c
}

// SetIsWorkflow sets the "is_workflow" field.
func (_c *ChatMessageCreate) SetIsWorkflow(v bool) *ChatMessageCreate {
	_c.mutation.SetIsWorkflow(v)
	return _c
}

// SetNillableIsWorkflow sets the "is_workflow" field if the given value is not nil.
func (_c *ChatMessageCreate) SetNillableIsWorkflow(v *bool) *ChatMessageCreate {
	if v != nil {
		_c.SetIsWorkflow(*v)
	}
	return _c
}

// SetIsWorkspaceBrowse sets the "is_workspace_browse" field.
func (_c *ChatMessageCreate) SetIsWorkspaceBrowse(v bool) *ChatMessageCreate {
	_c.mutation.SetIsWorkspaceBrowse(v)
	return _c
}

// SetNillableIsWorkspaceBrowse sets the "is_workspace_browse" field if the given value is not nil.
func (_c *ChatMessageCreate) SetNillableIsWorkspaceBrowse(v *bool) *ChatMessageCreate {
	if v != nil {
		_c.SetIsWorkspaceBrowse(*v)
	}
	return _c
}

// SetIsJobsBrowse sets the "is_jobs_browse" field.
func (_c *ChatMessageCreate) SetIsJobsBrowse(v bool) *ChatMessageCreate {
	_c.mutation.SetIsJobsBrowse(v)
	return _c
}

// SetNillableIsJobsBrowse sets the "is_jobs_browse" field if the given value is not nil.
func (_c *ChatMessageCreate) SetNillableIsJobsBrowse(v *bool) *ChatMessageCreate {
	if v != nil {
		_c.SetIsJobsBrowse(*v)
	}
	return _c
}

// SetChatSummary sets the "chat_summary" field.
func (_c *ChatMessageCreate) SetChatSummary(v string) *ChatMessageCreate {
	_c.mutation.SetChatSummary(v)
	return _c
}

// SetNillableChatSummary sets the "chat_summary" field if the given value is not nil.
func (_c *ChatMessageCreate) SetNillableChatSummary(v *string) *ChatMessageCreate {
	if v != nil {
		_c.SetChatSummary(*v)
	}
	return _c
}

// SetUIAction sets the "ui_action" field.
func (_c *ChatMessageCreate) SetUIAction(v string) *ChatMessageCreate {
	_c.mutation.SetUIAction(v)
	return _c
}

// SetNillableUIAction sets the "ui_action" field if the given value is not nil.
func (_c *ChatMessageCreate) SetNillableUIAction(v *string) *ChatMessageCreate {
	if v != nil {
		_c.SetUIAction(*v)
	}
	return _c
}

// SetDocuments sets the "documents" field.
func (_c *ChatMessageCreate) SetDocuments(v []map[string]interface{}) *ChatMessageCreate {
	_c.mutation.SetDocuments(v)
	return _c
}

// SetAgentTrace sets the "agent_trace" field.
func (_c *ChatMessageCreate) SetAgentTrace(v []map[string]interface{}) *ChatMessageCreate {
	_c.mutation.SetAgentTrace(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ChatMessageCreate) SetID(v string) *ChatMessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the ChatSession entity.
func (_c *ChatMessageCreate) SetSession(v *ChatSession) *ChatMessageCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the ChatMessageMutation object of the builder.
func (_c *ChatMessageCreate) Mutation() *ChatMessageMutation {
	return _c.mutation
}

// Save creates the ChatMessage in the database.
func (_c *ChatMessageCreate) Save(ctx context.Context) (*ChatMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChatMessageCreate) SaveX(ctx context.Context) *ChatMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChatMessageCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := chatmessage.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.IsWorkflow(); !ok {
		v := chatmessage.DefaultIsWorkflow
		_c.mutation.SetIsWorkflow(v)
	}
	if _, ok := _c.mutation.IsWorkspaceBrowse(); !ok {
		v := chatmessage.DefaultIsWorkspaceBrowse
		_c.mutation.SetIsWorkspaceBrowse(v)
	}
	if _, ok := _c.mutation.IsJobsBrowse(); !ok {
		v := chatmessage.DefaultIsJobsBrowse
		_c.mutation.SetIsJobsBrowse(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChatMessageCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ChatMessage.session_id"`)}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "ChatMessage.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := chatmessage.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "ChatMessage.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "ChatMessage.content"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ChatMessage.timestamp"`)}
	}
	if _, ok := _c.mutation.IsWorkflow(); !ok {
		return &ValidationError{Name: "is_workflow", err: errors.New(`ent: missing required field "ChatMessage.is_workflow"`)}
	}
	if _, ok := _c.mutation.IsWorkspaceBrowse(); !ok {
		return &ValidationError{Name: "is_workspace_browse", err: errors.New(`ent: missing required field "ChatMessage.is_workspace_browse"`)}
	}
	if _, ok := _c.mutation.IsJobsBrowse(); !ok {
		return &ValidationError{Name: "is_jobs_browse", err: errors.New(`ent: missing required field "ChatMessage.is_jobs_browse"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "ChatMessage.session"`)}
	}
	return nil
}

func (_c *ChatMessageCreate) sqlSave(ctx context.Context) (*ChatMessage, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ChatMessage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ChatMessageCreate) createSpec() (*ChatMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &ChatMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(chatmessage.Table, sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(chatmessage.FieldRole, field.TypeEnum, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(chatmessage.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(chatmessage.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Attachments(); ok {
		_spec.SetField(chatmessage.FieldAttachments, field.TypeJSON, value)
		_node.Attachments = value
	}
	if value, ok := _c.mutation.ToolCall(); ok {
		_spec.SetField(chatmessage.FieldToolCall, field.TypeJSON, value)
		_node.ToolCall = value
	}
	if value, ok := _c.mutation.UIToolCall(); ok {
		_spec.SetField(chatmessage.FieldUIToolCall, field.TypeJSON, value)
		_node.UIToolCall = value
	}
	if value, ok := _c.mutation.SourceTool(); ok {
		_spec.SetField(chatmessage.FieldSourceTool, field.TypeString, value)
		_node.SourceTool = value
	}
	if value, ok := _c.mutation.UISourceTool(); ok {
		_spec.SetField(chatmessage.FieldUISourceTool, field.TypeString, value)
		_node.UISourceTool = value
	}
	if value, ok := _c.mutation.WorkflowID(); ok {
		_spec.SetField(chatmessage.FieldWorkflowID, field.TypeString, value)
		_node.WorkflowID = value
	}
	if value, ok := _c.mutation.IsWorkflow(); ok {
		_spec.SetField(chatmessage.FieldIsWorkflow, field.TypeBool, value)
		_node.IsWorkflow = value
	}
	if value, ok := _c.mutation.IsWorkspaceBrowse(); ok {
		_spec.SetField(chatmessage.FieldIsWorkspaceBrowse, field.TypeBool, value)
		_node.IsWorkspaceBrowse = value
	}
	if value, ok := _c.mutation.IsJobsBrowse(); ok {
		_spec.SetField(chatmessage.FieldIsJobsBrowse, field.TypeBool, value)
		_node.IsJobsBrowse = value
	}
	if value, ok := _c.mutation.ChatSummary(); ok {
		_spec.SetField(chatmessage.FieldChatSummary, field.TypeString, value)
		_node.ChatSummary = value
	}
	if value, ok := _c.mutation.UIAction(); ok {
		_spec.SetField(chatmessage.FieldUIAction, field.TypeString, value)
		_node.UIAction = value
	}
	if value, ok := _c.mutation.Documents(); ok {
		_spec.SetField(chatmessage.FieldDocuments, field.TypeJSON, value)
		_node.Documents = value
	}
	if value, ok := _c.mutation.AgentTrace(); ok {
		_spec.SetField(chatmessage.FieldAgentTrace, field.TypeJSON, value)
		_node.AgentTrace = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
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
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ChatMessageCreateBulk is the builder for creating many ChatMessage entities in bulk.
type ChatMessageCreateBulk struct {
	config
	err      error
	builders []*ChatMessageCreate
}

// Save creates the ChatMessage entities in the database.
func (_c *ChatMessageCreateBulk) Save(ctx context.Context) ([]*ChatMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChatMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChatMessageMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ChatMessageCreateBulk) SaveX(ctx context.Context) []*ChatMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
