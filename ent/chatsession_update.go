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
	"github.com/cucinellclark/bvbrc-copilot/ent/filerecord"
	"github.com/cucinellclark/bvbrc-copilot/ent/predicate"
	"github.com/cucinellclark/bvbrc-copilot/ent/sessionmemory"
)

// ChatSessionUpdate is the builder for updating ChatSession entities.
type ChatSessionUpdate struct {
	config
	hooks    []Hook
	mutation *ChatSessionMutation
}

// Where appends a list predicates to the ChatSessionUpdate builder.
func (_u *ChatSessionUpdate) Where(ps ...predicate.ChatSession) *ChatSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ChatSessionUpdate) SetUserID(v string) *ChatSessionUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ChatSessionUpdate) SetNillableUserID(v *string) *ChatSessionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ChatSessionUpdate) SetTitle(v string) *ChatSessionUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ChatSessionUpdate) SetNillableTitle(v *string) *ChatSessionUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *ChatSessionUpdate) ClearTitle() *ChatSessionUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetWorkflowIds sets the "workflow_ids" field.
func (_u *ChatSessionUpdate) SetWorkflowIds(v []string) *ChatSessionUpdate {
	_u.mutation.SetWorkflowIds(v)
	return _u
}

// AppendWorkflowIds appends value to the "workflow_ids" field.
func (_u *ChatSessionUpdate) AppendWorkflowIds(v []string) *ChatSessionUpdate {
	_u.mutation.AppendWorkflowIds(v)
	return _u
}

// ClearWorkflowIds clears the value of the "workflow_ids" field.
func (_u *ChatSessionUpdate) ClearWorkflowIds() *ChatSessionUpdate {
	_u.mutation.ClearWorkflowIds()
	return _u
}

// SetMessageCount sets the "message_count" field.
func (_u *ChatSessionUpdate) SetMessageCount(v int) *ChatSessionUpdate {
	_u.mutation.ResetMessageCount()
	_u.mutation.SetMessageCount(v)
	return _u
}

// SetNillableMessageCount sets the "message_count" field if the given value is not nil.
func (_u *ChatSessionUpdate) SetNillableMessageCount(v *int) *ChatSessionUpdate {
	if v != nil {
		_u.SetMessageCount(*v)
	}
	return _u
}

// AddMessageCount adds value to the "message_count" field.
func (_u *ChatSessionUpdate) AddMessageCount(v int) *ChatSessionUpdate {
	_u.mutation.AddMessageCount(v)
	return _u
}

// SetSummarizedCount sets the "summarized_count" field.
func (_u *ChatSessionUpdate) SetSummarizedCount(v int) *ChatSessionUpdate {
	_u.mutation.ResetSummarizedCount()
	_u.mutation.SetSummarizedCount(v)
	return _u
}

// SetNillableSummarizedCount sets the "summarized_count" field if the given value is not nil.
func (_u *ChatSessionUpdate) SetNillableSummarizedCount(v *int) *ChatSessionUpdate {
	if v != nil {
		_u.SetSummarizedCount(*v)
	}
	return _u
}

// AddSummarizedCount adds value to the "summarized_count" field.
func (_u *ChatSessionUpdate) AddSummarizedCount(v int) *ChatSessionUpdate {
	_u.mutation.AddSummarizedCount(v)
	return _u
}

// SetSummary sets the "summary" field.
func (_u *ChatSessionUpdate) SetSummary(v string) *ChatSessionUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *ChatSessionUpdate) SetNillableSummary(v *string) *ChatSessionUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *ChatSessionUpdate) ClearSummary() *ChatSessionUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ChatSessionUpdate) SetCreatedAt(v time.Time) *ChatSessionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ChatSessionUpdate) SetNillableCreatedAt(v *time.Time) *ChatSessionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChatSessionUpdate) SetUpdatedAt(v time.Time) *ChatSessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMessageIDs adds the "messages" edge to the ChatMessage entity by IDs.
func (_u *ChatSessionUpdate) AddMessageIDs(ids ...string) *ChatSessionUpdate {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the ChatMessage entity.
func (_u *ChatSessionUpdate) AddMessages(v ...*ChatMessage) *ChatSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddFileIDs adds the "files" edge to the FileRecord entity by IDs.
func (_u *ChatSessionUpdate) AddFileIDs(ids ...string) *ChatSessionUpdate {
	_u.mutation.AddFileIDs(ids...)
	return _u
}

// AddFiles adds the "files" edges to the FileRecord entity.
func (_u *ChatSessionUpdate) AddFiles(v ...*FileRecord) *ChatSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFileIDs(ids...)
}

// SetMemoryID sets the "memory" edge to the SessionMemory entity by ID.
func (_u *ChatSessionUpdate) SetMemoryID(id string) *ChatSessionUpdate {
	_u.mutation.SetMemoryID(id)
	return _u
}

// SetNillableMemoryID sets the "memory" edge to the SessionMemory entity by ID if the given value is not nil.
func (_u *ChatSessionUpdate) SetNillableMemoryID(id *string) *ChatSessionUpdate {
	if id != nil {
		_u = _u.SetMemoryID(*id)
	}
	return _u
}

// SetMemory sets the "memory" edge to the SessionMemory entity.
func (_u *ChatSessionUpdate) SetMemory(v *SessionMemory) *ChatSessionUpdate {
	return _u.SetMemoryID(v.ID)
}

// Mutation returns the ChatSessionMutation object of the builder.
func (_u *ChatSessionUpdate) Mutation() *ChatSessionMutation {
	return _u.mutation
}

// ClearMessages clears all "messages" edges to the ChatMessage entity.
func (_u *ChatSessionUpdate) ClearMessages() *ChatSessionUpdate {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to ChatMessage entities by IDs.
func (_u *ChatSessionUpdate) RemoveMessageIDs(ids ...string) *ChatSessionUpdate {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to ChatMessage entities.
func (_u *ChatSessionUpdate) RemoveMessages(v ...*ChatMessage) *ChatSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearFiles clears all "files" edges to the FileRecord entity.
func (_u *ChatSessionUpdate) ClearFiles() *ChatSessionUpdate {
	_u.mutation.ClearFiles()
	return _u
}

// RemoveFileIDs removes the "files" edge to FileRecord entities by IDs.
func (_u *ChatSessionUpdate) RemoveFileIDs(ids ...string) *ChatSessionUpdate {
	_u.mutation.RemoveFileIDs(ids...)
	return _u
}

// RemoveFiles removes "files" edges to FileRecord entities.
func (_u *ChatSessionUpdate) RemoveFiles(v ...*FileRecord) *ChatSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFileIDs(ids...)
}

// ClearMemory clears the "memory" edge to the SessionMemory entity.
func (_u *ChatSessionUpdate) ClearMemory() *ChatSessionUpdate {
	_u.mutation.ClearMemory()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChatSessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChatSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChatSessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := chatsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ChatSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(chatsession.Table, chatsession.Columns, sqlgraph.NewFieldSpec(chatsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(chatsession.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(chatsession.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(chatsession.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.WorkflowIds(); ok {
		_spec.SetField(chatsession.FieldWorkflowIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWorkflowIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, chatsession.FieldWorkflowIds, value)
		})
	}
	if _u.mutation.WorkflowIdsCleared() {
		_spec.ClearField(chatsession.FieldWorkflowIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.MessageCount(); ok {
		_spec.SetField(chatsession.FieldMessageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMessageCount(); ok {
		_spec.AddField(chatsession.FieldMessageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SummarizedCount(); ok {
		_spec.SetField(chatsession.FieldSummarizedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSummarizedCount(); ok {
		_spec.AddField(chatsession.FieldSummarizedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(chatsession.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(chatsession.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(chatsession.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(chatsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chatsession.MessagesTable,
			Columns: []string{chatsession.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chatsession.MessagesTable,
			Columns: []string{chatsession.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chatsession.MessagesTable,
			Columns: []string{chatsession.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FilesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chatsession.FilesTable,
			Columns: []string{chatsession.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(filerecord.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFilesIDs(); len(nodes) > 0 && !_u.mutation.FilesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chatsession.FilesTable,
			Columns: []string{chatsession.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(filerecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FilesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chatsession.FilesTable,
			Columns: []string{chatsession.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(filerecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MemoryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   chatsession.MemoryTable,
			Columns: []string{chatsession.MemoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionmemory.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MemoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   chatsession.MemoryTable,
			Columns: []string{chatsession.MemoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionmemory.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChatSessionUpdateOne is the builder for updating a single ChatSession entity.
type ChatSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChatSessionMutation
}

// SetUserID sets the "user_id" field.
func (_u *ChatSessionUpdateOne) SetUserID(v string) *ChatSessionUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ChatSessionUpdateOne) SetNillableUserID(v *string) *ChatSessionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ChatSessionUpdateOne) SetTitle(v string) *ChatSessionUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ChatSessionUpdateOne) SetNillableTitle(v *string) *ChatSessionUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *ChatSessionUpdateOne) ClearTitle() *ChatSessionUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetWorkflowIds sets the "workflow_ids" field.
func (_u *ChatSessionUpdateOne) SetWorkflowIds(v []string) *ChatSessionUpdateOne {
	_u.mutation.SetWorkflowIds(v)
	return _u
}

// AppendWorkflowIds appends value to the "workflow_ids" field.
func (_u *ChatSessionUpdateOne) AppendWorkflowIds(v []string) *ChatSessionUpdateOne {
	_u.mutation.AppendWorkflowIds(v)
	return _u
}

// ClearWorkflowIds clears the value of the "workflow_ids" field.
func (_u *ChatSessionUpdateOne) ClearWorkflowIds() *ChatSessionUpdateOne {
	_u.mutation.ClearWorkflowIds()
	return _u
}

// SetMessageCount sets the "message_count" field.
func (_u *ChatSessionUpdateOne) SetMessageCount(v int) *ChatSessionUpdateOne {
	_u.mutation.ResetMessageCount()
	_u.mutation.SetMessageCount(v)
	return _u
}

// SetNillableMessageCount sets the "message_count" field if the given value is not nil.
func (_u *ChatSessionUpdateOne) SetNillableMessageCount(v *int) *ChatSessionUpdateOne {
	if v != nil {
		_u.SetMessageCount(*v)
	}
	return _u
}

// AddMessageCount adds value to the "message_count" field.
func (_u *ChatSessionUpdateOne) AddMessageCount(v int) *ChatSessionUpdateOne {
	_u.mutation.AddMessageCount(v)
	return _u
}

// SetSummarizedCount sets the "summarized_count" field.
func (_u *ChatSessionUpdateOne) SetSummarizedCount(v int) *ChatSessionUpdateOne {
	_u.mutation.ResetSummarizedCount()
	_u.mutation.SetSummarizedCount(v)
	return _u
}

// SetNillableSummarizedCount sets the "summarized_count" field if the given value is not nil.
func (_u *ChatSessionUpdateOne) SetNillableSummarizedCount(v *int) *ChatSessionUpdateOne {
	if v != nil {
		_u.SetSummarizedCount(*v)
	}
	return _u
}

// AddSummarizedCount adds value to the "summarized_count" field.
func (_u *ChatSessionUpdateOne) AddSummarizedCount(v int) *ChatSessionUpdateOne {
	_u.mutation.AddSummarizedCount(v)
	return _u
}

// SetSummary sets the "summary" field.
func (_u *ChatSessionUpdateOne) SetSummary(v string) *ChatSessionUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *ChatSessionUpdateOne) SetNillableSummary(v *string) *ChatSessionUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *ChatSessionUpdateOne) ClearSummary() *ChatSessionUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ChatSessionUpdateOne) SetCreatedAt(v time.Time) *ChatSessionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ChatSessionUpdateOne) SetNillableCreatedAt(v *time.Time) *ChatSessionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChatSessionUpdateOne) SetUpdatedAt(v time.Time) *ChatSessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMessageIDs adds the "messages" edge to the ChatMessage entity by IDs.
func (_u *ChatSessionUpdateOne) AddMessageIDs(ids ...string) *ChatSessionUpdateOne {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the ChatMessage entity.
func (_u *ChatSessionUpdateOne) AddMessages(v ...*ChatMessage) *ChatSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddFileIDs adds the "files" edge to the FileRecord entity by IDs.
func (_u *ChatSessionUpdateOne) AddFileIDs(ids ...string) *ChatSessionUpdateOne {
	_u.mutation.AddFileIDs(ids...)
	return _u
}

// AddFiles adds the "files" edges to the FileRecord entity.
func (_u *ChatSessionUpdateOne) AddFiles(v ...*FileRecord) *ChatSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFileIDs(ids...)
}

// SetMemoryID sets the "memory" edge to the SessionMemory entity by ID.
func (_u *ChatSessionUpdateOne) SetMemoryID(id string) *ChatSessionUpdateOne {
	_u.mutation.SetMemoryID(id)
	return _u
}

// SetNillableMemoryID sets the "memory" edge to the SessionMemory entity by ID if the given value is not nil.
func (_u *ChatSessionUpdateOne) SetNillableMemoryID(id *string) *ChatSessionUpdateOne {
	if id != nil {
		_u = _u.SetMemoryID(*id)
	}
	return _u
}

// SetMemory sets the "memory" edge to the SessionMemory entity.
func (_u *ChatSessionUpdateOne) SetMemory(v *SessionMemory) *ChatSessionUpdateOne {
	return _u.SetMemoryID(v.ID)
}

// Mutation returns the ChatSessionMutation object of the builder.
func (_u *ChatSessionUpdateOne) Mutation() *ChatSessionMutation {
	return _u.mutation
}

// ClearMessages clears all "messages" edges to the ChatMessage entity.
func (_u *ChatSessionUpdateOne) ClearMessages() *ChatSessionUpdateOne {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to ChatMessage entities by IDs.
func (_u *ChatSessionUpdateOne) RemoveMessageIDs(ids ...string) *ChatSessionUpdateOne {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to ChatMessage entities.
func (_u *ChatSessionUpdateOne) RemoveMessages(v ...*ChatMessage) *ChatSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearFiles clears all "files" edges to the FileRecord entity.
func (_u *ChatSessionUpdateOne) ClearFiles() *ChatSessionUpdateOne {
	_u.mutation.ClearFiles()
	return _u
}

// RemoveFileIDs removes the "files" edge to FileRecord entities by IDs.
func (_u *ChatSessionUpdateOne) RemoveFileIDs(ids ...string) *ChatSessionUpdateOne {
	_u.mutation.RemoveFileIDs(ids...)
	return _u
}

// RemoveFiles removes "files" edges to FileRecord entities.
func (_u *ChatSessionUpdateOne) RemoveFiles(v ...*FileRecord) *ChatSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFileIDs(ids...)
}

// ClearMemory clears the "memory" edge to the SessionMemory entity.
func (_u *ChatSessionUpdateOne) ClearMemory() *ChatSessionUpdateOne {
	_u.mutation.ClearMemory()
	return _u
}

// Where appends a list predicates to the ChatSessionUpdate builder.
func (_u *ChatSessionUpdateOne) Where(ps ...predicate.ChatSession) *ChatSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChatSessionUpdateOne) Select(field string, fields ...string) *ChatSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChatSession entity.
func (_u *ChatSessionUpdateOne) Save(ctx context.Context) (*ChatSession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatSessionUpdateOne) SaveX(ctx context.Context) *ChatSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChatSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChatSessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := chatsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ChatSessionUpdateOne) sqlSave(ctx context.Context) (_node *ChatSession, err error) {
	_spec := sqlgraph.NewUpdateSpec(chatsession.Table, chatsession.Columns, sqlgraph.NewFieldSpec(chatsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChatSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chatsession.FieldID)
		for _, f := range fields {
			if !chatsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != chatsession.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(chatsession.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(chatsession.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(chatsession.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.WorkflowIds(); ok {
		_spec.SetField(chatsession.FieldWorkflowIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWorkflowIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, chatsession.FieldWorkflowIds, value)
		})
	}
	if _u.mutation.WorkflowIdsCleared() {
		_spec.ClearField(chatsession.FieldWorkflowIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.MessageCount(); ok {
		_spec.SetField(chatsession.FieldMessageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMessageCount(); ok {
		_spec.AddField(chatsession.FieldMessageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SummarizedCount(); ok {
		_spec.SetField(chatsession.FieldSummarizedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSummarizedCount(); ok {
		_spec.AddField(chatsession.FieldSummarizedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(chatsession.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(chatsession.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(chatsession.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(chatsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chatsession.MessagesTable,
			Columns: []string{chatsession.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chatsession.MessagesTable,
			Columns: []string{chatsession.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chatsession.MessagesTable,
			Columns: []string{chatsession.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FilesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chatsession.FilesTable,
			Columns: []string{chatsession.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(filerecord.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFilesIDs(); len(nodes) > 0 && !_u.mutation.FilesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chatsession.FilesTable,
			Columns: []string{chatsession.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(filerecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FilesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chatsession.FilesTable,
			Columns: []string{chatsession.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(filerecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MemoryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   chatsession.MemoryTable,
			Columns: []string{chatsession.MemoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionmemory.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MemoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   chatsession.MemoryTable,
			Columns: []string{chatsession.MemoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionmemory.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ChatSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
