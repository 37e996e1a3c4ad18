// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cucinellclark/bvbrc-copilot/ent/chatsession"
	"github.com/cucinellclark/bvbrc-copilot/ent/predicate"
	"github.com/cucinellclark/bvbrc-copilot/ent/sessionmemory"
)

// SessionMemoryUpdate is the builder for updating SessionMemory entities.
type SessionMemoryUpdate struct {
	config
	hooks    []Hook
	mutation *SessionMemoryMutation
}

// Where appends a list predicates to the SessionMemoryUpdate builder.
func (_u *SessionMemoryUpdate) Where(ps ...predicate.SessionMemory) *SessionMemoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionMemoryUpdate) SetSessionID(v string) *SessionMemoryUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionMemoryUpdate) SetNillableSessionID(v *string) *SessionMemoryUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SessionMemoryUpdate) SetUserID(v string) *SessionMemoryUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SessionMemoryUpdate) SetNillableUserID(v *string) *SessionMemoryUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetFocus sets the "focus" field.
func (_u *SessionMemoryUpdate) SetFocus(v map[string]interface{}) *SessionMemoryUpdate {
	_u.mutation.SetFocus(v)
	return _u
}

// ClearFocus clears the value of the "focus" field.
func (_u *SessionMemoryUpdate) ClearFocus() *SessionMemoryUpdate {
	_u.mutation.ClearFocus()
	return _u
}

// SetFacts sets the "facts" field.
func (_u *SessionMemoryUpdate) SetFacts(v map[string]interface{}) *SessionMemoryUpdate {
	_u.mutation.SetFacts(v)
	return _u
}

// ClearFacts clears the value of the "facts" field.
func (_u *SessionMemoryUpdate) ClearFacts() *SessionMemoryUpdate {
	_u.mutation.ClearFacts()
	return _u
}

// SetFactsMeta sets the "facts_meta" field.
func (_u *SessionMemoryUpdate) SetFactsMeta(v map[string]interface{}) *SessionMemoryUpdate {
	_u.mutation.SetFactsMeta(v)
	return _u
}

// ClearFactsMeta clears the value of the "facts_meta" field.
func (_u *SessionMemoryUpdate) ClearFactsMeta() *SessionMemoryUpdate {
	_u.mutation.ClearFactsMeta()
	return _u
}

// SetToolFacts sets the "tool_facts" field.
func (_u *SessionMemoryUpdate) SetToolFacts(v map[string]interface{}) *SessionMemoryUpdate {
	_u.mutation.SetToolFacts(v)
	return _u
}

// ClearToolFacts clears the value of the "tool_facts" field.
func (_u *SessionMemoryUpdate) ClearToolFacts() *SessionMemoryUpdate {
	_u.mutation.ClearToolFacts()
	return _u
}

// SetEntities sets the "entities" field.
func (_u *SessionMemoryUpdate) SetEntities(v map[string]interface{}) *SessionMemoryUpdate {
	_u.mutation.SetEntities(v)
	return _u
}

// ClearEntities clears the value of the "entities" field.
func (_u *SessionMemoryUpdate) ClearEntities() *SessionMemoryUpdate {
	_u.mutation.ClearEntities()
	return _u
}

// SetLastTool sets the "last_tool" field.
func (_u *SessionMemoryUpdate) SetLastTool(v map[string]interface{}) *SessionMemoryUpdate {
	_u.mutation.SetLastTool(v)
	return _u
}

// ClearLastTool clears the value of the "last_tool" field.
func (_u *SessionMemoryUpdate) ClearLastTool() *SessionMemoryUpdate {
	_u.mutation.ClearLastTool()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionMemoryUpdate) SetUpdatedAt(v time.Time) *SessionMemoryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSession sets the "session" edge to the ChatSession entity.
func (_u *SessionMemoryUpdate) SetSession(v *ChatSession) *SessionMemoryUpdate {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the SessionMemoryMutation object of the builder.
func (_u *SessionMemoryUpdate) Mutation() *SessionMemoryMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the ChatSession entity.
func (_u *SessionMemoryUpdate) ClearSession() *SessionMemoryUpdate {
	_u.mutation.ClearSession()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionMemoryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionMemoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionMemoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionMemoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionMemoryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sessionmemory.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionMemoryUpdate) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SessionMemory.session"`)
	}
	return nil
}

func (_u *SessionMemoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionmemory.Table, sessionmemory.Columns, sqlgraph.NewFieldSpec(sessionmemory.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(sessionmemory.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Focus(); ok {
		_spec.SetField(sessionmemory.FieldFocus, field.TypeJSON, value)
	}
	if _u.mutation.FocusCleared() {
		_spec.ClearField(sessionmemory.FieldFocus, field.TypeJSON)
	}
	if value, ok := _u.mutation.Facts(); ok {
		_spec.SetField(sessionmemory.FieldFacts, field.TypeJSON, value)
	}
	if _u.mutation.FactsCleared() {
		_spec.ClearField(sessionmemory.FieldFacts, field.TypeJSON)
	}
	if value, ok := _u.mutation.FactsMeta(); ok {
		_spec.SetField(sessionmemory.FieldFactsMeta, field.TypeJSON, value)
	}
	if _u.mutation.FactsMetaCleared() {
		_spec.ClearField(sessionmemory.FieldFactsMeta, field.TypeJSON)
	}
	if value, ok := _u.mutation.ToolFacts(); ok {
		_spec.SetField(sessionmemory.FieldToolFacts, field.TypeJSON, value)
	}
	if _u.mutation.ToolFactsCleared() {
		_spec.ClearField(sessionmemory.FieldToolFacts, field.TypeJSON)
	}
	if value, ok := _u.mutation.Entities(); ok {
		_spec.SetField(sessionmemory.FieldEntities, field.TypeJSON, value)
	}
	if _u.mutation.EntitiesCleared() {
		_spec.ClearField(sessionmemory.FieldEntities, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastTool(); ok {
		_spec.SetField(sessionmemory.FieldLastTool, field.TypeJSON, value)
	}
	if _u.mutation.LastToolCleared() {
		_spec.ClearField(sessionmemory.FieldLastTool, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionmemory.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   sessionmemory.SessionTable,
			Columns: []string{sessionmemory.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatsession.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   sessionmemory.SessionTable,
			Columns: []string{sessionmemory.SessionColumn},
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
			err = &NotFoundError{sessionmemory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionMemoryUpdateOne is the builder for updating a single SessionMemory entity.
type SessionMemoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionMemoryMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SessionMemoryUpdateOne) SetSessionID(v string) *SessionMemoryUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionMemoryUpdateOne) SetNillableSessionID(v *string) *SessionMemoryUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SessionMemoryUpdateOne) SetUserID(v string) *SessionMemoryUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SessionMemoryUpdateOne) SetNillableUserID(v *string) *SessionMemoryUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetFocus sets the "focus" field.
func (_u *SessionMemoryUpdateOne) SetFocus(v map[string]interface{}) *SessionMemoryUpdateOne {
	_u.mutation.SetFocus(v)
	return _u
}

// ClearFocus clears the value of the "focus" field.
func (_u *SessionMemoryUpdateOne) ClearFocus() *SessionMemoryUpdateOne {
	_u.mutation.ClearFocus()
	return _u
}

// SetFacts sets the "facts" field.
func (_u *SessionMemoryUpdateOne) SetFacts(v map[string]interface{}) *SessionMemoryUpdateOne {
	_u.mutation.SetFacts(v)
	return _u
}

// ClearFacts clears the value of the "facts" field.
func (_u *SessionMemoryUpdateOne) ClearFacts() *SessionMemoryUpdateOne {
	_u.mutation.ClearFacts()
	return _u
}

// SetFactsMeta sets the "facts_meta" field.
func (_u *SessionMemoryUpdateOne) SetFactsMeta(v map[string]interface{}) *SessionMemoryUpdateOne {
	_u.mutation.SetFactsMeta(v)
	return _u
}

// ClearFactsMeta clears the value of the "facts_meta" field.
func (_u *SessionMemoryUpdateOne) ClearFactsMeta() *SessionMemoryUpdateOne {
	_u.mutation.ClearFactsMeta()
	return _u
}

// SetToolFacts sets the "tool_facts" field.
func (_u *SessionMemoryUpdateOne) SetToolFacts(v map[string]interface{}) *SessionMemoryUpdateOne {
	_u.mutation.SetToolFacts(v)
	return _u
}

// ClearToolFacts clears the value of the "tool_facts" field.
func (_u *SessionMemoryUpdateOne) ClearToolFacts() *SessionMemoryUpdateOne {
	_u.mutation.ClearToolFacts()
	return _u
}

// SetEntities sets the "entities" field.
func (_u *SessionMemoryUpdateOne) SetEntities(v map[string]interface{}) *SessionMemoryUpdateOne {
	_u.mutation.SetEntities(v)
	return _u
}

// ClearEntities clears the value of the "entities" field.
func (_u *SessionMemoryUpdateOne) ClearEntities() *SessionMemoryUpdateOne {
	_u.mutation.ClearEntities()
	return _u
}

// SetLastTool sets the "last_tool" field.
func (_u *SessionMemoryUpdateOne) SetLastTool(v map[string]interface{}) *SessionMemoryUpdateOne {
	_u.mutation.SetLastTool(v)
	return _u
}

// ClearLastTool clears the value of the "last_tool" field.
func (_u *SessionMemoryUpdateOne) ClearLastTool() *SessionMemoryUpdateOne {
	_u.mutation.ClearLastTool()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionMemoryUpdateOne) SetUpdatedAt(v time.Time) *SessionMemoryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSession sets the "session" edge to the ChatSession entity.
func (_u *SessionMemoryUpdateOne) SetSession(v *ChatSession) *SessionMemoryUpdateOne {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the SessionMemoryMutation object of the builder.
func (_u *SessionMemoryUpdateOne) Mutation() *SessionMemoryMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the ChatSession entity.
func (_u *SessionMemoryUpdateOne) ClearSession() *SessionMemoryUpdateOne {
	_u.mutation.ClearSession()
	return _u
}

// Where appends a list predicates to the SessionMemoryUpdate builder.
func (_u *SessionMemoryUpdateOne) Where(ps ...predicate.SessionMemory) *SessionMemoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionMemoryUpdateOne) Select(field string, fields ...string) *SessionMemoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionMemory entity.
func (_u *SessionMemoryUpdateOne) Save(ctx context.Context) (*SessionMemory, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionMemoryUpdateOne) SaveX(ctx context.Context) *SessionMemory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionMemoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionMemoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionMemoryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sessionmemory.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionMemoryUpdateOne) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SessionMemory.session"`)
	}
	return nil
}

func (_u *SessionMemoryUpdateOne) sqlSave(ctx context.Context) (_node *SessionMemory, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionmemory.Table, sessionmemory.Columns, sqlgraph.NewFieldSpec(sessionmemory.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionMemory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionmemory.FieldID)
		for _, f := range fields {
			if !sessionmemory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionmemory.FieldID {
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
		_spec.SetField(sessionmemory.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Focus(); ok {
		_spec.SetField(sessionmemory.FieldFocus, field.TypeJSON, value)
	}
	if _u.mutation.FocusCleared() {
		_spec.ClearField(sessionmemory.FieldFocus, field.TypeJSON)
	}
	if value, ok := _u.mutation.Facts(); ok {
		_spec.SetField(sessionmemory.FieldFacts, field.TypeJSON, value)
	}
	if _u.mutation.FactsCleared() {
		_spec.ClearField(sessionmemory.FieldFacts, field.TypeJSON)
	}
	if value, ok := _u.mutation.FactsMeta(); ok {
		_spec.SetField(sessionmemory.FieldFactsMeta, field.TypeJSON, value)
	}
	if _u.mutation.FactsMetaCleared() {
		_spec.ClearField(sessionmemory.FieldFactsMeta, field.TypeJSON)
	}
	if value, ok := _u.mutation.ToolFacts(); ok {
		_spec.SetField(sessionmemory.FieldToolFacts, field.TypeJSON, value)
	}
	if _u.mutation.ToolFactsCleared() {
		_spec.ClearField(sessionmemory.FieldToolFacts, field.TypeJSON)
	}
	if value, ok := _u.mutation.Entities(); ok {
		_spec.SetField(sessionmemory.FieldEntities, field.TypeJSON, value)
	}
	if _u.mutation.EntitiesCleared() {
		_spec.ClearField(sessionmemory.FieldEntities, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastTool(); ok {
		_spec.SetField(sessionmemory.FieldLastTool, field.TypeJSON, value)
	}
	if _u.mutation.LastToolCleared() {
		_spec.ClearField(sessionmemory.FieldLastTool, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionmemory.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   sessionmemory.SessionTable,
			Columns: []string{sessionmemory.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatsession.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   sessionmemory.SessionTable,
			Columns: []string{sessionmemory.SessionColumn},
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
	_node = &SessionMemory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionmemory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
