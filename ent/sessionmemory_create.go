// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cucinellclark/bvbrc-copilot/ent/chatsession"
	"github.com/cucinellclark/bvbrc-copilot/ent/sessionmemory"
)

// SessionMemoryCreate is the builder for creating a SessionMemory entity.
type SessionMemoryCreate struct {
	config
	mutation *SessionMemoryMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *SessionMemoryCreate) SetSessionID(v string) *SessionMemoryCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *SessionMemoryCreate) SetUserID(v string) *SessionMemoryCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetFocus sets the "focus" field.
func (_c *SessionMemoryCreate) SetFocus(v map[string]interface{}) *SessionMemoryCreate {
	_c.mutation.SetFocus(v)
	return _c
}

// SetFacts sets the "facts" field.
func (_c *SessionMemoryCreate) SetFacts(v map[string]interface{}) *SessionMemoryCreate {
	_c.mutation.SetFacts(v)
	return _c
}

// SetFactsMeta sets the "facts_meta" field.
func (_c *SessionMemoryCreate) SetFactsMeta(v map[string]interface{}) *SessionMemoryCreate {
	_c.mutation.SetFactsMeta(v)
	return _c
}

// SetToolFacts sets the "tool_facts" field.
func (_c *SessionMemoryCreate) SetToolFacts(v map[string]interface{}) *SessionMemoryCreate {
	_c.mutation.SetToolFacts(v)
	return _c
}

// SetEntities sets the "entities" field.
func (_c *SessionMemoryCreate) SetEntities(v map[string]interface{}) *SessionMemoryCreate {
	_c.mutation.SetEntities(v)
	return _c
}

// SetLastTool sets the "last_tool" field.
func (_c *SessionMemoryCreate) SetLastTool(v map[string]interface{}) *SessionMemoryCreate {
	_c.mutation.SetLastTool(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SessionMemoryCreate) SetUpdatedAt(v time.Time) *SessionMemoryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SessionMemoryCreate) SetNillableUpdatedAt(v *time.Time) *SessionMemoryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SessionMemoryCreate) SetID(v string) *SessionMemoryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the ChatSession entity.
func (_c *SessionMemoryCreate) SetSession(v *ChatSession) *SessionMemoryCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the SessionMemoryMutation object of the builder.
func (_c *SessionMemoryCreate) Mutation() *SessionMemoryMutation {
	return _c.mutation
}

// Save creates the SessionMemory in the database.
func (_c *SessionMemoryCreate) Save(ctx context.Context) (*SessionMemory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionMemoryCreate) SaveX(ctx context.Context) *SessionMemory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionMemoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionMemoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionMemoryCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := sessionmemory.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionMemoryCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SessionMemory.session_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "SessionMemory.user_id"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SessionMemory.updated_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "SessionMemory.session"`)}
	}
	return nil
}

func (_c *SessionMemoryCreate) sqlSave(ctx context.Context) (*SessionMemory, error) {
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
			return nil, fmt.Errorf("unexpected SessionMemory.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionMemoryCreate) createSpec() (*SessionMemory, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionMemory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionmemory.Table, sqlgraph.NewFieldSpec(sessionmemory.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(sessionmemory.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Focus(); ok {
		_spec.SetField(sessionmemory.FieldFocus, field.TypeJSON, value)
		_node.Focus = value
	}
	if value, ok := _c.mutation.Facts(); ok {
		_spec.SetField(sessionmemory.FieldFacts, field.TypeJSON, value)
		_node.Facts = value
	}
	if value, ok := _c.mutation.FactsMeta(); ok {
		_spec.SetField(sessionmemory.FieldFactsMeta, field.TypeJSON, value)
		_node.FactsMeta = value
	}
	if value, ok := _c.mutation.ToolFacts(); ok {
		_spec.SetField(sessionmemory.FieldToolFacts, field.TypeJSON, value)
		_node.ToolFacts = value
	}
	if value, ok := _c.mutation.Entities(); ok {
		_spec.SetField(sessionmemory.FieldEntities, field.TypeJSON, value)
		_node.Entities = value
	}
	if value, ok := _c.mutation.LastTool(); ok {
		_spec.SetField(sessionmemory.FieldLastTool, field.TypeJSON, value)
		_node.LastTool = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionmemory.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
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
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SessionMemoryCreateBulk is the builder for creating many SessionMemory entities in bulk.
type SessionMemoryCreateBulk struct {
	config
	err      error
	builders []*SessionMemoryCreate
}

// Save creates the SessionMemory entities in the database.
func (_c *SessionMemoryCreateBulk) Save(ctx context.Context) ([]*SessionMemory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionMemory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionMemoryMutation)
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
func (_c *SessionMemoryCreateBulk) SaveX(ctx context.Context) []*SessionMemory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionMemoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionMemoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
