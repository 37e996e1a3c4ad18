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
	"github.com/cucinellclark/bvbrc-copilot/ent/filerecord"
)

// FileRecordCreate is the builder for creating a FileRecord entity.
type FileRecordCreate struct {
	config
	mutation *FileRecordMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *FileRecordCreate) SetSessionID(v string) *FileRecordCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetToolID sets the "tool_id" field.
func (_c *FileRecordCreate) SetToolID(v string) *FileRecordCreate {
	_c.mutation.SetToolID(v)
	return _c
}

// SetFileName sets the "file_name" field.
func (_c *FileRecordCreate) SetFileName(v string) *FileRecordCreate {
	_c.mutation.SetFileName(v)
	return _c
}

// SetFilePath sets the "file_path" field.
func (_c *FileRecordCreate) SetFilePath(v string) *FileRecordCreate {
	_c.mutation.SetFilePath(v)
	return _c
}

// SetIsError sets the "is_error" field.
func (_c *FileRecordCreate) SetIsError(v bool) *FileRecordCreate {
	_c.mutation.SetIsError(v)
	return _c
}

// SetNillableIsError sets the "is_error" field if the given value is not nil.
func (_c *FileRecordCreate) SetNillableIsError(v *bool) *FileRecordCreate {
	if v != nil {
		_c.SetIsError(*v)
	}
	return _c
}

// SetSummary sets the "summary" field.
func (_c *FileRecordCreate) SetSummary(v map[string]interface{}) *FileRecordCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetQueryParameters sets the "query_parameters" field.
func (_c *FileRecordCreate) SetQueryParameters(v map[string]interface{}) *FileRecordCreate {
	_c.mutation.SetQueryParameters(v)
	return _c
}

// SetCall sets the "call" field.
func (_c *FileRecordCreate) SetCall(v map[string]interface{}) *FileRecordCreate {
	_c.mutation.SetCall(v)
	return _c
}

// SetWorkspace sets the "workspace" field.
func (_c *FileRecordCreate) SetWorkspace(v map[string]interface{}) *FileRecordCreate {
	_c.mutation.SetWorkspace(v)
	return _c
}

// SetErrorType sets the "error_type" field.
func (_c *FileRecordCreate) SetErrorType(v string) *FileRecordCreate {
	_c.mutation.SetErrorType(v)
	return _c
}

// SetNillableErrorType sets the "error_type" field if the given value is not nil.
func (_c *FileRecordCreate) SetNillableErrorType(v *string) *FileRecordCreate {
	if v != nil {
		_c.SetErrorType(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *FileRecordCreate) SetErrorMessage(v string) *FileRecordCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *FileRecordCreate) SetNillableErrorMessage(v *string) *FileRecordCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FileRecordCreate) SetCreatedAt(v time.Time) *FileRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FileRecordCreate) SetNillableCreatedAt(v *time.Time) *FileRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FileRecordCreate) SetID(v string) *FileRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the ChatSession entity.
func (_c *FileRecordCreate) SetSession(v *ChatSession) *FileRecordCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the FileRecordMutation object of the builder.
func (_c *FileRecordCreate) Mutation() *FileRecordMutation {
	return _c.mutation
}

// Save creates the FileRecord in the database.
func (_c *FileRecordCreate) Save(ctx context.Context) (*FileRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FileRecordCreate) SaveX(ctx context.Context) *FileRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FileRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FileRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FileRecordCreate) defaults() {
	if _, ok := _c.mutation.IsError(); !ok {
		v := filerecord.DefaultIsError
		_c.mutation.SetIsError(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := filerecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FileRecordCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "FileRecord.session_id"`)}
	}
	if _, ok := _c.mutation.ToolID(); !ok {
		return &ValidationError{Name: "tool_id", err: errors.New(`ent: missing required field "FileRecord.tool_id"`)}
	}
	if _, ok := _c.mutation.FileName(); !ok {
		return &ValidationError{Name: "file_name", err: errors.New(`ent: missing required field "FileRecord.file_name"`)}
	}
	if _, ok := _c.mutation.FilePath(); !ok {
		return &ValidationError{Name: "file_path", err: errors.New(`ent: missing required field "FileRecord.file_path"`)}
	}
	if _, ok := _c.mutation.IsError(); !ok {
		return &ValidationError{Name: "is_error", err: errors.New(`ent: missing required field "FileRecord.is_error"`)}
	}
	if _, ok := _c.mutation.Summary(); !ok {
		return &ValidationError{Name: "summary", err: errors.New(`ent: missing required field "FileRecord.summary"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FileRecord.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "FileRecord.session"`)}
	}
	return nil
}

func (_c *FileRecordCreate) sqlSave(ctx context.Context) (*FileRecord, error) {
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
			return nil, fmt.Errorf("unexpected FileRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FileRecordCreate) createSpec() (*FileRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &FileRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(filerecord.Table, sqlgraph.NewFieldSpec(filerecord.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ToolID(); ok {
		_spec.SetField(filerecord.FieldToolID, field.TypeString, value)
		_node.ToolID = value
	}
	if value, ok := _c.mutation.FileName(); ok {
		_spec.SetField(filerecord.FieldFileName, field.TypeString, value)
		_node.FileName = value
	}
	if value, ok := _c.mutation.FilePath(); ok {
		_spec.SetField(filerecord.FieldFilePath, field.TypeString, value)
		_node.FilePath = value
	}
	if value, ok := _c.mutation.IsError(); ok {
		_spec.SetField(filerecord.FieldIsError, field.TypeBool, value)
		_node.IsError = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(filerecord.FieldSummary, field.TypeJSON, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.QueryParameters(); ok {
		_spec.SetField(filerecord.FieldQueryParameters, field.TypeJSON, value)
		_node.QueryParameters = value
	}
	if value, ok := _c.mutation.Call(); ok {
		_spec.SetField(filerecord.FieldCall, field.TypeJSON, value)
		_node.Call = value
	}
	if value, ok := _c.mutation.Workspace(); ok {
		_spec.SetField(filerecord.FieldWorkspace, field.TypeJSON, value)
		_node.Workspace = value
	}
	if value, ok := _c.mutation.ErrorType(); ok {
		_spec.SetField(filerecord.FieldErrorType, field.TypeString, value)
		_node.ErrorType = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(filerecord.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(filerecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   filerecord.SessionTable,
			Columns: []string{filerecord.SessionColumn},
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

// FileRecordCreateBulk is the builder for creating many FileRecord entities in bulk.
type FileRecordCreateBulk struct {
	config
	err      error
	builders []*FileRecordCreate
}

// Save creates the FileRecord entities in the database.
func (_c *FileRecordCreateBulk) Save(ctx context.Context) ([]*FileRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FileRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FileRecordMutation)
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
func (_c *FileRecordCreateBulk) SaveX(ctx context.Context) []*FileRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FileRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FileRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
