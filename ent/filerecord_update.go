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
	"github.com/cucinellclark/bvbrc-copilot/ent/filerecord"
	"github.com/cucinellclark/bvbrc-copilot/ent/predicate"
)

// FileRecordUpdate is the builder for updating FileRecord entities.
type FileRecordUpdate struct {
	config
	hooks    []Hook
	mutation *FileRecordMutation
}

// Where appends a list predicates to the FileRecordUpdate builder.
func (_u *FileRecordUpdate) Where(ps ...predicate.FileRecord) *FileRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *FileRecordUpdate) SetSessionID(v string) *FileRecordUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *FileRecordUpdate) SetNillableSessionID(v *string) *FileRecordUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetToolID sets the "tool_id" field.
func (_u *FileRecordUpdate) SetToolID(v string) *FileRecordUpdate {
	_u.mutation.SetToolID(v)
	return _u
}

// SetNillableToolID sets the "tool_id" field if the given value is not nil.
func (_u *FileRecordUpdate) SetNillableToolID(v *string) *FileRecordUpdate {
	if v != nil {
		_u.SetToolID(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *FileRecordUpdate) SetFileName(v string) *FileRecordUpdate {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *FileRecordUpdate) SetNillableFileName(v *string) *FileRecordUpdate {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *FileRecordUpdate) SetFilePath(v string) *FileRecordUpdate {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *FileRecordUpdate) SetNillableFilePath(v *string) *FileRecordUpdate {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetIsError sets the "is_error" field.
func (_u *FileRecordUpdate) SetIsError(v bool) *FileRecordUpdate {
	_u.mutation.SetIsError(v)
	return _u
}

// SetNillableIsError sets the "is_error" field if the given value is not nil.
func (_u *FileRecordUpdate) SetNillableIsError(v *bool) *FileRecordUpdate {
	if v != nil {
		_u.SetIsError(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *FileRecordUpdate) SetSummary(v map[string]interface{}) *FileRecordUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetQueryParameters sets the "query_parameters" field.
func (_u *FileRecordUpdate) SetQueryParameters(v map[string]interface{}) *FileRecordUpdate {
	_u.mutation.SetQueryParameters(v)
	return _u
}

// ClearQueryParameters clears the value of the "query_parameters" field.
func (_u *FileRecordUpdate) ClearQueryParameters() *FileRecordUpdate {
	_u.mutation.ClearQueryParameters()
	return _u
}

// SetCall sets the "call" field.
func (_u *FileRecordUpdate) SetCall(v map[string]interface{}) *FileRecordUpdate {
	_u.mutation.SetCall(v)
	return _u
}

// ClearCall clears the value of the "call" field.
func (_u *FileRecordUpdate) ClearCall() *FileRecordUpdate {
	_u.mutation.ClearCall()
	return _u
}

// SetWorkspace sets the "workspace" field.
func (_u *FileRecordUpdate) SetWorkspace(v map[string]interface{}) *FileRecordUpdate {
	_u.mutation.SetWorkspace(v)
	return _u
}

// ClearWorkspace clears the value of the "workspace" field.
func (_u *FileRecordUpdate) ClearWorkspace() *FileRecordUpdate {
	_u.mutation.ClearWorkspace()
	return _u
}

// SetErrorType sets the "error_type" field.
func (_u *FileRecordUpdate) SetErrorType(v string) *FileRecordUpdate {
	_u.mutation.SetErrorType(v)
	return _u
}

// SetNillableErrorType sets the "error_type" field if the given value is not nil.
func (_u *FileRecordUpdate) SetNillableErrorType(v *string) *FileRecordUpdate {
	if v != nil {
		_u.SetErrorType(*v)
	}
	return _u
}

// ClearErrorType clears the value of the "error_type" field.
func (_u *FileRecordUpdate) ClearErrorType() *FileRecordUpdate {
	_u.mutation.ClearErrorType()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *FileRecordUpdate) SetErrorMessage(v string) *FileRecordUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *FileRecordUpdate) SetNillableErrorMessage(v *string) *FileRecordUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *FileRecordUpdate) ClearErrorMessage() *FileRecordUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FileRecordUpdate) SetCreatedAt(v time.Time) *FileRecordUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FileRecordUpdate) SetNillableCreatedAt(v *time.Time) *FileRecordUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetSession sets the "session" edge to the ChatSession entity.
func (_u *FileRecordUpdate) SetSession(v *ChatSession) *FileRecordUpdate {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the FileRecordMutation object of the builder.
func (_u *FileRecordUpdate) Mutation() *FileRecordMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the ChatSession entity.
func (_u *FileRecordUpdate) ClearSession() *FileRecordUpdate {
	_u.mutation.ClearSession()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FileRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FileRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FileRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FileRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FileRecordUpdate) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FileRecord.session"`)
	}
	return nil
}

func (_u *FileRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(filerecord.Table, filerecord.Columns, sqlgraph.NewFieldSpec(filerecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ToolID(); ok {
		_spec.SetField(filerecord.FieldToolID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(filerecord.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(filerecord.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsError(); ok {
		_spec.SetField(filerecord.FieldIsError, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(filerecord.FieldSummary, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.QueryParameters(); ok {
		_spec.SetField(filerecord.FieldQueryParameters, field.TypeJSON, value)
	}
	if _u.mutation.QueryParametersCleared() {
		_spec.ClearField(filerecord.FieldQueryParameters, field.TypeJSON)
	}
	if value, ok := _u.mutation.Call(); ok {
		_spec.SetField(filerecord.FieldCall, field.TypeJSON, value)
	}
	if _u.mutation.CallCleared() {
		_spec.ClearField(filerecord.FieldCall, field.TypeJSON)
	}
	if value, ok := _u.mutation.Workspace(); ok {
		_spec.SetField(filerecord.FieldWorkspace, field.TypeJSON, value)
	}
	if _u.mutation.WorkspaceCleared() {
		_spec.ClearField(filerecord.FieldWorkspace, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorType(); ok {
		_spec.SetField(filerecord.FieldErrorType, field.TypeString, value)
	}
	if _u.mutation.ErrorTypeCleared() {
		_spec.ClearField(filerecord.FieldErrorType, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(filerecord.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(filerecord.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(filerecord.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{filerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FileRecordUpdateOne is the builder for updating a single FileRecord entity.
type FileRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FileRecordMutation
}

// SetSessionID sets the "session_id" field.
func (_u *FileRecordUpdateOne) SetSessionID(v string) *FileRecordUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *FileRecordUpdateOne) SetNillableSessionID(v *string) *FileRecordUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetToolID sets the "tool_id" field.
func (_u *FileRecordUpdateOne) SetToolID(v string) *FileRecordUpdateOne {
	_u.mutation.SetToolID(v)
	return _u
}

// SetNillableToolID sets the "tool_id" field if the given value is not nil.
func (_u *FileRecordUpdateOne) SetNillableToolID(v *string) *FileRecordUpdateOne {
	if v != nil {
		_u.SetToolID(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *FileRecordUpdateOne) SetFileName(v string) *FileRecordUpdateOne {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *FileRecordUpdateOne) SetNillableFileName(v *string) *FileRecordUpdateOne {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *FileRecordUpdateOne) SetFilePath(v string) *FileRecordUpdateOne {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *FileRecordUpdateOne) SetNillableFilePath(v *string) *FileRecordUpdateOne {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetIsError sets the "is_error" field.
func (_u *FileRecordUpdateOne) SetIsError(v bool) *FileRecordUpdateOne {
	_u.mutation.SetIsError(v)
	return _u
}

// SetNillableIsError sets the "is_error" field if the given value is not nil.
func (_u *FileRecordUpdateOne) SetNillableIsError(v *bool) *FileRecordUpdateOne {
	if v != nil {
		_u.SetIsError(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *FileRecordUpdateOne) SetSummary(v map[string]interface{}) *FileRecordUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetQueryParameters sets the "query_parameters" field.
func (_u *FileRecordUpdateOne) SetQueryParameters(v map[string]interface{}) *FileRecordUpdateOne {
	_u.mutation.SetQueryParameters(v)
	return _u
}

// ClearQueryParameters clears the value of the "query_parameters" field.
func (_u *FileRecordUpdateOne) ClearQueryParameters() *FileRecordUpdateOne {
	_u.mutation.ClearQueryParameters()
	return _u
}

// SetCall sets the "call" field.
func (_u *FileRecordUpdateOne) SetCall(v map[string]interface{}) *FileRecordUpdateOne {
	_u.mutation.SetCall(v)
	return _u
}

// ClearCall clears the value of the "call" field.
func (_u *FileRecordUpdateOne) ClearCall() *FileRecordUpdateOne {
	_u.mutation.ClearCall()
	return _u
}

// SetWorkspace sets the "workspace" field.
func (_u *FileRecordUpdateOne) SetWorkspace(v map[string]interface{}) *FileRecordUpdateOne {
	_u.mutation.SetWorkspace(v)
	return _u
}

// ClearWorkspace clears the value of the "workspace" field.
func (_u *FileRecordUpdateOne) ClearWorkspace() *FileRecordUpdateOne {
	_u.mutation.ClearWorkspace()
	return _u
}

// SetErrorType sets the "error_type" field.
func (_u *FileRecordUpdateOne) SetErrorType(v string) *FileRecordUpdateOne {
	_u.mutation.SetErrorType(v)
	return _u
}

// SetNillableErrorType sets the "error_type" field if the given value is not nil.
func (_u *FileRecordUpdateOne) SetNillableErrorType(v *string) *FileRecordUpdateOne {
	if v != nil {
		_u.SetErrorType(*v)
	}
	return _u
}

// ClearErrorType clears the value of the "error_type" field.
func (_u *FileRecordUpdateOne) ClearErrorType() *FileRecordUpdateOne {
	_u.mutation.ClearErrorType()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *FileRecordUpdateOne) SetErrorMessage(v string) *FileRecordUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *FileRecordUpdateOne) SetNillableErrorMessage(v *string) *FileRecordUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *FileRecordUpdateOne) ClearErrorMessage() *FileRecordUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FileRecordUpdateOne) SetCreatedAt(v time.Time) *FileRecordUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FileRecordUpdateOne) SetNillableCreatedAt(v *time.Time) *FileRecordUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetSession sets the "session" edge to the ChatSession entity.
func (_u *FileRecordUpdateOne) SetSession(v *ChatSession) *FileRecordUpdateOne {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the FileRecordMutation object of the builder.
func (_u *FileRecordUpdateOne) Mutation() *FileRecordMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the ChatSession entity.
func (_u *FileRecordUpdateOne) ClearSession() *FileRecordUpdateOne {
	_u.mutation.ClearSession()
	return _u
}

// Where appends a list predicates to the FileRecordUpdate builder.
func (_u *FileRecordUpdateOne) Where(ps ...predicate.FileRecord) *FileRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FileRecordUpdateOne) Select(field string, fields ...string) *FileRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FileRecord entity.
func (_u *FileRecordUpdateOne) Save(ctx context.Context) (*FileRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FileRecordUpdateOne) SaveX(ctx context.Context) *FileRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FileRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FileRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FileRecordUpdateOne) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FileRecord.session"`)
	}
	return nil
}

func (_u *FileRecordUpdateOne) sqlSave(ctx context.Context) (_node *FileRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(filerecord.Table, filerecord.Columns, sqlgraph.NewFieldSpec(filerecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FileRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, filerecord.FieldID)
		for _, f := range fields {
			if !filerecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != filerecord.FieldID {
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
	if value, ok := _u.mutation.ToolID(); ok {
		_spec.SetField(filerecord.FieldToolID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(filerecord.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(filerecord.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsError(); ok {
		_spec.SetField(filerecord.FieldIsError, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(filerecord.FieldSummary, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.QueryParameters(); ok {
		_spec.SetField(filerecord.FieldQueryParameters, field.TypeJSON, value)
	}
	if _u.mutation.QueryParametersCleared() {
		_spec.ClearField(filerecord.FieldQueryParameters, field.TypeJSON)
	}
	if value, ok := _u.mutation.Call(); ok {
		_spec.SetField(filerecord.FieldCall, field.TypeJSON, value)
	}
	if _u.mutation.CallCleared() {
		_spec.ClearField(filerecord.FieldCall, field.TypeJSON)
	}
	if value, ok := _u.mutation.Workspace(); ok {
		_spec.SetField(filerecord.FieldWorkspace, field.TypeJSON, value)
	}
	if _u.mutation.WorkspaceCleared() {
		_spec.ClearField(filerecord.FieldWorkspace, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorType(); ok {
		_spec.SetField(filerecord.FieldErrorType, field.TypeString, value)
	}
	if _u.mutation.ErrorTypeCleared() {
		_spec.ClearField(filerecord.FieldErrorType, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(filerecord.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(filerecord.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(filerecord.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &FileRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{filerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
