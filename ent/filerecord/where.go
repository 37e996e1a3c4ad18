// Code generated by ent, DO NOT EDIT.

package filerecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/cucinellclark/bvbrc-copilot/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldEQ(FieldSessionID, v))
}

// ToolID applies equality check predicate on the "tool_id" field. It's identical to ToolIDEQ.
func ToolID(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldEQ(FieldToolID, v))
}

// FileName applies equality check predicate on the "file_name" field. It's identical to FileNameEQ.
func FileName(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldEQ(FieldFileName, v))
}

// FilePath applies equality check predicate on the "file_path" field. It's identical to FilePathEQ.
func FilePath(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldEQ(FieldFilePath, v))
}

// IsError applies equality check predicate on the "is_error" field. It's identical to IsErrorEQ.
func IsError(v bool) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldEQ(FieldIsError, v))
}

// ErrorType applies equality check predicate on the "error_type" field. It's identical to ErrorTypeEQ.
func ErrorType(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldEQ(FieldErrorType, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldContainsFold(FieldSessionID, v))
}

// ToolIDEQ applies the EQ predicate on the "tool_id" field.
func ToolIDEQ(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldEQ(FieldToolID, v))
}

// ToolIDNEQ applies the NEQ predicate on the "tool_id" field.
func ToolIDNEQ(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldNEQ(FieldToolID, v))
}

// ToolIDIn applies the In predicate on the "tool_id" field.
func ToolIDIn(vs ...string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldIn(FieldToolID, vs...))
}

// ToolIDNotIn applies the NotIn predicate on the "tool_id" field.
func ToolIDNotIn(vs ...string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldNotIn(FieldToolID, vs...))
}

// ToolIDGT applies the GT predicate on the "tool_id" field.
func ToolIDGT(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldGT(FieldToolID, v))
}

// ToolIDGTE applies the GTE predicate on the "tool_id" field.
func ToolIDGTE(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldGTE(FieldToolID, v))
}

// ToolIDLT applies the LT predicate on the "tool_id" field.
func ToolIDLT(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldLT(FieldToolID, v))
}

// ToolIDLTE applies the LTE predicate on the "tool_id" field.
func ToolIDLTE(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldLTE(FieldToolID, v))
}

// ToolIDContains applies the Contains predicate on the "tool_id" field.
func ToolIDContains(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldContains(FieldToolID, v))
}

// ToolIDHasPrefix applies the HasPrefix predicate on the "tool_id" field.
func ToolIDHasPrefix(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldHasPrefix(FieldToolID, v))
}

// ToolIDHasSuffix applies the HasSuffix predicate on the "tool_id" field.
func ToolIDHasSuffix(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldHasSuffix(FieldToolID, v))
}

// ToolIDEqualFold applies the EqualFold predicate on the "tool_id" field.
func ToolIDEqualFold(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldEqualFold(FieldToolID, v))
}

// ToolIDContainsFold applies the ContainsFold predicate on the "tool_id" field.
func ToolIDContainsFold(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldContainsFold(FieldToolID, v))
}

// FileNameEQ applies the EQ predicate on the "file_name" field.
func FileNameEQ(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldEQ(FieldFileName, v))
}

// FileNameNEQ applies the NEQ predicate on the "file_name" field.
func FileNameNEQ(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldNEQ(FieldFileName, v))
}

// FileNameIn applies the In predicate on the "file_name" field.
func FileNameIn(vs ...string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldIn(FieldFileName, vs...))
}

// FileNameNotIn applies the NotIn predicate on the "file_name" field.
func FileNameNotIn(vs ...string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldNotIn(FieldFileName, vs...))
}

// FileNameGT applies the GT predicate on the "file_name" field.
func FileNameGT(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldGT(FieldFileName, v))
}

// FileNameGTE applies the GTE predicate on the "file_name" field.
func FileNameGTE(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldGTE(FieldFileName, v))
}

// FileNameLT applies the LT predicate on the "file_name" field.
func FileNameLT(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldLT(FieldFileName, v))
}

// FileNameLTE applies the LTE predicate on the "file_name" field.
func FileNameLTE(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldLTE(FieldFileName, v))
}

// FileNameContains applies the Contains predicate on the "file_name" field.
func FileNameContains(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldContains(FieldFileName, v))
}

// FileNameHasPrefix applies the HasPrefix predicate on the "file_name" field.
func FileNameHasPrefix(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldHasPrefix(FieldFileName, v))
}

// FileNameHasSuffix applies the HasSuffix predicate on the "file_name" field.
func FileNameHasSuffix(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldHasSuffix(FieldFileName, v))
}

// FileNameEqualFold applies the EqualFold predicate on the "file_name" field.
func FileNameEqualFold(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldEqualFold(FieldFileName, v))
}

// FileNameContainsFold applies the ContainsFold predicate on the "file_name" field.
func FileNameContainsFold(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldContainsFold(FieldFileName, v))
}

// FilePathEQ applies the EQ predicate on the "file_path" field.
func FilePathEQ(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldEQ(FieldFilePath, v))
}

// FilePathNEQ applies the NEQ predicate on the "file_path" field.
func FilePathNEQ(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldNEQ(FieldFilePath, v))
}

// FilePathIn applies the In predicate on the "file_path" field.
func FilePathIn(vs ...string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldIn(FieldFilePath, vs...))
}

// FilePathNotIn applies the NotIn predicate on the "file_path" field.
func FilePathNotIn(vs ...string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldNotIn(FieldFilePath, vs...))
}

// FilePathGT applies the GT predicate on the "file_path" field.
func FilePathGT(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldGT(FieldFilePath, v))
}

// FilePathGTE applies the GTE predicate on the "file_path" field.
func FilePathGTE(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldGTE(FieldFilePath, v))
}

// FilePathLT applies the LT predicate on the "file_path" field.
func FilePathLT(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldLT(FieldFilePath, v))
}

// FilePathLTE applies the LTE predicate on the "file_path" field.
func FilePathLTE(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldLTE(FieldFilePath, v))
}

// FilePathContains applies the Contains predicate on the "file_path" field.
func FilePathContains(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldContains(FieldFilePath, v))
}

// FilePathHasPrefix applies the HasPrefix predicate on the "file_path" field.
func FilePathHasPrefix(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldHasPrefix(FieldFilePath, v))
}

// FilePathHasSuffix applies the HasSuffix predicate on the "file_path" field.
func FilePathHasSuffix(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldHasSuffix(FieldFilePath, v))
}

// FilePathEqualFold applies the EqualFold predicate on the "file_path" field.
func FilePathEqualFold(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldEqualFold(FieldFilePath, v))
}

// FilePathContainsFold applies the ContainsFold predicate on the "file_path" field.
func FilePathContainsFold(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldContainsFold(FieldFilePath, v))
}

// IsErrorEQ applies the EQ predicate on the "is_error" field.
func IsErrorEQ(v bool) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldEQ(FieldIsError, v))
}

// IsErrorNEQ applies the NEQ predicate on the "is_error" field.
func IsErrorNEQ(v bool) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldNEQ(FieldIsError, v))
}

// QueryParametersIsNil applies the IsNil predicate on the "query_parameters" field.
func QueryParametersIsNil() predicate.FileRecord {
	return predicate.FileRecord(sql.FieldIsNull(FieldQueryParameters))
}

// QueryParametersNotNil applies the NotNil predicate on the "query_parameters" field.
func QueryParametersNotNil() predicate.FileRecord {
	return predicate.FileRecord(sql.FieldNotNull(FieldQueryParameters))
}

// CallIsNil applies the IsNil predicate on the "call" field.
func CallIsNil() predicate.FileRecord {
	return predicate.FileRecord(sql.FieldIsNull(FieldCall))
}

// CallNotNil applies the NotNil predicate on the "call" field.
func CallNotNil() predicate.FileRecord {
	return predicate.FileRecord(sql.FieldNotNull(FieldCall))
}

// WorkspaceIsNil applies the IsNil predicate on the "workspace" field.
func WorkspaceIsNil() predicate.FileRecord {
	return predicate.FileRecord(sql.FieldIsNull(FieldWorkspace))
}

// WorkspaceNotNil applies the NotNil predicate on the "workspace" field.
func WorkspaceNotNil() predicate.FileRecord {
	return predicate.FileRecord(sql.FieldNotNull(FieldWorkspace))
}

// ErrorTypeEQ applies the EQ predicate on the "error_type" field.
func ErrorTypeEQ(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldEQ(FieldErrorType, v))
}

// ErrorTypeNEQ applies the NEQ predicate on the "error_type" field.
func ErrorTypeNEQ(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldNEQ(FieldErrorType, v))
}

// ErrorTypeIn applies the In predicate on the "error_type" field.
func ErrorTypeIn(vs ...string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldIn(FieldErrorType, vs...))
}

// ErrorTypeNotIn applies the NotIn predicate on the "error_type" field.
func ErrorTypeNotIn(vs ...string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldNotIn(FieldErrorType, vs...))
}

// ErrorTypeGT applies the GT predicate on the "error_type" field.
func ErrorTypeGT(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldGT(FieldErrorType, v))
}

// ErrorTypeGTE applies the GTE predicate on the "error_type" field.
func ErrorTypeGTE(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldGTE(FieldErrorType, v))
}

// ErrorTypeLT applies the LT predicate on the "error_type" field.
func ErrorTypeLT(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldLT(FieldErrorType, v))
}

// ErrorTypeLTE applies the LTE predicate on the "error_type" field.
func ErrorTypeLTE(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldLTE(FieldErrorType, v))
}

// ErrorTypeContains applies the Contains predicate on the "error_type" field.
func ErrorTypeContains(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldContains(FieldErrorType, v))
}

// ErrorTypeHasPrefix applies the HasPrefix predicate on the "error_type" field.
func ErrorTypeHasPrefix(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldHasPrefix(FieldErrorType, v))
}

// ErrorTypeHasSuffix applies the HasSuffix predicate on the "error_type" field.
func ErrorTypeHasSuffix(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldHasSuffix(FieldErrorType, v))
}

// ErrorTypeIsNil applies the IsNil predicate on the "error_type" field.
func ErrorTypeIsNil() predicate.FileRecord {
	return predicate.FileRecord(sql.FieldIsNull(FieldErrorType))
}

// ErrorTypeNotNil applies the NotNil predicate on the "error_type" field.
func ErrorTypeNotNil() predicate.FileRecord {
	return predicate.FileRecord(sql.FieldNotNull(FieldErrorType))
}

// ErrorTypeEqualFold applies the EqualFold predicate on the "error_type" field.
func ErrorTypeEqualFold(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldEqualFold(FieldErrorType, v))
}

// ErrorTypeContainsFold applies the ContainsFold predicate on the "error_type" field.
func ErrorTypeContainsFold(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldContainsFold(FieldErrorType, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.FileRecord {
	return predicate.FileRecord(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.FileRecord {
	return predicate.FileRecord(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.FileRecord {
	return predicate.FileRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.FileRecord {
	return predicate.FileRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.ChatSession) predicate.FileRecord {
	return predicate.FileRecord(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FileRecord) predicate.FileRecord {
	return predicate.FileRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FileRecord) predicate.FileRecord {
	return predicate.FileRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FileRecord) predicate.FileRecord {
	return predicate.FileRecord(sql.NotPredicates(p))
}
