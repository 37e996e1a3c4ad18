// Code generated by ent, DO NOT EDIT.

package chatmessage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/cucinellclark/bvbrc-copilot/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldEQ(FieldSessionID, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldEQ(FieldContent, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldEQ(FieldTimestamp, v))
}

// SourceTool applies equality check predicate on the "source_tool" field. It's identical to SourceToolEQ.
func SourceTool(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldEQ(FieldSourceTool, v))
}

// UISourceTool applies equality check predicate on the "ui_source_tool" field. It's identical to UISourceToolEQ.
func UISourceTool(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldEQ(FieldUISourceTool, v))
}

// WorkflowID applies equality check predicate on the "workflow_id" field. It's identical to WorkflowIDEQ.
func WorkflowID(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldEQ(FieldWorkflowID, v))
}

// IsWorkflow applies equality check predicate on the "is_workflow" field. It's identical to IsWorkflowEQ.
func IsWorkflow(v bool) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldEQ(FieldIsWorkflow, v))
}

// IsWorkspaceBrowse applies equality check predicate on the "is_workspace_browse" field. It's identical to IsWorkspaceBrowseEQ.
func IsWorkspaceBrowse(v bool) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldEQ(FieldIsWorkspaceBrowse, v))
}

// IsJobsBrowse applies equality check predicate on the "is_jobs_browse" field. It's identical to IsJobsBrowseEQ.
func IsJobsBrowse(v bool) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldEQ(FieldIsJobsBrowse, v))
}

// ChatSummary applies equality check predicate on the "chat_summary" field. It's identical to ChatSummaryEQ.
func ChatSummary(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldEQ(FieldChatSummary, v))
}

// UIAction applies equality check predicate on the "ui_action" field. It's identical to UIActionEQ.
func UIAction(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldEQ(FieldUIAction, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldContainsFold(FieldSessionID, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v Role) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v Role) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...Role) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...Role) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldNotIn(FieldRole, vs...))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldContainsFold(FieldContent, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldLTE(FieldTimestamp, v))
}

// AttachmentsIsNil applies the IsNil predicate on the "attachments" field.
func AttachmentsIsNil() predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldIsNull(FieldAttachments))
}

// AttachmentsNotNil applies the NotNil predicate on the "attachments" field.
func AttachmentsNotNil() predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldNotNull(FieldAttachments))
}

// ToolCallIsNil applies the IsNil predicate on the "tool_call" field.
func ToolCallIsNil() predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldIsNull(FieldToolCall))
}

// ToolCallNotNil applies the NotNil predicate on the "tool_call" field.
func ToolCallNotNil() predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldNotNull(FieldToolCall))
}

// UIToolCallIsNil applies the IsNil predicate on the "ui_tool_call" field.
func UIToolCallIsNil() predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldIsNull(FieldUIToolCall))
}

// UIToolCallNotNil applies the NotNil predicate on the "ui_tool_call" field.
func UIToolCallNotNil() predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldNotNull(FieldUIToolCall))
}

// SourceToolEQ applies the EQ predicate on the "source_tool" field.
func SourceToolEQ(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldEQ(FieldSourceTool, v))
}

// SourceToolNEQ applies the NEQ predicate on the "source_tool" field.
func SourceToolNEQ(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldNEQ(FieldSourceTool, v))
}

// SourceToolIn applies the In predicate on the "source_tool" field.
func SourceToolIn(vs ...string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldIn(FieldSourceTool, vs...))
}

// SourceToolNotIn applies the NotIn predicate on the "source_tool" field.
func SourceToolNotIn(vs ...string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldNotIn(FieldSourceTool, vs...))
}

// SourceToolGT applies the GT predicate on the "source_tool" field.
func SourceToolGT(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldGT(FieldSourceTool, v))
}

// SourceToolGTE applies the GTE predicate on the "source_tool" field.
func SourceToolGTE(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldGTE(FieldSourceTool, v))
}

// SourceToolLT applies the LT predicate on the "source_tool" field.
func SourceToolLT(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldLT(FieldSourceTool, v))
}

// SourceToolLTE applies the LTE predicate on the "source_tool" field.
func SourceToolLTE(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldLTE(FieldSourceTool, v))
}

// SourceToolContains applies the Contains predicate on the "source_tool" field.
func SourceToolContains(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldContains(FieldSourceTool, v))
}

// SourceToolHasPrefix applies the HasPrefix predicate on the "source_tool" field.
func SourceToolHasPrefix(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldHasPrefix(FieldSourceTool, v))
}

// SourceToolHasSuffix applies the HasSuffix predicate on the "source_tool" field.
func SourceToolHasSuffix(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldHasSuffix(FieldSourceTool, v))
}

// SourceToolIsNil applies the IsNil predicate on the "source_tool" field.
func SourceToolIsNil() predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldIsNull(FieldSourceTool))
}

// SourceToolNotNil applies the NotNil predicate on the "source_tool" field.
func SourceToolNotNil() predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldNotNull(FieldSourceTool))
}

// SourceToolEqualFold applies the EqualFold predicate on the "source_tool" field.
func SourceToolEqualFold(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldEqualFold(FieldSourceTool, v))
}

// SourceToolContainsFold applies the ContainsFold predicate on the "source_tool" field.
func SourceToolContainsFold(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldContainsFold(FieldSourceTool, v))
}

// UISourceToolEQ applies the EQ predicate on the "ui_source_tool" field.
func UISourceToolEQ(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldEQ(FieldUISourceTool, v))
}

// UISourceToolNEQ applies the NEQ predicate on the "ui_source_tool" field.
func UISourceToolNEQ(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldNEQ(FieldUISourceTool, v))
}

// UISourceToolIn applies the In predicate on the "ui_source_tool" field.
func UISourceToolIn(vs ...string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldIn(FieldUISourceTool, vs...))
}

// UISourceToolNotIn applies the NotIn predicate on the "ui_source_tool" field.
func UISourceToolNotIn(vs ...string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldNotIn(FieldUISourceTool, vs...))
}

// UISourceToolGT applies the GT predicate on the "ui_source_tool" field.
func UISourceToolGT(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldGT(FieldUISourceTool, v))
}

// UISourceToolGTE applies the GTE predicate on the "ui_source_tool" field.
func UISourceToolGTE(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldGTE(FieldUISourceTool, v))
}

// UISourceToolLT applies the LT predicate on the "ui_source_tool" field.
func UISourceToolLT(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldLT(FieldUISourceTool, v))
}

// UISourceToolLTE applies the LTE predicate on the "ui_source_tool" field.
func UISourceToolLTE(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldLTE(FieldUISourceTool, v))
}

// UISourceToolContains applies the Contains predicate on the "ui_source_tool" field.
func UISourceToolContains(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldContains(FieldUISourceTool, v))
}

// UISourceToolHasPrefix applies the HasPrefix predicate on the "ui_source_tool" field.
func UISourceToolHasPrefix(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldHasPrefix(FieldUISourceTool, v))
}

// UISourceToolHasSuffix applies the HasSuffix predicate on the "ui_source_tool" field.
func UISourceToolHasSuffix(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldHasSuffix(FieldUISourceTool, v))
}

// UISourceToolIsNil applies the IsNil predicate on the "ui_source_tool" field.
func UISourceToolIsNil() predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldIsNull(FieldUISourceTool))
}

// UISourceToolNotNil applies the NotNil predicate on the "ui_source_tool" field.
func UISourceToolNotNil() predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldNotNull(FieldUISourceTool))
}

// UISourceToolEqualFold applies the EqualFold predicate on the "ui_source_tool" field.
func UISourceToolEqualFold(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldEqualFold(FieldUISourceTool, v))
}

// UISourceToolContainsFold applies the ContainsFold predicate on the "ui_source_tool" field.
func UISourceToolContainsFold(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldContainsFold(FieldUISourceTool, v))
}

// WorkflowIDEQ applies the EQ predicate on the "workflow_id" field.
func WorkflowIDEQ(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldEQ(FieldWorkflowID, v))
}

// WorkflowIDNEQ applies the NEQ predicate on the "workflow_id" field.
func WorkflowIDNEQ(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldNEQ(FieldWorkflowID, v))
}

// WorkflowIDIn applies the In predicate on the "workflow_id" field.
func WorkflowIDIn(vs ...string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldIn(FieldWorkflowID, vs...))
}

// WorkflowIDNotIn applies the NotIn predicate on the "workflow_id" field.
func WorkflowIDNotIn(vs ...string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldNotIn(FieldWorkflowID, vs...))
}

// WorkflowIDGT applies the GT predicate on the "workflow_id" field.
func WorkflowIDGT(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldGT(FieldWorkflowID, v))
}

// WorkflowIDGTE applies the GTE predicate on the "workflow_id" field.
func WorkflowIDGTE(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldGTE(FieldWorkflowID, v))
}

// WorkflowIDLT applies the LT predicate on the "workflow_id" field.
func WorkflowIDLT(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldLT(FieldWorkflowID, v))
}

// WorkflowIDLTE applies the LTE predicate on the "workflow_id" field.
func WorkflowIDLTE(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldLTE(FieldWorkflowID, v))
}

// WorkflowIDContains applies the Contains predicate on the "workflow_id" field.
func WorkflowIDContains(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldContains(FieldWorkflowID, v))
}

// WorkflowIDHasPrefix applies the HasPrefix predicate on the "workflow_id" field.
func WorkflowIDHasPrefix(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldHasPrefix(FieldWorkflowID, v))
}

// WorkflowIDHasSuffix applies the HasSuffix predicate on the "workflow_id" field.
func WorkflowIDHasSuffix(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldHasSuffix(FieldWorkflowID, v))
}

// WorkflowIDIsNil applies the IsNil predicate on the "workflow_id" field.
func WorkflowIDIsNil() predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldIsNull(FieldWorkflowID))
}

// WorkflowIDNotNil applies the NotNil predicate on the "workflow_id" field.
func WorkflowIDNotNil() predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldNotNull(FieldWorkflowID))
}

// WorkflowIDEqualFold applies the EqualFold predicate on the "workflow_id" field.
func WorkflowIDEqualFold(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldEqualFold(FieldWorkflowID, v))
}

// WorkflowIDContainsFold applies the ContainsFold predicate on the "workflow_id" field.
func WorkflowIDContainsFold(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldContainsFold(FieldWorkflowID, v))
}

// IsWorkflowEQ applies the EQ predicate on the "is_workflow" field.
func IsWorkflowEQ(v bool) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldEQ(FieldIsWorkflow, v))
}

// IsWorkflowNEQ applies the NEQ predicate on the "is_workflow" field.
func IsWorkflowNEQ(v bool) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldNEQ(FieldIsWorkflow, v))
}

// IsWorkspaceBrowseEQ applies the EQ predicate on the "is_workspace_browse" field.
func IsWorkspaceBrowseEQ(v bool) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldEQ(FieldIsWorkspaceBrowse, v))
}

// IsWorkspaceBrowseNEQ applies the NEQ predicate on the "is_workspace_browse" field.
func IsWorkspaceBrowseNEQ(v bool) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldNEQ(FieldIsWorkspaceBrowse, v))
}

// IsJobsBrowseEQ applies the EQ predicate on the "is_jobs_browse" field.
func IsJobsBrowseEQ(v bool) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldEQ(FieldIsJobsBrowse, v))
}

// IsJobsBrowseNEQ applies the NEQ predicate on the "is_jobs_browse" field.
func IsJobsBrowseNEQ(v bool) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldNEQ(FieldIsJobsBrowse, v))
}

// ChatSummaryEQ applies the EQ predicate on the "chat_summary" field.
func ChatSummaryEQ(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldEQ(FieldChatSummary, v))
}

// ChatSummaryNEQ applies the NEQ predicate on the "chat_summary" field.
func ChatSummaryNEQ(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldNEQ(FieldChatSummary, v))
}

// ChatSummaryIn applies the In predicate on the "chat_summary" field.
func ChatSummaryIn(vs ...string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldIn(FieldChatSummary, vs...))
}

// ChatSummaryNotIn applies the NotIn predicate on the "chat_summary" field.
func ChatSummaryNotIn(vs ...string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldNotIn(FieldChatSummary, vs...))
}

// ChatSummaryGT applies the GT predicate on the "chat_summary" field.
func ChatSummaryGT(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldGT(FieldChatSummary, v))
}

// ChatSummaryGTE applies the GTE predicate on the "chat_summary" field.
func ChatSummaryGTE(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldGTE(FieldChatSummary, v))
}

// ChatSummaryLT applies the LT predicate on the "chat_summary" field.
func ChatSummaryLT(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldLT(FieldChatSummary, v))
}

// ChatSummaryLTE applies the LTE predicate on the "chat_summary" field.
func ChatSummaryLTE(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldLTE(FieldChatSummary, v))
}

// ChatSummaryContains applies the Contains predicate on the "chat_summary" field.
func ChatSummaryContains(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldContains(FieldChatSummary, v))
}

// ChatSummaryHasPrefix applies the HasPrefix predicate on the "chat_summary" field.
func ChatSummaryHasPrefix(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldHasPrefix(FieldChatSummary, v))
}

// ChatSummaryHasSuffix applies the HasSuffix predicate on the "chat_summary" field.
func ChatSummaryHasSuffix(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldHasSuffix(FieldChatSummary, v))
}

// ChatSummaryIsNil applies the IsNil predicate on the "chat_summary" field.
func ChatSummaryIsNil() predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldIsNull(FieldChatSummary))
}

// ChatSummaryNotNil applies the NotNil predicate on the "chat_summary" field.
func ChatSummaryNotNil() predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldNotNull(FieldChatSummary))
}

// ChatSummaryEqualFold applies the EqualFold predicate on the "chat_summary" field.
func ChatSummaryEqualFold(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldEqualFold(FieldChatSummary, v))
}

// ChatSummaryContainsFold applies the ContainsFold predicate on the "chat_summary" field.
func ChatSummaryContainsFold(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldContainsFold(FieldChatSummary, v))
}

// UIActionEQ applies the EQ predicate on the "ui_action" field.
func UIActionEQ(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldEQ(FieldUIAction, v))
}

// UIActionNEQ applies the NEQ predicate on the "ui_action" field.
func UIActionNEQ(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldNEQ(FieldUIAction, v))
}

// UIActionIn applies the In predicate on the "ui_action" field.
func UIActionIn(vs ...string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldIn(FieldUIAction, vs...))
}

// UIActionNotIn applies the NotIn predicate on the "ui_action" field.
func UIActionNotIn(vs ...string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldNotIn(FieldUIAction, vs...))
}

// UIActionGT applies the GT predicate on the "ui_action" field.
func UIActionGT(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldGT(FieldUIAction, v))
}

// UIActionGTE applies the GTE predicate on the "ui_action" field.
func UIActionGTE(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldGTE(FieldUIAction, v))
}

// UIActionLT applies the LT predicate on the "ui_action" field.
func UIActionLT(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldLT(FieldUIAction, v))
}

// UIActionLTE applies the LTE predicate on the "ui_action" field.
func UIActionLTE(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldLTE(FieldUIAction, v))
}

// UIActionContains applies the Contains predicate on the "ui_action" field.
func UIActionContains(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldContains(FieldUIAction, v))
}

// UIActionHasPrefix applies the HasPrefix predicate on the "ui_action" field.
func UIActionHasPrefix(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldHasPrefix(FieldUIAction, v))
}

// UIActionHasSuffix applies the HasSuffix predicate on the "ui_action" field.
func UIActionHasSuffix(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldHasSuffix(FieldUIAction, v))
}

// UIActionIsNil applies the IsNil predicate on the "ui_action" field.
func UIActionIsNil() predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldIsNull(FieldUIAction))
}

// UIActionNotNil applies the NotNil predicate on the "ui_action" field.
func UIActionNotNil() predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldNotNull(FieldUIAction))
}

// UIActionEqualFold applies the EqualFold predicate on the "ui_action" field.
func UIActionEqualFold(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldEqualFold(FieldUIAction, v))
}

// UIActionContainsFold applies the ContainsFold predicate on the "ui_action" field.
func UIActionContainsFold(v string) predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldContainsFold(FieldUIAction, v))
}

// DocumentsIsNil applies the IsNil predicate on the "documents" field.
func DocumentsIsNil() predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldIsNull(FieldDocuments))
}

// DocumentsNotNil applies the NotNil predicate on the "documents" field.
func DocumentsNotNil() predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldNotNull(FieldDocuments))
}

// AgentTraceIsNil applies the IsNil predicate on the "agent_trace" field.
func AgentTraceIsNil() predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldIsNull(FieldAgentTrace))
}

// AgentTraceNotNil applies the NotNil predicate on the "agent_trace" field.
func AgentTraceNotNil() predicate.ChatMessage {
	return predicate.ChatMessage(sql.FieldNotNull(FieldAgentTrace))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.ChatMessage {
	return predicate.ChatMessage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.ChatSession) predicate.ChatMessage {
	return predicate.ChatMessage(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ChatMessage) predicate.ChatMessage {
	return predicate.ChatMessage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ChatMessage) predicate.ChatMessage {
	return predicate.ChatMessage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ChatMessage) predicate.ChatMessage {
	return predicate.ChatMessage(sql.NotPredicates(p))
}
