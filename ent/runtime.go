// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/cucinellclark/bvbrc-copilot/ent/chatmessage"
	"github.com/cucinellclark/bvbrc-copilot/ent/chatsession"
	"github.com/cucinellclark/bvbrc-copilot/ent/event"
	"github.com/cucinellclark/bvbrc-copilot/ent/filerecord"
	"github.com/cucinellclark/bvbrc-copilot/ent/job"
	"github.com/cucinellclark/bvbrc-copilot/ent/schema"
	"github.com/cucinellclark/bvbrc-copilot/ent/sessionmemory"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	chatmessageFields := schema.ChatMessage{}.Fields()
	_ = chatmessageFields
	// chatmessageDescTimestamp is the schema descriptor for timestamp field.
	chatmessageDescTimestamp := chatmessageFields[4].Descriptor()
	// chatmessage.DefaultTimestamp holds the default value on creation for the timestamp field.
	chatmessage.DefaultTimestamp = chatmessageDescTimestamp.Default.(func() time.Time)
	// chatmessageDescIsWorkflow is the schema descriptor for is_workflow field.
	chatmessageDescIsWorkflow := chatmessageFields[11].Descriptor()
	// chatmessage.DefaultIsWorkflow holds the default value on creation for the is_workflow field.
	chatmessage.DefaultIsWorkflow = chatmessageDescIsWorkflow.Default.(bool)
	// chatmessageDescIsWorkspaceBrowse is the schema descriptor for is_workspace_browse field.
	chatmessageDescIsWorkspaceBrowse := chatmessageFields[12].Descriptor()
	// chatmessage.DefaultIsWorkspaceBrowse holds the default value on creation for the is_workspace_browse field.
	chatmessage.DefaultIsWorkspaceBrowse = chatmessageDescIsWorkspaceBrowse.Default.(bool)
	// chatmessageDescIsJobsBrowse is the schema descriptor for is_jobs_browse field.
	chatmessageDescIsJobsBrowse := chatmessageFields[13].Descriptor()
	// chatmessage.DefaultIsJobsBrowse holds the default value on creation for the is_jobs_browse field.
	chatmessage.DefaultIsJobsBrowse = chatmessageDescIsJobsBrowse.Default.(bool)
	chatsessionFields := schema.ChatSession{}.Fields()
	_ = chatsessionFields
	// chatsessionDescMessageCount is the schema descriptor for message_count field.
	chatsessionDescMessageCount := chatsessionFields[4].Descriptor()
	// chatsession.DefaultMessageCount holds the default value on creation for the message_count field.
	chatsession.DefaultMessageCount = chatsessionDescMessageCount.Default.(int)
	// chatsessionDescSummarizedCount is the schema descriptor for summarized_count field.
	chatsessionDescSummarizedCount := chatsessionFields[5].Descriptor()
	// chatsession.DefaultSummarizedCount holds the default value on creation for the summarized_count field.
	chatsession.DefaultSummarizedCount = chatsessionDescSummarizedCount.Default.(int)
	// chatsessionDescCreatedAt is the schema descriptor for created_at field.
	chatsessionDescCreatedAt := chatsessionFields[7].Descriptor()
	// chatsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatsession.DefaultCreatedAt = chatsessionDescCreatedAt.Default.(func() time.Time)
	// chatsessionDescUpdatedAt is the schema descriptor for updated_at field.
	chatsessionDescUpdatedAt := chatsessionFields[8].Descriptor()
	// chatsession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	chatsession.DefaultUpdatedAt = chatsessionDescUpdatedAt.Default.(func() time.Time)
	// chatsession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	chatsession.UpdateDefaultUpdatedAt = chatsessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[4].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	filerecordFields := schema.FileRecord{}.Fields()
	_ = filerecordFields
	// filerecordDescIsError is the schema descriptor for is_error field.
	filerecordDescIsError := filerecordFields[5].Descriptor()
	// filerecord.DefaultIsError holds the default value on creation for the is_error field.
	filerecord.DefaultIsError = filerecordDescIsError.Default.(bool)
	// filerecordDescCreatedAt is the schema descriptor for created_at field.
	filerecordDescCreatedAt := filerecordFields[12].Descriptor()
	// filerecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	filerecord.DefaultCreatedAt = filerecordDescCreatedAt.Default.(func() time.Time)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescPriority is the schema descriptor for priority field.
	jobDescPriority := jobFields[3].Descriptor()
	// job.DefaultPriority holds the default value on creation for the priority field.
	job.DefaultPriority = jobDescPriority.Default.(int)
	// jobDescAttemptsMade is the schema descriptor for attempts_made field.
	jobDescAttemptsMade := jobFields[5].Descriptor()
	// job.DefaultAttemptsMade holds the default value on creation for the attempts_made field.
	job.DefaultAttemptsMade = jobDescAttemptsMade.Default.(int)
	// jobDescMaxAttempts is the schema descriptor for max_attempts field.
	jobDescMaxAttempts := jobFields[6].Descriptor()
	// job.DefaultMaxAttempts holds the default value on creation for the max_attempts field.
	job.DefaultMaxAttempts = jobDescMaxAttempts.Default.(int)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[13].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	sessionmemoryFields := schema.SessionMemory{}.Fields()
	_ = sessionmemoryFields
	// sessionmemoryDescUpdatedAt is the schema descriptor for updated_at field.
	sessionmemoryDescUpdatedAt := sessionmemoryFields[9].Descriptor()
	// sessionmemory.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sessionmemory.DefaultUpdatedAt = sessionmemoryDescUpdatedAt.Default.(func() time.Time)
	// sessionmemory.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	sessionmemory.UpdateDefaultUpdatedAt = sessionmemoryDescUpdatedAt.UpdateDefault.(func() time.Time)
}
