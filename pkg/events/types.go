// Package events provides per-job SSE event delivery. Events are published
// through PostgreSQL NOTIFY for cross-pod distribution; lifecycle events
// are additionally persisted to the events table so a reconnecting client
// can catch up.
package events

// SSE event vocabulary. Every job stream emits queued before started,
// started before any progress or tool event, and exactly one terminal
// event (done, error, or cancelled).
const (
	EventQueued             = "queued"
	EventStarted            = "started"
	EventProgress           = "progress"
	EventToolSelected       = "tool_selected"
	EventToolExecuted       = "tool_executed"
	EventSessionFileCreated = "session_file_created"
	EventQueryProgress      = "query_progress"
	EventQueryWarning       = "query_warning"
	EventQueryError         = "query_error"
	EventDuplicateDetected  = "duplicate_detected"
	EventForcedFinalize     = "forced_finalize"
	EventImageContext       = "image_context"
	EventFinalResponse      = "final_response"
	EventCancelRequested    = "cancel_requested"
	EventCancelled          = "cancelled"
	EventDone               = "done"
	EventError              = "error"
)

// transientEvents are broadcast via NOTIFY only, never persisted.
// High-frequency streaming data that a reconnecting client does not need
// to replay: the terminal events carry the durable outcome.
var transientEvents = map[string]bool{
	EventProgress:      true,
	EventQueryProgress: true,
	EventFinalResponse: true,
	EventImageContext:  true,
}

// IsTransient reports whether an event is NOTIFY-only.
func IsTransient(event string) bool {
	return transientEvents[event]
}

// IsTerminal reports whether an event ends the stream.
func IsTerminal(event string) bool {
	return event == EventDone || event == EventError || event == EventCancelled
}

// JobChannel returns the NOTIFY channel name for a job's events.
// Format: "job:{job_id}"
func JobChannel(jobID string) string {
	return "job:" + jobID
}
