package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cucinellclark/bvbrc-copilot/pkg/events"
	"github.com/cucinellclark/bvbrc-copilot/pkg/models"
)

// streamBuffer bounds in-flight events per SSE connection. A slow client
// overflowing the buffer loses events rather than stalling the listener.
const streamBuffer = 256

type liveEvent struct {
	event   string
	payload map[string]any
}

// streamJob attaches one SSE client to a job. The live callback is
// registered before catchup so no event falls between replay and
// subscription; replayed ids are deduplicated against the live feed.
// Registration replaces any previous callback for the job, so the newest
// connection wins on reconnect.
func (s *Server) streamJob(c *gin.Context, jobID string, afterID int64) {
	ctx := c.Request.Context()
	log := s.logger.With("job_id", jobID)

	ch := make(chan liveEvent, streamBuffer)
	unregister, replaced, err := s.streams.RegisterStream(ctx, jobID, func(event string, payload map[string]any) {
		select {
		case ch <- liveEvent{event: event, payload: payload}:
		default:
			log.Warn("SSE buffer full, dropping event", "event", event)
		}
	})
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "event stream unavailable"})
		return
	}
	defer unregister()

	stream := newSSEStream(c)

	// Replay persisted events the client has not seen.
	lastID := afterID
	stored, err := s.catchup.EventsSince(ctx, jobID, afterID)
	if err != nil {
		log.Warn("Event catchup failed", "error", err)
	}
	for _, ev := range stored {
		stream.send(ev.Event, ev.ID, ev.Payload)
		lastID = ev.ID
		if events.IsTerminal(ev.Event) {
			return
		}
	}

	// A terminal job whose events aged out of retention still reports its
	// outcome.
	if lastID == afterID {
		if view, err := s.queue.Status(ctx, jobID); err == nil && view.Found {
			if s.sendTerminalFromStatus(stream, view) {
				return
			}
		}
	}

	heartbeat := time.NewTicker(events.HeartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-replaced:
			// A newer connection took over this job.
			stream.comment("replaced")
			return
		case <-heartbeat.C:
			stream.comment("heartbeat")
		case ev := <-ch:
			id := eventID(ev.payload)
			if id > 0 && id <= lastID {
				continue
			}
			if id > lastID {
				lastID = id
			}
			stream.send(ev.event, id, ev.payload)
			if events.IsTerminal(ev.event) {
				return
			}
		}
	}
}

// sendTerminalFromStatus synthesizes the terminal event sequence from the
// job row for streams with nothing left to replay. Returns false for
// non-terminal jobs.
func (s *Server) sendTerminalFromStatus(stream *sseStream, view *models.JobStatusView) bool {
	base := map[string]any{"job_id": view.JobID}
	switch view.Status {
	case "completed":
		done := map[string]any{"job_id": view.JobID}
		for k, v := range view.Result {
			done[k] = v
		}
		stream.send(events.EventStarted, 0, base)
		stream.send(events.EventDone, 0, done)
		return true
	case "failed":
		payload := map[string]any{"job_id": view.JobID, "error": view.Error}
		stream.send(events.EventError, 0, payload)
		return true
	case "cancelled":
		stream.send(events.EventCancelled, 0, base)
		stream.send(events.EventDone, 0, map[string]any{"job_id": view.JobID, "cancelled": true})
		return true
	}
	return false
}

func eventID(payload map[string]any) int64 {
	switch v := payload["db_event_id"].(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	}
	return 0
}
