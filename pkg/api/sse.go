package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
)

// sseStream writes server-sent events to one client. Writes after the
// client disconnects are swallowed; the caller detects disconnect through
// the request context.
type sseStream struct {
	w       gin.ResponseWriter
	flusher http.Flusher

	mu     sync.Mutex
	broken bool
}

// newSSEStream sets the streaming headers, flushes them immediately, and
// writes the opening connected comment.
func newSSEStream(c *gin.Context) *sseStream {
	h := c.Writer.Header()
	h.Set("Content-Type", "text/event-stream; charset=utf-8")
	h.Set("Cache-Control", "no-cache, no-transform")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	c.Writer.WriteHeader(http.StatusOK)

	s := &sseStream{w: c.Writer, flusher: c.Writer}
	s.comment("connected")
	return s
}

// comment writes an SSE comment line, used for the opening handshake and
// keep-alive heartbeats.
func (s *sseStream) comment(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.broken {
		return
	}
	if _, err := fmt.Fprintf(s.w, ": %s\n\n", text); err != nil {
		s.broken = true
		return
	}
	s.flusher.Flush()
}

// send writes one named event with a JSON payload. The id field carries the
// persisted event id when present so clients can resume with Last-Event-ID.
func (s *sseStream) send(event string, id int64, payload map[string]any) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.broken {
		return
	}
	if id > 0 {
		if _, err := fmt.Fprintf(s.w, "id: %d\n", id); err != nil {
			s.broken = true
			return
		}
	}
	if _, err := fmt.Fprintf(s.w, "event: %s\ndata: %s\n\n", event, data); err != nil {
		s.broken = true
		return
	}
	s.flusher.Flush()
}
