package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cucinellclark/bvbrc-copilot/pkg/queue"
)

// handleJobStatus serves GET /job/:id/status.
func (s *Server) handleJobStatus(c *gin.Context) {
	view, err := s.queue.Status(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load job"})
		return
	}
	if !view.Found {
		c.JSON(http.StatusNotFound, view)
		return
	}
	c.JSON(http.StatusOK, view)
}

// handleJobAbort serves POST /job/:id/abort. Terminal cancels (waiting or
// delayed jobs) return 200; a cooperative cancel of an active job returns
// 202 while the worker winds down.
func (s *Server) handleJobAbort(c *gin.Context) {
	outcome, err := s.queue.Abort(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, queue.ErrJobNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
		return
	case errors.Is(err, queue.ErrNotCancellable):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to abort job"})
		return
	}

	status := http.StatusAccepted
	if outcome.Terminal {
		status = http.StatusOK
	}
	c.JSON(status, outcome)
}

// handleJobStream serves GET /job/:id/stream, the SSE reconnection
// endpoint. Missed persisted events are replayed from the events table
// before attaching live; the resume cursor comes from Last-Event-ID or the
// after query parameter.
func (s *Server) handleJobStream(c *gin.Context) {
	jobID := c.Param("id")
	view, err := s.queue.Status(c.Request.Context(), jobID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load job"})
		return
	}
	if !view.Found {
		c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
		return
	}
	s.streamJob(c, jobID, resumeCursor(c))
}

func resumeCursor(c *gin.Context) int64 {
	raw := c.GetHeader("Last-Event-ID")
	if raw == "" {
		raw = c.Query("after")
	}
	if raw == "" {
		return 0
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		return 0
	}
	return id
}
