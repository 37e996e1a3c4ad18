package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cucinellclark/bvbrc-copilot/pkg/config"
	"github.com/cucinellclark/bvbrc-copilot/pkg/models"
)

// queryRequest is the body of POST /copilot-agent and POST /rag/query.
type queryRequest struct {
	Query             string           `json:"query" binding:"required"`
	Model             string           `json:"model"`
	SessionID         string           `json:"session_id" binding:"required"`
	UserID            string           `json:"user_id"`
	SystemPrompt      string           `json:"system_prompt"`
	SaveChat          *bool            `json:"save_chat"`
	IncludeHistory    *bool            `json:"include_history"`
	MaxIterations     int              `json:"max_iterations"`
	AuthToken         string           `json:"auth_token"`
	Stream            *bool            `json:"stream"`
	WorkspaceItems    []string         `json:"workspace_items"`
	SelectedJobs      []map[string]any `json:"selected_jobs"`
	SelectedWorkflows []map[string]any `json:"selected_workflows"`
	Images            []string         `json:"images"`
}

// wantStream defaults to streaming unless the client opts out.
func (r *queryRequest) wantStream() bool {
	return r.Stream == nil || *r.Stream
}

// jobData converts the request into queue job data, applying defaults and
// falling back to request headers for identity and auth.
func (r *queryRequest) jobData(c *gin.Context) *models.JobData {
	data := &models.JobData{
		Query:             r.Query,
		Model:             r.Model,
		SessionID:         r.SessionID,
		UserID:            r.UserID,
		SystemPrompt:      r.SystemPrompt,
		SaveChat:          r.SaveChat == nil || *r.SaveChat,
		IncludeHistory:    r.IncludeHistory == nil || *r.IncludeHistory,
		MaxIterations:     r.MaxIterations,
		AuthToken:         r.AuthToken,
		WorkspaceItems:    r.WorkspaceItems,
		SelectedJobs:      r.SelectedJobs,
		SelectedWorkflows: r.SelectedWorkflows,
		Images:            r.Images,
	}
	if data.UserID == "" {
		data.UserID = requestUser(c)
	}
	if data.AuthToken == "" {
		data.AuthToken = bearerToken(c)
	}
	return data
}

// handleQuery enqueues one job and either streams its events or returns the
// job id for polling.
func (s *Server) handleQuery(c *gin.Context, class config.QueueClass) {
	var req queryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.Images) > models.MaxJobImages {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "too many images", "max": models.MaxJobImages,
		})
		return
	}

	jobID, err := s.queue.Enqueue(c.Request.Context(), class, req.jobData(c), 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to enqueue job"})
		return
	}

	if !req.wantStream() {
		c.JSON(http.StatusAccepted, gin.H{"job_id": jobID, "status": "queued"})
		return
	}
	s.streamJob(c, jobID, 0)
}
