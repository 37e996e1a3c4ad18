package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cucinellclark/bvbrc-copilot/pkg/database"
	"github.com/cucinellclark/bvbrc-copilot/pkg/mcp"
	"github.com/cucinellclark/bvbrc-copilot/pkg/queue"
	"github.com/cucinellclark/bvbrc-copilot/pkg/version"
)

// healthResponse is returned by GET /health.
type healthResponse struct {
	Status     string                       `json:"status"`
	Version    string                       `json:"version"`
	Database   *database.HealthStatus       `json:"database"`
	Tools      int                          `json:"tools"`
	WorkerPool *queue.PoolHealth            `json:"worker_pool,omitempty"`
	MCPServers map[string]*mcp.HealthStatus `json:"mcp_servers,omitempty"`
	Error      string                       `json:"error,omitempty"`
}

// handleHealth reports database, worker pool, and MCP server health.
func (s *Server) handleHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	resp := &healthResponse{
		Status:  "healthy",
		Version: version.Full(),
	}
	if s.registry != nil {
		resp.Tools = len(s.registry.All())
	}
	if s.pool != nil {
		resp.WorkerPool = s.pool.Health()
	}
	if s.mcpHealth != nil {
		resp.MCPServers = s.mcpHealth.GetStatuses()
	}

	dbHealth, err := database.Health(ctx, s.db.DB())
	resp.Database = dbHealth
	if err != nil {
		resp.Status = "unhealthy"
		resp.Error = err.Error()
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}
