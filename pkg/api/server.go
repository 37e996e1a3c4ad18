// Package api exposes the HTTP surface: the agent and RAG ingress routes
// with SSE streaming, job status/abort/reconnect, and health.
package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/cucinellclark/bvbrc-copilot/pkg/config"
	"github.com/cucinellclark/bvbrc-copilot/pkg/database"
	"github.com/cucinellclark/bvbrc-copilot/pkg/events"
	"github.com/cucinellclark/bvbrc-copilot/pkg/mcp"
	"github.com/cucinellclark/bvbrc-copilot/pkg/queue"
)

// Server holds the handler dependencies.
type Server struct {
	queue     *queue.Service
	pool      *queue.WorkerPool
	streams   *events.StreamManager
	catchup   *events.Catchup
	db        *database.Client
	mcpHealth *mcp.HealthMonitor
	registry  *mcp.ToolRegistry
	cfg       *config.Config
	logger    *slog.Logger
}

// NewServer creates the API server. pool and mcpHealth may be nil on
// API-only replicas.
func NewServer(
	queueSvc *queue.Service,
	pool *queue.WorkerPool,
	streams *events.StreamManager,
	catchup *events.Catchup,
	db *database.Client,
	mcpHealth *mcp.HealthMonitor,
	registry *mcp.ToolRegistry,
	cfg *config.Config,
	logger *slog.Logger,
) *Server {
	return &Server{
		queue:     queueSvc,
		pool:      pool,
		streams:   streams,
		catchup:   catchup,
		db:        db,
		mcpHealth: mcpHealth,
		registry:  registry,
		cfg:       cfg,
		logger:    logger.With("component", "api"),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.logger), securityHeaders())

	r.GET("/health", s.handleHealth)

	r.POST("/copilot-agent", func(c *gin.Context) {
		s.handleQuery(c, config.QueueAgent)
	})
	r.GET("/job/:id/status", s.handleJobStatus)
	r.POST("/job/:id/abort", s.handleJobAbort)
	r.GET("/job/:id/stream", s.handleJobStream)

	// RAG mirrors the agent shape: one retrieval call, no planning loop.
	rag := r.Group("/rag")
	rag.POST("/query", func(c *gin.Context) {
		s.handleQuery(c, config.QueueRag)
	})
	rag.GET("/job/:id/status", s.handleJobStatus)
	rag.POST("/job/:id/abort", s.handleJobAbort)
	rag.GET("/job/:id/stream", s.handleJobStream)

	return r
}
