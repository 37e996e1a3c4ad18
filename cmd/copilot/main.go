// BV-BRC Copilot server: HTTP/SSE API, durable job queue workers, and the
// agent orchestration core.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/cucinellclark/bvbrc-copilot/pkg/agent"
	"github.com/cucinellclark/bvbrc-copilot/pkg/api"
	"github.com/cucinellclark/bvbrc-copilot/pkg/config"
	"github.com/cucinellclark/bvbrc-copilot/pkg/database"
	"github.com/cucinellclark/bvbrc-copilot/pkg/events"
	"github.com/cucinellclark/bvbrc-copilot/pkg/filestore"
	"github.com/cucinellclark/bvbrc-copilot/pkg/llm"
	"github.com/cucinellclark/bvbrc-copilot/pkg/mcp"
	"github.com/cucinellclark/bvbrc-copilot/pkg/memory"
	"github.com/cucinellclark/bvbrc-copilot/pkg/queue"
	"github.com/cucinellclark/bvbrc-copilot/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if getEnv("LOG_LEVEL", "") == "debug" {
		level = slog.LevelDebug
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	logger := newLogger()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		logger.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	logger.Info("Starting copilot server",
		"version", version.Full(),
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration.
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		logger.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database (runs migrations).
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		logger.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logger.Error("Error closing database client", "error", err)
		}
	}()
	logger.Info("Connected to PostgreSQL database")

	// 3. Reclaim jobs this pod was running before a restart.
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		logger.Error("Failed to cleanup startup orphans", "error", err)
	}

	// 4. LLM gateway.
	llmClient := llm.NewGatewayClient(*cfg.LLM, logger)
	logger.Info("LLM gateway client initialized", "base_url", cfg.LLM.BaseURL)

	// 5. File store and session memory.
	uploader := filestore.NewWorkspaceUploader(cfg.FileManager, logger)
	files := filestore.NewStore(cfg.FileManager, dbClient.Client, uploader, logger)
	mem := memory.NewService(dbClient.Client, logger)

	// 6. MCP infrastructure: client factory, tool discovery, health probes.
	mcpFactory := mcp.NewClientFactory(cfg.MCPServerRegistry)
	registry := mcp.NewToolRegistry(mcpFactory, cfg.MCPServerRegistry, cfg.Tools, logger)
	if err := registry.Discover(ctx); err != nil {
		logger.Error("Tool discovery failed", "error", err)
		os.Exit(1)
	}
	if failed := registry.FailedServers(); len(failed) > 0 {
		logger.Warn("Some MCP servers failed discovery", "failed_servers", failed)
	}
	logger.Info("Tool registry ready", "tools", len(registry.All()))

	var healthMonitor *mcp.HealthMonitor
	if len(cfg.MCPServerRegistry.Keys()) > 0 {
		healthMonitor = mcp.NewHealthMonitor(mcpFactory, cfg.MCPServerRegistry, logger)
		healthMonitor.Start(ctx)
		defer healthMonitor.Stop()
	}

	// 7. Event infrastructure: publisher, stream manager, NOTIFY listener.
	publisher := events.NewPublisher(dbClient.DB(), logger)
	streams := events.NewStreamManager(logger)
	listener := events.NewNotifyListener(dbClient.DSN(), streams, logger)
	if err := listener.Start(ctx); err != nil {
		logger.Error("Failed to start NOTIFY listener", "error", err)
		os.Exit(1)
	}
	defer listener.Stop(ctx)
	catchup := events.NewCatchup(dbClient.DB(), logger)
	logger.Info("Event infrastructure initialized")

	// 8. Orchestrator, queue service, and worker pool. The executor map is
	// filled after the service exists (executors enqueue follow-up jobs)
	// and before the pool starts.
	orchestrator := agent.NewOrchestrator(
		dbClient.Client, llmClient, registry, mcpFactory,
		files, mem, cfg.Tools, cfg.Agent, logger)

	executors := map[config.QueueClass]queue.JobExecutor{}
	pool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, executors, publisher)
	queueSvc := queue.NewService(dbClient.Client, cfg.Queue, cfg.MCPServerRegistry, publisher, pool, logger)

	executors[config.QueueAgent] = queue.NewAgentExecutor(orchestrator, dbClient.Client, queueSvc, cfg.Agent, logger)
	executors[config.QueueRag] = queue.NewRagExecutor(orchestrator, logger)
	executors[config.QueueSummary] = queue.NewSummaryExecutor(orchestrator, logger)
	executors[config.QueueFacts] = queue.NewFactsExecutor(orchestrator, logger)

	if err := pool.Start(ctx); err != nil {
		logger.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 9. HTTP server.
	server := api.NewServer(queueSvc, pool, streams, catchup, dbClient, healthMonitor, registry, cfg, logger)
	httpServer := &http.Server{
		Addr:    ":" + httpPort,
		Handler: server.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// 10. Wait for shutdown signal or server error.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		logger.Info("Shutdown signal received", "signal", sig.String())
	case err := <-errCh:
		logger.Error("HTTP server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown: stop accepting requests, then drain workers.
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("HTTP server shutdown incomplete", "error", err)
	}

	done := make(chan struct{})
	go func() {
		pool.Stop()
		close(done)
	}()
	select {
	case <-done:
		logger.Info("Worker pool stopped gracefully")
	case <-time.After(cfg.Queue.GracefulShutdownTimeout):
		logger.Warn("Worker pool shutdown timeout exceeded")
	}

	logger.Info("Shutdown complete")
}
