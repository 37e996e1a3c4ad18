package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cucinellclark/bvbrc-copilot/pkg/config"
)

// Health check configuration constants.
const (
	// MCPHealthPingTimeout is the per-server health probe timeout.
	MCPHealthPingTimeout = 5 * time.Second

	// MCPHealthInterval is the health check loop interval.
	MCPHealthInterval = 30 * time.Second
)

// HealthStatus captures the health check result for a single MCP server.
type HealthStatus struct {
	ServerKey string    `json:"server_key"`
	Healthy   bool      `json:"healthy"`
	LastCheck time.Time `json:"last_check"`
	Error     string    `json:"error,omitempty"`
	ToolCount int       `json:"tool_count"`
}

// HealthMonitor periodically probes each MCP server with a tools/list call
// using a dedicated long-lived client. Results feed the health endpoint.
type HealthMonitor struct {
	factory *ClientFactory
	servers *config.MCPServerRegistry

	checkInterval time.Duration
	pingTimeout   time.Duration

	client   *Client
	clientMu sync.Mutex

	statuses   map[string]*HealthStatus
	statusesMu sync.RWMutex

	cancel context.CancelFunc
	done   chan struct{}
	logger *slog.Logger
}

// NewHealthMonitor creates a new health monitor.
func NewHealthMonitor(factory *ClientFactory, servers *config.MCPServerRegistry, logger *slog.Logger) *HealthMonitor {
	return &HealthMonitor{
		factory:       factory,
		servers:       servers,
		checkInterval: MCPHealthInterval,
		pingTimeout:   MCPHealthPingTimeout,
		statuses:      make(map[string]*HealthStatus),
		logger:        logger.With("component", "mcp_health"),
	}
}

// Start launches the background health check loop.
// Calling Start on an already-running monitor is a no-op.
func (m *HealthMonitor) Start(ctx context.Context) {
	if m.cancel != nil {
		return
	}
	ctx, m.cancel = context.WithCancel(ctx)
	m.done = make(chan struct{})

	m.clientMu.Lock()
	client, err := m.factory.CreateClient(ctx, m.servers.Keys(), "")
	if err != nil {
		m.logger.Warn("Health monitor: failed to create initial client", "error", err)
	}
	m.client = client
	m.clientMu.Unlock()

	go m.loop(ctx)
}

// Stop gracefully shuts down the health monitor.
// After Stop returns, Start may be called again.
func (m *HealthMonitor) Stop() {
	if m.cancel != nil {
		m.cancel()
	}
	if m.done != nil {
		<-m.done
	}
	m.clientMu.Lock()
	if m.client != nil {
		_ = m.client.Close()
		m.client = nil
	}
	m.clientMu.Unlock()

	m.statusesMu.Lock()
	m.statuses = make(map[string]*HealthStatus)
	m.statusesMu.Unlock()

	m.cancel = nil
	m.done = nil
}

func (m *HealthMonitor) loop(ctx context.Context) {
	defer close(m.done)

	m.ensureClient(ctx)
	m.checkAll(ctx)

	ticker := time.NewTicker(m.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.ensureClient(ctx)
			m.checkAll(ctx)
		}
	}
}

// ensureClient recreates the health client after transient factory
// failures without requiring a restart.
func (m *HealthMonitor) ensureClient(ctx context.Context) {
	m.clientMu.Lock()
	defer m.clientMu.Unlock()

	if m.client != nil {
		return
	}
	client, err := m.factory.CreateClient(ctx, m.servers.Keys(), "")
	if err != nil {
		m.logger.Warn("Health monitor: failed to recreate client", "error", err)
		return
	}
	m.client = client
	m.logger.Info("Health monitor: client recovered")
}

func (m *HealthMonitor) checkAll(ctx context.Context) {
	for _, serverKey := range m.servers.Keys() {
		m.checkServer(ctx, serverKey)
	}
}

func (m *HealthMonitor) checkServer(ctx context.Context, serverKey string) {
	m.clientMu.Lock()
	client := m.client
	m.clientMu.Unlock()

	if client == nil {
		m.setStatus(serverKey, false, "health client not initialized", 0)
		return
	}

	checkCtx, cancel := context.WithTimeout(ctx, m.pingTimeout)
	defer cancel()

	tools, err := client.ListTools(checkCtx, serverKey)
	if err != nil {
		// Probe again on a fresh session before declaring the server down.
		client.ClearSession(serverKey)

		retryCtx, retryCancel := context.WithTimeout(ctx, m.pingTimeout)
		defer retryCancel()

		tools, err = client.ListTools(retryCtx, serverKey)
		if err != nil {
			m.setStatus(serverKey, false, fmt.Sprintf("health check failed: %s", err.Error()), 0)
			return
		}
	}

	m.setStatus(serverKey, true, "", len(tools))
}

func (m *HealthMonitor) setStatus(serverKey string, healthy bool, errMsg string, toolCount int) {
	m.statusesMu.Lock()
	defer m.statusesMu.Unlock()
	m.statuses[serverKey] = &HealthStatus{
		ServerKey: serverKey,
		Healthy:   healthy,
		LastCheck: time.Now(),
		Error:     errMsg,
		ToolCount: toolCount,
	}
}

// GetStatuses returns the current health status of all monitored servers.
func (m *HealthMonitor) GetStatuses() map[string]*HealthStatus {
	m.statusesMu.RLock()
	defer m.statusesMu.RUnlock()
	result := make(map[string]*HealthStatus, len(m.statuses))
	for k, v := range m.statuses {
		cp := *v
		result[k] = &cp
	}
	return result
}

// IsHealthy returns true if all monitored servers are healthy.
// Returns false before the first check completes.
func (m *HealthMonitor) IsHealthy() bool {
	m.statusesMu.RLock()
	defer m.statusesMu.RUnlock()
	if len(m.statuses) == 0 {
		return false
	}
	for _, s := range m.statuses {
		if !s.Healthy {
			return false
		}
	}
	return true
}
