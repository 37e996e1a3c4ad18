// Package mcp provides the client infrastructure for the federated BV-BRC
// MCP servers: session management, tool discovery, and the execution engine
// with pagination and batch streaming.
package mcp

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/cucinellclark/bvbrc-copilot/pkg/config"
	"github.com/cucinellclark/bvbrc-copilot/pkg/version"
)

// Client manages MCP SDK sessions for multiple servers. Each Client
// instance is scoped to one job (carrying that job's bearer token) or to a
// service-level concern such as discovery.
// Thread-safe: sessions may be touched from the worker and from the
// progress dispatch goroutine.
type Client struct {
	registry *config.MCPServerRegistry

	// authToken is the job's bearer token, forwarded only to servers with
	// send_auth enabled. Empty for service-level clients.
	authToken string

	mu            sync.RWMutex
	sessions      map[string]*mcpsdk.ClientSession // serverKey → session
	clients       map[string]*mcpsdk.Client        // serverKey → client
	failedServers map[string]string                // serverKey → error message

	// Per-server mutex for session recreation to prevent thundering herd
	reinitMu sync.Map // serverKey → *sync.Mutex

	// Progress notification dispatch, keyed by progress token.
	progressMu       sync.RWMutex
	progressHandlers map[string]func(*mcpsdk.ProgressNotificationParams)

	logger *slog.Logger
}

func newClient(registry *config.MCPServerRegistry, authToken string) *Client {
	return &Client{
		registry:         registry,
		authToken:        authToken,
		sessions:         make(map[string]*mcpsdk.ClientSession),
		clients:          make(map[string]*mcpsdk.Client),
		failedServers:    make(map[string]string),
		progressHandlers: make(map[string]func(*mcpsdk.ProgressNotificationParams)),
		logger:           slog.Default(),
	}
}

// Initialize connects to all given servers. Servers that fail to connect
// are recorded in failedServers; the caller decides whether that is fatal.
// Discovery tolerates partial failure, per-job clients usually do too.
func (c *Client) Initialize(ctx context.Context, serverKeys []string) error {
	for _, serverKey := range serverKeys {
		if err := c.InitializeServer(ctx, serverKey); err != nil {
			c.mu.Lock()
			c.failedServers[serverKey] = err.Error()
			c.mu.Unlock()
			c.logger.Warn("MCP server failed to initialize",
				"server", serverKey, "error", err)
		}
	}
	return nil
}

// InitializeServer connects to a single MCP server. Returns nil if already
// connected. Uses a per-server mutex so concurrent callers never race the
// same handshake.
func (c *Client) InitializeServer(ctx context.Context, serverKey string) error {
	muI, _ := c.reinitMu.LoadOrStore(serverKey, &sync.Mutex{})
	mu := muI.(*sync.Mutex)
	mu.Lock()
	defer mu.Unlock()

	return c.initializeServerLocked(ctx, serverKey)
}

// initializeServerLocked performs the actual handshake.
// Caller must hold the per-server reinitMu lock.
func (c *Client) initializeServerLocked(ctx context.Context, serverKey string) error {
	c.mu.RLock()
	if _, exists := c.sessions[serverKey]; exists {
		c.mu.RUnlock()
		return nil
	}
	c.mu.RUnlock()

	serverCfg, err := c.registry.Get(serverKey)
	if err != nil {
		return fmt.Errorf("server %q not found in registry: %w", serverKey, err)
	}

	transport, err := createTransport(serverCfg, c.authToken)
	if err != nil {
		return fmt.Errorf("failed to create transport for %q: %w", serverKey, err)
	}

	initCtx, cancel := context.WithTimeout(ctx, MCPInitTimeout)
	defer cancel()

	client := mcpsdk.NewClient(&mcpsdk.Implementation{
		Name:    version.AppName,
		Version: version.GitCommit,
	}, &mcpsdk.ClientOptions{
		ProgressNotificationHandler: c.dispatchProgress,
	})

	session, err := client.Connect(initCtx, transport, nil)
	if err != nil {
		if closer, ok := transport.(io.Closer); ok {
			_ = closer.Close()
		}
		return fmt.Errorf("failed to connect to %q: %w", serverKey, err)
	}

	c.mu.Lock()
	c.sessions[serverKey] = session
	c.clients[serverKey] = client
	delete(c.failedServers, serverKey)
	c.mu.Unlock()

	c.logger.Info("MCP server connected", "server", serverKey)
	return nil
}

// ListTools returns the tool catalog from a specific server.
func (c *Client) ListTools(ctx context.Context, serverKey string) ([]*mcpsdk.Tool, error) {
	session, err := c.session(ctx, serverKey)
	if err != nil {
		return nil, err
	}

	opCtx, cancel := context.WithTimeout(ctx, c.operationTimeout(serverKey, false))
	defer cancel()

	result, err := session.ListTools(opCtx, nil)
	if err != nil {
		return nil, fmt.Errorf("list tools from %q: %w", serverKey, err)
	}
	return result.Tools, nil
}

// CallTool executes a tool call on the specified server. Transport failures
// get at most one retry after a jittered backoff, recreating the session
// when the error classification calls for it. Session errors clear the
// cached session before returning so the next attempt performs a fresh
// handshake.
func (c *Client) CallTool(ctx context.Context, serverKey, toolName string, args map[string]any) (*mcpsdk.CallToolResult, error) {
	params := &mcpsdk.CallToolParams{
		Name:      toolName,
		Arguments: args,
	}

	result, err := c.callToolOnce(ctx, serverKey, params, false)
	if err == nil {
		return result, nil
	}
	if IsSessionError(err) {
		c.ClearSession(serverKey)
		return nil, fmt.Errorf("%w on %q: %w", ErrSessionInvalidated, serverKey, err)
	}

	action := ClassifyError(err)
	if action == NoRetry {
		return nil, err
	}

	c.logger.Info("MCP call failed, retrying",
		"server", serverKey, "tool", toolName, "error", err)

	backoff := RetryBackoffMin + time.Duration(rand.Int64N(int64(RetryBackoffMax-RetryBackoffMin)))
	select {
	case <-time.After(backoff):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if action == RetryNewSession {
		if err := c.recreateSession(ctx, serverKey); err != nil {
			return nil, fmt.Errorf("session recreation failed for %q: %w", serverKey, err)
		}
	}

	result, err = c.callToolOnce(ctx, serverKey, params, false)
	if err != nil {
		return nil, fmt.Errorf("retry failed for %q.%s: %w", serverKey, toolName, err)
	}
	return result, nil
}

// CallToolStreaming executes a tool call with a progress token attached so
// the server can stream batch records as progress notifications. onProgress
// is invoked for every notification carrying this call's token. Streaming
// calls are never retried.
func (c *Client) CallToolStreaming(ctx context.Context, serverKey, toolName string, args map[string]any, onProgress func(*mcpsdk.ProgressNotificationParams)) (*mcpsdk.CallToolResult, error) {
	token := uuid.NewString()

	c.progressMu.Lock()
	c.progressHandlers[token] = onProgress
	c.progressMu.Unlock()
	defer func() {
		c.progressMu.Lock()
		delete(c.progressHandlers, token)
		c.progressMu.Unlock()
	}()

	params := &mcpsdk.CallToolParams{
		Name:      toolName,
		Arguments: args,
		Meta:      mcpsdk.Meta{"progressToken": token},
	}

	result, err := c.callToolOnce(ctx, serverKey, params, true)
	if err != nil && IsSessionError(err) {
		c.ClearSession(serverKey)
		return nil, fmt.Errorf("%w on %q: %w", ErrSessionInvalidated, serverKey, err)
	}
	return result, err
}

func (c *Client) callToolOnce(ctx context.Context, serverKey string, params *mcpsdk.CallToolParams, streaming bool) (*mcpsdk.CallToolResult, error) {
	session, err := c.session(ctx, serverKey)
	if err != nil {
		return nil, err
	}

	opCtx, cancel := context.WithTimeout(ctx, c.operationTimeout(serverKey, streaming))
	defer cancel()

	return session.CallTool(opCtx, params)
}

// session returns the cached session for a server, initializing it lazily.
func (c *Client) session(ctx context.Context, serverKey string) (*mcpsdk.ClientSession, error) {
	c.mu.RLock()
	session, exists := c.sessions[serverKey]
	c.mu.RUnlock()
	if exists {
		return session, nil
	}

	if err := c.InitializeServer(ctx, serverKey); err != nil {
		return nil, err
	}

	c.mu.RLock()
	session, exists = c.sessions[serverKey]
	c.mu.RUnlock()
	if !exists {
		return nil, fmt.Errorf("no session for server %q", serverKey)
	}
	return session, nil
}

// operationTimeout resolves the per-call deadline: the server's configured
// soft timeout or the default, 10x for streaming calls.
func (c *Client) operationTimeout(serverKey string, streaming bool) time.Duration {
	timeout := OperationTimeout
	if serverCfg, err := c.registry.Get(serverKey); err == nil && serverCfg.Transport.Timeout > 0 {
		timeout = serverCfg.Transport.Timeout
	}
	if streaming {
		timeout *= StreamingTimeoutFactor
	}
	return timeout
}

// dispatchProgress routes a server progress notification to the handler
// registered for its token. Unmatched notifications are dropped.
func (c *Client) dispatchProgress(_ context.Context, req *mcpsdk.ProgressNotificationClientRequest) {
	params := req.Params
	if params == nil {
		return
	}
	token, ok := params.ProgressToken.(string)
	if !ok {
		return
	}

	c.progressMu.RLock()
	handler := c.progressHandlers[token]
	c.progressMu.RUnlock()
	if handler != nil {
		handler(params)
	}
}

// ClearSession drops the cached session for a server. The executor calls
// this on any session-classified error; the next call performs a fresh
// handshake.
func (c *Client) ClearSession(serverKey string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if session, exists := c.sessions[serverKey]; exists {
		_ = session.Close()
		delete(c.sessions, serverKey)
		delete(c.clients, serverKey)
	}
}

// recreateSession tears down and recreates the session for a server.
// Uses the per-server mutex to prevent concurrent recreation.
func (c *Client) recreateSession(ctx context.Context, serverKey string) error {
	muI, _ := c.reinitMu.LoadOrStore(serverKey, &sync.Mutex{})
	mu := muI.(*sync.Mutex)
	mu.Lock()
	defer mu.Unlock()

	c.mu.Lock()
	if session, exists := c.sessions[serverKey]; exists {
		_ = session.Close()
		delete(c.sessions, serverKey)
		delete(c.clients, serverKey)
	}
	c.mu.Unlock()

	reinitCtx, cancel := context.WithTimeout(ctx, ReinitTimeout)
	defer cancel()

	return c.initializeServerLocked(reinitCtx, serverKey)
}

// Close shuts down all sessions and transports.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var firstErr error
	for key, session := range c.sessions {
		if err := session.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close session %q: %w", key, err)
		}
	}

	c.sessions = make(map[string]*mcpsdk.ClientSession)
	c.clients = make(map[string]*mcpsdk.Client)
	c.failedServers = make(map[string]string)
	return firstErr
}

// HasSession checks if a server has an active session.
func (c *Client) HasSession(serverKey string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, exists := c.sessions[serverKey]
	return exists
}

// FailedServers returns the servers that failed to initialize.
func (c *Client) FailedServers() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make(map[string]string, len(c.failedServers))
	for k, v := range c.failedServers {
		result[k] = v
	}
	return result
}
