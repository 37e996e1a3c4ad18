package mcp

import (
	"context"
	"errors"
	"io"
	"net"
	"strings"
	"time"
)

// RecoveryAction determines how to handle an MCP operation failure.
type RecoveryAction int

const (
	// NoRetry: the error is not recoverable (bad request, auth failure, timeout).
	NoRetry RecoveryAction = iota
	// RetrySameSession: transient error, retry with existing session.
	RetrySameSession
	// RetryNewSession: transport failure, recreate session and retry.
	RetryNewSession
)

// Recovery configuration constants.
const (
	// ReinitTimeout is the deadline for recreating an MCP session during recovery.
	ReinitTimeout = 10 * time.Second

	// OperationTimeout is the default per-call deadline for CallTool and
	// ListTools when a server does not configure its own soft timeout.
	OperationTimeout = 120 * time.Second

	// StreamingTimeoutFactor multiplies the soft timeout for streaming calls.
	StreamingTimeoutFactor = 10

	// RetryBackoffMin is the minimum jittered backoff between retries.
	RetryBackoffMin = 250 * time.Millisecond

	// RetryBackoffMax is the maximum jittered backoff between retries.
	RetryBackoffMax = 750 * time.Millisecond

	// MCPInitTimeout is the per-server initialization timeout (transport + handshake).
	MCPInitTimeout = 30 * time.Second

	// DiscoveryRetries is the number of discovery attempts per server before
	// it is marked failed.
	DiscoveryRetries = 3

	// DiscoveryBackoffBase is the base of the exponential discovery backoff.
	DiscoveryBackoffBase = time.Second
)

// ErrSessionInvalidated marks a call that failed because the server
// rejected the cached session. The client has already cleared it, so the
// next call to the same server performs a fresh handshake; callers should
// treat this as retryable rather than terminal.
var ErrSessionInvalidated = errors.New("mcp session invalidated")

// IsSessionError reports whether an error indicates a stale or invalid MCP
// session. The executor clears the server's cached session on these so the
// next call performs a fresh handshake.
func IsSessionError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "session")
}

// ClassifyError determines the recovery action for an MCP operation error.
func ClassifyError(err error) RecoveryAction {
	if err == nil {
		return NoRetry
	}

	// Context errors: no retry
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return NoRetry
	}

	// Network errors: check timeout vs connection
	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return NoRetry // Timeout: don't retry (could be slow server)
		}
		return RetryNewSession
	}

	if isConnectionError(err) {
		return RetryNewSession
	}

	// MCP JSON-RPC errors: generally not retryable
	if isMCPProtocolError(err) {
		return NoRetry
	}

	// Default: no retry (unknown errors are not safe to retry)
	return NoRetry
}

// isConnectionError detects connection-level transport failures.
func isConnectionError(err error) bool {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}

	msg := strings.ToLower(err.Error())
	connectionErrors := []string{
		"connection refused",
		"connection reset",
		"broken pipe",
		"connection closed",
		"no such host",
	}
	for _, e := range connectionErrors {
		if strings.Contains(msg, e) {
			return true
		}
	}
	return false
}

// isMCPProtocolError detects MCP JSON-RPC protocol errors from the SDK.
func isMCPProtocolError(err error) bool {
	msg := strings.ToLower(err.Error())
	protocolIndicators := []string{
		"method not found",
		"invalid params",
		"invalid request",
		"parse error",
	}
	for _, indicator := range protocolIndicators {
		if strings.Contains(msg, indicator) {
			return true
		}
	}
	return false
}
