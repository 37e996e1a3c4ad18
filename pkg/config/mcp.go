package config

import (
	"fmt"
	"sync"
	"time"
)

// MCPServerConfig defines one federated MCP server.
type MCPServerConfig struct {
	// Transport configuration (required). All BV-BRC MCP servers speak
	// streamable HTTP (JSON-RPC with SSE-wrapped responses).
	Transport TransportConfig `yaml:"transport"`

	// SendAuth controls whether the per-job bearer token is forwarded to
	// this server. Servers not on the allowlist never see user tokens.
	SendAuth bool `yaml:"send_auth,omitempty"`

	// StaticAuthEnv names an env var holding a static service token for
	// servers that require auth independent of the requesting user.
	StaticAuthEnv string `yaml:"static_auth_env,omitempty"`

	// StaticAuth is the resolved static token (populated by the loader).
	StaticAuth string `yaml:"-"`

	// CancelURL is an optional route accepting a cancel token so the
	// server can stop long-running work mid-pagination. Best-effort.
	CancelURL string `yaml:"cancel_url,omitempty"`
}

// TransportConfig describes how to reach an MCP server.
type TransportConfig struct {
	URL string `yaml:"url"`

	// Timeout is the per-RPC soft timeout in seconds. Zero means the
	// global tool execution timeout applies. Streaming calls get 10x.
	Timeout time.Duration `yaml:"timeout,omitempty"`

	// VerifySSL defaults to true; set false only for internal dev servers.
	VerifySSL *bool `yaml:"verify_ssl,omitempty"`
}

// MCPServerRegistry stores MCP server configurations with thread-safe access.
type MCPServerRegistry struct {
	servers map[string]*MCPServerConfig
	mu      sync.RWMutex
}

// NewMCPServerRegistry creates a new MCP server registry.
func NewMCPServerRegistry(servers map[string]*MCPServerConfig) *MCPServerRegistry {
	return &MCPServerRegistry{servers: servers}
}

// Get retrieves an MCP server configuration by key.
func (r *MCPServerRegistry) Get(serverKey string) (*MCPServerConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	server, exists := r.servers[serverKey]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrMCPServerNotFound, serverKey)
	}
	return server, nil
}

// Has checks if an MCP server exists in the registry.
func (r *MCPServerRegistry) Has(serverKey string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.servers[serverKey]
	return exists
}

// All returns a copy of the server map.
func (r *MCPServerRegistry) All() map[string]*MCPServerConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]*MCPServerConfig, len(r.servers))
	for k, v := range r.servers {
		out[k] = v
	}
	return out
}

// Keys returns all configured server keys.
func (r *MCPServerRegistry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.servers))
	for k := range r.servers {
		keys = append(keys, k)
	}
	return keys
}
