package mcp

import (
	"context"

	"github.com/cucinellclark/bvbrc-copilot/pkg/config"
)

// ClientFactory creates Client instances. Per-job clients carry the job's
// bearer token so auth-allowlisted servers see the requesting user.
type ClientFactory struct {
	registry *config.MCPServerRegistry
}

// NewClientFactory creates a new factory.
func NewClientFactory(registry *config.MCPServerRegistry) *ClientFactory {
	return &ClientFactory{registry: registry}
}

// CreateClient creates a Client connected to the specified servers.
// authToken may be empty for service-level clients (discovery, health).
// The caller is responsible for calling Close() when done.
func (f *ClientFactory) CreateClient(ctx context.Context, serverKeys []string, authToken string) (*Client, error) {
	client := newClient(f.registry, authToken)
	if err := client.Initialize(ctx, serverKeys); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
