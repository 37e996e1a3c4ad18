package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/cucinellclark/bvbrc-copilot/pkg/config"
)

// autoProvidedParams are injected by the executor from trusted context and
// must never be set by the planner. The prompt rendering annotates them so
// the LLM leaves them alone.
var autoProvidedParams = []string{"session_id", "cancel_token", "workspace_items"}

// ToolDescriptor is an immutable record of a discovered tool.
type ToolDescriptor struct {
	ID          string         `json:"id"` // "server.tool"
	ServerKey   string         `json:"server_key"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"input_schema,omitempty"`
	Annotations map[string]any `json:"annotations,omitempty"`
}

// HasParameter reports whether the tool's input schema declares a
// top-level property with the given name.
func (d *ToolDescriptor) HasParameter(name string) bool {
	props, ok := d.InputSchema["properties"].(map[string]any)
	if !ok {
		return false
	}
	_, ok = props[name]
	return ok
}

// StreamingHint reports whether the descriptor advertises batch streaming.
func (d *ToolDescriptor) StreamingHint() bool {
	if d.Annotations == nil {
		return false
	}
	hint, _ := d.Annotations["streaming_hint"].(bool)
	return hint
}

// ToolRegistry discovers and caches tool descriptors from all configured
// MCP servers. Built once at startup; Reload re-runs discovery on manual
// refresh.
type ToolRegistry struct {
	factory *ClientFactory
	servers *config.MCPServerRegistry
	policy  *config.ToolPolicy

	mu         sync.RWMutex
	tools      map[string]*ToolDescriptor // tool id → descriptor
	failed     map[string]string          // server key → error message
	promptText string
	manifest   []byte

	logger *slog.Logger
}

// NewToolRegistry creates an empty registry. Call Discover before use.
func NewToolRegistry(factory *ClientFactory, servers *config.MCPServerRegistry, policy *config.ToolPolicy, logger *slog.Logger) *ToolRegistry {
	return &ToolRegistry{
		factory: factory,
		servers: servers,
		policy:  policy,
		tools:   make(map[string]*ToolDescriptor),
		failed:  make(map[string]string),
		logger:  logger.With("component", "tool_registry"),
	}
}

// Discover lists tools from every configured server, filters the disabled
// set, and rebuilds the manifest and prompt rendering. A server that cannot
// be reached after DiscoveryRetries attempts with exponential backoff is
// marked failed; discovery continues for the others and never aborts
// startup.
func (r *ToolRegistry) Discover(ctx context.Context) error {
	client, err := r.factory.CreateClient(ctx, r.servers.Keys(), "")
	if err != nil {
		return fmt.Errorf("failed to create discovery client: %w", err)
	}
	defer func() { _ = client.Close() }()

	tools := make(map[string]*ToolDescriptor)
	failed := make(map[string]string)

	serverKeys := r.servers.Keys()
	sort.Strings(serverKeys)
	for _, serverKey := range serverKeys {
		serverTools, err := r.discoverServer(ctx, client, serverKey)
		if err != nil {
			failed[serverKey] = err.Error()
			r.logger.Warn("MCP server discovery failed",
				"server", serverKey, "error", err)
			continue
		}

		for _, tool := range serverTools {
			desc := descriptorFromTool(serverKey, tool)
			if r.policy.IsDisabled(desc.ID) {
				r.logger.Debug("Tool disabled by policy", "tool", desc.ID)
				continue
			}
			tools[desc.ID] = desc
		}
	}

	manifest, promptText := renderArtifacts(tools)

	r.mu.Lock()
	r.tools = tools
	r.failed = failed
	r.manifest = manifest
	r.promptText = promptText
	r.mu.Unlock()

	r.logger.Info("Tool discovery complete",
		"tools", len(tools), "failed_servers", len(failed))
	return nil
}

// Reload re-runs discovery. Used on manual refresh.
func (r *ToolRegistry) Reload(ctx context.Context) error {
	return r.Discover(ctx)
}

func (r *ToolRegistry) discoverServer(ctx context.Context, client *Client, serverKey string) ([]*mcpsdk.Tool, error) {
	var lastErr error
	for attempt := 0; attempt < DiscoveryRetries; attempt++ {
		if attempt > 0 {
			backoff := DiscoveryBackoffBase << (attempt - 1)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		tools, err := client.ListTools(ctx, serverKey)
		if err == nil {
			return tools, nil
		}
		lastErr = err
		client.ClearSession(serverKey)
	}
	return nil, fmt.Errorf("discovery failed after %d attempts: %w", DiscoveryRetries, lastErr)
}

// Get returns the descriptor for a tool id. Unqualified names are scanned
// across all servers; a unique match is canonicalized and logged.
func (r *ToolRegistry) Get(toolID string) (*ToolDescriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if desc, ok := r.tools[toolID]; ok {
		return desc, nil
	}

	// Unqualified lookup: match by bare tool name across all servers.
	if !strings.Contains(toolID, ".") {
		var match *ToolDescriptor
		for _, desc := range r.tools {
			if desc.Name == toolID {
				if match != nil {
					return nil, fmt.Errorf("tool name %q is ambiguous (%s, %s)",
						toolID, match.ID, desc.ID)
				}
				match = desc
			}
		}
		if match != nil {
			r.logger.Info("Canonicalized unqualified tool name",
				"name", toolID, "tool", match.ID)
			return match, nil
		}
	}

	return nil, fmt.Errorf("unknown tool %q", toolID)
}

// All returns every discovered descriptor, sorted by id.
func (r *ToolRegistry) All() []*ToolDescriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*ToolDescriptor, 0, len(r.tools))
	for _, desc := range r.tools {
		out = append(out, desc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// PromptText returns the prompt-friendly rendering of the tool catalog.
func (r *ToolRegistry) PromptText() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.promptText
}

// Manifest returns the machine-readable JSON manifest.
func (r *ToolRegistry) Manifest() []byte {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.manifest
}

// FailedServers returns the servers that failed discovery.
func (r *ToolRegistry) FailedServers() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]string, len(r.failed))
	for k, v := range r.failed {
		out[k] = v
	}
	return out
}

// descriptorFromTool converts an SDK tool into a descriptor. The SDK's
// typed schema and annotations are flattened to generic maps through a
// JSON round trip so the executor and prompt rendering can inspect them
// uniformly.
func descriptorFromTool(serverKey string, tool *mcpsdk.Tool) *ToolDescriptor {
	desc := &ToolDescriptor{
		ID:          serverKey + "." + tool.Name,
		ServerKey:   serverKey,
		Name:        tool.Name,
		Description: tool.Description,
	}
	desc.InputSchema = flattenToMap(tool.InputSchema)

	annotations := flattenToMap(tool.Annotations)
	// Custom annotations such as streaming_hint travel in _meta.
	for k, v := range flattenToMap(tool.Meta) {
		if _, exists := annotations[k]; !exists {
			annotations[k] = v
		}
	}
	if len(annotations) > 0 {
		desc.Annotations = annotations
	}
	return desc
}

func flattenToMap(v any) map[string]any {
	if v == nil {
		return map[string]any{}
	}
	data, err := json.Marshal(v)
	if err != nil {
		return map[string]any{}
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return map[string]any{}
	}
	return m
}

// renderArtifacts builds the JSON manifest and the prompt text from the
// discovered tool set.
func renderArtifacts(tools map[string]*ToolDescriptor) (manifest []byte, promptText string) {
	ids := make([]string, 0, len(tools))
	for id := range tools {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	ordered := make([]*ToolDescriptor, len(ids))
	for i, id := range ids {
		ordered[i] = tools[id]
	}
	manifest, _ = json.MarshalIndent(ordered, "", "  ")

	var b strings.Builder
	currentServer := ""
	for _, desc := range ordered {
		if desc.ServerKey != currentServer {
			if currentServer != "" {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "## Server: %s\n", desc.ServerKey)
			currentServer = desc.ServerKey
		}
		fmt.Fprintf(&b, "- %s: %s\n", desc.ID, strings.TrimSpace(desc.Description))
		renderParameters(&b, desc)
	}
	return manifest, b.String()
}

func renderParameters(b *strings.Builder, desc *ToolDescriptor) {
	props, ok := desc.InputSchema["properties"].(map[string]any)
	if !ok || len(props) == 0 {
		return
	}
	required := map[string]bool{}
	if reqList, ok := desc.InputSchema["required"].([]any); ok {
		for _, r := range reqList {
			if name, ok := r.(string); ok {
				required[name] = true
			}
		}
	}

	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		prop, _ := props[name].(map[string]any)
		typeName, _ := prop["type"].(string)
		if typeName == "" {
			typeName = "any"
		}

		note := ""
		switch {
		case isAutoProvided(name):
			note = " (auto-provided; do not set)"
		case required[name]:
			note = " (required)"
		}
		fmt.Fprintf(b, "    %s: %s%s\n", name, typeName, note)
	}
}

func isAutoProvided(name string) bool {
	for _, p := range autoProvidedParams {
		if p == name {
			return true
		}
	}
	return false
}
