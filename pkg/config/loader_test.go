package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o600))
	return dir
}

const minimalYAML = `
mcp_servers:
  bvbrc_server:
    transport:
      type: http
      url: https://mcp.bv-brc.org/mcp
    send_auth: true
`

func TestInitialize_DefaultsApplied(t *testing.T) {
	dir := writeConfig(t, minimalYAML)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Agent.MaxIterations)
	assert.True(t, cfg.Queue.Enabled)
	assert.Equal(t, 10*time.Minute, cfg.Queue.JobTimeout)
	assert.Equal(t, []string{"bvbrc_server"}, cfg.MCPServerRegistry.Keys())

	srv, err := cfg.MCPServerRegistry.Get("bvbrc_server")
	require.NoError(t, err)
	assert.True(t, srv.SendAuth)
}

func TestInitialize_UserValuesOverrideDefaults(t *testing.T) {
	dir := writeConfig(t, minimalYAML+`
agent:
  max_iterations: 7
queue:
  max_retries: 5
  worker_concurrency:
    agent: 2
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Agent.MaxIterations)
	assert.Equal(t, 5, cfg.Queue.MaxRetries)
	assert.Equal(t, 2, cfg.Queue.Workers(QueueAgent))
	// Unset values keep their defaults.
	assert.Equal(t, 2*time.Second, cfg.Queue.RetryBackoff)
}

func TestInitialize_EnvExpansionAndSecrets(t *testing.T) {
	t.Setenv("COPILOT_TEST_MCP_URL", "https://internal.example.org/mcp")
	t.Setenv("COPILOT_TEST_TOKEN", "s3cret")
	t.Setenv("COPILOT_TEST_LLM_KEY", "llm-key")

	dir := writeConfig(t, `
mcp_servers:
  internal_server:
    transport:
      type: http
      url: "{{.COPILOT_TEST_MCP_URL}}"
    static_auth_env: COPILOT_TEST_TOKEN
llm:
  base_url: https://gateway.example.org/v1
  api_key_env: COPILOT_TEST_LLM_KEY
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	srv, err := cfg.MCPServerRegistry.Get("internal_server")
	require.NoError(t, err)
	assert.Equal(t, "https://internal.example.org/mcp", srv.Transport.URL)
	assert.Equal(t, "s3cret", srv.StaticAuth)
	assert.Equal(t, "llm-key", cfg.LLM.APIKey)
}

func TestInitialize_MissingFile(t *testing.T) {
	_, err := Initialize(context.Background(), t.TempDir())
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestInitialize_InvalidServerURL(t *testing.T) {
	dir := writeConfig(t, `
mcp_servers:
  broken:
    transport:
      type: http
      url: "not a url"
`)

	_, err := Initialize(context.Background(), dir)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestInitialize_RejectsBadIterations(t *testing.T) {
	dir := writeConfig(t, minimalYAML+`
agent:
  max_iterations: 0
`)

	_, err := Initialize(context.Background(), dir)
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.ErrorContains(t, err, "agent.max_iterations")
}

func TestToolPolicy_QualifiedAndBareMatching(t *testing.T) {
	p := &ToolPolicy{
		FinalizeTools:         []string{"bvbrc_server.run_pipeline"},
		RagTools:              []string{"rag_search"},
		DuplicateTrackedTools: []string{"bvbrc_search_data"},
	}

	assert.True(t, p.IsFinalize("bvbrc_server.run_pipeline"))
	assert.False(t, p.IsFinalize("other_server.run_pipeline"))

	// Bare entries match the tool name on any server.
	assert.True(t, p.IsRag("bvbrc_server.rag_search"))
	assert.True(t, p.IsRag("other_server.rag_search"))
	assert.True(t, p.IsDuplicateTracked("bvbrc_server.bvbrc_search_data"))

	assert.False(t, p.IsDisabled("bvbrc_server.rag_search"))
}

func TestToolPolicy_PromptEnhancement(t *testing.T) {
	p := &ToolPolicy{
		ToolPromptEnhancements: map[string]string{
			"bvbrc_server.bvbrc_search_data": "cite genome ids",
			"rag_search":                     "quote sources",
		},
	}

	v, ok := p.PromptEnhancement("bvbrc_server.bvbrc_search_data")
	require.True(t, ok)
	assert.Equal(t, "cite genome ids", v)

	v, ok = p.PromptEnhancement("any_server.rag_search")
	require.True(t, ok)
	assert.Equal(t, "quote sources", v)

	_, ok = p.PromptEnhancement("any_server.unknown")
	assert.False(t, ok)
}
