// Package config loads and validates the copilot service configuration.
//
// Configuration comes from copilot.yaml in the config directory, with
// environment variables expanded via {{.VAR}} template syntax and user
// values merged over built-in defaults.
package config

// Config is the fully loaded, validated service configuration.
type Config struct {
	// MCPServerRegistry holds the federated MCP server definitions.
	MCPServerRegistry *MCPServerRegistry

	// Tools is the tool capability policy (finalize/replayable/rag/...).
	Tools *ToolPolicy

	// Agent tunes the planning loop.
	Agent *AgentConfig

	// Queue tunes the durable job queue.
	Queue *QueueConfig

	// FileManager controls result materialization.
	FileManager *FileManagerConfig

	// LLM names the OpenAI-compatible gateway.
	LLM *LLMGatewayConfig
}

// copilotYAML mirrors the copilot.yaml file structure.
type copilotYAML struct {
	MCPServers  map[string]*MCPServerConfig `yaml:"mcp_servers"`
	Tools       *ToolPolicy                 `yaml:"tools"`
	Agent       *AgentConfig                `yaml:"agent"`
	Queue       *QueueConfig                `yaml:"queue"`
	FileManager *FileManagerConfig          `yaml:"file_manager"`
	LLM         *LLMGatewayConfig           `yaml:"llm"`
}

// LLMGatewayConfig points at the OpenAI-compatible model gateway.
type LLMGatewayConfig struct {
	BaseURL   string `yaml:"base_url"`
	APIKeyEnv string `yaml:"api_key_env,omitempty"`

	// APIKey is the resolved key (populated by the loader).
	APIKey string `yaml:"-"`
}

// AllMCPServerKeys returns the configured MCP server keys.
func (c *Config) AllMCPServerKeys() []string {
	return c.MCPServerRegistry.Keys()
}
