package config

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"text/template"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the main configuration file expected in the config dir.
const ConfigFileName = "copilot.yaml"

// Initialize loads, validates, and returns ready-to-use configuration.
//
// Steps performed:
//  1. Read copilot.yaml from configDir
//  2. Expand environment variables ({{.VAR}} template syntax)
//  3. Parse YAML into structs
//  4. Merge user values over built-in defaults
//  5. Resolve env-referenced secrets (static server tokens, LLM key)
//  6. Build in-memory registries
//  7. Validate
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	path := filepath.Join(configDir, ConfigFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var raw copilotYAML
	if err := yaml.Unmarshal(expandEnv(data), &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidYAML, path, err)
	}

	cfg, err := build(&raw)
	if err != nil {
		return nil, err
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	log.Info("Configuration loaded",
		"mcp_servers", len(cfg.MCPServerRegistry.Keys()),
		"queue_enabled", cfg.Queue.Enabled)
	return cfg, nil
}

// build merges parsed YAML over defaults and resolves secrets.
func build(raw *copilotYAML) (*Config, error) {
	agent := DefaultAgentConfig()
	if raw.Agent != nil {
		if err := mergo.Merge(agent, raw.Agent, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merging agent config: %w", err)
		}
	}

	queue := DefaultQueueConfig()
	if raw.Queue != nil {
		if err := mergo.Merge(queue, raw.Queue, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merging queue config: %w", err)
		}
	}

	fm := DefaultFileManagerConfig()
	if raw.FileManager != nil {
		if err := mergo.Merge(fm, raw.FileManager, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merging file manager config: %w", err)
		}
	}

	tools := raw.Tools
	if tools == nil {
		tools = &ToolPolicy{}
	}

	llm := raw.LLM
	if llm == nil {
		llm = &LLMGatewayConfig{}
	}
	if llm.APIKeyEnv != "" {
		llm.APIKey = os.Getenv(llm.APIKeyEnv)
	}

	servers := raw.MCPServers
	if servers == nil {
		servers = map[string]*MCPServerConfig{}
	}
	for key, srv := range servers {
		if srv == nil {
			return nil, validationErr("mcp_servers."+key, ErrMissingRequiredField)
		}
		if srv.StaticAuthEnv != "" {
			srv.StaticAuth = os.Getenv(srv.StaticAuthEnv)
		}
	}

	return &Config{
		MCPServerRegistry: NewMCPServerRegistry(servers),
		Tools:             tools,
		Agent:             agent,
		Queue:             queue,
		FileManager:       fm,
		LLM:               llm,
	}, nil
}

// expandEnv expands environment variables in YAML content using Go template
// {{.VAR}} syntax. Plain $ characters (regex patterns, passwords) pass
// through untouched. Missing variables expand to empty string; validation
// catches required fields that end up empty.
func expandEnv(data []byte) []byte {
	tmpl, err := template.New("config").Option("missingkey=zero").Parse(string(data))
	if err != nil {
		return data
	}

	envMap := make(map[string]string)
	for _, env := range os.Environ() {
		if idx := bytes.IndexByte([]byte(env), '='); idx > 0 {
			envMap[env[:idx]] = env[idx+1:]
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, envMap); err != nil {
		return data
	}
	return buf.Bytes()
}
