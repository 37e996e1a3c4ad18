package config

import (
	"fmt"
	"net/url"
)

// validate checks the assembled configuration for internal consistency.
// Returns the first error found, wrapped with the offending field path.
func validate(cfg *Config) error {
	for _, key := range cfg.MCPServerRegistry.Keys() {
		srv, _ := cfg.MCPServerRegistry.Get(key)
		field := "mcp_servers." + key + ".transport.url"
		if srv.Transport.URL == "" {
			return validationErr(field, ErrMissingRequiredField)
		}
		u, err := url.Parse(srv.Transport.URL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return validationErr(field, fmt.Errorf("%w: %q", ErrInvalidValue, srv.Transport.URL))
		}
	}

	if cfg.Agent.MaxIterations < 1 {
		return validationErr("agent.max_iterations",
			fmt.Errorf("%w: must be >= 1", ErrInvalidValue))
	}
	if cfg.Agent.FinalResponseToolChars < 1000 {
		return validationErr("agent.final_response_tool_chars",
			fmt.Errorf("%w: must be >= 1000", ErrInvalidValue))
	}

	if cfg.Queue.MaxRetries < 0 {
		return validationErr("queue.max_retries",
			fmt.Errorf("%w: must be >= 0", ErrInvalidValue))
	}
	if cfg.Queue.JobTimeout <= 0 {
		return validationErr("queue.job_timeout",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	for class, n := range cfg.Queue.WorkerConcurrency {
		switch class {
		case QueueAgent, QueueRag, QueueSummary, QueueFacts:
		default:
			return validationErr("queue.worker_concurrency",
				fmt.Errorf("%w: unknown queue class %q", ErrInvalidValue, class))
		}
		if n < 0 {
			return validationErr("queue.worker_concurrency."+string(class),
				fmt.Errorf("%w: must be >= 0", ErrInvalidValue))
		}
	}

	if cfg.FileManager.BaseDir == "" {
		return validationErr("file_manager.base_dir", ErrMissingRequiredField)
	}
	if cfg.FileManager.MaxAccumulatePages < 1 {
		return validationErr("file_manager.max_accumulate_pages",
			fmt.Errorf("%w: must be >= 1", ErrInvalidValue))
	}
	if cfg.FileManager.UploadToWorkspace && cfg.FileManager.WorkspaceAPIURL == "" {
		return validationErr("file_manager.workspace_api_url",
			fmt.Errorf("%w: required when upload_to_workspace is set", ErrMissingRequiredField))
	}

	return nil
}
