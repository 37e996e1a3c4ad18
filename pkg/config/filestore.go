package config

// FileManagerConfig controls tool-result materialization and workspace upload.
type FileManagerConfig struct {
	// BaseDir is the root of the per-session on-disk area:
	// <BaseDir>/sessions/<session_id>/downloads/...
	BaseDir string `yaml:"base_dir"`

	// AccumulateSizeThreshold caps in-memory accumulation during
	// pagination before batches are flushed to disk (bytes).
	AccumulateSizeThreshold int64 `yaml:"accumulate_size_threshold"`

	// MaxAccumulatePages bounds cursor pagination fetches per call.
	MaxAccumulatePages int `yaml:"max_accumulate_pages"`

	// UploadToWorkspace mirrors successful result files into the user's
	// remote workspace.
	UploadToWorkspace bool `yaml:"upload_to_workspace"`

	// WorkspaceUploadDir is the directory under the user's home that
	// receives uploads (e.g. "CopilotDownloads").
	WorkspaceUploadDir string `yaml:"workspace_upload_dir"`

	// WorkspaceAPIURL is the workspace service endpoint used to create
	// upload nodes (the PUT target URL comes back from node creation).
	WorkspaceAPIURL string `yaml:"workspace_api_url"`
}

// DefaultFileManagerConfig returns the built-in file manager defaults.
func DefaultFileManagerConfig() *FileManagerConfig {
	return &FileManagerConfig{
		BaseDir:                 "/tmp/copilot",
		AccumulateSizeThreshold: 10 << 20, // 10 MiB
		MaxAccumulatePages:      100,
		UploadToWorkspace:       false,
		WorkspaceUploadDir:      "CopilotDownloads",
	}
}
