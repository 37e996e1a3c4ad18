package config

import "time"

// AgentConfig tunes the planning loop and final-response synthesis.
type AgentConfig struct {
	// MaxIterations bounds planner iterations per job.
	MaxIterations int `yaml:"max_iterations"`

	// ToolExecutionTimeout is the soft per-RPC deadline for tool calls.
	// Streaming calls get 10x this budget.
	ToolExecutionTimeout time.Duration `yaml:"tool_execution_timeout"`

	// FinalResponseToolChars is the global character budget shared by all
	// tool-result chunks injected into the final-response prompt.
	FinalResponseToolChars int `yaml:"final_response_tool_chars"`

	// RagMaxDocs caps documents returned by RAG-classified tools.
	RagMaxDocs int `yaml:"rag_max_docs"`

	// ReplayDataPageSize is the default page size recorded in replay
	// envelopes for the UI data grid.
	ReplayDataPageSize int `yaml:"replay_data_page_size"`

	// StreamingAutoEnableOnHint turns on stream=true for tools whose
	// descriptor annotations declare a streaming hint.
	StreamingAutoEnableOnHint bool `yaml:"streaming_auto_enable_on_hint"`

	// MinMessagesForSummary is the message-count floor before the first
	// conversation summary job is enqueued.
	MinMessagesForSummary int `yaml:"min_messages_for_summary"`

	// SummaryTriggerEveryN enqueues a new summary job each time this many
	// messages accumulate beyond the last summarized count.
	SummaryTriggerEveryN int `yaml:"summary_trigger_every_n"`

	// PlannerModel and ChatModel name the LLM models used for planning
	// and final-response synthesis when the request does not specify one.
	PlannerModel string `yaml:"planner_model"`
	ChatModel    string `yaml:"chat_model"`
}

// DefaultAgentConfig returns the built-in agent defaults.
func DefaultAgentConfig() *AgentConfig {
	return &AgentConfig{
		MaxIterations:             3,
		ToolExecutionTimeout:      120 * time.Second,
		FinalResponseToolChars:    24000,
		RagMaxDocs:                10,
		ReplayDataPageSize:        100,
		StreamingAutoEnableOnHint: true,
		MinMessagesForSummary:     6,
		SummaryTriggerEveryN:      4,
	}
}
