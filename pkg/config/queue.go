package config

import "time"

// QueueClass identifies one of the job queue classes sharing the jobs table.
type QueueClass string

// Queue classes. Agent and RAG jobs are user-facing; summary and facts jobs
// are opportunistic background maintenance with lower priority.
const (
	QueueAgent   QueueClass = "agent"
	QueueRag     QueueClass = "rag"
	QueueSummary QueueClass = "summary"
	QueueFacts   QueueClass = "facts"
)

// QueueConfig contains durable queue and worker pool configuration.
type QueueConfig struct {
	// Enabled gates job processing entirely. When false the API still
	// accepts jobs; another replica is expected to drain them.
	Enabled bool `yaml:"enabled"`

	// WorkerConcurrency is the number of worker goroutines per queue class.
	WorkerConcurrency map[QueueClass]int `yaml:"worker_concurrency,omitempty"`

	// MaxRetries is the number of attempts after the initial failure.
	MaxRetries int `yaml:"max_retries"`

	// RetryBackoff is the initial retry delay; doubles per attempt.
	RetryBackoff time.Duration `yaml:"retry_backoff"`

	// JobTimeout is the hard per-job processing deadline.
	JobTimeout time.Duration `yaml:"job_timeout"`

	// PollInterval is the base interval for checking waiting jobs.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter randomizes polls: PollInterval ± jitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// HeartbeatInterval is how often active jobs refresh last_heartbeat_at.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// GracefulShutdownTimeout bounds the wait for active jobs on shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// OrphanDetectionInterval is how often to scan for orphaned jobs.
	OrphanDetectionInterval time.Duration `yaml:"orphan_detection_interval"`

	// OrphanThreshold is the heartbeat staleness after which an active
	// job is considered orphaned and returned to waiting.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`

	// CompletedRetention is how long completed jobs are kept.
	CompletedRetention time.Duration `yaml:"completed_retention"`

	// CompletedRetentionCount caps retained completed jobs per queue class.
	CompletedRetentionCount int `yaml:"completed_retention_count"`

	// FailedRetention is how long failed jobs are kept.
	FailedRetention time.Duration `yaml:"failed_retention"`
}

// Workers returns the configured worker count for a queue class.
func (c *QueueConfig) Workers(class QueueClass) int {
	if n, ok := c.WorkerConcurrency[class]; ok && n > 0 {
		return n
	}
	return 1
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		Enabled: true,
		WorkerConcurrency: map[QueueClass]int{
			QueueAgent:   3,
			QueueRag:     3,
			QueueSummary: 1,
			QueueFacts:   1,
		},
		MaxRetries:              2,
		RetryBackoff:            2 * time.Second,
		JobTimeout:              10 * time.Minute,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		HeartbeatInterval:       15 * time.Second,
		GracefulShutdownTimeout: 10 * time.Minute,
		OrphanDetectionInterval: 5 * time.Minute,
		OrphanThreshold:         5 * time.Minute,
		CompletedRetention:      7 * 24 * time.Hour,
		CompletedRetentionCount: 1000,
		FailedRetention:         24 * time.Hour,
	}
}
