// Package queue provides the durable job queue: enqueue, claim, retry,
// cooperative cancellation, orphan recovery, and retention.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/cucinellclark/bvbrc-copilot/ent"
	"github.com/cucinellclark/bvbrc-copilot/pkg/models"
)

// Sentinel errors for queue operations.
var (
	// ErrNoJobsAvailable indicates no claimable jobs are in the queue class.
	ErrNoJobsAvailable = errors.New("no jobs available")

	// ErrJobNotFound indicates an unknown job id.
	ErrJobNotFound = errors.New("job not found")

	// ErrNotCancellable indicates the job is already terminal.
	ErrNotCancellable = errors.New("job not cancellable")
)

// JobExecutor processes one claimed job. Implementations emit their own SSE
// events through emit and poll cancelled at every checkpoint; they return
// models.ErrJobCancelled to signal a cooperative cancel (no retry).
type JobExecutor interface {
	Execute(
		ctx context.Context,
		job *ent.Job,
		emit func(event string, payload map[string]any),
		cancelled func() bool,
	) (*models.JobResult, error)
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Queue         string    `json:"queue"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentJobID  string    `json:"current_job_id,omitempty"`
	JobsProcessed int       `json:"jobs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}

// PoolHealth contains health information for all worker pools.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}
