package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/cucinellclark/bvbrc-copilot/ent"
	"github.com/cucinellclark/bvbrc-copilot/ent/job"
	"github.com/cucinellclark/bvbrc-copilot/pkg/config"
	"github.com/cucinellclark/bvbrc-copilot/pkg/events"
)

// WorkerPool manages the workers of every queue class plus the shared
// cancel registry, orphan detection, and retention sweeps.
type WorkerPool struct {
	podID     string
	client    *ent.Client
	config    *config.QueueConfig
	executors map[config.QueueClass]JobExecutor
	publisher *events.Publisher
	workers   []*Worker
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	// Cancel registry: job_id → context cancel, plus the cooperative
	// cancel-request set observed at executor checkpoints.
	mu             sync.RWMutex
	activeJobs     map[string]context.CancelFunc
	cancelRequests map[string]bool
	started        bool

	orphans orphanState
}

// NewWorkerPool creates a worker pool over the per-class executors.
func NewWorkerPool(podID string, client *ent.Client, cfg *config.QueueConfig, executors map[config.QueueClass]JobExecutor, publisher *events.Publisher) *WorkerPool {
	return &WorkerPool{
		podID:          podID,
		client:         client,
		config:         cfg,
		executors:      executors,
		publisher:      publisher,
		stopCh:         make(chan struct{}),
		activeJobs:     make(map[string]context.CancelFunc),
		cancelRequests: make(map[string]bool),
	}
}

// Start spawns the per-class workers and the background maintenance tasks.
// Safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	if !p.config.Enabled {
		slog.Info("Queue processing disabled on this replica", "pod_id", p.podID)
		return nil
	}
	p.started = true

	for class, executor := range p.executors {
		count := p.config.Workers(class)
		for i := 0; i < count; i++ {
			workerID := fmt.Sprintf("%s-%s-%d", p.podID, class, i)
			worker := NewWorker(workerID, p.podID, class, p.client, p.config, executor, p, p.publisher)
			p.workers = append(p.workers, worker)
			worker.Start(ctx)
		}
	}

	p.wg.Add(2)
	go func() {
		defer p.wg.Done()
		p.runOrphanDetection(ctx)
	}()
	go func() {
		defer p.wg.Done()
		p.runRetention(ctx)
	}()

	slog.Info("Worker pool started", "pod_id", p.podID, "workers", len(p.workers))
	return nil
}

// Stop signals all workers to stop and waits; workers finish their current
// jobs first.
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	active := p.activeJobIDs()
	if len(active) > 0 {
		slog.Info("Waiting for active jobs to complete", "count", len(active), "job_ids", active)
	}

	for _, worker := range p.workers {
		worker.Stop()
	}
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool stopped gracefully")
}

// RegisterJob stores a cancel function for API-triggered cancellation.
func (p *WorkerPool) RegisterJob(jobID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activeJobs[jobID] = cancel
}

// UnregisterJob removes the cancel function and clears any pending cancel
// request when processing ends.
func (p *WorkerPool) UnregisterJob(jobID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.activeJobs, jobID)
	delete(p.cancelRequests, jobID)
}

// RequestCancel flags a job for cooperative cancellation. Executors observe
// the flag at their checkpoints; the job context is left intact so in-flight
// persistence can finish cleanly.
func (p *WorkerPool) RequestCancel(jobID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cancelRequests[jobID] = true
}

// IsCancelRequested reports whether a cooperative cancel is pending.
func (p *WorkerPool) IsCancelRequested(jobID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cancelRequests[jobID]
}

// IsJobActiveHere reports whether this pod is processing the job.
func (p *WorkerPool) IsJobActiveHere(jobID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.activeJobs[jobID]
	return ok
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.client.Job.Query().
		Where(job.StatusIn(job.StatusWaiting, job.StatusDelayed)).
		Count(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check", "error", errQ)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	dbHealthy := errQ == nil
	var dbError string
	if errQ != nil {
		dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
	}

	p.orphans.mu.Lock()
	lastOrphanScan := p.orphans.lastOrphanScan
	orphansRecovered := p.orphans.orphansRecovered
	p.orphans.mu.Unlock()

	return &PoolHealth{
		IsHealthy:        len(p.workers) > 0 && dbHealthy,
		DBReachable:      dbHealthy,
		DBError:          dbError,
		PodID:            p.podID,
		ActiveWorkers:    activeWorkers,
		TotalWorkers:     len(p.workers),
		QueueDepth:       queueDepth,
		WorkerStats:      workerStats,
		LastOrphanScan:   lastOrphanScan,
		OrphansRecovered: orphansRecovered,
	}
}

func (p *WorkerPool) activeJobIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	ids := make([]string, 0, len(p.activeJobs))
	for id := range p.activeJobs {
		ids = append(ids, id)
	}
	return ids
}
