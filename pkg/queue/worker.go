package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/cucinellclark/bvbrc-copilot/ent"
	"github.com/cucinellclark/bvbrc-copilot/ent/job"
	"github.com/cucinellclark/bvbrc-copilot/pkg/config"
	"github.com/cucinellclark/bvbrc-copilot/pkg/events"
	"github.com/cucinellclark/bvbrc-copilot/pkg/models"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// JobRegistry is the subset of the pool used by workers for cancel
// registration.
type JobRegistry interface {
	RegisterJob(jobID string, cancel context.CancelFunc)
	UnregisterJob(jobID string)
	RequestCancel(jobID string)
	IsCancelRequested(jobID string) bool
}

// Worker is a single queue worker polling one queue class.
type Worker struct {
	id        string
	podID     string
	queue     config.QueueClass
	client    *ent.Client
	config    *config.QueueConfig
	executor  JobExecutor
	publisher *events.Publisher
	pool      JobRegistry
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	status        WorkerStatus
	currentJobID  string
	jobsProcessed int
	lastActivity  time.Time
}

// NewWorker creates a new queue worker for one queue class.
func NewWorker(id, podID string, queue config.QueueClass, client *ent.Client, cfg *config.QueueConfig, executor JobExecutor, pool JobRegistry, publisher *events.Publisher) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		queue:        queue,
		client:       client,
		config:       cfg,
		executor:     executor,
		publisher:    publisher,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish its current
// job. It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Queue:         string(w.queue),
		Status:        string(w.status),
		CurrentJobID:  w.currentJobID,
		JobsProcessed: w.jobsProcessed,
		LastActivity:  w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "queue", string(w.queue))
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoJobsAvailable) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing job", "error", err)
				w.sleep(time.Second)
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess claims the next job of this worker's class and runs it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	claimed, err := w.claimNextJob(ctx)
	if err != nil {
		return err
	}

	log := slog.With("job_id", claimed.ID, "worker_id", w.id, "queue", string(w.queue))
	log.Info("Job claimed", "attempt", claimed.AttemptsMade)

	emit := w.publisher.Sink(claimed.ID)
	emit(events.EventStarted, map[string]any{"attempt": claimed.AttemptsMade})

	w.setStatus(WorkerStatusWorking, claimed.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// Hard per-job deadline.
	jobCtx, cancelJob := context.WithTimeout(ctx, w.config.JobTimeout)
	defer cancelJob()

	// Register for API-triggered cancellation.
	w.pool.RegisterJob(claimed.ID, cancelJob)
	defer w.pool.UnregisterJob(claimed.ID)

	heartbeatCtx, cancelHeartbeat := context.WithCancel(jobCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, claimed.ID)

	cancelled := func() bool {
		return w.pool.IsCancelRequested(claimed.ID) || jobCtx.Err() != nil
	}

	result, execErr := w.executor.Execute(jobCtx, claimed, emit, cancelled)
	cancelHeartbeat()

	// Terminal handling uses a background context: jobCtx may be dead.
	// The deadline check runs before the cancel check: a checkpoint that
	// observed the dead context returns ErrJobCancelled too, and only an
	// actual cancel request may end the job as cancelled.
	finishCtx := context.Background()
	switch {
	case execErr != nil && errors.Is(jobCtx.Err(), context.DeadlineExceeded) && !w.pool.IsCancelRequested(claimed.ID):
		w.finishFailed(finishCtx, claimed, fmt.Errorf("job timed out after %v", w.config.JobTimeout), emit)
	case errors.Is(execErr, models.ErrJobCancelled) || w.pool.IsCancelRequested(claimed.ID):
		w.finishCancelled(finishCtx, claimed, emit)
	case execErr != nil:
		w.handleFailure(finishCtx, claimed, execErr, emit)
	default:
		w.finishCompleted(finishCtx, claimed, result, emit)
	}

	w.mu.Lock()
	w.jobsProcessed++
	w.mu.Unlock()
	return nil
}

// claimNextJob atomically claims the next waiting (or due delayed) job of
// this queue class using FOR UPDATE SKIP LOCKED.
func (w *Worker) claimNextJob(ctx context.Context) (*ent.Job, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	row, err := tx.Job.Query().
		Where(
			job.QueueEQ(string(w.queue)),
			job.Or(
				job.StatusEQ(job.StatusWaiting),
				job.And(
					job.StatusEQ(job.StatusDelayed),
					job.NextAttemptAtLTE(now),
				),
			),
		).
		Order(ent.Asc(job.FieldPriority), ent.Asc(job.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoJobsAvailable
		}
		return nil, fmt.Errorf("failed to query waiting job: %w", err)
	}

	row, err = row.Update().
		SetStatus(job.StatusActive).
		SetPodID(w.podID).
		SetStartedAt(now).
		SetLastHeartbeatAt(now).
		AddAttemptsMade(1).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return row, nil
}

// runHeartbeat refreshes last_heartbeat_at for orphan detection and picks
// up cross-pod cancel requests (status flipped to cancelling by the API).
func (w *Worker) runHeartbeat(ctx context.Context, jobID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			row, err := w.client.Job.UpdateOneID(jobID).
				SetLastHeartbeatAt(time.Now()).
				Save(ctx)
			if err != nil {
				slog.Warn("Heartbeat update failed", "job_id", jobID, "error", err)
				continue
			}
			if row.Status == job.StatusCancelling {
				w.pool.RequestCancel(jobID)
			}
		}
	}
}

func (w *Worker) finishCompleted(ctx context.Context, claimed *ent.Job, result *models.JobResult, emit func(string, map[string]any)) {
	if result == nil {
		result = &models.JobResult{}
	}
	resultMap := map[string]any{
		"iterations": result.Iterations,
		"tools_used": result.ToolsUsed,
	}
	if result.MessageID != "" {
		resultMap["message_id"] = result.MessageID
	}
	err := w.client.Job.UpdateOneID(claimed.ID).
		SetStatus(job.StatusCompleted).
		SetResult(resultMap).
		SetCompletedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		slog.Error("Failed to mark job completed", "job_id", claimed.ID, "error", err)
	}
	emit(events.EventDone, resultMap)
	slog.Info("Job completed", "job_id", claimed.ID,
		"iterations", result.Iterations, "tools_used", result.ToolsUsed)
}

func (w *Worker) finishCancelled(ctx context.Context, claimed *ent.Job, emit func(string, map[string]any)) {
	err := w.client.Job.UpdateOneID(claimed.ID).
		SetStatus(job.StatusCancelled).
		SetCompletedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		slog.Error("Failed to mark job cancelled", "job_id", claimed.ID, "error", err)
	}
	emit(events.EventCancelled, map[string]any{})
	emit(events.EventDone, map[string]any{"cancelled": true})
	slog.Info("Job cancelled", "job_id", claimed.ID)
}

// handleFailure retries with exponential backoff while attempts remain,
// otherwise marks the job failed.
func (w *Worker) handleFailure(ctx context.Context, claimed *ent.Job, execErr error, emit func(string, map[string]any)) {
	if claimed.AttemptsMade < claimed.MaxAttempts {
		backoff := w.config.RetryBackoff * (1 << (claimed.AttemptsMade - 1))
		err := w.client.Job.UpdateOneID(claimed.ID).
			SetStatus(job.StatusDelayed).
			SetNextAttemptAt(time.Now().Add(backoff)).
			SetErrorMessage(execErr.Error()).
			Exec(ctx)
		if err != nil {
			slog.Error("Failed to delay job for retry", "job_id", claimed.ID, "error", err)
		}
		slog.Warn("Job failed, retrying", "job_id", claimed.ID,
			"attempt", claimed.AttemptsMade, "backoff", backoff, "error", execErr)
		return
	}
	w.finishFailed(ctx, claimed, execErr, emit)
}

func (w *Worker) finishFailed(ctx context.Context, claimed *ent.Job, execErr error, emit func(string, map[string]any)) {
	err := w.client.Job.UpdateOneID(claimed.ID).
		SetStatus(job.StatusFailed).
		SetErrorMessage(execErr.Error()).
		SetCompletedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		slog.Error("Failed to mark job failed", "job_id", claimed.ID, "error", err)
	}
	emit(events.EventError, map[string]any{"error": execErr.Error()})
	slog.Error("Job failed permanently", "job_id", claimed.ID, "error", execErr)
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, jobID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentJobID = jobID
	w.lastActivity = time.Now()
}
