package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cucinellclark/bvbrc-copilot/ent"
	"github.com/cucinellclark/bvbrc-copilot/ent/job"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for active jobs with stale
// heartbeats. All pods run this independently: operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans returns orphaned jobs to waiting when attempts
// remain, otherwise marks them failed.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.Job.Query().
		Where(
			job.StatusIn(job.StatusActive, job.StatusCancelling),
			job.LastHeartbeatAtNotNil(),
			job.LastHeartbeatAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned jobs: %w", err)
	}

	recovered := 0
	for _, orphan := range orphans {
		if err := p.recoverOrphanedJob(ctx, orphan); err != nil {
			slog.Error("Failed to recover orphaned job", "job_id", orphan.ID, "error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	if len(orphans) > 0 {
		slog.Warn("Recovered orphaned jobs", "count", recovered)
	}
	return nil
}

func (p *WorkerPool) recoverOrphanedJob(ctx context.Context, orphan *ent.Job) error {
	podID := "unknown"
	if orphan.PodID != nil {
		podID = *orphan.PodID
	}
	note := fmt.Sprintf("orphaned: no heartbeat from pod %s since %v", podID, orphan.LastHeartbeatAt)

	// A job that was being cancelled when its pod died is terminal.
	if orphan.Status == job.StatusCancelling {
		return orphan.Update().
			SetStatus(job.StatusCancelled).
			SetErrorMessage(note).
			SetCompletedAt(time.Now()).
			Exec(ctx)
	}

	if orphan.AttemptsMade < orphan.MaxAttempts {
		return orphan.Update().
			SetStatus(job.StatusWaiting).
			SetErrorMessage(note).
			ClearPodID().
			ClearLastHeartbeatAt().
			Exec(ctx)
	}
	return orphan.Update().
		SetStatus(job.StatusFailed).
		SetErrorMessage(note).
		SetCompletedAt(time.Now()).
		Exec(ctx)
}

// CleanupStartupOrphans recovers jobs owned by this pod that were active
// when the pod previously crashed. Called once during startup, before the
// worker pool begins processing.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	orphans, err := client.Job.Query().
		Where(
			job.StatusIn(job.StatusActive, job.StatusCancelling),
			job.PodID(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}
	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run", "pod_id", podID, "count", len(orphans))

	now := time.Now()
	for _, orphan := range orphans {
		var update *ent.JobUpdateOne
		switch {
		case orphan.Status == job.StatusCancelling:
			update = orphan.Update().
				SetStatus(job.StatusCancelled).
				SetCompletedAt(now)
		case orphan.AttemptsMade < orphan.MaxAttempts:
			update = orphan.Update().
				SetStatus(job.StatusWaiting).
				ClearPodID().
				ClearLastHeartbeatAt()
		default:
			update = orphan.Update().
				SetStatus(job.StatusFailed).
				SetCompletedAt(now)
		}
		err := update.
			SetErrorMessage(fmt.Sprintf("orphaned: pod %s restarted mid-job", podID)).
			Exec(ctx)
		if err != nil {
			slog.Error("Failed to recover startup orphan", "job_id", orphan.ID, "error", err)
			continue
		}
		slog.Info("Startup orphan recovered", "job_id", orphan.ID)
	}
	return nil
}
