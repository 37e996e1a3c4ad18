package queue

import (
	"context"
	"log/slog"
	"time"

	"github.com/cucinellclark/bvbrc-copilot/ent"
	"github.com/cucinellclark/bvbrc-copilot/ent/job"
)

// retentionInterval is how often the retention sweep runs.
const retentionInterval = time.Hour

// runRetention periodically deletes terminal jobs past their retention
// windows: completed by age plus a per-class count cap, failed and
// cancelled by age.
func (p *WorkerPool) runRetention(ctx context.Context) {
	ticker := time.NewTicker(retentionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			p.sweepRetention(ctx)
		}
	}
}

func (p *WorkerPool) sweepRetention(ctx context.Context) {
	now := time.Now()

	n, err := p.client.Job.Delete().
		Where(
			job.StatusEQ(job.StatusCompleted),
			job.CompletedAtLT(now.Add(-p.config.CompletedRetention)),
		).
		Exec(ctx)
	if err != nil {
		slog.Error("Completed-job retention sweep failed", "error", err)
	} else if n > 0 {
		slog.Info("Deleted aged completed jobs", "count", n)
	}

	n, err = p.client.Job.Delete().
		Where(
			job.StatusIn(job.StatusFailed, job.StatusCancelled),
			job.CompletedAtLT(now.Add(-p.config.FailedRetention)),
		).
		Exec(ctx)
	if err != nil {
		slog.Error("Failed-job retention sweep failed", "error", err)
	} else if n > 0 {
		slog.Info("Deleted aged failed jobs", "count", n)
	}

	for class := range p.executors {
		p.enforceCompletedCount(ctx, string(class))
	}
}

// enforceCompletedCount trims completed jobs of one class beyond the count
// cap, oldest first.
func (p *WorkerPool) enforceCompletedCount(ctx context.Context, class string) {
	cap := p.config.CompletedRetentionCount
	if cap <= 0 {
		return
	}

	total, err := p.client.Job.Query().
		Where(job.QueueEQ(class), job.StatusEQ(job.StatusCompleted)).
		Count(ctx)
	if err != nil || total <= cap {
		return
	}

	overflow, err := p.client.Job.Query().
		Where(job.QueueEQ(class), job.StatusEQ(job.StatusCompleted)).
		Order(ent.Asc(job.FieldCompletedAt)).
		Limit(total - cap).
		IDs(ctx)
	if err != nil {
		slog.Error("Failed to query completed overflow", "queue", class, "error", err)
		return
	}
	n, err := p.client.Job.Delete().
		Where(job.IDIn(overflow...)).
		Exec(ctx)
	if err != nil {
		slog.Error("Failed to trim completed jobs", "queue", class, "error", err)
		return
	}
	slog.Info("Trimmed completed jobs beyond count cap", "queue", class, "count", n)
}
