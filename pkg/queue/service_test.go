package queue_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cucinellclark/bvbrc-copilot/ent/job"
	"github.com/cucinellclark/bvbrc-copilot/pkg/config"
	"github.com/cucinellclark/bvbrc-copilot/pkg/database"
	"github.com/cucinellclark/bvbrc-copilot/pkg/events"
	"github.com/cucinellclark/bvbrc-copilot/pkg/models"
	"github.com/cucinellclark/bvbrc-copilot/pkg/queue"
	testdb "github.com/cucinellclark/bvbrc-copilot/test/database"
)

func newTestService(t *testing.T) (*queue.Service, *database.Client) {
	t.Helper()
	db := testdb.NewTestClient(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	publisher := events.NewPublisher(db.DB(), logger)
	svc := queue.NewService(db.Client, config.DefaultQueueConfig(), nil, publisher, nil, logger)
	return svc, db
}

func TestEnqueueAndStatus(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	jobID, err := svc.Enqueue(ctx, config.QueueAgent, &models.JobData{
		Query:     "find E. coli genomes",
		SessionID: "sess-1",
		UserID:    "alice",
		SaveChat:  true,
	}, 0)
	require.NoError(t, err)
	require.NotEmpty(t, jobID)

	view, err := svc.Status(ctx, jobID)
	require.NoError(t, err)
	assert.True(t, view.Found)
	assert.Equal(t, jobID, view.JobID)
	assert.Equal(t, "waiting", view.Status)
	assert.Equal(t, 0, view.Attempts)
	require.NotNil(t, view.DataOverview)
	assert.Equal(t, "sess-1", view.DataOverview.SessionID)
	assert.Equal(t, "alice", view.DataOverview.UserID)
}

func TestEnqueue_RejectsTooManyImages(t *testing.T) {
	svc, _ := newTestService(t)

	images := make([]string, models.MaxJobImages+1)
	_, err := svc.Enqueue(context.Background(), config.QueueAgent, &models.JobData{
		Query:     "q",
		SessionID: "s",
		Images:    images,
	}, 0)
	assert.ErrorContains(t, err, "too many images")
}

func TestStatus_UnknownJob(t *testing.T) {
	svc, _ := newTestService(t)

	view, err := svc.Status(context.Background(), "does-not-exist")
	require.NoError(t, err)
	assert.False(t, view.Found)
}

func TestAbort_WaitingJobCancelledOutright(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	jobID, err := svc.Enqueue(ctx, config.QueueAgent, &models.JobData{Query: "q", SessionID: "s"}, 0)
	require.NoError(t, err)

	outcome, err := svc.Abort(ctx, jobID)
	require.NoError(t, err)
	assert.True(t, outcome.Terminal)
	assert.Equal(t, "waiting", outcome.PreviousState)

	view, err := svc.Status(ctx, jobID)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", view.Status)

	// A second abort of a terminal job is rejected.
	_, err = svc.Abort(ctx, jobID)
	assert.ErrorIs(t, err, queue.ErrNotCancellable)
}

func TestAbort_ActiveJobCooperative(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	jobID, err := svc.Enqueue(ctx, config.QueueAgent, &models.JobData{Query: "q", SessionID: "s"}, 0)
	require.NoError(t, err)
	require.NoError(t, db.Job.UpdateOneID(jobID).
		SetStatus(job.StatusActive).
		SetStartedAt(time.Now()).
		Exec(ctx))

	outcome, err := svc.Abort(ctx, jobID)
	require.NoError(t, err)
	assert.False(t, outcome.Terminal)
	assert.Equal(t, "active", outcome.PreviousState)

	view, err := svc.Status(ctx, jobID)
	require.NoError(t, err)
	assert.Equal(t, "cancelling", view.Status)

	// Aborting again while the cancel is in flight is idempotent.
	outcome, err = svc.Abort(ctx, jobID)
	require.NoError(t, err)
	assert.False(t, outcome.Terminal)
	assert.Equal(t, "cancelling", outcome.PreviousState)
}

func TestAbort_UnknownJob(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Abort(context.Background(), "nope")
	assert.ErrorIs(t, err, queue.ErrJobNotFound)
}

func TestStatus_ExposesResult(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	jobID, err := svc.Enqueue(ctx, config.QueueAgent, &models.JobData{Query: "q", SessionID: "s"}, 0)
	require.NoError(t, err)
	require.NoError(t, db.Job.UpdateOneID(jobID).
		SetStatus(job.StatusCompleted).
		SetResult(map[string]any{"iterations": 2, "tools_used": 1}).
		SetCompletedAt(time.Now()).
		Exec(ctx))

	view, err := svc.Status(ctx, jobID)
	require.NoError(t, err)
	assert.Equal(t, "completed", view.Status)
	require.NotNil(t, view.Result)
	assert.EqualValues(t, 2, view.Result["iterations"])
}

func TestEnqueuePersistsQueuedEvent(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	jobID, err := svc.Enqueue(ctx, config.QueueRag, &models.JobData{Query: "q", SessionID: "s"}, 0)
	require.NoError(t, err)

	var count int
	row := db.DB().QueryRowContext(ctx,
		"SELECT COUNT(*) FROM events WHERE job_id = $1", jobID)
	require.NoError(t, row.Scan(&count))
	assert.Equal(t, 1, count)
}
