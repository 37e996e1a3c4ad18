package queue

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cucinellclark/bvbrc-copilot/ent"
	"github.com/cucinellclark/bvbrc-copilot/ent/job"
	"github.com/cucinellclark/bvbrc-copilot/pkg/config"
	"github.com/cucinellclark/bvbrc-copilot/pkg/database"
	"github.com/cucinellclark/bvbrc-copilot/pkg/events"
	"github.com/cucinellclark/bvbrc-copilot/pkg/models"
	testdb "github.com/cucinellclark/bvbrc-copilot/test/database"
)

func newTestWorker(t *testing.T) (*Worker, *database.Client) {
	t.Helper()
	db := testdb.NewTestClient(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	publisher := events.NewPublisher(db.DB(), logger)
	cfg := config.DefaultQueueConfig()
	pool := NewWorkerPool("test-pod", db.Client, cfg, nil, publisher)
	return NewWorker("w-0", "test-pod", config.QueueAgent, db.Client, cfg, nil, pool, publisher), db
}

func createWaitingJob(t *testing.T, db *database.Client, queueClass string, priority int) *ent.Job {
	t.Helper()
	data, err := jobDataToMap(&models.JobData{Query: "q", SessionID: "s"})
	require.NoError(t, err)
	row, err := db.Job.Create().
		SetID(uuid.NewString()).
		SetQueue(queueClass).
		SetPriority(priority).
		SetData(data).
		SetMaxAttempts(3).
		Save(context.Background())
	require.NoError(t, err)
	return row
}

func TestClaimNextJob_PriorityOrder(t *testing.T) {
	w, db := newTestWorker(t)
	ctx := context.Background()

	createWaitingJob(t, db, "agent", 10)
	urgent := createWaitingJob(t, db, "agent", 0)
	createWaitingJob(t, db, "rag", 0) // other class, never claimed here

	claimed, err := w.claimNextJob(ctx)
	require.NoError(t, err)
	assert.Equal(t, urgent.ID, claimed.ID)
	assert.Equal(t, job.StatusActive, claimed.Status)
	assert.Equal(t, "test-pod", *claimed.PodID)
	assert.Equal(t, 1, claimed.AttemptsMade)
	require.NotNil(t, claimed.StartedAt)
}

func TestClaimNextJob_SkipsFutureDelayed(t *testing.T) {
	w, db := newTestWorker(t)
	ctx := context.Background()

	row := createWaitingJob(t, db, "agent", 0)
	require.NoError(t, db.Job.UpdateOneID(row.ID).
		SetStatus(job.StatusDelayed).
		SetNextAttemptAt(time.Now().Add(time.Hour)).
		Exec(ctx))

	_, err := w.claimNextJob(ctx)
	assert.ErrorIs(t, err, ErrNoJobsAvailable)

	// Once the retry is due the job becomes claimable again.
	require.NoError(t, db.Job.UpdateOneID(row.ID).
		SetNextAttemptAt(time.Now().Add(-time.Second)).
		Exec(ctx))
	claimed, err := w.claimNextJob(ctx)
	require.NoError(t, err)
	assert.Equal(t, row.ID, claimed.ID)
}

func TestHandleFailure_RetriesWithBackoff(t *testing.T) {
	w, db := newTestWorker(t)
	ctx := context.Background()

	row := createWaitingJob(t, db, "agent", 0)
	row, err := db.Job.UpdateOneID(row.ID).
		SetStatus(job.StatusActive).
		SetAttemptsMade(1).
		Save(ctx)
	require.NoError(t, err)

	emitted := map[string]int{}
	w.handleFailure(ctx, row, errors.New("llm unavailable"), func(event string, _ map[string]any) {
		emitted[event]++
	})

	updated, err := db.Job.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusDelayed, updated.Status)
	assert.Equal(t, "llm unavailable", *updated.ErrorMessage)
	require.NotNil(t, updated.NextAttemptAt)
	assert.WithinDuration(t, time.Now().Add(w.config.RetryBackoff), *updated.NextAttemptAt, 5*time.Second)
	assert.Empty(t, emitted) // retries emit nothing terminal
}

func TestHandleFailure_ExhaustedAttemptsFail(t *testing.T) {
	w, db := newTestWorker(t)
	ctx := context.Background()

	row := createWaitingJob(t, db, "agent", 0)
	row, err := db.Job.UpdateOneID(row.ID).
		SetStatus(job.StatusActive).
		SetAttemptsMade(3).
		Save(ctx)
	require.NoError(t, err)

	emitted := map[string]int{}
	w.handleFailure(ctx, row, errors.New("still broken"), func(event string, _ map[string]any) {
		emitted[event]++
	})

	updated, err := db.Job.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusFailed, updated.Status)
	assert.Equal(t, 1, emitted[events.EventError])
}

// stubExecutor runs an arbitrary function as the job body.
type stubExecutor struct {
	fn func(ctx context.Context, job *ent.Job, emit func(string, map[string]any), cancelled func() bool) (*models.JobResult, error)
}

func (s *stubExecutor) Execute(ctx context.Context, job *ent.Job, emit func(string, map[string]any), cancelled func() bool) (*models.JobResult, error) {
	return s.fn(ctx, job, emit, cancelled)
}

func TestPollAndProcess_TimeoutFailsJob(t *testing.T) {
	w, db := newTestWorker(t)
	ctx := context.Background()
	w.config.JobTimeout = 50 * time.Millisecond

	// The executor behaves like the agent loop: it polls the cancelled
	// predicate at checkpoints and bails with ErrJobCancelled once it
	// fires, here because the deadline passed.
	w.executor = &stubExecutor{fn: func(_ context.Context, _ *ent.Job, _ func(string, map[string]any), cancelled func() bool) (*models.JobResult, error) {
		for !cancelled() {
			time.Sleep(5 * time.Millisecond)
		}
		return nil, models.ErrJobCancelled
	}}

	row := createWaitingJob(t, db, "agent", 0)
	require.NoError(t, w.pollAndProcess(ctx))

	updated, err := db.Job.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusFailed, updated.Status)
	require.NotNil(t, updated.ErrorMessage)
	assert.Contains(t, *updated.ErrorMessage, "timed out")
}

func TestPollAndProcess_RequestedCancelEndsCancelled(t *testing.T) {
	w, db := newTestWorker(t)
	ctx := context.Background()

	w.executor = &stubExecutor{fn: func(_ context.Context, claimed *ent.Job, _ func(string, map[string]any), cancelled func() bool) (*models.JobResult, error) {
		w.pool.RequestCancel(claimed.ID)
		require.True(t, cancelled())
		return nil, models.ErrJobCancelled
	}}

	row := createWaitingJob(t, db, "agent", 0)
	require.NoError(t, w.pollAndProcess(ctx))

	updated, err := db.Job.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusCancelled, updated.Status)
}

func TestFinishCompletedStoresResult(t *testing.T) {
	w, db := newTestWorker(t)
	ctx := context.Background()

	row := createWaitingJob(t, db, "agent", 0)

	emitted := map[string]int{}
	w.finishCompleted(ctx, row, &models.JobResult{Iterations: 3, ToolsUsed: 2, MessageID: "m1"},
		func(event string, _ map[string]any) { emitted[event]++ })

	updated, err := db.Job.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusCompleted, updated.Status)
	assert.EqualValues(t, 3, updated.Result["iterations"])
	assert.Equal(t, "m1", updated.Result["message_id"])
	require.NotNil(t, updated.CompletedAt)
	assert.Equal(t, 1, emitted[events.EventDone])
}

func TestPollIntervalJitterBounds(t *testing.T) {
	cfg := &config.QueueConfig{
		PollInterval:       time.Second,
		PollIntervalJitter: 200 * time.Millisecond,
	}
	w := &Worker{config: cfg}

	for i := 0; i < 50; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, 800*time.Millisecond)
		assert.Less(t, d, 1200*time.Millisecond)
	}

	w.config.PollIntervalJitter = 0
	assert.Equal(t, time.Second, w.pollInterval())
}

func TestJobDataRoundTrip(t *testing.T) {
	in := &models.JobData{
		Query:          "annotate genome",
		SessionID:      "s1",
		UserID:         "u1",
		SaveChat:       false,
		IncludeHistory: true,
		MaxIterations:  5,
		WorkspaceItems: []string{"/alice/home/reads.fq"},
		Images:         []string{"base64data"},
	}

	m, err := jobDataToMap(in)
	require.NoError(t, err)
	out, err := jobDataFromMap(m)
	require.NoError(t, err)

	assert.Equal(t, in, out)
	assert.False(t, out.SaveChat)
	assert.NotContains(t, m, "auth_token") // omitempty keeps secrets out when unset
}
