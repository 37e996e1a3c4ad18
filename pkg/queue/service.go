package queue

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/cucinellclark/bvbrc-copilot/ent"
	"github.com/cucinellclark/bvbrc-copilot/ent/job"
	"github.com/cucinellclark/bvbrc-copilot/pkg/config"
	"github.com/cucinellclark/bvbrc-copilot/pkg/events"
	"github.com/cucinellclark/bvbrc-copilot/pkg/models"
)

// backgroundPriority orders summary/facts jobs behind user-facing work.
const backgroundPriority = 10

// Service is the queue's API surface: enqueue, status, abort.
type Service struct {
	client    *ent.Client
	config    *config.QueueConfig
	servers   *config.MCPServerRegistry
	publisher *events.Publisher
	pool      *WorkerPool
	http      *http.Client
	logger    *slog.Logger
}

// NewService creates the queue service. pool may be nil on API-only
// replicas; cross-pod cancellation still works through the DB status.
func NewService(client *ent.Client, cfg *config.QueueConfig, servers *config.MCPServerRegistry, publisher *events.Publisher, pool *WorkerPool, logger *slog.Logger) *Service {
	return &Service{
		client:    client,
		config:    cfg,
		servers:   servers,
		publisher: publisher,
		pool:      pool,
		http:      &http.Client{Timeout: 10 * time.Second},
		logger:    logger.With("component", "queue"),
	}
}

// Enqueue persists a new job and emits its queued event.
func (s *Service) Enqueue(ctx context.Context, class config.QueueClass, data *models.JobData, priority int) (string, error) {
	if len(data.Images) > models.MaxJobImages {
		return "", fmt.Errorf("too many images: %d > %d", len(data.Images), models.MaxJobImages)
	}

	jobID := uuid.NewString()
	dataMap, err := jobDataToMap(data)
	if err != nil {
		return "", err
	}

	err = s.client.Job.Create().
		SetID(jobID).
		SetQueue(string(class)).
		SetPriority(priority).
		SetData(dataMap).
		SetMaxAttempts(s.config.MaxRetries + 1).
		Exec(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to enqueue job: %w", err)
	}

	if err := s.publisher.Publish(ctx, jobID, events.EventQueued, map[string]any{
		"queue":      string(class),
		"session_id": data.SessionID,
	}); err != nil {
		s.logger.Warn("Failed to publish queued event", "job_id", jobID, "error", err)
	}

	s.logger.Info("Job enqueued", "job_id", jobID, "queue", string(class), "session_id", data.SessionID)
	return jobID, nil
}

// EnqueueBackground enqueues a low-priority summary or facts job.
func (s *Service) EnqueueBackground(ctx context.Context, class config.QueueClass, data *models.JobData) (string, error) {
	return s.Enqueue(ctx, class, data, backgroundPriority)
}

// Status returns the API view of one job.
func (s *Service) Status(ctx context.Context, jobID string) (*models.JobStatusView, error) {
	row, err := s.client.Job.Get(ctx, jobID)
	if ent.IsNotFound(err) {
		return &models.JobStatusView{Found: false}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load job: %w", err)
	}

	view := &models.JobStatusView{
		Found:       true,
		JobID:       row.ID,
		Status:      string(row.Status),
		Attempts:    row.AttemptsMade,
		CreatedAt:   &row.CreatedAt,
		StartedAt:   row.StartedAt,
		CompletedAt: row.CompletedAt,
	}
	if row.ErrorMessage != nil {
		view.Error = *row.ErrorMessage
	}
	if len(row.Result) > 0 {
		view.Result = row.Result
	}
	if len(row.Progress) > 0 {
		view.Progress = progressFromMap(row.Progress)
	}
	if data, err := jobDataFromMap(row.Data); err == nil {
		view.DataOverview = &models.JobDataView{
			SessionID: data.SessionID,
			UserID:    data.UserID,
		}
	}
	return view, nil
}

// AbortOutcome describes the result of an abort request for the API layer.
type AbortOutcome struct {
	JobID         string `json:"job_id"`
	PreviousState string `json:"previous_state"`
	// Terminal is true when the job was cancelled outright (waiting or
	// delayed); false means a cooperative cancel is in flight.
	Terminal bool   `json:"-"`
	Note     string `json:"note,omitempty"`
}

// Abort cancels a job. Waiting and delayed jobs are cancelled outright;
// active jobs transition to cancelling and the worker observes the flag at
// its next checkpoint. Terminal jobs return ErrNotCancellable.
func (s *Service) Abort(ctx context.Context, jobID string) (*AbortOutcome, error) {
	row, err := s.client.Job.Get(ctx, jobID)
	if ent.IsNotFound(err) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load job: %w", err)
	}

	previous := string(row.Status)
	switch row.Status {
	case job.StatusWaiting, job.StatusDelayed:
		err := s.client.Job.UpdateOneID(jobID).
			SetStatus(job.StatusCancelled).
			SetCompletedAt(time.Now()).
			Exec(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to cancel job: %w", err)
		}
		s.publishCancelEvents(ctx, jobID)
		return &AbortOutcome{JobID: jobID, PreviousState: previous, Terminal: true}, nil

	case job.StatusActive:
		err := s.client.Job.UpdateOneID(jobID).
			SetStatus(job.StatusCancelling).
			Exec(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to request cancel: %w", err)
		}
		// Local fast path: the owning pod flips the in-process flag
		// immediately instead of waiting for the next heartbeat.
		if s.pool != nil && s.pool.IsJobActiveHere(jobID) {
			s.pool.RequestCancel(jobID)
		}
		s.notifyUpstreamCancel(ctx, jobID)
		if err := s.publisher.Publish(ctx, jobID, events.EventCancelRequested, map[string]any{}); err != nil {
			s.logger.Warn("Failed to publish cancel_requested", "job_id", jobID, "error", err)
		}
		return &AbortOutcome{
			JobID:         jobID,
			PreviousState: previous,
			Note:          "cooperative cancel requested; worker stops at next checkpoint",
		}, nil

	case job.StatusCancelling:
		// Idempotent: a second abort of an in-flight cancel changes nothing.
		return &AbortOutcome{JobID: jobID, PreviousState: previous, Note: "cancel already in progress"}, nil

	default:
		return nil, fmt.Errorf("%w: status %s", ErrNotCancellable, previous)
	}
}

func (s *Service) publishCancelEvents(ctx context.Context, jobID string) {
	for _, event := range []string{events.EventCancelled, events.EventDone} {
		payload := map[string]any{}
		if event == events.EventDone {
			payload["cancelled"] = true
		}
		if err := s.publisher.Publish(ctx, jobID, event, payload); err != nil {
			s.logger.Warn("Failed to publish cancel event", "job_id", jobID, "event", event, "error", err)
		}
	}
}

// notifyUpstreamCancel posts the job's cancel token to every MCP server
// exposing a cancel route, letting a server stop mid-pagination.
// Best-effort: failures are logged only.
func (s *Service) notifyUpstreamCancel(ctx context.Context, jobID string) {
	if s.servers == nil {
		return
	}
	token := "job:" + jobID
	for key, server := range s.servers.All() {
		if server.CancelURL == "" {
			continue
		}
		body, _ := json.Marshal(map[string]string{"cancel_token": token})
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, server.CancelURL, bytes.NewReader(body))
		if err != nil {
			continue
		}
		req.Header.Set("Content-Type", "application/json")
		resp, err := s.http.Do(req)
		if err != nil {
			s.logger.Debug("Upstream cancel failed", "server", key, "error", err)
			continue
		}
		_ = resp.Body.Close()
	}
}

// jobDataToMap converts JobData for the JSON column.
func jobDataToMap(data *models.JobData) (map[string]any, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal job data: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to convert job data: %w", err)
	}
	return m, nil
}

// jobDataFromMap decodes the JSON column back into JobData.
func jobDataFromMap(m map[string]any) (*models.JobData, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal job data map: %w", err)
	}
	var data models.JobData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to decode job data: %w", err)
	}
	return &data, nil
}

func progressFromMap(m map[string]any) *models.JobProgress {
	raw, err := json.Marshal(m)
	if err != nil {
		return nil
	}
	var p models.JobProgress
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil
	}
	return &p
}
