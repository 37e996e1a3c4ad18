package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// notifyLimit is PostgreSQL's NOTIFY payload cap (8000 bytes), with some
// headroom for the envelope fields injected below.
const notifyLimit = 7900

// Publisher publishes job SSE events. Lifecycle events are stored in the
// events table then broadcast via NOTIFY in one transaction; transient
// events (progress, streaming chunks) are broadcast only.
type Publisher struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPublisher creates a publisher over the database connection pool.
func NewPublisher(db *sql.DB, logger *slog.Logger) *Publisher {
	return &Publisher{
		db:     db,
		logger: logger.With("component", "events"),
	}
}

// Publish emits one event for a job. The payload map is wrapped in an
// envelope carrying the event name and job id; the routing is derived
// from the event's transience.
func (p *Publisher) Publish(ctx context.Context, jobID, event string, payload map[string]any) error {
	envelope := make(map[string]any, len(payload)+2)
	for k, v := range payload {
		envelope[k] = v
	}
	envelope["event"] = event
	envelope["job_id"] = jobID

	data, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", event, err)
	}

	channel := JobChannel(jobID)
	if IsTransient(event) {
		return p.notifyOnly(ctx, channel, data)
	}
	return p.persistAndNotify(ctx, jobID, channel, data)
}

// persistAndNotify persists an event and broadcasts via NOTIFY in a single
// transaction (pg_notify is transactional: held until COMMIT).
func (p *Publisher) persistAndNotify(ctx context.Context, jobID, channel string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin event transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (job_id, channel, payload, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		jobID, channel, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	notifyPayload, err := injectEventIDAndTruncate(payloadJSON, eventID)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}
	return nil
}

// notifyOnly broadcasts without persisting.
func (p *Publisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(payloadJSON)
	if err != nil {
		return err
	}
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// injectEventIDAndTruncate adds db_event_id to the NOTIFY copy so clients
// can use it as a catchup cursor, then applies the size cap.
func injectEventIDAndTruncate(payloadJSON []byte, eventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for event id injection: %w", err)
	}
	m["db_event_id"] = eventID

	enriched, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}
	return truncateIfNeeded(enriched)
}

// truncateIfNeeded returns the payload as-is when it fits under the NOTIFY
// cap, otherwise a minimal envelope with only routing fields. The full
// payload stays available from the events table.
func truncateIfNeeded(payloadJSON []byte) (string, error) {
	if len(payloadJSON) <= notifyLimit {
		return string(payloadJSON), nil
	}

	var routing struct {
		Event     string `json:"event"`
		JobID     string `json:"job_id"`
		DBEventID *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal(payloadJSON, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"event":     routing.Event,
		"job_id":    routing.JobID,
		"truncated": true,
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}

	data, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(data), nil
}

// Sink adapts the publisher into the executor's narrow emit signature for
// one job. Publish failures are logged, never propagated: event delivery
// must not fail a running job.
func (p *Publisher) Sink(jobID string) func(event string, payload map[string]any) {
	return func(event string, payload map[string]any) {
		if err := p.Publish(context.Background(), jobID, event, payload); err != nil {
			p.logger.Warn("Failed to publish event",
				"job_id", jobID, "event", event, "error", err)
		}
	}
}
