package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
)

// catchupLimit caps how many stored events are replayed to a
// reconnecting client before live delivery takes over.
const catchupLimit = 200

// StoredEvent is one persisted lifecycle event read back for catchup.
type StoredEvent struct {
	ID      int64
	Event   string
	Payload map[string]any
}

// Catchup reads persisted events so a reconnecting stream can replay
// what it missed. Clients pass the db_event_id of the last event they
// saw; zero means replay from the beginning of the job.
type Catchup struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewCatchup creates a catchup reader over the connection pool.
func NewCatchup(db *sql.DB, logger *slog.Logger) *Catchup {
	return &Catchup{
		db:     db,
		logger: logger.With("component", "events_catchup"),
	}
}

// EventsSince returns up to catchupLimit persisted events for a job with
// id greater than afterID, oldest first. Rows whose payload fails to
// decode are skipped with a warning rather than breaking the replay.
func (c *Catchup) EventsSince(ctx context.Context, jobID string, afterID int64) ([]StoredEvent, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT id, payload FROM events WHERE job_id = $1 AND id > $2 ORDER BY id ASC LIMIT $3`,
		jobID, afterID, catchupLimit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query catchup events: %w", err)
	}
	defer rows.Close()

	var out []StoredEvent
	for rows.Next() {
		var (
			id  int64
			raw []byte
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("failed to scan catchup event: %w", err)
		}

		var payload map[string]any
		if err := json.Unmarshal(raw, &payload); err != nil {
			c.logger.Warn("Skipping undecodable stored event",
				"job_id", jobID, "event_id", id, "error", err)
			continue
		}
		event, _ := payload["event"].(string)
		payload["db_event_id"] = id

		out = append(out, StoredEvent{ID: id, Event: event, Payload: payload})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read catchup events: %w", err)
	}
	return out, nil
}
