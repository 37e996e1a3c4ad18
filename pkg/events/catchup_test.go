package events_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cucinellclark/bvbrc-copilot/pkg/events"
	testdb "github.com/cucinellclark/bvbrc-copilot/test/database"
)

func TestPublishAndCatchup(t *testing.T) {
	db := testdb.NewTestClient(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	publisher := events.NewPublisher(db.DB(), logger)
	catchup := events.NewCatchup(db.DB(), logger)
	ctx := context.Background()

	require.NoError(t, publisher.Publish(ctx, "j1", events.EventQueued, map[string]any{"queue": "agent"}))
	require.NoError(t, publisher.Publish(ctx, "j1", events.EventStarted, map[string]any{"attempt": 1}))
	require.NoError(t, publisher.Publish(ctx, "j1", events.EventDone, map[string]any{"iterations": 2}))
	// Transient events are NOTIFY-only and never land in the table.
	require.NoError(t, publisher.Publish(ctx, "j1", events.EventProgress, map[string]any{"percentage": 50}))
	// Other jobs stay out of the replay.
	require.NoError(t, publisher.Publish(ctx, "j2", events.EventQueued, map[string]any{}))

	stored, err := catchup.EventsSince(ctx, "j1", 0)
	require.NoError(t, err)
	require.Len(t, stored, 3)

	assert.Equal(t, events.EventQueued, stored[0].Event)
	assert.Equal(t, events.EventStarted, stored[1].Event)
	assert.Equal(t, events.EventDone, stored[2].Event)
	assert.Equal(t, "agent", stored[0].Payload["queue"])
	assert.Equal(t, "j1", stored[0].Payload["job_id"])

	// Payloads carry the cursor clients resume from.
	for _, ev := range stored {
		assert.EqualValues(t, ev.ID, ev.Payload["db_event_id"])
	}

	// Resuming after the second event replays only the third.
	tail, err := catchup.EventsSince(ctx, "j1", stored[1].ID)
	require.NoError(t, err)
	require.Len(t, tail, 1)
	assert.Equal(t, events.EventDone, tail[0].Event)

	// Fully caught up.
	empty, err := catchup.EventsSince(ctx, "j1", stored[2].ID)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
