package events

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStreamManager_BroadcastRoutesToCallback(t *testing.T) {
	m := NewStreamManager(discardLogger())

	var got []string
	unregister, _, err := m.RegisterStream(context.Background(), "j1", func(event string, payload map[string]any) {
		got = append(got, event)
		assert.Equal(t, "j1", payload["job_id"])
	})
	require.NoError(t, err)
	defer unregister()

	m.Broadcast("job:j1", []byte(`{"event":"started","job_id":"j1"}`))
	m.Broadcast("job:j2", []byte(`{"event":"started","job_id":"j2"}`)) // no subscriber
	m.Broadcast("not-a-job-channel", []byte(`{"event":"started"}`))
	m.Broadcast("job:j1", []byte(`{no json`))
	m.Broadcast("job:j1", []byte(`{"job_id":"j1"}`)) // missing event name

	assert.Equal(t, []string{"started"}, got)
}

func TestStreamManager_LastCallbackWins(t *testing.T) {
	m := NewStreamManager(discardLogger())
	ctx := context.Background()

	var first, second int
	unregisterFirst, firstReplaced, err := m.RegisterStream(ctx, "j1", func(string, map[string]any) { first++ })
	require.NoError(t, err)

	select {
	case <-firstReplaced:
		t.Fatal("replaced channel closed before a second registration")
	default:
	}

	_, _, err = m.RegisterStream(ctx, "j1", func(string, map[string]any) { second++ })
	require.NoError(t, err)

	// The displaced stream is told to shut down.
	select {
	case <-firstReplaced:
	default:
		t.Fatal("replaced channel not closed after takeover")
	}

	m.Broadcast("job:j1", []byte(`{"event":"progress","job_id":"j1"}`))
	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)

	// The replaced stream's deferred unregister must not evict the newer one.
	unregisterFirst()
	assert.True(t, m.HasStream("j1"))

	m.Broadcast("job:j1", []byte(`{"event":"done","job_id":"j1"}`))
	assert.Equal(t, 2, second)
}

func TestStreamManager_Unregister(t *testing.T) {
	m := NewStreamManager(discardLogger())

	unregister, _, err := m.RegisterStream(context.Background(), "j1", func(string, map[string]any) {})
	require.NoError(t, err)
	require.True(t, m.HasStream("j1"))

	unregister()
	assert.False(t, m.HasStream("j1"))

	// Idempotent.
	unregister()
	assert.False(t, m.HasStream("j1"))
}
