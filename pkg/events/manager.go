package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// listenTimeout bounds how long a LISTEN command may block when
// subscribing to a new PG channel.
const listenTimeout = 10 * time.Second

// HeartbeatInterval is how often a comment line is written to each SSE
// stream to keep intermediaries from idling the connection.
const HeartbeatInterval = 15 * time.Second

// StreamCallback receives one decoded event for a job stream.
type StreamCallback func(event string, payload map[string]any)

// streamEntry is a registered callback plus the generation it was
// registered under, so a stale unregister cannot evict a newer stream.
// replaced is closed when a newer registration takes over the job.
type streamEntry struct {
	cb       StreamCallback
	gen      uint64
	replaced chan struct{}
}

// StreamManager routes NOTIFY broadcasts to the SSE callback registered
// for each job. At most one callback is live per job: registering a new
// one replaces the old (last callback wins), so a reconnecting client
// picks up live events without the worker noticing.
type StreamManager struct {
	mu      sync.RWMutex
	streams map[string]streamEntry // jobID → live callback
	nextGen uint64

	listener   *NotifyListener
	listenerMu sync.RWMutex

	logger *slog.Logger
}

// NewStreamManager creates a stream manager.
func NewStreamManager(logger *slog.Logger) *StreamManager {
	return &StreamManager{
		streams: make(map[string]streamEntry),
		logger:  logger.With("component", "stream_manager"),
	}
}

// SetListener wires the NOTIFY listener for dynamic LISTEN/UNLISTEN.
// Called once during startup.
func (m *StreamManager) SetListener(l *NotifyListener) {
	m.listenerMu.Lock()
	defer m.listenerMu.Unlock()
	m.listener = l
}

// RegisterStream installs or replaces the SSE callback for a job and
// subscribes the process to the job's NOTIFY channel. Returns an
// unregister func and a channel closed if a newer connection takes over
// the job; unregistering a callback that was already replaced is a no-op.
func (m *StreamManager) RegisterStream(ctx context.Context, jobID string, cb StreamCallback) (func(), <-chan struct{}, error) {
	m.listenerMu.RLock()
	listener := m.listener
	m.listenerMu.RUnlock()

	if listener != nil {
		listenCtx, cancel := context.WithTimeout(ctx, listenTimeout)
		err := listener.Subscribe(listenCtx, JobChannel(jobID))
		cancel()
		if err != nil {
			return nil, nil, err
		}
	}

	m.mu.Lock()
	if prev, ok := m.streams[jobID]; ok {
		m.logger.Debug("Replacing live stream callback", "job_id", jobID)
		close(prev.replaced)
	}
	m.nextGen++
	gen := m.nextGen
	replaced := make(chan struct{})
	m.streams[jobID] = streamEntry{cb: cb, gen: gen, replaced: replaced}
	m.mu.Unlock()

	unregister := func() {
		m.mu.Lock()
		// Only remove if this job's slot still holds our registration; a
		// reconnect may have replaced it.
		if current, ok := m.streams[jobID]; ok && current.gen == gen {
			delete(m.streams, jobID)
		}
		m.mu.Unlock()

		if listener != nil {
			unlistenCtx, cancel := context.WithTimeout(context.Background(), listenTimeout)
			defer cancel()
			if err := listener.Unsubscribe(unlistenCtx, JobChannel(jobID)); err != nil {
				m.logger.Debug("UNLISTEN failed", "job_id", jobID, "error", err)
			}
		}
	}
	return unregister, replaced, nil
}

// Broadcast dispatches a raw NOTIFY payload to the job's live callback.
// Called by the NotifyListener receive loop.
func (m *StreamManager) Broadcast(channel string, payload []byte) {
	jobID, ok := strings.CutPrefix(channel, "job:")
	if !ok {
		return
	}

	m.mu.RLock()
	entry, ok := m.streams[jobID]
	m.mu.RUnlock()
	if !ok {
		return
	}

	var decoded map[string]any
	if err := json.Unmarshal(payload, &decoded); err != nil {
		m.logger.Warn("Failed to decode NOTIFY payload",
			"channel", channel, "error", err)
		return
	}
	event, _ := decoded["event"].(string)
	if event == "" {
		return
	}
	entry.cb(event, decoded)
}

// HasStream reports whether a live callback exists for a job.
func (m *StreamManager) HasStream(jobID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.streams[jobID]
	return ok
}
