package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5"
)

// Reconnect backoff bounds for the dedicated LISTEN connection.
const (
	reconnectBackoffMin = time.Second
	reconnectBackoffMax = 30 * time.Second
)

// waitSlice is the WaitForNotification window per loop pass. Between
// passes the loop drains queued LISTEN/UNLISTEN commands.
const waitSlice = 100 * time.Millisecond

// connCommand is a LISTEN or UNLISTEN statement queued for the receive
// loop. The loop owns the pgx connection; running Exec from any other
// goroutine races WaitForNotification ("conn busy").
type connCommand struct {
	sql  string
	done chan error
}

// NotifyListener holds one dedicated Postgres connection under LISTEN and
// feeds every NOTIFY it receives to the StreamManager. Job channels are
// added and removed as SSE clients come and go.
type NotifyListener struct {
	dsn     string
	manager *StreamManager

	conn   *pgx.Conn
	connMu sync.Mutex

	active   map[string]bool // channels currently under LISTEN
	activeMu sync.RWMutex

	commands chan connCommand
	running  atomic.Bool

	cancelLoop context.CancelFunc
	loopDone   chan struct{}

	logger *slog.Logger
}

// NewNotifyListener creates the listener and hands it to the manager so
// RegisterStream can LISTEN and UNLISTEN on demand.
func NewNotifyListener(dsn string, manager *StreamManager, logger *slog.Logger) *NotifyListener {
	l := &NotifyListener{
		dsn:      dsn,
		manager:  manager,
		active:   make(map[string]bool),
		commands: make(chan connCommand, 16),
		logger:   logger.With("component", "notify_listener"),
	}
	manager.SetListener(l)
	return l
}

// Start opens the dedicated connection and launches the receive loop.
func (l *NotifyListener) Start(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.dsn)
	if err != nil {
		return fmt.Errorf("failed to open LISTEN connection: %w", err)
	}

	l.connMu.Lock()
	l.conn = conn
	l.connMu.Unlock()

	l.running.Store(true)

	loopCtx, cancel := context.WithCancel(ctx)
	l.cancelLoop = cancel
	l.loopDone = make(chan struct{})
	go func() {
		defer close(l.loopDone)
		l.receive(loopCtx)
	}()

	l.logger.Info("NOTIFY listener connected")
	return nil
}

// Subscribe puts a channel under LISTEN. Idempotent per channel; the
// statement itself runs inside the receive loop.
func (l *NotifyListener) Subscribe(ctx context.Context, channel string) error {
	l.activeMu.Lock()
	if l.active[channel] {
		l.activeMu.Unlock()
		return nil
	}
	l.activeMu.Unlock()

	if !l.running.Load() {
		return fmt.Errorf("LISTEN connection not established")
	}

	quoted := pgx.Identifier{channel}.Sanitize()
	if err := l.runCommand(ctx, "LISTEN "+quoted); err != nil {
		return fmt.Errorf("LISTEN %s failed: %w", quoted, err)
	}

	l.activeMu.Lock()
	l.active[channel] = true
	l.activeMu.Unlock()
	l.logger.Debug("Channel under LISTEN", "channel", channel)
	return nil
}

// Unsubscribe drops a channel from LISTEN once its last stream is gone.
func (l *NotifyListener) Unsubscribe(ctx context.Context, channel string) error {
	l.activeMu.Lock()
	if !l.active[channel] {
		l.activeMu.Unlock()
		return nil
	}
	l.activeMu.Unlock()

	if !l.running.Load() {
		return nil
	}

	quoted := pgx.Identifier{channel}.Sanitize()
	if err := l.runCommand(ctx, "UNLISTEN "+quoted); err != nil {
		return fmt.Errorf("UNLISTEN %s failed: %w", quoted, err)
	}

	l.activeMu.Lock()
	delete(l.active, channel)
	l.activeMu.Unlock()
	return nil
}

// runCommand queues one statement for the receive loop and waits for its
// outcome.
func (l *NotifyListener) runCommand(ctx context.Context, sql string) error {
	cmd := connCommand{sql: sql, done: make(chan error, 1)}

	select {
	case l.commands <- cmd:
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-cmd.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// receive is the sole user of the pgx connection. Each pass drains queued
// commands, then waits one slice for a notification; lost connections are
// re-established with their LISTEN set restored.
func (l *NotifyListener) receive(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		l.drainCommands(ctx)

		l.connMu.Lock()
		conn := l.conn
		l.connMu.Unlock()

		if conn == nil {
			l.reconnect(ctx)
			continue
		}

		waitCtx, cancel := context.WithTimeout(ctx, waitSlice)
		notification, err := conn.WaitForNotification(waitCtx)
		cancel()

		if err != nil {
			if ctx.Err() != nil {
				return
			}
			if waitCtx.Err() != nil {
				continue // slice elapsed, go drain commands
			}
			l.logger.Error("Lost NOTIFY connection", "error", err)
			l.reconnect(ctx)
			continue
		}

		l.manager.Broadcast(notification.Channel, []byte(notification.Payload))
	}
}

// drainCommands executes every queued LISTEN/UNLISTEN statement.
func (l *NotifyListener) drainCommands(ctx context.Context) {
	for {
		select {
		case cmd := <-l.commands:
			l.connMu.Lock()
			conn := l.conn
			l.connMu.Unlock()

			if conn == nil {
				cmd.done <- fmt.Errorf("LISTEN connection not established")
				continue
			}

			_, err := conn.Exec(ctx, cmd.sql)
			cmd.done <- err
		default:
			return
		}
	}
}

// reconnect replaces a dead connection, backing off exponentially, and
// restores LISTEN for every active channel before resuming.
func (l *NotifyListener) reconnect(ctx context.Context) {
	l.connMu.Lock()
	defer l.connMu.Unlock()

	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}

	backoff := reconnectBackoffMin
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}

		conn, err := pgx.Connect(ctx, l.dsn)
		if err != nil {
			l.logger.Warn("NOTIFY reconnect attempt failed", "error", err, "backoff", backoff)
			backoff = min(backoff*2, reconnectBackoffMax)
			continue
		}
		l.conn = conn

		l.activeMu.RLock()
		for ch := range l.active {
			if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{ch}.Sanitize()); err != nil {
				l.logger.Error("Failed to restore LISTEN", "channel", ch, "error", err)
			}
		}
		l.activeMu.RUnlock()

		l.logger.Info("NOTIFY listener reconnected")
		return
	}
}

// Stop ends the receive loop, waits for it, then closes the connection.
// Closing first would race WaitForNotification.
func (l *NotifyListener) Stop(ctx context.Context) {
	l.running.Store(false)

	if l.cancelLoop != nil {
		l.cancelLoop()
	}
	if l.loopDone != nil {
		<-l.loopDone
	}

	l.connMu.Lock()
	defer l.connMu.Unlock()
	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}
}
