package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
)

const (
	listenerReconnectMin = time.Second
	listenerReconnectMax = 30 * time.Second
)

// Listener holds a dedicated Postgres connection on LISTEN and feeds
// decoded envelopes to its handler. It reconnects with backoff; missed
// notifications during an outage are recovered by subscriber catch-up.
type Listener struct {
	dsn     string
	handler func(context.Context, Envelope)
	log     *slog.Logger
}

// NewListener builds a listener. The handler runs on the listener
// goroutine and must not block.
func NewListener(dsn string, handler func(context.Context, Envelope)) *Listener {
	return &Listener{
		dsn:     dsn,
		handler: handler,
		log:     slog.Default().With("component", "event_listener"),
	}
}

// Run blocks until ctx is cancelled, maintaining the LISTEN connection.
func (l *Listener) Run(ctx context.Context) error {
	backoff := listenerReconnectMin
	for {
		if err := l.listen(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			l.log.Warn("Listener connection lost, reconnecting",
				"error", err, "backoff", backoff)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil
			}
			backoff = min(backoff*2, listenerReconnectMax)
			continue
		}
		backoff = listenerReconnectMin
	}
}

func (l *Listener) listen(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.dsn)
	if err != nil {
		return fmt.Errorf("failed to connect for LISTEN: %w", err)
	}
	defer func() { _ = conn.Close(context.WithoutCancel(ctx)) }()

	if _, err := conn.Exec(ctx, "LISTEN "+NotifyChannel); err != nil {
		return fmt.Errorf("failed to LISTEN: %w", err)
	}
	l.log.Info("Listening for events", "channel", NotifyChannel)

	for {
		notification, err := conn.WaitForNotification(ctx)
		if err != nil {
			return err
		}
		var env Envelope
		if err := json.Unmarshal([]byte(notification.Payload), &env); err != nil {
			l.log.Warn("Discarding malformed notification", "error", err)
			continue
		}
		l.handler(ctx, env)
	}
}
