package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/transparencia-ai/veritas/pkg/logging"
	"github.com/transparencia-ai/veritas/pkg/metrics"
)

// Publisher writes events transactionally: the events row and the
// pg_notify call commit together, so subscribers never see an event whose
// row is absent and no committed event goes unannounced.
type Publisher struct {
	db *sql.DB
	m  *metrics.Metrics
}

// NewPublisher builds a publisher over the shared database handle.
func NewPublisher(db *sql.DB, m *metrics.Metrics) *Publisher {
	return &Publisher{db: db, m: m}
}

// Publish persists and announces one event, returning the database event
// id. The payload map is copied before the type and timestamp are
// stamped in.
func (p *Publisher) Publish(ctx context.Context, investigationID, eventType string, payload map[string]any) (int, error) {
	channel := ChannelFor(investigationID)

	stamped := make(map[string]any, len(payload)+2)
	for k, v := range payload {
		stamped[k] = v
	}
	stamped["type"] = eventType
	stamped["timestamp"] = time.Now().UTC().Format(time.RFC3339Nano)

	payloadJSON, err := json.Marshal(stamped)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal event payload: %w", err)
	}

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin event transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var eventID int
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (investigation_id, channel, payload, created_at)
		 VALUES ($1, $2, $3, now())
		 RETURNING id`,
		investigationID, channel, payloadJSON,
	).Scan(&eventID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert event: %w", err)
	}

	env := Envelope{
		DBEventID:       eventID,
		Channel:         channel,
		InvestigationID: investigationID,
		Type:            eventType,
		Payload:         stamped,
	}
	envJSON, err := json.Marshal(env)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal event envelope: %w", err)
	}
	if len(envJSON) > maxNotifyBytes {
		env.Payload = nil
		env.Truncated = true
		if envJSON, err = json.Marshal(env); err != nil {
			return 0, fmt.Errorf("failed to marshal truncated envelope: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx, `SELECT pg_notify($1, $2)`, NotifyChannel, string(envJSON)); err != nil {
		return 0, fmt.Errorf("failed to notify: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit event: %w", err)
	}

	p.m.EventPublished(eventType)
	logging.FromContext(ctx).Debug("Event published",
		"event_id", eventID, "channel", channel, "type", eventType)
	return eventID, nil
}
