package services

import (
	"context"
	"fmt"
	"time"

	"github.com/transparencia-ai/veritas/ent"
	"github.com/transparencia-ai/veritas/ent/event"
)

// catchupLimit caps how many missed events a reconnecting subscriber
// replays in one call.
const catchupLimit = 200

// EventService reads persisted events for catch-up and prunes them past
// their retention TTL. Writing happens in pkg/events inside the publish
// transaction.
type EventService struct {
	client *ent.Client
}

// NewEventService builds the service.
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// GetEventsSince returns events on channel with id > afterID in id order,
// capped at the catch-up limit. The int id is the delivery order.
func (s *EventService) GetEventsSince(ctx context.Context, channel string, afterID int) ([]*ent.Event, error) {
	rows, err := s.client.Event.Query().
		Where(event.Channel(channel), event.IDGT(afterID)).
		Order(ent.Asc(event.FieldID)).
		Limit(catchupLimit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load events since %d: %w", afterID, err)
	}
	return rows, nil
}

// GetEvent returns one event by id, used to dereference truncated
// notification envelopes.
func (s *EventService) GetEvent(ctx context.Context, id int) (*ent.Event, error) {
	ev, err := s.client.Event.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load event %d: %w", id, err)
	}
	return ev, nil
}

// DeleteOlderThan prunes events past the retention TTL.
func (s *EventService) DeleteOlderThan(ctx context.Context, ttl time.Duration) (int, error) {
	cutoff := time.Now().UTC().Add(-ttl)
	n, err := s.client.Event.Delete().
		Where(event.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to prune events: %w", err)
	}
	return n, nil
}
