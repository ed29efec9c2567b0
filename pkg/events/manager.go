package events

import (
	"context"
	"log/slog"
	"sync"

	"github.com/transparencia-ai/veritas/ent"
	"github.com/transparencia-ai/veritas/pkg/metrics"
)

// subscriberBuffer must exceed the catch-up page size so a fresh
// subscription can absorb a full replay without dropping.
const subscriberBuffer = 256

// EventStore is the persisted-event reader the manager uses for catch-up
// and for dereferencing truncated envelopes.
type EventStore interface {
	GetEventsSince(ctx context.Context, channel string, afterID int) ([]*ent.Event, error)
	GetEvent(ctx context.Context, id int) (*ent.Event, error)
}

// Manager fans incoming envelopes out to in-process subscribers (WebSocket
// and SSE connections). Delivery is in id order; a subscriber that cannot
// keep up has events dropped and counted rather than stalling the fanout.
type Manager struct {
	store EventStore
	m     *metrics.Metrics
	log   *slog.Logger

	mu   sync.RWMutex
	subs map[string]map[*Subscription]struct{}
}

// NewManager builds a manager. store may be nil in tests that exercise
// live delivery only.
func NewManager(store EventStore, m *metrics.Metrics) *Manager {
	return &Manager{
		store: store,
		m:     m,
		log:   slog.Default().With("component", "event_manager"),
		subs:  make(map[string]map[*Subscription]struct{}),
	}
}

// Subscription is one subscriber's ordered event feed.
type Subscription struct {
	channel string
	ch      chan StreamEvent
	m       *metrics.Metrics

	mu sync.Mutex
	// paused buffers live events while catch-up replays, so replayed and
	// live events interleave in id order.
	paused  bool
	pending []StreamEvent
	lastID  int
	closed  bool
}

// Events returns the delivery channel. It is closed on Unsubscribe.
func (s *Subscription) Events() <-chan StreamEvent { return s.ch }

// deliver enqueues one event, deduplicating against the catch-up cursor
// and dropping when the subscriber's buffer is full.
func (s *Subscription) deliver(ev StreamEvent) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	if s.paused {
		s.pending = append(s.pending, ev)
		s.mu.Unlock()
		return
	}
	if ev.ID != 0 && ev.ID <= s.lastID {
		s.mu.Unlock()
		return
	}
	if ev.ID > s.lastID {
		s.lastID = ev.ID
	}
	s.mu.Unlock()

	select {
	case s.ch <- ev:
	default:
		s.m.EventDropped(s.channel)
	}
}

// Subscribe attaches a subscriber to a logical channel. afterID >= 0
// requests catch-up: every persisted event with id > afterID is replayed
// before live delivery resumes. afterID < 0 subscribes live-only.
func (m *Manager) Subscribe(ctx context.Context, channel string, afterID int) (*Subscription, error) {
	sub := &Subscription{
		channel: channel,
		ch:      make(chan StreamEvent, subscriberBuffer),
		m:       m.m,
		paused:  afterID >= 0 && m.store != nil,
	}

	m.mu.Lock()
	if m.subs[channel] == nil {
		m.subs[channel] = make(map[*Subscription]struct{})
	}
	m.subs[channel][sub] = struct{}{}
	m.mu.Unlock()

	if sub.paused {
		rows, err := m.store.GetEventsSince(ctx, channel, afterID)
		if err != nil {
			m.Unsubscribe(sub)
			return nil, err
		}

		sub.mu.Lock()
		for _, row := range rows {
			ev := streamEventFromRow(row)
			select {
			case sub.ch <- ev:
				sub.lastID = ev.ID
			default:
				m.m.EventDropped(channel)
			}
		}
		pending := sub.pending
		sub.pending = nil
		sub.paused = false
		sub.mu.Unlock()

		// Live events buffered during replay; deliver drops duplicates.
		for _, ev := range pending {
			sub.deliver(ev)
		}
	}
	return sub, nil
}

// Unsubscribe detaches and closes a subscription. Safe to call twice.
func (m *Manager) Unsubscribe(sub *Subscription) {
	m.mu.Lock()
	if set, ok := m.subs[sub.channel]; ok {
		delete(set, sub)
		if len(set) == 0 {
			delete(m.subs, sub.channel)
		}
	}
	m.mu.Unlock()

	sub.mu.Lock()
	defer sub.mu.Unlock()
	if !sub.closed {
		sub.closed = true
		close(sub.ch)
	}
}

// SubscriberCount reports the subscribers on a channel.
func (m *Manager) SubscriberCount(channel string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.subs[channel])
}

// HandleEnvelope is the listener callback: it resolves truncated
// envelopes against the store and fans the event out.
func (m *Manager) HandleEnvelope(ctx context.Context, env Envelope) {
	payload := env.Payload
	if env.Truncated {
		if m.store == nil {
			m.log.Warn("Truncated envelope with no store, dropping", "event_id", env.DBEventID)
			return
		}
		row, err := m.store.GetEvent(ctx, env.DBEventID)
		if err != nil {
			m.log.Warn("Failed to dereference truncated event",
				"event_id", env.DBEventID, "error", err)
			return
		}
		payload = row.Payload
	}

	ev := StreamEvent{
		ID:      env.DBEventID,
		Channel: env.Channel,
		Type:    env.Type,
		Payload: payload,
	}

	m.mu.RLock()
	subs := make([]*Subscription, 0, len(m.subs[env.Channel]))
	for sub := range m.subs[env.Channel] {
		subs = append(subs, sub)
	}
	m.mu.RUnlock()

	for _, sub := range subs {
		sub.deliver(ev)
	}
}

func streamEventFromRow(row *ent.Event) StreamEvent {
	eventType, _ := row.Payload["type"].(string)
	return StreamEvent{
		ID:      row.ID,
		Channel: row.Channel,
		Type:    eventType,
		Payload: row.Payload,
	}
}
