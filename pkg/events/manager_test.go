package events

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transparencia-ai/veritas/ent"
	"github.com/transparencia-ai/veritas/pkg/metrics"
)

type fakeStore struct {
	rows []*ent.Event
}

func (f *fakeStore) GetEventsSince(_ context.Context, channel string, afterID int) ([]*ent.Event, error) {
	var out []*ent.Event
	for _, row := range f.rows {
		if row.Channel == channel && row.ID > afterID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeStore) GetEvent(_ context.Context, id int) (*ent.Event, error) {
	for _, row := range f.rows {
		if row.ID == id {
			return row, nil
		}
	}
	return nil, &ent.NotFoundError{}
}

func storedEvent(id int, channel, eventType string) *ent.Event {
	return &ent.Event{
		ID:      id,
		Channel: channel,
		Payload: map[string]interface{}{"type": eventType},
	}
}

func testManager(store EventStore) *Manager {
	return NewManager(store, metrics.New(prometheus.NewRegistry()))
}

func envelope(id int, channel, eventType string) Envelope {
	return Envelope{
		DBEventID: id,
		Channel:   channel,
		Type:      eventType,
		Payload:   map[string]any{"type": eventType},
	}
}

func drain(t *testing.T, sub *Subscription, n int) []StreamEvent {
	t.Helper()
	out := make([]StreamEvent, 0, n)
	deadline := time.After(time.Second)
	for len(out) < n {
		select {
		case ev, ok := <-sub.Events():
			require.True(t, ok, "channel closed early")
			out = append(out, ev)
		case <-deadline:
			t.Fatalf("timed out after %d of %d events", len(out), n)
		}
	}
	return out
}

func TestLiveDelivery(t *testing.T) {
	m := testManager(nil)
	ctx := context.Background()

	sub, err := m.Subscribe(ctx, "investigation:inv-1", -1)
	require.NoError(t, err)
	defer m.Unsubscribe(sub)

	m.HandleEnvelope(ctx, envelope(1, "investigation:inv-1", TypeInvestigationCreated))
	m.HandleEnvelope(ctx, envelope(2, "investigation:inv-2", TypeInvestigationCreated))
	m.HandleEnvelope(ctx, envelope(3, "investigation:inv-1", TypeInvestigationProgress))

	got := drain(t, sub, 2)
	assert.Equal(t, []int{1, 3}, []int{got[0].ID, got[1].ID})
	assert.Equal(t, TypeInvestigationCreated, got[0].Type)
}

func TestCatchupReplaysInOrder(t *testing.T) {
	store := &fakeStore{rows: []*ent.Event{
		storedEvent(1, "investigation:inv-1", TypeInvestigationCreated),
		storedEvent(2, "investigation:inv-1", TypeInvestigationProgress),
		storedEvent(3, "investigation:inv-1", TypeInvestigationProgress),
	}}
	m := testManager(store)
	ctx := context.Background()

	sub, err := m.Subscribe(ctx, "investigation:inv-1", 1)
	require.NoError(t, err)
	defer m.Unsubscribe(sub)

	m.HandleEnvelope(ctx, envelope(4, "investigation:inv-1", TypeInvestigationCompleted))

	got := drain(t, sub, 3)
	assert.Equal(t, []int{2, 3, 4}, []int{got[0].ID, got[1].ID, got[2].ID})
}

func TestCatchupDeduplicatesOverlap(t *testing.T) {
	store := &fakeStore{rows: []*ent.Event{
		storedEvent(1, "investigation:inv-1", TypeInvestigationCreated),
		storedEvent(2, "investigation:inv-1", TypeInvestigationProgress),
	}}
	m := testManager(store)
	ctx := context.Background()

	sub, err := m.Subscribe(ctx, "investigation:inv-1", 0)
	require.NoError(t, err)
	defer m.Unsubscribe(sub)

	// The live feed redelivers an id already covered by catch-up.
	m.HandleEnvelope(ctx, envelope(2, "investigation:inv-1", TypeInvestigationProgress))
	m.HandleEnvelope(ctx, envelope(3, "investigation:inv-1", TypeInvestigationCompleted))

	got := drain(t, sub, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{got[0].ID, got[1].ID, got[2].ID})
}

func TestTruncatedEnvelopeDereferenced(t *testing.T) {
	store := &fakeStore{rows: []*ent.Event{
		{
			ID:      7,
			Channel: "investigation:inv-1",
			Payload: map[string]interface{}{"type": TypeInvestigationCompleted, "summary": "long"},
		},
	}}
	m := testManager(store)
	ctx := context.Background()

	sub, err := m.Subscribe(ctx, "investigation:inv-1", -1)
	require.NoError(t, err)
	defer m.Unsubscribe(sub)

	m.HandleEnvelope(ctx, Envelope{
		DBEventID: 7,
		Channel:   "investigation:inv-1",
		Type:      TypeInvestigationCompleted,
		Truncated: true,
	})

	got := drain(t, sub, 1)
	assert.Equal(t, "long", got[0].Payload["summary"])
}

func TestSlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	m := testManager(nil)
	ctx := context.Background()

	sub, err := m.Subscribe(ctx, "investigation:inv-1", -1)
	require.NoError(t, err)
	defer m.Unsubscribe(sub)

	// Nobody reads; overfill the buffer. HandleEnvelope must not block.
	done := make(chan struct{})
	go func() {
		for i := 1; i <= subscriberBuffer+50; i++ {
			m.HandleEnvelope(ctx, envelope(i, "investigation:inv-1", TypeInvestigationProgress))
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("fanout blocked on a slow subscriber")
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	m := testManager(nil)
	sub, err := m.Subscribe(context.Background(), "investigation:inv-1", -1)
	require.NoError(t, err)
	require.Equal(t, 1, m.SubscriberCount("investigation:inv-1"))

	m.Unsubscribe(sub)
	m.Unsubscribe(sub) // idempotent

	_, ok := <-sub.Events()
	assert.False(t, ok)
	assert.Zero(t, m.SubscriberCount("investigation:inv-1"))
}
