package events

import (
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transparencia-ai/veritas/pkg/metrics"
	"github.com/transparencia-ai/veritas/pkg/services"
	testdb "github.com/transparencia-ai/veritas/test/database"
)

func TestPublisher(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test requires Docker")
	}
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	// Events reference their investigation row.
	_, err := client.Investigation.Create().
		SetID("inv-1").
		SetUserID("alice").
		SetQueryText("investigar contratos").
		SetCorrelationID("cid-1").
		Save(ctx)
	require.NoError(t, err)

	pub := NewPublisher(client.DB(), metrics.New(prometheus.NewRegistry()))
	store := services.NewEventService(client.Client)

	t.Run("publish persists and stamps the payload", func(t *testing.T) {
		id, err := pub.Publish(ctx, "inv-1", TypeInvestigationCreated, map[string]any{"user_id": "alice"})
		require.NoError(t, err)
		require.Positive(t, id)

		row, err := store.GetEvent(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, ChannelFor("inv-1"), row.Channel)
		assert.Equal(t, TypeInvestigationCreated, row.Payload["type"])
		assert.Equal(t, "alice", row.Payload["user_id"])
		assert.NotEmpty(t, row.Payload["timestamp"])
	})

	t.Run("catchup returns events after the cursor in order", func(t *testing.T) {
		first, err := pub.Publish(ctx, "inv-1", TypeInvestigationProgress, map[string]any{"progress": 0.5})
		require.NoError(t, err)
		second, err := pub.Publish(ctx, "inv-1", TypeInvestigationCompleted, nil)
		require.NoError(t, err)

		rows, err := store.GetEventsSince(ctx, ChannelFor("inv-1"), first-1)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, first, rows[0].ID)
		assert.Equal(t, second, rows[1].ID)
	})

	t.Run("oversized payloads persist in full", func(t *testing.T) {
		// Truncation applies to the NOTIFY envelope only; the row keeps
		// everything for dereferencing.
		big := strings.Repeat("x", 2*maxNotifyBytes)
		id, err := pub.Publish(ctx, "inv-1", TypeInvestigationCompleted, map[string]any{"summary": big})
		require.NoError(t, err)

		row, err := store.GetEvent(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, big, row.Payload["summary"])
	})
}
