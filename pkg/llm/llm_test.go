package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transparencia-ai/veritas/pkg/metrics"
)

func testMetrics() *metrics.Metrics {
	return metrics.New(prometheus.NewRegistry())
}

func TestClientUsesPrimary(t *testing.T) {
	primary := NewStubProvider().Queue("primary answer")
	backup := NewStubProvider().Queue("backup answer")
	c := NewClientWith(primary, backup, time.Minute, testMetrics())

	resp, err := c.Complete(context.Background(), Request{Prompt: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "primary answer", resp.Text)
	assert.Equal(t, 0, backup.Calls())
}

func TestClientFailsOverToBackup(t *testing.T) {
	primary := NewStubProvider().Fail(errors.New("rate limited"))
	backup := NewStubProvider().Queue("backup answer")
	c := NewClientWith(primary, backup, time.Minute, testMetrics())

	resp, err := c.Complete(context.Background(), Request{Prompt: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "backup answer", resp.Text)
	assert.Equal(t, 1, primary.Calls())
}

func TestClientNoBackupPropagatesError(t *testing.T) {
	primary := NewStubProvider().Fail(errors.New("boom"))
	c := NewClientWith(primary, nil, time.Minute, testMetrics())

	_, err := c.Complete(context.Background(), Request{Prompt: "hello"})
	require.Error(t, err)
}

func TestClientCancelledContextSkipsBackup(t *testing.T) {
	primary := NewStubProvider().Fail(context.Canceled)
	backup := NewStubProvider().Queue("never used")
	c := NewClientWith(primary, backup, time.Minute, testMetrics())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Complete(ctx, Request{Prompt: "hello"})
	require.Error(t, err)
	assert.Equal(t, 0, backup.Calls())
}

func TestStubEchoesWithoutQueue(t *testing.T) {
	p := NewStubProvider()
	resp, err := p.Complete(context.Background(), Request{Prompt: "echo me"})
	require.NoError(t, err)
	assert.Equal(t, "echo me", resp.Text)
}
