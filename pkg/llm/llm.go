// Package llm routes worker Process/Reflect completions to a model
// provider, with automatic failover from the primary to the backup on
// provider-side failure.
package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/transparencia-ai/veritas/pkg/config"
	"github.com/transparencia-ai/veritas/pkg/logging"
	"github.com/transparencia-ai/veritas/pkg/metrics"
)

// Request is one completion request.
type Request struct {
	System    string
	Prompt    string
	MaxTokens int
}

// Response is the provider's completion.
type Response struct {
	Text     string
	Provider string
	Model    string
}

// Provider is one concrete model backend.
type Provider interface {
	Name() string
	Complete(ctx context.Context, req Request) (*Response, error)
}

// Client fails over from primary to backup. A nil backup disables failover.
type Client struct {
	primary Provider
	backup  Provider
	timeout time.Duration
	m       *metrics.Metrics
}

// NewClient builds the provider chain from configuration.
func NewClient(cfg config.LLMConfig, m *metrics.Metrics) (*Client, error) {
	primary, err := providerFor(cfg.PrimaryProvider, cfg.APIKey, cfg.Model)
	if err != nil {
		return nil, fmt.Errorf("primary provider: %w", err)
	}

	var backup Provider
	if cfg.BackupProvider != "" {
		backup, err = providerFor(cfg.BackupProvider, cfg.BackupAPIKey, cfg.BackupModel)
		if err != nil {
			return nil, fmt.Errorf("backup provider: %w", err)
		}
	}

	return &Client{
		primary: primary,
		backup:  backup,
		timeout: cfg.RequestTimeout,
		m:       m,
	}, nil
}

// NewClientWith wires explicit providers, for tests.
func NewClientWith(primary, backup Provider, timeout time.Duration, m *metrics.Metrics) *Client {
	return &Client{primary: primary, backup: backup, timeout: timeout, m: m}
}

func providerFor(name, apiKey, model string) (Provider, error) {
	switch name {
	case "anthropic":
		return newAnthropicProvider(apiKey, model), nil
	case "openai":
		return newOpenAIProvider(apiKey, model), nil
	case "stub":
		return NewStubProvider(), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", name)
	}
}

// Complete runs the request on the primary provider and falls back to the
// backup when the primary fails. Caller context cancellation is never
// retried across providers.
func (c *Client) Complete(ctx context.Context, req Request) (*Response, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.complete(ctx, c.primary, req)
	if err == nil {
		return resp, nil
	}
	if ctx.Err() != nil || c.backup == nil {
		return nil, err
	}

	logging.FromContext(ctx).Warn("Primary LLM provider failed, using backup",
		"primary", c.primary.Name(), "backup", c.backup.Name(), "error", err)
	return c.complete(ctx, c.backup, req)
}

func (c *Client) complete(ctx context.Context, p Provider, req Request) (*Response, error) {
	start := time.Now()
	resp, err := p.Complete(ctx, req)

	status := "ok"
	kind := ""
	if err != nil {
		status = "error"
		kind = "upstream_error"
	}
	c.m.ObserveRequest("llm", p.Name(), status, time.Since(start), kind)
	return resp, err
}
