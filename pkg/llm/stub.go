package llm

import (
	"context"
	"sync"
)

// StubProvider is the deterministic in-process provider used by tests and
// local development without credentials. Responses come from a queue; an
// empty queue echoes the prompt.
type StubProvider struct {
	mu        sync.Mutex
	responses []string
	err       error
	calls     int
}

// NewStubProvider creates an empty stub.
func NewStubProvider() *StubProvider {
	return &StubProvider{}
}

// Queue appends canned responses returned in order.
func (p *StubProvider) Queue(responses ...string) *StubProvider {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.responses = append(p.responses, responses...)
	return p
}

// Fail makes every subsequent call return err.
func (p *StubProvider) Fail(err error) *StubProvider {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = err
	return p
}

// Calls reports how many completions were requested.
func (p *StubProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func (p *StubProvider) Name() string { return "stub" }

func (p *StubProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	if p.err != nil {
		return nil, p.err
	}

	text := req.Prompt
	if len(p.responses) > 0 {
		text = p.responses[0]
		p.responses = p.responses[1:]
	}
	return &Response{Text: text, Provider: "stub", Model: "stub"}, nil
}
