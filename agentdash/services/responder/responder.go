// Package responder produces agent replies: templated mock responses by
// default, or a real backend call when the agent API config disables mock
// mode.
package responder

import (
	"context"
	"fmt"

	"agentdash/agentdash/config"
	"agentdash/agentdash/types"
)

// Responder returns one agent reply per user message. Implementations report
// failures as ValidationError or TransportError values, never panics.
type Responder interface {
	Respond(ctx context.Context, agentID types.AgentType, content string) (types.Message, error)
}

// New picks the responder implementation from the agent API config.
func New(cfg config.AgentAPIConfig) Responder {
	if cfg.UseMock {
		return NewMock()
	}
	return NewHTTPResponder(cfg)
}

// ValidationError rejects bad user input before any reply is attempted.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// TransportError wraps any failure of the real backend path: connect errors,
// timeouts, non-2xx statuses, undecodable bodies.
type TransportError struct {
	Reason string
	Err    error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
