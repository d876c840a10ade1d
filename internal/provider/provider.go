// Package provider adapts the external model provider behind a narrow client
// interface.
package provider

import (
	"context"

	"github.com/umeshSinghVerma/Chatbot-service-web/internal/domain"
)

// Client is the boundary to the conversational model provider. Send seeds a
// session with history, submits message as the current turn, and returns the
// generated reply text. One outbound call per invocation, no retries.
type Client interface {
	Send(ctx context.Context, history []domain.Turn, message string) (string, error)
}

// Error wraps any transport, authentication, or malformed-response failure
// from the upstream provider. Callers map it to a generic upstream-failure
// outcome; raw SDK errors never cross this boundary unwrapped.
type Error struct {
	Err error
}

func (e *Error) Error() string {
	return "provider: " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
