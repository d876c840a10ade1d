package provider

import (
	"context"
	"fmt"

	"github.com/umeshSinghVerma/Chatbot-service-web/internal/domain"
)

// Mock implements Client without any network call. It backs local runs where
// no API key is available.
type Mock struct{}

// NewMock creates a mock provider client.
func NewMock() *Mock {
	return &Mock{}
}

// Send echoes the message back with the history length, so local runs can see
// that history is carried across turns.
func (m *Mock) Send(_ context.Context, history []domain.Turn, message string) (string, error) {
	return fmt.Sprintf("mock reply to %q (%d turns of history)", message, len(history)), nil
}
