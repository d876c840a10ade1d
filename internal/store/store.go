// Package store provides data persistence interfaces and implementations.
package store

import (
	"context"

	"github.com/umeshSinghVerma/Chatbot-service-web/internal/domain"
)

// Repository defines the interface for persisting chatbot configuration.
// The relay only ever performs point lookups by id; Upsert and Delete exist
// for seeding and for the management surface that lives outside this service.
type Repository interface {
	// GetChatbot retrieves a chatbot by id. Returns (nil, nil) if no chatbot
	// with that id exists.
	GetChatbot(ctx context.Context, id string) (*domain.Chatbot, error)

	// UpsertChatbot creates or updates a chatbot record. A chatbot with an
	// empty id is assigned a fresh one.
	UpsertChatbot(ctx context.Context, bot *domain.Chatbot) error

	// DeleteChatbot removes a chatbot record.
	DeleteChatbot(ctx context.Context, id string) error

	// Ping verifies store connectivity.
	Ping(ctx context.Context) error

	// Close closes the underlying store.
	Close() error
}
