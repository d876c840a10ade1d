package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/umeshSinghVerma/Chatbot-service-web/internal/domain"
)

// MemoryStore implements Repository with an in-process map. It backs local
// development runs and tests.
type MemoryStore struct {
	mu   sync.RWMutex
	bots map[string]domain.Chatbot
}

// NewMemory creates an empty in-memory repository.
func NewMemory() *MemoryStore {
	return &MemoryStore{bots: make(map[string]domain.Chatbot)}
}

// GetChatbot retrieves a chatbot by id. Returns (nil, nil) on absence.
func (m *MemoryStore) GetChatbot(_ context.Context, id string) (*domain.Chatbot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	bot, ok := m.bots[id]
	if !ok {
		return nil, nil
	}
	// Copy so callers cannot mutate the stored record.
	out := bot
	return &out, nil
}

// UpsertChatbot creates or updates a chatbot record.
func (m *MemoryStore) UpsertChatbot(_ context.Context, bot *domain.Chatbot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	if bot.ID == "" {
		bot.ID = uuid.NewString()
	}
	if bot.CreatedAt.IsZero() {
		bot.CreatedAt = now
	}
	bot.UpdatedAt = now

	m.bots[bot.ID] = *bot
	return nil
}

// DeleteChatbot removes a chatbot record.
func (m *MemoryStore) DeleteChatbot(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.bots, id)
	return nil
}

// Ping always succeeds for the in-memory store.
func (m *MemoryStore) Ping(_ context.Context) error {
	return nil
}

// Close is a no-op for the in-memory store.
func (m *MemoryStore) Close() error {
	return nil
}
