// Package domain contains core domain types for the chatbot relay service.
package domain

import (
	"time"
)

// Chatbot represents one configured chatbot tenant: an opaque ID, a public
// display name, and the system prompt that conditions every reply.
type Chatbot struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Prompt    string    `json:"prompt"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
