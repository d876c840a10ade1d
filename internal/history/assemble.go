// Package history builds the ordered conversation sent to the model provider.
package history

import (
	"github.com/umeshSinghVerma/Chatbot-service-web/internal/domain"
)

// Assemble builds the history for a provider call from the tenant's system
// prompt and the caller-supplied prior turns.
//
// A non-empty system prompt becomes a single user-role turn prepended before
// the prior turns; an empty prompt emits nothing. Prior turns pass through
// unchanged in role, text, and order — role alternation is not validated here.
// The new user message is never part of the assembled history; it is submitted
// separately as the current turn.
func Assemble(systemPrompt string, prior []domain.Turn) []domain.Turn {
	out := make([]domain.Turn, 0, len(prior)+1)
	if systemPrompt != "" {
		out = append(out, domain.Turn{Role: domain.RoleUser, Text: systemPrompt})
	}
	out = append(out, prior...)
	return out
}
