package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/umeshSinghVerma/Chatbot-service-web/internal/domain"
	"github.com/umeshSinghVerma/Chatbot-service-web/internal/history"
)

// relayRequest is the wire shape of a relay call. Messages is kept raw so a
// malformed shape can be coerced to empty instead of failing the whole decode.
type relayRequest struct {
	ID       string          `json:"id"`
	Prompt   string          `json:"prompt"`
	Messages json.RawMessage `json:"messages"`
}

type wireMessage struct {
	Role  string     `json:"role"`
	Parts []wirePart `json:"parts"`
}

type wirePart struct {
	Text string `json:"text"`
}

type relayResponse struct {
	Response *string `json:"response"`
}

// Ask handles POST /relay: resolve the chatbot, assemble the history with the
// tenant's system prompt injected, forward to the provider, return the reply.
// The service holds no conversation state — the caller resends the full
// running history each turn.
func (h *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	var req relayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode relay request", "error", err)
		Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if req.ID == "" || req.Prompt == "" {
		Error(w, http.StatusBadRequest, "Missing chatbot ID or prompt")
		return
	}

	prior := decodeTurns(req.Messages)

	bot, err := h.repo.GetChatbot(r.Context(), strings.TrimSpace(req.ID))
	if err != nil {
		// Lookup failure and absence map to the same outward signal.
		slog.Error("Chatbot lookup failed", "chatbot_id", req.ID, "error", err)
		Error(w, http.StatusNotFound, "Chatbot not found")
		return
	}
	if bot == nil {
		Error(w, http.StatusNotFound, "Chatbot not found")
		return
	}

	assembled := history.Assemble(bot.Prompt, prior)

	reply, err := h.llm.Send(r.Context(), assembled, req.Prompt)
	if err != nil {
		// Kept from the deployed contract: upstream failure still answers
		// with a success-shaped envelope and a null reply.
		slog.Error("Provider call failed", "chatbot_id", bot.ID, "error", err)
		JSON(w, http.StatusOK, relayResponse{Response: nil})
		return
	}

	JSON(w, http.StatusOK, relayResponse{Response: &reply})
}

// decodeTurns coerces the caller-supplied messages into domain turns. Any
// shape that is not a valid array is treated as empty; entries with an empty
// text or an unknown role are dropped.
func decodeTurns(raw json.RawMessage) []domain.Turn {
	if len(raw) == 0 {
		return nil
	}

	var msgs []wireMessage
	if err := json.Unmarshal(raw, &msgs); err != nil {
		return nil
	}

	turns := make([]domain.Turn, 0, len(msgs))
	for _, m := range msgs {
		role := domain.Role(m.Role)
		if !role.Valid() {
			continue
		}

		var sb strings.Builder
		for _, p := range m.Parts {
			sb.WriteString(p.Text)
		}
		text := sb.String()
		if text == "" {
			continue
		}

		turns = append(turns, domain.Turn{Role: role, Text: text})
	}
	return turns
}
