package api

import (
	"log/slog"
	"net/http"
	"strings"
)

type infoResponse struct {
	Chatbot infoChatbot `json:"chatbot"`
}

type infoChatbot struct {
	Name string `json:"name"`
}

// Info handles GET /info?id=: the public display name used to label the
// widget. Read-only, no side effects.
func (h *Handler) Info(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		Error(w, http.StatusBadRequest, "Missing chatbot ID")
		return
	}

	bot, err := h.repo.GetChatbot(r.Context(), strings.TrimSpace(id))
	if err != nil {
		slog.Error("Chatbot lookup failed", "chatbot_id", id, "error", err)
		Error(w, http.StatusNotFound, "Chatbot not found")
		return
	}
	if bot == nil {
		Error(w, http.StatusNotFound, "Chatbot not found")
		return
	}

	JSON(w, http.StatusOK, infoResponse{Chatbot: infoChatbot{Name: bot.Name}})
}
