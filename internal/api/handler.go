// Package api provides HTTP handlers for the chatbot relay API.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/umeshSinghVerma/Chatbot-service-web/internal/middleware"
	"github.com/umeshSinghVerma/Chatbot-service-web/internal/provider"
	"github.com/umeshSinghVerma/Chatbot-service-web/internal/store"
)

// maxRequestBodySize is the maximum allowed request body size (1MB).
const maxRequestBodySize = 1 << 20

// Handler serves the relay and info endpoints.
type Handler struct {
	repo store.Repository
	llm  provider.Client
}

// NewHandler creates a new Handler with its dependencies.
func NewHandler(repo store.Repository, llm provider.Client) *Handler {
	return &Handler{
		repo: repo,
		llm:  llm,
	}
}

// RegisterRoutes mounts the API routes. Each route group carries its own CORS
// method list: the relay is POST-only, the info endpoint additionally allows
// GET. Preflight requests are answered by the CORS middleware itself; the
// OPTIONS routes exist so the router matches them.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.CORS("POST, OPTIONS"))
		r.Post("/relay", h.Ask)
		r.Options("/relay", h.preflight)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.CORS("GET, POST, OPTIONS"))
		r.Get("/info", h.Info)
		r.Options("/info", h.preflight)
	})
}

// preflight is never reached — the CORS middleware short-circuits OPTIONS —
// but the route must exist for the router to match the method.
func (h *Handler) preflight(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}
