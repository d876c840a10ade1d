package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/umeshSinghVerma/Chatbot-service-web/internal/domain"
	"google.golang.org/genai"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-1.5-flash-8b"

// Gemini implements Client against the Gemini API.
type Gemini struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGemini creates a Gemini-backed provider client.
func NewGemini(ctx context.Context, apiKey, model string, timeout time.Duration) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key must be set")
	}
	if model == "" {
		model = DefaultModel
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	return &Gemini{
		client:  client,
		model:   model,
		timeout: timeout,
	}, nil
}

// Send starts a chat session seeded with history, submits message as the next
// turn, and returns the reply text. The upstream API has no deadline of its
// own, so the call is bounded by the configured timeout.
func (g *Gemini) Send(ctx context.Context, history []domain.Turn, message string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	chat, err := g.client.Chats.Create(ctx, g.model, nil, ToContents(history))
	if err != nil {
		return "", &Error{Err: fmt.Errorf("create chat session: %w", err)}
	}

	res, err := chat.SendMessage(ctx, genai.Part{Text: message})
	if err != nil {
		return "", &Error{Err: fmt.Errorf("send message: %w", err)}
	}

	text := res.Text()
	if text == "" {
		return "", &Error{Err: fmt.Errorf("empty response text")}
	}

	return text, nil
}

// ToContents maps domain turns to the provider's content format. Roles are
// passed through as given; the boundary has already dropped anything outside
// the two known roles.
func ToContents(history []domain.Turn) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))
	for _, t := range history {
		var role genai.Role = genai.RoleUser
		if t.Role == domain.RoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(t.Text, role))
	}
	return contents
}
