package provider

import (
	"errors"
	"fmt"
	"testing"

	"github.com/umeshSinghVerma/Chatbot-service-web/internal/domain"
	"google.golang.org/genai"
)

func TestToContentsMapsRoles(t *testing.T) {
	history := []domain.Turn{
		{Role: domain.RoleUser, Text: "You are a pirate."},
		{Role: domain.RoleUser, Text: "Hello"},
		{Role: domain.RoleModel, Text: "Ahoy!"},
	}

	contents := ToContents(history)

	if len(contents) != 3 {
		t.Fatalf("Expected 3 contents, got %d", len(contents))
	}

	wantRoles := []genai.Role{genai.RoleUser, genai.RoleUser, genai.RoleModel}
	for i, c := range contents {
		if genai.Role(c.Role) != wantRoles[i] {
			t.Errorf("Content %d: expected role %q, got %q", i, wantRoles[i], c.Role)
		}
		if len(c.Parts) != 1 || c.Parts[0].Text != history[i].Text {
			t.Errorf("Content %d: expected single part %q, got %+v", i, history[i].Text, c.Parts)
		}
	}
}

func TestToContentsEmptyHistory(t *testing.T) {
	contents := ToContents(nil)
	if len(contents) != 0 {
		t.Errorf("Expected no contents, got %d", len(contents))
	}
}

func TestErrorWrapsCause(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	var err error = &Error{Err: cause}

	if !errors.Is(err, cause) {
		t.Error("Expected Error to unwrap to its cause")
	}

	var pe *Error
	if !errors.As(err, &pe) {
		t.Error("Expected errors.As to match *Error")
	}
}

func TestNewGeminiRequiresAPIKey(t *testing.T) {
	_, err := NewGemini(t.Context(), "", "", 0)
	if err == nil {
		t.Fatal("Expected error for empty API key")
	}
}
