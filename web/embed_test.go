package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestScriptHandlerSubstitutesOrigin(t *testing.T) {
	handler := ScriptHandler("https://bots.example.com")

	req := httptest.NewRequest(http.MethodGet, "/script.js", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/javascript") {
		t.Errorf("Expected javascript content type, got %q", ct)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read body: %v", err)
	}
	script := string(body)

	if strings.Contains(script, originPlaceholder) {
		t.Error("Placeholder was not substituted")
	}
	if !strings.Contains(script, `"https://bots.example.com/" + chatbotId`) {
		t.Error("Expected iframe address derived from hosted origin and chatbot id")
	}
	if !strings.Contains(script, "document.currentScript") {
		t.Error("Script must read the tenant id from its own tag")
	}
}

func TestWidgetHandlerServesPage(t *testing.T) {
	handler := WidgetHandler()

	req := httptest.NewRequest(http.MethodGet, "/t1", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Expected html content type, got %q", ct)
	}

	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "/relay") {
		t.Error("Widget page must drive the relay endpoint")
	}
}
