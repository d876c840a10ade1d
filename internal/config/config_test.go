package config

import (
	"testing"
	"time"
)

func setMockEnv(t *testing.T) {
	t.Helper()
	t.Setenv("USE_MOCK_PROVIDER", "true")
}

func TestLoadDefaults(t *testing.T) {
	setMockEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Expected default port 8080, got %q", cfg.Port)
	}
	if cfg.StorageBackend != "sqlite" {
		t.Errorf("Expected default backend sqlite, got %q", cfg.StorageBackend)
	}
	if cfg.GeminiModel != "gemini-1.5-flash-8b" {
		t.Errorf("Expected default model, got %q", cfg.GeminiModel)
	}
	if cfg.ProviderTimeout != 30*time.Second {
		t.Errorf("Expected default timeout 30s, got %v", cfg.ProviderTimeout)
	}
	if cfg.HostedOrigin != "http://localhost:8080" {
		t.Errorf("Expected hosted origin derived from port, got %q", cfg.HostedOrigin)
	}
}

func TestLoadRequiresAPIKeyWithoutMock(t *testing.T) {
	t.Setenv("USE_MOCK_PROVIDER", "false")
	t.Setenv("GEMINI_API_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatal("Expected error without GEMINI_API_KEY")
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	setMockEnv(t)
	t.Setenv("STORAGE_BACKEND", "postgres")

	if _, err := Load(); err == nil {
		t.Fatal("Expected error for unknown storage backend")
	}
}

func TestLoadParsesTimeout(t *testing.T) {
	setMockEnv(t)
	t.Setenv("PROVIDER_TIMEOUT", "5s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ProviderTimeout != 5*time.Second {
		t.Errorf("Expected 5s timeout, got %v", cfg.ProviderTimeout)
	}
}

func TestLoadBadTimeoutFallsBack(t *testing.T) {
	setMockEnv(t)
	t.Setenv("PROVIDER_TIMEOUT", "soon")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ProviderTimeout != 30*time.Second {
		t.Errorf("Expected fallback timeout, got %v", cfg.ProviderTimeout)
	}
}
