// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Port            string
	DBPath          string
	StorageBackend  string // "sqlite" or "memory"
	GeminiAPIKey    string
	GeminiModel     string
	HostedOrigin    string // origin the embed script points its iframe at
	ProviderTimeout time.Duration
	UseMockProvider bool // true = answer locally without a Gemini call
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		DBPath:          getEnv("DB_PATH", "./data/chatbots.db"),
		StorageBackend:  strings.ToLower(getEnv("STORAGE_BACKEND", "sqlite")),
		GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
		GeminiModel:     getEnv("GEMINI_MODEL", "gemini-1.5-flash-8b"),
		HostedOrigin:    getEnv("HOSTED_ORIGIN", ""),
		ProviderTimeout: getEnvDuration("PROVIDER_TIMEOUT", 30*time.Second),
		UseMockProvider: getEnvBool("USE_MOCK_PROVIDER", false),
	}

	if cfg.HostedOrigin == "" {
		cfg.HostedOrigin = "http://localhost:" + cfg.Port
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if c.StorageBackend != "sqlite" && c.StorageBackend != "memory" {
		return fmt.Errorf("STORAGE_BACKEND must be sqlite or memory, got %q", c.StorageBackend)
	}
	if c.StorageBackend == "sqlite" && c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}
	if !c.UseMockProvider && c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY must be set unless USE_MOCK_PROVIDER is enabled")
	}
	if c.ProviderTimeout <= 0 {
		return fmt.Errorf("PROVIDER_TIMEOUT must be > 0")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return d
}
