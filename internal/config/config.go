// Package config provides environment-backed configuration for the CLI and
// the HTTP server.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/career-navigator/internal/llm"
)

// Defaults applied when the environment leaves a value unset.
const (
	DefaultProvider = "anthropic"
	DefaultPort     = 8080
)

// Config holds runtime settings read from the environment. Provider selects
// the completion backend; the matching API key must be set.
type Config struct {
	Provider         string `validate:"oneof=anthropic gemini"`
	AnthropicAPIKey  string
	AnthropicBaseURL string `validate:"omitempty,url"`
	GeminiAPIKey     string
	Model            string
	Port             int `validate:"min=1,max=65535"`
	Verbose          bool
}

// FromEnv reads configuration from the environment and validates it.
//
// Recognized variables: LLM_PROVIDER, LLM_MODEL, ANTHROPIC_API_KEY,
// ANTHROPIC_BASE_URL, GEMINI_API_KEY, PORT, VERBOSE.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Provider:         envOr("LLM_PROVIDER", DefaultProvider),
		AnthropicAPIKey:  os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicBaseURL: os.Getenv("ANTHROPIC_BASE_URL"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		Model:            os.Getenv("LLM_MODEL"),
		Port:             DefaultPort,
		Verbose:          os.Getenv("VERBOSE") == "true" || os.Getenv("VERBOSE") == "1",
	}

	if raw := os.Getenv("PORT"); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", raw, err)
		}
		cfg.Port = port
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints and that the selected provider has an
// API key.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.APIKey() == "" {
		return fmt.Errorf("no API key set for provider %q", c.Provider)
	}
	return nil
}

// APIKey returns the key for the selected provider.
func (c *Config) APIKey() string {
	switch c.Provider {
	case "gemini":
		return c.GeminiAPIKey
	default:
		return c.AnthropicAPIKey
	}
}

// LLMConfig builds the completion-client configuration for the selected
// provider, applying model and base URL overrides.
func (c *Config) LLMConfig() *llm.Config {
	var out *llm.Config
	switch c.Provider {
	case "gemini":
		out = llm.DefaultGeminiConfig()
	default:
		out = llm.DefaultAnthropicConfig()
		if c.AnthropicBaseURL != "" {
			out = out.WithBaseURL(c.AnthropicBaseURL)
		}
	}
	if c.Model != "" {
		out = out.WithModel(c.Model)
	}
	return out
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
