package llm

import (
	"context"
	"fmt"
)

// Completion is the result of a single completion call. Truncated is set
// when the provider stopped generating because the token budget ran out;
// callers treat it as a soft warning, not a failure.
type Completion struct {
	Text      string
	Truncated bool
}

// Client is an abstraction over completion providers
type Client interface {
	// Complete sends a prompt and returns the raw text completion
	Complete(ctx context.Context, prompt string, maxTokens int) (Completion, error)
	// Model returns the underlying provider model name
	Model() string
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a new completion client based on configuration
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey)
	case ProviderAnthropic:
		return NewAnthropicClient(config, apiKey)
	default:
		return nil, fmt.Errorf("unknown provider %q", config.Provider)
	}
}
