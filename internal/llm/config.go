// Package llm provides centralized completion-client configuration and
// provider abstractions. The default provider is the Anthropic Messages API;
// Gemini is available for provider switching.
package llm

// Provider represents a completion provider
type Provider string

// Provider constants define supported completion providers
const (
	// ProviderAnthropic is the Anthropic Messages API provider (default)
	ProviderAnthropic Provider = "anthropic"
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// Default endpoint settings for the Anthropic provider.
const (
	DefaultAnthropicBaseURL = "https://api.anthropic.com"
	DefaultAnthropicModel   = "claude-sonnet-4-20250514"
	DefaultGeminiModel      = "gemini-2.5-flash"
)

// Config holds the completion-client configuration for the application
type Config struct {
	Provider Provider
	Model    string
	BaseURL  string
}

// DefaultConfig returns the default configuration (currently Anthropic)
func DefaultConfig() *Config {
	return DefaultAnthropicConfig()
}

// DefaultAnthropicConfig returns the default Anthropic configuration
func DefaultAnthropicConfig() *Config {
	return &Config{
		Provider: ProviderAnthropic,
		Model:    DefaultAnthropicModel,
		BaseURL:  DefaultAnthropicBaseURL,
	}
}

// DefaultGeminiConfig returns the default Gemini configuration
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Model:    DefaultGeminiModel,
	}
}

// WithModel returns a copy of the Config with a specific model
func (c *Config) WithModel(model string) *Config {
	newConfig := *c
	newConfig.Model = model
	return &newConfig
}

// WithBaseURL returns a copy of the Config with a specific base URL
func (c *Config) WithBaseURL(baseURL string) *Config {
	newConfig := *c
	newConfig.BaseURL = baseURL
	return &newConfig
}
