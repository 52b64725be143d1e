package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// stopReasonMaxTokens is the stop reason signaling a truncated completion.
const stopReasonMaxTokens = "max_tokens"

// maxErrorBodyLen bounds the upstream error body carried in RequestError.
const maxErrorBodyLen = 200

// AnthropicClient implements Client for the Anthropic Messages API
type AnthropicClient struct {
	apiKey     string
	config     *Config
	httpClient *http.Client
}

// NewAnthropicClient creates a new Anthropic client
func NewAnthropicClient(config *Config, apiKey string) (*AnthropicClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if config == nil {
		config = DefaultAnthropicConfig()
	}
	if config.BaseURL == "" {
		config = config.WithBaseURL(DefaultAnthropicBaseURL)
	}
	if config.Model == "" {
		config = config.WithModel(DefaultAnthropicModel)
	}

	return &AnthropicClient{
		apiKey: apiKey,
		config: config,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}, nil
}

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
}

// Complete sends a single-message prompt and returns the text completion.
// A stop reason of "max_tokens" is reported as a truncated completion, not
// an error.
func (c *AnthropicClient) Complete(ctx context.Context, prompt string, maxTokens int) (Completion, error) {
	reqBody := messagesRequest{
		Model:     c.config.Model,
		MaxTokens: maxTokens,
		Messages: []message{
			{Role: "user", Content: prompt},
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return Completion{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/v1/messages", bytes.NewReader(jsonBody))
	if err != nil {
		return Completion{}, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Completion{}, fmt.Errorf("failed to call completion endpoint: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Completion{}, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		excerpt := strings.TrimSpace(string(body))
		if len(excerpt) > maxErrorBodyLen {
			excerpt = excerpt[:maxErrorBodyLen]
		}
		return Completion{}, &RequestError{Status: resp.StatusCode, Body: excerpt}
	}

	var msgResp messagesResponse
	if err := json.Unmarshal(body, &msgResp); err != nil {
		return Completion{}, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(msgResp.Content) == 0 {
		return Completion{}, fmt.Errorf("empty content in response")
	}

	var sb strings.Builder
	for _, block := range msgResp.Content {
		sb.WriteString(block.Text)
	}

	return Completion{
		Text:      sb.String(),
		Truncated: msgResp.StopReason == stopReasonMaxTokens,
	}, nil
}

// Model returns the configured model name
func (c *AnthropicClient) Model() string {
	return c.config.Model
}

// Close releases resources held by the client
func (c *AnthropicClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}
