// Package anthropic provides the Anthropic messages strategy for the model gateway.
package anthropic

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/custodia-labs/mevzuat-cli/internal/core/domain"
	"github.com/custodia-labs/mevzuat-cli/internal/core/ports/driven"
)

// Ensure Strategy implements the interface.
var _ driven.ProviderStrategy = (*Strategy)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "https://api.anthropic.com"
	DefaultModel   = "claude-3-5-sonnet-latest"

	// anthropicVersion is the required API version header.
	anthropicVersion = "2023-06-01"

	maxTokens = 1024
)

// messagesRequest is the Anthropic /v1/messages request format.
type messagesRequest struct {
	Model     string            `json:"model"`
	Messages  []messagesMessage `json:"messages"`
	MaxTokens int               `json:"max_tokens"`
	System    string            `json:"system,omitempty"`
}

// messagesMessage is the Anthropic message format.
type messagesMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// messagesResponse is the Anthropic /v1/messages response format.
type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
	Error      *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Strategy shapes requests for the Anthropic messages API.
type Strategy struct {
	baseURL string
	apiKey  string
	model   string
}

// New creates a strategy from cfg.
func New(cfg domain.ProviderConfig) *Strategy {
	baseURL := cfg.Endpoint
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	return &Strategy{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  cfg.APIKey,
		model:   model,
	}
}

// Provider returns domain.AIProviderAnthropic.
func (s *Strategy) Provider() domain.AIProvider {
	return domain.AIProviderAnthropic
}

// Endpoint returns the messages URL.
func (s *Strategy) Endpoint() string {
	return s.baseURL + "/v1/messages"
}

// Headers returns the API key and version headers.
func (s *Strategy) Headers() map[string]string {
	return map[string]string{
		"x-api-key":         s.apiKey,
		"anthropic-version": anthropicVersion,
	}
}

// BuildRequest sends the instruction as the system field and the rest as one user message.
func (s *Strategy) BuildRequest(prompt domain.Prompt) (any, error) {
	user := prompt.UserMessage()
	if user == "" {
		return nil, fmt.Errorf("%w: empty prompt", domain.ErrInvalidInput)
	}

	return messagesRequest{
		Model:     s.model,
		Messages:  []messagesMessage{{Role: "user", Content: user}},
		MaxTokens: maxTokens,
		System:    prompt.System,
	}, nil
}

// ParseResponse concatenates the text content blocks.
func (s *Strategy) ParseResponse(body []byte) (domain.ModelAnswer, error) {
	if !json.Valid(body) {
		return domain.ModelAnswer{}, fmt.Errorf("%w: response is not JSON", domain.ErrParse)
	}

	var resp messagesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.ModelAnswer{}, fmt.Errorf("%w: %w", domain.ErrUnsupportedFormat, err)
	}
	if resp.Error != nil {
		return domain.ModelAnswer{}, fmt.Errorf("%w: anthropic error: %s", domain.ErrUnsupportedFormat, resp.Error.Message)
	}

	var text strings.Builder
	found := false
	for _, block := range resp.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
			found = true
		}
	}
	if !found {
		return domain.ModelAnswer{}, fmt.Errorf("%w: no text content blocks", domain.ErrUnsupportedFormat)
	}

	return domain.ModelAnswer{Text: strings.TrimSpace(text.String())}, nil
}
