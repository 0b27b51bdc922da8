// Package openai provides the OpenAI chat completions strategy for the
// model gateway. Compatible APIs are reached by overriding the base URL.
package openai

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
	DefaultBaseURL = "https://api.openai.com/v1"
	DefaultModel   = "gpt-4o-mini"

	maxTokens   = 1024
	temperature = 0.1
)

// chatCompletionRequest is the OpenAI /chat/completions request format.
type chatCompletionRequest struct {
	Model       string              `json:"model"`
	Messages    []chatCompletionMsg `json:"messages"`
	MaxTokens   int                 `json:"max_tokens,omitempty"`
	Temperature float64             `json:"temperature,omitempty"`
}

// chatCompletionMsg is the OpenAI chat message format.
type chatCompletionMsg struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatCompletionResponse is the OpenAI /chat/completions response format.
type chatCompletionResponse struct {
	Choices []struct {
		Message *struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Strategy shapes requests for the OpenAI chat completions API.
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

// Provider returns domain.AIProviderOpenAI.
func (s *Strategy) Provider() domain.AIProvider {
	return domain.AIProviderOpenAI
}

// Endpoint returns the chat completions URL.
func (s *Strategy) Endpoint() string {
	return s.baseURL + "/chat/completions"
}

// Headers returns the bearer authorisation header.
func (s *Strategy) Headers() map[string]string {
	return map[string]string{"Authorization": "Bearer " + s.apiKey}
}

// BuildRequest maps the prompt onto a system and a user message.
func (s *Strategy) BuildRequest(prompt domain.Prompt) (any, error) {
	user := prompt.UserMessage()
	if user == "" {
		return nil, fmt.Errorf("%w: empty prompt", domain.ErrInvalidInput)
	}

	messages := make([]chatCompletionMsg, 0, 2)
	if prompt.System != "" {
		messages = append(messages, chatCompletionMsg{Role: "system", Content: prompt.System})
	}
	messages = append(messages, chatCompletionMsg{Role: "user", Content: user})

	return chatCompletionRequest{
		Model:       s.model,
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}, nil
}

// ParseResponse returns the content of the first choice.
func (s *Strategy) ParseResponse(body []byte) (domain.ModelAnswer, error) {
	if !json.Valid(body) {
		return domain.ModelAnswer{}, fmt.Errorf("%w: response is not JSON", domain.ErrParse)
	}

	var resp chatCompletionResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.ModelAnswer{}, fmt.Errorf("%w: %w", domain.ErrUnsupportedFormat, err)
	}
	if resp.Error != nil {
		return domain.ModelAnswer{}, fmt.Errorf("%w: openai error: %s", domain.ErrUnsupportedFormat, resp.Error.Message)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message == nil {
		return domain.ModelAnswer{}, fmt.Errorf("%w: no response choices returned", domain.ErrUnsupportedFormat)
	}

	return domain.ModelAnswer{
		Text: strings.TrimSpace(resp.Choices[0].Message.Content),
	}, nil
}
