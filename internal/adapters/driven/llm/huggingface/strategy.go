// Package huggingface provides the Hugging Face text-generation inference
// strategy for the model gateway.
package huggingface

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
	DefaultBaseURL = "https://api-inference.huggingface.co/models"
	DefaultModel   = "mistralai/Mistral-7B-Instruct-v0.2"
)

// Generation parameters.
const (
	maxNewTokens      = 1024
	temperature       = 0.1
	topP              = 0.1
	repetitionPenalty = 1.2
)

// generateRequest is the inference API request format.
type generateRequest struct {
	Inputs     string             `json:"inputs"`
	Parameters generateParameters `json:"parameters"`
}

type generateParameters struct {
	MaxNewTokens      int     `json:"max_new_tokens"`
	Temperature       float64 `json:"temperature"`
	TopP              float64 `json:"top_p"`
	DoSample          bool    `json:"do_sample"`
	ReturnFullText    bool    `json:"return_full_text"`
	RepetitionPenalty float64 `json:"repetition_penalty"`
}

// generation is one element of the inference API response array.
type generation struct {
	GeneratedText *string  `json:"generated_text"`
	Score         *float64 `json:"score,omitempty"`
}

// Strategy shapes requests for the Hugging Face inference API.
type Strategy struct {
	endpoint string
	apiKey   string
}

// New creates a strategy from cfg. cfg.Endpoint overrides the models base URL.
func New(cfg domain.ProviderConfig) *Strategy {
	base := cfg.Endpoint
	if base == "" {
		base = DefaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	return &Strategy{
		endpoint: strings.TrimRight(base, "/") + "/" + model,
		apiKey:   cfg.APIKey,
	}
}

// Provider returns domain.AIProviderHuggingFace.
func (s *Strategy) Provider() domain.AIProvider {
	return domain.AIProviderHuggingFace
}

// Endpoint returns the model inference URL.
func (s *Strategy) Endpoint() string {
	return s.endpoint
}

// Headers returns the bearer authorisation header.
func (s *Strategy) Headers() map[string]string {
	return map[string]string{"Authorization": "Bearer " + s.apiKey}
}

// BuildRequest sends the full instruction-tagged prompt as inputs.
func (s *Strategy) BuildRequest(prompt domain.Prompt) (any, error) {
	if prompt.Text == "" {
		return nil, fmt.Errorf("%w: empty prompt", domain.ErrInvalidInput)
	}
	return generateRequest{
		Inputs: prompt.Text,
		Parameters: generateParameters{
			MaxNewTokens:      maxNewTokens,
			Temperature:       temperature,
			TopP:              topP,
			DoSample:          true,
			ReturnFullText:    false,
			RepetitionPenalty: repetitionPenalty,
		},
	}, nil
}

// ParseResponse reads the first generation. A reported score becomes the confidence.
func (s *Strategy) ParseResponse(body []byte) (domain.ModelAnswer, error) {
	if !json.Valid(body) {
		return domain.ModelAnswer{}, fmt.Errorf("%w: response is not JSON", domain.ErrParse)
	}

	var generations []generation
	if err := json.Unmarshal(body, &generations); err != nil {
		return domain.ModelAnswer{}, fmt.Errorf("%w: expected generation array: %w", domain.ErrUnsupportedFormat, err)
	}
	if len(generations) == 0 || generations[0].GeneratedText == nil {
		return domain.ModelAnswer{}, fmt.Errorf("%w: no generated_text", domain.ErrUnsupportedFormat)
	}

	first := generations[0]
	return domain.ModelAnswer{
		Text:       strings.TrimSpace(*first.GeneratedText),
		Confidence: first.Score,
	}, nil
}
