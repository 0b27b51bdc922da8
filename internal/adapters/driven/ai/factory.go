// Package ai builds model gateways from LLM settings.
package ai

import (
	"fmt"

	"github.com/custodia-labs/mevzuat-cli/internal/adapters/driven/llm/anthropic"
	"github.com/custodia-labs/mevzuat-cli/internal/adapters/driven/llm/gateway"
	"github.com/custodia-labs/mevzuat-cli/internal/adapters/driven/llm/huggingface"
	"github.com/custodia-labs/mevzuat-cli/internal/adapters/driven/llm/openai"
	"github.com/custodia-labs/mevzuat-cli/internal/core/domain"
	"github.com/custodia-labs/mevzuat-cli/internal/core/ports/driven"
)

// CreateStrategy returns the provider strategy for cfg.
func CreateStrategy(cfg domain.ProviderConfig) (driven.ProviderStrategy, error) {
	switch cfg.Provider {
	case domain.AIProviderHuggingFace:
		return huggingface.New(cfg), nil

	case domain.AIProviderOpenAI:
		return openai.New(cfg), nil

	case domain.AIProviderAnthropic:
		return anthropic.New(cfg), nil

	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}

// CreateGateway builds a gateway for the configured provider.
// Unconfigured settings return domain.ErrLLMUnavailable.
func CreateGateway(settings *domain.LLMSettings) (*gateway.Gateway, error) {
	if settings == nil || !settings.IsConfigured() {
		return nil, fmt.Errorf("%w: provider not configured. Run 'mevzuat config set-provider' to fix",
			domain.ErrLLMUnavailable)
	}

	cfg := settings.ProviderConfig()
	strategy, err := CreateStrategy(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrLLMUnavailable, err)
	}

	return gateway.New(strategy, cfg), nil
}

// ValidateLLMConfig validates settings with a default ConfigValidator.
func ValidateLLMConfig(settings *domain.LLMSettings) error {
	return NewConfigValidator().ValidateLLM(settings)
}
