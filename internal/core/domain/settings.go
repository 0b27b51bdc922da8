package domain

import "time"

const unknownDescription = "Unknown"

// DefaultConfidenceThreshold is the minimum confidence an answer needs
// to be selected as the best answer.
const DefaultConfidenceThreshold = 0.7

// DefaultMaxRetries is the number of gateway attempts made before a request fails.
const DefaultMaxRetries = 3

// DefaultRequestTimeout bounds a single LLM request.
const DefaultRequestTimeout = 120 * time.Second

// AIProvider identifies a hosted LLM backend.
type AIProvider string

// Available AI providers.
const (
	// AIProviderHuggingFace is the Hugging Face text-generation inference API.
	AIProviderHuggingFace AIProvider = "huggingface"

	// AIProviderOpenAI is the OpenAI chat completions API.
	AIProviderOpenAI AIProvider = "openai"

	// AIProviderAnthropic is the Anthropic messages API.
	AIProviderAnthropic AIProvider = "anthropic"
)

// IsValid returns true if the AI provider is recognised.
func (p AIProvider) IsValid() bool {
	switch p {
	case AIProviderHuggingFace, AIProviderOpenAI, AIProviderAnthropic:
		return true
	default:
		return false
	}
}

// RequiresAPIKey returns true if this provider needs an API key.
// Every supported provider is a hosted API.
func (p AIProvider) RequiresAPIKey() bool {
	return p.IsValid()
}

// UsesInstructionTags returns true if prompts for this provider are sent as
// free text wrapped in instruction delimiters rather than as chat messages.
func (p AIProvider) UsesInstructionTags() bool {
	return p == AIProviderHuggingFace
}

// String returns the string representation.
func (p AIProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p AIProvider) Description() string {
	switch p {
	case AIProviderHuggingFace:
		return "Hugging Face (text generation)"
	case AIProviderOpenAI:
		return "OpenAI (chat)"
	case AIProviderAnthropic:
		return "Anthropic (chat)"
	default:
		return unknownDescription
	}
}

// LLMSettings holds LLM provider configuration.
type LLMSettings struct {
	// Provider is the LLM service provider.
	Provider AIProvider

	// Model is the LLM model name.
	Model string

	// BaseURL overrides the provider endpoint. Empty uses the provider default.
	BaseURL string

	// APIKey is the provider credential.
	APIKey string

	// Timeout bounds a single request.
	Timeout time.Duration

	// MaxRetries is the number of attempts made per request.
	MaxRetries int
}

// IsConfigured returns true if the LLM provider is set up.
func (l LLMSettings) IsConfigured() bool {
	if !l.Provider.IsValid() {
		return false
	}
	if l.Provider.RequiresAPIKey() && l.APIKey == "" {
		return false
	}
	return true
}

// SearchSettings holds answer selection configuration.
type SearchSettings struct {
	// ConfidenceThreshold is the minimum confidence for a best answer.
	ConfidenceThreshold float64

	// DefaultSources are searched when a question does not name any.
	DefaultSources []SourceName
}

// LogSettings holds logging configuration.
type LogSettings struct {
	// File is the append-only log file path. Empty uses the default location.
	File string
}

// AppSettings holds all application settings.
type AppSettings struct {
	// LLM holds LLM provider settings.
	LLM LLMSettings

	// Search holds answer selection settings.
	Search SearchSettings

	// Log holds logging settings.
	Log LogSettings
}

// DefaultAppSettings returns settings with sensible defaults.
// The LLM provider defaults to Hugging Face but has no API key;
// it must come from the config file or the environment.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		LLM: LLMSettings{
			Provider:   AIProviderHuggingFace,
			Model:      DefaultLLMModels()[AIProviderHuggingFace],
			Timeout:    DefaultRequestTimeout,
			MaxRetries: DefaultMaxRetries,
		},
		Search: SearchSettings{
			ConfidenceThreshold: DefaultConfidenceThreshold,
		},
	}
}

// AllLLMProviders returns providers that support LLM operations.
func AllLLMProviders() []AIProvider {
	return []AIProvider{
		AIProviderHuggingFace,
		AIProviderOpenAI,
		AIProviderAnthropic,
	}
}

// DefaultLLMModels returns default models for each LLM provider.
func DefaultLLMModels() map[AIProvider]string {
	return map[AIProvider]string{
		AIProviderHuggingFace: "mistralai/Mistral-7B-Instruct-v0.2",
		AIProviderOpenAI:      "gpt-4o-mini",
		AIProviderAnthropic:   "claude-3-5-sonnet-latest",
	}
}

// APIKeyEnvVars returns the conventional environment variable holding
// each provider's credential.
func APIKeyEnvVars() map[AIProvider]string {
	return map[AIProvider]string{
		AIProviderHuggingFace: "HUGGING_FACE_TOKEN",
		AIProviderOpenAI:      "OPENAI_API_KEY",
		AIProviderAnthropic:   "ANTHROPIC_API_KEY",
	}
}

// ProviderConfig is the immutable configuration handed to the model gateway.
// It is built once from LLMSettings and never changes afterwards.
type ProviderConfig struct {
	Provider   AIProvider
	Endpoint   string
	APIKey     string
	Model      string
	Timeout    time.Duration
	MaxRetries int
}

// ProviderConfig builds the gateway configuration for these settings.
// Zero timeout and retry values fall back to the defaults.
func (l LLMSettings) ProviderConfig() ProviderConfig {
	cfg := ProviderConfig{
		Provider:   l.Provider,
		Endpoint:   l.BaseURL,
		APIKey:     l.APIKey,
		Model:      l.Model,
		Timeout:    l.Timeout,
		MaxRetries: l.MaxRetries,
	}
	if cfg.Model == "" {
		cfg.Model = DefaultLLMModels()[l.Provider]
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultRequestTimeout
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}
	return cfg
}
