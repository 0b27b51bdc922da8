package services

import (
	"fmt"
	"os"
	"time"

	"github.com/custodia-labs/mevzuat-cli/internal/core/domain"
	"github.com/custodia-labs/mevzuat-cli/internal/core/ports/driven"
	"github.com/custodia-labs/mevzuat-cli/internal/core/ports/driving"
	"github.com/custodia-labs/mevzuat-cli/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyLLMProvider   = "llm.provider"
	keyLLMModel      = "llm.model"
	keyLLMBaseURL    = "llm.base_url"
	keyLLMAPIKey     = "llm.api_key"
	keyLLMTimeout    = "llm.timeout_seconds"
	keyLLMMaxRetries = "llm.max_retries"
	keyThreshold     = "search.confidence_threshold"
	keySources       = "search.sources"
	keyLogFile       = "log.file"
)

// Environment variables that override stored settings.
//
//nolint:gosec // G101: These are variable names, not actual credentials.
const (
	EnvProvider = "MEVZUAT_LLM_PROVIDER"
	EnvModel    = "MEVZUAT_LLM_MODEL"
	EnvAPIKey   = "MEVZUAT_LLM_API_KEY"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	aiValidator driven.AIConfigValidator
	getenv      func(string) string
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore, aiValidator driven.AIConfigValidator) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		aiValidator: aiValidator,
		getenv:      os.Getenv,
	}
}

// SetEnvLookup replaces the environment lookup. Useful for testing.
func (s *SettingsService) SetEnvLookup(getenv func(string) string) {
	s.getenv = getenv
}

// Get retrieves current application settings with environment overrides applied.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	settings, err := s.stored()
	if err != nil {
		return nil, err
	}
	s.applyEnv(settings)
	return settings, nil
}

// stored reads settings from the config store only.
func (s *SettingsService) stored() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	provider := s.getProvider(keyLLMProvider, defaults.LLM.Provider)
	model := s.configStore.GetString(keyLLMModel)
	if model == "" {
		model = domain.DefaultLLMModels()[provider]
	}

	settings := &domain.AppSettings{
		LLM: domain.LLMSettings{
			Provider:   provider,
			Model:      model,
			BaseURL:    s.configStore.GetString(keyLLMBaseURL),
			APIKey:     s.configStore.GetString(keyLLMAPIKey),
			Timeout:    s.getSeconds(keyLLMTimeout, defaults.LLM.Timeout),
			MaxRetries: s.getInt(keyLLMMaxRetries, defaults.LLM.MaxRetries),
		},
		Search: domain.SearchSettings{
			ConfidenceThreshold: s.getThreshold(defaults.Search.ConfidenceThreshold),
			DefaultSources:      s.getSources(),
		},
		Log: domain.LogSettings{
			File: s.configStore.GetString(keyLogFile),
		},
	}

	return settings, nil
}

// applyEnv overlays environment variables. The provider-specific key
// variable is used only when no explicit key is configured.
func (s *SettingsService) applyEnv(settings *domain.AppSettings) {
	if v := s.getenv(EnvProvider); v != "" {
		provider := domain.AIProvider(v)
		if provider.IsValid() {
			if provider != settings.LLM.Provider && s.configStore.GetString(keyLLMModel) == "" {
				settings.LLM.Model = domain.DefaultLLMModels()[provider]
			}
			settings.LLM.Provider = provider
		} else {
			logger.Warn("Ignoring %s=%q: unknown provider", EnvProvider, v)
		}
	}
	if v := s.getenv(EnvModel); v != "" {
		settings.LLM.Model = v
	}
	if v := s.getenv(EnvAPIKey); v != "" {
		settings.LLM.APIKey = v
		return
	}
	if settings.LLM.APIKey == "" {
		if name, ok := domain.APIKeyEnvVars()[settings.LLM.Provider]; ok {
			settings.LLM.APIKey = s.getenv(name)
		}
	}
}

// Save persists application settings.
// Environment overrides are not written back unless the caller set them explicitly.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(keyLLMProvider, settings.LLM.Provider.String()); err != nil {
		return fmt.Errorf("save llm provider: %w", err)
	}
	if err := s.configStore.Set(keyLLMModel, settings.LLM.Model); err != nil {
		return fmt.Errorf("save llm model: %w", err)
	}
	if err := s.configStore.Set(keyLLMBaseURL, settings.LLM.BaseURL); err != nil {
		return fmt.Errorf("save llm base_url: %w", err)
	}
	if settings.LLM.APIKey != "" {
		if err := s.configStore.Set(keyLLMAPIKey, settings.LLM.APIKey); err != nil {
			return fmt.Errorf("save llm api_key: %w", err)
		}
	}
	if err := s.configStore.Set(keyLLMTimeout, int(settings.LLM.Timeout/time.Second)); err != nil {
		return fmt.Errorf("save llm timeout: %w", err)
	}
	if err := s.configStore.Set(keyLLMMaxRetries, settings.LLM.MaxRetries); err != nil {
		return fmt.Errorf("save llm max_retries: %w", err)
	}
	if err := s.configStore.Set(keyThreshold, settings.Search.ConfidenceThreshold); err != nil {
		return fmt.Errorf("save confidence threshold: %w", err)
	}
	sources := make([]string, 0, len(settings.Search.DefaultSources))
	for _, src := range settings.Search.DefaultSources {
		sources = append(sources, src.String())
	}
	if err := s.configStore.Set(keySources, sources); err != nil {
		return fmt.Errorf("save search sources: %w", err)
	}
	if settings.Log.File != "" {
		if err := s.configStore.Set(keyLogFile, settings.Log.File); err != nil {
			return fmt.Errorf("save log file: %w", err)
		}
	}

	return nil
}

// SetLLMProvider configures the LLM provider.
func (s *SettingsService) SetLLMProvider(provider domain.AIProvider, model, apiKey string) error {
	if !provider.IsValid() {
		return fmt.Errorf("invalid LLM provider: %s", provider)
	}

	if provider.RequiresAPIKey() && apiKey == "" {
		return fmt.Errorf("API key required for %s", provider)
	}

	settings, err := s.stored()
	if err != nil {
		return err
	}

	settings.LLM.Provider = provider

	if model != "" {
		settings.LLM.Model = model
	} else {
		settings.LLM.Model = domain.DefaultLLMModels()[provider]
	}

	// A base URL belongs to the previous provider.
	settings.LLM.BaseURL = ""
	settings.LLM.APIKey = apiKey

	return s.Save(settings)
}

// SetAPIKey updates the credential of the configured provider.
func (s *SettingsService) SetAPIKey(apiKey string) error {
	if apiKey == "" {
		return fmt.Errorf("%w: empty API key", domain.ErrInvalidInput)
	}
	return s.configStore.Set(keyLLMAPIKey, apiKey)
}

// SetConfidenceThreshold updates the best answer threshold.
func (s *SettingsService) SetConfidenceThreshold(threshold float64) error {
	if threshold < 0 || threshold > 1 {
		return fmt.Errorf("%w: threshold %.2f outside [0,1]", domain.ErrInvalidInput, threshold)
	}
	return s.configStore.Set(keyThreshold, threshold)
}

// Validate checks if current settings are usable.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	if !settings.LLM.Provider.IsValid() {
		return fmt.Errorf("%w: invalid provider %q", domain.ErrLLMUnavailable, settings.LLM.Provider)
	}
	if !settings.LLM.IsConfigured() {
		return fmt.Errorf("%w: no API key for %s (set %s or run 'mevzuat config set-key')",
			domain.ErrLLMUnavailable, settings.LLM.Provider, domain.APIKeyEnvVars()[settings.LLM.Provider])
	}
	if t := settings.Search.ConfidenceThreshold; t < 0 || t > 1 {
		return fmt.Errorf("%w: confidence threshold %.2f outside [0,1]", domain.ErrInvalidInput, t)
	}

	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// ValidateLLMConfig validates the current LLM configuration by pinging the provider.
func (s *SettingsService) ValidateLLMConfig() error {
	if s.aiValidator == nil {
		return nil
	}
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return s.aiValidator.ValidateLLM(&settings.LLM)
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getSeconds(key string, defaultVal time.Duration) time.Duration {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return time.Duration(val) * time.Second
}

func (s *SettingsService) getThreshold(defaultVal float64) float64 {
	if _, exists := s.configStore.Get(keyThreshold); !exists {
		return defaultVal
	}
	return s.configStore.GetFloat(keyThreshold)
}

func (s *SettingsService) getSources() []domain.SourceName {
	names := s.configStore.GetStringSlice(keySources)
	sources := make([]domain.SourceName, 0, len(names))
	for _, name := range names {
		src, err := domain.ParseSourceName(name)
		if err != nil {
			logger.Warn("Ignoring configured source: %v", err)
			continue
		}
		sources = append(sources, src)
	}
	return sources
}

func (s *SettingsService) getProvider(key string, defaultVal domain.AIProvider) domain.AIProvider {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	provider := domain.AIProvider(val)
	if !provider.IsValid() {
		return defaultVal
	}
	return provider
}
