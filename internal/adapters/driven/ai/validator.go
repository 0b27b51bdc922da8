package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/mevzuat-cli/internal/core/domain"
	"github.com/custodia-labs/mevzuat-cli/internal/core/ports/driven"
)

// DefaultPingTimeout bounds a connectivity check against the provider.
const DefaultPingTimeout = 30 * time.Second

// Ensure ConfigValidator implements the interface.
var _ driven.AIConfigValidator = (*ConfigValidator)(nil)

// ConfigValidator checks LLM settings by building a gateway and pinging the provider.
type ConfigValidator struct {
	timeout time.Duration
}

// ValidatorOption configures a ConfigValidator.
type ValidatorOption func(*ConfigValidator)

// WithPingTimeout overrides DefaultPingTimeout. Non-positive values are ignored.
func WithPingTimeout(d time.Duration) ValidatorOption {
	return func(v *ConfigValidator) {
		if d > 0 {
			v.timeout = d
		}
	}
}

// NewConfigValidator creates a validator.
func NewConfigValidator(opts ...ValidatorOption) *ConfigValidator {
	v := &ConfigValidator{timeout: DefaultPingTimeout}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// ValidateLLM pings the configured provider.
// Nil or unconfigured settings have nothing to validate.
func (v *ConfigValidator) ValidateLLM(settings *domain.LLMSettings) error {
	if settings == nil || !settings.IsConfigured() {
		return nil
	}

	gw, err := CreateGateway(settings)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), v.timeout)
	defer cancel()

	if err := gw.Ping(ctx); err != nil {
		return fmt.Errorf("%w: service unreachable (%w). Run 'mevzuat config set-key' to fix",
			domain.ErrLLMUnavailable, err)
	}
	return nil
}
