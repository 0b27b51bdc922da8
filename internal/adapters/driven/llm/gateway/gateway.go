// Package gateway sends composed prompts to an LLM provider over HTTP,
// retrying transient failures with exponential backoff.
//
// The provider-specific request and response shapes live in a
// driven.ProviderStrategy; the gateway owns transport, retries and logging.
package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/custodia-labs/mevzuat-cli/internal/core/domain"
	"github.com/custodia-labs/mevzuat-cli/internal/core/ports/driven"
	"github.com/custodia-labs/mevzuat-cli/internal/logger"
)

// Ensure Gateway implements the interface.
var _ driven.ModelGateway = (*Gateway)(nil)

// DefaultBackoff is the wait before the second attempt. It doubles for
// every following attempt.
const DefaultBackoff = time.Second

// pingPrompt is the minimal prompt sent by Ping.
const pingPrompt = "Merhaba"

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Gateway is a driven.ModelGateway over a single provider strategy.
type Gateway struct {
	strategy   driven.ProviderStrategy
	client     *resty.Client
	maxRetries int
	backoff    time.Duration
	sleep      SleepFunc
}

// New creates a gateway for strategy using the timeout and retry budget of cfg.
func New(strategy driven.ProviderStrategy, cfg domain.ProviderConfig) *Gateway {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = domain.DefaultRequestTimeout
	}
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = domain.DefaultMaxRetries
	}

	return &Gateway{
		strategy:   strategy,
		client:     resty.New().SetTimeout(timeout),
		maxRetries: maxRetries,
		backoff:    DefaultBackoff,
		sleep:      sleepContext,
	}
}

// SetSleep replaces the wait between attempts. Useful for testing.
func (g *Gateway) SetSleep(sleep SleepFunc) {
	g.sleep = sleep
}

// Provider returns the backend this gateway talks to.
func (g *Gateway) Provider() domain.AIProvider {
	return g.strategy.Provider()
}

// Request sends prompt, making at most maxRetries attempts. Transport
// failures and non-2xx responses are retried after Backoff*2^attempt;
// a response that cannot be parsed is returned immediately.
func (g *Gateway) Request(ctx context.Context, prompt domain.Prompt) (domain.ModelAnswer, error) {
	body, err := g.strategy.BuildRequest(prompt)
	if err != nil {
		return domain.ModelAnswer{}, fmt.Errorf("%s: build request: %w", g.Provider(), err)
	}

	var lastErr error
	for attempt := 0; attempt < g.maxRetries; attempt++ {
		if attempt > 0 {
			delay := g.backoff << (attempt - 1)
			logger.Debug("%s: retrying in %s (attempt %d/%d)", g.Provider(), delay, attempt+1, g.maxRetries)
			if err := g.sleep(ctx, delay); err != nil {
				return domain.ModelAnswer{}, fmt.Errorf("%w: %s: %w", domain.ErrNetwork, g.Provider(), err)
			}
		}

		raw, err := g.post(ctx, body)
		if err != nil {
			lastErr = err
			logger.Warn("%s: attempt %d/%d failed: %v", g.Provider(), attempt+1, g.maxRetries, err)
			continue
		}

		return g.parse(raw)
	}

	logger.Error("%s: request failed after %d attempts: %v", g.Provider(), g.maxRetries, lastErr)
	return domain.ModelAnswer{}, fmt.Errorf("%w: %s: %d attempts: %w",
		domain.ErrNetwork, g.Provider(), g.maxRetries, lastErr)
}

// Ping sends a minimal prompt with a single attempt.
func (g *Gateway) Ping(ctx context.Context) error {
	body, err := g.strategy.BuildRequest(domain.Prompt{Text: pingPrompt, User: pingPrompt})
	if err != nil {
		return fmt.Errorf("%s: build request: %w", g.Provider(), err)
	}

	raw, err := g.post(ctx, body)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrNetwork, g.Provider(), err)
	}

	_, err = g.parse(raw)
	return err
}

// post performs one attempt and returns the body of a 2xx response.
func (g *Gateway) post(ctx context.Context, body any) ([]byte, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeaders(g.strategy.Headers()).
		SetBody(body).
		Post(g.strategy.Endpoint())
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%s; body: %s", resp.Status(), logger.Truncate(resp.String(), 200))
	}
	return resp.Body(), nil
}

func (g *Gateway) parse(raw []byte) (domain.ModelAnswer, error) {
	answer, err := g.strategy.ParseResponse(raw)
	if err != nil {
		logger.Error("%s: %v", g.Provider(), err)
		return domain.ModelAnswer{}, fmt.Errorf("%s: %w", g.Provider(), err)
	}
	answer.Provider = g.Provider()
	answer.Raw = raw
	return answer, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
