package driven

import (
	"context"

	"github.com/custodia-labs/mevzuat-cli/internal/core/domain"
)

// ModelGateway sends composed prompts to an LLM provider.
type ModelGateway interface {
	// Request sends prompt and returns the normalised answer.
	// Transient failures are retried; the error of the last attempt is returned.
	Request(ctx context.Context, prompt domain.Prompt) (domain.ModelAnswer, error)

	// Provider returns the backend this gateway talks to.
	Provider() domain.AIProvider

	// Ping sends a minimal prompt with a single attempt to verify connectivity.
	Ping(ctx context.Context) error
}

// ProviderStrategy shapes requests for and parses responses from one provider.
type ProviderStrategy interface {
	// Provider returns the backend this strategy serves.
	Provider() domain.AIProvider

	// Endpoint returns the URL requests are POSTed to.
	Endpoint() string

	// Headers returns the authentication and versioning headers.
	Headers() map[string]string

	// BuildRequest returns the JSON-serialisable request body for prompt.
	BuildRequest(prompt domain.Prompt) (any, error)

	// ParseResponse normalises a 2xx response body.
	// Returns domain.ErrParse for undecodable bodies and
	// domain.ErrUnsupportedFormat for bodies of an unknown shape.
	ParseResponse(body []byte) (domain.ModelAnswer, error)
}
