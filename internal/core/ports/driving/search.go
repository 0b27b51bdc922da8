package driving

import (
	"context"

	"github.com/custodia-labs/mevzuat-cli/internal/core/domain"
)

// RegulationService searches regulation websites.
type RegulationService interface {
	// Search queries each requested source and concatenates the results.
	// A failing source contributes no records; Search itself never fails.
	Search(ctx context.Context, query string, sources []domain.SourceName) []domain.RegulationRecord

	// PageContent returns the main text of a regulation detail page, or "" on failure.
	PageContent(ctx context.Context, link string) string
}
