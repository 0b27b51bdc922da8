package driven

import (
	"context"

	"github.com/custodia-labs/mevzuat-cli/internal/core/domain"
)

// RegulationSource searches a single regulation website.
type RegulationSource interface {
	// Name returns the source this implementation searches.
	Name() domain.SourceName

	// Search returns the records listed for query.
	// An empty slice with a nil error means the site had no matches.
	Search(ctx context.Context, query string) ([]domain.RegulationRecord, error)
}

// PageFetcher retrieves the body text of a regulation detail page.
type PageFetcher interface {
	// PageContent returns the main text of the page at link, or "" on failure.
	PageContent(ctx context.Context, link string) string
}
