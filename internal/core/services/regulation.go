package services

import (
	"context"
	"strings"

	"github.com/custodia-labs/mevzuat-cli/internal/core/domain"
	"github.com/custodia-labs/mevzuat-cli/internal/core/ports/driven"
	"github.com/custodia-labs/mevzuat-cli/internal/core/ports/driving"
	"github.com/custodia-labs/mevzuat-cli/internal/logger"
)

// Ensure RegulationSearchService implements the interface.
var _ driving.RegulationService = (*RegulationSearchService)(nil)

// RegulationSearchService searches regulation websites one source at a time.
type RegulationSearchService struct {
	sources map[domain.SourceName]driven.RegulationSource
	pages   driven.PageFetcher
}

// NewRegulationSearchService creates a search service over sources.
// A later source with the same name replaces an earlier one.
func NewRegulationSearchService(sources ...driven.RegulationSource) *RegulationSearchService {
	s := &RegulationSearchService{
		sources: make(map[domain.SourceName]driven.RegulationSource, len(sources)),
	}
	for _, src := range sources {
		s.sources[src.Name()] = src
	}
	return s
}

// SetPageFetcher sets the fetcher used by PageContent.
func (s *RegulationSearchService) SetPageFetcher(pages driven.PageFetcher) {
	s.pages = pages
}

// Search queries each requested source in order and concatenates the results.
// A source that fails contributes nothing; the others are unaffected.
// Duplicate source names are searched once. Records are not de-duplicated.
func (s *RegulationSearchService) Search(
	ctx context.Context, query string, sources []domain.SourceName,
) []domain.RegulationRecord {
	logger.Section("Regulation Search")

	results := []domain.RegulationRecord{}
	query = strings.TrimSpace(query)
	if query == "" {
		logger.Debug("Empty query, returning no results")
		return results
	}

	seen := make(map[domain.SourceName]bool, len(sources))
	for _, name := range sources {
		if seen[name] {
			continue
		}
		seen[name] = true

		src, ok := s.sources[name]
		if !ok {
			logger.Warn("Source %q is not registered, skipping", name)
			continue
		}

		records, err := src.Search(ctx, query)
		if err != nil {
			logger.Error("Search on %s failed: %v", name, err)
			continue
		}
		logger.Info("%s returned %d results for %q", name, len(records), query)
		results = append(results, records...)
	}

	return results
}

// PageContent returns the main text of a regulation page, or "" when no
// fetcher is configured or the fetch fails.
func (s *RegulationSearchService) PageContent(ctx context.Context, link string) string {
	if s.pages == nil {
		logger.Warn("No page fetcher configured")
		return ""
	}
	return s.pages.PageContent(ctx, link)
}
