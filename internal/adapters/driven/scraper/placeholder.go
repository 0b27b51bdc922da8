package scraper

import (
	"context"

	"github.com/custodia-labs/mevzuat-cli/internal/core/domain"
	"github.com/custodia-labs/mevzuat-cli/internal/core/ports/driven"
)

// Ensure Placeholder implements the interface.
var _ driven.RegulationSource = (*Placeholder)(nil)

// Placeholder is a source without a search endpoint. It never matches.
type Placeholder struct {
	name domain.SourceName
}

// NewPlaceholder creates a placeholder for name.
func NewPlaceholder(name domain.SourceName) *Placeholder {
	return &Placeholder{name: name}
}

// Name returns the source this placeholder stands in for.
func (p *Placeholder) Name() domain.SourceName {
	return p.name
}

// Search always returns an empty slice.
func (p *Placeholder) Search(_ context.Context, _ string) ([]domain.RegulationRecord, error) {
	return []domain.RegulationRecord{}, nil
}

// Sources returns every known source: the two scraped sites and the placeholders.
// The returned Site for mevzuat.gov.tr doubles as the page fetcher.
func Sources() (sources []driven.RegulationSource, pages driven.PageFetcher) {
	mevzuat := NewSite(MevzuatConfig())
	sources = []driven.RegulationSource{
		mevzuat,
		NewSite(ResmiGazeteConfig()),
		NewPlaceholder(domain.SourceGIB),
		NewPlaceholder(domain.SourceMevbank),
	}
	return sources, mevzuat
}
