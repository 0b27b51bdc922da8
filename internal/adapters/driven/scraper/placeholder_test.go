package scraper

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/mevzuat-cli/internal/core/domain"
)

func TestPlaceholder_Search(t *testing.T) {
	for _, name := range []domain.SourceName{domain.SourceGIB, domain.SourceMevbank} {
		t.Run(name.String(), func(t *testing.T) {
			p := NewPlaceholder(name)

			records, err := p.Search(context.Background(), "vergi")

			require.NoError(t, err)
			assert.NotNil(t, records)
			assert.Empty(t, records)
			assert.Equal(t, name, p.Name())
		})
	}
}

func TestSources(t *testing.T) {
	sources, pages := Sources()

	require.Len(t, sources, 4)
	names := make([]domain.SourceName, 0, len(sources))
	for _, src := range sources {
		names = append(names, src.Name())
	}
	assert.Equal(t, domain.AllSources(), names)
	assert.NotNil(t, pages)
}
