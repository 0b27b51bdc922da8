package cli

import (
	"fmt"

	"github.com/custodia-labs/mevzuat-cli/internal/core/domain"
)

// resolveSources parses --source values. With none given it falls back to
// the configured default sources, and then to fallback.
func resolveSources(names []string, fallback []domain.SourceName) ([]domain.SourceName, error) {
	if len(names) > 0 {
		sources, err := domain.ParseSourceNames(names)
		if err != nil {
			return nil, fmt.Errorf("parsing --source: %w", err)
		}
		return sources, nil
	}

	if settingsService != nil {
		settings, err := settingsService.Get()
		if err == nil && len(settings.Search.DefaultSources) > 0 {
			return settings.Search.DefaultSources, nil
		}
	}
	return fallback, nil
}

func sourceNamesHelp() string {
	return "regulation source: mevzuat, resmigazete, gib, mevbank (repeatable)"
}
