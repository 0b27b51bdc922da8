package driven

import (
	"context"

	"github.com/custodia-labs/mevzuat-cli/internal/core/domain"
)

// HistoryStore persists answered questions.
type HistoryStore interface {
	// Save stores an entry. Saving an existing request ID replaces it.
	Save(ctx context.Context, entry domain.HistoryEntry) error

	// Recent returns up to limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]domain.HistoryEntry, error)

	// Clear removes every entry.
	Clear(ctx context.Context) error
}
