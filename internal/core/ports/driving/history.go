package driving

import (
	"context"

	"github.com/custodia-labs/mevzuat-cli/internal/core/domain"
)

// HistoryService exposes previously answered questions.
type HistoryService interface {
	// Recent returns up to limit entries, newest first.
	// A non-positive limit uses domain.DefaultHistoryLimit.
	Recent(ctx context.Context, limit int) ([]domain.HistoryEntry, error)

	// Clear removes every entry.
	Clear(ctx context.Context) error
}
