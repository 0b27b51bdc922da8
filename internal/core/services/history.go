package services

import (
	"context"

	"github.com/custodia-labs/mevzuat-cli/internal/core/domain"
	"github.com/custodia-labs/mevzuat-cli/internal/core/ports/driven"
	"github.com/custodia-labs/mevzuat-cli/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService lists previously answered questions.
type HistoryService struct {
	store driven.HistoryStore
}

// NewHistoryService creates a history service backed by store.
func NewHistoryService(store driven.HistoryStore) *HistoryService {
	return &HistoryService{store: store}
}

// Recent returns up to limit entries, newest first.
func (s *HistoryService) Recent(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	if limit <= 0 {
		limit = domain.DefaultHistoryLimit
	}
	return s.store.Recent(ctx, limit)
}

// Clear removes every entry.
func (s *HistoryService) Clear(ctx context.Context) error {
	return s.store.Clear(ctx)
}
