package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/mevzuat-cli/internal/core/domain"
	"github.com/custodia-labs/mevzuat-cli/internal/core/ports/driven"
	"github.com/custodia-labs/mevzuat-cli/internal/core/ports/driving"
	"github.com/custodia-labs/mevzuat-cli/internal/logger"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService extracts text from uploaded documents.
type DocumentService struct {
	extractor driven.Extractor
}

// NewDocumentService creates a document service.
func NewDocumentService(extractor driven.Extractor) *DocumentService {
	return &DocumentService{extractor: extractor}
}

// Extract returns the plain text of content.
func (s *DocumentService) Extract(ctx context.Context, content []byte, fileType domain.FileType) (string, error) {
	if len(content) == 0 {
		return "", fmt.Errorf("%w: empty document", domain.ErrInvalidInput)
	}
	if !fileType.IsValid() {
		logger.Error("Unsupported document type %q", fileType)
		return "", fmt.Errorf("%w: file type %q", domain.ErrUnsupportedFormat, fileType)
	}

	text, err := s.extractor.Extract(ctx, content, fileType)
	if err != nil {
		return "", err
	}
	logger.Info("Extracted %d characters from %s document", len(text), fileType)
	return text, nil
}
