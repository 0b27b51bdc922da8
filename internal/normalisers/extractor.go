package normalisers

import (
	"context"
	"fmt"

	"github.com/custodia-labs/mevzuat-cli/internal/core/domain"
	"github.com/custodia-labs/mevzuat-cli/internal/core/ports/driven"
	"github.com/custodia-labs/mevzuat-cli/internal/logger"
	"github.com/custodia-labs/mevzuat-cli/internal/normalisers/pdf"
	"github.com/custodia-labs/mevzuat-cli/internal/normalisers/xml"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// FormatExtractor extracts text from one document format.
type FormatExtractor interface {
	Extract(ctx context.Context, content []byte) (string, error)
}

// Extractor dispatches documents to the extractor registered for their type.
type Extractor struct {
	formats map[domain.FileType]FormatExtractor
}

// NewExtractor creates an extractor handling PDF and XML.
func NewExtractor() *Extractor {
	e := &Extractor{formats: make(map[domain.FileType]FormatExtractor)}
	e.Register(domain.FileTypePDF, pdf.New())
	e.Register(domain.FileTypeXML, xml.New())
	return e
}

// Register sets the extractor for fileType, replacing any existing one.
func (e *Extractor) Register(fileType domain.FileType, format FormatExtractor) {
	e.formats[fileType] = format
}

// Extract returns the text of content interpreted as fileType.
func (e *Extractor) Extract(ctx context.Context, content []byte, fileType domain.FileType) (string, error) {
	format, ok := e.formats[fileType]
	if !ok {
		err := fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, fileType)
		logger.Warn("Extract: %v", err)
		return "", err
	}

	text, err := format.Extract(ctx, content)
	if err != nil {
		logger.Warn("Extract %s (%d bytes): %v", fileType, len(content), err)
		return "", err
	}

	logger.Debug("Extracted %d characters from %s document", len(text), fileType)
	return text, nil
}
