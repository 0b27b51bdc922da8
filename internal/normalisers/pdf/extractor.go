// Package pdf extracts plain text from PDF documents, page by page.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/custodia-labs/mevzuat-cli/internal/core/domain"
)

// PageReader returns the plain text of every page of a PDF, in page order.
type PageReader interface {
	Pages(content []byte) ([]string, error)
}

// Extractor extracts text from PDF documents.
type Extractor struct {
	reader PageReader
}

// New creates a PDF extractor backed by github.com/ledongthuc/pdf.
func New() *Extractor {
	return &Extractor{reader: documentReader{}}
}

// NewWithReader creates a PDF extractor with a custom page reader (for testing).
func NewWithReader(reader PageReader) *Extractor {
	return &Extractor{reader: reader}
}

// Extract joins the page texts with newlines.
func (e *Extractor) Extract(_ context.Context, content []byte) (string, error) {
	if len(content) == 0 {
		return "", fmt.Errorf("%w: empty PDF", domain.ErrParse)
	}

	pages, err := e.reader.Pages(content)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrParse, err)
	}

	return strings.TrimSpace(strings.Join(pages, "\n")), nil
}

// documentReader reads pages with github.com/ledongthuc/pdf.
type documentReader struct{}

func (documentReader) Pages(content []byte) (pages []string, err error) {
	// The parser panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			pages, err = nil, fmt.Errorf("malformed PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, err
	}

	pages = make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i, err)
		}
		pages = append(pages, text)
	}

	return pages, nil
}
