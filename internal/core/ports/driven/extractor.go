package driven

import (
	"context"

	"github.com/custodia-labs/mevzuat-cli/internal/core/domain"
)

// Extractor converts an uploaded document into plain text.
type Extractor interface {
	// Extract returns the text of content interpreted as fileType.
	// Unknown types return domain.ErrUnsupportedFormat, malformed content domain.ErrParse.
	Extract(ctx context.Context, content []byte, fileType domain.FileType) (string, error)
}
