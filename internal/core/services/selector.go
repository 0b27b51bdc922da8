package services

import (
	"context"

	"github.com/custodia-labs/mevzuat-cli/internal/core/domain"
	"github.com/custodia-labs/mevzuat-cli/internal/core/ports/driven"
	"github.com/custodia-labs/mevzuat-cli/internal/logger"
)

// Selector picks the most confident answer across retrieved documents.
type Selector struct {
	composer *Composer
	gateway  driven.ModelGateway
}

// NewSelector creates a selector that asks gateway one question per document.
func NewSelector(composer *Composer, gateway driven.ModelGateway) *Selector {
	return &Selector{composer: composer, gateway: gateway}
}

// SelectBest asks the model about each document in order, using the document's
// content as the only context. A candidate replaces the current best only when
// its confidence is strictly greater than the best so far and at least threshold.
// When nothing qualifies the NoAnswer sentinel is returned.
func (s *Selector) SelectBest(
	ctx context.Context, question string, documents []domain.RegulationRecord, threshold float64,
) domain.BestAnswer {
	best := domain.NoAnswer()
	maxConfidence := 0.0

	for i, doc := range documents {
		content := doc.Content
		prompt := s.composer.Compose(question, &content, nil, s.gateway.Provider())

		answer, err := s.gateway.Request(ctx, prompt)
		if err != nil {
			logger.Error("Answer for document %d (%s) failed: %v", i, doc.Link, err)
			continue
		}

		confidence := answer.EffectiveConfidence()
		logger.Debug("Document %d %q confidence %.2f", i, logger.Truncate(doc.Title, 60), confidence)

		if confidence > maxConfidence && confidence >= threshold {
			maxConfidence = confidence
			best = domain.BestAnswer{
				Answer:     answer.Text,
				Confidence: confidence,
				Source:     sourceLabel(doc.Source),
				Link:       doc.Link,
				Date:       doc.Date,
			}
		}
	}

	if best.IsSentinel() {
		logger.Info("No answer met confidence threshold %.2f across %d documents", threshold, len(documents))
	}
	return best
}

func sourceLabel(source domain.SourceName) string {
	if source == "" {
		return domain.UnknownSource
	}
	return source.String()
}
