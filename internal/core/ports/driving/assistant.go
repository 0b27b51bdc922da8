package driving

import (
	"context"

	"github.com/custodia-labs/mevzuat-cli/internal/core/domain"
)

// AskRequest is a question submitted by a user.
type AskRequest struct {
	// Question is the free-text question. Required.
	Question string

	// Sources selects the regulation websites to search. Empty skips the search.
	Sources []domain.SourceName

	// Document is an optional uploaded file used as closed context.
	Document []byte

	// DocumentType is the format of Document.
	DocumentType domain.FileType

	// Threshold is the minimum confidence for a best answer.
	// Nil uses domain.DefaultConfidenceThreshold; zero accepts any answer.
	Threshold *float64
}

// ConfidenceThreshold returns the requested threshold or the default.
func (r AskRequest) ConfidenceThreshold() float64 {
	if r.Threshold == nil {
		return domain.DefaultConfidenceThreshold
	}
	return *r.Threshold
}

// AskResponse carries every answer produced for a question.
type AskResponse struct {
	// RequestID correlates the response with log lines.
	RequestID string `json:"request_id"`

	// Quick is the model's direct answer.
	Quick domain.QuickAnswer `json:"quick"`

	// ContextAnswer is the answer grounded in the uploaded document, if any.
	ContextAnswer *domain.ModelAnswer `json:"context_answer,omitempty"`

	// Best is the best answer from the searched regulations, if any were found.
	Best *domain.BestAnswer `json:"best,omitempty"`

	// Results lists every record found across the selected sources.
	Results []domain.RegulationRecord `json:"results"`

	// Searched is true when at least one source was selected.
	Searched bool `json:"searched"`
}

// AssistantService answers questions about Turkish tax regulations.
type AssistantService interface {
	// QuickAnswer asks the model directly. On model failure it returns a
	// fallback answer rather than an error.
	QuickAnswer(ctx context.Context, question string) (domain.QuickAnswer, error)

	// AnswerWithContext answers using only the given context text.
	AnswerWithContext(ctx context.Context, question, context string) (domain.ModelAnswer, error)

	// SelectBest asks the model once per document and keeps the most confident answer.
	SelectBest(ctx context.Context, question string, documents []domain.RegulationRecord, threshold float64) domain.BestAnswer

	// Ask runs the full flow: quick answer, optional document context, optional search.
	Ask(ctx context.Context, req AskRequest) (*AskResponse, error)
}

// DocumentService extracts text from uploaded documents.
type DocumentService interface {
	// Extract returns the plain text of content.
	Extract(ctx context.Context, content []byte, fileType domain.FileType) (string, error)
}
