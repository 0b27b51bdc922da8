package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/custodia-labs/mevzuat-cli/internal/core/domain"
	"github.com/custodia-labs/mevzuat-cli/internal/core/ports/driven"
	"github.com/custodia-labs/mevzuat-cli/internal/core/ports/driving"
	"github.com/custodia-labs/mevzuat-cli/internal/logger"
)

// Ensure AssistantService implements the interface.
var _ driving.AssistantService = (*AssistantService)(nil)

// FallbackAnswer is returned as the quick answer when the model cannot be reached.
const FallbackAnswer = "Üzgünüm, şu anda cevap üretemiyorum. Lütfen tekrar deneyin."

// updateKeywords mark an answer that may describe superseded rules.
var updateKeywords = []string{"güncel", "son", "yeni", "değişiklik"}

// AssistantService answers questions about Turkish tax regulations.
type AssistantService struct {
	composer    *Composer
	selector    *Selector
	gateway     driven.ModelGateway
	regulations driving.RegulationService
	documents   driving.DocumentService
	history     driven.HistoryStore
	newID       func() string
	now         func() time.Time
}

// NewAssistantService creates an assistant.
// regulations and documents may be nil; Ask then skips the search or
// rejects attached documents.
func NewAssistantService(
	composer *Composer,
	gateway driven.ModelGateway,
	regulations driving.RegulationService,
	documents driving.DocumentService,
) *AssistantService {
	return &AssistantService{
		composer:    composer,
		selector:    NewSelector(composer, gateway),
		gateway:     gateway,
		regulations: regulations,
		documents:   documents,
		newID:       uuid.NewString,
		now:         time.Now,
	}
}

// SetHistory records every answered question in store. Nil disables recording.
func (s *AssistantService) SetHistory(store driven.HistoryStore) {
	s.history = store
}

// QuickAnswer asks the model directly, without retrieved documents.
func (s *AssistantService) QuickAnswer(ctx context.Context, question string) (domain.QuickAnswer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return domain.QuickAnswer{}, fmt.Errorf("%w: empty question", domain.ErrInvalidInput)
	}

	prompt := s.composer.Compose(question, nil, nil, s.gateway.Provider())
	answer, err := s.gateway.Request(ctx, prompt)
	if err != nil {
		logger.Error("Quick answer failed: %v", err)
		return domain.QuickAnswer{Answer: FallbackAnswer, NeedsUpdate: true}, nil
	}

	text := strings.TrimSpace(answer.Text)
	return domain.QuickAnswer{
		Answer:      text,
		NeedsUpdate: needsUpdate(text),
	}, nil
}

// AnswerWithContext answers using only contextText.
func (s *AssistantService) AnswerWithContext(
	ctx context.Context, question, contextText string,
) (domain.ModelAnswer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return domain.ModelAnswer{}, fmt.Errorf("%w: empty question", domain.ErrInvalidInput)
	}

	prompt := s.composer.Compose(question, &contextText, nil, s.gateway.Provider())
	answer, err := s.gateway.Request(ctx, prompt)
	if err != nil {
		logger.Error("Context answer failed: %v", err)
		return domain.ModelAnswer{}, err
	}
	answer.Text = strings.TrimSpace(answer.Text)
	return answer, nil
}

// SelectBest asks the model once per document and keeps the most confident answer.
func (s *AssistantService) SelectBest(
	ctx context.Context, question string, documents []domain.RegulationRecord, threshold float64,
) domain.BestAnswer {
	return s.selector.SelectBest(ctx, question, documents, threshold)
}

// Ask runs the full question flow.
func (s *AssistantService) Ask(ctx context.Context, req driving.AskRequest) (*driving.AskResponse, error) {
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return nil, fmt.Errorf("%w: empty question", domain.ErrInvalidInput)
	}

	resp := &driving.AskResponse{
		RequestID: s.newID(),
		Results:   []domain.RegulationRecord{},
	}
	logger.Section("Ask")
	logger.Info("[%s] Question: %q sources=%v document=%t",
		resp.RequestID, logger.Truncate(question, 120), req.Sources, len(req.Document) > 0)

	quick, err := s.QuickAnswer(ctx, question)
	if err != nil {
		return nil, err
	}
	resp.Quick = quick

	if len(req.Document) > 0 {
		if s.documents == nil {
			return nil, fmt.Errorf("%w: document extraction not configured", domain.ErrUnsupportedFormat)
		}
		text, err := s.documents.Extract(ctx, req.Document, req.DocumentType)
		if err != nil {
			return nil, fmt.Errorf("extract document: %w", err)
		}
		answer, err := s.AnswerWithContext(ctx, question, text)
		if err != nil {
			logger.Warn("[%s] Continuing without context answer", resp.RequestID)
		} else {
			resp.ContextAnswer = &answer
		}
	}

	if len(req.Sources) > 0 && s.regulations != nil {
		resp.Searched = true
		resp.Results = s.regulations.Search(ctx, question, req.Sources)
		if len(resp.Results) > 0 {
			best := s.selector.SelectBest(ctx, question, resp.Results, req.ConfidenceThreshold())
			resp.Best = &best
		}
	}

	logger.Info("[%s] Done: results=%d best=%t", resp.RequestID, len(resp.Results), resp.Best != nil)
	s.record(ctx, question, req.Sources, resp)
	return resp, nil
}

// record saves resp to the history. Failures are logged, never returned.
func (s *AssistantService) record(
	ctx context.Context, question string, sources []domain.SourceName, resp *driving.AskResponse,
) {
	if s.history == nil {
		return
	}

	entry := domain.HistoryEntry{
		RequestID:   resp.RequestID,
		Question:    question,
		Sources:     sources,
		QuickAnswer: resp.Quick.Answer,
		ResultCount: len(resp.Results),
		CreatedAt:   s.now(),
	}
	if resp.Best != nil {
		entry.BestAnswer = resp.Best.Answer
		entry.BestSource = resp.Best.Source
		entry.BestLink = resp.Best.Link
		entry.Confidence = resp.Best.Confidence
	}

	if err := s.history.Save(ctx, entry); err != nil {
		logger.Warn("[%s] Could not record history: %v", resp.RequestID, err)
	}
}

// needsUpdate reports whether answer mentions recency, which suggests the
// user should check the current regulations.
func needsUpdate(answer string) bool {
	lower := cases.Lower(language.Turkish).String(answer)
	for _, keyword := range updateKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
