package services

import (
	"context"
	"errors"
	"sync"

	"github.com/custodia-labs/mevzuat-cli/internal/core/domain"
	"github.com/custodia-labs/mevzuat-cli/internal/core/ports/driven"
)

// --- Mock implementations ---

var errGatewayDown = errors.New("gateway down")

// mockGateway implements driven.ModelGateway for testing.
// answerFor maps a prompt to an answer; prompts are recorded in order.
type mockGateway struct {
	mu        sync.Mutex
	provider  domain.AIProvider
	answerFor func(prompt domain.Prompt) (domain.ModelAnswer, error)
	prompts   []domain.Prompt
	pingErr   error
}

func (m *mockGateway) Request(_ context.Context, prompt domain.Prompt) (domain.ModelAnswer, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()
	if m.answerFor == nil {
		return domain.ModelAnswer{Text: "cevap"}, nil
	}
	return m.answerFor(prompt)
}

func (m *mockGateway) Provider() domain.AIProvider {
	if m.provider == "" {
		return domain.AIProviderOpenAI
	}
	return m.provider
}

func (m *mockGateway) Ping(_ context.Context) error {
	return m.pingErr
}

func confidence(f float64) *float64 { return &f }

func thresholdOf(f float64) *float64 { return &f }

// mockSource implements driven.RegulationSource for testing.
type mockSource struct {
	name    domain.SourceName
	records []domain.RegulationRecord
	err     error
	calls   int
	queries []string
}

func (m *mockSource) Name() domain.SourceName { return m.name }

func (m *mockSource) Search(_ context.Context, query string) ([]domain.RegulationRecord, error) {
	m.calls++
	m.queries = append(m.queries, query)
	if m.err != nil {
		return nil, m.err
	}
	return m.records, nil
}

// mockPages implements driven.PageFetcher for testing.
type mockPages struct {
	content string
}

func (m *mockPages) PageContent(_ context.Context, _ string) string { return m.content }

// mockExtractor implements driven.Extractor for testing.
type mockExtractor struct {
	text string
	err  error
}

func (m *mockExtractor) Extract(_ context.Context, _ []byte, _ domain.FileType) (string, error) {
	return m.text, m.err
}

// mockPromptStore implements driven.PromptStore for testing.
type mockPromptStore struct {
	prompts map[string]string
}

func (m *mockPromptStore) Load(name string) (string, error) {
	if p, ok := m.prompts[name]; ok {
		return p, nil
	}
	return "", errors.New("not found")
}

func (m *mockPromptStore) Reload() {}

// mockValidator implements driven.AIConfigValidator for testing.
type mockValidator struct {
	err      error
	validate *domain.LLMSettings
}

func (m *mockValidator) ValidateLLM(config *domain.LLMSettings) error {
	m.validate = config
	return m.err
}

// mockHistoryStore implements driven.HistoryStore for testing.
type mockHistoryStore struct {
	entries []domain.HistoryEntry
	err     error
	limit   int
}

func (m *mockHistoryStore) Save(_ context.Context, entry domain.HistoryEntry) error {
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, entry)
	return nil
}

func (m *mockHistoryStore) Recent(_ context.Context, limit int) ([]domain.HistoryEntry, error) {
	m.limit = limit
	return m.entries, m.err
}

func (m *mockHistoryStore) Clear(_ context.Context) error {
	m.entries = nil
	return m.err
}

var (
	_ driven.HistoryStore      = (*mockHistoryStore)(nil)
	_ driven.ModelGateway      = (*mockGateway)(nil)
	_ driven.RegulationSource  = (*mockSource)(nil)
	_ driven.PageFetcher       = (*mockPages)(nil)
	_ driven.Extractor         = (*mockExtractor)(nil)
	_ driven.PromptStore       = (*mockPromptStore)(nil)
	_ driven.AIConfigValidator = (*mockValidator)(nil)
)
