package mcp

import (
	"context"

	"github.com/custodia-labs/mevzuat-cli/internal/core/domain"
	"github.com/custodia-labs/mevzuat-cli/internal/core/ports/driving"
)

// mockAssistantService is a mock implementation of driving.AssistantService.
type mockAssistantService struct {
	resp    *driving.AskResponse
	err     error
	lastReq driving.AskRequest
}

func (m *mockAssistantService) QuickAnswer(_ context.Context, _ string) (domain.QuickAnswer, error) {
	return m.resp.Quick, m.err
}

func (m *mockAssistantService) AnswerWithContext(_ context.Context, _, _ string) (domain.ModelAnswer, error) {
	return domain.ModelAnswer{}, m.err
}

func (m *mockAssistantService) SelectBest(
	_ context.Context, _ string, _ []domain.RegulationRecord, _ float64,
) domain.BestAnswer {
	return domain.NoAnswer()
}

func (m *mockAssistantService) Ask(_ context.Context, req driving.AskRequest) (*driving.AskResponse, error) {
	m.lastReq = req
	return m.resp, m.err
}

// mockRegulationService is a mock implementation of driving.RegulationService.
type mockRegulationService struct {
	records     []domain.RegulationRecord
	page        string
	lastQuery   string
	lastSources []domain.SourceName
}

func (m *mockRegulationService) Search(
	_ context.Context, query string, sources []domain.SourceName,
) []domain.RegulationRecord {
	m.lastQuery = query
	m.lastSources = sources
	return m.records
}

func (m *mockRegulationService) PageContent(_ context.Context, _ string) string {
	return m.page
}

func newTestPorts() (*Ports, *mockAssistantService, *mockRegulationService) {
	assistant := &mockAssistantService{resp: &driving.AskResponse{}}
	regulations := &mockRegulationService{}
	return &Ports{Assistant: assistant, Regulations: regulations}, assistant, regulations
}
