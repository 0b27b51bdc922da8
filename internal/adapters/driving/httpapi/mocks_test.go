package httpapi

import (
	"context"

	"github.com/custodia-labs/mevzuat-cli/internal/core/domain"
	"github.com/custodia-labs/mevzuat-cli/internal/core/ports/driving"
)

type mockAssistantService struct {
	resp    *driving.AskResponse
	err     error
	lastReq driving.AskRequest
	calls   int
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
	m.calls++
	m.lastReq = req
	return m.resp, m.err
}

type mockRegulationService struct {
	records     []domain.RegulationRecord
	lastQuery   string
	lastSources []domain.SourceName
	calls       int
}

func (m *mockRegulationService) Search(
	_ context.Context, query string, sources []domain.SourceName,
) []domain.RegulationRecord {
	m.calls++
	m.lastQuery = query
	m.lastSources = sources
	return m.records
}

func (m *mockRegulationService) PageContent(_ context.Context, _ string) string {
	return ""
}

type mockDocumentService struct {
	text        string
	err         error
	lastContent []byte
	lastType    domain.FileType
	calls       int
}

func (m *mockDocumentService) Extract(_ context.Context, content []byte, fileType domain.FileType) (string, error) {
	m.calls++
	m.lastContent = content
	m.lastType = fileType
	return m.text, m.err
}

type testServer struct {
	server      *Server
	assistant   *mockAssistantService
	regulations *mockRegulationService
	documents   *mockDocumentService
}

func newTestServer() (*testServer, error) {
	ts := &testServer{
		assistant:   &mockAssistantService{resp: &driving.AskResponse{}},
		regulations: &mockRegulationService{},
		documents:   &mockDocumentService{},
	}
	server, err := NewServer(&Ports{
		Assistant:   ts.assistant,
		Regulations: ts.regulations,
		Documents:   ts.documents,
	})
	ts.server = server
	return ts, err
}
