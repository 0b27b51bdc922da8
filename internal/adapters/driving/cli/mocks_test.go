package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/mevzuat-cli/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/mevzuat-cli/internal/core/domain"
	"github.com/custodia-labs/mevzuat-cli/internal/core/ports/driving"
	"github.com/custodia-labs/mevzuat-cli/internal/core/services"
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
	page        string
	lastQuery   string
	lastSources []domain.SourceName
	lastLink    string
}

func (m *mockRegulationService) Search(
	_ context.Context, query string, sources []domain.SourceName,
) []domain.RegulationRecord {
	m.lastQuery = query
	m.lastSources = sources
	return m.records
}

func (m *mockRegulationService) PageContent(_ context.Context, link string) string {
	m.lastLink = link
	return m.page
}

type mockDocumentService struct {
	text        string
	err         error
	lastContent []byte
	lastType    domain.FileType
}

func (m *mockDocumentService) Extract(_ context.Context, content []byte, fileType domain.FileType) (string, error) {
	m.lastContent = content
	m.lastType = fileType
	return m.text, m.err
}

type testServices struct {
	assistant   *mockAssistantService
	regulations *mockRegulationService
	documents   *mockDocumentService
	settings    *services.SettingsService
	store       *memory.ConfigStore
}

// setupTestServices installs mock services backed by an in-memory config
// store with no environment overrides.
func setupTestServices() (*testServices, func()) {
	store := memory.NewConfigStore()
	settings := services.NewSettingsService(store, nil)
	settings.SetEnvLookup(func(string) string { return "" })

	ts := &testServices{
		assistant:   &mockAssistantService{resp: &driving.AskResponse{}},
		regulations: &mockRegulationService{},
		documents:   &mockDocumentService{},
		settings:    settings,
		store:       store,
	}
	SetServices(Services{
		Assistant:   ts.assistant,
		Regulations: ts.regulations,
		Documents:   ts.documents,
		Settings:    ts.settings,
	})

	return ts, func() {
		SetServices(Services{})
		resetFlags(rootCmd)
	}
}

// resetFlags restores every flag to its default so that commands can be
// executed repeatedly within one test binary.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if !f.Changed {
			return
		}
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs the root command with args and returns its combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		resetFlags(rootCmd)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}
