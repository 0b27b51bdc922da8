package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/mevzuat-cli/internal/core/domain"
	"github.com/custodia-labs/mevzuat-cli/internal/core/ports/driving"
)

func newTestAssistant(gw *mockGateway, sources []*mockSource, extractor *mockExtractor) *AssistantService {
	var regs driving.RegulationService
	if sources != nil {
		svc := NewRegulationSearchService()
		for _, src := range sources {
			svc.sources[src.name] = src
		}
		regs = svc
	}
	var docs driving.DocumentService
	if extractor != nil {
		docs = NewDocumentService(extractor)
	}

	a := NewAssistantService(NewComposer(testPrompts()), gw, regs, docs)
	a.newID = func() string { return "req-1" }
	return a
}

func TestNeedsUpdate(t *testing.T) {
	tests := []struct {
		answer   string
		expected bool
	}{
		{"Genel KDV oranı %20'dir.", false},
		{"Güncel oran için tebliğe bakınız.", true},
		{"SON DÜZENLEME ile değişti", true},
		{"Yeni uygulama 2025'te başladı", true},
		{"Kanunda DEĞİŞİKLİK yapılmıştır", true},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			assert.Equal(t, tt.expected, needsUpdate(tt.answer))
		})
	}
}

func TestAssistant_QuickAnswer(t *testing.T) {
	gw := &mockGateway{answerFor: func(domain.Prompt) (domain.ModelAnswer, error) {
		return domain.ModelAnswer{Text: "  Beyanname her ayın 28'ine kadar verilir.  "}, nil
	}}
	a := newTestAssistant(gw, nil, nil)

	quick, err := a.QuickAnswer(context.Background(), "KDV beyannamesi ne zaman verilir?")

	require.NoError(t, err)
	assert.Equal(t, "Beyanname her ayın 28'ine kadar verilir.", quick.Answer)
	assert.False(t, quick.NeedsUpdate)
	require.Len(t, gw.prompts, 1)
	assert.Contains(t, gw.prompts[0].User, "HIZLI")
}

func TestAssistant_QuickAnswer_FallbackOnFailure(t *testing.T) {
	gw := &mockGateway{answerFor: func(domain.Prompt) (domain.ModelAnswer, error) {
		return domain.ModelAnswer{}, errGatewayDown
	}}
	a := newTestAssistant(gw, nil, nil)

	quick, err := a.QuickAnswer(context.Background(), "soru")

	require.NoError(t, err)
	assert.Equal(t, FallbackAnswer, quick.Answer)
	assert.True(t, quick.NeedsUpdate)
}

func TestAssistant_QuickAnswer_EmptyQuestion(t *testing.T) {
	a := newTestAssistant(&mockGateway{}, nil, nil)

	_, err := a.QuickAnswer(context.Background(), " ")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAssistant_AnswerWithContext(t *testing.T) {
	gw := &mockGateway{}
	a := newTestAssistant(gw, nil, nil)

	answer, err := a.AnswerWithContext(context.Background(), "soru", "özel bağlam")

	require.NoError(t, err)
	assert.Equal(t, "cevap", answer.Text)
	assert.Contains(t, gw.prompts[0].User, "Bağlam: özel bağlam")

	gw.answerFor = func(domain.Prompt) (domain.ModelAnswer, error) { return domain.ModelAnswer{}, errGatewayDown }
	_, err = a.AnswerWithContext(context.Background(), "soru", "özel bağlam")
	assert.ErrorIs(t, err, errGatewayDown)
}

func TestAssistant_Ask_QuickOnly(t *testing.T) {
	src := &mockSource{name: domain.SourceMevzuat}
	a := newTestAssistant(&mockGateway{}, []*mockSource{src}, nil)

	resp, err := a.Ask(context.Background(), driving.AskRequest{Question: "soru"})

	require.NoError(t, err)
	assert.Equal(t, "req-1", resp.RequestID)
	assert.Equal(t, "cevap", resp.Quick.Answer)
	assert.False(t, resp.Searched)
	assert.Nil(t, resp.Best)
	assert.Nil(t, resp.ContextAnswer)
	assert.Empty(t, resp.Results)
	assert.Equal(t, 0, src.calls)
}

func TestAssistant_Ask_WithSources(t *testing.T) {
	record := domain.RegulationRecord{
		Title: "KDV Kanunu", Content: "KDV oranı %20'dir.", Link: "https://www.mevzuat.gov.tr/k", Source: domain.SourceMevzuat,
	}
	src := &mockSource{name: domain.SourceMevzuat, records: []domain.RegulationRecord{record}}
	gw := &mockGateway{answerFor: func(p domain.Prompt) (domain.ModelAnswer, error) {
		if strings.Contains(p.User, "Bağlam:") {
			return domain.ModelAnswer{Text: "%20", Confidence: confidence(0.85)}, nil
		}
		return domain.ModelAnswer{Text: "hızlı cevap"}, nil
	}}
	a := newTestAssistant(gw, []*mockSource{src}, nil)

	resp, err := a.Ask(context.Background(), driving.AskRequest{
		Question: "KDV oranı nedir?",
		Sources:  []domain.SourceName{domain.SourceMevzuat},
	})

	require.NoError(t, err)
	assert.True(t, resp.Searched)
	assert.Equal(t, []domain.RegulationRecord{record}, resp.Results)
	require.NotNil(t, resp.Best)
	assert.Equal(t, "%20", resp.Best.Answer)
	assert.InDelta(t, 0.85, resp.Best.Confidence, 1e-9)
	assert.Equal(t, "hızlı cevap", resp.Quick.Answer)
}

func TestAssistant_Ask_DefaultThreshold(t *testing.T) {
	src := &mockSource{name: domain.SourceMevzuat, records: []domain.RegulationRecord{{Title: "t", Content: "c", Link: "l"}}}
	gw := &mockGateway{answerFor: func(p domain.Prompt) (domain.ModelAnswer, error) {
		return domain.ModelAnswer{Text: "x", Confidence: confidence(0.65)}, nil
	}}
	a := newTestAssistant(gw, []*mockSource{src}, nil)

	resp, err := a.Ask(context.Background(), driving.AskRequest{Question: "q", Sources: []domain.SourceName{domain.SourceMevzuat}})
	require.NoError(t, err)
	require.NotNil(t, resp.Best)
	assert.True(t, resp.Best.IsSentinel())

	resp, err = a.Ask(context.Background(), driving.AskRequest{
		Question: "q", Sources: []domain.SourceName{domain.SourceMevzuat}, Threshold: thresholdOf(0.6),
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.65, resp.Best.Confidence, 1e-9)
}

func TestAssistant_Ask_ZeroThresholdAcceptsAnyAnswer(t *testing.T) {
	src := &mockSource{name: domain.SourceMevzuat, records: []domain.RegulationRecord{{Title: "t", Content: "c", Link: "l"}}}
	gw := &mockGateway{answerFor: func(p domain.Prompt) (domain.ModelAnswer, error) {
		return domain.ModelAnswer{Text: "cevap", Confidence: confidence(0.5)}, nil
	}}
	a := newTestAssistant(gw, []*mockSource{src}, nil)

	resp, err := a.Ask(context.Background(), driving.AskRequest{
		Question: "q", Sources: []domain.SourceName{domain.SourceMevzuat}, Threshold: thresholdOf(0),
	})

	require.NoError(t, err)
	require.NotNil(t, resp.Best)
	assert.False(t, resp.Best.IsSentinel())
	assert.Equal(t, "cevap", resp.Best.Answer)
	assert.InDelta(t, 0.5, resp.Best.Confidence, 1e-9)
}

func TestAskRequest_ConfidenceThreshold(t *testing.T) {
	assert.InDelta(t, domain.DefaultConfidenceThreshold, driving.AskRequest{}.ConfidenceThreshold(), 1e-9)
	assert.Zero(t, driving.AskRequest{Threshold: thresholdOf(0)}.ConfidenceThreshold())
	assert.InDelta(t, 0.4, driving.AskRequest{Threshold: thresholdOf(0.4)}.ConfidenceThreshold(), 1e-9)
}

func TestAssistant_Ask_SourcesWithoutResults(t *testing.T) {
	a := newTestAssistant(&mockGateway{}, []*mockSource{{name: domain.SourceGIB}}, nil)

	resp, err := a.Ask(context.Background(), driving.AskRequest{Question: "q", Sources: []domain.SourceName{domain.SourceGIB}})

	require.NoError(t, err)
	assert.True(t, resp.Searched)
	assert.Empty(t, resp.Results)
	assert.Nil(t, resp.Best)
}

func TestAssistant_Ask_WithDocument(t *testing.T) {
	gw := &mockGateway{}
	a := newTestAssistant(gw, nil, &mockExtractor{text: "Tebliğ metni"})

	resp, err := a.Ask(context.Background(), driving.AskRequest{
		Question:     "q",
		Document:     []byte("<xml/>"),
		DocumentType: domain.FileTypeXML,
	})

	require.NoError(t, err)
	require.NotNil(t, resp.ContextAnswer)
	assert.Equal(t, "cevap", resp.ContextAnswer.Text)
	require.Len(t, gw.prompts, 2)
	assert.Contains(t, gw.prompts[1].User, "Bağlam: Tebliğ metni")
}

func TestAssistant_Ask_DocumentErrors(t *testing.T) {
	t.Run("extraction failure", func(t *testing.T) {
		a := newTestAssistant(&mockGateway{}, nil, &mockExtractor{err: domain.ErrParse})
		_, err := a.Ask(context.Background(), driving.AskRequest{
			Question: "q", Document: []byte("%PDF"), DocumentType: domain.FileTypePDF,
		})
		assert.ErrorIs(t, err, domain.ErrParse)
	})

	t.Run("unsupported type", func(t *testing.T) {
		a := newTestAssistant(&mockGateway{}, nil, &mockExtractor{})
		_, err := a.Ask(context.Background(), driving.AskRequest{
			Question: "q", Document: []byte("x"), DocumentType: "docx",
		})
		assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
	})

	t.Run("no extractor", func(t *testing.T) {
		a := newTestAssistant(&mockGateway{}, nil, nil)
		_, err := a.Ask(context.Background(), driving.AskRequest{
			Question: "q", Document: []byte("x"), DocumentType: domain.FileTypeXML,
		})
		assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
	})

	t.Run("context answer failure is not fatal", func(t *testing.T) {
		gw := &mockGateway{answerFor: func(p domain.Prompt) (domain.ModelAnswer, error) {
			if strings.Contains(p.User, "Bağlam:") {
				return domain.ModelAnswer{}, errors.New("timeout")
			}
			return domain.ModelAnswer{Text: "hızlı"}, nil
		}}
		a := newTestAssistant(gw, nil, &mockExtractor{text: "metin"})
		resp, err := a.Ask(context.Background(), driving.AskRequest{
			Question: "q", Document: []byte("x"), DocumentType: domain.FileTypeXML,
		})
		require.NoError(t, err)
		assert.Nil(t, resp.ContextAnswer)
		assert.Equal(t, "hızlı", resp.Quick.Answer)
	})
}

func TestAssistant_Ask_EmptyQuestion(t *testing.T) {
	a := newTestAssistant(&mockGateway{}, nil, nil)

	_, err := a.Ask(context.Background(), driving.AskRequest{Question: ""})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
