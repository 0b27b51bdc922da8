package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/mevzuat-cli/internal/core/domain"
	"github.com/custodia-labs/mevzuat-cli/internal/core/ports/driving"
)

var kdvRecord = domain.RegulationRecord{
	Title:   "Katma Değer Vergisi Kanunu",
	Link:    "https://www.mevzuat.gov.tr/mevzuat?no=3065",
	Content: "KDV oranı %20'dir.",
	Date:    "02.11.1984",
	Source:  domain.SourceMevzuat,
}

func TestServer_handleAsk(t *testing.T) {
	ctx := context.Background()

	t.Run("returns answers and results", func(t *testing.T) {
		ports, assistant, _ := newTestPorts()
		assistant.resp = &driving.AskResponse{
			RequestID: "req-1",
			Quick:     domain.QuickAnswer{Answer: "Genel oran %20.", NeedsUpdate: true},
			Best: &domain.BestAnswer{
				Answer:     "KDV oranı %20'dir.",
				Confidence: 0.9,
				Source:     "mevzuat.gov.tr",
				Link:       kdvRecord.Link,
				Date:       kdvRecord.Date,
			},
			Results:  []domain.RegulationRecord{kdvRecord},
			Searched: true,
		}
		server, err := NewServer(ports)
		require.NoError(t, err)
		threshold := 0.8

		_, output, err := server.handleAsk(ctx, nil, AskInput{
			Question:  "KDV oranı nedir?",
			Sources:   []string{"mevzuat", "gib"},
			Threshold: &threshold,
		})

		require.NoError(t, err)
		assert.Equal(t, "req-1", output.RequestID)
		assert.Equal(t, "Genel oran %20.", output.QuickAnswer)
		assert.True(t, output.NeedsUpdate)
		require.NotNil(t, output.Best)
		assert.True(t, output.Best.Found)
		assert.Equal(t, 0.9, output.Best.Confidence)
		assert.Equal(t, 1, output.Count)
		assert.Equal(t, "mevzuat.gov.tr", output.Results[0].Source)

		assert.Equal(t, "KDV oranı nedir?", assistant.lastReq.Question)
		assert.Equal(t, []domain.SourceName{domain.SourceMevzuat, domain.SourceGIB}, assistant.lastReq.Sources)
		require.NotNil(t, assistant.lastReq.Threshold)
		assert.Equal(t, 0.8, *assistant.lastReq.Threshold)
	})

	t.Run("sentinel best answer is not found", func(t *testing.T) {
		ports, assistant, _ := newTestPorts()
		best := domain.NoAnswer()
		assistant.resp = &driving.AskResponse{Best: &best, Results: []domain.RegulationRecord{kdvRecord}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, output, err := server.handleAsk(ctx, nil, AskInput{Question: "x", Sources: []string{"mevzuat"}})

		require.NoError(t, err)
		require.NotNil(t, output.Best)
		assert.False(t, output.Best.Found)
		assert.Equal(t, domain.NoAnswerText, output.Best.Answer)
	})

	t.Run("no sources means no best answer", func(t *testing.T) {
		ports, assistant, _ := newTestPorts()
		assistant.resp = &driving.AskResponse{Quick: domain.QuickAnswer{Answer: "cevap"}, Results: []domain.RegulationRecord{}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, output, err := server.handleAsk(ctx, nil, AskInput{Question: "x"})

		require.NoError(t, err)
		assert.Nil(t, output.Best)
		assert.Empty(t, output.Results)
		assert.Empty(t, assistant.lastReq.Sources)
	})

	t.Run("unknown source", func(t *testing.T) {
		ports, _, _ := newTestPorts()
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleAsk(ctx, nil, AskInput{Question: "x", Sources: []string{"google"}})

		assert.ErrorIs(t, err, domain.ErrUnknownSource)
	})

	t.Run("threshold out of range", func(t *testing.T) {
		ports, assistant, _ := newTestPorts()
		server, err := NewServer(ports)
		require.NoError(t, err)
		threshold := 1.5

		_, _, err = server.handleAsk(ctx, nil, AskInput{Question: "x", Threshold: &threshold})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Empty(t, assistant.lastReq.Question)
	})

	t.Run("zero threshold is passed through", func(t *testing.T) {
		ports, assistant, _ := newTestPorts()
		assistant.resp = &driving.AskResponse{}
		server, err := NewServer(ports)
		require.NoError(t, err)
		threshold := 0.0

		_, _, err = server.handleAsk(ctx, nil, AskInput{Question: "x", Threshold: &threshold})

		require.NoError(t, err)
		require.NotNil(t, assistant.lastReq.Threshold)
		assert.Zero(t, *assistant.lastReq.Threshold)
	})

	t.Run("assistant error", func(t *testing.T) {
		ports, assistant, _ := newTestPorts()
		assistant.err = errors.New("boom")
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleAsk(ctx, nil, AskInput{Question: "x"})

		assert.EqualError(t, err, "boom")
	})
}

func TestServer_handleSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to all sources", func(t *testing.T) {
		ports, _, regulations := newTestPorts()
		regulations.records = []domain.RegulationRecord{kdvRecord}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, output, err := server.handleSearch(ctx, nil, SearchInput{Query: " KDV "})

		require.NoError(t, err)
		assert.Equal(t, 1, output.Count)
		assert.Equal(t, RecordOutput{
			Title:   kdvRecord.Title,
			Link:    kdvRecord.Link,
			Content: kdvRecord.Content,
			Date:    kdvRecord.Date,
			Source:  "mevzuat.gov.tr",
		}, output.Results[0])
		assert.Equal(t, "KDV", regulations.lastQuery)
		assert.Equal(t, domain.AllSources(), regulations.lastSources)
	})

	t.Run("explicit sources", func(t *testing.T) {
		ports, _, regulations := newTestPorts()
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, output, err := server.handleSearch(ctx, nil, SearchInput{Query: "vergi", Sources: []string{"gib", "mevbank"}})

		require.NoError(t, err)
		assert.Equal(t, 0, output.Count)
		assert.NotNil(t, output.Results)
		assert.Equal(t, []domain.SourceName{domain.SourceGIB, domain.SourceMevbank}, regulations.lastSources)
	})

	t.Run("empty query", func(t *testing.T) {
		ports, _, _ := newTestPorts()
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleSearch(ctx, nil, SearchInput{Query: "  "})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("unknown source", func(t *testing.T) {
		ports, _, _ := newTestPorts()
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleSearch(ctx, nil, SearchInput{Query: "vergi", Sources: []string{"yok"}})

		assert.ErrorIs(t, err, domain.ErrUnknownSource)
	})
}

func TestServer_handlePage(t *testing.T) {
	ctx := context.Background()

	t.Run("returns content", func(t *testing.T) {
		ports, _, regulations := newTestPorts()
		regulations.page = "Madde 1"
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, output, err := server.handlePage(ctx, nil, PageInput{URL: kdvRecord.Link})

		require.NoError(t, err)
		assert.Equal(t, PageOutput{URL: kdvRecord.Link, Content: "Madde 1"}, output)
	})

	t.Run("empty page", func(t *testing.T) {
		ports, _, _ := newTestPorts()
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handlePage(ctx, nil, PageInput{URL: kdvRecord.Link})

		assert.ErrorIs(t, err, domain.ErrNetwork)
	})

	t.Run("empty url", func(t *testing.T) {
		ports, _, _ := newTestPorts()
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handlePage(ctx, nil, PageInput{})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestServer_handleSourcesResource(t *testing.T) {
	ports, _, _ := newTestPorts()
	server, err := NewServer(ports)
	require.NoError(t, err)

	req := &mcp.ReadResourceRequest{Params: &mcp.ReadResourceParams{URI: "mevzuat://sources"}}
	result, err := server.handleSourcesResource(context.Background(), req)

	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Equal(t, "mevzuat://sources", result.Contents[0].URI)
	assert.Equal(t, "application/json", result.Contents[0].MIMEType)
	assert.Contains(t, result.Contents[0].Text, `"name": "mevzuat.gov.tr"`)
	assert.Contains(t, result.Contents[0].Text, `"name": "mevbank"`)
	assert.Contains(t, result.Contents[0].Text, `"placeholder": true`)
}
