package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/mevzuat-cli/internal/core/domain"
	"github.com/custodia-labs/mevzuat-cli/internal/core/ports/driving"
)

// AskInput is the input schema for the ask tool.
type AskInput struct {
	Question  string   `json:"question" jsonschema:"the tax regulation question, in Turkish"`
	Sources   []string `json:"sources,omitempty" jsonschema:"sources to search: mevzuat, resmigazete, gib, mevbank"`
	Threshold *float64 `json:"threshold,omitempty" jsonschema:"minimum confidence for the best answer (default 0.7)"`
}

// AskOutput is the output schema for the ask tool.
type AskOutput struct {
	RequestID   string         `json:"request_id"`
	QuickAnswer string         `json:"quick_answer"`
	NeedsUpdate bool           `json:"needs_update"`
	Best        *BestOutput    `json:"best,omitempty"`
	Results     []RecordOutput `json:"results"`
	Count       int            `json:"count"`
}

// BestOutput is the most confident answer grounded in a regulation.
type BestOutput struct {
	Answer     string  `json:"answer"`
	Confidence float64 `json:"confidence"`
	Source     string  `json:"source"`
	Link       string  `json:"link"`
	Date       string  `json:"date"`
	Found      bool    `json:"found"`
}

// SearchInput is the input schema for the search_regulations tool.
type SearchInput struct {
	Query   string   `json:"query" jsonschema:"the search query"`
	Sources []string `json:"sources,omitempty" jsonschema:"sources to search (default: all)"`
}

// SearchOutput is the output schema for the search_regulations tool.
type SearchOutput struct {
	Results []RecordOutput `json:"results"`
	Count   int            `json:"count"`
}

// RecordOutput represents a single regulation record.
type RecordOutput struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Content string `json:"content,omitempty"`
	Date    string `json:"date,omitempty"`
	Source  string `json:"source"`
}

// PageInput is the input schema for the page_content tool.
type PageInput struct {
	URL string `json:"url" jsonschema:"link of a regulation page returned by search_regulations"`
}

// PageOutput is the output schema for the page_content tool.
type PageOutput struct {
	URL     string `json:"url"`
	Content string `json:"content"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask",
		Description: "Answer a Turkish tax regulation question, optionally grounded in searched regulations",
	}, s.handleAsk)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_regulations",
		Description: "Search mevzuat.gov.tr and resmigazete.gov.tr for regulations",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "page_content",
		Description: "Fetch the text of a regulation page",
	}, s.handlePage)
}

// handleAsk handles the ask tool invocation.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	sources, err := domain.ParseSourceNames(input.Sources)
	if err != nil {
		return nil, AskOutput{}, err
	}
	if t := input.Threshold; t != nil && (*t < 0 || *t > 1) {
		return nil, AskOutput{}, fmt.Errorf("%w: threshold %.2f outside [0,1]", domain.ErrInvalidInput, *t)
	}

	resp, err := s.ports.Assistant.Ask(ctx, driving.AskRequest{
		Question:  input.Question,
		Sources:   sources,
		Threshold: input.Threshold,
	})
	if err != nil {
		return nil, AskOutput{}, err
	}

	output := AskOutput{
		RequestID:   resp.RequestID,
		QuickAnswer: resp.Quick.Answer,
		NeedsUpdate: resp.Quick.NeedsUpdate,
		Results:     toRecordOutputs(resp.Results),
		Count:       len(resp.Results),
	}
	if resp.Best != nil {
		output.Best = &BestOutput{
			Answer:     resp.Best.Answer,
			Confidence: resp.Best.Confidence,
			Source:     resp.Best.Source,
			Link:       resp.Best.Link,
			Date:       resp.Best.Date,
			Found:      !resp.Best.IsSentinel(),
		}
	}

	return nil, output, nil
}

// handleSearch handles the search_regulations tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return nil, SearchOutput{}, fmt.Errorf("%w: empty query", domain.ErrInvalidInput)
	}

	sources := domain.AllSources()
	if len(input.Sources) > 0 {
		var err error
		if sources, err = domain.ParseSourceNames(input.Sources); err != nil {
			return nil, SearchOutput{}, err
		}
	}

	results := s.ports.Regulations.Search(ctx, query, sources)
	return nil, SearchOutput{
		Results: toRecordOutputs(results),
		Count:   len(results),
	}, nil
}

// handlePage handles the page_content tool invocation.
func (s *Server) handlePage(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PageInput,
) (*mcp.CallToolResult, PageOutput, error) {
	if strings.TrimSpace(input.URL) == "" {
		return nil, PageOutput{}, fmt.Errorf("%w: empty url", domain.ErrInvalidInput)
	}

	content := s.ports.Regulations.PageContent(ctx, input.URL)
	if content == "" {
		return nil, PageOutput{}, fmt.Errorf("%w: no content at %s", domain.ErrNetwork, input.URL)
	}
	return nil, PageOutput{URL: input.URL, Content: content}, nil
}

func toRecordOutputs(records []domain.RegulationRecord) []RecordOutput {
	out := make([]RecordOutput, len(records))
	for i, r := range records {
		out[i] = RecordOutput{
			Title:   r.Title,
			Link:    r.Link,
			Content: r.Content,
			Date:    r.Date,
			Source:  r.Source.String(),
		}
	}
	return out
}
