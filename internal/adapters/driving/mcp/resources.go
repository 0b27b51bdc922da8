package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/mevzuat-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for mevzuat resources.
	uriScheme = "mevzuat://"
)

// sourceInfo describes one searchable source.
type sourceInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Placeholder bool   `json:"placeholder"`
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "sources",
		Name:        "sources",
		Description: "Regulation sources that can be searched",
		MIMEType:    "application/json",
	}, s.handleSourcesResource)
}

// handleSourcesResource returns every known source.
func (s *Server) handleSourcesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	all := domain.AllSources()
	infos := make([]sourceInfo, len(all))
	for i, src := range all {
		infos[i] = sourceInfo{
			Name:        src.String(),
			Description: src.Description(),
			Placeholder: src.IsPlaceholder(),
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling sources: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
