package mcp

import (
	"github.com/custodia-labs/mevzuat-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Assistant answers questions.
	Assistant driving.AssistantService

	// Regulations searches the regulation websites.
	Regulations driving.RegulationService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Assistant == nil {
		return ErrMissingAssistantService
	}
	if p.Regulations == nil {
		return ErrMissingRegulationService
	}
	return nil
}
