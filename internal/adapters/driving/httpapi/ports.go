package httpapi

import (
	"errors"

	"github.com/custodia-labs/mevzuat-cli/internal/core/ports/driving"
)

// Errors returned by Ports.Validate.
var (
	ErrMissingAssistantService  = errors.New("httpapi: assistant service is required")
	ErrMissingRegulationService = errors.New("httpapi: regulation service is required")
	ErrMissingDocumentService   = errors.New("httpapi: document service is required")
)

// Ports aggregates the driving ports served over HTTP.
type Ports struct {
	Assistant   driving.AssistantService
	Regulations driving.RegulationService
	Documents   driving.DocumentService

	// History serves GET /history when set.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	switch {
	case p.Assistant == nil:
		return ErrMissingAssistantService
	case p.Regulations == nil:
		return ErrMissingRegulationService
	case p.Documents == nil:
		return ErrMissingDocumentService
	}
	return nil
}
