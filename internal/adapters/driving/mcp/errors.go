// Package mcp provides an MCP (Model Context Protocol) server adapter.
// It lets AI assistants ask tax regulation questions and search the
// regulation websites through the same services as the CLI.
package mcp

import "errors"

// ErrMissingAssistantService is returned when the assistant service is not provided.
var ErrMissingAssistantService = errors.New("mcp: assistant service is required")

// ErrMissingRegulationService is returned when the regulation service is not provided.
var ErrMissingRegulationService = errors.New("mcp: regulation service is required")
