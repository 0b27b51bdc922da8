// Package domain defines the core business entities for mevzuat.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RegulationRecord: A search result scraped from a regulation website
//   - ModelAnswer: A normalised response from an LLM provider
//   - BestAnswer: The highest-confidence answer selected for a question
//   - ProviderConfig: Immutable configuration for one LLM backend
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
