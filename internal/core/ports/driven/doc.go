// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - RegulationSource: Searches one regulation website
//   - ModelGateway: Sends prompts to the configured LLM provider
//   - ProviderStrategy: Provider-specific request building and response parsing
//   - Extractor: Converts uploaded PDF/XML into plain text
//   - ConfigStore: Application configuration
//   - PromptStore: Prompt templates
//   - HistoryStore: Answered question history
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or normaliser package
package driven
