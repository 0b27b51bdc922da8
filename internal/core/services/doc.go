// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The question pipeline is strictly sequential: regulation sources are
// searched one after another and the selector asks the model about one
// document at a time.
package services
