package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
//
// An empty search or a question without a qualifying answer is not an error:
// it is an empty record slice or the NoAnswer sentinel.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNetwork indicates a regulation site or LLM provider was unreachable
	// or answered with a non-2xx status.
	ErrNetwork = errors.New("network failure")

	// ErrParse indicates malformed HTML, PDF, XML or provider payload.
	ErrParse = errors.New("parse failure")

	// ErrUnsupportedFormat indicates an unknown file type or an LLM response
	// shape that matches none of the known providers.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrLLMUnavailable indicates the LLM provider is not configured.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrUnknownSource indicates a regulation source name that is not recognised.
	ErrUnknownSource = errors.New("unknown source")
)
