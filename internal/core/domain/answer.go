package domain

import "encoding/json"

// NoAnswerText is returned when no document yields a qualifying answer.
const NoAnswerText = "Üzgünüm, bu soru için güncel mevzuatta bir cevap bulamadım."

// UnknownSource labels a best answer whose record carries no source.
const UnknownSource = "Unknown"

// defaultAnswerConfidence is assumed for a non-empty answer from a provider
// that does not report confidence.
const defaultAnswerConfidence = 0.9

// ModelAnswer is a provider response normalised to one shape.
type ModelAnswer struct {
	// Text is the generated answer.
	Text string `json:"text"`

	// Confidence is the provider-reported confidence in [0,1], if any.
	Confidence *float64 `json:"confidence,omitempty"`

	// Provider is the backend that produced the answer.
	Provider AIProvider `json:"provider,omitempty"`

	// Raw is the undecoded provider payload.
	Raw json.RawMessage `json:"-"`
}

// EffectiveConfidence returns the reported confidence clamped to [0,1].
// Without a reported value, a non-empty answer scores 0.9 and an empty one 0.
func (a ModelAnswer) EffectiveConfidence() float64 {
	if a.Confidence != nil {
		c := *a.Confidence
		switch {
		case c < 0:
			return 0
		case c > 1:
			return 1
		default:
			return c
		}
	}
	if a.Text == "" {
		return 0
	}
	return defaultAnswerConfidence
}

// BestAnswer is the highest-confidence answer found for a question.
type BestAnswer struct {
	Answer     string  `json:"answer"`
	Confidence float64 `json:"confidence"`
	Source     string  `json:"source"`
	Link       string  `json:"link"`
	Date       string  `json:"date"`
}

// NoAnswer returns the sentinel used when nothing qualifies.
func NoAnswer() BestAnswer {
	return BestAnswer{Answer: NoAnswerText}
}

// IsSentinel reports whether b is the NoAnswer sentinel.
func (b BestAnswer) IsSentinel() bool {
	return b == NoAnswer()
}

// QuickAnswer is the model's direct answer to a question, without retrieved documents.
type QuickAnswer struct {
	// Answer is the generated text or a fallback message.
	Answer string `json:"answer"`

	// NeedsUpdate is true when the answer hints that it may be out of date
	// and should be checked against current regulations.
	NeedsUpdate bool `json:"needs_update"`
}

// Prompt is a composed prompt ready for the model gateway.
type Prompt struct {
	// Text is the full prompt. Wrapped in instruction tags for providers that need them.
	Text string

	// System is the role instruction, used as the system message by chat providers.
	System string

	// User is everything after the role instruction, used as the user message.
	User string
}

// UserMessage returns the user turn for chat providers, falling back to
// the full text when the prompt was not split.
func (p Prompt) UserMessage() string {
	if p.User != "" {
		return p.User
	}
	return p.Text
}
