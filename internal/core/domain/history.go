package domain

import "time"

// HistoryEntry records one answered question.
type HistoryEntry struct {
	// RequestID is the AskResponse request ID.
	RequestID string `json:"request_id"`

	Question string       `json:"question"`
	Sources  []SourceName `json:"sources"`

	// QuickAnswer is the model's direct answer.
	QuickAnswer string `json:"quick_answer"`

	// BestAnswer is empty when no sources were searched.
	BestAnswer string  `json:"best_answer,omitempty"`
	BestSource string  `json:"best_source,omitempty"`
	BestLink   string  `json:"best_link,omitempty"`
	Confidence float64 `json:"confidence"`

	// ResultCount is the number of records found across the sources.
	ResultCount int `json:"result_count"`

	CreatedAt time.Time `json:"created_at"`
}

// DefaultHistoryLimit is the number of entries listed when no limit is given.
const DefaultHistoryLimit = 20
