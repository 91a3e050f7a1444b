package storage

import "time"

// Event records one processed query: what the user asked, what the bot
// answered, and how product selection went. Events are appended in
// chronological order; the daily report is computed from them.
type Event struct {
	Timestamp         time.Time `json:"timestamp"`
	UserID            int64     `json:"user_id"`
	UserMessage       string    `json:"user_message"`
	AssistantResponse string    `json:"assistant_response"`
	SelectionOutcome  string    `json:"selection_outcome"`
	ProductIndex      *int      `json:"product_index,omitempty"`
	ProductName       string    `json:"product_name,omitempty"`
}

// Recorder abstracts persistence of interaction events. Implementations
// must be safe for concurrent use; LoadInteractions returns events in
// chronological order.
type Recorder interface {
	AppendInteraction(event Event) error
	LoadInteractions() ([]Event, error)
}
