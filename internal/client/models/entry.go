package models

import (
	"encoding/json"
	"time"
)

const (
	CategoryThought = "Thought"
	CategoryQuote   = "Quote"

	UntitledTitle   = "Untitled Entry"
	ReflectionTitle = "Quote Reflection"

	// DateLayout and TimeLayout render the display strings stamped on save,
	// e.g. "Tuesday, March 4, 2025" and "09:05 PM".
	DateLayout = "Monday, January 2, 2006"
	TimeLayout = "03:04 PM"
)

// Entry is a journal record as returned by the server.
type Entry struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	Mood        string    `json:"mood,omitempty"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Quote       string    `json:"quote,omitempty"`
	QuoteAuthor string    `json:"quoteAuthor,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitzero"`
}

// UnmarshalJSON accepts document stores that name the key "_id".
func (e *Entry) UnmarshalJSON(data []byte) error {
	type plain Entry
	aux := struct {
		*plain
		MongoID string `json:"_id"`
	}{plain: (*plain)(e)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if e.ID == "" {
		e.ID = aux.MongoID
	}
	if e.Tags == nil {
		e.Tags = []string{}
	}
	return nil
}

// Clone returns a copy that shares no slices with e.
func (e Entry) Clone() Entry {
	e.Tags = append([]string{}, e.Tags...)
	return e
}

// EntryPayload is the body of create and update requests.
type EntryPayload struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Mood        string   `json:"mood"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Quote       string   `json:"quote,omitempty"`
	QuoteAuthor string   `json:"quoteAuthor,omitempty"`
}
