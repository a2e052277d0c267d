package models

import "time"

// Entry is a journal record owned by UserID. Date and Time are display
// strings chosen by the client; CreatedAt is the server's clock.
type Entry struct {
	ID          string
	UserID      string
	Title       string
	Content     string
	Category    string
	Tags        []string
	Mood        string
	Date        string
	Time        string
	Quote       string
	QuoteAuthor string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Clone returns a copy that shares no slices with e.
func (e *Entry) Clone() *Entry {
	c := *e
	c.Tags = append([]string{}, e.Tags...)
	return &c
}
