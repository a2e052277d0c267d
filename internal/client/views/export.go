package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophjournal/internal/client/models"
)

// ExportFileName is the suggested name for an export made at now.
func ExportFileName(now time.Time) string {
	return "my-daily-journal-" + now.Format("2006-01-02") + ".txt"
}

// ExportText renders entries (newest first) as a plain-text journal.
// Entries are numbered oldest = 1.
func ExportText(entries []models.Entry, now time.Time) string {
	var b strings.Builder

	b.WriteString("📖 MY DAILY JOURNAL\n")
	b.WriteString(strings.Repeat("=", 52) + "\n\n")

	for i, e := range entries {
		tags := strings.Join(e.Tags, ", ")
		if tags == "" {
			tags = "None"
		}
		mood := e.Mood
		if mood == "" {
			mood = "Not specified"
		}

		fmt.Fprintf(&b, "Entry %d: %s\n", len(entries)-i, e.Title)
		fmt.Fprintf(&b, "Category: %s\n", e.Category)
		fmt.Fprintf(&b, "Tags: %s\n", tags)
		fmt.Fprintf(&b, "Mood: %s\n", mood)
		fmt.Fprintf(&b, "Date: %s at %s\n", e.Date, e.Time)
		if e.Quote != "" {
			fmt.Fprintf(&b, "Quote: \"%s\" (%s)\n", e.Quote, e.QuoteAuthor)
		}
		b.WriteString(strings.Repeat("-", 30) + "\n")
		b.WriteString(e.Content + "\n\n")
	}

	fmt.Fprintf(&b, "\nExported on: %s\n", now.Format("1/2/2006"))
	fmt.Fprintf(&b, "Total entries: %d", len(entries))
	return b.String()
}
