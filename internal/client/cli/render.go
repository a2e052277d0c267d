package cli

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophjournal/internal/client/models"
)

func (a *App) printEntries(list []models.Entry) {
	if len(list) == 0 {
		printlnFn("No entries yet. Start writing your first journal entry!")
		return
	}
	for _, e := range list {
		printlnFn(formatEntry(e))
	}
}

func formatEntry(e models.Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s (%s)", e.ID, e.Title, e.Category)
	if e.Mood != "" {
		fmt.Fprintf(&b, " mood: %s", e.Mood)
	}
	fmt.Fprintf(&b, "\n  %s %s", e.Date, e.Time)
	if e.Quote != "" {
		fmt.Fprintf(&b, "\n  %q - %s", e.Quote, e.QuoteAuthor)
	}
	for _, line := range strings.Split(e.Content, "\n") {
		b.WriteString("\n  " + line)
	}
	if len(e.Tags) > 0 {
		b.WriteString("\n  tags: " + strings.Join(e.Tags, ", "))
	}
	return b.String()
}
