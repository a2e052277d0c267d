package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophjournal/internal/client/views"
)

func (a *App) Stats(_ context.Context) error {
	printlnFn(formatStats(a.journal.Stats()))
	return nil
}

// Chart prints the monthly, category and mood series as text bars.
func (a *App) Chart(_ context.Context) error {
	list := a.journal.Entries()
	st := views.ComputeStats(list)

	printlnFn(formatSeries(views.MonthlyCounts(list, a.now().Year(), nil)))
	printlnFn(formatSeries(views.CategorySeries(st)))
	printlnFn(formatSeries(views.MoodSeries(st)))
	return nil
}

func formatStats(st views.Stats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total entries:     %d\n", st.TotalEntries)
	fmt.Fprintf(&b, "Total words:       %d\n", st.TotalWords)
	fmt.Fprintf(&b, "Words per entry:   %d\n", st.AverageWordsPerEntry)
	fmt.Fprintf(&b, "Quote reflections: %d\n", st.QuoteReflectionCount)
	if st.OldestEntry != nil {
		fmt.Fprintf(&b, "Oldest entry:      %s\n", *st.OldestEntry)
	}
	if st.NewestEntry != nil {
		fmt.Fprintf(&b, "Newest entry:      %s\n", *st.NewestEntry)
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatSeries(s views.Series) string {
	var b strings.Builder
	b.WriteString(s.Title)
	if len(s.Labels) == 0 {
		b.WriteString("\n  (no data)")
		return b.String()
	}

	width := 0
	for _, l := range s.Labels {
		width = max(width, len(l))
	}
	for i, l := range s.Labels {
		fmt.Fprintf(&b, "\n  %-*s %s %d", width, l, strings.Repeat("#", s.Values[i]), s.Values[i])
	}
	return b.String()
}
