package views

import (
	"math"
	"strings"

	"github.com/dmitrijs2005/gophjournal/internal/client/models"
)

// Stats summarises a newest-first list of entries.
type Stats struct {
	TotalEntries         int            `json:"totalEntries"`
	TotalWords           int            `json:"totalWords"`
	AverageWordsPerEntry int            `json:"averageWordsPerEntry"`
	OldestEntry          *string        `json:"oldestEntry"`
	NewestEntry          *string        `json:"newestEntry"`
	Categories           map[string]int `json:"categories"`
	Moods                map[string]int `json:"moods"`
	QuoteReflectionCount int            `json:"quoteReflectionCount"`
}

// CountWords counts whitespace separated tokens.
func CountWords(s string) int {
	return len(strings.Fields(s))
}

// ComputeStats relies on entries being newest first: the oldest date is
// taken from the last element and the newest from the first.
func ComputeStats(entries []models.Entry) Stats {
	st := Stats{Categories: map[string]int{}, Moods: map[string]int{}}
	if len(entries) == 0 {
		return st
	}

	for _, e := range entries {
		st.TotalWords += CountWords(e.Content)
		st.Categories[e.Category]++
		if e.Mood != "" {
			st.Moods[e.Mood]++
		}
		if IsQuoteReflection(e) {
			st.QuoteReflectionCount++
		}
	}

	st.TotalEntries = len(entries)
	st.AverageWordsPerEntry = int(math.Round(float64(st.TotalWords) / float64(st.TotalEntries)))

	oldest, newest := entries[len(entries)-1].Date, entries[0].Date
	st.OldestEntry, st.NewestEntry = &oldest, &newest
	return st
}
