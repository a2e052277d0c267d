// Package views derives what the front end shows from a list of entries:
// filtered and partitioned lists, statistics, chart series and the text
// export. Everything here is pure.
package views

import (
	"strings"

	"github.com/dmitrijs2005/gophjournal/internal/client/models"
)

// Kind selects one side of PartitionByKind.
type Kind string

const (
	KindAll         Kind = ""
	KindThoughts    Kind = "thoughts"
	KindReflections Kind = "quotes"
)

// IsQuoteReflection reports whether e was written about a quote.
func IsQuoteReflection(e models.Entry) bool {
	return e.Category == models.CategoryQuote || e.Title == models.ReflectionTitle
}

// PartitionByKind splits entries into thoughts and quote reflections,
// keeping order. Every entry lands in exactly one side.
func PartitionByKind(entries []models.Entry) (thoughts, reflections []models.Entry) {
	thoughts, reflections = []models.Entry{}, []models.Entry{}
	for _, e := range entries {
		if IsQuoteReflection(e) {
			reflections = append(reflections, e)
		} else {
			thoughts = append(thoughts, e)
		}
	}
	return thoughts, reflections
}

// OfKind returns the thoughts, the reflections, or everything.
func OfKind(entries []models.Entry, k Kind) []models.Entry {
	thoughts, reflections := PartitionByKind(entries)
	switch k {
	case KindThoughts:
		return thoughts
	case KindReflections:
		return reflections
	default:
		return append([]models.Entry{}, entries...)
	}
}

// Filter keeps the entries matching every non-empty criterion. query is a
// case-insensitive substring of title, content or date; category and mood
// are case-insensitive exact matches.
func Filter(entries []models.Entry, query, category, mood string) []models.Entry {
	q := strings.ToLower(strings.TrimSpace(query))
	category = strings.ToLower(strings.TrimSpace(category))
	mood = strings.ToLower(strings.TrimSpace(mood))

	out := []models.Entry{}
	for _, e := range entries {
		if q != "" && !matchesQuery(e, q) {
			continue
		}
		if category != "" && strings.ToLower(e.Category) != category {
			continue
		}
		if mood != "" && strings.ToLower(e.Mood) != mood {
			continue
		}
		out = append(out, e)
	}
	return out
}

func matchesQuery(e models.Entry, q string) bool {
	return strings.Contains(strings.ToLower(e.Title), q) ||
		strings.Contains(strings.ToLower(e.Content), q) ||
		strings.Contains(strings.ToLower(e.Date), q)
}
