package views

import (
	"sort"
	"time"

	"github.com/dmitrijs2005/gophjournal/internal/client/models"
)

// Series is chart-ready data: Labels[i] goes with Values[i].
type Series struct {
	Title  string   `json:"title"`
	Labels []string `json:"labels"`
	Values []int    `json:"values"`
}

var monthLabels = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// MonthlyCounts buckets entries of year by month. The server timestamp
// wins; entries without one fall back to their display date.
func MonthlyCounts(entries []models.Entry, year int, loc *time.Location) Series {
	if loc == nil {
		loc = time.Local
	}
	s := Series{
		Title:  "Journal Entries by Month",
		Labels: append([]string{}, monthLabels...),
		Values: make([]int, 12),
	}
	for _, e := range entries {
		t, ok := entryTime(e, loc)
		if !ok || t.Year() != year {
			continue
		}
		s.Values[t.Month()-1]++
	}
	return s
}

func entryTime(e models.Entry, loc *time.Location) (time.Time, bool) {
	if !e.CreatedAt.IsZero() {
		return e.CreatedAt.In(loc), true
	}
	if e.Date == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(models.DateLayout, e.Date, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// CategorySeries renders Stats.Categories. The "Quote" category is shown
// as "Quote Reflection".
func CategorySeries(st Stats) Series {
	s := fromCounts("Entries by Category", st.Categories)
	for i, l := range s.Labels {
		if l == models.CategoryQuote {
			s.Labels[i] = models.ReflectionTitle
		}
	}
	return s
}

// MoodSeries renders Stats.Moods. It is empty when no entry has a mood.
func MoodSeries(st Stats) Series {
	return fromCounts("Entries by Mood", st.Moods)
}

func fromCounts(title string, counts map[string]int) Series {
	labels := make([]string, 0, len(counts))
	for k := range counts {
		labels = append(labels, k)
	}
	sort.Strings(labels)

	values := make([]int, len(labels))
	for i, l := range labels {
		values[i] = counts[l]
	}
	return Series{Title: title, Labels: labels, Values: values}
}
