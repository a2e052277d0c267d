package models

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophjournal/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTags(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{" , ,", []string{}},
		{"work", []string{"work"}},
		{" work , life,, travel ", []string{"work", "life", "travel"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseTags(tt.in), tt.in)
	}
}

func TestDraft_NormalizeDefaults(t *testing.T) {
	d := Draft{Title: "  ", Content: "  hi  ", Tags: []string{" a ", ""}}.Normalize()

	assert.Equal(t, UntitledTitle, d.Title)
	assert.Equal(t, "hi", d.Content)
	assert.Equal(t, CategoryThought, d.Category)
	assert.Equal(t, []string{"a"}, d.Tags)
	assert.Empty(t, d.Mood)
}

func TestDraft_ValidateContentBounds(t *testing.T) {
	tests := []struct {
		name    string
		content string
		msg     string
	}{
		{"empty", "", MsgContentEmpty},
		{"whitespace only", "   \n\t", MsgContentEmpty},
		{"one char", "x", ""},
		{"exactly 1000", strings.Repeat("x", 1000), ""},
		{"1001", strings.Repeat("x", 1001), MsgContentTooLong},
		{"1000 runes multibyte", strings.Repeat("é", 1000), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Draft{Content: tt.content}.Normalize().Validate()
			if tt.msg == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, common.ErrValidation)
			var ve *common.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, "content", ve.Field)
			assert.Equal(t, tt.msg, ve.Message)
		})
	}
}

func TestDraft_PayloadStampsDisplayDate(t *testing.T) {
	now := time.Date(2025, time.March, 4, 21, 5, 0, 0, time.UTC)
	p := Draft{Title: "t", Content: "c", Category: CategoryThought}.Payload(now)

	assert.Equal(t, "Tuesday, March 4, 2025", p.Date)
	assert.Equal(t, "09:05 PM", p.Time)
	assert.NotNil(t, p.Tags)

	raw, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"tags":[]`)
	assert.NotContains(t, string(raw), "quoteAuthor")
}

func TestEntry_UnmarshalAcceptsUnderscoreID(t *testing.T) {
	var e Entry
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"abc","title":"x","createdAt":"2025-01-02T03:04:05Z"}`), &e))
	assert.Equal(t, "abc", e.ID)
	assert.Equal(t, []string{}, e.Tags)
	assert.Equal(t, 2025, e.CreatedAt.Year())

	var e2 Entry
	require.NoError(t, json.Unmarshal([]byte(`{"id":"1","_id":"2"}`), &e2))
	assert.Equal(t, "1", e2.ID)
}

func TestEntry_CloneDoesNotShareTags(t *testing.T) {
	e := Entry{Tags: []string{"a"}}
	c := e.Clone()
	c.Tags[0] = "b"
	assert.Equal(t, "a", e.Tags[0])
}

func TestDraftFrom(t *testing.T) {
	e := Entry{Title: "T", Content: "C", Category: CategoryQuote, Tags: []string{"x"}, Mood: "Happy", Quote: "q", QuoteAuthor: "a"}
	d := DraftFrom(e)
	assert.Equal(t, Draft{Title: "T", Content: "C", Category: CategoryQuote, Tags: []string{"x"}, Mood: "Happy", Quote: "q", QuoteAuthor: "a"}, d)
}
