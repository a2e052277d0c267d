package models

import (
	"errors"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophjournal/internal/common"
	"github.com/go-playground/validator/v10"
)

const (
	MsgContentEmpty   = "Please write something before saving!"
	MsgContentTooLong = "Entry exceeds maximum length of 1000 characters"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Draft is user input for a new or edited entry, before the server sees it.
type Draft struct {
	Title       string
	Content     string `validate:"required,max=1000"`
	Category    string
	Tags        []string
	Mood        string
	Quote       string
	QuoteAuthor string
}

// ParseTags splits a comma separated list, trimming items and dropping
// empty ones. Order is kept.
func ParseTags(s string) []string {
	tags := []string{}
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// Normalize trims the text fields and fills the defaults.
func (d Draft) Normalize() Draft {
	d.Title = strings.TrimSpace(d.Title)
	d.Content = strings.TrimSpace(d.Content)
	d.Category = strings.TrimSpace(d.Category)
	d.Mood = strings.TrimSpace(d.Mood)

	if d.Title == "" {
		d.Title = UntitledTitle
	}
	if d.Category == "" {
		d.Category = CategoryThought
	}

	tags := make([]string, 0, len(d.Tags))
	for _, t := range d.Tags {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	d.Tags = tags
	return d
}

// Validate checks a normalized draft. The result matches common.ErrValidation.
func (d Draft) Validate() error {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	switch verrs[0].Tag() {
	case "required":
		return common.NewValidationError("content", MsgContentEmpty)
	default:
		return common.NewValidationError("content", MsgContentTooLong)
	}
}

// Payload stamps the draft with the display date and time of now.
func (d Draft) Payload(now time.Time) EntryPayload {
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return EntryPayload{
		Title:       d.Title,
		Content:     d.Content,
		Category:    d.Category,
		Tags:        tags,
		Mood:        d.Mood,
		Date:        now.Format(DateLayout),
		Time:        now.Format(TimeLayout),
		Quote:       d.Quote,
		QuoteAuthor: d.QuoteAuthor,
	}
}

// DraftFrom seeds an edit with the stored values of e.
func DraftFrom(e Entry) Draft {
	return Draft{
		Title:       e.Title,
		Content:     e.Content,
		Category:    e.Category,
		Tags:        append([]string{}, e.Tags...),
		Mood:        e.Mood,
		Quote:       e.Quote,
		QuoteAuthor: e.QuoteAuthor,
	}
}
