package quotes

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/gophjournal/internal/client/models"
	"github.com/dmitrijs2005/gophjournal/internal/common"
)

const MsgCommentEmpty = "Please write a comment before saving."

// EntryCreator is implemented by *entries.Store.
type EntryCreator interface {
	Create(ctx context.Context, d models.Draft) error
}

// SaveReflection stores comment on a quote as a journal entry. An empty
// comment is rejected before anything is sent.
func SaveReflection(ctx context.Context, store EntryCreator, q Quote, comment string) error {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return common.NewValidationError("comment", MsgCommentEmpty)
	}
	return store.Create(ctx, ReflectionDraft(q, comment))
}

// ReflectionDraft builds the entry for a comment on q.
func ReflectionDraft(q Quote, comment string) models.Draft {
	return models.Draft{
		Title:       models.ReflectionTitle,
		Content:     comment,
		Category:    models.CategoryQuote,
		Tags:        []string{"inspiration", "quote"},
		Mood:        "",
		Quote:       q.Text,
		QuoteAuthor: q.Author,
	}
}
