package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophjournal/internal/client/quotes"
)

func (a *App) Quote(_ context.Context) error {
	printlnFn(formatQuote(a.journal.OnNextQuote()))
	return nil
}

func (a *App) React(_ context.Context, liked bool) error {
	r := a.journal.OnReact(liked)
	switch {
	case r.Liked:
		printlnFn("You liked this quote.")
	case r.Disliked:
		printlnFn("You disliked this quote.")
	}
	return nil
}

// Reflect saves a comment about the quote on screen.
func (a *App) Reflect(ctx context.Context) error {
	if q, ok := a.journal.CurrentQuote(); ok {
		printlnFn(formatQuote(q))
	}
	comment, err := getMultiline(a.reader, "Your thoughts on this quote", a.out)
	if err != nil {
		return err
	}
	a.show(a.journal.OnSaveReflection(ctx, comment))
	return nil
}

func formatQuote(q quotes.Quote) string {
	return fmt.Sprintf("%q\n  - %s", q.Text, q.Author)
}
