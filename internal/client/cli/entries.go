package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophjournal/internal/client/journal"
	"github.com/dmitrijs2005/gophjournal/internal/client/models"
	"github.com/dmitrijs2005/gophjournal/internal/client/views"
)

// List prints the entries, optionally only thoughts or only quote
// reflections.
func (a *App) List(_ context.Context, args []string) error {
	kind := views.KindAll
	if len(args) > 0 {
		switch k := views.Kind(strings.ToLower(args[0])); k {
		case views.KindThoughts, views.KindReflections:
			kind = k
		default:
			return fmt.Errorf("usage: list [thoughts|quotes]")
		}
	}
	a.printEntries(views.OfKind(a.journal.Entries(), kind))
	return nil
}

// Search prints entries whose title, content or date contain the text.
func (a *App) Search(_ context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: search <text>")
	}
	a.printEntries(views.Filter(a.journal.Entries(), strings.Join(args, " "), "", ""))
	return nil
}

// Filter narrows by category and mood; "-" matches anything.
func (a *App) Filter(_ context.Context, args []string) error {
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("usage: filter <category|-> [mood|-]")
	}
	category, mood := anyValue(args[0]), ""
	if len(args) == 2 {
		mood = anyValue(args[1])
	}
	a.printEntries(views.Filter(a.journal.Entries(), "", category, mood))
	return nil
}

func anyValue(s string) string {
	if s == "-" || strings.EqualFold(s, "all") {
		return ""
	}
	return s
}

func (a *App) Reload(ctx context.Context) error {
	a.show(a.journal.OnReload(ctx))
	a.printEntries(a.journal.Entries())
	return nil
}

// Add prompts for a new entry and saves it.
func (a *App) Add(ctx context.Context) error {
	d, err := a.promptDraft(models.Draft{})
	if err != nil {
		return err
	}
	a.show(a.journal.OnSaveEntry(ctx, "", d))
	return nil
}

// Edit prompts for every field of entry id, prefilled with its values.
func (a *App) Edit(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: edit <id>")
	}
	current, n := a.journal.OnEdit(args[0])
	if n.Level == journal.LevelError {
		a.show(n)
		return nil
	}

	d, err := a.promptDraft(current)
	if err != nil {
		return err
	}
	a.show(a.journal.OnSaveEntry(ctx, args[0], d))
	return nil
}

// Delete asks for confirmation before the entry is removed.
func (a *App) Delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: delete <id>")
	}
	if n := a.journal.OnDeleteRequest(args[0]); !n.Empty() {
		a.show(n)
		return nil
	}

	ok, err := confirm(a.reader, "Are you sure you want to delete this entry?", a.out)
	if err != nil {
		a.journal.OnDeleteCancel()
		return err
	}
	if !ok {
		a.show(a.journal.OnDeleteCancel())
		return nil
	}
	a.show(a.journal.OnDeleteConfirm(ctx))
	return nil
}

// promptDraft asks for each field. An empty answer keeps the value in cur.
func (a *App) promptDraft(cur models.Draft) (models.Draft, error) {
	d := cur

	title, err := getSimpleText(a.reader, fmt.Sprintf("Title [%s]", cur.Title), a.out)
	if err != nil {
		return d, err
	}
	d.Title = withDefault(title, cur.Title)

	content, err := getMultiline(a.reader, "Content", a.out)
	if err != nil {
		return d, err
	}
	d.Content = withDefault(content, cur.Content)

	category, err := getSimpleText(a.reader, fmt.Sprintf("Category (%s/%s) [%s]",
		models.CategoryThought, models.CategoryQuote, cur.Category), a.out)
	if err != nil {
		return d, err
	}
	d.Category = withDefault(category, cur.Category)

	tags, err := getSimpleText(a.reader, fmt.Sprintf("Tags, comma separated [%s]", strings.Join(cur.Tags, ", ")), a.out)
	if err != nil {
		return d, err
	}
	if tags != "" {
		d.Tags = models.ParseTags(tags)
	}

	mood, err := getSimpleText(a.reader, fmt.Sprintf("Mood [%s]", cur.Mood), a.out)
	if err != nil {
		return d, err
	}
	d.Mood = withDefault(mood, cur.Mood)

	return d, nil
}
