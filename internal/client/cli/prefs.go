package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophjournal/internal/client/export"
	"github.com/dmitrijs2005/gophjournal/internal/client/storage"
)

func (a *App) Theme(ctx context.Context, args []string) error {
	if len(args) != 1 {
		printlnFn(fmt.Sprintf("Current theme: %s (available: %s)", a.journal.Theme(), strings.Join(storage.Themes, ", ")))
		return nil
	}
	a.show(a.journal.OnSwitchTheme(ctx, args[0]))
	return nil
}

// Export writes the journal as text to a file, a directory or an S3 key.
// Without an argument the file lands in the working directory.
func (a *App) Export(ctx context.Context, args []string) error {
	target := ""
	if len(args) > 0 {
		target = args[0]
	}
	sink, err := export.Resolve(target, a.s3)
	if err != nil {
		return err
	}
	a.show(a.journal.OnExport(ctx, sink))
	return nil
}
