// Package journal is the application state of the client. It owns the
// session, the entry store, the quote rotator and the preferences, and
// exposes one handler per user command. Handlers never return errors:
// every failure becomes a Notification.
package journal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophjournal/internal/client/entries"
	"github.com/dmitrijs2005/gophjournal/internal/client/models"
	"github.com/dmitrijs2005/gophjournal/internal/client/quotes"
	"github.com/dmitrijs2005/gophjournal/internal/client/session"
	"github.com/dmitrijs2005/gophjournal/internal/client/storage"
	"github.com/dmitrijs2005/gophjournal/internal/client/views"
	"github.com/dmitrijs2005/gophjournal/internal/logging"
)

// Preferences persists the theme. storage.StateStore implements it.
type Preferences interface {
	Theme(ctx context.Context) (string, error)
	SetTheme(ctx context.Context, theme string) error
}

// Sink receives an exported journal and reports where it ended up.
type Sink interface {
	Write(ctx context.Context, name string, data []byte) (string, error)
}

type Journal struct {
	sess   *session.Manager
	store  *entries.Store
	quotes *quotes.Rotator
	prefs  Preferences
	log    logging.Logger
	now    func() time.Time

	theme string
}

func New(sess *session.Manager, store *entries.Store, rot *quotes.Rotator, prefs Preferences, log logging.Logger) *Journal {
	return &Journal{
		sess:   sess,
		store:  store,
		quotes: rot,
		prefs:  prefs,
		log:    log,
		now:    time.Now,
		theme:  storage.DefaultTheme,
	}
}

// Start restores the previous session and theme, serves the first quote
// and loads the entries.
func (j *Journal) Start(ctx context.Context) Notification {
	j.sess.Restore(ctx)

	if t, err := j.prefs.Theme(ctx); err != nil {
		j.log.Warn(ctx, "cannot read theme", "error", err)
	} else {
		j.theme = t
	}
	j.quotes.Next()

	if err := j.store.Load(ctx); err != nil {
		return notify(err, MsgLoadFailed)
	}
	if s := j.sess.Snapshot(); s.LoggedIn() {
		return info(fmt.Sprintf("Welcome back, %s!", s.User.Username))
	}
	return info("Welcome! Log in or register to start journaling.")
}

func (j *Journal) OnLogin(ctx context.Context, email, password string) Notification {
	if _, err := j.sess.Login(ctx, email, password); err != nil {
		return notify(err, session.MsgServerError)
	}
	j.store.Reset()
	if err := j.store.Load(ctx); err != nil {
		return notify(err, MsgLoadFailed)
	}
	return success("Logged in successfully!")
}

func (j *Journal) OnRegister(ctx context.Context, username, email, password string) Notification {
	if err := j.sess.Register(ctx, username, email, password); err != nil {
		return notify(err, session.MsgServerError)
	}
	return success("Registered successfully! Please login.")
}

func (j *Journal) OnLogout(ctx context.Context) Notification {
	j.sess.Logout(ctx)
	j.store.Reset()
	return info("Logged out successfully!")
}

// OnReload fetches the entries again.
func (j *Journal) OnReload(ctx context.Context) Notification {
	return notify(j.store.Load(ctx), MsgLoadFailed)
}

// OnEdit returns the draft for entry id.
func (j *Journal) OnEdit(id string) (models.Draft, Notification) {
	e, ok := j.store.Find(id)
	if !ok {
		return models.Draft{}, failure(MsgEntryNotFound)
	}
	return models.DraftFrom(e), info("Entry loaded for editing")
}

// OnSaveEntry creates a new entry, or updates editingID when it is set.
func (j *Journal) OnSaveEntry(ctx context.Context, editingID string, d models.Draft) Notification {
	if editingID == "" {
		if err := j.store.Create(ctx, d); err != nil {
			return notify(err, MsgSaveFailed)
		}
		return success("Entry saved successfully!")
	}
	if err := j.store.Update(ctx, editingID, d); err != nil {
		return notify(err, MsgSaveFailed)
	}
	return success("Entry updated successfully!")
}

func (j *Journal) OnDeleteRequest(id string) Notification {
	if err := j.store.RequestDelete(id); err != nil {
		return notify(err, MsgDeleteFailed)
	}
	return Notification{}
}

func (j *Journal) OnDeleteConfirm(ctx context.Context) Notification {
	if err := j.store.ConfirmDelete(ctx); err != nil {
		return notify(err, MsgDeleteFailed)
	}
	return info("Entry deleted")
}

func (j *Journal) OnDeleteCancel() Notification {
	j.store.CancelDelete()
	return Notification{}
}

func (j *Journal) OnNextQuote() quotes.Quote {
	return j.quotes.Next()
}

func (j *Journal) OnReact(liked bool) quotes.Reaction {
	return j.quotes.React(liked)
}

// OnSaveReflection saves comment about the quote currently shown.
func (j *Journal) OnSaveReflection(ctx context.Context, comment string) Notification {
	q, ok := j.quotes.Current()
	if !ok {
		q = j.quotes.Next()
	}
	if err := quotes.SaveReflection(ctx, j.store, q, comment); err != nil {
		return notify(err, MsgCommentFailed)
	}
	return success("Comment saved with quote!")
}

func (j *Journal) OnSwitchTheme(ctx context.Context, theme string) Notification {
	theme = strings.ToLower(strings.TrimSpace(theme))
	if !storage.ValidTheme(theme) {
		return warning(fmt.Sprintf("Unknown theme %q. Choose one of: %s.", theme, strings.Join(storage.Themes, ", ")))
	}
	j.theme = theme
	if err := j.prefs.SetTheme(ctx, theme); err != nil {
		j.log.Warn(ctx, "cannot persist theme", "error", err)
	}
	return info(strings.ToUpper(theme[:1]) + theme[1:] + " theme activated")
}

// OnExport writes the plain-text journal to sink.
func (j *Journal) OnExport(ctx context.Context, sink Sink) Notification {
	list := j.store.Entries()
	if len(list) == 0 {
		return warning("No entries to export")
	}
	now := j.now()
	where, err := sink.Write(ctx, views.ExportFileName(now), []byte(views.ExportText(list, now)))
	if err != nil {
		j.log.Error(ctx, "export failed", "error", err)
		return failure(MsgExportFailed)
	}
	return success("Journal exported successfully! " + where)
}

func (j *Journal) Entries() []models.Entry { return j.store.Entries() }

func (j *Journal) Stats() views.Stats { return views.ComputeStats(j.store.Entries()) }

func (j *Journal) Session() session.Snapshot { return j.sess.Snapshot() }

func (j *Journal) Mode() session.Mode { return j.sess.Mode() }

func (j *Journal) SetMode(m session.Mode) { j.sess.SetMode(m) }

func (j *Journal) Theme() string { return j.theme }

func (j *Journal) CurrentQuote() (quotes.Quote, bool) { return j.quotes.Current() }

func (j *Journal) Reaction() quotes.Reaction { return j.quotes.Reaction() }

// PendingDelete reports the entry awaiting confirmation.
func (j *Journal) PendingDelete() (string, bool) { return j.store.PendingDelete() }
