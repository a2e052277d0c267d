package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/gophjournal/internal/client/api"
	"github.com/dmitrijs2005/gophjournal/internal/client/config"
	"github.com/dmitrijs2005/gophjournal/internal/client/entries"
	"github.com/dmitrijs2005/gophjournal/internal/client/export"
	"github.com/dmitrijs2005/gophjournal/internal/client/journal"
	"github.com/dmitrijs2005/gophjournal/internal/client/quotes"
	"github.com/dmitrijs2005/gophjournal/internal/client/session"
	"github.com/dmitrijs2005/gophjournal/internal/client/storage"
	"github.com/dmitrijs2005/gophjournal/internal/logging"
)

type App struct {
	journal *journal.Journal
	reader  *bufio.Reader
	out     io.Writer
	s3      export.S3Options
	now     func() time.Time

	db *sql.DB
}

// NewApp builds the whole client from c. Close releases the database.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.NewTextLogger(os.Stderr, c.LogLevel)

	catalog := quotes.DefaultCatalog()
	if c.QuotesFile != "" {
		var err error
		if catalog, err = quotes.LoadCatalog(c.QuotesFile); err != nil {
			return nil, err
		}
	}
	rot, err := quotes.NewRotator(catalog, nil)
	if err != nil {
		return nil, err
	}

	db, err := storage.Open(ctx, c.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open local database: %w", err)
	}
	state := storage.NewStateStore(db)

	apiClient := api.NewHTTPClient(c.ServerURL, c.RequestTimeout)
	sess := session.NewManager(state, apiClient, log.With("component", "session"))
	store := entries.NewStore(apiClient, sess, log.With("component", "entries"))
	j := journal.New(sess, store, rot, state, log)

	app := newApp(j, os.Stdin, os.Stdout)
	app.s3 = export.S3Options{
		Region:    c.S3.Region,
		Endpoint:  c.S3.Endpoint,
		AccessKey: c.S3.AccessKey,
		SecretKey: c.S3.SecretKey,
	}
	app.db = db
	return app, nil
}

func newApp(j *journal.Journal, in io.Reader, out io.Writer) *App {
	return &App{
		journal: j,
		reader:  bufio.NewReader(in),
		out:     out,
		now:     time.Now,
	}
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// Run restores the previous session and blocks in the REPL.
func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to GophJournal (type 'help' for commands)")
	a.show(a.journal.Start(ctx))
	if q, ok := a.journal.CurrentQuote(); ok {
		printlnFn(formatQuote(q))
	}
	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.journal.Session().LoggedIn()
}

func (a *App) status() string {
	s := a.journal.Session()
	if !s.LoggedIn() {
		return "guest"
	}
	return s.User.Username
}

// show prints n unless it is empty.
func (a *App) show(n journal.Notification) {
	if n.Empty() {
		return
	}
	printlnFn(fmt.Sprintf("[%s] %s", n.Level, n.Message))
}
