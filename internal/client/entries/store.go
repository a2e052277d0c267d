// Package entries keeps the signed-in user's journal in memory. The server
// is the source of truth: every mutation is followed by a full reload, and
// a failed load leaves the collection empty rather than stale.
package entries

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophjournal/internal/client/models"
	"github.com/dmitrijs2005/gophjournal/internal/client/session"
	"github.com/dmitrijs2005/gophjournal/internal/common"
	"github.com/dmitrijs2005/gophjournal/internal/logging"
)

// API is the slice of the HTTP client the store needs.
type API interface {
	ListEntries(ctx context.Context) ([]models.Entry, error)
	CreateEntry(ctx context.Context, p models.EntryPayload) (*models.Entry, error)
	UpdateEntry(ctx context.Context, id string, p models.EntryPayload) (*models.Entry, error)
	DeleteEntry(ctx context.Context, id string) error
}

// Session is implemented by *session.Manager.
type Session interface {
	Snapshot() session.Snapshot
	Current(gen uint64) bool
	Expire(ctx context.Context, gen uint64) bool
}

// LoadError marks a failed fetch of the entry list, including the reload
// that follows a successful mutation.
type LoadError struct {
	Err error
}

func (e *LoadError) Error() string { return "load entries: " + e.Err.Error() }
func (e *LoadError) Unwrap() error { return e.Err }

type Store struct {
	mu      sync.Mutex
	entries []models.Entry
	pending string

	api  API
	sess Session
	now  func() time.Time
	log  logging.Logger
}

type Option func(*Store)

// WithClock replaces time.Now for the date and time stamped on saves.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func NewStore(api API, sess Session, log logging.Logger, opts ...Option) *Store {
	s := &Store{api: api, sess: sess, log: log, now: time.Now, entries: []models.Entry{}}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Load replaces the collection with the server's list. Without a session
// it empties the collection and makes no request.
func (s *Store) Load(ctx context.Context) error {
	snap := s.sess.Snapshot()
	if !snap.LoggedIn() {
		s.Reset()
		return nil
	}
	return s.load(ctx, snap)
}

func (s *Store) load(ctx context.Context, snap session.Snapshot) error {
	list, err := s.api.ListEntries(snap.Context(ctx))

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.sess.Current(snap.Generation) {
		s.log.Debug(ctx, "dropping entries of a previous session", "generation", snap.Generation)
		return common.ErrStaleResponse
	}

	if err != nil {
		s.entries = []models.Entry{}
		s.expireOnReject(ctx, snap.Generation, err)
		s.log.Warn(ctx, "cannot load entries", "error", err)
		return &LoadError{Err: err}
	}

	s.entries = list
	s.log.Debug(ctx, "entries loaded", "count", len(list))
	return nil
}

// Create validates and submits a new entry, then reloads.
func (s *Store) Create(ctx context.Context, d models.Draft) error {
	snap, payload, err := s.prepare(d)
	if err != nil {
		return err
	}
	if _, err := s.api.CreateEntry(snap.Context(ctx), payload); err != nil {
		return s.mutationFailed(ctx, snap, "create entry", err)
	}
	s.log.Info(ctx, "entry created", "title", payload.Title)
	return s.load(ctx, snap)
}

// Update replaces entry id with the draft, then reloads. The id must be in
// the current collection.
func (s *Store) Update(ctx context.Context, id string, d models.Draft) error {
	snap, payload, err := s.prepare(d)
	if err != nil {
		return err
	}
	if _, ok := s.Find(id); !ok {
		return fmt.Errorf("%w: %s", common.ErrEntryNotFound, id)
	}
	if _, err := s.api.UpdateEntry(snap.Context(ctx), id, payload); err != nil {
		return s.mutationFailed(ctx, snap, "update entry", err)
	}
	s.log.Info(ctx, "entry updated", "id", id)
	return s.load(ctx, snap)
}

// RequestDelete marks id for deletion. Nothing is sent until
// ConfirmDelete.
func (s *Store) RequestDelete(id string) error {
	if !s.sess.Snapshot().LoggedIn() {
		return common.ErrNotLoggedIn
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if indexOf(s.entries, id) < 0 {
		return fmt.Errorf("%w: %s", common.ErrEntryNotFound, id)
	}
	s.pending = id
	return nil
}

// ConfirmDelete deletes the pending entry and reloads.
func (s *Store) ConfirmDelete(ctx context.Context) error {
	s.mu.Lock()
	id := s.pending
	s.pending = ""
	s.mu.Unlock()

	if id == "" {
		return common.ErrNoPendingDelete
	}

	snap := s.sess.Snapshot()
	if !snap.LoggedIn() {
		return common.ErrNotLoggedIn
	}
	if err := s.api.DeleteEntry(snap.Context(ctx), id); err != nil {
		return s.mutationFailed(ctx, snap, "delete entry", err)
	}
	s.log.Info(ctx, "entry deleted", "id", id)
	return s.load(ctx, snap)
}

// CancelDelete forgets the pending delete.
func (s *Store) CancelDelete() {
	s.mu.Lock()
	s.pending = ""
	s.mu.Unlock()
}

func (s *Store) PendingDelete() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending, s.pending != ""
}

// Entries returns a copy of the collection, newest first.
func (s *Store) Entries() []models.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Entry, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Clone()
	}
	return out
}

func (s *Store) Find(id string) (models.Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := indexOf(s.entries, id); i >= 0 {
		return s.entries[i].Clone(), true
	}
	return models.Entry{}, false
}

// Reset empties the collection, e.g. when the user logs out.
func (s *Store) Reset() {
	s.mu.Lock()
	s.entries = []models.Entry{}
	s.pending = ""
	s.mu.Unlock()
}

func (s *Store) prepare(d models.Draft) (session.Snapshot, models.EntryPayload, error) {
	snap := s.sess.Snapshot()
	if !snap.LoggedIn() {
		return snap, models.EntryPayload{}, common.ErrNotLoggedIn
	}
	d = d.Normalize()
	if err := d.Validate(); err != nil {
		return snap, models.EntryPayload{}, err
	}
	return snap, d.Payload(s.now()), nil
}

func (s *Store) mutationFailed(ctx context.Context, snap session.Snapshot, op string, err error) error {
	if errors.Is(err, common.ErrAuthRejected) {
		s.mu.Lock()
		if s.sess.Current(snap.Generation) {
			s.entries = []models.Entry{}
			s.pending = ""
		}
		s.expireOnReject(ctx, snap.Generation, err)
		s.mu.Unlock()
	}
	s.log.Warn(ctx, op+" failed", "error", err)
	return fmt.Errorf("%s: %w", op, err)
}

// expireOnReject must be called with s.mu held.
func (s *Store) expireOnReject(ctx context.Context, gen uint64, err error) {
	if errors.Is(err, common.ErrAuthRejected) {
		s.sess.Expire(ctx, gen)
	}
}

func indexOf(list []models.Entry, id string) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}
