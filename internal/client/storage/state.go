package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/gophjournal/internal/client/models"
	"github.com/dmitrijs2005/gophjournal/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophjournal/internal/dbx"
)

const (
	KeyAuthToken = "auth_token"
	KeyAuthUser  = "auth_user"
	KeyTheme     = "theme"

	DefaultTheme = "dark"
)

// Themes lists the accepted theme names.
var Themes = []string{"light", "dark", "custom"}

// ValidTheme reports whether name is one of Themes.
func ValidTheme(name string) bool {
	return slices.Contains(Themes, name)
}

// StateStore reads and writes the durable client state. Every key is
// independent; a value that does not parse is reported as absent.
type StateStore struct {
	db   *sql.DB
	repo func(dbx.DBTX) metadata.Repository
}

func NewStateStore(db *sql.DB) *StateStore {
	return &StateStore{
		db:   db,
		repo: func(h dbx.DBTX) metadata.Repository { return metadata.NewSQLiteRepository(h) },
	}
}

// LoadAuth returns the persisted token and user. Either may be missing
// independently; the caller decides what a half-present pair means.
func (s *StateStore) LoadAuth(ctx context.Context) (string, *models.User, error) {
	r := s.repo(s.db)

	tok, err := r.Get(ctx, KeyAuthToken)
	if err != nil {
		return "", nil, err
	}
	raw, err := r.Get(ctx, KeyAuthUser)
	if err != nil {
		return "", nil, err
	}

	var user *models.User
	if len(raw) > 0 {
		var u models.User
		if json.Unmarshal(raw, &u) == nil && u.ID != "" {
			user = &u
		}
	}
	return strings.TrimSpace(string(tok)), user, nil
}

// SaveAuth stores token and user together.
func (s *StateStore) SaveAuth(ctx context.Context, token string, user models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := s.repo(tx)
		if err := r.Set(ctx, KeyAuthToken, []byte(token)); err != nil {
			return err
		}
		return r.Set(ctx, KeyAuthUser, raw)
	})
}

// ClearAuth removes both auth keys and leaves the theme alone.
func (s *StateStore) ClearAuth(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := s.repo(tx)
		if err := r.Delete(ctx, KeyAuthToken); err != nil {
			return err
		}
		return r.Delete(ctx, KeyAuthUser)
	})
}

// Theme returns the stored theme, or DefaultTheme when it is missing or
// not a known name.
func (s *StateStore) Theme(ctx context.Context) (string, error) {
	raw, err := s.repo(s.db).Get(ctx, KeyTheme)
	if err != nil {
		return DefaultTheme, err
	}
	if t := string(raw); ValidTheme(t) {
		return t, nil
	}
	return DefaultTheme, nil
}

func (s *StateStore) SetTheme(ctx context.Context, theme string) error {
	if !ValidTheme(theme) {
		return fmt.Errorf("unknown theme %q", theme)
	}
	return s.repo(s.db).Set(ctx, KeyTheme, []byte(theme))
}
