// Package session tracks who is signed in. It owns the bearer token and
// user, persists them between runs, and hands out a generation number so
// that responses from an older session can be recognised and dropped.
package session

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"sync"

	"github.com/dmitrijs2005/gophjournal/internal/client/api"
	"github.com/dmitrijs2005/gophjournal/internal/client/models"
	"github.com/dmitrijs2005/gophjournal/internal/common"
	"github.com/dmitrijs2005/gophjournal/internal/logging"
)

// Mode selects which account form the front end shows.
type Mode string

const (
	ModeLogin    Mode = "login"
	ModeRegister Mode = "register"
)

const (
	MsgAuthFailed  = "Authentication failed."
	MsgServerError = "Server error. Please try again."
)

// Store persists the identity. storage.StateStore implements it.
type Store interface {
	LoadAuth(ctx context.Context) (string, *models.User, error)
	SaveAuth(ctx context.Context, token string, user models.User) error
	ClearAuth(ctx context.Context) error
}

// Authenticator is the part of the API the session talks to.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*models.AuthResult, error)
	Register(ctx context.Context, username, email, password string) error
}

// Snapshot is a consistent copy of the session taken under the lock.
type Snapshot struct {
	Token      string
	User       *models.User
	Generation uint64
}

// LoggedIn reports whether the snapshot carries an identity.
func (s Snapshot) LoggedIn() bool {
	return s.Token != "" && s.User != nil
}

// Context returns ctx carrying the snapshot's bearer token.
func (s Snapshot) Context(ctx context.Context) context.Context {
	return api.WithAccessToken(ctx, s.Token)
}

// AuthError is returned by Login and Register. Message is what the user
// should read; the wrapped error keeps the class for errors.Is.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string { return e.Message }
func (e *AuthError) Unwrap() error { return e.Err }

type Manager struct {
	mu    sync.Mutex
	token string
	user  *models.User
	mode  Mode
	gen   uint64

	store Store
	auth  Authenticator
	log   logging.Logger
}

func NewManager(store Store, auth Authenticator, log logging.Logger) *Manager {
	return &Manager{store: store, auth: auth, log: log, mode: ModeLogin}
}

// Restore loads the persisted identity. Anything incomplete is treated as
// logged out and wiped from the store. Failures are logged, not returned.
func (m *Manager) Restore(ctx context.Context) {
	tok, user, err := m.store.LoadAuth(ctx)
	if err != nil {
		m.log.Warn(ctx, "cannot read persisted session", "error", err)
		tok, user = "", nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if tok == "" || user == nil {
		m.token, m.user = "", nil
		if tok != "" || user != nil {
			m.log.Warn(ctx, "discarding incomplete persisted session")
			if err := m.store.ClearAuth(ctx); err != nil {
				m.log.Warn(ctx, "cannot clear persisted session", "error", err)
			}
		}
		return
	}

	m.token, m.user = tok, user
	m.gen++
	m.log.Info(ctx, "session restored", "user", user.Username)
}

// Login authenticates and, on success, replaces the current identity.
// On failure the state is left exactly as it was.
func (m *Manager) Login(ctx context.Context, email, password string) (models.User, error) {
	res, err := m.auth.Login(ctx, strings.TrimSpace(email), password)
	if err != nil {
		return models.User{}, authFailure(err)
	}

	if err := m.store.SaveAuth(ctx, res.Token, res.User); err != nil {
		m.log.Error(ctx, "cannot persist session", "error", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	u := res.User
	m.token, m.user = res.Token, &u
	m.gen++
	m.log.Info(ctx, "logged in", "user", u.Username)
	return u, nil
}

// Register creates an account. It never signs in; on success the mode
// flips to login so the user can do that next.
func (m *Manager) Register(ctx context.Context, username, email, password string) error {
	err := m.auth.Register(ctx, strings.TrimSpace(username), strings.TrimSpace(email), password)
	if err != nil {
		return authFailure(err)
	}

	m.mu.Lock()
	m.mode = ModeLogin
	m.mu.Unlock()
	m.log.Info(ctx, "registered", "user", username)
	return nil
}

// Logout drops the identity locally. The server is not told.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	m.clearLocked(ctx)
	m.mu.Unlock()
	m.log.Info(ctx, "logged out")
}

// Expire logs out because the server rejected the credential of session
// generation gen. A rejection for an older session is ignored.
func (m *Manager) Expire(ctx context.Context, gen uint64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if gen != m.gen || m.token == "" {
		return false
	}
	m.clearLocked(ctx)
	m.log.Warn(ctx, "session expired by server")
	return true
}

func (m *Manager) clearLocked(ctx context.Context) {
	m.token, m.user = "", nil
	m.gen++
	if err := m.store.ClearAuth(ctx); err != nil {
		m.log.Error(ctx, "cannot clear persisted session", "error", err)
	}
}

func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	var u *models.User
	if m.user != nil {
		c := *m.user
		u = &c
	}
	return Snapshot{Token: m.token, User: u, Generation: m.gen}
}

func (m *Manager) LoggedIn() bool {
	return m.Snapshot().LoggedIn()
}

// Current reports whether gen is still the live generation.
func (m *Manager) Current(gen uint64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return gen == m.gen
}

func (m *Manager) Mode() Mode {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mode
}

func (m *Manager) SetMode(mode Mode) {
	if mode != ModeRegister {
		mode = ModeLogin
	}
	m.mu.Lock()
	m.mode = mode
	m.mu.Unlock()
}

func authFailure(err error) error {
	var se *common.ServerError
	switch {
	case errors.As(err, &se):
		msg := se.Message
		if msg == "" {
			msg = MsgAuthFailed
		}
		return &AuthError{Message: msg, Err: err}
	case errors.Is(err, common.ErrTransport):
		return &AuthError{Message: MsgServerError, Err: err}
	default:
		return &AuthError{Message: MsgServerError, Err: errors.Join(common.ErrTransport, err)}
	}
}

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// CheckEmail returns a hint when email does not look like an address.
// It never blocks submission.
func CheckEmail(email string) string {
	if email = strings.TrimSpace(email); email == "" || emailRe.MatchString(email) {
		return ""
	}
	return "Please enter a valid email address."
}

// CheckPassword returns a hint for short passwords.
func CheckPassword(password string) string {
	if n := len([]rune(password)); n > 0 && n < 6 {
		return "Password should be at least 6 characters."
	}
	return ""
}
