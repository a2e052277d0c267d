package entries

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophjournal/internal/client/models"
	"github.com/dmitrijs2005/gophjournal/internal/common"
	"github.com/dmitrijs2005/gophjournal/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, time.March, 4, 9, 5, 0, 0, time.UTC)

func newStore(api *fakeAPI, sess *fakeSession) *Store {
	return NewStore(api, sess, logging.Discard(), WithClock(func() time.Time { return fixedNow }))
}

func authRejected() error {
	return fmt.Errorf("%w: status 401", common.ErrAuthRejected)
}

func TestLoad_WithoutSessionMakesNoCalls(t *testing.T) {
	api := &fakeAPI{list: seed(2)}
	s := newStore(api, &fakeSession{})

	require.NoError(t, s.Load(context.Background()))
	assert.Empty(t, s.Entries())
	assert.Zero(t, api.calls)
}

func TestLoad_ReplacesCollection(t *testing.T) {
	api := &fakeAPI{list: seed(3)}
	s := newStore(api, loggedIn())

	require.NoError(t, s.Load(context.Background()))
	assert.Equal(t, seed(3), s.Entries())
}

func TestLoad_FailureEmptiesCollection(t *testing.T) {
	api := &fakeAPI{list: seed(2)}
	s := newStore(api, loggedIn())
	require.NoError(t, s.Load(context.Background()))

	api.listErr = fmt.Errorf("%w: refused", common.ErrTransport)
	err := s.Load(context.Background())

	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.ErrorIs(t, err, common.ErrTransport)
	assert.Empty(t, s.Entries())
}

func TestLoad_AuthRejectionExpiresSession(t *testing.T) {
	sess := loggedIn()
	api := &fakeAPI{listErr: authRejected()}
	s := newStore(api, sess)

	err := s.Load(context.Background())
	require.ErrorIs(t, err, common.ErrAuthRejected)
	assert.Equal(t, []uint64{1}, sess.expired)
	assert.False(t, sess.Snapshot().LoggedIn())
	assert.Empty(t, s.Entries())
}

func TestLoad_StaleResponseIsDropped(t *testing.T) {
	sess := loggedIn()
	api := &fakeAPI{list: seed(1)}
	s := newStore(api, sess)
	require.NoError(t, s.Load(context.Background()))

	api.list = seed(5)
	api.onList = sess.switchUser
	err := s.Load(context.Background())

	require.ErrorIs(t, err, common.ErrStaleResponse)
	assert.Equal(t, seed(1), s.Entries(), "state from the newer session is untouched")
}

func TestLoad_StaleRejectionDoesNotLogOutNewSession(t *testing.T) {
	sess := loggedIn()
	api := &fakeAPI{listErr: authRejected()}
	api.onList = sess.switchUser
	s := newStore(api, sess)

	require.ErrorIs(t, s.Load(context.Background()), common.ErrStaleResponse)
	assert.True(t, sess.Snapshot().LoggedIn())
	assert.Empty(t, sess.expired)
}

func TestCreate_ValidatesLocally(t *testing.T) {
	tests := []struct {
		name    string
		content string
		ok      bool
	}{
		{"empty", "", false},
		{"spaces", "    ", false},
		{"one", "a", true},
		{"max", strings.Repeat("a", common.MaxContentLength), true},
		{"over", strings.Repeat("a", common.MaxContentLength+1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAPI{}
			s := newStore(api, loggedIn())

			err := s.Create(context.Background(), models.Draft{Content: tt.content})
			if tt.ok {
				require.NoError(t, err)
				assert.Len(t, s.Entries(), 1)
				return
			}
			require.ErrorIs(t, err, common.ErrValidation)
			assert.Zero(t, api.calls)
		})
	}
}

func TestCreate_StampsAndReloads(t *testing.T) {
	api := &fakeAPI{list: seed(1)}
	s := newStore(api, loggedIn())

	err := s.Create(context.Background(), models.Draft{Content: " hello world ", Tags: models.ParseTags("a, ,b")})
	require.NoError(t, err)

	p := api.LastPayload
	assert.Equal(t, models.UntitledTitle, p.Title)
	assert.Equal(t, "hello world", p.Content)
	assert.Equal(t, models.CategoryThought, p.Category)
	assert.Equal(t, []string{"a", "b"}, p.Tags)
	assert.Equal(t, "Tuesday, March 4, 2025", p.Date)
	assert.Equal(t, "09:05 AM", p.Time)

	assert.Equal(t, api.list, s.Entries())
	assert.Len(t, s.Entries(), 2)
}

func TestMutations_WithoutSessionFailLocally(t *testing.T) {
	api := &fakeAPI{}
	s := newStore(api, &fakeSession{})
	ctx := context.Background()

	assert.ErrorIs(t, s.Create(ctx, models.Draft{Content: "x"}), common.ErrNotLoggedIn)
	assert.ErrorIs(t, s.Update(ctx, "1", models.Draft{Content: "x"}), common.ErrNotLoggedIn)
	assert.ErrorIs(t, s.RequestDelete("1"), common.ErrNotLoggedIn)
	assert.Zero(t, api.calls)
}

func TestUpdate(t *testing.T) {
	api := &fakeAPI{list: seed(2)}
	s := newStore(api, loggedIn())
	ctx := context.Background()
	require.NoError(t, s.Load(ctx))

	require.ErrorIs(t, s.Update(ctx, "nope", models.Draft{Content: "x"}), common.ErrEntryNotFound)

	e, ok := s.Find("1")
	require.True(t, ok)
	d := models.DraftFrom(e)
	d.Content = "changed"
	require.NoError(t, s.Update(ctx, "1", d))

	assert.Equal(t, "1", api.LastID)
	got, _ := s.Find("1")
	assert.Equal(t, "changed", got.Content)
	assert.Equal(t, api.list, s.Entries())
}

func TestDelete_TwoPhase(t *testing.T) {
	api := &fakeAPI{list: seed(3)}
	s := newStore(api, loggedIn())
	ctx := context.Background()
	require.NoError(t, s.Load(ctx))
	calls := api.calls

	require.ErrorIs(t, s.RequestDelete("missing"), common.ErrEntryNotFound)
	require.NoError(t, s.RequestDelete("2"))
	id, ok := s.PendingDelete()
	assert.True(t, ok)
	assert.Equal(t, "2", id)

	s.CancelDelete()
	_, ok = s.PendingDelete()
	assert.False(t, ok)
	assert.Equal(t, calls, api.calls, "cancel sends nothing")
	assert.Len(t, s.Entries(), 3)

	require.ErrorIs(t, s.ConfirmDelete(ctx), common.ErrNoPendingDelete)

	require.NoError(t, s.RequestDelete("2"))
	require.NoError(t, s.ConfirmDelete(ctx))
	assert.Equal(t, "2", api.LastID)
	assert.Equal(t, api.list, s.Entries())
	assert.Len(t, s.Entries(), 2)
	_, ok = s.PendingDelete()
	assert.False(t, ok)
}

func TestMutation_AuthRejectionLogsOut(t *testing.T) {
	ops := map[string]func(s *Store, api *fakeAPI) error{
		"create": func(s *Store, api *fakeAPI) error {
			api.createErr = authRejected()
			return s.Create(context.Background(), models.Draft{Content: "x"})
		},
		"update": func(s *Store, api *fakeAPI) error {
			api.updateErr = authRejected()
			return s.Update(context.Background(), "1", models.Draft{Content: "x"})
		},
		"delete": func(s *Store, api *fakeAPI) error {
			api.deleteErr = authRejected()
			if err := s.RequestDelete("1"); err != nil {
				return err
			}
			return s.ConfirmDelete(context.Background())
		},
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			sess := loggedIn()
			api := &fakeAPI{list: seed(2)}
			s := newStore(api, sess)
			require.NoError(t, s.Load(context.Background()))

			err := op(s, api)
			require.ErrorIs(t, err, common.ErrAuthRejected)
			assert.False(t, sess.Snapshot().LoggedIn())
			assert.Empty(t, s.Entries())

			require.NoError(t, s.Load(context.Background()))
			assert.Empty(t, s.Entries())
		})
	}
}

func TestMutation_ServerErrorKeepsCollection(t *testing.T) {
	api := &fakeAPI{list: seed(2), createErr: &common.ServerError{Status: 500, Message: "db down"}}
	s := newStore(api, loggedIn())
	require.NoError(t, s.Load(context.Background()))

	err := s.Create(context.Background(), models.Draft{Content: "x"})
	require.ErrorIs(t, err, common.ErrServerRejected)
	assert.Len(t, s.Entries(), 2)
}

func TestCreate_ReloadFailureIsLoadError(t *testing.T) {
	api := &fakeAPI{}
	s := newStore(api, loggedIn())
	api.onList = func() { api.listErr = fmt.Errorf("%w: timeout", common.ErrTransport) }

	err := s.Create(context.Background(), models.Draft{Content: "x"})
	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.Empty(t, s.Entries())
}

func TestEntries_ReturnsCopy(t *testing.T) {
	api := &fakeAPI{list: []models.Entry{{ID: "1", Title: "a", Tags: []string{"t"}}}}
	s := newStore(api, loggedIn())
	require.NoError(t, s.Load(context.Background()))

	got := s.Entries()
	got[0].Title = "changed"
	got[0].Tags[0] = "changed"

	e, _ := s.Find("1")
	assert.Equal(t, "a", e.Title)
	assert.Equal(t, "t", e.Tags[0])
}

func TestReset(t *testing.T) {
	api := &fakeAPI{list: seed(2)}
	s := newStore(api, loggedIn())
	require.NoError(t, s.Load(context.Background()))
	require.NoError(t, s.RequestDelete("1"))

	s.Reset()
	assert.Empty(t, s.Entries())
	_, ok := s.PendingDelete()
	assert.False(t, ok)
}
