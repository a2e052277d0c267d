package session

import (
	"context"

	"github.com/dmitrijs2005/gophjournal/internal/client/models"
)

type fakeStore struct {
	token string
	user  *models.User

	loadErr  error
	saveErr  error
	clears   int
	saves    int
	LastUser models.User
}

func (f *fakeStore) LoadAuth(context.Context) (string, *models.User, error) {
	return f.token, f.user, f.loadErr
}

func (f *fakeStore) SaveAuth(_ context.Context, token string, user models.User) error {
	f.saves++
	f.LastUser = user
	if f.saveErr != nil {
		return f.saveErr
	}
	u := user
	f.token, f.user = token, &u
	return nil
}

func (f *fakeStore) ClearAuth(context.Context) error {
	f.clears++
	f.token, f.user = "", nil
	return nil
}

type fakeAuth struct {
	loginRes    *models.AuthResult
	loginErr    error
	registerErr error

	LastEmail    string
	LastPassword string
	LastUsername string
	calls        int
}

func (f *fakeAuth) Login(_ context.Context, email, password string) (*models.AuthResult, error) {
	f.calls++
	f.LastEmail, f.LastPassword = email, password
	return f.loginRes, f.loginErr
}

func (f *fakeAuth) Register(_ context.Context, username, email, password string) error {
	f.calls++
	f.LastUsername, f.LastEmail, f.LastPassword = username, email, password
	return f.registerErr
}
