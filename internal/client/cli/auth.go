package cli

import (
	"context"

	"github.com/dmitrijs2005/gophjournal/internal/client/session"
)

// Register prompts for a username, email and password and creates the
// account. It does not sign in.
func (a *App) Register(ctx context.Context) error {
	a.journal.SetMode(session.ModeRegister)

	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := a.promptEmail()
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	if hint := session.CheckPassword(password); hint != "" {
		printlnFn(hint)
	}

	a.show(a.journal.OnRegister(ctx, username, email, password))
	return nil
}

// Login prompts for credentials and signs in. On success the entry list
// is fetched for the new user.
func (a *App) Login(ctx context.Context) error {
	a.journal.SetMode(session.ModeLogin)

	email, err := a.promptEmail()
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	a.show(a.journal.OnLogin(ctx, email, password))
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.show(a.journal.OnLogout(ctx))
	return nil
}

func (a *App) promptEmail() (string, error) {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return "", err
	}
	if hint := session.CheckEmail(email); hint != "" {
		printlnFn(hint)
	}
	return email, nil
}
