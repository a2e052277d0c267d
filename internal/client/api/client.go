package api

import (
	"context"

	"github.com/dmitrijs2005/gophjournal/internal/client/models"
)

// Client is the consumed API. Entry calls take the bearer token from the
// context, see WithAccessToken.
type Client interface {
	Login(ctx context.Context, email, password string) (*models.AuthResult, error)
	Register(ctx context.Context, username, email, password string) error

	ListEntries(ctx context.Context) ([]models.Entry, error)
	CreateEntry(ctx context.Context, p models.EntryPayload) (*models.Entry, error)
	UpdateEntry(ctx context.Context, id string, p models.EntryPayload) (*models.Entry, error)
	DeleteEntry(ctx context.Context, id string) error

	Ping(ctx context.Context) error
}
