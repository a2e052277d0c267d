package users

import (
	"context"

	"github.com/dmitrijs2005/gophjournal/internal/server/models"
)

// Repository stores accounts. Emails are unique; Create reports a clash
// as common.ErrorAlreadyExists and lookups of unknown emails as
// common.ErrorNotFound.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}
