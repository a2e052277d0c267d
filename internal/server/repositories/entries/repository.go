package entries

import (
	"context"

	"github.com/dmitrijs2005/gophjournal/internal/server/models"
)

// Repository stores journal entries. Every operation is scoped to the
// owner: an entry of another user behaves exactly like a missing one and
// yields common.ErrorNotFound.
type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]*models.Entry, error)
	Create(ctx context.Context, entry *models.Entry) (*models.Entry, error)
	Update(ctx context.Context, entry *models.Entry) (*models.Entry, error)
	Delete(ctx context.Context, userID, id string) error
}
