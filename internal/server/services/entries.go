package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/gophjournal/internal/common"
	"github.com/dmitrijs2005/gophjournal/internal/server/models"
	"github.com/dmitrijs2005/gophjournal/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// EntryService manages entries on behalf of an authenticated user. Every
// call is scoped to userID; entries of other users look like missing ones.
type EntryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewEntryService(db *sql.DB, m repomanager.RepositoryManager) *EntryService {
	return &EntryService{db: db, repomanager: m}
}

func (s *EntryService) List(ctx context.Context, userID string) ([]*models.Entry, error) {
	return s.repomanager.Entries(s.db).ListByUser(ctx, userID)
}

// Create stores e as a new entry of userID. ID and timestamps are assigned
// here and by the repository.
func (s *EntryService) Create(ctx context.Context, userID string, e *models.Entry) (*models.Entry, error) {
	e.ID = uuid.NewString()
	e.UserID = userID
	if e.Tags == nil {
		e.Tags = []string{}
	}
	return s.repomanager.Entries(s.db).Create(ctx, e)
}

// Update replaces the editable fields of entry id. Malformed ids are
// reported as common.ErrorNotFound.
func (s *EntryService) Update(ctx context.Context, userID, id string, e *models.Entry) (*models.Entry, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, common.ErrorNotFound
	}
	e.ID = id
	e.UserID = userID
	if e.Tags == nil {
		e.Tags = []string{}
	}
	return s.repomanager.Entries(s.db).Update(ctx, e)
}

func (s *EntryService) Delete(ctx context.Context, userID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return common.ErrorNotFound
	}
	return s.repomanager.Entries(s.db).Delete(ctx, userID, id)
}
