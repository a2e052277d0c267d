package entries

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophjournal/internal/common"
	"github.com/dmitrijs2005/gophjournal/internal/server/models"
)

// MemoryRepository keeps entries in process. Safe for concurrent use.
type MemoryRepository struct {
	mu   sync.RWMutex
	byID map[string]*models.Entry
	now  func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byID: map[string]*models.Entry{}, now: func() time.Time { return time.Now().UTC() }}
}

func (r *MemoryRepository) ListByUser(_ context.Context, userID string) ([]*models.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []*models.Entry{}
	for _, e := range r.byID {
		if e.UserID == userID {
			out = append(out, e.Clone())
		}
	}
	slices.SortStableFunc(out, func(a, b *models.Entry) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out, nil
}

func (r *MemoryRepository) Create(_ context.Context, entry *models.Entry) (*models.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[entry.ID]; ok {
		return nil, common.ErrorAlreadyExists
	}
	now := r.now()
	entry.CreatedAt, entry.UpdatedAt = now, now
	r.byID[entry.ID] = entry.Clone()
	return entry, nil
}

func (r *MemoryRepository) Update(_ context.Context, entry *models.Entry) (*models.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.byID[entry.ID]
	if !ok || cur.UserID != entry.UserID {
		return nil, common.ErrorNotFound
	}
	entry.CreatedAt, entry.UpdatedAt = cur.CreatedAt, r.now()
	r.byID[entry.ID] = entry.Clone()
	return entry, nil
}

func (r *MemoryRepository) Delete(_ context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.byID[id]
	if !ok || cur.UserID != userID {
		return common.ErrorNotFound
	}
	delete(r.byID, id)
	return nil
}
