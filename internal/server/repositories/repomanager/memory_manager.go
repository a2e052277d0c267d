package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/gophjournal/internal/dbx"
	"github.com/dmitrijs2005/gophjournal/internal/server/repositories/entries"
	"github.com/dmitrijs2005/gophjournal/internal/server/repositories/users"
)

// MemoryRepositoryManager serves the same in-process repositories for
// every handle. The db argument is ignored and may be nil.
type MemoryRepositoryManager struct {
	users   *users.MemoryRepository
	entries *entries.MemoryRepository
}

func NewMemoryRepositoryManager() RepositoryManager {
	return &MemoryRepositoryManager{
		users:   users.NewMemoryRepository(),
		entries: entries.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *MemoryRepositoryManager) Users(dbx.DBTX) users.Repository { return m.users }

func (m *MemoryRepositoryManager) Entries(dbx.DBTX) entries.Repository { return m.entries }
