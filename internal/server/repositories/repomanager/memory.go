package repomanager

import (
	"context"

	"github.com/dmitrijs2005/passkeeper/internal/server/repositories/entries"
	"github.com/dmitrijs2005/passkeeper/internal/server/repositories/users"
)

// MemoryRepositoryManager keeps everything in process memory.
type MemoryRepositoryManager struct {
	users   *users.MemoryRepository
	entries *entries.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		users:   users.NewMemoryRepository(),
		entries: entries.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) Users() users.Repository     { return m.users }
func (m *MemoryRepositoryManager) Entries() entries.Repository { return m.entries }
func (m *MemoryRepositoryManager) Ping(context.Context) error  { return nil }
func (m *MemoryRepositoryManager) Close() error                { return nil }
