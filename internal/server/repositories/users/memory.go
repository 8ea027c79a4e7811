package users

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/passkeeper/internal/common"
	"github.com/dmitrijs2005/passkeeper/internal/server/models"
	"github.com/google/uuid"
)

// MemoryRepository keeps users in process memory. Contents are lost on
// restart; it backs tests and the "memory" storage driver.
type MemoryRepository struct {
	mu     sync.RWMutex
	byName map[string]models.User
	now    func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byName: make(map[string]models.User),
		now:    time.Now,
	}
}

func (r *MemoryRepository) Create(_ context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[user.UserName]; ok {
		return nil, common.ErrDuplicateUsername
	}

	user.ID = uuid.NewString()
	user.CreatedAt = r.now().UTC()
	r.byName[user.UserName] = *user

	return user, nil
}

func (r *MemoryRepository) GetUserByLogin(_ context.Context, login string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byName[login]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &u, nil
}
