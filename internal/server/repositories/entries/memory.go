package entries

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/passkeeper/internal/server/models"
	"github.com/google/uuid"
)

// MemoryRepository keeps entries in process memory, one append-only slice
// per owner.
type MemoryRepository struct {
	mu      sync.RWMutex
	byOwner map[string][]models.Entry
	now     func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byOwner: make(map[string][]models.Entry),
		now:     time.Now,
	}
}

func (r *MemoryRepository) Create(_ context.Context, entry *models.Entry) (*models.Entry, error) {
	if entry.OwnerID == "" {
		return nil, ErrEmptyOwner
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entry.ID = uuid.NewString()
	entry.CreatedAt = r.now().UTC()
	r.byOwner[entry.OwnerID] = append(r.byOwner[entry.OwnerID], *entry)

	return entry, nil
}

func (r *MemoryRepository) ListByOwner(_ context.Context, ownerID string) ([]*models.Entry, error) {
	if ownerID == "" {
		return nil, ErrEmptyOwner
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.byOwner[ownerID]
	result := make([]*models.Entry, 0, len(stored))
	for i := range stored {
		e := stored[i]
		result = append(result, &e)
	}
	return result, nil
}
