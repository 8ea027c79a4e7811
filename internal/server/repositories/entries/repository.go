// Package entries persists vault entries. Entries are append-only: they are
// created once and listed per owner in insertion order.
package entries

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/passkeeper/internal/server/models"
)

// ErrEmptyOwner is returned when an entry is written or queried without an
// owner identity.
var ErrEmptyOwner = errors.New("entry owner is required")

// Repository is the vault store.
//
// Create fills in the generated ID and CreatedAt. ListByOwner returns every
// entry whose OwnerID equals ownerID, oldest first; an owner with no entries
// yields an empty slice.
type Repository interface {
	Create(ctx context.Context, entry *models.Entry) (*models.Entry, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Entry, error)
}
