// Package users persists registered identities. Every backend enforces
// username uniqueness atomically, so concurrent registrations of the same
// name yield exactly one stored user.
package users

import (
	"context"

	"github.com/dmitrijs2005/passkeeper/internal/server/models"
)

// Repository is the identity store.
//
// Create returns common.ErrDuplicateUsername when the username is taken and
// fills in the generated ID and CreatedAt on success. GetUserByLogin matches
// the username exactly and returns common.ErrorNotFound when absent.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
}
