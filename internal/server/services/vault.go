package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/passkeeper/internal/common"
	"github.com/dmitrijs2005/passkeeper/internal/server/models"
	"github.com/dmitrijs2005/passkeeper/internal/server/repositories/entries"
)

// VaultService reads and appends the entries of one caller. The caller ID
// must come from a verified session token; it is the only owner any
// operation touches.
type VaultService struct {
	entries entries.Repository
}

func NewVaultService(repo entries.Repository) *VaultService {
	return &VaultService{entries: repo}
}

// ListEntries returns the caller's entries in insertion order.
func (s *VaultService) ListEntries(ctx context.Context, callerID string) ([]*models.Entry, error) {
	if callerID == "" {
		return nil, common.ErrorUnauthorized
	}

	list, err := s.entries.ListByOwner(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("%w: list entries: %v", common.ErrorInternal, err)
	}
	return list, nil
}

// AddEntry stores a new entry owned by the caller. The secret is kept
// verbatim and may be empty; the title may not.
func (s *VaultService) AddEntry(ctx context.Context, callerID, title, secret string) (*models.Entry, error) {
	if callerID == "" {
		return nil, common.ErrorUnauthorized
	}
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrorValidation)
	}

	entry, err := s.entries.Create(ctx, &models.Entry{
		OwnerID: callerID,
		Title:   title,
		Secret:  secret,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: create entry: %v", common.ErrorInternal, err)
	}
	return entry, nil
}
