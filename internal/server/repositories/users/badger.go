package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/dmitrijs2005/passkeeper/internal/common"
	"github.com/dmitrijs2005/passkeeper/internal/server/models"
	"github.com/google/uuid"
)

const (
	badgerUserPrefix = "user/"
	maxTxnRetries    = 5
)

// BadgerRepository stores users in an embedded Badger database. Create runs
// a read-then-write transaction; Badger's conflict detection aborts the
// loser of a concurrent registration, which is then retried and sees the
// existing key.
type BadgerRepository struct {
	db *badger.DB
}

func NewBadgerRepository(db *badger.DB) *BadgerRepository {
	return &BadgerRepository{db: db}
}

func (r *BadgerRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	rec := userDocument{
		ID:           uuid.NewString(),
		UserName:     user.UserName,
		PasswordHash: user.PasswordHash,
		CreatedAt:    time.Now().UTC(),
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("marshal user: %w", err)
	}
	key := []byte(badgerUserPrefix + user.UserName)

	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		err = r.db.Update(func(txn *badger.Txn) error {
			_, err := txn.Get(key)
			switch {
			case err == nil:
				return common.ErrDuplicateUsername
			case !errors.Is(err, badger.ErrKeyNotFound):
				return err
			}
			return txn.Set(key, data)
		})
		if errors.Is(err, badger.ErrConflict) && attempt < maxTxnRetries {
			continue
		}
		break
	}

	switch {
	case err == nil:
	case errors.Is(err, common.ErrDuplicateUsername):
		return nil, common.ErrDuplicateUsername
	default:
		return nil, fmt.Errorf("badger error: %w", err)
	}

	user.ID = rec.ID
	user.CreatedAt = rec.CreatedAt
	return user, nil
}

func (r *BadgerRepository) GetUserByLogin(_ context.Context, login string) (*models.User, error) {
	var rec userDocument
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(badgerUserPrefix + login))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("badger error: %w", err)
	}
	return rec.toModel(), nil
}
