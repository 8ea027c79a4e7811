package entries

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/dmitrijs2005/passkeeper/internal/server/models"
	"github.com/oklog/ulid/v2"
)

const badgerEntryPrefix = "entry/"

// BadgerRepository stores entries in an embedded Badger database under
// keys of the form entry/<owner>\x00<ulid>. Entry IDs are monotonic ULIDs,
// so a prefix scan returns an owner's entries in insertion order.
type BadgerRepository struct {
	db *badger.DB

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
	lastMs  uint64
}

func NewBadgerRepository(db *badger.DB) *BadgerRepository {
	return &BadgerRepository{
		db:      db,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

func ownerPrefix(ownerID string) []byte {
	return []byte(badgerEntryPrefix + ownerID + "\x00")
}

// nextID returns a ULID strictly greater than every ID issued before by r,
// even if the wall clock steps backwards.
func (r *BadgerRepository) nextID(now time.Time) (ulid.ULID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ms := ulid.Timestamp(now)
	if ms < r.lastMs {
		ms = r.lastMs
	}
	id, err := ulid.New(ms, r.entropy)
	if err != nil {
		return ulid.ULID{}, err
	}
	r.lastMs = ms
	return id, nil
}

func (r *BadgerRepository) Create(_ context.Context, entry *models.Entry) (*models.Entry, error) {
	if entry.OwnerID == "" {
		return nil, ErrEmptyOwner
	}

	now := time.Now().UTC()
	id, err := r.nextID(now)
	if err != nil {
		return nil, fmt.Errorf("generate entry id: %w", err)
	}

	rec := entryDocument{
		ID:        id.String(),
		UserID:    entry.OwnerID,
		Title:     entry.Title,
		Password:  entry.Secret,
		CreatedAt: now,
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("marshal entry: %w", err)
	}

	key := append(ownerPrefix(entry.OwnerID), rec.ID...)
	if err := r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	}); err != nil {
		return nil, fmt.Errorf("badger error: %w", err)
	}

	entry.ID = rec.ID
	entry.CreatedAt = rec.CreatedAt
	return entry, nil
}

func (r *BadgerRepository) ListByOwner(_ context.Context, ownerID string) ([]*models.Entry, error) {
	if ownerID == "" {
		return nil, ErrEmptyOwner
	}

	result := make([]*models.Entry, 0)
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = ownerPrefix(ownerID)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var rec entryDocument
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			}); err != nil {
				return err
			}
			result = append(result, rec.toModel())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("badger error: %w", err)
	}
	return result, nil
}
