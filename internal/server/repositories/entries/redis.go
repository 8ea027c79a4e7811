package entries

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/passkeeper/internal/server/models"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	entryKeyPrefix = "passkeeper:entry:"
	ownerKeyPrefix = "passkeeper:entries:"
)

// entryDocument is the JSON form of an entry in the key/value backends.
type entryDocument struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"created_at"`
}

// RedisRepository stores each entry as a JSON document and keeps a per-owner
// list of entry ids in insertion order. Both writes go in one MULTI/EXEC.
type RedisRepository struct {
	client redis.Cmdable
}

func NewRedisRepository(client redis.Cmdable) *RedisRepository {
	return &RedisRepository{client: client}
}

func (r *RedisRepository) Create(ctx context.Context, entry *models.Entry) (*models.Entry, error) {
	if entry.OwnerID == "" {
		return nil, ErrEmptyOwner
	}

	rec := entryDocument{
		ID:        uuid.NewString(),
		UserID:    entry.OwnerID,
		Title:     entry.Title,
		Password:  entry.Secret,
		CreatedAt: time.Now().UTC(),
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("marshal entry: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, entryKeyPrefix+rec.ID, data, 0)
		pipe.RPush(ctx, ownerKeyPrefix+rec.UserID, rec.ID)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("redis error: %w", err)
	}

	entry.ID = rec.ID
	entry.CreatedAt = rec.CreatedAt
	return entry, nil
}

func (r *RedisRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Entry, error) {
	if ownerID == "" {
		return nil, ErrEmptyOwner
	}

	ids, err := r.client.LRange(ctx, ownerKeyPrefix+ownerID, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis error: %w", err)
	}
	result := make([]*models.Entry, 0, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = entryKeyPrefix + id
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("redis error: %w", err)
	}

	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			continue
		}
		var rec entryDocument
		if err := json.Unmarshal([]byte(s), &rec); err != nil {
			return nil, fmt.Errorf("unmarshal entry: %w", err)
		}
		if rec.UserID != ownerID {
			continue
		}
		result = append(result, rec.toModel())
	}
	return result, nil
}

func (d *entryDocument) toModel() *models.Entry {
	return &models.Entry{
		ID:        d.ID,
		OwnerID:   d.UserID,
		Title:     d.Title,
		Secret:    d.Password,
		CreatedAt: d.CreatedAt,
	}
}
