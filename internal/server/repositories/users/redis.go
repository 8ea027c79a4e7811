package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/passkeeper/internal/common"
	"github.com/dmitrijs2005/passkeeper/internal/server/models"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const defaultRedisPrefix = "passkeeper:user:"

// userDocument is the JSON form of a user in the key/value backends.
type userDocument struct {
	ID           string    `json:"id"`
	UserName     string    `json:"username"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// RedisRepository keeps one JSON document per username. SETNX on the
// username key makes registration atomic.
type RedisRepository struct {
	client redis.Cmdable
	prefix string
}

func NewRedisRepository(client redis.Cmdable) *RedisRepository {
	return &RedisRepository{client: client, prefix: defaultRedisPrefix}
}

func (r *RedisRepository) key(userName string) string {
	return r.prefix + userName
}

func (r *RedisRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
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

	ok, err := r.client.SetNX(ctx, r.key(user.UserName), data, 0).Result()
	if err != nil {
		return nil, fmt.Errorf("redis error: %w", err)
	}
	if !ok {
		return nil, common.ErrDuplicateUsername
	}

	user.ID = rec.ID
	user.CreatedAt = rec.CreatedAt
	return user, nil
}

func (r *RedisRepository) GetUserByLogin(ctx context.Context, login string) (*models.User, error) {
	raw, err := r.client.Get(ctx, r.key(login)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("redis error: %w", err)
	}

	var rec userDocument
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal user: %w", err)
	}

	return rec.toModel(), nil
}

func (d *userDocument) toModel() *models.User {
	return &models.User{
		ID:           d.ID,
		UserName:     d.UserName,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt,
	}
}
