package repomanager

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/passkeeper/internal/server/repositories/entries"
	"github.com/dmitrijs2005/passkeeper/internal/server/repositories/users"
	"github.com/redis/go-redis/v9"
)

// RedisRepositoryManager vends repositories over one go-redis client.
type RedisRepositoryManager struct {
	client  *redis.Client
	users   *users.RedisRepository
	entries *entries.RedisRepository
}

// OpenRedis connects to addr and verifies it answers PING.
func OpenRedis(ctx context.Context, addr, password string, db int) (*RedisRepositoryManager, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &RedisRepositoryManager{
		client:  client,
		users:   users.NewRedisRepository(client),
		entries: entries.NewRedisRepository(client),
	}, nil
}

func (m *RedisRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *RedisRepositoryManager) Entries() entries.Repository {
	return m.entries
}

func (m *RedisRepositoryManager) Ping(ctx context.Context) error {
	return m.client.Ping(ctx).Err()
}

func (m *RedisRepositoryManager) Close() error {
	return m.client.Close()
}
