package users

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/dgraph-io/badger/v3"
	"github.com/dmitrijs2005/passkeeper/internal/common"
	"github.com/dmitrijs2005/passkeeper/internal/server/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:users-%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, MigrateSQLite(context.Background(), db))
	return db
}

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func newTestBadger(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func backends(t *testing.T) map[string]func() Repository {
	return map[string]func() Repository{
		"memory": func() Repository { return NewMemoryRepository() },
		"badger": func() Repository { return NewBadgerRepository(newTestBadger(t)) },
		"sqlite": func() Repository { return NewSQLiteRepository(newTestSQLiteDB(t)) },
		"redis":  func() Repository { return NewRedisRepository(newTestRedis(t)) },
	}
}

func TestRepository_CreateAndGet(t *testing.T) {
	for name, mk := range backends(t) {
		t.Run(name, func(t *testing.T) {
			repo := mk()
			ctx := context.Background()

			created, err := repo.Create(ctx, &models.User{UserName: "alice", PasswordHash: "hash-a"})
			require.NoError(t, err)
			assert.NotEmpty(t, created.ID)
			assert.False(t, created.CreatedAt.IsZero())

			got, err := repo.GetUserByLogin(ctx, "alice")
			require.NoError(t, err)
			assert.Equal(t, created.ID, got.ID)
			assert.Equal(t, "alice", got.UserName)
			assert.Equal(t, "hash-a", got.PasswordHash)
		})
	}
}

func TestRepository_Duplicate(t *testing.T) {
	for name, mk := range backends(t) {
		t.Run(name, func(t *testing.T) {
			repo := mk()
			ctx := context.Background()

			_, err := repo.Create(ctx, &models.User{UserName: "alice", PasswordHash: "first"})
			require.NoError(t, err)

			_, err = repo.Create(ctx, &models.User{UserName: "alice", PasswordHash: "second"})
			assert.ErrorIs(t, err, common.ErrDuplicateUsername)

			got, err := repo.GetUserByLogin(ctx, "alice")
			require.NoError(t, err)
			assert.Equal(t, "first", got.PasswordHash, "original record must be untouched")
		})
	}
}

func TestRepository_CaseSensitive(t *testing.T) {
	for name, mk := range backends(t) {
		t.Run(name, func(t *testing.T) {
			repo := mk()
			ctx := context.Background()

			_, err := repo.Create(ctx, &models.User{UserName: "alice", PasswordHash: "a"})
			require.NoError(t, err)
			_, err = repo.Create(ctx, &models.User{UserName: "Alice", PasswordHash: "b"})
			require.NoError(t, err)

			_, err = repo.GetUserByLogin(ctx, "ALICE")
			assert.ErrorIs(t, err, common.ErrorNotFound)
		})
	}
}

func TestRepository_NotFound(t *testing.T) {
	for name, mk := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := mk().GetUserByLogin(context.Background(), "ghost")
			assert.ErrorIs(t, err, common.ErrorNotFound)
		})
	}
}

func TestRepository_ConcurrentCreateSingleWinner(t *testing.T) {
	for name, mk := range backends(t) {
		t.Run(name, func(t *testing.T) {
			repo := mk()
			ctx := context.Background()

			const n = 16
			var (
				wg      sync.WaitGroup
				mu      sync.Mutex
				wins    int
				dupes   int
				unknown []error
			)
			for i := 0; i < n; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					_, err := repo.Create(ctx, &models.User{UserName: "bob", PasswordHash: fmt.Sprintf("h%d", i)})
					mu.Lock()
					defer mu.Unlock()
					switch {
					case err == nil:
						wins++
					case errors.Is(err, common.ErrDuplicateUsername):
						dupes++
					default:
						unknown = append(unknown, err)
					}
				}(i)
			}
			wg.Wait()

			assert.Empty(t, unknown)
			assert.Equal(t, 1, wins)
			assert.Equal(t, n-1, dupes)
		})
	}
}
