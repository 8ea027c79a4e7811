package entries

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/dgraph-io/badger/v3"
	"github.com/dmitrijs2005/passkeeper/internal/server/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:entries-%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, MigrateSQLite(context.Background(), db))
	return db
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
		"redis": func() Repository {
			mr := miniredis.RunT(t)
			client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
			t.Cleanup(func() { _ = client.Close() })
			return NewRedisRepository(client)
		},
	}
}

func titles(list []*models.Entry) []string {
	out := make([]string, 0, len(list))
	for _, e := range list {
		out = append(out, e.Title)
	}
	return out
}

func TestRepository_ListPreservesInsertionOrder(t *testing.T) {
	for name, mk := range backends(t) {
		t.Run(name, func(t *testing.T) {
			repo := mk()
			ctx := context.Background()

			for _, title := range []string{"gmail", "bank", "aws"} {
				e, err := repo.Create(ctx, &models.Entry{OwnerID: "u1", Title: title, Secret: title + "-pw"})
				require.NoError(t, err)
				assert.NotEmpty(t, e.ID)
				assert.False(t, e.CreatedAt.IsZero())
			}

			got, err := repo.ListByOwner(ctx, "u1")
			require.NoError(t, err)
			assert.Equal(t, []string{"gmail", "bank", "aws"}, titles(got))
			assert.Equal(t, "bank-pw", got[1].Secret)
			assert.Equal(t, "u1", got[2].OwnerID)
		})
	}
}

func TestRepository_OwnerIsolation(t *testing.T) {
	for name, mk := range backends(t) {
		t.Run(name, func(t *testing.T) {
			repo := mk()
			ctx := context.Background()

			_, err := repo.Create(ctx, &models.Entry{OwnerID: "alice", Title: "gmail", Secret: "x"})
			require.NoError(t, err)
			_, err = repo.Create(ctx, &models.Entry{OwnerID: "bob", Title: "bank", Secret: "y"})
			require.NoError(t, err)

			a, err := repo.ListByOwner(ctx, "alice")
			require.NoError(t, err)
			assert.Equal(t, []string{"gmail"}, titles(a))

			b, err := repo.ListByOwner(ctx, "bob")
			require.NoError(t, err)
			assert.Equal(t, []string{"bank"}, titles(b))

			none, err := repo.ListByOwner(ctx, "carol")
			require.NoError(t, err)
			assert.NotNil(t, none)
			assert.Empty(t, none)
		})
	}
}

func TestRepository_DuplicatesAndVerbatimSecrets(t *testing.T) {
	for name, mk := range backends(t) {
		t.Run(name, func(t *testing.T) {
			repo := mk()
			ctx := context.Background()

			secret := "  spaced ünïcödé \"quoted\"  "
			first, err := repo.Create(ctx, &models.Entry{OwnerID: "u1", Title: "dup", Secret: secret})
			require.NoError(t, err)
			second, err := repo.Create(ctx, &models.Entry{OwnerID: "u1", Title: "dup", Secret: ""})
			require.NoError(t, err)
			assert.NotEqual(t, first.ID, second.ID)

			got, err := repo.ListByOwner(ctx, "u1")
			require.NoError(t, err)
			require.Len(t, got, 2)
			assert.Equal(t, secret, got[0].Secret)
			assert.Equal(t, "", got[1].Secret)
		})
	}
}

func TestRepository_EmptyOwnerRejected(t *testing.T) {
	for name, mk := range backends(t) {
		t.Run(name, func(t *testing.T) {
			repo := mk()
			_, err := repo.Create(context.Background(), &models.Entry{Title: "t"})
			assert.ErrorIs(t, err, ErrEmptyOwner)
			_, err = repo.ListByOwner(context.Background(), "")
			assert.ErrorIs(t, err, ErrEmptyOwner)
		})
	}
}

func TestRepository_ConcurrentAppends(t *testing.T) {
	for name, mk := range backends(t) {
		t.Run(name, func(t *testing.T) {
			repo := mk()
			ctx := context.Background()

			const n = 20
			var wg sync.WaitGroup
			errs := make(chan error, n)
			for i := 0; i < n; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					_, err := repo.Create(ctx, &models.Entry{OwnerID: "u1", Title: fmt.Sprintf("t%d", i)})
					errs <- err
				}(i)
			}
			wg.Wait()
			close(errs)
			for err := range errs {
				require.NoError(t, err)
			}

			got, err := repo.ListByOwner(ctx, "u1")
			require.NoError(t, err)
			assert.Len(t, got, n)
		})
	}
}
