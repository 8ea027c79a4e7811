package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/passkeeper/internal/server/repositories/entries"
	"github.com/dmitrijs2005/passkeeper/internal/server/repositories/users"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SQLiteRepositoryManager vends gorm-backed repositories over an embedded
// SQLite database.
type SQLiteRepositoryManager struct {
	db      *gorm.DB
	sqlDB   *sql.DB
	users   *users.SQLiteRepository
	entries *entries.SQLiteRepository
}

// OpenSQLite opens path (a file name or a sqlite DSN) and creates the
// tables. Writes are serialised through a single connection.
func OpenSQLite(ctx context.Context, path string) (*SQLiteRepositoryManager, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := users.MigrateSQLite(ctx, db); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("migrate users: %w", err)
	}
	if err := entries.MigrateSQLite(ctx, db); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("migrate entries: %w", err)
	}

	return &SQLiteRepositoryManager{
		db:      db,
		sqlDB:   sqlDB,
		users:   users.NewSQLiteRepository(db),
		entries: entries.NewSQLiteRepository(db),
	}, nil
}

func (m *SQLiteRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *SQLiteRepositoryManager) Entries() entries.Repository {
	return m.entries
}

func (m *SQLiteRepositoryManager) Ping(ctx context.Context) error {
	return m.sqlDB.PingContext(ctx)
}

func (m *SQLiteRepositoryManager) Close() error {
	return m.sqlDB.Close()
}
