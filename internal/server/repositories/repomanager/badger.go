package repomanager

import (
	"context"
	"fmt"

	"github.com/dgraph-io/badger/v3"
	"github.com/dmitrijs2005/passkeeper/internal/logging"
	"github.com/dmitrijs2005/passkeeper/internal/server/repositories/entries"
	"github.com/dmitrijs2005/passkeeper/internal/server/repositories/users"
)

// BadgerRepositoryManager vends repositories over an embedded Badger
// database.
type BadgerRepositoryManager struct {
	db      *badger.DB
	users   *users.BadgerRepository
	entries *entries.BadgerRepository
}

// OpenBadger opens (or creates) the database in dir. An empty dir opens an
// in-memory database.
func OpenBadger(dir string, log logging.Logger) (*BadgerRepositoryManager, error) {
	opts := badger.DefaultOptions(dir).WithLogger(&badgerLogger{log: log})
	if dir == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("badger: open db: %w", err)
	}

	return &BadgerRepositoryManager{
		db:      db,
		users:   users.NewBadgerRepository(db),
		entries: entries.NewBadgerRepository(db),
	}, nil
}

func (m *BadgerRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *BadgerRepositoryManager) Entries() entries.Repository {
	return m.entries
}

func (m *BadgerRepositoryManager) Ping(context.Context) error {
	if m.db.IsClosed() {
		return badger.ErrDBClosed
	}
	return nil
}

func (m *BadgerRepositoryManager) Close() error {
	return m.db.Close()
}

// badgerLogger adapts logging.Logger to Badger's printf-style Logger.
type badgerLogger struct {
	log logging.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.log.Error(context.Background(), fmt.Sprintf(format, args...), "component", "badger")
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.log.Warn(context.Background(), fmt.Sprintf(format, args...), "component", "badger")
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.log.Debug(context.Background(), fmt.Sprintf(format, args...), "component", "badger")
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.log.Debug(context.Background(), fmt.Sprintf(format, args...), "component", "badger")
}
