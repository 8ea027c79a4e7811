// Package repomanager opens the configured storage backend and vends the
// identity and vault repositories bound to it.
package repomanager

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/passkeeper/internal/logging"
	"github.com/dmitrijs2005/passkeeper/internal/server/config"
	"github.com/dmitrijs2005/passkeeper/internal/server/repositories/entries"
	"github.com/dmitrijs2005/passkeeper/internal/server/repositories/users"
)

// RepositoryManager owns a storage connection. Users and Entries share it.
type RepositoryManager interface {
	Users() users.Repository
	Entries() entries.Repository
	// Ping reports whether the backend is reachable; used by readiness probes.
	Ping(ctx context.Context) error
	Close() error
}

// New opens the backend selected by cfg.StorageDriver, applying schema
// migrations where the backend has a schema. log receives backend
// diagnostics where the driver produces any.
func New(ctx context.Context, cfg *config.Config, log logging.Logger) (RepositoryManager, error) {
	var (
		m   RepositoryManager
		err error
	)

	switch cfg.StorageDriver {
	case config.DriverPostgres:
		m, err = asManager(OpenPostgres(ctx, cfg.DatabaseDSN))
	case config.DriverSQLite:
		m, err = asManager(OpenSQLite(ctx, cfg.SQLitePath))
	case config.DriverRedis:
		m, err = asManager(OpenRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB))
	case config.DriverBadger:
		m, err = asManager(OpenBadger(cfg.BadgerDir, log))
	case config.DriverMemory:
		m = NewMemoryRepositoryManager()
	default:
		err = fmt.Errorf("unsupported storage driver: %s", cfg.StorageDriver)
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

// asManager keeps a typed nil from leaking out as a non-nil interface.
func asManager[M RepositoryManager](m M, err error) (RepositoryManager, error) {
	if err != nil {
		return nil, err
	}
	return m, nil
}
