package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvHTTPAddr      = "PASSKEEPER_HTTP_ADDR"
	EnvGRPCAddr      = "PASSKEEPER_GRPC_ADDR"
	EnvStorageDriver = "PASSKEEPER_STORAGE_DRIVER"
	EnvDatabaseDSN   = "PASSKEEPER_DATABASE_DSN"
	EnvSQLitePath    = "PASSKEEPER_SQLITE_PATH"
	EnvRedisAddr     = "PASSKEEPER_REDIS_ADDR"
	EnvRedisPassword = "PASSKEEPER_REDIS_PASSWORD"
	EnvRedisDB       = "PASSKEEPER_REDIS_DB"
	EnvBadgerDir     = "PASSKEEPER_BADGER_DIR"
	EnvSecretKey     = "PASSKEEPER_SECRET_KEY"
	EnvTokenTTL      = "PASSKEEPER_TOKEN_TTL"
	EnvBcryptCost    = "PASSKEEPER_BCRYPT_COST"
	EnvLogLevel      = "PASSKEEPER_LOG_LEVEL"
)

// loadDotEnv exports variables from a .env file into the process
// environment. Variables that are already set win. A missing file is fine.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// parseEnv overlays PASSKEEPER_* variables onto config.
// PASSKEEPER_TOKEN_TTL takes a Go duration string ("168h").
func parseEnv(config *Config, lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(name); ok && v != "" {
			*dst = v
		}
	}

	str(EnvHTTPAddr, &config.EndpointAddrHTTP)
	str(EnvGRPCAddr, &config.EndpointAddrGRPC)
	str(EnvStorageDriver, &config.StorageDriver)
	str(EnvDatabaseDSN, &config.DatabaseDSN)
	str(EnvSQLitePath, &config.SQLitePath)
	str(EnvRedisAddr, &config.RedisAddr)
	str(EnvRedisPassword, &config.RedisPassword)
	str(EnvBadgerDir, &config.BadgerDir)
	str(EnvSecretKey, &config.SecretKey)
	str(EnvLogLevel, &config.LogLevel)

	num := func(name string, dst *int) error {
		v, ok := lookup(name)
		if !ok || v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		*dst = n
		return nil
	}

	if err := num(EnvRedisDB, &config.RedisDB); err != nil {
		return err
	}
	if err := num(EnvBcryptCost, &config.BcryptCost); err != nil {
		return err
	}
	if v, ok := lookup(EnvTokenTTL); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTokenTTL, err)
		}
		config.TokenValidityDuration = d
	}
	return nil
}
