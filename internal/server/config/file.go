package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/passkeeper/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape of the configuration. It is only a
// decoding target; non-zero values are copied onto the runtime Config.
// Durations accept strings such as "168h" or integer nanoseconds.
type FileConfig struct {
	EndpointAddrHTTP      string         `json:"endpoint_addr_http" yaml:"endpoint_addr_http"`
	EndpointAddrGRPC      string         `json:"endpoint_addr_grpc" yaml:"endpoint_addr_grpc"`
	StorageDriver         string         `json:"storage_driver" yaml:"storage_driver"`
	DatabaseDSN           string         `json:"database_dsn" yaml:"database_dsn"`
	SQLitePath            string         `json:"sqlite_path" yaml:"sqlite_path"`
	RedisAddr             string         `json:"redis_addr" yaml:"redis_addr"`
	RedisPassword         string         `json:"redis_password" yaml:"redis_password"`
	RedisDB               *int           `json:"redis_db" yaml:"redis_db"`
	BadgerDir             string         `json:"badger_dir" yaml:"badger_dir"`
	SecretKey             string         `json:"secret_key" yaml:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration" yaml:"token_validity_duration"`
	BcryptCost            int            `json:"bcrypt_cost" yaml:"bcrypt_cost"`
	LogLevel              string         `json:"log_level" yaml:"log_level"`
}

// parseFile overlays values from a JSON or YAML file onto config. The format
// is chosen by extension: .yaml/.yml is YAML, anything else is JSON.
// An empty path is a no-op.
func parseFile(config *Config, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	c := &FileConfig{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, c)
	default:
		err = json.Unmarshal(data, c)
	}
	if err != nil {
		return err
	}

	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.StorageDriver, c.StorageDriver)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SQLitePath, c.SQLitePath)
	setString(&config.RedisAddr, c.RedisAddr)
	setString(&config.RedisPassword, c.RedisPassword)
	setString(&config.BadgerDir, c.BadgerDir)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.LogLevel, c.LogLevel)

	if c.RedisDB != nil {
		config.RedisDB = *c.RedisDB
	}
	if c.TokenValidityDuration.Duration != 0 {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
	if c.BcryptCost != 0 {
		config.BcryptCost = c.BcryptCost
	}

	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
