package config

import (
	"fmt"
	"time"
)

const (
	EnvServer  = "PASSKEEPER_SERVER"
	EnvToken   = "PASSKEEPER_TOKEN"
	EnvTimeout = "PASSKEEPER_TIMEOUT"
)

// Config holds runtime settings for the passkeeper CLI.
//
// Token is the session token used by verify, list and add; it is never
// written to the config file.
type Config struct {
	ServerEndpointAddr string
	RequestTimeout     time.Duration
	Token              string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig applies defaults, then the JSON file at path (skipped when
// empty), then the environment.
func LoadConfig(path string, lookupEnv func(string) (string, bool)) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, path); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, lookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvServer); ok && v != "" {
		cfg.ServerEndpointAddr = v
	}
	if v, ok := lookup(EnvToken); ok && v != "" {
		cfg.Token = v
	}
	if v, ok := lookup(EnvTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTimeout, err)
		}
		cfg.RequestTimeout = d
	}
	return nil
}
