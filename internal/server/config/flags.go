package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/passkeeper/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g. ":8080")
//	-g string   gRPC bind address (e.g. ":50051")
//	-s string   storage driver: postgres, sqlite, redis, badger, memory
//	-d string   PostgreSQL DSN
//	-l string   SQLite database path
//	-r string   Redis address
//	-p string   Badger data directory
//	-k string   token signing secret
//	-t int      token validity, minutes
//	-b int      bcrypt cost
//	-v string   log level
//
// Unknown flags (such as -c) are filtered out first with flagx.FilterArgs.
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-g", "-s", "-d", "-l", "-r", "-p", "-k", "-t", "-b", "-v"})

	fs := flag.NewFlagSet("passkeeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "HTTP address and port")
	fs.StringVar(&config.EndpointAddrGRPC, "g", config.EndpointAddrGRPC, "gRPC address and port")
	fs.StringVar(&config.StorageDriver, "s", config.StorageDriver, "storage driver")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SQLitePath, "l", config.SQLitePath, "sqlite database path")
	fs.StringVar(&config.RedisAddr, "r", config.RedisAddr, "redis address")
	fs.StringVar(&config.BadgerDir, "p", config.BadgerDir, "badger data directory")
	fs.StringVar(&config.SecretKey, "k", config.SecretKey, "token signing secret")
	tokenValidity := fs.Int("t", int(config.TokenValidityDuration.Minutes()), "token validity (in minutes)")
	fs.IntVar(&config.BcryptCost, "b", config.BcryptCost, "bcrypt cost")
	fs.StringVar(&config.LogLevel, "v", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return err
	}

	// Only an explicit -t overrides; the default would truncate sub-minute values.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.TokenValidityDuration = time.Duration(*tokenValidity) * time.Minute
		}
	})
	return nil
}
