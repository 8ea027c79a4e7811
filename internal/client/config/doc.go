// Package config loads runtime configuration for the passkeeper CLI.
//
// Sources, in order of increasing precedence:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file passed with --config.
//  3. PASSKEEPER_SERVER, PASSKEEPER_TOKEN and PASSKEEPER_TIMEOUT.
//  4. Command-line flags, applied by the cli package.
//
// The JSON loader uses timex.Duration, so the timeout may be "5s" or an
// integer number of nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "request_timeout": "10s"
//	}
package config
