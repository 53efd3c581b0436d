// Package config loads runtime configuration for the brewkeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment: BREWKEEPER_* variables, optionally seeded from a .env file.
//  3. Optional JSON or YAML file selected with -c or -config.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   base URL of the recipe API
//	-t int      request timeout (seconds)
//	-i int      online status check interval (seconds)
//	-d string   session database path
//	-l string   log level
//	-m string   metrics listen address
//
// # File schema
//
// Durations are decoded with timex.Duration, so "3s" and integer nanoseconds
// are both accepted:
//
//	{
//	  "api_base_url": "http://127.0.0.1:8000",
//	  "request_timeout": "10s",
//	  "online_check_interval": "5s",
//	  "session_backend": "redis",
//	  "redis_addr": "127.0.0.1:6379"
//	}
package config
