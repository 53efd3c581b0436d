package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables understood by parseEnv.
const (
	EnvFile           = "BREWKEEPER_ENV_FILE"
	EnvAPIURL         = "BREWKEEPER_API_URL"
	EnvRequestTimeout = "BREWKEEPER_REQUEST_TIMEOUT"
	EnvDatabase       = "BREWKEEPER_DB"
	EnvSessionBackend = "BREWKEEPER_SESSION_BACKEND"
	EnvRedisAddr      = "BREWKEEPER_REDIS_ADDR"
	EnvRedisPassword  = "BREWKEEPER_REDIS_PASSWORD"
	EnvRedisKey       = "BREWKEEPER_REDIS_KEY"
	EnvLogLevel       = "BREWKEEPER_LOG_LEVEL"
	EnvLogFormat      = "BREWKEEPER_LOG_FORMAT"
	EnvMetricsAddr    = "BREWKEEPER_METRICS_ADDR"
)

// parseEnv loads a dotenv file (".env" unless BREWKEEPER_ENV_FILE says
// otherwise) without overriding variables that are already set, then copies
// every non-empty BREWKEEPER_* variable into cfg.
//
// A missing dotenv file is not an error. An unparsable request timeout
// panics, like the other loaders in this package.
func parseEnv(cfg *Config) {
	envFile := os.Getenv(EnvFile)
	if envFile == "" {
		envFile = ".env"
	}
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			panic(err)
		}
	}

	setString(&cfg.APIBaseURL, EnvAPIURL)
	setString(&cfg.DatabasePath, EnvDatabase)
	setString(&cfg.SessionBackend, EnvSessionBackend)
	setString(&cfg.RedisAddr, EnvRedisAddr)
	setString(&cfg.RedisPassword, EnvRedisPassword)
	setString(&cfg.RedisKey, EnvRedisKey)
	setString(&cfg.LogLevel, EnvLogLevel)
	setString(&cfg.LogFormat, EnvLogFormat)
	setString(&cfg.MetricsAddr, EnvMetricsAddr)

	if v := os.Getenv(EnvRequestTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
