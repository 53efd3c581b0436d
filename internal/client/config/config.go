package config

import "time"

// Session storage backends.
const (
	SessionBackendSQLite = "sqlite"
	SessionBackendRedis  = "redis"
)

// Config holds runtime settings for the brewkeeper CLI.
type Config struct {
	APIBaseURL          string
	RequestTimeout      time.Duration
	OnlineCheckInterval time.Duration

	DatabasePath   string
	SessionBackend string
	RedisAddr      string
	RedisPassword  string
	RedisKey       string

	RequestsPerSecond float64
	RequestBurst      int

	LogLevel    string
	LogFormat   string
	MetricsAddr string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8000"
	c.RequestTimeout = 10 * time.Second
	c.OnlineCheckInterval = 5 * time.Second

	c.DatabasePath = "brewkeeper.db"
	c.SessionBackend = SessionBackendSQLite
	c.RedisAddr = "127.0.0.1:6379"
	c.RedisPassword = ""
	c.RedisKey = "brewkeeper:session"

	c.RequestsPerSecond = 10
	c.RequestBurst = 5

	c.LogLevel = "info"
	c.LogFormat = "text"
	c.MetricsAddr = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays the
// environment, an optional config file and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}
