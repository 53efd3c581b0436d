package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrijs2005/brewkeeper/internal/flagx"
	"github.com/dmitrijs2005/brewkeeper/internal/timex"
)

// FileConfig is a DTO used only for decoding the config file. Durations go
// through timex.Duration so either "3s" or integer nanoseconds work. Absent
// fields keep whatever value the earlier sources produced.
type FileConfig struct {
	APIBaseURL          *string         `json:"api_base_url" yaml:"api_base_url"`
	RequestTimeout      *timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval" yaml:"online_check_interval"`

	DatabasePath   *string `json:"database_path" yaml:"database_path"`
	SessionBackend *string `json:"session_backend" yaml:"session_backend"`
	RedisAddr      *string `json:"redis_addr" yaml:"redis_addr"`
	RedisPassword  *string `json:"redis_password" yaml:"redis_password"`
	RedisKey       *string `json:"redis_key" yaml:"redis_key"`

	RequestsPerSecond *float64 `json:"requests_per_second" yaml:"requests_per_second"`
	RequestBurst      *int     `json:"request_burst" yaml:"request_burst"`

	LogLevel    *string `json:"log_level" yaml:"log_level"`
	LogFormat   *string `json:"log_format" yaml:"log_format"`
	MetricsAddr *string `json:"metrics_addr" yaml:"metrics_addr"`
}

// parseFile overlays cfg with the file named by -c/-config. Files ending in
// .yaml or .yml are decoded as YAML, anything else as JSON. Read or decode
// errors panic.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	fc.apply(cfg)
}

func (fc *FileConfig) apply(cfg *Config) {
	overlay(&cfg.APIBaseURL, fc.APIBaseURL)
	overlay(&cfg.DatabasePath, fc.DatabasePath)
	overlay(&cfg.SessionBackend, fc.SessionBackend)
	overlay(&cfg.RedisAddr, fc.RedisAddr)
	overlay(&cfg.RedisPassword, fc.RedisPassword)
	overlay(&cfg.RedisKey, fc.RedisKey)
	overlay(&cfg.RequestsPerSecond, fc.RequestsPerSecond)
	overlay(&cfg.RequestBurst, fc.RequestBurst)
	overlay(&cfg.LogLevel, fc.LogLevel)
	overlay(&cfg.LogFormat, fc.LogFormat)
	overlay(&cfg.MetricsAddr, fc.MetricsAddr)

	if fc.RequestTimeout != nil {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = fc.OnlineCheckInterval.Duration
	}
}

func overlay[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
