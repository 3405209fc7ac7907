package config

import "time"

// Config is the root configuration for the auction cache service.
type Config struct {
	API       APIConfig       `yaml:"api"`
	Collector CollectorConfig `yaml:"collector"`
	Cache     CacheConfig     `yaml:"cache"`
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
}

// APIConfig holds upstream auction API settings.
type APIConfig struct {
	BaseURL      string        `yaml:"base_url"`
	APIKey       string        `yaml:"api_key"` // Sent as the API-Key header
	Timeout      time.Duration `yaml:"timeout"`
	MaxRetries   int           `yaml:"max_retries"` // 0 disables retries
	RetryBackoff time.Duration `yaml:"retry_backoff"`
}

// CollectorConfig holds page fan-out settings.
type CollectorConfig struct {
	Concurrency int           `yaml:"concurrency"`
	PageTimeout time.Duration `yaml:"page_timeout"`
}

// CacheConfig holds refresh settings.
type CacheConfig struct {
	RefreshInterval time.Duration `yaml:"refresh_interval"`
	DegradedAfter   int           `yaml:"degraded_after"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `yaml:"port"`
	StaticDir       string        `yaml:"static_dir"`
	Mode            string        `yaml:"mode"` // gin mode: debug, release, test
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	PingInterval    time.Duration `yaml:"ping_interval"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}
