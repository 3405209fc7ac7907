package config

import (
	"os"
	"time"
)

// EnvAPIKey is consulted when api.api_key is empty.
const EnvAPIKey = "API_KEY"

// Default values for optional configuration fields.
const (
	DefaultBaseURL         = "https://api.hypixel.net/v2"
	DefaultAPITimeout      = 30 * time.Second
	DefaultRetryBackoff    = 1 * time.Second
	DefaultConcurrency     = 16
	DefaultPageTimeout     = 20 * time.Second
	DefaultRefreshInterval = 5 * time.Minute
	DefaultDegradedAfter   = 3
	DefaultServerPort      = 8000
	DefaultServerMode      = "release"
	DefaultShutdownTimeout = 10 * time.Second
	DefaultPingInterval    = 30 * time.Second
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
)

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	// API defaults
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.API.APIKey == "" {
		c.API.APIKey = os.Getenv(EnvAPIKey)
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultAPITimeout
	}
	if c.API.RetryBackoff == 0 {
		c.API.RetryBackoff = DefaultRetryBackoff
	}

	// Collector defaults
	if c.Collector.Concurrency == 0 {
		c.Collector.Concurrency = DefaultConcurrency
	}
	if c.Collector.PageTimeout == 0 {
		c.Collector.PageTimeout = DefaultPageTimeout
	}

	// Cache defaults
	if c.Cache.RefreshInterval == 0 {
		c.Cache.RefreshInterval = DefaultRefreshInterval
	}
	if c.Cache.DegradedAfter == 0 {
		c.Cache.DegradedAfter = DefaultDegradedAfter
	}

	// Server defaults
	if c.Server.Port == 0 {
		c.Server.Port = DefaultServerPort
	}
	if c.Server.Mode == "" {
		c.Server.Mode = DefaultServerMode
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if c.Server.PingInterval == 0 {
		c.Server.PingInterval = DefaultPingInterval
	}

	// Log defaults
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
}
