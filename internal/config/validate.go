package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
)

var (
	validModes      = []string{"debug", "release", "test"}
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"text", "json"}
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("api.base_url is required")
	}
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api.base_url must be an absolute URL, got %q", c.API.BaseURL)
	}
	if c.API.Timeout <= 0 {
		return errors.New("api.timeout must be > 0")
	}
	if c.API.MaxRetries < 0 {
		return errors.New("api.max_retries must be >= 0")
	}
	if c.API.MaxRetries > 0 && c.API.RetryBackoff <= 0 {
		return errors.New("api.retry_backoff must be > 0")
	}

	if c.Collector.Concurrency < 1 {
		return errors.New("collector.concurrency must be >= 1")
	}
	if c.Collector.PageTimeout <= 0 {
		return errors.New("collector.page_timeout must be > 0")
	}

	if c.Cache.RefreshInterval <= 0 {
		return errors.New("cache.refresh_interval must be > 0")
	}
	if c.Cache.DegradedAfter < 1 {
		return errors.New("cache.degraded_after must be >= 1")
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if !slices.Contains(validModes, c.Server.Mode) {
		return fmt.Errorf("server.mode must be one of %v, got %q", validModes, c.Server.Mode)
	}

	if !slices.Contains(validLogLevels, c.Log.Level) {
		return fmt.Errorf("log.level must be one of %v, got %q", validLogLevels, c.Log.Level)
	}
	if !slices.Contains(validLogFormats, c.Log.Format) {
		return fmt.Errorf("log.format must be one of %v, got %q", validLogFormats, c.Log.Format)
	}

	return nil
}
