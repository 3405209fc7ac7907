package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	yaml := `
api:
  base_url: http://localhost:9000/v2
  api_key: test-key
  timeout: 5s
  max_retries: 2
collector:
  concurrency: 4
  page_timeout: 3s
cache:
  refresh_interval: 1m
server:
  port: 8080
  static_dir: ./public
`
	path := writeTempFile(t, "config.yaml", yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.API.BaseURL != "http://localhost:9000/v2" {
		t.Errorf("API.BaseURL = %q, want %q", cfg.API.BaseURL, "http://localhost:9000/v2")
	}
	if cfg.API.APIKey != "test-key" {
		t.Errorf("API.APIKey = %q, want %q", cfg.API.APIKey, "test-key")
	}
	if cfg.API.Timeout != 5*time.Second {
		t.Errorf("API.Timeout = %v, want 5s", cfg.API.Timeout)
	}
	if cfg.API.MaxRetries != 2 {
		t.Errorf("API.MaxRetries = %d, want 2", cfg.API.MaxRetries)
	}
	if cfg.Collector.Concurrency != 4 {
		t.Errorf("Collector.Concurrency = %d, want 4", cfg.Collector.Concurrency)
	}
	if cfg.Collector.PageTimeout != 3*time.Second {
		t.Errorf("Collector.PageTimeout = %v, want 3s", cfg.Collector.PageTimeout)
	}
	if cfg.Cache.RefreshInterval != time.Minute {
		t.Errorf("Cache.RefreshInterval = %v, want 1m", cfg.Cache.RefreshInterval)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.StaticDir != "./public" {
		t.Errorf("Server.StaticDir = %q, want %q", cfg.Server.StaticDir, "./public")
	}
}

func TestLoadWithEnvSubstitution(t *testing.T) {
	t.Setenv("TEST_AH_API_KEY", "secret123")

	yaml := `
api:
  api_key: ${TEST_AH_API_KEY}
`
	path := writeTempFile(t, "config.yaml", yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.API.APIKey != "secret123" {
		t.Errorf("API.APIKey = %q, want %q", cfg.API.APIKey, "secret123")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Load expected error for missing file, got nil")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeTempFile(t, "config.yaml", "api: [unterminated")

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load expected error for invalid yaml, got nil")
	}
}

func TestLoadWithDefaults(t *testing.T) {
	t.Setenv(EnvAPIKey, "")

	path := writeTempFile(t, "config.yaml", "server:\n  static_dir: static\n")

	cfg, err := LoadWithDefaults(path)
	if err != nil {
		t.Fatalf("LoadWithDefaults failed: %v", err)
	}

	// Check defaults were applied
	if cfg.API.BaseURL != DefaultBaseURL {
		t.Errorf("API.BaseURL = %q, want default %q", cfg.API.BaseURL, DefaultBaseURL)
	}
	if cfg.API.Timeout != DefaultAPITimeout {
		t.Errorf("API.Timeout = %v, want default %v", cfg.API.Timeout, DefaultAPITimeout)
	}
	if cfg.API.MaxRetries != 0 {
		t.Errorf("API.MaxRetries = %d, want 0", cfg.API.MaxRetries)
	}
	if cfg.Collector.Concurrency != DefaultConcurrency {
		t.Errorf("Collector.Concurrency = %d, want default %d", cfg.Collector.Concurrency, DefaultConcurrency)
	}
	if cfg.Cache.RefreshInterval != DefaultRefreshInterval {
		t.Errorf("Cache.RefreshInterval = %v, want default %v", cfg.Cache.RefreshInterval, DefaultRefreshInterval)
	}
	if cfg.Server.Port != DefaultServerPort {
		t.Errorf("Server.Port = %d, want default %d", cfg.Server.Port, DefaultServerPort)
	}
	if cfg.Log.Level != DefaultLogLevel {
		t.Errorf("Log.Level = %q, want default %q", cfg.Log.Level, DefaultLogLevel)
	}
	if cfg.Server.StaticDir != "static" {
		t.Errorf("Server.StaticDir = %q, want %q", cfg.Server.StaticDir, "static")
	}
}

func TestAPIKeyFromEnvironment(t *testing.T) {
	t.Setenv(EnvAPIKey, "env-key")

	t.Run("fallback", func(t *testing.T) {
		path := writeTempFile(t, "config.yaml", "log:\n  level: debug\n")
		cfg, err := LoadWithDefaults(path)
		if err != nil {
			t.Fatalf("LoadWithDefaults failed: %v", err)
		}
		if cfg.API.APIKey != "env-key" {
			t.Errorf("API.APIKey = %q, want %q", cfg.API.APIKey, "env-key")
		}
	})

	t.Run("file wins", func(t *testing.T) {
		path := writeTempFile(t, "config.yaml", "api:\n  api_key: file-key\n")
		cfg, err := LoadWithDefaults(path)
		if err != nil {
			t.Fatalf("LoadWithDefaults failed: %v", err)
		}
		if cfg.API.APIKey != "file-key" {
			t.Errorf("API.APIKey = %q, want %q", cfg.API.APIKey, "file-key")
		}
	})
}

func TestLoadEnvFiles(t *testing.T) {
	// Register cleanup for both keys, then make sure they start unset.
	t.Setenv("TEST_AH_DOTENV", "")
	t.Setenv("TEST_AH_PRESET", "from-process")
	os.Unsetenv("TEST_AH_DOTENV")

	envPath := writeTempFile(t, ".env", "TEST_AH_DOTENV=from-file\nTEST_AH_PRESET=from-file\n")
	missing := filepath.Join(t.TempDir(), ".env.local")

	if err := LoadEnvFiles(missing, envPath); err != nil {
		t.Fatalf("LoadEnvFiles failed: %v", err)
	}

	if got := os.Getenv("TEST_AH_DOTENV"); got != "from-file" {
		t.Errorf("TEST_AH_DOTENV = %q, want %q", got, "from-file")
	}
	if got := os.Getenv("TEST_AH_PRESET"); got != "from-process" {
		t.Errorf("TEST_AH_PRESET = %q, want existing value %q", got, "from-process")
	}

	// Values loaded from .env are visible to ${VAR} expansion.
	path := writeTempFile(t, "config.yaml", "api:\n  api_key: ${TEST_AH_DOTENV}\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.API.APIKey != "from-file" {
		t.Errorf("API.APIKey = %q, want %q", cfg.API.APIKey, "from-file")
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return *Default()
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: "",
		},
		{
			name:    "missing base url",
			mutate:  func(c *Config) { c.API.BaseURL = "" },
			wantErr: "api.base_url is required",
		},
		{
			name:    "relative base url",
			mutate:  func(c *Config) { c.API.BaseURL = "api.hypixel.net" },
			wantErr: `api.base_url must be an absolute URL, got "api.hypixel.net"`,
		},
		{
			name:    "negative retries",
			mutate:  func(c *Config) { c.API.MaxRetries = -1 },
			wantErr: "api.max_retries must be >= 0",
		},
		{
			name: "negative retry backoff",
			mutate: func(c *Config) {
				c.API.MaxRetries = 2
				c.API.RetryBackoff = -time.Second
			},
			wantErr: "api.retry_backoff must be > 0",
		},
		{
			name: "backoff unused without retries",
			mutate: func(c *Config) {
				c.API.MaxRetries = 0
				c.API.RetryBackoff = -time.Second
			},
			wantErr: "",
		},
		{
			name:    "zero concurrency",
			mutate:  func(c *Config) { c.Collector.Concurrency = 0 },
			wantErr: "collector.concurrency must be >= 1",
		},
		{
			name:    "negative page timeout",
			mutate:  func(c *Config) { c.Collector.PageTimeout = -time.Second },
			wantErr: "collector.page_timeout must be > 0",
		},
		{
			name:    "zero refresh interval",
			mutate:  func(c *Config) { c.Cache.RefreshInterval = 0 },
			wantErr: "cache.refresh_interval must be > 0",
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: "server.port must be between 1 and 65535, got 70000",
		},
		{
			name:    "unknown gin mode",
			mutate:  func(c *Config) { c.Server.Mode = "prod" },
			wantErr: `server.mode must be one of [debug release test], got "prod"`,
		},
		{
			name:    "unknown log format",
			mutate:  func(c *Config) { c.Log.Format = "xml" },
			wantErr: `log.format must be one of [text json], got "xml"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
			} else {
				if err == nil {
					t.Errorf("Validate() expected error containing %q, got nil", tt.wantErr)
				} else if err.Error() != tt.wantErr {
					t.Errorf("Validate() error = %q, want %q", err.Error(), tt.wantErr)
				}
			}
		})
	}
}

func TestLoadAndValidate(t *testing.T) {
	path := writeTempFile(t, "config.yaml", "collector:\n  concurrency: -2\n")

	if _, err := LoadAndValidate(path); err == nil {
		t.Fatal("LoadAndValidate expected error, got nil")
	}

	path = writeTempFile(t, "config.yaml", "server:\n  port: 9000\n")
	cfg, err := LoadAndValidate(path)
	if err != nil {
		t.Fatalf("LoadAndValidate failed: %v", err)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}
