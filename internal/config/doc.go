// Package config loads the service configuration.
//
// Configuration is read from a YAML file. ${VAR} references are expanded
// from the environment, which may first be populated from .env files via
// LoadEnvFiles.
//
// Example:
//
//	api:
//	  base_url: https://api.hypixel.net/v2
//	  api_key: ${API_KEY}
//	  timeout: 30s
//	collector:
//	  concurrency: 16
//	  page_timeout: 20s
//	cache:
//	  refresh_interval: 5m
//	  degraded_after: 3
//	server:
//	  port: 8000
//	  static_dir: static
//	log:
//	  level: info
//	  format: text
package config
