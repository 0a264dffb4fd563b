// Forestview - Decision Forest Training Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forestview

/*
Package config provides layered configuration for Forestview.

Configuration is loaded with koanf in three layers, each overriding the last:

 1. Built-in defaults (defaultConfig)
 2. A YAML file: CONFIG_PATH, or the first of config.yaml, config.yml,
    /etc/forestview/config.yaml, /etc/forestview/config.yml that exists
 3. Environment variables

# Environment Variables

Server (ServerConfig):
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8080)
  - HTTP_TIMEOUT: Read/write timeout and shutdown grace (default: 30s)
  - ENVIRONMENT: development, staging or production (default: development)

Store (StoreConfig):
  - STORE_PATH: badger data directory (default: /data/forestview)
  - STORE_IN_MEMORY: Keep the collection in memory (default: false)
  - STORE_SYNC_WRITES: fsync every write (default: false)
  - STORE_GC_INTERVAL: Value log GC interval, 0 disables (default: 10m)
  - STORE_GC_DISCARD_RATIO: Value log GC discard ratio (default: 0.5)
  - SEED_MOCK_DATA: Seed random forests into an empty store (default: false)
  - SEED_ROWS, SEED_TREES, SEED_HEIGHT: Seed sizes (default: 50, 5, 5)

Circuit breaker (BreakerConfig):
  - STORE_BREAKER_ENABLED: Guard store reads (default: true)
  - STORE_BREAKER_FAILURES: Consecutive failures before opening (default: 5)
  - STORE_BREAKER_TIMEOUT: Time spent open before probing (default: 30s)
  - STORE_BREAKER_MAX_REQUESTS: Probes allowed while half-open (default: 1)

Security (SecurityConfig):
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)
  - RATE_LIMIT_REQUESTS: Requests per window per IP (default: 100)
  - RATE_LIMIT_WINDOW: Rate limit window (default: 1m)
  - DISABLE_RATE_LIMIT: Turn rate limiting off (default: false)

Logging (LoggingConfig):
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: Include caller file:line (default: false)

# Example YAML

	server:
	  port: 8080
	store:
	  path: /var/lib/forestview
	  gc_interval: 5m
	security:
	  cors_origins:
	    - https://forests.example.com

# Usage

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}
	addr := cfg.Server.Addr()
*/
package config
