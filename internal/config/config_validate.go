// Forestview - Decision Forest Training Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forestview

package config

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/tomtom215/forestview/internal/logging"
)

// Validate checks that the configuration is usable. Every problem found is
// reported, joined into one error, so a bad deployment can be fixed in a
// single pass.
func (c *Config) Validate() error {
	var problems []error
	report := func(format string, args ...any) {
		problems = append(problems, fmt.Errorf(format, args...))
	}

	c.validateServer(report)
	c.validateStore(report)
	c.validateBreaker(report)
	c.validateSecurity(report)
	c.validateLogging(report)

	return errors.Join(problems...)
}

type reporter func(format string, args ...any)

var validEnvironments = []string{"development", "staging", "production"}

func (c *Config) validateServer(report reporter) {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		report("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		report("HTTP_TIMEOUT must be positive, got %v", c.Server.Timeout)
	}
	if c.Server.Environment != "" && !slices.Contains(validEnvironments, c.Server.Environment) {
		report("ENVIRONMENT must be one of %v, got %q", validEnvironments, c.Server.Environment)
	}
}

// Seed size limits
const (
	maxSeedRows   = 10000
	maxSeedTrees  = 1000
	maxSeedHeight = 20
)

func (c *Config) validateStore(report reporter) {
	s := c.Store
	if !s.InMemory && s.Path == "" {
		report("STORE_PATH is required unless STORE_IN_MEMORY=true")
	}
	if s.GCInterval < 0 {
		report("STORE_GC_INTERVAL must not be negative, got %v", s.GCInterval)
	}
	if s.GCDiscardRatio <= 0 || s.GCDiscardRatio >= 1 {
		report("STORE_GC_DISCARD_RATIO must be strictly between 0 and 1, got %v", s.GCDiscardRatio)
	}
	if !s.SeedMockData {
		return
	}
	checkRange(report, "SEED_ROWS", s.SeedRows, 0, maxSeedRows)
	checkRange(report, "SEED_TREES", s.SeedTrees, 0, maxSeedTrees)
	checkRange(report, "SEED_HEIGHT", s.SeedHeight, 0, maxSeedHeight)
}

func checkRange(report reporter, name string, v, lo, hi int) {
	if v < lo || v > hi {
		report("%s must be between %d and %d, got %d", name, lo, hi, v)
	}
}

func (c *Config) validateBreaker(report reporter) {
	b := c.Breaker
	if !b.Enabled {
		return
	}
	if b.FailureThreshold < 1 {
		report("STORE_BREAKER_FAILURES must be at least 1")
	}
	if b.Timeout <= 0 {
		report("STORE_BREAKER_TIMEOUT must be positive, got %v", b.Timeout)
	}
	if b.MaxRequests < 1 {
		report("STORE_BREAKER_MAX_REQUESTS must be at least 1")
	}
}

// Rate limit bounds
const (
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

func (c *Config) validateSecurity(report reporter) {
	s := c.Security
	if len(s.CORSOrigins) == 0 {
		report("CORS_ORIGINS must list at least one origin")
	}
	if s.RateLimitDisabled {
		return
	}
	checkRange(report, "RATE_LIMIT_REQUESTS", s.RateLimitReqs, 1, maxRateLimitRequests)
	if s.RateLimitWindow < minRateLimitWindow || s.RateLimitWindow > maxRateLimitWindow {
		report("RATE_LIMIT_WINDOW must be between %v and %v, got %v", minRateLimitWindow, maxRateLimitWindow, s.RateLimitWindow)
	}
}

// HasWildcardCORS reports whether any origin is allowed.
func (c *Config) HasWildcardCORS() bool {
	return slices.Contains(c.Security.CORSOrigins, "*")
}

func (c *Config) validateLogging(report reporter) {
	if !logging.ValidLevel(c.Logging.Level) {
		report("LOG_LEVEL must be one of trace, debug, info, warn, error, got %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "", "json", "console":
	default:
		report("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
}
