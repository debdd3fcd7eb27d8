// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values. A local '.env' file is
loaded first when present so that development setups need no exported variables.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/netip"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// # Configuration Schema

// Config holds all runtime configuration for the Artistly API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// RedisURL enables the registry change feed when set. Optional.
	RedisURL string `env:"REDIS_URL"`

	// Cross-Origin Resource Sharing
	AllowedOriginSuffix string   `env:"ALLOWED_ORIGIN_SUFFIX" envDefault:"artistly.in"`
	ExtraOrigins        []string `env:"EXTRA_ORIGINS" envSeparator:","`

	// Directory behaviour
	SeedData        bool          `env:"SEED_DATA"        envDefault:"true"`
	OnboardingDelay time.Duration `env:"ONBOARDING_DELAY" envDefault:"1s"`
	SearchCacheTTL  time.Duration `env:"SEARCH_CACHE_TTL" envDefault:"5m"`
	FeaturedCount   int           `env:"FEATURED_COUNT"   envDefault:"4"`

	// Per-IP token bucket
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS"   envDefault:"100"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"150"`

	// TrustedProxies lists the CIDR prefixes (e.g. "10.0.0.0/8") whose
	// X-Real-IP and X-Forwarded-For headers are believed. Empty means none.
	TrustedProxies []netip.Prefix `env:"TRUSTED_PROXIES" envSeparator:","`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
//
// Variables already present in the process environment take precedence over
// values from '.env'.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to read .env file: %w", err)
	}

	cfg := &Config{}

	// This will fail if any field has a malformed value (e.g. a bad duration).
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if cfg.FeaturedCount < 0 {
		return nil, fmt.Errorf("config: FEATURED_COUNT must not be negative, got %d", cfg.FeaturedCount)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// OriginAllowed reports whether a browser origin may call the API outside
// development mode. The suffix matches the origin host itself or any of its
// subdomains, never a host that merely ends with the same letters.
func (c *Config) OriginAllowed(origin string) bool {
	for _, extra := range c.ExtraOrigins {
		if origin == extra {
			return true
		}
	}

	if c.AllowedOriginSuffix == "" {
		return false
	}

	parsed, err := url.Parse(origin)
	if err != nil || parsed.Host == "" {
		return false
	}

	host := strings.ToLower(parsed.Hostname())
	suffix := strings.ToLower(strings.TrimPrefix(c.AllowedOriginSuffix, "."))
	return host == suffix || strings.HasSuffix(host, "."+suffix)
}
