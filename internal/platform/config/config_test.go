// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"net/netip"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/artistly/internal/platform/config"
)

/*
TestLoad_Defaults verifies the defaults applied when nothing is configured.
*/
func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.True(t, cfg.IsDevelopment())
	assert.True(t, cfg.SeedData)
	assert.Equal(t, time.Second, cfg.OnboardingDelay)
	assert.Equal(t, 4, cfg.FeaturedCount)
	assert.Empty(t, cfg.RedisURL)
}

/*
TestLoad_Overrides verifies that environment variables override defaults.
*/
func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("ONBOARDING_DELAY", "250ms")
	t.Setenv("EXTRA_ORIGINS", "https://preview.example.com,https://staging.example.com")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8,fd00::/8")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, 250*time.Millisecond, cfg.OnboardingDelay)
	assert.Len(t, cfg.ExtraOrigins, 2)
	assert.Equal(t, []netip.Prefix{netip.MustParsePrefix("10.0.0.0/8"), netip.MustParsePrefix("fd00::/8")}, cfg.TrustedProxies)
}

/*
TestLoad_InvalidValues verifies that malformed values are rejected at startup.
*/
func TestLoad_InvalidValues(t *testing.T) {
	t.Run("bad_duration", func(t *testing.T) {
		t.Setenv("ONBOARDING_DELAY", "soon")
		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("bad_proxy_prefix", func(t *testing.T) {
		t.Setenv("TRUSTED_PROXIES", "not-a-cidr")
		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("negative_featured_count", func(t *testing.T) {
		t.Setenv("FEATURED_COUNT", "-1")
		_, err := config.Load()
		assert.Error(t, err)
	})
}

/*
TestConfig_OriginAllowed checks the production CORS allow-list.
*/
func TestConfig_OriginAllowed(t *testing.T) {
	cfg := &config.Config{
		AllowedOriginSuffix: "artistly.in",
		ExtraOrigins:        []string{"https://preview.example.com"},
	}

	assert.True(t, cfg.OriginAllowed("https://www.artistly.in"))
	assert.True(t, cfg.OriginAllowed("https://artistly.in"))
	assert.True(t, cfg.OriginAllowed("http://localhost.artistly.in:3000"))
	assert.True(t, cfg.OriginAllowed("https://preview.example.com"))
	assert.False(t, cfg.OriginAllowed("https://evil.example.com"))
	assert.False(t, cfg.OriginAllowed("https://evilartistly.in"))
	assert.False(t, cfg.OriginAllowed("https://artistly.in.evil.com"))
	assert.False(t, cfg.OriginAllowed("null"))
}
