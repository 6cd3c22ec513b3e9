package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"ENVIRONMENT", "SERVER_PORT", "PUBLIC_HOST", "LOG_LEVEL", "SENTRY_DSN",
	"DNS_MODE", "DNS_DOH_ENDPOINT", "DNS_SERVER", "DNS_TIMEOUT",
	"ANDROID_PLAY_STORE_FALLBACK", "CORS_ALLOWED_ORIGINS",
	"RATE_LIMIT_MAX", "RATE_LIMIT_WINDOW",
	"REDIS_ENABLED", "REDIS_ADDRESS", "REDIS_PASSWORD", "REDIS_DB", "LOGO_DIR",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "5000", cfg.ServerPort)
	assert.Equal(t, "", cfg.PublicHost)
	assert.Equal(t, "doh", cfg.DNS.Mode)
	assert.Equal(t, "https://cloudflare-dns.com/dns-query", cfg.DNS.DoHEndpoint)
	assert.Equal(t, time.Duration(0), cfg.DNS.Timeout)
	assert.False(t, cfg.AndroidPlayStoreFallback)
	assert.Nil(t, cfg.AllowedOrigins)
	assert.Equal(t, 0, cfg.RateLimit.Max)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.False(t, cfg.Redis.Enabled)
	assert.False(t, cfg.IsProduction())
}

func TestLoadProductionHost(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "https://sniperl.ink", cfg.PublicHost)

	t.Setenv("PUBLIC_HOST", "https://links.example/")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "https://links.example", cfg.PublicHost)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DNS_MODE", "UDP")
	t.Setenv("DNS_SERVER", "9.9.9.9:53")
	t.Setenv("DNS_TIMEOUT", "3s")
	t.Setenv("ANDROID_PLAY_STORE_FALLBACK", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("RATE_LIMIT_MAX", "30")
	t.Setenv("RATE_LIMIT_WINDOW", "not-a-duration")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "udp", cfg.DNS.Mode)
	assert.Equal(t, "9.9.9.9:53", cfg.DNS.Server)
	assert.Equal(t, 3*time.Second, cfg.DNS.Timeout)
	assert.True(t, cfg.AndroidPlayStoreFallback)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, 30, cfg.RateLimit.Max)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("DNS_MODE", "carrier-pigeon")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mode must be one of: doh udp")
}
