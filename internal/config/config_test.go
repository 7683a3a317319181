package config

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "NODE_ENV", "PORT", "CORS_ORIGIN", "LOG_LEVEL", "RATE_LIMIT_MAX", "RATE_LIMIT_WINDOW_SEC", "BODY_LIMIT_BYTES", "TRUST_PROXY_HOPS"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, EnvDevelopment, cfg.Env)
	require.Equal(t, "3001", cfg.Port)
	require.Equal(t, ":3001", cfg.ServerAddr())
	require.Equal(t, []string{"*"}, cfg.CORSOrigins)
	require.Equal(t, slog.LevelInfo, cfg.LogLevel)
	require.Equal(t, 100, cfg.RateLimitMax)
	require.Equal(t, 15*time.Minute, cfg.RateLimitWindow)
	require.Equal(t, int64(102400), cfg.BodyLimitBytes)
	require.Equal(t, 0, cfg.TrustProxyHops)
	require.False(t, cfg.IsProduction())
}

func TestLoadNodeEnvFallback(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("NODE_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)
	require.True(t, cfg.IsProduction())
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("PORT", "http")

	_, err := Load()
	var invalid *InvalidValueError
	require.True(t, errors.As(err, &invalid))
	require.Equal(t, "PORT", invalid.Key)
}

func TestLoadTrustProxyHops(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("TRUST_PROXY_HOPS", "1")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 1, cfg.TrustProxyHops)

	t.Setenv("TRUST_PROXY_HOPS", "-2")
	_, err = Load()
	var invalid *InvalidValueError
	require.True(t, errors.As(err, &invalid))
	require.Equal(t, "TRUST_PROXY_HOPS", invalid.Key)
}

func TestLoadRejectsBadLogLevel(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "loud")

	_, err := Load()
	require.Error(t, err)
}

func TestParseOrigins(t *testing.T) {
	cases := []struct {
		raw  string
		want []string
	}{
		{"*", []string{"*"}},
		{"", []string{"*"}},
		{"https://a.com, https://b.com", []string{"https://a.com", "https://b.com"}},
		{"https://a.com,*", []string{"*"}},
		{" , https://a.com ,", []string{"https://a.com"}},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, parseOrigins(tc.raw), tc.raw)
	}
}
