package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("requires DATABASE_URL", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "")
		t.Setenv("JWT_SECRET", "s3cret")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("requires JWT_SECRET", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost/clarity")
		t.Setenv("JWT_SECRET", "")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost/clarity")
		t.Setenv("JWT_SECRET", "s3cret")
		t.Setenv("PORT", "")
		t.Setenv("ENV", "")
		t.Setenv("RATE_LIMIT_TX_MAX", "")
		t.Setenv("RATE_LIMIT_TX_WINDOW_SECONDS", "")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, "8080", cfg.Port)
		require.Equal(t, 60, cfg.RateLimitMax)
		require.Equal(t, time.Minute, cfg.RateLimitWindow)
		require.False(t, cfg.IsProduction())
	})

	t.Run("rate limit overrides", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost/clarity")
		t.Setenv("JWT_SECRET", "s3cret")
		t.Setenv("RATE_LIMIT_TX_MAX", "120")
		t.Setenv("RATE_LIMIT_TX_WINDOW_SECONDS", "30")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, 120, cfg.RateLimitMax)
		require.Equal(t, 30*time.Second, cfg.RateLimitWindow)
	})

	t.Run("invalid rate limit values keep defaults", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost/clarity")
		t.Setenv("JWT_SECRET", "s3cret")
		t.Setenv("RATE_LIMIT_TX_MAX", "-5")
		t.Setenv("RATE_LIMIT_TX_WINDOW_SECONDS", "abc")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, 60, cfg.RateLimitMax)
		require.Equal(t, time.Minute, cfg.RateLimitWindow)
	})

	t.Run("production env", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost/clarity")
		t.Setenv("JWT_SECRET", "s3cret")
		t.Setenv("ENV", "Production")

		cfg, err := Load()
		require.NoError(t, err)
		require.True(t, cfg.IsProduction())
	})
}
