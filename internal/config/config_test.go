package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("REDIS_DB", "")
	t.Setenv("REDIS_PASSWORD", "")
	t.Setenv("AVATAR_BASE_URL", "")
	t.Setenv("ADMIN_EMAIL", "")
	t.Setenv("ADMIN_PASSWORD", "")

	cfg := Load()
	require.Equal(t, "8080", cfg.ServerPort)
	require.Empty(t, cfg.DatabaseURL)
	require.Equal(t, "localhost:6379", cfg.RedisAddr)
	require.Equal(t, 0, cfg.RedisDB)
	require.Equal(t, "https://doodleipsum.com/300/avatar-2", cfg.AvatarBaseURL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://x")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("REDIS_PASSWORD", "pw")
	t.Setenv("ADMIN_EMAIL", "root@example.com")
	t.Setenv("ADMIN_PASSWORD", "supersecret")

	cfg := Load()
	require.Equal(t, "9000", cfg.ServerPort)
	require.Equal(t, "postgres://x", cfg.DatabaseURL)
	require.Equal(t, "redis:6379", cfg.RedisAddr)
	require.Equal(t, 3, cfg.RedisDB)
	require.Equal(t, "pw", cfg.RedisPassword)
	require.Equal(t, "root@example.com", cfg.AdminEmail)
	require.Equal(t, "supersecret", cfg.AdminPassword)
}

func TestGetEnvIntBadValue(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")
	cfg := Load()
	require.Equal(t, 0, cfg.RedisDB)
}
