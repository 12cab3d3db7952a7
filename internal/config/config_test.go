package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"POSTGRES_DSN", "REDIS_ADDR", "APP_PORT", "ESCALATION_AGE_MINUTES", "DIRECTORY_SEED_USERS", "TELEGRAM_ADMIN_CHAT_ID"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, 30*time.Second, cfg.App.RequestTimeout())
	assert.Empty(t, cfg.Postgres.DSN)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, time.Hour, cfg.Escalation.Age())
	assert.Equal(t, "account-manager", cfg.Directory.AccountManager)
	assert.Empty(t, cfg.Directory.SeedUsers)
	assert.Equal(t, 5*time.Second, cfg.Notification.WebhookTimeout())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("ESCALATION_AGE_MINUTES", "15")
	t.Setenv("DIRECTORY_SEED_USERS", "alice, bob ,,carol")
	t.Setenv("TELEGRAM_ADMIN_CHAT_ID", "-100123")
	t.Setenv("REDIS_USER_CACHE_TTL_SECONDS", "60")
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Zero(t, cfg.App.RequestTimeout())
	assert.Equal(t, 15*time.Minute, cfg.Escalation.Age())
	assert.Equal(t, []string{"alice", "bob", "carol"}, cfg.Directory.SeedUsers)
	assert.Equal(t, int64(-100123), cfg.Notification.TelegramAdminChatID)
	assert.Equal(t, time.Minute, cfg.Redis.UserCacheTTL())
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("REDIS_DB", "zero")
	_, err := Load()
	assert.ErrorContains(t, err, "REDIS_DB")

	t.Setenv("REDIS_DB", "0")
	t.Setenv("TELEGRAM_ADMIN_CHAT_ID", "admins")
	_, err = Load()
	assert.ErrorContains(t, err, "TELEGRAM_ADMIN_CHAT_ID")
}
