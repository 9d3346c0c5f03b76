package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8081", cfg.ListenAddr)
	assert.Equal(t, "sqlite", cfg.Backend)
	assert.Equal(t, "portfolio.db", cfg.SQLitePath)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Equal(t, "web/admin", cfg.AdminDir)
	assert.Empty(t, cfg.AdminPassword)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":9000")
	t.Setenv("BACKEND", "mongo")
	t.Setenv("MONGODB_URI", "mongodb://db:27017")
	t.Setenv("MONGODB_DATABASE", "site")
	t.Setenv("ADMIN_USERNAME", "root")
	t.Setenv("ADMIN_PASSWORD", "hunter2")
	t.Setenv("SMTP_USER", "mail@example.com")
	t.Setenv("TO_EMAIL", "inbox@example.com")
	t.Setenv("TELEGRAM_CHAT_ID", "42")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.ListenAddr)
	assert.Equal(t, "mongo", cfg.Backend)
	assert.Equal(t, "mongodb://db:27017", cfg.MongoURI)
	assert.Equal(t, "site", cfg.MongoDatabase)
	assert.Equal(t, "root", cfg.AdminUsername)
	assert.Equal(t, "hunter2", cfg.AdminPassword)
	assert.Equal(t, "mail@example.com", cfg.SMTP.User)
	assert.Equal(t, "inbox@example.com", cfg.SMTP.To)
	assert.Equal(t, int64(42), cfg.Telegram.ChatID)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"listen_addr: \":7000\"\nbackend: file\ndata_dir: /var/lib/portfolio\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.ListenAddr)
	assert.Equal(t, "file", cfg.Backend)
	assert.Equal(t, "/var/lib/portfolio", cfg.DataDir)

	// Environment wins over the file.
	t.Setenv("BACKEND", "sqlite")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Backend)
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("BACKEND", "postgres")
	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres")
}

func TestFrontendURLJoinsOrigins(t *testing.T) {
	t.Setenv("FRONTEND_URL", "https://example.com/")
	t.Setenv("FRONTEND_URL2", "https://www.example.com")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.com", "https://www.example.com"}, cfg.Origins())
}

func TestOriginsDefault(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Origins())
}
