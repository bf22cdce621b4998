package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasiliy-maslov/contact-service/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_PORT", "DATABASE_URL", "LOG_LEVEL", "LOG_PRETTY",
		"DB_AUTO_MIGRATE", "DB_MAX_CONNS", "DB_MIN_CONNS", "DB_MAX_CONN_LIFETIME",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_EnvOnly(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/contacts?sslmode=disable")
	t.Setenv("DB_MAX_CONNS", "20")
	t.Setenv("DB_AUTO_MIGRATE", "true")

	cfg, err := config.Load("", "")
	require.NoError(t, err)

	assert.Equal(t, "postgres://u:p@localhost:5432/contacts?sslmode=disable", cfg.Postgres.URL)
	assert.Equal(t, int32(20), cfg.Postgres.MaxConns)
	assert.Equal(t, int32(2), cfg.Postgres.MinConns)
	assert.True(t, cfg.Postgres.AutoMigrate)
	assert.Equal(t, "8002", cfg.App.Port)
	assert.Equal(t, 10*time.Second, cfg.App.ReadTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	clearEnv(t)

	_, err := config.Load("", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoad_YAMLThenEnvOverride(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
app:
  port: "9000"
  read_timeout: 5s
postgres:
  url: postgres://yaml@localhost/contacts
  max_conn_lifetime: 1h
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("APP_PORT", "9100")

	cfg, err := config.Load(path, "")
	require.NoError(t, err)

	assert.Equal(t, "9100", cfg.App.Port)
	assert.Equal(t, 5*time.Second, cfg.App.ReadTimeout)
	assert.Equal(t, "postgres://yaml@localhost/contacts", cfg.Postgres.URL)
	assert.Equal(t, time.Hour, cfg.Postgres.MaxConnLifetime)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_MissingDotEnvIsIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/contacts")

	_, err := config.Load("", filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)
}

func TestLoad_InvalidNumber(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/contacts")
	t.Setenv("DB_MIN_CONNS", "many")

	_, err := config.Load("", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_MIN_CONNS")
}

func TestLoad_MissingYAMLFile(t *testing.T) {
	clearEnv(t)

	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"), "")
	require.Error(t, err)
}
