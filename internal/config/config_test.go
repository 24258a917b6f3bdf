package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/scene-backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
server:
  host: 127.0.0.1
  port: 9090
  mode: test
database:
  host: db.local
  port: 5432
  user: app
  password: pw
  dbname: scenes
  sslmode: disable
redis:
  host: ""
jwt:
  enabled: false
  secret: s3cret
  expire_hours: 12
log:
  dir: logs
`

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := config.Load(writeConfig(t))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "scenes", cfg.Database.DBName)
	assert.False(t, cfg.JWT.Enabled)
	assert.Equal(t, 12, cfg.JWT.ExpireHours)
	assert.Empty(t, cfg.Redis.Host)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "8088")
	t.Setenv("DB_HOST", "override.local")
	t.Setenv("JWT_ENABLED", "true")

	cfg, err := config.Load(writeConfig(t))
	require.NoError(t, err)

	assert.Equal(t, 8088, cfg.Server.Port)
	assert.Equal(t, "override.local", cfg.Database.Host)
	assert.True(t, cfg.JWT.Enabled)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	cfg, err := config.Load(writeConfig(t))
	require.NoError(t, err)

	assert.Equal(t,
		"host=db.local port=5432 user=app password=pw dbname=scenes sslmode=disable",
		cfg.Database.DSN())
}
