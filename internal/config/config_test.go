package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigContent = `
[development]
host = "localhost"
port = 8080
log_level = "trace"
log_to_stdout = true
postgres_db_name = "costaverde_db"
login_rate_limit_per_min = 15

[production]
host = ""
port = 9000
log_level = "debug"
sentry_enabled = true
postgres_db_name = "costaverde_db"
login_rate_limit_per_min = 10
`

func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(testConfigContent), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeTestConfig(t)

	devCfg, err := Load("development", path)
	require.NoError(t, err)
	require.NotNil(t, devCfg)
	assert.Equal(t, "development", devCfg.Environment)
	assert.True(t, devCfg.IsDevelopment())
	assert.Equal(t, 8080, devCfg.Port)
	assert.Equal(t, "trace", devCfg.LogLevel)
	assert.Equal(t, 15, devCfg.LoginRateLimitAllowedPerMin)

	// short env alias
	devCfg, err = Load("dev", path)
	require.NoError(t, err)
	assert.True(t, devCfg.IsDevelopment())

	prodCfg, err := Load("production", path)
	require.NoError(t, err)
	require.NotNil(t, prodCfg)
	assert.Equal(t, "production", prodCfg.Environment)
	assert.False(t, prodCfg.IsDevelopment())
	assert.Equal(t, 9000, prodCfg.Port)
	assert.True(t, prodCfg.SentryEnabled)
}

func TestLoad_UnknownEnv(t *testing.T) {
	path := writeTestConfig(t)
	cfg, err := Load("staging", path)
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load("development", "/nonexistent/config.toml")
	require.Error(t, err)
	assert.Nil(t, cfg)
}
