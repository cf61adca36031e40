package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Contains(t, cfg.Database.URL, "postgres://")
	assert.False(t, cfg.Logging.Errors)
	assert.EqualValues(t, 64*1024, cfg.Argon2.Memory)
	assert.EqualValues(t, 3, cfg.Argon2.Iterations)
	assert.EqualValues(t, 2, cfg.Argon2.Parallelism)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "8088")
	t.Setenv("ENABLE_GLOBAL_ERROR_LOGGING", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.example, http://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8088", cfg.Server.Port)
	assert.True(t, cfg.Logging.Errors)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestLoadFromConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: \"9090\"\ndatabase_url: postgres://cfg@db/courseapi\n"), 0o600))
	t.Setenv("CONFIG_FILE", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "postgres://cfg@db/courseapi", cfg.Database.URL)
}
