package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyoaru/ghost-as-a-service/internal/excuse"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"GEMINI_API_KEY", "ANTHROPIC_API_KEY", "GHOST_PROVIDER", "GHOST_MODEL", "GHOST_ADDR"} {
		t.Setenv(key, "")
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, "gemini-1.5-flash", cfg.Model)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 60*time.Second, cfg.GetTimeout())
}

func TestLoad_YAMLFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "ghost.yaml")
	data := []byte(`
provider: static
excuses:
  - "Swamped with a migration."
server:
  addr: ":9090"
  request_timeout: 5s
logging:
  level: debug
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ProviderStatic, cfg.Provider)
	assert.Equal(t, []string{"Swamped with a migration."}, cfg.Excuses)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 5*time.Second, cfg.GetRequestTimeout())
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("GHOST_MODEL", "gemini-1.5-pro")
	t.Setenv("GHOST_ADDR", ":7070")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, "gemini-1.5-pro", cfg.Model)
	assert.Equal(t, ":7070", cfg.Server.Addr)
}

func TestLoad_ProviderEnvWinsOverKeyDetection(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("GHOST_PROVIDER", "static")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ProviderStatic, cfg.Provider)
}

func TestValidate(t *testing.T) {
	clearEnv(t)

	// AI provider without a key
	cfg := DefaultConfig()
	cfg.APIKey = ""
	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, excuse.ErrConfiguration))

	// AI provider with a key
	cfg.APIKey = "some-key"
	assert.NoError(t, cfg.Validate())

	// Static provider needs no key
	cfg = DefaultConfig()
	cfg.Provider = ProviderStatic
	assert.NoError(t, cfg.Validate())

	// Unknown provider
	cfg.Provider = "mystery"
	err = cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, excuse.ErrConfiguration))
}

func TestGetTimeout_InvalidFallsBack(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Timeout = "not-a-duration"
	assert.Equal(t, 60*time.Second, cfg.GetTimeout())

	cfg.Server.RequestTimeout = "also-bad"
	assert.Equal(t, 30*time.Second, cfg.GetRequestTimeout())
}
