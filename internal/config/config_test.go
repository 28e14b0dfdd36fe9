package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"MUX_TOKEN_ID", "MUX_TOKEN_SECRET", "MUX_BASE_URL", "EPISODES_RELAY_URL", "PORT"} {
		t.Setenv(k, "")
	}
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.App.Port)
	assert.True(t, cfg.App.UIEnabled)
	assert.Equal(t, "https://api.mux.com", cfg.Mux.BaseURL)
	assert.Equal(t, "*", cfg.Relay.AllowedOrigin)
	assert.Equal(t, MergePositional, cfg.UI.Merge)
	assert.False(t, cfg.HasMuxCredentials())
	assert.Equal(t, "http://localhost:8081/api/episodes", cfg.RelayEndpoint())

	timeout, err := cfg.MuxTimeout()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, timeout)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yml")
	body := `
app:
  port: 9000
  debug: true
mux:
  token_id: file-id
  token_secret: file-secret
  timeout: 5s
ui:
  merge: strict
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	t.Setenv("MUX_TOKEN_SECRET", "env-secret")
	t.Setenv("PORT", "9100")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.App.Port)
	assert.True(t, cfg.App.Debug)
	assert.Equal(t, "file-id", cfg.Mux.TokenID)
	assert.Equal(t, "env-secret", cfg.Mux.TokenSecret)
	assert.Equal(t, MergeStrict, cfg.UI.Merge)
	assert.True(t, cfg.HasMuxCredentials())
}

func TestLoad_Rejects(t *testing.T) {
	cases := map[string]string{
		"bad timeout": "mux:\n  timeout: soon\n",
		"bad merge":   "ui:\n  merge: byname\n",
		"bad yaml":    "app: [",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			path := filepath.Join(t.TempDir(), "config.yml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoad_InvalidPortEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "eighty")

	_, err := Load(filepath.Join(t.TempDir(), "none.yml"))
	assert.Error(t, err)
}

func TestHasMuxCredentials_Blank(t *testing.T) {
	cfg := &Config{}
	cfg.Mux.TokenID = "id"
	cfg.Mux.TokenSecret = "   "
	assert.False(t, cfg.HasMuxCredentials())
}
