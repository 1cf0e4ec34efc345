package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `{"api_key":"k","api_secret":"s"}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "k", cfg.APIKey)
	assert.Equal(t, "s", cfg.APISecret)
	assert.Equal(t, "https://api.mercadobitcoin.net/api/v4", cfg.BaseURL)
	require.NotNil(t, cfg.PaperTrade)
	assert.True(t, *cfg.PaperTrade, "paper trading is the default")
	assert.Equal(t, "X-ACCESS-KEY", cfg.AuthHeaders.Key)
	assert.Equal(t, "X-ACCESS-SIGN", cfg.AuthHeaders.Signature)
	assert.Equal(t, "X-ACCESS-TIMESTAMP", cfg.AuthHeaders.Timestamp)
	assert.Equal(t, "UTC", cfg.Timezone)
}

func TestLoadExplicitValuesSurviveDefaults(t *testing.T) {
	path := writeConfig(t, `{
		"api_key": "k",
		"api_secret": "s",
		"base_url": "https://sandbox.example.com/api",
		"paper_trade": false,
		"auth_headers": {"key": "MB-KEY", "signature": "MB-SIGN", "timestamp": "MB-TS"}
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://sandbox.example.com/api", cfg.BaseURL)
	assert.False(t, *cfg.PaperTrade, "explicit false is not clobbered by the default")
	assert.Equal(t, "MB-KEY", cfg.AuthHeaders.Key)
	assert.Equal(t, "MB-SIGN", cfg.AuthHeaders.Signature)
	assert.Equal(t, "MB-TS", cfg.AuthHeaders.Timestamp)
}

func TestLoadEnvFallback(t *testing.T) {
	path := writeConfig(t, `{"api_key":"from-env-file","api_secret":"s"}`)
	t.Setenv(EnvConfigPath, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "from-env-file", cfg.APIKey)
}

func TestLoadExplicitPathBeatsEnv(t *testing.T) {
	envPath := writeConfig(t, `{"api_key":"env","api_secret":"s"}`)
	explicitPath := writeConfig(t, `{"api_key":"explicit","api_secret":"s"}`)
	t.Setenv(EnvConfigPath, envPath)

	cfg, err := Load(explicitPath)
	require.NoError(t, err)
	assert.Equal(t, "explicit", cfg.APIKey)
}

func TestLoadMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.json")

	_, err := Load(missing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), missing, "error names the expected path")
	assert.Contains(t, err.Error(), "config.example.json", "error hints at the template")
}

func TestLoadRejectsEmptySecrets(t *testing.T) {
	for name, content := range map[string]string{
		"empty key":    `{"api_key":"","api_secret":"s"}`,
		"empty secret": `{"api_key":"k","api_secret":""}`,
		"both missing": `{}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			assert.Error(t, err)
		})
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	_, err := Load(writeConfig(t, `{"api_key": `))
	assert.Error(t, err)
}
