package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sigtoken/pkg/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"SIGTOKEN_SECRET",
		"SIGTOKEN_PUBLIC_KEY",
		"SIGTOKEN_LOG_LEVEL",
		"SIGTOKEN_LOG_FORMAT",
		"SIGTOKEN_OUTPUT",
		"SIGTOKEN_KEY_CACHE_SIZE",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Secret)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, config.OutputText, cfg.Output)
	assert.Equal(t, 16, cfg.KeyCacheSize)
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("SIGTOKEN_SECRET", "s3cret")
	t.Setenv("SIGTOKEN_OUTPUT", "yaml")
	t.Setenv("SIGTOKEN_KEY_CACHE_SIZE", "4")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.Secret)
	assert.Equal(t, config.OutputYAML, cfg.Output)
	assert.Equal(t, 4, cfg.KeyCacheSize)
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("SIGTOKEN_SECRET=from-file\nSIGTOKEN_LOG_FORMAT=json\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.Secret)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_MissingEnvFile(t *testing.T) {
	clearEnv(t)

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}

func TestLoad_ParseError(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("SIGTOKEN_KEY_CACHE_SIZE", "many")

	_, err := config.Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestValidate(t *testing.T) {
	valid := config.Config{LogLevel: "info", LogFormat: "text", Output: "json", KeyCacheSize: 1}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name string
		mut  func(*config.Config)
	}{
		{"bad output", func(c *config.Config) { c.Output = "xml" }},
		{"bad log format", func(c *config.Config) { c.LogFormat = "pretty" }},
		{"bad level", func(c *config.Config) { c.LogLevel = "loud" }},
		{"negative cache", func(c *config.Config) { c.KeyCacheSize = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mut(&cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}
}
