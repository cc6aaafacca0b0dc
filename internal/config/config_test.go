package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"ygo/smallworld/internal/catalog"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvLogFormat, "")
	t.Setenv(EnvCache, "")

	dir := t.TempDir()
	cfg, err := FromEnv(dir)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, BackendJSON, cfg.CacheBackend)
	assert.Equal(t, catalog.DefaultBaseURL, cfg.CatalogURL)
	assert.Equal(t, filepath.Join(dir, CacheDBFile), cfg.CacheDBPath())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogFormat, "json")
	t.Setenv(EnvCache, "SQLite")

	cfg, err := FromEnv(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, BackendSQLite, cfg.CacheBackend)
}

func TestFromEnv_InvalidBackend(t *testing.T) {
	t.Setenv(EnvCache, "redis")
	_, err := FromEnv(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvCache)
}

func TestURLs(t *testing.T) {
	t.Setenv(EnvCache, "")
	cfg, err := FromEnv("/decks")
	require.NoError(t, err)

	for name, url := range map[string]string{
		DeckFile:   cfg.DeckURL(),
		CacheFile:  cfg.CacheURL(),
		OutputFile: cfg.OutputURL(),
	} {
		assert.True(t, strings.HasPrefix(url, "file:///"), "%s url %q", name, url)
		assert.True(t, strings.HasSuffix(url, "/"+name), "%s url %q", name, url)
	}
}
