// Package config holds the fixed file names and the environment-driven
// ambient settings (logging, cache backend).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ygo/smallworld/internal/catalog"
)

// Fixed file names, relative to the working directory
const (
	DeckFile    = "deck.ydk"
	CacheFile   = "card_cache.json"
	CacheDBFile = "card_cache.db"
	OutputFile  = "output.txt"
)

// Environment overrides
const (
	EnvLogLevel  = "SMALLWORLD_LOG_LEVEL"
	EnvLogFormat = "SMALLWORLD_LOG_FORMAT"
	EnvCache     = "SMALLWORLD_CACHE"
)

// CacheBackend selects how the cache is persisted
type CacheBackend string

const (
	BackendJSON   CacheBackend = "json"
	BackendSQLite CacheBackend = "sqlite"
)

// Config is everything a run needs to locate its inputs and outputs
type Config struct {
	Dir          string // directory holding deck, cache and output
	LogLevel     string
	LogFormat    string
	CacheBackend CacheBackend
	CatalogURL   string
}

// Load builds a Config for the current working directory
func Load() (*Config, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolving working directory: %w", err)
	}
	return FromEnv(dir)
}

// FromEnv builds a Config rooted at dir, applying environment overrides
func FromEnv(dir string) (*Config, error) {
	cfg := &Config{
		Dir:          dir,
		LogLevel:     envOr(EnvLogLevel, "info"),
		LogFormat:    envOr(EnvLogFormat, "text"),
		CacheBackend: CacheBackend(strings.ToLower(envOr(EnvCache, string(BackendJSON)))),
		CatalogURL:   catalog.DefaultBaseURL,
	}
	switch cfg.CacheBackend {
	case BackendJSON, BackendSQLite:
	default:
		return nil, fmt.Errorf("invalid %s %q (want json or sqlite)", EnvCache, cfg.CacheBackend)
	}
	return cfg, nil
}

// DeckURL is the afs URL of the deck file
func (c *Config) DeckURL() string {
	return FileURL(filepath.Join(c.Dir, DeckFile))
}

// CacheURL is the afs URL of the JSON cache file
func (c *Config) CacheURL() string {
	return FileURL(filepath.Join(c.Dir, CacheFile))
}

// CacheDBPath is the filesystem path of the SQLite cache
func (c *Config) CacheDBPath() string {
	return filepath.Join(c.Dir, CacheDBFile)
}

// OutputURL is the afs URL of the chain output file
func (c *Config) OutputURL() string {
	return FileURL(filepath.Join(c.Dir, OutputFile))
}

// FileURL converts a filesystem path to a file:// URL
func FileURL(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	path = filepath.ToSlash(path)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return "file://" + path
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
