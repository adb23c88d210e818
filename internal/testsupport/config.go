// Package testsupport carries shared test fixtures: per-test configs with
// isolated temp directories, an asset cache opener, and a standard wardrobe
// of wearable assets.
package testsupport

import (
	"path/filepath"
	"testing"

	"weft/internal/config"
)

// Fixed identifiers so assertions can reference the publishing agent.
const (
	AgentID   = "7f2b1fb0-6d44-4b43-9f34-2c0f2a301901"
	SessionID = "b4c17a52-98dd-4731-b4a3-97e109dce262"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.LogDir = filepath.Join(base, "logs")
	cfg.CacheDir = filepath.Join(base, "cache")
	cfg.AgentID = AgentID
	cfg.SessionID = SessionID

	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Normalize(); err != nil {
		t.Fatalf("normalize test config: %v", err)
	}
	return &cfg
}

// WithLoopbackCacheHits enables the loopback simulator's bake cache.
func WithLoopbackCacheHits() ConfigOption {
	return func(cfg *config.Config) {
		cfg.Loopback.Enabled = true
		cfg.Loopback.CacheHits = true
	}
}

// WithAssetCacheDisabled turns the local source-asset cache off.
func WithAssetCacheDisabled() ConfigOption {
	return func(cfg *config.Config) {
		cfg.AssetCache.Enabled = false
	}
}

// WithShortTimeouts drops every pipeline timeout to one second so timeout
// paths finish quickly.
func WithShortTimeouts() ConfigOption {
	return func(cfg *config.Config) {
		cfg.WearablesTimeout = 1
		cfg.WearableFetchTimeout = 1
		cfg.CacheResponseTimeout = 1
		cfg.TextureFetchTimeout = 1
		cfg.UploadTimeout = 1
	}
}
