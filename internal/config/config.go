package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	LogDir   string `toml:"log_dir"`
	CacheDir string `toml:"cache_dir"`
}

// Logging contains log output configuration.
type Logging struct {
	LogLevel  string `toml:"level"`
	LogFormat string `toml:"format"`
}

// Agent identifies the avatar session the daemon publishes appearance for.
type Agent struct {
	AgentID   string `toml:"agent_id"`
	SessionID string `toml:"session_id"`
}

// Pipeline contains the appearance pipeline concurrency caps and timeouts.
// Timeouts are expressed in seconds.
type Pipeline struct {
	DownloadSlots        int `toml:"download_slots"`
	UploadSlots          int `toml:"upload_slots"`
	WearablesTimeout     int `toml:"wearables_timeout"`
	WearableFetchTimeout int `toml:"wearable_fetch_timeout"`
	CacheResponseTimeout int `toml:"cache_response_timeout"`
	TextureFetchTimeout  int `toml:"texture_fetch_timeout"`
	UploadTimeout        int `toml:"upload_timeout"`
}

// AssetCache contains configuration for the local source-asset cache.
type AssetCache struct {
	Enabled bool `toml:"enabled"`
	MaxMiB  int  `toml:"max_mib"`
}

// Loopback contains configuration for the built-in loopback simulator.
type Loopback struct {
	Enabled   bool `toml:"enabled"`
	CacheHits bool `toml:"cache_hits"`
}

// Config is the merged weft configuration.
type Config struct {
	Paths      `toml:"paths"`
	Logging    `toml:"logging"`
	Agent      `toml:"agent"`
	Pipeline   `toml:"pipeline"`
	AssetCache `toml:"asset_cache"`
	Loopback   `toml:"loopback"`
}

// DefaultConfigPath returns the standard config file location.
func DefaultConfigPath() string {
	return "~/.config/weft/config.toml"
}

// Load reads the config at path, falling back to defaults when the file does
// not exist. A missing file is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()

	resolved, err := ExpandPath(strings.TrimSpace(path))
	if err != nil {
		return nil, err
	}
	if resolved == "" {
		resolved, err = ExpandPath(DefaultConfigPath())
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(resolved)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Defaults apply.
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", resolved, err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", resolved, err)
		}
	}

	if err := cfg.Normalize(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// WriteSample writes the embedded sample config to path, refusing to
// overwrite an existing file.
func WriteSample(path string) (string, error) {
	resolved, err := ExpandPath(path)
	if err != nil {
		return "", err
	}
	if resolved == "" {
		resolved, err = ExpandPath(DefaultConfigPath())
		if err != nil {
			return "", err
		}
	}
	if _, err := os.Stat(resolved); err == nil {
		return "", fmt.Errorf("config file already exists at %s", resolved)
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(resolved, []byte(sampleConfig), 0o644); err != nil {
		return "", fmt.Errorf("write sample config: %w", err)
	}
	return resolved, nil
}

// EnsureDirectories creates the directories the daemon writes into.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.LogDir, c.CacheDir} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("ensure directory %s: %w", dir, err)
		}
	}
	return nil
}

// ExpandPath resolves a leading ~ against the current user's home directory.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", nil
	}
	if trimmed == "~" || strings.HasPrefix(trimmed, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if trimmed == "~" {
			return home, nil
		}
		return filepath.Join(home, trimmed[2:]), nil
	}
	return trimmed, nil
}
