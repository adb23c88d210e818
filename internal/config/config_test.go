package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"weft/internal/config"
)

func TestDefaultsApplied(t *testing.T) {
	cfg := config.Default()
	if err := cfg.Normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if cfg.DownloadSlots != 5 || cfg.UploadSlots != 3 {
		t.Fatalf("unexpected slot defaults: %d/%d", cfg.DownloadSlots, cfg.UploadSlots)
	}
	if cfg.WearablesTimeout != 10 || cfg.TextureFetchTimeout != 30 || cfg.UploadTimeout != 30 {
		t.Fatalf("unexpected timeout defaults: %+v", cfg.Pipeline)
	}
	if !strings.Contains(cfg.LogDir, "weft") {
		t.Fatalf("log dir not expanded: %s", cfg.LogDir)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "console" {
		t.Fatalf("defaults not applied: %s/%s", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := `
[paths]
log_dir = "` + filepath.Join(dir, "logs") + `"
cache_dir = "` + filepath.Join(dir, "cache") + `"

[logging]
level = "debug"
format = "json"

[pipeline]
download_slots = 2
texture_fetch_timeout = 5

[agent]
agent_id = "0d27fab4-7fa1-4a2d-bc24-9d8b38e64957"
session_id = "7e2b4f33-59ed-4b74-8b2a-57f32f5e2f10"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LogLevel != "debug" || cfg.LogFormat != "json" {
		t.Fatalf("logging overrides not applied: %s/%s", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.DownloadSlots != 2 {
		t.Fatalf("download_slots override not applied: %d", cfg.DownloadSlots)
	}
	if cfg.TextureFetchTimeout != 5 {
		t.Fatalf("texture_fetch_timeout override not applied: %d", cfg.TextureFetchTimeout)
	}
	if cfg.UploadSlots != 3 {
		t.Fatalf("unset fields should keep defaults: %d", cfg.UploadSlots)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"bad format", func(c *config.Config) { c.LogFormat = "xml" }},
		{"bad level", func(c *config.Config) { c.LogLevel = "verbose" }},
		{"bad agent id", func(c *config.Config) { c.AgentID = "not-a-uuid" }},
		{"bad session id", func(c *config.Config) { c.SessionID = "also-not" }},
		{"slot cap", func(c *config.Config) { c.DownloadSlots = 100 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			if err := cfg.Normalize(); err != nil {
				t.Fatal(err)
			}
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestWriteSampleRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if _, err := config.WriteSample(path); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if _, err := config.WriteSample(path); err == nil {
		t.Fatal("expected overwrite refusal")
	}
	loaded, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample config should load cleanly: %v", err)
	}
	if loaded.DownloadSlots != 5 {
		t.Fatalf("sample config defaults wrong: %d", loaded.DownloadSlots)
	}
}
