package config

import "strings"

// Normalize expands paths and backfills zero-valued fields with defaults so
// downstream code never has to re-check them.
func (c *Config) Normalize() error {
	var err error
	if c.LogDir, err = ExpandPath(c.LogDir); err != nil {
		return err
	}
	if c.CacheDir, err = ExpandPath(c.CacheDir); err != nil {
		return err
	}
	if c.LogDir == "" {
		if c.LogDir, err = ExpandPath(defaultLogDir); err != nil {
			return err
		}
	}
	if c.CacheDir == "" {
		if c.CacheDir, err = ExpandPath(defaultCacheDir); err != nil {
			return err
		}
	}

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	if c.LogFormat == "" {
		c.LogFormat = defaultLogFormat
	}

	if c.DownloadSlots <= 0 {
		c.DownloadSlots = defaultDownloadSlots
	}
	if c.UploadSlots <= 0 {
		c.UploadSlots = defaultUploadSlots
	}
	if c.WearablesTimeout <= 0 {
		c.WearablesTimeout = defaultWearablesTimeout
	}
	if c.WearableFetchTimeout <= 0 {
		c.WearableFetchTimeout = defaultWearableFetchTimeout
	}
	if c.CacheResponseTimeout <= 0 {
		c.CacheResponseTimeout = defaultCacheResponseTimeout
	}
	if c.TextureFetchTimeout <= 0 {
		c.TextureFetchTimeout = defaultTextureFetchTimeout
	}
	if c.UploadTimeout <= 0 {
		c.UploadTimeout = defaultUploadTimeout
	}
	if c.MaxMiB <= 0 {
		c.MaxMiB = defaultAssetCacheMaxMiB
	}

	c.AgentID = strings.TrimSpace(c.AgentID)
	c.SessionID = strings.TrimSpace(c.SessionID)
	return nil
}
