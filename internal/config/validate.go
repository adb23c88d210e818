package config

import (
	"fmt"

	"github.com/google/uuid"
)

// Validate rejects configurations the daemon cannot run with. Normalize must
// run first; Validate assumes defaults are already applied.
func (c *Config) Validate() error {
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.LogFormat)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.LogLevel)
	}

	if c.DownloadSlots > 64 {
		return fmt.Errorf("pipeline.download_slots %d exceeds the limit of 64", c.DownloadSlots)
	}
	if c.UploadSlots > 64 {
		return fmt.Errorf("pipeline.upload_slots %d exceeds the limit of 64", c.UploadSlots)
	}

	if c.AgentID != "" {
		if _, err := uuid.Parse(c.AgentID); err != nil {
			return fmt.Errorf("agent.agent_id is not a valid UUID: %w", err)
		}
	}
	if c.SessionID != "" {
		if _, err := uuid.Parse(c.SessionID); err != nil {
			return fmt.Errorf("agent.session_id is not a valid UUID: %w", err)
		}
	}
	return nil
}
