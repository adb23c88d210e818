// Package config loads, normalizes, and validates the TOML configuration
// shared by the weft daemon and CLI.
package config
