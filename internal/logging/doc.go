// Package logging wires log/slog with the console and JSON handlers shared
// by the weft daemon and CLI, plus attribute helpers that keep field names
// consistent across components.
package logging
