// Package fs locates lear's on-disk scene data.
package fs

import (
	"os"
	"path/filepath"
)

// DefaultDataDir returns the directory lear-munge writes scene files to.
// Uses XDG_DATA_HOME if set, otherwise falls back to ~/.local/share/lear,
// or the system temp directory if home is unavailable.
func DefaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "lear", "scenes")
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(os.TempDir(), "lear", "scenes")
	}
	return filepath.Join(home, ".local", "share", "lear", "scenes")
}
