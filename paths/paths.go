// Package paths provides XDG-compliant path resolution for nav.
//
// Resolution order:
// 1. NAV_HOME (portable root) → $NAV_HOME/{config,data,state}
// 2. XDG env vars → $XDG_*_HOME/nav
// 3. Platform defaults → ~/.config/nav, ~/.local/share/nav, etc.
package paths

import (
	"os"
	"path/filepath"
	"strings"
)

// getConfigHome returns the base config home directory.
func getConfigHome() string {
	if navHome := os.Getenv("NAV_HOME"); navHome != "" {
		return filepath.Join(navHome, "config")
	}
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return xdgConfigHome
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".config")
	}
	return ""
}

// getDataHome returns the base data home directory.
func getDataHome() string {
	if navHome := os.Getenv("NAV_HOME"); navHome != "" {
		return filepath.Join(navHome, "data")
	}
	if xdgDataHome := os.Getenv("XDG_DATA_HOME"); xdgDataHome != "" {
		return xdgDataHome
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".local", "share")
	}
	return ""
}

// getStateHome returns the base state home directory.
func getStateHome() string {
	if navHome := os.Getenv("NAV_HOME"); navHome != "" {
		return filepath.Join(navHome, "state")
	}
	if xdgStateHome := os.Getenv("XDG_STATE_HOME"); xdgStateHome != "" {
		return xdgStateHome
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".local", "state")
	}
	return ""
}

// ConfigDir returns the nav configuration directory.
// Used for config files like nav.yml.
func ConfigDir() string {
	base := getConfigHome()
	if base == "" {
		return ""
	}
	return filepath.Join(base, "nav")
}

// DataDir returns the nav data directory.
// Used for shared datasets.
func DataDir() string {
	base := getDataHome()
	if base == "" {
		return ""
	}
	return filepath.Join(base, "nav")
}

// StateDir returns the nav state directory.
// Used for logs and runtime state.
func StateDir() string {
	base := getStateHome()
	if base == "" {
		return ""
	}
	return filepath.Join(base, "nav")
}

// EnsureDirs creates all nav directories if they don't exist.
func EnsureDirs() error {
	dirs := []string{
		ConfigDir(),
		DataDir(),
		StateDir(),
	}

	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}

// Expand expands a leading ~ and environment variables in a path and returns
// an absolute path.
func Expand(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}

	path = os.ExpandEnv(path)

	return filepath.Abs(path)
}
