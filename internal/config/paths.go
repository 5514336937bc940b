package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Dir returns the easel config directory under the user config base.
// On Linux, this typically resolves to $XDG_CONFIG_HOME/easel; on macOS
// to ~/Library/Application Support/easel; and on Windows to %AppData%/easel.
// Falls back to HOME when UserConfigDir is unavailable.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil || strings.TrimSpace(base) == "" {
		if home, herr := os.UserHomeDir(); herr == nil {
			base = home
		} else {
			return "", errors.New("cannot determine config directory")
		}
	}
	return filepath.Join(base, "easel"), nil
}

// SocketDir returns where pane control sockets live. Prefers the user
// cache base, falling back to the system temp dir.
func SocketDir() string {
	base, err := os.UserCacheDir()
	if err != nil || strings.TrimSpace(base) == "" {
		return os.TempDir()
	}
	return filepath.Join(base, "easel")
}

// RegistryPath returns the pane registry file under the config dir.
func RegistryPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "panes.json"), nil
}

// SettingsPath returns the settings file under the config dir.
func SettingsPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "settings.yaml"), nil
}
