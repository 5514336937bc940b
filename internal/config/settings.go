package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Settings is the persisted easel configuration.
// Path: <config dir>/settings.yaml
type Settings struct {
	// Session is the tmux session panes are opened in; empty targets the
	// client's current session.
	Session string `yaml:"session"`
	// SplitPercent sizes new panes as a percentage of the window.
	SplitPercent int `yaml:"splitPercent"`
	// Vertical opens new panes below instead of beside.
	Vertical bool `yaml:"vertical"`
	// HTTPAddr is the listen address of `easel serve`.
	HTTPAddr string `yaml:"httpAddr"`
	// Accent is the hex color used for headings and highlights.
	Accent string `yaml:"accent"`
}

var defaultSettings = Settings{
	SplitPercent: 40,
	HTTPAddr:     "127.0.0.1:7483",
	Accent:       "#4d9375",
}

// DefaultSettings returns a copy of the built-in defaults.
func DefaultSettings() Settings {
	return defaultSettings
}

// LoadSettings reads settings.yaml. A missing file yields the defaults and
// no error; empty fields are filled from the defaults.
func LoadSettings() (Settings, error) {
	p, err := SettingsPath()
	if err != nil {
		return defaultSettings, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultSettings, nil
		}
		return defaultSettings, err
	}
	var s Settings
	if err := yaml.Unmarshal(b, &s); err != nil {
		return defaultSettings, err
	}
	return fillDefaults(s), nil
}

// SaveSettings writes settings.yaml, creating the config dir when needed.
func SaveSettings(s Settings) error {
	p, err := SettingsPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	b, err := yaml.Marshal(fillDefaults(s))
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o644)
}

func fillDefaults(s Settings) Settings {
	if s.SplitPercent <= 0 || s.SplitPercent > 90 {
		s.SplitPercent = defaultSettings.SplitPercent
	}
	if strings.TrimSpace(s.HTTPAddr) == "" {
		s.HTTPAddr = defaultSettings.HTTPAddr
	}
	if strings.TrimSpace(s.Accent) == "" {
		s.Accent = defaultSettings.Accent
	}
	return s
}
