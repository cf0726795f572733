package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const prefsFile = "prefs.yaml"

// Load loads preferences.
// Search order: customPath -> ~/.puzzlekit/prefs.yaml -> ./configs/prefs.yaml -> embedded default
// Only a custom path that cannot be read or parsed is an error; the other
// locations are skipped silently when missing or invalid.
func Load(customPath string) (Prefs, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Prefs{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Prefs{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(prefsFile); userCfgPath != "" {
		if cfg, ok := tryFile(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryFile(filepath.Join("configs", prefsFile)); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := parse(defaultPrefsYAML)
	if err != nil {
		return DefaultPrefs(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML on top of the defaults so omitted keys keep their
// built-in values.
func parse(data []byte) (Prefs, error) {
	cfg := DefaultPrefs()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Prefs{}, err
	}
	return cfg, nil
}

func tryFile(path string) (Prefs, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Prefs{}, false
	}
	cfg, err := parse(data)
	if err != nil {
		return Prefs{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".puzzlekit", filename)
}
