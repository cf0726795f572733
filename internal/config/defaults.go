package config

import (
	_ "embed"
)

//go:embed defaults/prefs.yaml
var defaultPrefsYAML []byte

// DefaultPrefs returns the built-in preferences.
func DefaultPrefs() Prefs {
	return Prefs{
		AudioDisabled:  false,
		StepSound:      false,
		DevModeEnabled: false,
		LevelsDir:      "",
		DBPath:         "~/.puzzlekit/progress.db",
	}
}

// DefaultYAML returns the embedded default preferences file.
func DefaultYAML() []byte {
	return defaultPrefsYAML
}
