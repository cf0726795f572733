// Package config provides YAML-based preference loading for puzzlekit.
package config

// Prefs holds the process-wide preferences. They are loaded once at startup
// and passed explicitly to the components that read them.
type Prefs struct {
	AudioDisabled  bool   `yaml:"audio_disabled"`
	StepSound      bool   `yaml:"step_sound"` // Ring on every move, not only on solve
	DevModeEnabled bool   `yaml:"dev_mode_enabled"`
	LevelsDir      string `yaml:"levels_dir"` // Empty means the embedded level pack
	DBPath         string `yaml:"db_path"`
}
