// Package config holds the tunable ghost settings and persists them as a
// flat JSON object in the per-user config directory. Missing or corrupt
// files silently fall back to defaults; unknown keys are ignored.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds every live-tunable parameter. It is loaded once at startup,
// written by the settings form, and read continuously by the animation
// engine. All fields map 1:1 onto keys of the JSON config file.
type Config struct {
	// Movement
	Speed float64 `json:"speed"` // pixels per movement tick

	// Speech
	SpeakInterval int     `json:"speak_interval"` // seconds between speech checks
	SpeakChance   float64 `json:"speak_chance"`   // probability a check fires, 0..1

	// Opacity wave
	OpacitySpeed float64 `json:"opacity_speed"`
	OpacityMin   float64 `json:"opacity_min"`
	OpacityMax   float64 `json:"opacity_max"`

	// Scare
	ScareEnabled    bool `json:"scare_enabled"`
	ScareMinMinutes int  `json:"scare_min_minutes"`
	ScareMaxMinutes int  `json:"scare_max_minutes"`

	// Appearance
	GhostScale float64 `json:"ghost_scale"`

	// Sound
	SoundEnabled bool `json:"sound_enabled"`

	// Custom phrase lists; empty means use the built-in lists
	CustomPhrases      []string `json:"custom_phrases"`
	CustomScarePhrases []string `json:"custom_scare_phrases"`
}

// Defaults returns the canonical default configuration.
func Defaults() Config {
	return Config{
		Speed:              2,
		SpeakInterval:      15,
		SpeakChance:        0.7,
		OpacitySpeed:       1.0,
		OpacityMin:         0.08,
		OpacityMax:         1.0,
		ScareEnabled:       true,
		ScareMinMinutes:    5,
		ScareMaxMinutes:    10,
		GhostScale:         1.0,
		SoundEnabled:       false,
		CustomPhrases:      []string{},
		CustomScarePhrases: []string{},
	}
}

// DefaultPath returns the config file location under the user config
// directory (respects XDG_CONFIG_HOME on Linux).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config dir: %w", err)
	}
	return filepath.Join(dir, "ghost-pet", "config.json"), nil
}

// Load reads the config file at path, overlaying saved values on top of the
// defaults. A missing or unparsable file yields plain defaults. Load never
// fails: a broken config must not keep the ghost from starting.
func Load(path string) *Config {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return &cfg
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		cfg = Defaults()
	}
	cfg.normalize()
	return &cfg
}

// Save writes the config as indented JSON, creating the parent directory
// if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Reset restores every field to its default value.
func (c *Config) Reset() {
	*c = Defaults()
}

// normalize repairs values a hand-edited file could leave nil.
func (c *Config) normalize() {
	if c.CustomPhrases == nil {
		c.CustomPhrases = []string{}
	}
	if c.CustomScarePhrases == nil {
		c.CustomScarePhrases = []string{}
	}
}
