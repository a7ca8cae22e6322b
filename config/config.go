// Package config loads and saves the editor's preferences from
// ~/.config/circed/config.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "config.yaml"

// Preferences holds the tunable editor settings. Zero values are replaced
// with defaults on load, so a partial config file is fine.
type Preferences struct {
	// HistoryDepth caps the undo and redo stacks.
	HistoryDepth int `yaml:"history_depth"`
	// SnapDistance is the terminal snapping radius for wiring and hit
	// testing, in world units.
	SnapDistance float64 `yaml:"snap_distance"`
	// CornerHitRadius is the pick radius for wire corners.
	CornerHitRadius float64 `yaml:"corner_hit_radius"`
	// GridSize is the spacing of the background grid.
	GridSize float64 `yaml:"grid_size"`
	// LEDColor is the colour of newly placed LEDs.
	LEDColor string `yaml:"led_color"`

	path string
}

// Default returns the built-in preferences.
func Default() Preferences {
	return Preferences{
		HistoryDepth:    50,
		SnapDistance:    20,
		CornerHitRadius: 12,
		GridSize:        20,
		LEDColor:        "red",
	}
}

// Load reads preferences from the user config directory, falling back to
// defaults when the file is missing or a field is unset.
func Load() Preferences {
	p := Default()
	p.path = defaultPath()

	data, err := os.ReadFile(p.path)
	if err != nil {
		return p
	}
	loaded := Preferences{}
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return p
	}
	p.merge(loaded)
	return p
}

// LoadFile reads preferences from an explicit path.
func LoadFile(path string) (Preferences, error) {
	p := Default()
	p.path = path

	data, err := os.ReadFile(path)
	if err != nil {
		return p, err
	}
	loaded := Preferences{}
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return p, fmt.Errorf("parsing %s: %w", path, err)
	}
	p.merge(loaded)
	return p, nil
}

// Save writes the preferences back to the path they were loaded from,
// creating the config directory if needed.
func (p Preferences) Save() error {
	path := p.path
	if path == "" {
		path = defaultPath()
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// merge copies set fields from loaded over the defaults.
func (p *Preferences) merge(loaded Preferences) {
	if loaded.HistoryDepth > 0 {
		p.HistoryDepth = loaded.HistoryDepth
	}
	if loaded.SnapDistance > 0 {
		p.SnapDistance = loaded.SnapDistance
	}
	if loaded.CornerHitRadius > 0 {
		p.CornerHitRadius = loaded.CornerHitRadius
	}
	if loaded.GridSize > 0 {
		p.GridSize = loaded.GridSize
	}
	if loaded.LEDColor != "" {
		p.LEDColor = loaded.LEDColor
	}
}

func defaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(configDir, "circed", configFile)
}
