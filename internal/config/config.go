package config

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// Settings is the on-disk configuration of the viewer. Missing file or
// missing fields fall back to defaults.
type Settings struct {
	Window struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"window"`

	// RenderDistance is the streaming radius in chunks.
	RenderDistance int `yaml:"render_distance"`
	// WorldRadius is the generated region half-width in chunks.
	WorldRadius int `yaml:"world_radius"`
	// Generator selects world shape: "flat" or "noise".
	Generator string `yaml:"generator"`
	Seed      int64  `yaml:"seed"`
	// FontPath points at a TTF for the HUD; empty disables the overlay.
	FontPath string `yaml:"font_path"`
}

// Default returns the baked-in settings.
func Default() Settings {
	var s Settings
	s.Window.Width = 900
	s.Window.Height = 600
	s.RenderDistance = 4
	s.WorldRadius = 4
	s.Generator = "noise"
	s.Seed = 0
	s.FontPath = "assets/fonts/OpenSans-Regular.ttf"
	return s
}

// Load reads settings from a YAML file. A missing file is not an error and
// yields defaults; a malformed file is.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse config %s: %w", path, err)
	}
	SetRenderDistance(s.RenderDistance)
	s.RenderDistance = GetRenderDistance()
	return s, nil
}

// RenderSettings holds runtime-adjustable render configuration.
type RenderSettings struct {
	mu             sync.RWMutex
	renderDistance int
}

var globalRenderSettings = &RenderSettings{
	renderDistance: 4,
}

// GetRenderDistance returns the current render distance in chunks.
func GetRenderDistance() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.renderDistance
}

// SetRenderDistance sets the render distance in chunks, clamped to a sane
// range.
func SetRenderDistance(distance int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	if distance < 1 {
		distance = 1
	}
	if distance > 32 {
		distance = 32
	}
	globalRenderSettings.renderDistance = distance
}
