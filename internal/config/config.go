// Package config loads demo settings from an optional JSON file and lets
// command-line flags override them.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds window, camera and animation settings for a demo.
type Config struct {
	// Window
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Title  string `json:"title"`
	VSync  *bool  `json:"vsync,omitempty"`

	// Clear color, RGBA in 0..1
	ClearColor [4]float32 `json:"clear_color"`

	// Camera
	FovDeg   float32 `json:"fov_deg"`
	Near     float32 `json:"near"`
	Far      float32 `json:"far"`
	Distance float32 `json:"distance"`

	// Animation
	SpinDegPerSec float32    `json:"spin_deg_per_sec"`
	SpinAxis      [3]float32 `json:"spin_axis"`

	// Paths
	TexturePath  string `json:"texture"`
	SnapshotPath string `json:"snapshot"`

	Verbose bool `json:"verbose"`
}

// Flags holds CLI flag values that override config file settings.
// Zero values leave the file's setting alone.
type Flags struct {
	Width    int
	Height   int
	Spin     float64
	Texture  string
	Snapshot string
	Verbose  bool
}

// Default returns the settings shared by every demo.
func Default(title string) Config {
	vsync := true
	return Config{
		Width:         800,
		Height:        600,
		Title:         title,
		VSync:         &vsync,
		ClearColor:    [4]float32{0.2, 0.3, 0.3, 1},
		FovDeg:        45,
		Near:          0.1,
		Far:           100,
		Distance:      3,
		SpinDegPerSec: 90,
		SpinAxis:      [3]float32{0.5, 1, 0},
	}
}

// Load reads a JSON config file on top of base.
// Fields not set in the file keep base's values.
func Load(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := base
	if base.VSync != nil {
		v := *base.VSync
		cfg.VSync = &v
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve applies CLI flags and repairs values that cannot be used.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Spin != 0 {
		c.SpinDegPerSec = float32(flags.Spin)
	}
	if flags.Texture != "" {
		c.TexturePath = flags.Texture
	}
	if flags.Snapshot != "" {
		c.SnapshotPath = flags.Snapshot
	}
	if flags.Verbose {
		c.Verbose = true
	}

	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 600
	}
	if c.FovDeg <= 0 || c.FovDeg >= 180 {
		c.FovDeg = 45
	}
	if c.Near <= 0 {
		c.Near = 0.1
	}
	if c.Far <= c.Near {
		c.Far = c.Near * 1000
	}
	if c.SpinAxis == ([3]float32{}) {
		c.SpinAxis = [3]float32{0, 1, 0}
	}
	if c.VSync == nil {
		vsync := true
		c.VSync = &vsync
	}
}

// SwapInterval returns the GLFW swap interval for the vsync setting.
func (c *Config) SwapInterval() int {
	if c.VSync != nil && !*c.VSync {
		return 0
	}
	return 1
}
