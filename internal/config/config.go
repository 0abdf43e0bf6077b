package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	SceneFile string `json:"scene_file"`
	OutputDir string `json:"output_dir"`

	// Render settings
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Supersample int    `json:"supersample"`
	Format      string `json:"format"`
	Reference   bool   `json:"reference"` // disable scan-bounds clamping

	// Turntable settings. StepDeg is nil when unset so that an explicit
	// 0 renders every frame at the same angle.
	Frames  int      `json:"frames"`
	StepDeg *float64 `json:"step_deg"`
	Workers int      `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	// Scene paths are relative to the config file
	if cfg.SceneFile != "" && !filepath.IsAbs(cfg.SceneFile) {
		cfg.SceneFile = filepath.Join(filepath.Dir(path), cfg.SceneFile)
	}

	return cfg, nil
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.SceneFile != "" {
		c.SceneFile = flags.SceneFile
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.StepDeg != nil {
		step := *flags.StepDeg
		c.StepDeg = &step
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Reference {
		c.Reference = true
	}

	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}
	if c.Width <= 0 {
		c.Width = 700
	}
	if c.Height <= 0 {
		c.Height = 700
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.Format == "" {
		c.Format = "webp"
	}
	if c.Frames <= 0 {
		c.Frames = 1
	}
	if c.StepDeg == nil {
		step := 10.0
		c.StepDeg = &step
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	SceneFile string
	OutputDir string
	Width     int
	Height    int
	Format    string
	Frames    int
	StepDeg   *float64 // nil when the flag was not given
	Workers   int
	Reference bool
}
