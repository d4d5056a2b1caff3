package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration parameters for the simulation,
// adapted from the teacher's flat grouped-struct shape.
type Config struct {
	// Display settings (demo window only; the kernel itself is headless)
	ScreenWidth  int `yaml:"screen_width"`
	ScreenHeight int `yaml:"screen_height"`

	// Simulation preset selection (demo only)
	Preset string `yaml:"preset"` // "rectangle", "sinai", "periodic_square"

	// Physics parameters
	Omega          float64 `yaml:"omega"`           // 0 = straight particle
	RandomSeed     uint64  `yaml:"random_seed"`      // seeds internal/physics.Source
	RaySplitting   bool    `yaml:"ray_splitting"`
	ExtendedPrec   bool    `yaml:"extended_precision"` // not read by the simulation or kernel; relocation always uses the eps-derived constants

	// Evolution target
	TargetIsTime bool    `yaml:"target_is_time"`
	Target       float64 `yaml:"target"`

	// Rendering parameters (demo only)
	GridVisScale float64 `yaml:"grid_vis_scale"`
	MoveSpeed    float32 `yaml:"move_speed"`
	ZoomSpeed    float32 `yaml:"zoom_speed"`

	// Runtime flags
	StartPaused bool `yaml:"start_paused"`
	Warnings    bool `yaml:"warnings"` // spec §7: diagnostic emission toggle
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		ScreenWidth:  1280,
		ScreenHeight: 800,

		Preset: "sinai",

		Omega:        0,
		RandomSeed:   1,
		RaySplitting: false,
		ExtendedPrec: false,

		TargetIsTime: true,
		Target:       100.0,

		GridVisScale: 0.1,
		MoveSpeed:    0.3,
		ZoomSpeed:    0.1,

		StartPaused: false,
		Warnings:    false,
	}
}

// LoadConfig reads a YAML configuration file, starting from
// DefaultConfig and overlaying whatever fields the file sets.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to path as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.ScreenWidth <= 0 {
		return fmt.Errorf("invalid screen width: %d", c.ScreenWidth)
	}
	if c.ScreenHeight <= 0 {
		return fmt.Errorf("invalid screen height: %d", c.ScreenHeight)
	}
	if c.Target <= 0 {
		return fmt.Errorf("invalid evolution target: %g", c.Target)
	}
	switch c.Preset {
	case "rectangle", "sinai", "periodic_square":
	default:
		return fmt.Errorf("invalid preset: %q", c.Preset)
	}
	return nil
}

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
