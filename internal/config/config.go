package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth     = 800
	DefaultHeight    = 600
	DefaultFrameRate = 60
	DefaultDataDir   = ".inertia"
	DefaultTheme     = "nebula"
)

// Config is the application configuration. Arena dimensions are the upper
// bound on the drawing surface; the live surface is derived from the
// viewport and clamped to these.
type Config struct {
	Theme     string `yaml:"theme"`
	FrameRate int    `yaml:"frame_rate"`
	DataDir   string `yaml:"data_dir"`
	ArenaW    int    `yaml:"arena_width"`
	ArenaH    int    `yaml:"arena_height"`
	Audio     bool   `yaml:"audio"`
	LevelPack string `yaml:"level_pack"`
}

func DefaultConfig() *Config {
	return &Config{
		Theme:     DefaultTheme,
		FrameRate: DefaultFrameRate,
		DataDir:   DefaultDataDir,
		ArenaW:    DefaultWidth,
		ArenaH:    DefaultHeight,
		Audio:     true,
	}
}

// Load reads a yaml config over the defaults, so a partial file is fine.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, cfg.validate()
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) validate() error {
	if c.FrameRate <= 0 {
		return fmt.Errorf("frame_rate must be positive, got %d", c.FrameRate)
	}
	if c.ArenaW < 100 || c.ArenaH < 100 {
		return fmt.Errorf("arena must be at least 100x100, got %dx%d", c.ArenaW, c.ArenaH)
	}
	return nil
}
