// Package config loads the runtime configuration from YAML. Missing files
// fall back to defaults so the game runs with no setup.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the tunables read at startup. Dimensions size the boundaries
// and center the player ship at world (re-)initialization time only.
type Config struct {
	ScreenWidth  int     `yaml:"screen_width"`
	ScreenHeight int     `yaml:"screen_height"`
	TickRate     int     `yaml:"tick_rate"`
	ResetSeconds float64 `yaml:"reset_seconds"`
	Seed         uint64  `yaml:"seed"` // 0 means derive from the clock
	LogLevel     string  `yaml:"log_level"`
	DebugOverlay bool    `yaml:"debug_overlay"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		ScreenWidth:  640,
		ScreenHeight: 480,
		TickRate:     60,
		ResetSeconds: 30,
		LogLevel:     "info",
		DebugOverlay: true,
	}
}

// Load reads the file at path over the defaults. A missing file is not an
// error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("screen dimensions must be positive, got %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("tick_rate must be positive, got %d", c.TickRate)
	}
	if c.ResetSeconds <= 0 {
		return fmt.Errorf("reset_seconds must be positive, got %v", c.ResetSeconds)
	}
	return nil
}

// Step returns the fixed logical step length.
func (c Config) Step() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// ResetEvery returns the wall-clock interval between full world resets.
func (c Config) ResetEvery() time.Duration {
	return time.Duration(c.ResetSeconds * float64(time.Second))
}
