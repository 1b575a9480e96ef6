// Package config loads and saves runtime configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/tickstack/constants"
)

// Config holds runtime settings for the loop, scheduler and frontends
type Config struct {
	// StepMs is the fixed simulation step in milliseconds
	StepMs int `yaml:"step_ms"`

	// FrameMs is the frame notification interval in milliseconds
	FrameMs int `yaml:"frame_ms"`

	// MaxDeltaMs caps a single frame delta (catch-up bound after the
	// process was suspended). Zero disables the clamp
	MaxDeltaMs int `yaml:"max_delta_ms"`

	// Audio enables transition sound cues
	Audio bool `yaml:"audio"`

	// LogFile is the debug log path. Empty disables file logging
	LogFile string `yaml:"log_file"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		StepMs:     int(constants.StepSize / time.Millisecond),
		FrameMs:    int(constants.FrameInterval / time.Millisecond),
		MaxDeltaMs: int(constants.MaxFrameDelta / time.Millisecond),
		Audio:      true,
		LogFile:    "",
		LogLevel:   "info",
	}
}

// Load reads configuration from path.
// A missing file returns defaults, not an error
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Save writes configuration to path, creating parent directories
func Save(path string, cfg Config) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config dir: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c Config) validate() error {
	if c.StepMs <= 0 {
		return fmt.Errorf("config: step_ms must be positive, got %d", c.StepMs)
	}
	if c.FrameMs <= 0 {
		return fmt.Errorf("config: frame_ms must be positive, got %d", c.FrameMs)
	}
	if c.MaxDeltaMs < 0 {
		return fmt.Errorf("config: max_delta_ms must not be negative, got %d", c.MaxDeltaMs)
	}
	return nil
}

// StepSize returns the fixed simulation step as a duration
func (c Config) StepSize() time.Duration {
	return time.Duration(c.StepMs) * time.Millisecond
}

// FrameInterval returns the frame notification interval as a duration
func (c Config) FrameInterval() time.Duration {
	return time.Duration(c.FrameMs) * time.Millisecond
}

// MaxDelta returns the per-frame delta clamp as a duration
func (c Config) MaxDelta() time.Duration {
	return time.Duration(c.MaxDeltaMs) * time.Millisecond
}
