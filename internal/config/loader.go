package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load loads the brick breaker configuration.
// Search order: customPath -> ~/.bricks/configs/breakout.yaml -> ./configs/breakout.yaml -> embedded default.
// Files only need to set the keys they change; everything else keeps its default.
// A customPath ending in .toml is decoded as TOML.
func Load(customPath string) (BreakoutConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return DefaultBreakoutConfig(), err
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("breakout.yaml"); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := loadFile(filepath.Join("configs", "breakout.yaml")); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := DefaultBreakoutConfig()
	if err := yaml.Unmarshal(defaultBreakoutYAML, &cfg); err != nil {
		return DefaultBreakoutConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile reads and validates a single config file layered over the defaults.
func loadFile(path string) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, &cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bricks", "configs", filename)
}

// Validate reports values the simulation cannot work with.
func (c BreakoutConfig) Validate() error {
	var errs []error

	positive := []struct {
		name string
		v    float64
	}{
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
		{"ball.width", c.Ball.Width},
		{"ball.height", c.Ball.Height},
		{"ball.speed", c.Ball.Speed},
		{"blocks.width", c.Blocks.Width},
		{"blocks.height", c.Blocks.Height},
		{"display.cell_width", c.Display.CellWidth},
		{"display.cell_height", c.Display.CellHeight},
	}
	for _, p := range positive {
		if p.v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", p.name, p.v))
		}
	}

	if c.Player.Speed < 0 {
		errs = append(errs, fmt.Errorf("player.speed must not be negative, got %v", c.Player.Speed))
	}
	if c.Blocks.Columns < 0 || c.Blocks.Rows < 0 {
		errs = append(errs, fmt.Errorf("blocks grid must not be negative, got %dx%d", c.Blocks.Columns, c.Blocks.Rows))
	}
	if c.Blocks.Lives <= 0 {
		errs = append(errs, fmt.Errorf("blocks.lives must be positive, got %d", c.Blocks.Lives))
	}
	if c.Blocks.SpecialCount < 0 {
		errs = append(errs, fmt.Errorf("blocks.special_count must not be negative, got %d", c.Blocks.SpecialCount))
	}
	if c.Gameplay.Lives <= 0 {
		errs = append(errs, fmt.Errorf("gameplay.lives must be positive, got %d", c.Gameplay.Lives))
	}
	if c.Gameplay.BounceJitter < 0 {
		errs = append(errs, fmt.Errorf("gameplay.bounce_jitter must not be negative, got %v", c.Gameplay.BounceJitter))
	}

	return errors.Join(errs...)
}
