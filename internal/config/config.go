// Package config provides YAML-based game configuration loading and
// difficulty presets for the brick breaker.
package config

// BreakoutConfig contains all tunable parameters of the brick breaker.
// Sizes, positions and speeds are in playfield units (speeds per second).
type BreakoutConfig struct {
	Player   PlayerConfig   `yaml:"player" toml:"player"`
	Ball     BallConfig     `yaml:"ball" toml:"ball"`
	Blocks   BlocksConfig   `yaml:"blocks" toml:"blocks"`
	Gameplay GameplayConfig `yaml:"gameplay" toml:"gameplay"`
	Display  DisplayConfig  `yaml:"display" toml:"display"`
}

// PlayerConfig defines the paddle.
type PlayerConfig struct {
	Width        float64 `yaml:"width" toml:"width"`
	Height       float64 `yaml:"height" toml:"height"`
	Speed        float64 `yaml:"speed" toml:"speed"`
	BottomOffset float64 `yaml:"bottom_offset" toml:"bottom_offset"` // Distance of paddle top from the playfield bottom
}

// BallConfig defines every ball, including spawned ones.
type BallConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Speed  float64 `yaml:"speed" toml:"speed"`
}

// BlocksConfig defines the block grid laid out at round start.
type BlocksConfig struct {
	Width        float64 `yaml:"width" toml:"width"`
	Height       float64 `yaml:"height" toml:"height"`
	PaddingX     float64 `yaml:"padding_x" toml:"padding_x"`
	PaddingY     float64 `yaml:"padding_y" toml:"padding_y"`
	Columns      int     `yaml:"columns" toml:"columns"` // Blocks per horizontal line
	Rows         int     `yaml:"rows" toml:"rows"`       // Number of horizontal lines
	Top          float64 `yaml:"top" toml:"top"`         // Y of the first line
	Lives        int     `yaml:"lives" toml:"lives"`     // Hits needed to destroy a block
	SpecialCount int     `yaml:"special_count" toml:"special_count"`
}

// GameplayConfig defines scoring and lives.
type GameplayConfig struct {
	Lives        int     `yaml:"lives" toml:"lives"`
	BlockPoints  int     `yaml:"block_points" toml:"block_points"`
	BounceJitter float64 `yaml:"bounce_jitter" toml:"bounce_jitter"` // Max |dx| added to a ball on a vertical bounce
}

// DisplayConfig maps playfield units to terminal cells.
type DisplayConfig struct {
	CellWidth  float64 `yaml:"cell_width" toml:"cell_width"`
	CellHeight float64 `yaml:"cell_height" toml:"cell_height"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value to a preset.
// Unknown values yield "" (no preset).
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal (and no preset) keeps the loaded values.
func ApplyPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Player.Width = 200
		cfg.Ball.Speed = 320
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Player.Width = 110
		cfg.Ball.Speed = 500
	}
}
