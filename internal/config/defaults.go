package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default configuration.
// Mirrors defaults/breakout.yaml and is used if the embedded file cannot be parsed.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Player: PlayerConfig{
			Width:        150,
			Height:       40,
			Speed:        550,
			BottomOffset: 100,
		},
		Ball: BallConfig{
			Width:  50,
			Height: 50,
			Speed:  400,
		},
		Blocks: BlocksConfig{
			Width:        120,
			Height:       40,
			PaddingX:     5,
			PaddingY:     5,
			Columns:      6,
			Rows:         5,
			Top:          50,
			Lives:        2,
			SpecialCount: 2,
		},
		Gameplay: GameplayConfig{
			Lives:        3,
			BlockPoints:  10,
			BounceJitter: 0.2,
		},
		Display: DisplayConfig{
			CellWidth:  10,
			CellHeight: 25,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
