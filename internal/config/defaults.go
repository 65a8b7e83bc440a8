package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the built-in 2048 configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		WinningValue:    2048,
		Spawn4Prob:      0.1,
		ChangeDetection: ChangeDetectionCells,
	}
}
