// Package config provides YAML-based game configuration loading for the
// 2048 engine and its front ends.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Change detection modes accepted in GameConfig.ChangeDetection.
const (
	ChangeDetectionCells = "cells"
	ChangeDetectionSum   = "sum"
)

// GameConfig contains all configuration for the 2048 game.
type GameConfig struct {
	WinningValue    int     `yaml:"winning_value"`
	Spawn4Prob      float64 `yaml:"spawn_four_probability"`
	ChangeDetection string  `yaml:"change_detection"`
}

// Validate checks that every field holds a usable value.
func (c GameConfig) Validate() error {
	if c.WinningValue < 8 || c.WinningValue&(c.WinningValue-1) != 0 {
		return fmt.Errorf("%w: winning_value %d is not a power of two >= 8", ErrInvalidConfig, c.WinningValue)
	}
	if c.Spawn4Prob < 0 || c.Spawn4Prob > 1 {
		return fmt.Errorf("%w: spawn_four_probability %g is outside [0, 1]", ErrInvalidConfig, c.Spawn4Prob)
	}
	switch c.ChangeDetection {
	case ChangeDetectionCells, ChangeDetectionSum:
	default:
		return fmt.Errorf("%w: change_detection %q must be %q or %q",
			ErrInvalidConfig, c.ChangeDetection, ChangeDetectionCells, ChangeDetectionSum)
	}
	return nil
}
