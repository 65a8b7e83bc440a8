package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	MaxTile  int  // Highest tile reached
	Moves    int  // Move attempts since reset
	Won      bool // Winning tile reached
	GameOver bool // No further moves possible
}

// Finished reports whether the game reached a terminal state.
func (s GameState) Finished() bool {
	return s.Won || s.GameOver
}

// StepResult is returned by Game.Step() after each input event.
type StepResult struct {
	State GameState
	Moved bool // Whether the board changed
}
