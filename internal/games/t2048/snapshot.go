package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateWon         GameStateType = "won"
	StateLost        GameStateType = "lost"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Grid       Grid
	Score      int
	MaxTile    int
	Moves      int
	HistoryLen int
	State      GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWon
	case g.lost:
		state = StateLost
	}

	return Snapshot{
		Grid:       g.engine.Grid(),
		Score:      g.engine.Score(),
		MaxTile:    g.engine.MaxTile(),
		Moves:      g.engine.Moves(),
		HistoryLen: g.engine.HistoryLen(),
		State:      state,
	}
}
