package t2048

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMoveEfficiency(t *testing.T) {
	start := Grid{{2, 2, 0, 0}}
	e := newTestEngine(start)

	got := e.Efficiencies()
	want := [4]MoveEfficiency{
		{EmptyCells: 14, ScoreGained: 4, Dir: DirLeft},
		{EmptyCells: 14, ScoreGained: 4, Dir: DirRight},
		{EmptyCells: -1, ScoreGained: 0, Dir: DirUp},
		{EmptyCells: 13, ScoreGained: 0, Dir: DirDown},
	}
	require.Equal(t, want, got)

	require.False(t, got[2].Legal())
	require.True(t, got[3].Legal())

	// Trials leave no trace
	require.Equal(t, start, e.Grid())
	require.Zero(t, e.Score())
	require.Zero(t, e.HistoryLen())
	require.Equal(t, 2, e.MaxTile())
}

func TestMoveEfficiencyKeepsHistory(t *testing.T) {
	e := NewEngine(rand.New(rand.NewSource(8)))
	for range 6 {
		e.RandomMove()
	}
	depth := e.HistoryLen()
	top, _ := e.history.Peek()
	grid, score := e.Grid(), e.Score()

	for _, dir := range Directions {
		e.MoveEfficiency(dir)

		require.Equal(t, depth, e.HistoryLen())
		peek, _ := e.history.Peek()
		require.Equal(t, top, peek)
		require.Equal(t, grid, e.Grid())
		require.Equal(t, score, e.Score())
	}
}

func TestMoveEfficiencyDoesNotLeakMaxTile(t *testing.T) {
	e := newTestEngine(Grid{{1024, 1024, 0, 0}})

	eff := e.MoveEfficiency(DirLeft)
	require.Equal(t, 2048, eff.ScoreGained)
	require.Equal(t, 1024, e.MaxTile())
}

func TestBetter(t *testing.T) {
	tests := []struct {
		name string
		a, b MoveEfficiency
		want bool
	}{
		{"more empty cells", MoveEfficiency{EmptyCells: 5}, MoveEfficiency{EmptyCells: 4, ScoreGained: 100}, true},
		{"fewer empty cells", MoveEfficiency{EmptyCells: 3, ScoreGained: 100}, MoveEfficiency{EmptyCells: 4}, false},
		{"same cells more score", MoveEfficiency{EmptyCells: 4, ScoreGained: 8}, MoveEfficiency{EmptyCells: 4, ScoreGained: 4}, true},
		{"exact tie", MoveEfficiency{EmptyCells: 4, ScoreGained: 8, Dir: DirDown}, MoveEfficiency{EmptyCells: 4, ScoreGained: 8, Dir: DirLeft}, false},
		{"legal beats illegal", MoveEfficiency{EmptyCells: 0}, MoveEfficiency{EmptyCells: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.a.Better(tt.b))
		})
	}
}

func TestAutoMoveTieBreak(t *testing.T) {
	tests := []struct {
		name string
		grid Grid
		want Direction
	}{
		// Left and right both give (14, 4); left is evaluated first
		{"horizontal pair", Grid{{2, 2, 0, 0}}, DirLeft},
		// Up and down both give (14, 4); left is illegal
		{"vertical pair", Grid{{2, 0, 0, 0}, {2, 0, 0, 0}}, DirUp},
		// Only right changes the board
		{"single legal move", Grid{
			{2, 4, 2, 0},
			{4, 2, 4, 0},
			{2, 4, 2, 0},
			{4, 2, 4, 0},
		}, DirRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := range int64(20) {
				e := newTestEngine(tt.grid)
				e.rng = rand.New(rand.NewSource(seed))

				require.Equal(t, tt.want, e.AutoMove(), "seed %d", seed)
				require.Equal(t, 1, e.HistoryLen(), "auto move commits exactly one history entry")

				top, _ := e.history.Peek()
				require.Equal(t, tt.grid, top.grid)
			}
		})
	}
}

func TestAutoMovePrefersMerges(t *testing.T) {
	// Only a horizontal move merges the 8s; vertical moves change nothing.
	e := newTestEngine(Grid{
		{8, 8, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	})

	best := e.BestMove()
	require.Equal(t, DirLeft, best.Dir)
	require.Equal(t, 16, best.ScoreGained)
	require.Equal(t, 0, best.EmptyCells, "the freed cell is refilled by the spawn")
}
