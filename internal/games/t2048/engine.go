package t2048

// Rand is the source of randomness used for tile spawns and random moves.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// ChangeDetection selects how HasBoardChanged compares boards.
type ChangeDetection int

const (
	// ChangeByCells compares the grids cell by cell.
	ChangeByCells ChangeDetection = iota
	// ChangeBySum compares only the tile sums. Two different boards with
	// equal sums count as unchanged.
	ChangeBySum
)

const (
	// DefaultSpawn4Prob is the chance that a spawned tile is a 4 instead of a 2.
	DefaultSpawn4Prob = 0.1
	// initialMaxTile is the max-tile value right after a reset.
	initialMaxTile = 2
)

// Option configures an Engine.
type Option func(*Engine)

// WithSpawn4Prob overrides the probability of spawning a 4.
func WithSpawn4Prob(p float64) Option {
	return func(e *Engine) {
		e.spawn4Prob = p
	}
}

// WithChangeDetection selects the board comparison used by HasBoardChanged.
func WithChangeDetection(mode ChangeDetection) Option {
	return func(e *Engine) {
		e.changeDetection = mode
	}
}

// WithChecksumChangeDetection is shorthand for WithChangeDetection(ChangeBySum).
func WithChecksumChangeDetection() Option {
	return WithChangeDetection(ChangeBySum)
}

// Engine owns the board, the score and the undo history.
// It is not safe for concurrent use; give each goroutine its own Engine.
type Engine struct {
	grid    Grid
	score   int
	maxTile int
	moves   int
	history History

	rng             Rand
	spawn4Prob      float64
	changeDetection ChangeDetection
}

// NewEngine creates an engine and deals the two opening tiles.
func NewEngine(rng Rand, opts ...Option) *Engine {
	e := &Engine{
		rng:        rng,
		spawn4Prob: DefaultSpawn4Prob,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.Reset()
	return e
}

// Reset clears the board, score and history, then spawns two tiles.
func (e *Engine) Reset() {
	e.grid = Grid{}
	e.score = 0
	e.maxTile = initialMaxTile
	e.moves = 0
	e.history.Clear()
	e.spawnTile()
	e.spawnTile()
}

// Grid returns a copy of the current board.
func (e *Engine) Grid() Grid {
	return e.grid
}

// Score returns the sum of all merge results since the last reset.
func (e *Engine) Score() int {
	return e.score
}

// MaxTile returns the highest tile value reached since the last reset.
func (e *Engine) MaxTile() int {
	return e.maxTile
}

// Moves returns the number of move attempts since the last reset,
// not counting undone ones.
func (e *Engine) Moves() int {
	return e.moves
}

// HistoryLen returns the number of undo steps available.
func (e *Engine) HistoryLen() int {
	return e.history.Len()
}

// EmptyCells returns the number of empty cells on the board.
func (e *Engine) EmptyCells() int {
	return e.grid.EmptyCount()
}

// CanMove reports whether the board has an empty cell or a pair of equal
// right/down neighbours. Only rows and columns 0..Size-2 are scanned, so
// pairs lying entirely in the last row or last column are not considered.
func (e *Engine) CanMove() bool {
	if e.grid.EmptyCount() > 0 {
		return true
	}
	for y := range Size - 1 {
		for x := range Size - 1 {
			v := e.grid[y][x]
			if v == e.grid[y][x+1] || v == e.grid[y+1][x] {
				return true
			}
		}
	}
	return false
}

// Left moves all tiles left.
func (e *Engine) Left() bool { return e.Move(DirLeft) }

// Right moves all tiles right.
func (e *Engine) Right() bool { return e.Move(DirRight) }

// Up moves all tiles up.
func (e *Engine) Up() bool { return e.Move(DirUp) }

// Down moves all tiles down.
func (e *Engine) Down() bool { return e.Move(DirDown) }

// Move performs one logical move. The pre-move state is pushed onto the
// history exactly once, even when nothing changes. The grid is rotated so
// the move becomes a left slide, slid, rotated back, and a new tile is
// spawned if the board changed. Returns whether the board changed.
func (e *Engine) Move(dir Direction) bool {
	e.saveState()
	e.moves++

	turns := dir.rotations()
	g := e.grid.RotateN(turns)
	changed, gained, produced := g.slideLeft()
	e.grid = g.RotateN(4 - turns)

	e.score += gained
	e.maxTile = max(e.maxTile, produced)

	if changed {
		e.spawnTile()
	}
	return changed
}

// Rollback restores the most recently saved state.
// Returns false and leaves the engine untouched if there is nothing to undo.
func (e *Engine) Rollback() bool {
	s, ok := e.history.Pop()
	if !ok {
		return false
	}
	e.grid = s.grid
	e.score = s.score
	e.maxTile = s.maxTile
	e.moves = s.moves
	return true
}

// RandomMove performs a move in a uniformly chosen direction and returns it.
func (e *Engine) RandomMove() Direction {
	dir := Directions[e.rng.Intn(len(Directions))]
	e.Move(dir)
	return dir
}

// HasBoardChanged compares the board with the most recent history entry.
// With an empty history it reports false.
func (e *Engine) HasBoardChanged() bool {
	prev, ok := e.history.Peek()
	if !ok {
		return false
	}
	if e.changeDetection == ChangeBySum {
		return e.grid.Sum() != prev.grid.Sum()
	}
	return e.grid != prev.grid
}

func (e *Engine) saveState() {
	e.history.Push(state{grid: e.grid, score: e.score, maxTile: e.maxTile, moves: e.moves})
}

// spawnTile places a 2 (or a 4 with probability spawn4Prob) on a
// uniformly chosen empty cell. Empty cells are enumerated row-major.
// It does nothing on a full board.
func (e *Engine) spawnTile() {
	empty := e.grid.EmptyCount()
	if empty == 0 {
		return
	}
	pick := e.rng.Intn(empty)

	value := 2
	if e.rng.Float64() < e.spawn4Prob {
		value = 4
	}

	for y := range Size {
		for x := range Size {
			if e.grid[y][x] != 0 {
				continue
			}
			if pick == 0 {
				e.grid[y][x] = value
				e.maxTile = max(e.maxTile, value)
				return
			}
			pick--
		}
	}
}
