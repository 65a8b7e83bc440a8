package t2048

// MoveEfficiency scores a candidate move for auto-play.
// EmptyCells is -1 for a move that would not change the board.
type MoveEfficiency struct {
	EmptyCells  int
	ScoreGained int
	Dir         Direction
}

// Legal reports whether the move changed the board when it was measured.
func (m MoveEfficiency) Legal() bool {
	return m.EmptyCells >= 0
}

// Better reports whether m ranks strictly above other: more empty cells
// first, then more score gained. Equal candidates are not better than
// each other, so callers keep whichever they saw first.
func (m MoveEfficiency) Better(other MoveEfficiency) bool {
	if m.EmptyCells != other.EmptyCells {
		return m.EmptyCells > other.EmptyCells
	}
	return m.ScoreGained > other.ScoreGained
}

// MoveEfficiency performs dir, measures the result and rolls it back.
// The board, score and history are left as they were; the random source
// is advanced by the trial spawn.
func (e *Engine) MoveEfficiency(dir Direction) MoveEfficiency {
	before := e.score
	e.Move(dir)
	defer e.Rollback()

	if !e.HasBoardChanged() {
		return MoveEfficiency{EmptyCells: -1, ScoreGained: 0, Dir: dir}
	}
	return MoveEfficiency{
		EmptyCells:  e.grid.EmptyCount(),
		ScoreGained: e.score - before,
		Dir:         dir,
	}
}

// Efficiencies measures every direction in evaluation order.
// Trials run strictly one after another.
func (e *Engine) Efficiencies() [4]MoveEfficiency {
	var out [4]MoveEfficiency
	for i, dir := range Directions {
		out[i] = e.MoveEfficiency(dir)
	}
	return out
}

// BestMove returns the highest ranked candidate. Ties go to the earliest
// direction in Directions.
func (e *Engine) BestMove() MoveEfficiency {
	candidates := e.Efficiencies()
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Better(best) {
			best = c
		}
	}
	return best
}

// AutoMove picks the best ranked direction and executes it for real.
// The move is re-run rather than replayed, so its spawn may differ from
// the one seen during measurement.
func (e *Engine) AutoMove() Direction {
	best := e.BestMove()
	e.Move(best.Dir)
	return best.Dir
}
