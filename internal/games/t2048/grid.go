package t2048

import (
	"fmt"
	"strings"
)

// Size is the board dimension. The engine only supports a square 4x4 grid.
const Size = 4

// Direction represents a move direction.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// Directions lists every direction in evaluation order.
// AutoMove breaks exact ties in favour of the earlier entry.
var Directions = [4]Direction{DirLeft, DirRight, DirUp, DirDown}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// rotations returns how many clockwise quarter turns bring the given
// direction onto "left". Rotating a further 4-n turns restores the grid.
func (d Direction) rotations() int {
	switch d {
	case DirRight:
		return 2
	case DirDown:
		return 1
	case DirUp:
		return 3
	default:
		return 0
	}
}

// Row is one row of tiles. A zero value is an empty cell.
type Row [Size]int

// Grid is the row-major tile matrix.
type Grid [Size]Row

// Rotate returns the grid turned 90 degrees clockwise:
// the tile at (i, j) moves to (j, Size-1-i).
func (g Grid) Rotate() Grid {
	var out Grid
	for i := range Size {
		for j := range Size {
			out[j][Size-1-i] = g[i][j]
		}
	}
	return out
}

// RotateN applies Rotate n times (n is taken modulo 4).
func (g Grid) RotateN(n int) Grid {
	for range ((n % 4) + 4) % 4 {
		g = g.Rotate()
	}
	return g
}

// Sum returns the total of all tile values.
func (g Grid) Sum() int {
	total := 0
	for _, row := range g {
		for _, v := range row {
			total += v
		}
	}
	return total
}

// EmptyCount returns the number of empty cells.
func (g Grid) EmptyCount() int {
	n := 0
	for _, row := range g {
		for _, v := range row {
			if v == 0 {
				n++
			}
		}
	}
	return n
}

// MaxTile returns the largest tile value on the grid.
func (g Grid) MaxTile() int {
	maxVal := 0
	for _, row := range g {
		for _, v := range row {
			maxVal = max(maxVal, v)
		}
	}
	return maxVal
}

// String renders the grid as fixed-width rows, mostly for test failures.
func (g Grid) String() string {
	var sb strings.Builder
	for _, row := range g {
		for x, v := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%5d", v)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// compress slides every tile as far left as possible without merging.
// Relative order is preserved. Returns true if anything moved.
func (r *Row) compress() bool {
	changed := false
	for range Size - 1 {
		for i := range Size - 1 {
			if r[i] == 0 && r[i+1] != 0 {
				r[i], r[i+1] = r[i+1], 0
				changed = true
			}
		}
	}
	return changed
}

// merge combines equal neighbours scanning the pairs (0,1), (1,2), (2,3)
// in that order. A merged pair doubles the left tile and pulls everything
// right of it one slot left, so a fresh result is never compared against
// the tile it just absorbed. Returns the points earned and the largest
// tile produced (0 if nothing merged).
func (r *Row) merge() (gained, produced int) {
	for i := range Size - 1 {
		if r[i] == 0 || r[i] != r[i+1] {
			continue
		}
		r[i] *= 2
		gained += r[i]
		produced = max(produced, r[i])
		copy(r[i+1:], r[i+2:])
		r[Size-1] = 0
	}
	return gained, produced
}

// slideLeft compresses and merges every row.
// The result reports whether any row changed, the score gained and
// the largest merged tile.
func (g *Grid) slideLeft() (changed bool, gained, produced int) {
	for y := range Size {
		row := &g[y]
		moved := row.compress()
		pts, top := row.merge()
		if moved || top > 0 {
			changed = true
		}
		gained += pts
		produced = max(produced, top)
	}
	return changed, gained, produced
}
