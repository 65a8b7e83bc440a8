package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3

	boardW = Size*cellWidth + 1  // +1 for right border
	boardH = Size*cellHeight + 1 // +1 for bottom border

	// Minimum size: board plus HUD above and the status line below.
	minScreenW = boardW + 2
	minScreenH = hudHeight + boardH + 3
)

// tileColors maps tile values to display colors. Larger values use the last entry.
var tileColors = []struct {
	upTo  int
	color core.Color
}{
	{2, core.ColorWhite},
	{4, core.ColorBrightWhite},
	{8, core.ColorYellow},
	{16, core.ColorOrange},
	{32, core.ColorBrightRed},
	{64, core.ColorRed},
	{128, core.ColorBrightYellow},
	{256, core.ColorBrightGreen},
	{512, core.ColorGreen},
	{1024, core.ColorBrightCyan},
	{2048, core.ColorBrightMagenta},
}

// TileColor returns the display color for a tile value.
func TileColor(v int) core.Color {
	for _, tc := range tileColors {
		if v <= tc.upTo {
			return tc.color
		}
	}
	return core.ColorMagenta
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1
	board := core.NewRect(boardX, boardY, boardW, boardH)

	g.renderHUD(dst, board)
	g.renderBoard(dst, board)
	g.renderStatus(dst, board)
	g.renderOverlays(dst, board)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, score and max tile.
func (g *Game) renderHUD(dst *core.Screen, board core.Rect) {
	title := "2048"
	dst.DrawTextColored(board.X+(board.W-len(title))/2, 0, title, core.ColorBrightYellow)

	dst.DrawText(board.X, 1, fmt.Sprintf("Score: %d", g.engine.Score()))

	maxStr := fmt.Sprintf("Max: %d", g.engine.MaxTile())
	dst.DrawText(max(board.Right()-len(maxStr), board.X), 1, maxStr)

	info := fmt.Sprintf("Moves: %d  Undo: %d", g.engine.Moves(), g.engine.HistoryLen())
	dst.DrawTextColored(board.X+(board.W-len(info))/2, 2, info, core.ColorGray)
}

// renderBoard draws the 4x4 grid with tiles.
func (g *Game) renderBoard(dst *core.Screen, board core.Rect) {
	for y := range Size + 1 {
		for x := range Size + 1 {
			px := board.X + x*cellWidth
			py := board.Y + y*cellHeight

			dst.Set(px, py, gridCorner(x, y))
			if x < Size {
				dst.DrawHLine(px+1, py, cellWidth-1, '─')
			}
			if y < Size {
				dst.DrawVLine(px, py+1, cellHeight-1, '│')
			}
		}
	}

	grid := g.engine.Grid()
	for y := range Size {
		for x := range Size {
			val := grid[y][x]
			if val == 0 {
				continue
			}

			cellX := board.X + x*cellWidth + 1
			cellY := board.Y + y*cellHeight + 1

			valStr := strconv.Itoa(val)
			padLeft := max((cellWidth-1-len(valStr))/2, 0)
			dst.DrawTextColored(cellX+padLeft, cellY, valStr, TileColor(val))
		}
	}
}

// gridCorner picks the box-drawing rune for a grid intersection.
func gridCorner(x, y int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == Size:
		return '┐'
	case y == Size && x == 0:
		return '└'
	case y == Size && x == Size:
		return '┘'
	case y == 0:
		return '┬'
	case y == Size:
		return '┴'
	case x == 0:
		return '├'
	case x == Size:
		return '┤'
	default:
		return '┼'
	}
}

// renderStatus draws the last action below the board.
func (g *Game) renderStatus(dst *core.Screen, board core.Rect) {
	if status := g.statusLine(); status != "" {
		dst.DrawTextColored(board.X, board.Bottom()+1, status, core.ColorCyan)
	}
}

// statusLine describes the last action taken.
func (g *Game) statusLine() string {
	switch g.lastAction {
	case core.ActionNone:
		return ""
	case core.ActionRestart:
		return "New game"
	case core.ActionUndo:
		return "Undo"
	}

	label := "Move"
	switch g.lastAction {
	case core.ActionRandom:
		label = "Random"
	case core.ActionAuto:
		label = "Auto"
	}
	if !g.lastMoved {
		return fmt.Sprintf("%s %s: nothing moved", label, g.lastDir)
	}
	return fmt.Sprintf("%s %s", label, g.lastDir)
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	switch {
	case g.won:
		g.drawOverlay(dst, board, "YOU WIN!", fmt.Sprintf("Score: %d", g.engine.Score()), "Esc: new game  Z: undo")
	case g.lost:
		g.drawOverlay(dst, board, "GAME OVER", fmt.Sprintf("Max tile: %d", g.engine.MaxTile()), "Esc: new game  Z: undo")
	}
}

// drawOverlay draws a centered text box over the board.
func (g *Game) drawOverlay(dst *core.Screen, board core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := board.CenteredIn(maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	centerX, _ := box.Center()
	for i, line := range lines {
		dst.DrawTextColored(centerX-len(line)/2, box.Y+1+i, line, core.ColorBrightWhite)
	}
}
