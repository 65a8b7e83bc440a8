// Package t2048 implements the 2048 sliding-tile puzzle: a board engine with
// undo history and greedy auto-play, plus the game adapter that maps player
// actions onto it and renders it into a core.Screen.
package t2048

import (
	"math/rand"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
)

// GameID identifies the game in the score database.
const GameID = "2048"

// Game wires an Engine to player input and tracks the won/lost flags.
type Game struct {
	cfg    config.GameConfig
	engine *Engine

	// Screen dimensions
	screenW int
	screenH int

	won      bool
	lost     bool
	tooSmall bool

	lastAction core.Action
	lastDir    Direction
	lastMoved  bool
}

// New creates a game using the given configuration.
// Reset must be called before the first Step.
func New(cfg config.GameConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.GameConfig {
	return g.cfg
}

// Engine exposes the underlying board engine.
func (g *Game) Engine() *Engine {
	return g.engine
}

// EngineOptions converts the configuration into engine options.
func EngineOptions(cfg config.GameConfig) []Option {
	opts := []Option{WithSpawn4Prob(cfg.Spawn4Prob)}
	if cfg.ChangeDetection == config.ChangeDetectionSum {
		opts = append(opts, WithChecksumChangeDetection())
	}
	return opts
}

// Reset starts a fresh game seeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.engine = NewEngine(rand.New(rand.NewSource(cfg.Seed)), EngineOptions(g.cfg)...)
	g.won = false
	g.lost = false
	g.lastAction = core.ActionNone
	g.lastMoved = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the screen dimensions without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH
}

// Step handles one input event. Control actions run first (new game, undo,
// random move, auto move), then the board is checked for a legal move,
// then a directional move is applied unless the game is already won or
// lost. The won flag is set once the highest tile reaches the winning value.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.lastMoved = false

	if in.Has(core.ActionRestart) {
		g.engine.Reset()
		g.won = false
		g.lost = false
		g.note(core.ActionRestart)
	}
	if in.Has(core.ActionUndo) && g.engine.Rollback() {
		g.note(core.ActionUndo)
	}
	if in.Has(core.ActionRandom) {
		g.move(core.ActionRandom, g.engine.RandomMove)
	}
	if in.Has(core.ActionAuto) {
		g.move(core.ActionAuto, g.engine.AutoMove)
	}

	g.refresh()

	if !g.won && !g.lost {
		if dir, ok := directionFor(in); ok {
			g.lastDir = dir
			g.lastMoved = g.engine.Move(dir)
			g.note(actionFor(dir))
			g.refresh()
		}
	}

	return core.StepResult{State: g.State(), Moved: g.lastMoved}
}

// move runs a control move and records which direction it chose.
func (g *Game) move(action core.Action, fn func() Direction) {
	before := g.engine.Grid()
	g.lastDir = fn()
	g.lastMoved = g.engine.Grid() != before
	g.note(action)
}

func (g *Game) note(a core.Action) {
	g.lastAction = a
}

// refresh recomputes the terminal flags from the engine.
func (g *Game) refresh() {
	g.lost = !g.engine.CanMove()
	g.won = g.engine.MaxTile() >= g.cfg.WinningValue
}

// directionFor maps the first directional action in the frame to a direction.
func directionFor(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	}
	return 0, false
}

func actionFor(dir Direction) core.Action {
	switch dir {
	case DirLeft:
		return core.ActionLeft
	case DirRight:
		return core.ActionRight
	case DirUp:
		return core.ActionUp
	default:
		return core.ActionDown
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.engine.Score(),
		MaxTile:  g.engine.MaxTile(),
		Moves:    g.engine.Moves(),
		Won:      g.won,
		GameOver: g.lost,
	}
}
