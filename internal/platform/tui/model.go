// Package tui provides the Bubble Tea front end for the 2048 game.
// It maps keys to game actions, renders the screen buffer with lipgloss,
// records finished games and serves sessions over SSH.
package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for one game of 2048.
// The game only advances on key presses; there is no tick loop.
type Model struct {
	game   *t2048.Game
	screen *core.Screen
	store  *storage.Store
	logger *log.Logger
	config core.RuntimeConfig

	keys   KeyMap
	help   help.Model
	scores *ScoreboardModel // non-nil while the score table is shown

	state    core.GameState
	recorded bool // whether the current game has been written to the store
	quitting bool
}

// NewModel creates a model and deals the first board.
// store and logger may be nil.
func NewModel(game *t2048.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		logger: logger,
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
	m.game.Reset(cfg)
	m.state = m.game.State()
	m.layout()

	logger.Debug("game started", "seed", cfg.Seed, "winning_value", game.Config().WinningValue)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case tea.KeyMsg:
		if m.scores != nil {
			return m.updateScores(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

// handleResize keeps the board and fits the screen buffer to the window.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.layout()

	if m.scores != nil {
		scores, _ := m.scores.Update(msg)
		m.scores = &scores
	}
	return m, nil
}

// layout sizes the game screen to the window minus the help footer.
func (m *Model) layout() {
	footer := lipgloss.Height(m.help.View(m.keys))
	h := max(m.config.ScreenH-footer, 0)
	m.screen.Resize(m.config.ScreenW, h)
	m.game.Resize(m.config.ScreenW, h)
}

// handleKey runs one game step for the pressed key.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	case key.Matches(msg, m.keys.Scores):
		scores := NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.scores = &scores
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.finish()
		m.quitting = true
		return m, tea.Quit
	case core.ActionRestart:
		m.finish()
	}

	result := m.game.Step(core.NewInputFrame(action))
	m.state = result.State
	m.logger.Debug("step",
		"action", action,
		"moved", result.Moved,
		"score", m.state.Score,
		"max_tile", m.state.MaxTile,
	)

	if action == core.ActionRestart {
		m.recorded = false
	}
	if m.state.GameOver {
		m.record()
	}
	return m, nil
}

// updateScores forwards keys to the scoreboard until it is closed.
func (m Model) updateScores(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	scores, cmd := m.scores.Update(msg)
	switch {
	case scores.IsQuitting():
		m.finish()
		m.quitting = true
		return m, tea.Quit
	case scores.Closed():
		m.scores = nil
		return m, nil
	}
	m.scores = &scores
	return m, cmd
}

// finish records a won game that is being abandoned by quit or restart.
func (m *Model) finish() {
	if m.state.Won {
		m.record()
	}
}

// record saves the current game once. Games without any score are skipped.
func (m *Model) record() {
	if m.recorded {
		return
	}
	m.recorded = true
	if m.store == nil || m.state.Score == 0 {
		return
	}

	entry := storage.ScoreEntry{
		GameID:  m.game.ID(),
		Score:   m.state.Score,
		MaxTile: m.state.MaxTile,
		Moves:   m.state.Moves,
		Won:     m.state.Won,
	}
	if _, err := m.store.SaveScore(entry); err != nil {
		m.logger.Error("cannot save score", "error", err)
		return
	}
	m.logger.Info("score saved", "score", entry.Score, "max_tile", entry.MaxTile, "won", entry.Won)
}

// State returns the game state after the last step.
func (m Model) State() core.GameState {
	return m.state
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scores != nil {
		return m.scores.View()
	}

	m.game.Render(m.screen)
	return lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(m.screen),
		helpStyle.Render(m.help.View(m.keys)),
	)
}

// Run starts the Bubble Tea program for a local game.
func Run(game *t2048.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
