package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// ModelConfig contains what a Model needs besides its collaborators.
type ModelConfig struct {
	Rules           engine.Config
	Player          string             // Name recorded on the leaderboard
	LeaderboardSize int                // Entries shown on game over
	Renderer        *lipgloss.Renderer // nil = default renderer
}

// Model is the Bubble Tea model for one 2048 session.
// Every key press is handled synchronously in Update, so the controller
// never sees concurrent calls.
type Model struct {
	ctrl    *engine.Controller
	state   engine.GameState
	store   *storage.Store
	logger  *log.Logger
	keys    KeyMap
	help    help.Model
	styles  Styles
	player  string
	limit   int
	leaders []storage.ScoreEntry
	savedID int64 // Leaderboard row of the current game, 0 if unsaved

	width    int
	height   int
	recorded bool // Whether the current game has been saved to the leaderboard
	quitting bool
}

// NewModel creates a model and starts the first game.
// store and logger may be nil.
func NewModel(cfg ModelConfig, store *storage.Store, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Rules.Seed == 0 {
		cfg.Rules.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.LeaderboardSize <= 0 {
		cfg.LeaderboardSize = 10
	}
	if cfg.Player == "" {
		cfg.Player = "player"
	}

	ctrl := engine.NewController(cfg.Rules)

	m := Model{
		ctrl:   ctrl,
		state:  ctrl.NewGame(),
		store:  store,
		logger: logger,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		styles: NewStyles(cfg.Renderer),
		player: cfg.Player,
		limit:  cfg.LeaderboardSize,
	}
	m.logger.Debug("game started", "player", m.player, "seed", cfg.Rules.Seed)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// State returns the last game snapshot.
func (m Model) State() engine.GameState {
	return m.state
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.NewGame):
		m.state = m.ctrl.NewGame()
		m.recorded = false
		m.leaders = nil
		m.savedID = 0
		m.logger.Debug("new game", "player", m.player, "best", m.state.HighScore)
		return m, nil
	}

	dir, ok := m.keys.Direction(msg)
	if !ok || m.state.GameOver {
		return m, nil
	}

	m.state = m.ctrl.ApplyMove(dir)
	if m.state.GameOver {
		m.recordScore()
	}

	return m, nil
}

// recordScore saves a finished game once and refreshes the leaderboard.
func (m *Model) recordScore() {
	if m.recorded {
		return
	}
	m.recorded = true

	m.logger.Info("game over",
		"player", m.player,
		"score", m.state.Score,
		"max_tile", m.state.MaxTile,
		"moves", m.state.Moves,
	)

	if m.store == nil || m.state.Score == 0 {
		return
	}

	entry := storage.ScoreEntry{
		Player:  m.player,
		Score:   m.state.Score,
		MaxTile: m.state.MaxTile,
		Moves:   m.state.Moves,
	}
	id, err := m.store.SaveScore(entry)
	if err != nil {
		m.logger.Warn("could not save score", "error", err)
		return
	}
	m.savedID = id

	leaders, err := m.store.TopScores(m.limit)
	if err != nil {
		m.logger.Warn("could not load leaderboard", "error", err)
		return
	}
	m.leaders = leaders
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	parts := []string{
		m.styles.renderHUD(m.state),
		m.styles.renderBoard(m.state),
	}
	if m.state.GameOver {
		parts = append(parts, m.styles.renderGameOver(m.state, m.leaders, m.savedID))
	}
	parts = append(parts, m.help.View(m.keys))

	content := lipgloss.JoinVertical(lipgloss.Center, parts...)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// Run starts the Bubble Tea program for a local session.
func Run(cfg ModelConfig, store *storage.Store, logger *log.Logger) error {
	model := NewModel(cfg, store, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
