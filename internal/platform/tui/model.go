package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-puzzle/internal/core"
	"github.com/vovakirdan/tui-puzzle/internal/registry"
	"github.com/vovakirdan/tui-puzzle/internal/storage"
)

// Options configures a game model.
type Options struct {
	Store    *storage.Store     // Optional; scores and saves are skipped without it
	Config   core.RuntimeConfig // Screen size, tick rate and seed
	Slot     string             // Save slot; defaults to the game ID
	Logger   *log.Logger        // Optional
	Renderer *ScreenRenderer    // Optional; defaults to the local terminal
}

// Model is the Bubble Tea model for playing one puzzle.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	slot       string
	logger     *log.Logger
	renderer   *ScreenRenderer
	keys       GameKeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	status     string
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for the current solve
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options) Model {
	cfg := opts.Config
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Slot == "" {
		opts.Slot = game.ID()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if cfg.Logger == nil {
		cfg.Logger = opts.Logger
	}
	if opts.Renderer == nil {
		opts.Renderer = NewScreenRenderer(nil)
	}

	m := Model{
		game:       game,
		store:      opts.Store,
		config:     cfg,
		slot:       opts.Slot,
		logger:     opts.Logger,
		renderer:   opts.Renderer,
		keys:       DefaultGameKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
	m.help.Width = cfg.ScreenW
	m.screen = core.NewScreen(cfg.ScreenW, m.screenHeight())
	return m
}

// screenHeight is the window height left for the game after the help bar.
func (m Model) screenHeight() int {
	h := 1
	if m.help.ShowAll {
		for _, col := range m.keys.FullHelp() {
			h = max(h, len(col))
		}
	}
	return max(m.config.ScreenH-h, 0)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)
	m.logger.Debug("game started", "game", m.game.ID(), "seed", m.config.Seed)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.inputFrame.SetClick(msg.X, msg.Y)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.config.ScreenW, m.screenHeight())
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.backToMenu = true
		return m, tea.Quit
	case core.ActionSave:
		m.save()
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events. The game keeps its state and
// lays itself out again on the next render.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, m.screenHeight())
	return m, nil
}

// handleTick applies the input collected since the last tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Save score once per solve
	if !m.gameState.GameOver {
		m.scoreSaved = false
	} else if !m.scoreSaved && m.gameState.Score > 0 {
		m.saveScore()
		m.scoreSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

func (m *Model) saveScore() {
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score, m.gameState.Moves); err != nil {
		m.logger.Error("cannot save score", "game", m.game.ID(), "err", err)
		m.status = "Score not saved"
		return
	}
	m.logger.Info("score saved", "game", m.game.ID(), "score", m.gameState.Score, "moves", m.gameState.Moves)
	m.status = "Score saved"
}

// save stores the puzzle in the model's slot.
func (m *Model) save() {
	saver, ok := m.game.(registry.Saver)
	if !ok {
		m.status = "This game cannot be saved"
		return
	}
	if m.store == nil {
		m.status = "No database, nothing saved"
		return
	}

	rows, cols, state, err := saver.SaveState()
	if err == nil {
		err = m.store.SaveState(m.slot, m.game.ID(), rows, cols, state)
	}
	if err != nil {
		m.logger.Error("cannot save puzzle", "game", m.game.ID(), "slot", m.slot, "err", err)
		m.status = "Save failed"
		return
	}
	m.logger.Info("puzzle saved", "game", m.game.ID(), "slot", m.slot)
	m.status = fmt.Sprintf("Saved to slot %q", m.slot)
}

var (
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
)

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	bar := helpStyle.Render(m.help.View(m.keys))
	if m.status != "" {
		bar = statusStyle.Render(m.status) + "  " + bar
	}
	return m.renderer.Render(m.screen) + "\n" + bar
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// GameState returns the state seen at the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game. It reports whether
// the player asked to go back to the menu rather than quit.
func Run(game registry.Game, opts Options) (backToMenu bool, err error) {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks pick pieces
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if m, ok := final.(Model); ok {
		return m.BackToMenu(), nil
	}
	return false, nil
}
