package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nbyadav/barrage/internal/core"
	"github.com/nbyadav/barrage/internal/game"
	"github.com/nbyadav/barrage/internal/storage"
)

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	store      *storage.Store
	keymap     *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	matchStart time.Time
	quitting   bool
	matchSaved bool // Whether current match outcome has been persisted
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	g.Reset(cfg)

	return Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		keymap:     NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		matchStart: time.Now(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keymap.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// A resize changes the battlefield dimensions, so the match restarts.
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.matchStart = time.Now()
	m.matchSaved = false

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	prevOver := m.gameState.MatchOver
	m.gameState = result.State

	// Persist the match outcome once per match end
	if m.gameState.MatchOver && !m.matchSaved {
		m.saveMatch()
		m.matchSaved = true
	}

	// A new match started (via NewMatch action) after the previous ended
	if prevOver && !m.gameState.MatchOver {
		m.matchStart = time.Now()
		m.matchSaved = false
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveMatch records the finished match to storage.
func (m *Model) saveMatch() {
	if m.store == nil {
		return
	}

	mt := m.game.Match()
	rec := storage.MatchRecord{
		Winner:       m.gameState.Winner,
		Turns:        mt.Turn(),
		P1Damage:     mt.Tank(1).DamageDealt,
		P2Damage:     mt.Tank(2).DamageDealt,
		AIOpponent:   m.gameState.AIEnabled,
		DurationSecs: int(time.Since(m.matchStart).Seconds()),
	}

	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveMatch(rec)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".barrage", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(g, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
