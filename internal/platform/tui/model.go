package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/alien-attack/internal/config"
	"github.com/vovakirdan/alien-attack/internal/core"
	"github.com/vovakirdan/alien-attack/internal/storage"
)

// Game is what the platform needs from a game.
// Games contain pure logic with no Bubble Tea dependency; the platform
// handles input mapping, timing, sound and rendering.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// Phased is implemented by games with a named loop phase.
// Phase changes are logged at debug level along with Keyvals.
type Phased interface {
	PhaseName() string
	Keyvals() []any
}

// SoundPlayer plays the cues produced by a simulation step.
type SoundPlayer interface {
	Play(cues ...core.Cue)
}

// Model is the Bubble Tea model running a game.
type Model struct {
	game       Game
	screen     *core.Screen
	store      *storage.Store
	sounds     SoundPlayer
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       *KeyMapper
	hold       *KeyHold
	pending    core.InputFrame // One-shot actions since the last tick
	gameState  core.GameState
	phase      string
	quitting   bool
	scoreSaved bool // Whether the score has been saved for this game over
	savedID    int64
}

// NewModel creates a new Bubble Tea model for the given game.
// store, sounds and logger may be nil.
func NewModel(game Game, store *storage.Store, sounds SoundPlayer, logger *log.Logger, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:   store,
		sounds:  sounds,
		logger:  logger,
		config:  cfg,
		keys:    NewKeyMapper(),
		hold:    NewKeyHold(cfg.TickRate, DefaultHoldFirst, DefaultHoldRepeat),
		pending: core.NewInputFrame(),
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.BlurMsg:
		m.hold.Release()
		return m, nil

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

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.logger.Info("quit", "level", m.gameState.Level, "score", m.gameState.TotalScore)
		return m, tea.Quit
	}

	switch {
	case action == core.ActionNone:
	case IsHeld(action):
		m.hold.Press(action)
	default:
		m.pending.Set(action)
	}

	return m, nil
}

// handleResize only resizes the screen; the world keeps its logical size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	in := core.NewInputFrame()
	m.hold.Fill(&in)
	for a := range m.pending.Actions {
		in.Set(a)
	}

	result := m.game.Step(in)
	prev := m.gameState
	m.gameState = result.State

	m.hold.Advance()
	m.pending.Clear()

	if m.sounds != nil && len(result.Cues) > 0 {
		m.sounds.Play(result.Cues...)
	}

	if m.gameState.Level > prev.Level && prev.Level > 0 {
		m.logger.Debug("level up", "level", m.gameState.Level, "total", m.gameState.TotalScore)
	}
	if m.gameState.Paused != prev.Paused {
		m.logger.Debug("pause toggled", "paused", m.gameState.Paused)
	}
	if p, ok := m.game.(Phased); ok {
		if name := p.PhaseName(); name != m.phase {
			m.logger.Debug("phase "+name, p.Keyvals()...)
			m.phase = name
		}
	}

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.logger.Info("planet destroyed", "level", m.gameState.Level, "score", m.gameState.TotalScore)
		m.saveScore()
	}

	if m.gameState.Finished {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScore records the finished run. Best effort: failures are logged.
func (m *Model) saveScore() {
	m.scoreSaved = true
	if m.store == nil || m.gameState.TotalScore <= 0 {
		return
	}

	id, err := m.store.SaveScore(m.game.ID(), m.gameState.TotalScore, m.gameState.Level)
	if err != nil {
		m.logger.Warn("score not saved", "err", err)
		return
	}
	m.savedID = id
	m.logger.Info("score saved", "id", id, "score", m.gameState.TotalScore, "level", m.gameState.Level)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, config.AppDirName, "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot not written", "err", err)
		return
	}
	kv := []any{"path", path}
	if p, ok := m.game.(Phased); ok {
		kv = append(kv, p.Keyvals()...)
	}
	m.logger.Info("screenshot saved", kv...)
}

// State returns the last state reported by the game.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given game.
func Run(game Game, store *storage.Store, sounds SoundPlayer, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, sounds, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)

	_, err := p.Run()
	return err
}
