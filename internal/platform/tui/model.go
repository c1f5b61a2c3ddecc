package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/quantum-jumper/internal/audio"
	"github.com/vovakirdan/quantum-jumper/internal/core"
	"github.com/vovakirdan/quantum-jumper/internal/registry"
	"github.com/vovakirdan/quantum-jumper/internal/sim"
	"github.com/vovakirdan/quantum-jumper/internal/storage"
)

// Deps carries the collaborators shared by every screen of a session.
type Deps struct {
	Env    registry.Env
	Store  *storage.Store // records screen; nil hides stored data
	Audio  audio.Player
	Logger *log.Logger
	Hold   HoldConfig
}

func (d Deps) withDefaults() Deps {
	if d.Audio == nil {
		d.Audio = audio.Silent{}
	}
	if d.Logger == nil {
		d.Logger = log.New(io.Discard)
	}
	if d.Hold == (HoldConfig{}) {
		d.Hold = DefaultHoldConfig()
	}
	return d
}

// eventSource is implemented by games that expose the last tick's events.
type eventSource interface {
	Events() []sim.Event
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// GameModel is the Bubble Tea model for running a game.
type GameModel struct {
	game       registry.Game
	deps       Deps
	screen     *core.Screen
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	held       *heldKeys
	inputFrame core.InputFrame
	gameState  core.GameState
	help       help.Model
	now        func() time.Time
	tickID     uint64
	standalone bool // leaving the game's menu exits the program
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for game. The bottom row of the terminal
// is reserved for the key help line.
func NewGameModel(game registry.Game, deps Deps, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	deps = deps.withDefaults()

	h := help.New()
	h.Width = cfg.ScreenW

	return GameModel{
		game:       game,
		deps:       deps,
		screen:     core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-1)),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		held:       newHeldKeys(deps.Hold),
		inputFrame: core.NewInputFrame(),
		help:       h,
		now:        time.Now,
		tickID:     nextTickID(),
	}
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.tickID)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The world keeps its logical size; only the view changes.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(1, msg.Height-1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.ID != m.tickID {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.IsScreenshot(msg) {
		if path, err := m.saveScreenshot(); err != nil {
			m.deps.Logger.Warn("screenshot failed", "error", err)
		} else {
			m.deps.Logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action, isExit := m.keyMapper.MapKey(msg)
	if isExit {
		m.quitting = true
		return m, tea.Quit
	}

	// In the game's own menu, quit and back leave the game.
	if m.gameState.InMenu && (action == core.ActionQuit || action == core.ActionBack) {
		m.backToMenu = true
		m.held.Release()
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case action == core.ActionNone:
	case isHoldable(action):
		m.held.Press(action, m.now())
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	m.held.Apply(&m.inputFrame, m.now())

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	for _, cue := range result.Cues {
		m.deps.Audio.Play(cue)
	}
	m.logEvents()

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate, m.tickID)
}

// logEvents reports the notable events of the last tick.
func (m GameModel) logEvents() {
	src, ok := m.game.(eventSource)
	if !ok {
		return
	}
	logger := m.deps.Logger
	for _, ev := range src.Events() {
		switch ev.Kind {
		case sim.EventLevelLoaded:
			logger.Info("level loaded", "game", m.game.ID(), "level", ev.Level)
		case sim.EventLevelComplete:
			logger.Info("level complete", "game", m.game.ID(), "level", ev.Level, "shards", ev.Amount)
		case sim.EventVictory:
			logger.Info("victory", "mode", ev.Mode)
		case sim.EventRespawn:
			logger.Debug("respawn", "level", ev.Level)
		case sim.EventBoundaryExceeded:
			logger.Debug("boundary exceeded", "level", ev.Level)
		case sim.EventProgressError:
			logger.Warn("progress not saved", "mode", ev.Mode, "level", ev.Level, "error", ev.Err)
		}
	}
}

// saveScreenshot dumps the current screen under ~/.quantum/screenshots.
func (m GameModel) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".quantum", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), m.now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	return path, os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// IsQuitting returns true if the user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user left the game from its menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// State returns the game state after the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Run plays a single game until the user leaves it.
func Run(game registry.Game, deps Deps, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, deps, cfg)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
