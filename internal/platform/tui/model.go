package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Frame rate bounds accepted by the model.
const (
	MinTickRate = 10
	MaxTickRate = 120
)

// Model is the Bubble Tea model that hosts a snake game.
type Model struct {
	game       *snake.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       *KeyMapper
	palette    Palette
	logger     *log.Logger
	player     string
	inputFrame core.InputFrame
	gameState  core.GameState
	lastFrame  time.Time
	quitting   bool
	scores     *scoreKeeper
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger that receives game events.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		m.logger = l
	}
}

// WithPlayer sets the name stored alongside scores.
func WithPlayer(name string) Option {
	return func(m *Model) {
		m.player = name
	}
}

// WithRenderer sets the lipgloss renderer used for colors.
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(m *Model) {
		m.palette = NewPalette(r)
	}
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *snake.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.TickRate = core.Clamp(cfg.TickRate, MinTickRate, MaxTickRate)

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		keys:       NewKeyMapper(),
		palette:    NewPalette(lipgloss.DefaultRenderer()),
		logger:     log.New(io.Discard),
		inputFrame: core.NewInputFrame(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.scores = &scoreKeeper{
		store:  store,
		logger: m.logger,
		gameID: game.ID(),
		player: m.player,
	}
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)
	m.logger.Debug("game started",
		"seed", m.config.Seed,
		"player", m.player,
		"period", m.game.World().Clock.Period(),
	)

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
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.gameState = m.game.State()
		m.saveScore()
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
// The world is kept; only the layout and the too-small check change.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)

	return m, nil
}

// handleTick advances the game by the real time since the previous frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastFrame, now)
	m.lastFrame = now

	if m.inputFrame.Has(core.ActionRestart) {
		m.gameState = m.game.State()
		m.saveScore()
		m.scores.reset()
		m.logger.Debug("game restarted", "score", m.gameState.Score)
	}

	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State
	m.scores.record(m.gameState.Score)
	m.logEvents()

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// logEvents forwards the world events of the last step to the logger.
func (m *Model) logEvents() {
	for _, e := range m.game.Events() {
		switch e.Kind {
		case snake.EventAppleEaten:
			m.logger.Info("apple eaten", "score", e.Score, "x", e.Pos.X, "y", e.Pos.Y)
		case snake.EventTurned:
			m.logger.Debug("turned", "facing", e.Facing)
		default:
			m.logger.Debug(e.Kind.String(), "x", e.Pos.X, "y", e.Pos.Y)
		}
	}
}

// saveScore stores the current score once per session.
// Snake has no game over, so a session ends on quit or restart.
func (m *Model) saveScore() {
	m.scores.record(m.gameState.Score)
	m.scores.flush()
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.palette.RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given game.
func Run(game *snake.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) error {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err := p.Run()
	return err
}
