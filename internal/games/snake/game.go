// Package snake implements a tick-driven Snake: a head that advances one
// cell per clock period, a single apple and a score. The package holds pure
// game logic; timing, input and terminal output are supplied by the host.
package snake

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// GameID identifies the game in score storage.
const GameID = "snake"

const (
	hudHeight = 2 // Title/score line plus separator
	cellWidth = 2 // Terminal columns per grid cell, so cells look square
)

// Game adapts a World to the platform: it owns pause/restart handling and
// draws the world into a screen buffer.
type Game struct {
	title    string
	settings Settings
	world    *World
	events   []Event

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool
}

// New creates a game from a validated configuration.
func New(cfg config.SnakeConfig) *Game {
	return &Game{
		title:    cfg.Window.Title,
		settings: SettingsFromConfig(cfg),
	}
}

// SettingsFromConfig converts the YAML configuration into world settings.
func SettingsFromConfig(cfg config.SnakeConfig) Settings {
	facing, err := ParseDirection(cfg.Head.Facing)
	if err != nil {
		facing = DirRight
	}
	return Settings{
		Cols:       cfg.Grid.Cols,
		Rows:       cfg.Grid.Rows,
		CellSize:   cfg.Grid.CellSize,
		TickPeriod: cfg.Clock.Period,
		StartCol:   cfg.Head.StartCol,
		StartRow:   cfg.Head.StartRow,
		Facing:     facing,
		AvoidHead:  cfg.Apple.AvoidHead,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Reset starts a fresh session with the given seed and screen size.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.settings.Seed = cfg.Seed
	g.world = NewWorld(g.settings)
	g.events = nil
	g.paused = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the screen size without touching the world.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	minW, minH := g.RequiredSize()
	g.tooSmall = width < minW || height < minH
}

// RequiredSize returns the smallest screen that fits the board.
func (g *Game) RequiredSize() (width, height int) {
	return g.settings.Cols*cellWidth + 2, g.settings.Rows + 2 + hudHeight
}

// World exposes the underlying world state.
func (g *Game) World() *World {
	return g.world
}

// Events returns the world events produced by the last Step.
func (g *Game) Events() []Event {
	return g.events
}

// Step advances the game by one rendered frame that lasted dt.
func (g *Game) Step(input core.InputFrame, dt time.Duration) core.StepResult {
	g.events = nil

	if input.Has(core.ActionRestart) {
		g.Reset(core.RuntimeConfig{
			Seed:    g.world.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	// Time spent paused or undersized is dropped, not banked.
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.world.Update(dt, KeysFromInput(input))
	g.events = g.world.Events()

	return core.StepResult{
		State: g.State(),
		Ticks: g.world.Clock.TimesFinished(),
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.world.Score.Value(),
		Paused: g.paused,
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		minW, minH := g.RequiredSize()
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", minW, minH))
		return
	}

	field := g.fieldRect(dst)
	dst.DrawBoxColored(field, core.ColorGray)

	if g.world.Apple != nil {
		g.drawCell(dst, field, g.world.Apple.Pos, core.ColorRed)
	}
	g.drawCell(dst, field, g.world.Head.Pos, core.ColorGreen)

	if g.paused {
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the title and score label above the board.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0, g.title, core.ColorYellow)
	dst.DrawText(len([]rune(g.title))+3, 0, g.world.Label)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// fieldRect returns the screen rectangle of the board including its frame.
func (g *Game) fieldRect(dst *core.Screen) core.Rect {
	w, h := g.RequiredSize()
	h -= hudHeight
	return core.NewRect((dst.Width()-w)/2, hudHeight, w, h)
}

// drawCell paints one grid cell. Cells outside the board are clipped.
func (g *Game) drawCell(dst *core.Screen, field core.Rect, pos Vec2, c core.Color) {
	if !g.world.Area.Contains(pos) {
		return
	}
	col, row := g.world.Area.CellOf(pos)

	// World Y grows upward, screen rows grow downward.
	x := field.X + 1 + col*cellWidth
	y := field.Y + 1 + (g.settings.Rows - 1 - row)
	for i := range cellWidth {
		dst.SetColored(x+i, y, '█', c)
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len(line1), len(line2)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	_, cy := box.Center()
	dst.DrawTextCentered(cy-1, line1, core.ColorWhite)
	dst.DrawTextCentered(cy+1, line2, core.ColorGray)
}
