package snake

import (
	"fmt"
	"math/rand"
	"time"
)

// Head is the snake head: a grid-aligned position and a facing.
type Head struct {
	Pos    Vec2
	Facing Direction
}

// Apple is a single piece of food. At most one exists at a time.
type Apple struct {
	Pos Vec2
}

// Scoreboard counts eaten apples. It never decreases within a session.
type Scoreboard struct {
	score int
}

// Increment adds one point.
func (s *Scoreboard) Increment() {
	s.score++
}

// Value returns the current score.
func (s Scoreboard) Value() int {
	return s.score
}

// Label formats a score for display.
func Label(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// Settings are the fixed parameters of a session.
type Settings struct {
	Cols       int
	Rows       int
	CellSize   float64
	TickPeriod time.Duration
	StartCol   int // Head start cell, relative to the centre cell
	StartRow   int
	Facing     Direction
	AvoidHead  bool // Re-roll apple spawns that would land on the head
	Seed       int64
}

// DefaultSettings returns the classic 13x13 board with a half-second tick.
func DefaultSettings() Settings {
	return Settings{
		Cols:       DefaultGridCells,
		Rows:       DefaultGridCells,
		CellSize:   DefaultCellSize,
		TickPeriod: DefaultTickPeriod,
		Facing:     DirRight,
	}
}

// World holds the entire game state. Systems receive it explicitly and
// each field has exactly one writing system.
type World struct {
	Area  PlayArea
	Head  Head
	Apple *Apple // nil when no apple exists
	Score Scoreboard
	Clock *Clock
	Label string

	keys      Keys
	rng       *rand.Rand
	avoidHead bool
	schedule  Schedule
	events    []Event
	frames    uint64
}

// NewWorld creates a world with the head at its start cell and no apple.
func NewWorld(s Settings) *World {
	area := NewPlayArea(s.Cols, s.Rows, s.CellSize)
	return &World{
		Area: area,
		Head: Head{
			Pos: Vec2{
				X: Position(s.StartCol, s.CellSize),
				Y: Position(s.StartRow, s.CellSize),
			},
			Facing: s.Facing,
		},
		Clock:     NewClock(s.TickPeriod),
		Label:     Label(0),
		rng:       rand.New(rand.NewSource(s.Seed)),
		avoidHead: s.AvoidHead,
		schedule:  DefaultSchedule(),
	}
}

// Events returns what happened during the last Update.
// The slice is reused by the next Update.
func (w *World) Events() []Event {
	return w.events
}

// Frames returns how many times Update has run.
func (w *World) Frames() uint64 {
	return w.frames
}

func (w *World) emit(e Event) {
	w.events = append(w.events, e)
}

// EventKind identifies a diagnostic world event.
type EventKind int

const (
	EventTurned EventKind = iota
	EventMoved
	EventAppleSpawned
	EventAppleEaten
)

func (k EventKind) String() string {
	switch k {
	case EventTurned:
		return "turned"
	case EventMoved:
		return "moved"
	case EventAppleSpawned:
		return "apple spawned"
	case EventAppleEaten:
		return "apple eaten"
	default:
		return "unknown"
	}
}

// Event is a diagnostic record of a state change. Hosts may log them;
// nothing in the game depends on them.
type Event struct {
	Kind   EventKind
	Pos    Vec2
	Facing Direction
	Score  int
}
