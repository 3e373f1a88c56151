package snake

import "time"

// System is one step of the per-frame update.
type System func(w *World)

// Schedule is the fixed order systems run in each frame.
// Frame systems run every frame, Tick systems once per finished clock
// period and Late systems after both.
type Schedule struct {
	Frame []System
	Tick  []System
	Late  []System
}

// DefaultSchedule returns input, then movement, spawn and eating on each
// tick, then the scoreboard label.
func DefaultSchedule() Schedule {
	return Schedule{
		Frame: []System{ControlSystem},
		Tick:  []System{MovementSystem, AppleSpawnerSystem, EatingSystem},
		Late:  []System{ScoreboardSystem},
	}
}

// Update advances the world by one rendered frame of length dt with the
// keys sampled for that frame. A frame spanning several clock periods
// runs the tick systems once per period.
func (w *World) Update(dt time.Duration, keys Keys) {
	w.events = w.events[:0]
	w.keys = keys
	w.frames++

	w.Clock.Tick(dt)

	for _, sys := range w.schedule.Frame {
		sys(w)
	}
	if w.Clock.JustFinished() {
		for range w.Clock.TimesFinished() {
			for _, sys := range w.schedule.Tick {
				sys(w)
			}
		}
	}
	for _, sys := range w.schedule.Late {
		sys(w)
	}
}

// ControlSystem turns the head toward the pressed key unless that would
// reverse it on the spot.
func ControlSystem(w *World) {
	dir := MapDirection(w.keys, w.Head.Facing)
	if dir == w.Head.Facing || dir == w.Head.Facing.Opposite() {
		return
	}
	w.Head.Facing = dir
	w.emit(Event{Kind: EventTurned, Pos: w.Head.Pos, Facing: dir})
}

// MovementSystem advances the head one cell in its facing.
// There is no bounds check: the head may leave the play area.
func MovementSystem(w *World) {
	w.Head.Pos = w.Area.Step(w.Head.Pos, w.Head.Facing)
	w.emit(Event{Kind: EventMoved, Pos: w.Head.Pos, Facing: w.Head.Facing})
}

// AppleSpawnerSystem places an apple at a random cell when none exists.
func AppleSpawnerSystem(w *World) {
	if w.Apple != nil {
		return
	}

	pos := w.Area.randomPoint(w.rng)
	if w.avoidHead && w.Area.Cols*w.Area.Rows > 1 {
		for pos == w.Head.Pos {
			pos = w.Area.randomPoint(w.rng)
		}
	}

	w.Apple = &Apple{Pos: pos}
	w.emit(Event{Kind: EventAppleSpawned, Pos: pos})
}

// EatingSystem removes the apple and scores a point when the head sits on it.
// Every position comes from PlayArea.CellPos, so exact comparison is safe.
func EatingSystem(w *World) {
	if w.Apple == nil {
		return
	}
	if w.Apple.Pos.X != w.Head.Pos.X || w.Apple.Pos.Y != w.Head.Pos.Y {
		return
	}

	pos := w.Apple.Pos
	w.Apple = nil
	w.Score.Increment()
	w.emit(Event{Kind: EventAppleEaten, Pos: pos, Score: w.Score.Value()})
}

// ScoreboardSystem refreshes the displayed score label.
func ScoreboardSystem(w *World) {
	w.Label = Label(w.Score.Value())
}
