package snake

import "time"

// Snapshot captures the game state for determinism testing and debugging.
type Snapshot struct {
	Frames   uint64
	Ticks    uint64
	Phase    time.Duration // Time accumulated toward the next tick
	Score    int
	Label    string
	HeadX    float64
	HeadY    float64
	Facing   Direction
	HasApple bool
	AppleX   float64
	AppleY   float64
	Paused   bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	w := g.world
	s := Snapshot{
		Frames: w.Frames(),
		Ticks:  w.Clock.Total(),
		Phase:  w.Clock.Elapsed(),
		Score:  w.Score.Value(),
		Label:  w.Label,
		HeadX:  w.Head.Pos.X,
		HeadY:  w.Head.Pos.Y,
		Facing: w.Head.Facing,
		Paused: g.paused,
	}
	if w.Apple != nil {
		s.HasApple = true
		s.AppleX = w.Apple.Pos.X
		s.AppleY = w.Apple.Pos.Y
	}
	return s
}
