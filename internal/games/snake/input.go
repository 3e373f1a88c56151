package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Keys is the set of directional keys pressed during one frame.
type Keys struct {
	Left, Down, Up, Right bool
}

// KeysFromInput extracts the directional keys from an input frame.
func KeysFromInput(in core.InputFrame) Keys {
	return Keys{
		Left:  in.Has(core.ActionLeft),
		Down:  in.Has(core.ActionDown),
		Up:    in.Has(core.ActionUp),
		Right: in.Has(core.ActionRight),
	}
}

// MapDirection picks the candidate facing for this frame.
// When several keys are held the priority is Left, Down, Up, Right;
// with none held the current facing is kept.
func MapDirection(k Keys, current Direction) Direction {
	switch {
	case k.Left:
		return DirLeft
	case k.Down:
		return DirDown
	case k.Up:
		return DirUp
	case k.Right:
		return DirRight
	default:
		return current
	}
}
