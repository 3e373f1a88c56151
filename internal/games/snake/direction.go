package snake

import (
	"fmt"
	"strings"
)

// Direction is the facing of the snake head.
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirRight:
		return DirLeft
	case DirDown:
		return DirUp
	default:
		return DirRight
	}
}

// Delta returns the cell step in this direction. Y grows upward.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, 1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, -1
	default:
		return -1, 0
	}
}

// Offset returns the world-space step of one cell in this direction.
func (d Direction) Offset(cellSize float64) Vec2 {
	dx, dy := d.Delta()
	return Vec2{X: Position(dx, cellSize), Y: Position(dy, cellSize)}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}

// ParseDirection converts a name like "left" into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return DirUp, nil
	case "right":
		return DirRight, nil
	case "down":
		return DirDown, nil
	case "left":
		return DirLeft, nil
	}
	return DirRight, fmt.Errorf("snake: unknown direction %q", s)
}
