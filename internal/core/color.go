package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI color codes in the platform renderer.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorWhite
	ColorGray
)
