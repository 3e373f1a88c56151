package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Palette maps core.Color to lipgloss styles for one output.
type Palette map[core.Color]lipgloss.Style

// NewPalette builds the color styles using the given renderer.
// SSH sessions pass a per-session renderer so color support is detected
// from the client terminal rather than the server's stdout.
func NewPalette(r *lipgloss.Renderer) Palette {
	return Palette{
		core.ColorDefault: r.NewStyle(),
		core.ColorRed:     r.NewStyle().Foreground(lipgloss.Color("9")),
		core.ColorGreen:   r.NewStyle().Foreground(lipgloss.Color("10")),
		core.ColorYellow:  r.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		core.ColorWhite:   r.NewStyle().Foreground(lipgloss.Color("15")),
		core.ColorGray:    r.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (p Palette) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			// Collect consecutive cells with same color
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := p[startColor]
			if !ok {
				style = p[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
