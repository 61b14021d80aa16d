package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-whale/internal/core"
)

// palette maps each cell role to its terminal style.
var palette = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorSea:     lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorWhale:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
	core.ColorStunned: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorKrill:   lipgloss.NewStyle().Foreground(lipgloss.Color("218")),
	core.ColorBoat:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorHarpoon: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorGood:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
	core.ColorBad:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorFrame:   lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := palette[color]
			if !ok {
				style = palette[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
