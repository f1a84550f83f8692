package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rebatedor/internal/core"
)

func fg(code string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}

// Brick rows cycle yellow, blue, pink, green and brown; walls are gray.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     fg("1"),
	core.ColorGreen:   fg("2"),
	core.ColorYellow:  fg("3"),
	core.ColorBlue:    fg("4"),
	core.ColorMagenta: fg("5"),
	core.ColorCyan:    fg("6"),
	core.ColorWhite:   fg("7"),
	core.ColorPink:    fg("212"),
	core.ColorBrown:   fg("130"),
	core.ColorOrange:  fg("208"),
	core.ColorGray:    fg("245"),
}

func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen turns the game's cell buffer into the frame Bubble Tea prints.
// Each run of same-coloured cells in a row is styled once.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}

		current := core.ColorDefault
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if x > 0 && cell.Color != current {
				sb.WriteString(styleFor(current).Render(run.String()))
				run.Reset()
			}
			current = cell.Color
			run.WriteRune(cell.Rune)
		}
		if run.Len() > 0 {
			sb.WriteString(styleFor(current).Render(run.String()))
			run.Reset()
		}
	}
	return sb.String()
}
