package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code or an RGB value.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorPink
	ColorBrown
	ColorOrange
	ColorGray
)

// ParseColor maps a colour name used in config files to a Color.
// Unknown names map to ColorDefault.
func ParseColor(name string) Color {
	switch name {
	case "red":
		return ColorRed
	case "green":
		return ColorGreen
	case "yellow":
		return ColorYellow
	case "blue":
		return ColorBlue
	case "magenta":
		return ColorMagenta
	case "cyan":
		return ColorCyan
	case "white":
		return ColorWhite
	case "pink":
		return ColorPink
	case "brown":
		return ColorBrown
	case "orange":
		return ColorOrange
	case "grey", "gray":
		return ColorGray
	default:
		return ColorDefault
	}
}
