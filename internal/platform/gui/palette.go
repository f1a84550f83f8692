package gui

import (
	"image/color"

	"github.com/vovakirdan/rebatedor/internal/core"
)

var palette = map[core.Color]color.RGBA{
	core.ColorDefault: {R: 220, G: 220, B: 220, A: 255},
	core.ColorRed:     {R: 220, G: 50, B: 47, A: 255},
	core.ColorGreen:   {R: 80, G: 200, B: 80, A: 255},
	core.ColorYellow:  {R: 240, G: 220, B: 60, A: 255},
	core.ColorBlue:    {R: 60, G: 110, B: 230, A: 255},
	core.ColorMagenta: {R: 200, G: 60, B: 200, A: 255},
	core.ColorCyan:    {R: 60, G: 200, B: 220, A: 255},
	core.ColorWhite:   {R: 255, G: 255, B: 255, A: 255},
	core.ColorPink:    {R: 255, G: 135, B: 200, A: 255},
	core.ColorBrown:   {R: 150, G: 90, B: 40, A: 255},
	core.ColorOrange:  {R: 255, G: 140, B: 0, A: 255},
	core.ColorGray:    {R: 128, G: 128, B: 128, A: 255},
}

// Palette returns the RGBA value for a core colour.
func Palette(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[core.ColorDefault]
}
