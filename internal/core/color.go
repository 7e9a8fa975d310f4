package core

import "github.com/lucasb-eyer/go-colorful"

// Color represents a foreground color for a screen cell.
// The value is an ANSI 256-color code, except ColorDefault which leaves
// the terminal's default foreground.
type Color uint8

// Predefined colors for the HUD and board chrome.
const (
	ColorDefault       Color = 0
	ColorRed           Color = 1
	ColorGreen         Color = 2
	ColorYellow        Color = 3
	ColorBlue          Color = 4
	ColorMagenta       Color = 5
	ColorCyan          Color = 6
	ColorWhite         Color = 7
	ColorBrightRed     Color = 9
	ColorBrightGreen   Color = 10
	ColorBrightYellow  Color = 11
	ColorBrightBlue    Color = 12
	ColorBrightMagenta Color = 13
	ColorBrightCyan    Color = 14
	ColorBrightWhite   Color = 15
	ColorOrange        Color = 208
	ColorDimGray       Color = 238
	ColorGray          Color = 245
)

// ansiCube are the channel levels of the xterm 6x6x6 color cube.
var ansiCube = [6]uint8{0, 95, 135, 175, 215, 255}

// ansiPalette holds codes 16-255 as colorful colors, indexed by code-16.
var ansiPalette = buildANSIPalette()

func buildANSIPalette() []colorful.Color {
	p := make([]colorful.Color, 0, 240)
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				p = append(p, rgb8(ansiCube[r], ansiCube[g], ansiCube[b]))
			}
		}
	}
	for i := 0; i < 24; i++ {
		v := uint8(8 + 10*i)
		p = append(p, rgb8(v, v, v))
	}
	return p
}

func rgb8(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// ColorFromRGB returns the 256-color code perceptually closest to (r, g, b).
// The 16 theme colors are skipped since terminals redefine them.
func ColorFromRGB(r, g, b uint8) Color {
	target := rgb8(r, g, b)
	best := 0
	bestDist := target.DistanceLab(ansiPalette[0])
	for i := 1; i < len(ansiPalette); i++ {
		if d := target.DistanceLab(ansiPalette[i]); d < bestDist {
			best, bestDist = i, d
		}
	}
	return Color(16 + best)
}
