package core

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a terminal color: the terminal's default color, or a
// palette index 0-255.
type Color int

// ColorDefault is the terminal's configured default color.
const ColorDefault Color = -1

// The 8 base palette colors.
const (
	ColorBlack Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

// ColorBright returns the high-intensity variant of one of the 8 base
// palette colors.
func ColorBright(c Color) Color {
	if c < ColorBlack || c > ColorWhite {
		return c
	}
	return c + 8
}

// IsDefault returns true if this is the terminal's default color.
func (c Color) IsDefault() bool { return c < 0 }

// Equals returns true if two colors are equal. All negative values
// denote the default color.
func (c Color) Equals(other Color) bool {
	if c.IsDefault() || other.IsDefault() {
		return c.IsDefault() == other.IsDefault()
	}
	return c == other
}

// String returns a string representation of the color.
func (c Color) String() string {
	if c.IsDefault() {
		return "default"
	}
	return fmt.Sprintf("idx(%d)", int(c))
}

// cubeLevels are the channel values of the 6x6x6 color cube occupying
// palette indices 16-231.
var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

// palette256 holds the RGB values of palette indices 16-255. The first
// 16 entries are theme-dependent and deliberately excluded from
// quantization.
var palette256 [240]colorful.Color

func init() {
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				palette256[r*36+g*6+b] = colorful.Color{
					R: float64(cubeLevels[r]) / 255,
					G: float64(cubeLevels[g]) / 255,
					B: float64(cubeLevels[b]) / 255,
				}
			}
		}
	}
	for i := 0; i < 24; i++ {
		v := float64(8+10*i) / 255
		palette256[216+i] = colorful.Color{R: v, G: v, B: v}
	}
}

// ColorRGB returns the palette color closest to the given RGB value,
// chosen from indices 16-255 by perceptual (Lab) distance. The first
// 16 indices are skipped because their values depend on the terminal
// theme.
func ColorRGB(r, g, b uint8) Color {
	want := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}

	best := 0
	bestDist := want.DistanceLab(palette256[0])
	for i := 1; i < len(palette256); i++ {
		if d := want.DistanceLab(palette256[i]); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return Color(16 + best)
}
