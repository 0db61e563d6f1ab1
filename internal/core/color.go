package core

import (
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// Color is a named terminal palette color.
// Each value maps to an ANSI 256-color code; it satisfies image/color.Color so
// palette colors can be used as gradient control colors directly.
type Color uint8

// Predefined palette colors.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorBlack
)

var paletteCodes = [...]uint8{
	ColorDefault:       7,
	ColorRed:           1,
	ColorGreen:         2,
	ColorYellow:        3,
	ColorBlue:          4,
	ColorMagenta:       5,
	ColorCyan:          6,
	ColorWhite:         7,
	ColorBrightRed:     9,
	ColorBrightGreen:   10,
	ColorBrightYellow:  11,
	ColorBrightBlue:    12,
	ColorBrightMagenta: 13,
	ColorBrightCyan:    14,
	ColorBrightWhite:   15,
	ColorOrange:        208,
	ColorGray:          245,
	ColorBlack:         0,
}

var paletteNames = [...]string{
	ColorDefault:       "default",
	ColorRed:           "red",
	ColorGreen:         "green",
	ColorYellow:        "yellow",
	ColorBlue:          "blue",
	ColorMagenta:       "magenta",
	ColorCyan:          "cyan",
	ColorWhite:         "white",
	ColorBrightRed:     "bright-red",
	ColorBrightGreen:   "bright-green",
	ColorBrightYellow:  "bright-yellow",
	ColorBrightBlue:    "bright-blue",
	ColorBrightMagenta: "bright-magenta",
	ColorBrightCyan:    "bright-cyan",
	ColorBrightWhite:   "bright-white",
	ColorOrange:        "orange",
	ColorGray:          "gray",
	ColorBlack:         "black",
}

// Code returns the ANSI 256-color code of the palette entry.
// ColorDefault reports white (7) for interpolation; renderers leave it unstyled.
func (c Color) Code() uint8 {
	if int(c) >= len(paletteCodes) {
		return paletteCodes[ColorDefault]
	}
	return paletteCodes[c]
}

// String returns the palette name.
func (c Color) String() string {
	if int(c) >= len(paletteNames) {
		return "color(" + strconv.Itoa(int(c)) + ")"
	}
	return paletteNames[c]
}

// RGBA resolves the palette entry through the standard xterm color table.
func (c Color) RGBA() (r, g, b, a uint32) {
	return ANSI(c.Code()).RGBA()
}

// ANSI returns an indexed terminal color (0-255) as a color.Color.
func ANSI(code uint8) colorful.Color {
	return termenv.ConvertToRGB(termenv.ANSI256Color(code))
}

// ParsePalette looks up a palette color by name.
func ParsePalette(name string) (Color, bool) {
	for i, n := range paletteNames {
		if n == name {
			return Color(i), true
		}
	}
	return ColorDefault, false
}

// PaletteNames returns all palette names in declaration order.
func PaletteNames() []string {
	names := make([]string, len(paletteNames))
	copy(names, paletteNames[:])
	return names
}
