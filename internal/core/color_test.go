package core

import (
	"image/color"
	"testing"
)

func rgb8(c color.Color) (uint8, uint8, uint8) {
	r, g, b, _ := c.RGBA()
	return uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)
}

func TestPaletteRGBA(t *testing.T) {
	tests := []struct {
		c       Color
		r, g, b uint8
	}{
		{ColorBlack, 0, 0, 0},
		{ColorBrightRed, 255, 0, 0},
		{ColorBrightWhite, 255, 255, 255},
		{ColorRed, 128, 0, 0},
		{ColorOrange, 255, 135, 0},
	}

	for _, tc := range tests {
		r, g, b := rgb8(tc.c)
		if r != tc.r || g != tc.g || b != tc.b {
			t.Errorf("%s RGBA = (%d, %d, %d), expected (%d, %d, %d)", tc.c, r, g, b, tc.r, tc.g, tc.b)
		}
	}
}

func TestANSIGrayRamp(t *testing.T) {
	// 232..255 is the xterm grayscale ramp, 8 + 10*n.
	r, g, b := rgb8(ANSI(232))
	if r != 8 || g != 8 || b != 8 {
		t.Errorf("ANSI(232) = (%d, %d, %d), expected (8, 8, 8)", r, g, b)
	}
}

func TestParsePalette(t *testing.T) {
	for _, name := range PaletteNames() {
		c, ok := ParsePalette(name)
		if !ok {
			t.Errorf("ParsePalette(%q) not found", name)
			continue
		}
		if c.String() != name {
			t.Errorf("ParsePalette(%q).String() = %q", name, c.String())
		}
	}

	if _, ok := ParsePalette("chartreuse"); ok {
		t.Error("ParsePalette should reject unknown names")
	}
}

func TestPaletteOutOfRange(t *testing.T) {
	c := Color(200)
	if c.Code() != ColorDefault.Code() {
		t.Errorf("Code() for unknown palette entry = %d, expected default", c.Code())
	}
	if c.String() != "color(200)" {
		t.Errorf("String() = %q, expected color(200)", c.String())
	}
}
