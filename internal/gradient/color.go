package gradient

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a concrete 24-bit color. Every sampled cell is an RGB value.
type RGB struct {
	R, G, B uint8
}

// RGBA implements color.Color. RGB values are always fully opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Hex returns the color in #rrggbb form.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c RGB) String() string {
	return c.Hex()
}

// ToRGB converts any color to its RGB triple.
// Palette colors resolve through their own RGBA method, so the sampler never
// needs to know how a named or indexed color is defined.
// A nil or fully transparent color converts to black.
func ToRGB(c color.Color) RGB {
	switch v := c.(type) {
	case nil:
		return RGB{}
	case RGB:
		return v
	}

	cf, ok := colorful.MakeColor(c)
	if !ok {
		return RGB{}
	}
	r, g, b := cf.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}
