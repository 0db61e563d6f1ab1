package gradient

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrNegativeLength is returned when a sample is requested for a negative
// number of cells.
var ErrNegativeLength = errors.New("gradient: negative length")

// Sampler expands control colors into per-cell colors.
// The zero Sampler is ready to use. It holds no mutable state and is safe for
// concurrent use.
type Sampler struct {
	// Default fills the result when no control colors are given.
	// Callers with an absent side should paint their plain color instead of
	// relying on this; nil means black.
	Default color.Color
}

// Sample expands controls using the zero Sampler.
func Sample(controls []color.Color, length int) ([]RGB, error) {
	return Sampler{}.Sample(controls, length)
}

// Sample returns exactly length colors spread over the control colors.
//
// Cell i is placed at t = i*(n-1)/(length-1) along the controls and blended
// linearly in RGB between the two neighbouring controls. A single cell takes
// the first control. The last of two or more cells is always the last control.
// Components are rounded half up.
func (s Sampler) Sample(controls []color.Color, length int) ([]RGB, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLength, length)
	}

	out := make([]RGB, length)
	if length == 0 {
		return out, nil
	}

	switch len(controls) {
	case 0:
		fill(out, ToRGB(s.Default))
		return out, nil
	case 1:
		fill(out, ToRGB(controls[0]))
		return out, nil
	}

	stops := make([]RGB, len(controls))
	for i, c := range controls {
		stops[i] = ToRGB(c)
	}

	if length == 1 {
		out[0] = stops[0]
		return out, nil
	}

	// t = num/den with num = i*(n-1), den = length-1; integers keep the
	// endpoint exact.
	segs := len(stops) - 1
	den := length - 1
	for i := range out {
		num := i * segs
		j := num / den
		if j > segs-1 {
			j = segs - 1
		}
		rem := num - j*den
		out[i] = lerp(stops[j], stops[j+1], rem, den)
	}
	return out, nil
}

// lerp blends a toward b by rem/den, rounding half up.
func lerp(a, b RGB, rem, den int) RGB {
	return RGB{
		R: lerpChannel(a.R, b.R, rem, den),
		G: lerpChannel(a.G, b.G, rem, den),
		B: lerpChannel(a.B, b.B, rem, den),
	}
}

func lerpChannel(a, b uint8, rem, den int) uint8 {
	if rem <= 0 {
		return a
	}
	if rem >= den {
		return b
	}
	v := (2*(int(a)*(den-rem)+int(b)*rem) + den) / (2 * den)
	return clampChannel(v)
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func fill(dst []RGB, c RGB) {
	for i := range dst {
		dst[i] = c
	}
}
