// Package gradient models per-side border gradients and expands a list of
// control colors into one color per border cell.
package gradient

import (
	"image/color"
	"strings"
)

// SideID names one edge of a rectangular border.
type SideID int

const (
	Top SideID = iota
	Left
	Right
	Bottom
)

// Sides returns all border sides in drawing order.
func Sides() []SideID {
	return []SideID{Top, Left, Right, Bottom}
}

// String returns the lower-case side name.
func (s SideID) String() string {
	switch s {
	case Top:
		return "top"
	case Left:
		return "left"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Side holds the control colors for one border side.
// The zero Side is absent: the side has no gradient and is drawn in its plain
// color. A Side built with Stops is present even when it holds no colors.
type Side struct {
	colors  []color.Color
	present bool
}

// Stops returns a present Side with the given control colors in visual order.
// The slice is copied.
func Stops(colors ...color.Color) Side {
	c := make([]color.Color, len(colors))
	copy(c, colors)
	return Side{colors: c, present: true}
}

// NoGradient returns an absent Side.
func NoGradient() Side {
	return Side{}
}

// Present reports whether a gradient is configured for the side.
func (s Side) Present() bool {
	return s.present
}

// Len returns the number of control colors.
func (s Side) Len() int {
	return len(s.colors)
}

// Colors returns a copy of the control colors, or nil when absent.
func (s Side) Colors() []color.Color {
	if !s.present {
		return nil
	}
	c := make([]color.Color, len(s.colors))
	copy(c, s.colors)
	return c
}

// Equal reports whether both sides have the same presence and the same
// control colors, compared by RGB value in order.
func (s Side) Equal(other Side) bool {
	if s.present != other.present || len(s.colors) != len(other.colors) {
		return false
	}
	for i := range s.colors {
		if ToRGB(s.colors[i]) != ToRGB(other.colors[i]) {
			return false
		}
	}
	return true
}

// Key returns a string that is equal for equal sides.
// "-" is absent, "[]" is present with no colors.
func (s Side) Key() string {
	if !s.present {
		return "-"
	}
	var sb strings.Builder
	sb.Grow(2 + len(s.colors)*8)
	sb.WriteByte('[')
	for i, c := range s.colors {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(ToRGB(c).Hex())
	}
	sb.WriteByte(']')
	return sb.String()
}

// BorderGradients defines optional gradients for each side of a border.
//
// Top and Bottom run left to right, Left and Right run top to bottom.
// The zero value has no gradients. Values are immutable once built and may be
// copied and shared freely between render passes.
type BorderGradients struct {
	Top    Side
	Left   Side
	Right  Side
	Bottom Side
}

// WithTop returns a copy with the top side replaced.
func (g BorderGradients) WithTop(s Side) BorderGradients {
	g.Top = s
	return g
}

// WithLeft returns a copy with the left side replaced.
func (g BorderGradients) WithLeft(s Side) BorderGradients {
	g.Left = s
	return g
}

// WithRight returns a copy with the right side replaced.
func (g BorderGradients) WithRight(s Side) BorderGradients {
	g.Right = s
	return g
}

// WithBottom returns a copy with the bottom side replaced.
func (g BorderGradients) WithBottom(s Side) BorderGradients {
	g.Bottom = s
	return g
}

// With returns a copy with the given side replaced.
func (g BorderGradients) With(id SideID, s Side) BorderGradients {
	switch id {
	case Top:
		g.Top = s
	case Left:
		g.Left = s
	case Right:
		g.Right = s
	case Bottom:
		g.Bottom = s
	}
	return g
}

// Side returns the gradient for the given side.
func (g BorderGradients) Side(id SideID) Side {
	switch id {
	case Top:
		return g.Top
	case Left:
		return g.Left
	case Right:
		return g.Right
	case Bottom:
		return g.Bottom
	default:
		return Side{}
	}
}

// Equal reports whether all four sides are equal.
func (g BorderGradients) Equal(other BorderGradients) bool {
	return g.Top.Equal(other.Top) &&
		g.Left.Equal(other.Left) &&
		g.Right.Equal(other.Right) &&
		g.Bottom.Equal(other.Bottom)
}

// Key returns a string usable as a map key; equal specs have equal keys.
func (g BorderGradients) Key() string {
	return "t" + g.Top.Key() + "l" + g.Left.Key() + "r" + g.Right.Key() + "b" + g.Bottom.Key()
}

// IsZero reports whether no side has a gradient.
func (g BorderGradients) IsZero() bool {
	return !g.Top.present && !g.Left.present && !g.Right.present && !g.Bottom.present
}
