// Package border draws rectangular borders with per-side gradients into a
// core.Screen.
package border

import (
	"fmt"
	"image/color"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-borders/internal/core"
	"github.com/vovakirdan/tui-borders/internal/gradient"
)

// Style describes how a border is painted.
type Style struct {
	// Glyphs supplies the line-drawing characters; only the first rune of
	// each part is used.
	Glyphs lipgloss.Border

	// Color paints every side without a gradient. Nil keeps the terminal
	// default.
	Color color.Color

	// Gradients selects the sides that are sampled.
	Gradients gradient.BorderGradients
}

// Lengths returns the cell-length of each side of r.
// Top and bottom own the corners and span the full width; left and right
// cover only the rows between them.
func Lengths(r core.Rect) map[gradient.SideID]int {
	lengths := map[gradient.SideID]int{
		gradient.Top:    core.Max(r.W, 0),
		gradient.Bottom: 0,
		gradient.Left:   0,
		gradient.Right:  0,
	}
	if r.H > 1 {
		lengths[gradient.Bottom] = core.Max(r.W, 0)
	}
	if r.H > 2 {
		lengths[gradient.Left] = r.H - 2
		if r.W > 1 {
			lengths[gradient.Right] = r.H - 2
		}
	}
	if r.Empty() {
		lengths[gradient.Top] = 0
	}
	return lengths
}

// Draw paints the border of r into dst.
//
// Sides without a gradient use st.Color and never reach the sampler. Sides
// with a gradient are sampled through cache when it is non-nil, falling back
// to st.Color when the side has no control colors.
func Draw(dst *core.Screen, r core.Rect, st Style, cache *gradient.Cache) error {
	if r.Empty() {
		return nil
	}

	lengths := Lengths(r)
	g := st.Glyphs

	for _, id := range gradient.Sides() {
		n := lengths[id]
		if n == 0 {
			continue
		}

		colors, err := sideColors(st, id, n, cache)
		if err != nil {
			return fmt.Errorf("border: %s side: %w", id, err)
		}

		for i := 0; i < n; i++ {
			var x, y int
			var ch rune
			switch id {
			case gradient.Top:
				x, y = r.X+i, r.Y
				ch = horizontalGlyph(i, n, g.TopLeft, g.Top, g.TopRight)
			case gradient.Bottom:
				x, y = r.X+i, r.Bottom()-1
				ch = horizontalGlyph(i, n, g.BottomLeft, g.Bottom, g.BottomRight)
			case gradient.Left:
				x, y = r.X, r.Y+1+i
				ch = glyph(g.Left)
			case gradient.Right:
				x, y = r.Right()-1, r.Y+1+i
				ch = glyph(g.Right)
			}
			dst.SetCell(x, y, core.Cell{Rune: ch, Color: colors(i)})
		}
	}
	return nil
}

// sideColors returns a per-index color lookup for one side.
func sideColors(st Style, id gradient.SideID, n int, cache *gradient.Cache) (func(int) color.Color, error) {
	side := st.Gradients.Side(id)
	if !side.Present() {
		return func(int) color.Color { return st.Color }, nil
	}

	var cells []gradient.RGB
	var err error
	if cache != nil {
		cells, err = cache.Sample(side, n, st.Color)
	} else {
		cells, err = gradient.Sampler{Default: st.Color}.Sample(side.Colors(), n)
	}
	if err != nil {
		return nil, err
	}
	return func(i int) color.Color { return cells[i] }, nil
}

// horizontalGlyph picks the corner glyphs for the ends of a top or bottom row.
func horizontalGlyph(i, n int, left, mid, right string) rune {
	switch {
	case i == 0:
		return glyph(left)
	case i == n-1:
		return glyph(right)
	default:
		return glyph(mid)
	}
}

func glyph(s string) rune {
	if s == "" {
		return ' '
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
