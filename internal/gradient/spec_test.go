package gradient

import (
	"image/color"
	"testing"
)

func TestBorderGradientsZeroValue(t *testing.T) {
	var g BorderGradients
	if !g.IsZero() {
		t.Error("zero BorderGradients should have no gradients")
	}
	for _, id := range Sides() {
		if g.Side(id).Present() {
			t.Errorf("zero BorderGradients side %s should be absent", id)
		}
	}
}

func TestBorderGradientsBuilderDoesNotMutate(t *testing.T) {
	base := BorderGradients{}.WithTop(Stops(red, blue))
	derived := base.WithLeft(Stops(green)).WithTop(Stops(white))

	if !base.Top.Equal(Stops(red, blue)) {
		t.Errorf("base.Top changed to %s", base.Top.Key())
	}
	if base.Left.Present() {
		t.Error("base.Left should still be absent")
	}
	if !derived.Top.Equal(Stops(white)) {
		t.Errorf("derived.Top = %s, expected [#ffffff]", derived.Top.Key())
	}
	if !derived.Left.Equal(Stops(green)) {
		t.Errorf("derived.Left = %s, expected [#00ff00]", derived.Left.Key())
	}
}

func TestBorderGradientsWith(t *testing.T) {
	var g BorderGradients
	for i, id := range Sides() {
		g = g.With(id, Stops(RGB{uint8(i), 0, 0}))
	}
	for i, id := range Sides() {
		want := Stops(RGB{uint8(i), 0, 0})
		if !g.Side(id).Equal(want) {
			t.Errorf("Side(%s) = %s, expected %s", id, g.Side(id).Key(), want.Key())
		}
	}
}

func TestStopsCopiesInput(t *testing.T) {
	colors := []color.Color{red, blue}
	s := Stops(colors...)
	colors[0] = white

	if got := s.Colors()[0]; got != red {
		t.Errorf("Stops() kept caller slice, first color = %v", got)
	}

	out := s.Colors()
	out[1] = green
	if got := s.Colors()[1]; got != blue {
		t.Errorf("Colors() exposed internal slice, second color = %v", got)
	}
}

func TestSideAbsentVersusEmpty(t *testing.T) {
	absent := NoGradient()
	empty := Stops()

	if absent.Present() {
		t.Error("NoGradient() should be absent")
	}
	if !empty.Present() {
		t.Error("Stops() with no colors should be present")
	}
	if absent.Equal(empty) {
		t.Error("absent and empty sides should not be equal")
	}
	if absent.Key() == empty.Key() {
		t.Errorf("absent and empty sides share key %q", absent.Key())
	}
	if absent.Colors() != nil {
		t.Error("absent Colors() should be nil")
	}
	if empty.Colors() == nil || len(empty.Colors()) != 0 {
		t.Error("empty Colors() should be a non-nil empty slice")
	}
}

func TestBorderGradientsEqualAndKey(t *testing.T) {
	a := BorderGradients{}.WithTop(Stops(red, green)).WithBottom(Stops(blue))
	b := BorderGradients{}.WithBottom(Stops(blue)).WithTop(Stops(red, green))
	c := BorderGradients{}.WithTop(Stops(green, red)).WithBottom(Stops(blue))
	d := a.WithLeft(Stops())

	if !a.Equal(b) || a.Key() != b.Key() {
		t.Errorf("a and b should be equal: %q vs %q", a.Key(), b.Key())
	}
	if a.Equal(c) || a.Key() == c.Key() {
		t.Error("order of control colors should matter")
	}
	if a.Equal(d) || a.Key() == d.Key() {
		t.Error("present-but-empty left should differ from absent left")
	}

	seen := map[string]bool{a.Key(): true}
	if !seen[b.Key()] {
		t.Error("equal specs should hit the same map entry")
	}
}

func TestSideEqualAcrossColorTypes(t *testing.T) {
	a := Stops(color.RGBA{R: 255, A: 255})
	b := Stops(red)
	if !a.Equal(b) {
		t.Errorf("same RGB value should compare equal: %s vs %s", a.Key(), b.Key())
	}
}

func TestSideIDString(t *testing.T) {
	expected := map[SideID]string{Top: "top", Left: "left", Right: "right", Bottom: "bottom", SideID(9): "unknown"}
	for id, want := range expected {
		if id.String() != want {
			t.Errorf("SideID(%d).String() = %q, expected %q", int(id), id.String(), want)
		}
	}
}
