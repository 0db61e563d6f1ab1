package core

// RuntimeConfig describes the drawing surface handed to a preview.
type RuntimeConfig struct {
	ScreenW int // Screen width in characters
	ScreenH int // Screen height in characters
	Margin  int // Blank cells kept around the border
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Margin:  2,
	}
}

// Frame returns the rectangle the border is drawn on.
// Two rows are kept at the bottom for the caption and help line.
func (c RuntimeConfig) Frame() Rect {
	return NewRect(0, 0, c.ScreenW, Max(c.ScreenH-2, 0)).Inset(c.Margin*2, c.Margin)
}
