package border

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// GlyphFactory returns a fresh set of border glyphs.
type GlyphFactory func() lipgloss.Border

var (
	presets = make(map[string]GlyphFactory)
	mu      sync.RWMutex
)

func init() {
	RegisterPreset("normal", lipgloss.NormalBorder)
	RegisterPreset("rounded", lipgloss.RoundedBorder)
	RegisterPreset("thick", lipgloss.ThickBorder)
	RegisterPreset("double", lipgloss.DoubleBorder)
	RegisterPreset("block", lipgloss.BlockBorder)
	RegisterPreset("hidden", lipgloss.HiddenBorder)
}

// RegisterPreset adds a named glyph set that themes can refer to.
// Panics if the name is already registered.
func RegisterPreset(name string, f GlyphFactory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := presets[name]; exists {
		panic(fmt.Sprintf("border: preset %q already registered", name))
	}
	presets[name] = f
}

// Preset returns the border glyphs registered under name.
// An empty name selects "normal".
func Preset(name string) (lipgloss.Border, error) {
	if name == "" {
		name = "normal"
	}

	mu.RLock()
	f, ok := presets[name]
	mu.RUnlock()

	if !ok {
		return lipgloss.Border{}, fmt.Errorf("border: unknown preset %q", name)
	}
	return f(), nil
}

// PresetNames returns the registered preset names, sorted.
func PresetNames() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
