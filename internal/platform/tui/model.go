package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-borders/internal/border"
	"github.com/vovakirdan/tui-borders/internal/config"
	"github.com/vovakirdan/tui-borders/internal/core"
	"github.com/vovakirdan/tui-borders/internal/gradient"
)

// ThemesReloadedMsg carries a freshly loaded catalog from the theme watcher.
type ThemesReloadedMsg struct {
	Catalog config.Catalog
}

// themesClosedMsg is sent once the watcher channel is closed.
type themesClosedMsg struct{}

// PreviewModel is the Bubble Tea model that shows one theme's border around
// the whole window.
type PreviewModel struct {
	catalog  config.Catalog
	index    int
	style    border.Style
	styleErr error

	cache    *gradient.Cache
	screen   *core.Screen
	renderer *lipgloss.Renderer
	config   core.RuntimeConfig

	keys     PreviewKeyMap
	help     help.Model
	updates  <-chan config.Catalog
	onTheme  func(name string)
	quitting bool
}

// NewPreviewModel creates a preview starting at the named theme.
// An empty name selects the catalog default.
func NewPreviewModel(cat config.Catalog, theme string, cfg core.RuntimeConfig, r *lipgloss.Renderer) (PreviewModel, error) {
	if len(cat.Themes) == 0 {
		return PreviewModel{}, fmt.Errorf("tui: catalog has no themes")
	}
	t, ok := cat.Lookup(theme)
	if !ok {
		return PreviewModel{}, fmt.Errorf("tui: unknown theme %q", theme)
	}
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	m := PreviewModel{
		catalog:  cat,
		cache:    gradient.NewCache(0),
		screen:   core.NewScreen(cfg.ScreenW, atLeastOne(cfg.ScreenH-1)),
		renderer: r,
		config:   cfg,
		keys:     DefaultPreviewKeyMap(),
		help:     help.New(),
	}
	m.index = m.indexOf(t.Name)
	m.selectTheme(m.index)
	return m, nil
}

// atLeastOne returns n, or 1 when n is smaller.
func atLeastOne(n int) int {
	return core.Max(n, 1)
}

// WithUpdates makes the model listen for reloaded catalogs on ch.
func (m PreviewModel) WithUpdates(ch <-chan config.Catalog) PreviewModel {
	m.updates = ch
	return m
}

// OnThemeChange registers fn to be called with the theme name whenever the
// shown theme changes, including the initial one.
func (m PreviewModel) OnThemeChange(fn func(name string)) PreviewModel {
	m.onTheme = fn
	if fn != nil {
		fn(m.Theme())
	}
	return m
}

// Theme returns the name of the theme currently shown.
func (m PreviewModel) Theme() string {
	if m.index < 0 || m.index >= len(m.catalog.Themes) {
		return ""
	}
	return m.catalog.Themes[m.index].Name
}

// Config returns the current runtime configuration.
func (m PreviewModel) Config() core.RuntimeConfig {
	return m.config
}

// Init starts listening for theme reloads when a watcher is attached.
func (m PreviewModel) Init() tea.Cmd {
	return waitForReload(m.updates)
}

// waitForReload blocks on the watcher channel in a command goroutine.
func waitForReload(ch <-chan config.Catalog) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		cat, ok := <-ch
		if !ok {
			return themesClosedMsg{}
		}
		return ThemesReloadedMsg{Catalog: cat}
	}
}

// Update handles messages and updates the model state.
func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, atLeastOne(msg.Height-1))
		m.help.Width = msg.Width
		m.config.Margin = core.Clamp(m.config.Margin, 0, m.maxMargin())
		return m, nil

	case ThemesReloadedMsg:
		m.reload(msg.Catalog)
		return m, waitForReload(m.updates)

	case themesClosedMsg:
		m.updates = nil
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m PreviewModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		m.selectTheme((m.index + 1) % len(m.catalog.Themes))
	case key.Matches(msg, m.keys.Prev):
		m.selectTheme((m.index - 1 + len(m.catalog.Themes)) % len(m.catalog.Themes))
	case key.Matches(msg, m.keys.Grow):
		m.config.Margin = core.Max(m.config.Margin-1, 0)
	case key.Matches(msg, m.keys.Shrink):
		m.config.Margin = core.Min(m.config.Margin+1, m.maxMargin())
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// maxMargin keeps at least a 2x2 frame on screen.
func (m PreviewModel) maxMargin() int {
	byWidth := (m.config.ScreenW - 2) / 4
	byHeight := (m.config.ScreenH - 4) / 2
	return core.Max(core.Min(byWidth, byHeight), 0)
}

// reload swaps in a new catalog, staying on the same theme name if it still
// exists.
func (m *PreviewModel) reload(cat config.Catalog) {
	if len(cat.Themes) == 0 {
		return
	}
	name := m.Theme()
	m.catalog = cat
	m.cache.Reset()

	idx := m.indexOf(name)
	if idx < 0 {
		t, _ := cat.Lookup("")
		idx = m.indexOf(t.Name)
	}
	m.selectTheme(core.Max(idx, 0))
}

func (m *PreviewModel) selectTheme(i int) {
	m.index = i
	m.style, m.styleErr = m.catalog.Themes[i].Style()
	if m.onTheme != nil {
		m.onTheme(m.Theme())
	}
}

func (m PreviewModel) indexOf(name string) int {
	for i, t := range m.catalog.Themes {
		if t.Name == name {
			return i
		}
	}
	return -1
}

// caption describes the current theme on the line under the box.
func (m PreviewModel) caption(drawErr error) string {
	t := m.catalog.Themes[m.index]
	parts := []string{
		fmt.Sprintf(" %s (%d/%d)", t.Name, m.index+1, len(m.catalog.Themes)),
		valueOr(t.Border, "normal"),
	}
	g := m.style.Gradients
	var sides []string
	for _, id := range gradient.Sides() {
		if g.Side(id).Present() {
			sides = append(sides, fmt.Sprintf("%s:%d", id, g.Side(id).Len()))
		}
	}
	if len(sides) > 0 {
		parts = append(parts, strings.Join(sides, " "))
	}

	switch {
	case m.styleErr != nil:
		parts = append(parts, "error: "+m.styleErr.Error())
	case drawErr != nil:
		parts = append(parts, "error: "+drawErr.Error())
	}
	return strings.Join(parts, "  ")
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// View renders the current state to a string for display.
func (m PreviewModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	var drawErr error
	if m.styleErr == nil {
		frame := m.config.Frame()
		drawErr = border.Draw(m.screen, frame, m.style, m.cache)
		drawLabel(m.screen, frame, m.Theme())
	}
	m.screen.DrawText(0, m.screen.Height()-1, m.caption(drawErr))

	return RenderScreen(m.screen, m.renderer) + "\n" + m.help.View(m.keys)
}

// drawLabel writes text centered inside r, skipping frames too small to hold it.
func drawLabel(s *core.Screen, r core.Rect, text string) {
	n := len([]rune(text))
	if r.H < 3 || n > r.W-2 {
		return
	}
	cx, cy := r.Center()
	s.DrawText(cx-n/2, cy, text)
}

// Run starts the Bubble Tea program with the given model.
func Run(m PreviewModel) error {
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
