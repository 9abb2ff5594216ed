// Package bubbletea provides an interactive scene pager using the Bubble Tea
// framework.
package bubbletea

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kyle-silver/lear"
)

// Compile-time interface verification.
var _ lear.Pager = (*Pager)(nil)

const statusBarHeight = 1

// Model is the Bubble Tea model for paging through a scene.
type Model struct {
	label   string
	content string

	viewport   viewport.Model
	keymap     KeyMap
	styles     lear.Styles
	renderer   *lipgloss.Renderer
	width      int
	ready      bool
	pendingKey string
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithRenderer sets the lipgloss renderer used for the status bar.
func WithRenderer(r *lipgloss.Renderer) ModelOption {
	return func(m *Model) {
		m.renderer = r
	}
}

// WithTheme sets the theme used for the status bar.
func WithTheme(t lear.Theme) ModelOption {
	return func(m *Model) {
		m.styles = t.Styles()
	}
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(km KeyMap) ModelOption {
	return func(m *Model) {
		m.keymap = km
	}
}

// NewModel creates a Model showing the whole of scene as rendered by p.
func NewModel(scene *lear.Scene, p lear.Presenter, opts ...ModelOption) Model {
	m := Model{
		label:   SceneLabel(scene),
		content: expandAllTabs(p.Render(scene.Blocks, false)),
		keymap:  DefaultKeyMap(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// SceneLabel names a scene for display, preferring its heading.
func SceneLabel(scene *lear.Scene) string {
	if h, ok := scene.Heading(); ok && h.Act != "" && h.Scene != "" {
		return h.Act + ", " + h.Scene
	}
	return fmt.Sprintf("Act %d, Scene %d", scene.Act, scene.Scene)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// gg goes to top
		if m.pendingKey == "g" && key.Matches(msg, m.keymap.GotoTop) {
			m.viewport.GotoTop()
			m.pendingKey = ""
			return m, nil
		}
		if key.Matches(msg, m.keymap.GotoTop) {
			m.pendingKey = "g"
			return m, nil
		}
		m.pendingKey = ""

		switch {
		case key.Matches(msg, m.keymap.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keymap.GotoBottom):
			m.viewport.GotoBottom()
			return m, nil
		case key.Matches(msg, m.keymap.PageUp):
			m.viewport.PageUp()
			return m, nil
		case key.Matches(msg, m.keymap.PageDown):
			m.viewport.PageDown()
			return m, nil
		case key.Matches(msg, m.keymap.HalfPageUp):
			m.viewport.HalfPageUp()
			return m, nil
		case key.Matches(msg, m.keymap.HalfPageDown):
			m.viewport.HalfPageDown()
			return m, nil
		case key.Matches(msg, m.keymap.Up):
			m.viewport.ScrollUp(1)
			return m, nil
		case key.Matches(msg, m.keymap.Down):
			m.viewport.ScrollDown(1)
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		height := max(msg.Height-statusBarHeight, 0)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), m.statusBarView())
}

func (m Model) newStyle() lipgloss.Style {
	if m.renderer != nil {
		return m.renderer.NewStyle()
	}
	return lipgloss.NewStyle()
}

// statusBarView renders the scene label on the left and the scroll position
// and key help on the right.
func (m Model) statusBarView() string {
	bar := m.newStyle()
	if fg := m.styles.StatusBar.Foreground; fg != "" {
		bar = bar.Foreground(lipgloss.Color(fg))
	}
	if bg := m.styles.StatusBar.Background; bg != "" {
		bar = bar.Background(lipgloss.Color(bg))
	}

	left := bar.Bold(true).Render(" " + m.label + " ")
	right := bar.Render(" " + m.scrollPosition() + " │ " + helpLine(m.keymap.ShortHelp()) + " ")

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left + right
	}
	return left + bar.Render(strings.Repeat(" ", gap)) + right
}

// scrollPosition returns Top, Bot or the scroll percentage.
func (m Model) scrollPosition() string {
	switch {
	case m.viewport.AtTop():
		return "Top"
	case m.viewport.AtBottom():
		return "Bot"
	}
	return fmt.Sprintf("%2d%%", int(m.viewport.ScrollPercent()*100))
}

// Pager implements lear.Pager using a Bubble Tea TUI.
type Pager struct {
	presenter lear.Presenter
	opts      []ModelOption
}

// NewPager creates a Pager that renders scenes with p.
func NewPager(p lear.Presenter, opts ...ModelOption) *Pager {
	return &Pager{presenter: p, opts: opts}
}

// Page displays scene and blocks until the user exits or ctx is cancelled.
func (p *Pager) Page(ctx context.Context, scene *lear.Scene) error {
	m := NewModel(scene, p.presenter, p.opts...)
	prog := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := prog.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}
