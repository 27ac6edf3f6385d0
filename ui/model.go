package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/drake/slide/panel"
	"github.com/drake/slide/ui/style"
)

// maxScrollback caps retained scrollback lines.
const maxScrollback = 1000

// Model is the Bubble Tea model: a scrollback background, a status bar and
// the sliding panels drawn over the background.
type Model struct {
	styles  style.Styles
	keys    keyMap
	overlay *Overlay

	// Push-based state from Session
	lines  []string
	status string
	panels []panel.Snapshot
	bound  map[string]bool

	width       int
	height      int
	initialized bool
	quitting    bool

	outbound chan<- Event
}

// NewModel creates a Model that reports bound keys and resizes on outbound.
func NewModel(outbound chan<- Event) Model {
	return Model{
		styles:   style.DefaultStyles(),
		keys:     defaultKeyMap(),
		overlay:  NewOverlay(64),
		bound:    make(map[string]bool),
		outbound: outbound,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.initialized = true
		m.sendOutbound(WindowSizeChangedMsg{Width: msg.Width, Height: msg.Height})
		return m, nil

	case PrintLineMsg:
		m.lines = append(m.lines, string(msg))
		if over := len(m.lines) - maxScrollback; over > 0 {
			m.lines = m.lines[over:]
		}
		return m, nil

	case StatusMsg:
		m.status = string(msg)
		return m, nil

	case PanelsMsg:
		m.panels = msg
		return m, nil

	case BindsMsg:
		m.bound = make(map[string]bool, len(msg))
		for _, k := range msg {
			m.bound[k] = true
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	if k := keyToString(msg); k != "" && m.bound[k] {
		m.sendOutbound(KeyPressedMsg(k))
	}
	return m, nil
}

func (m *Model) sendOutbound(ev Event) {
	if m.outbound == nil {
		return
	}
	m.outbound <- ev
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.initialized {
		return "Loading..."
	}
	if m.quitting {
		return ""
	}

	rows := max(m.height-1, 0)
	bg := make([]string, rows)
	start := max(len(m.lines)-rows, 0)
	for i, line := range m.lines[start:] {
		bg[i] = m.styles.Scrollback.Render(line)
	}

	screen := m.overlay.Compose(bg, m.width, m.panels)
	screen = append(screen, m.statusBar())
	return strings.Join(screen, "\n")
}

func (m Model) statusBar() string {
	help := m.keys.Quit.Help()
	right := m.styles.StatusHelp.Render(help.Key + " " + help.Desc + " ")
	leftWidth := max(m.width-lipgloss.Width(right), 0)
	text := ansi.Truncate(" "+m.status, leftWidth, "…")
	left := m.styles.StatusBar.Width(leftWidth).Render(text)
	return left + right
}
