package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds all the lipgloss styles for the TUI.
type Styles struct {
	// Layout
	Scrollback lipgloss.Style
	StatusBar  lipgloss.Style
	StatusHelp lipgloss.Style

	// Dialog panels
	DialogBorder lipgloss.Style
	DialogTitle  lipgloss.Style
	DialogBody   lipgloss.Style
	DialogHint   lipgloss.Style

	// Misc
	Muted   lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

// DefaultStyles returns the default style configuration.
func DefaultStyles() Styles {
	return Styles{
		Scrollback: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("236")),
		StatusHelp: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Background(lipgloss.Color("236")),

		DialogBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 2),
		DialogTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Bold(true),
		DialogBody: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			MarginTop(1),
		DialogHint: lipgloss.NewStyle().
			Foreground(lipgloss.Color("179")). // Muted yellow
			MarginTop(1),

		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")),
	}
}

// Dialog renders a bordered confirmation box. Empty sections are left out.
func (s Styles) Dialog(title, body, hint string) string {
	var parts []string
	if title != "" {
		parts = append(parts, s.DialogTitle.Render(title))
	}
	if body != "" {
		st := s.DialogBody
		if len(parts) == 0 {
			st = st.MarginTop(0)
		}
		parts = append(parts, st.Render(body))
	}
	if hint != "" {
		st := s.DialogHint
		if len(parts) == 0 {
			st = st.MarginTop(0)
		}
		parts = append(parts, st.Render(hint))
	}
	return s.DialogBorder.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
