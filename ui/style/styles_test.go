package style

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestDialogSections(t *testing.T) {
	s := DefaultStyles()

	full := s.Dialog("Delete?", "This cannot be undone.", "[y] yes  [n] no")
	plain := ansi.Strip(full)

	for _, want := range []string{"Delete?", "This cannot be undone.", "[y] yes  [n] no"} {
		if !strings.Contains(plain, want) {
			t.Errorf("dialog missing %q:\n%s", want, plain)
		}
	}

	// border (2) + title + gap + body + gap + hint
	if h := lipgloss.Height(full); h != 7 {
		t.Errorf("expected height 7, got %d:\n%s", h, plain)
	}

	titleOnly := s.Dialog("Sure?", "", "")
	if h := lipgloss.Height(titleOnly); h != 3 {
		t.Errorf("expected height 3, got %d", h)
	}
	if w := lipgloss.Width(titleOnly); w != len("Sure?")+2+4 {
		t.Errorf("expected width %d, got %d", len("Sure?")+6, w)
	}
}
