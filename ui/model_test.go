package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/drake/slide/panel"
)

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelForwardsOnlyBoundKeys(t *testing.T) {
	out := make(chan Event, 8)
	m := NewModel(out)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})
	if ev := <-out; ev != (WindowSizeChangedMsg{Width: 40, Height: 10}) {
		t.Fatalf("expected resize event, got %#v", ev)
	}

	m, _ = update(t, m, BindsMsg{"y", "ctrl+d"})
	m, _ = update(t, m, runes("y"))
	m, _ = update(t, m, runes("x"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlD})

	if len(out) != 2 {
		t.Fatalf("expected 2 key events, got %d", len(out))
	}
	if ev := <-out; ev != KeyPressedMsg("y") {
		t.Errorf("unexpected event %#v", ev)
	}
	if ev := <-out; ev != KeyPressedMsg("ctrl+d") {
		t.Errorf("unexpected event %#v", ev)
	}
}

func TestModelQuitKey(t *testing.T) {
	m := NewModel(nil)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should quit")
	}
	if !m.quitting {
		t.Error("model should be quitting")
	}
}

func TestModelViewDrawsPanelOverScrollback(t *testing.T) {
	m := NewModel(nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 4})
	m, _ = update(t, m, PrintLineMsg("first line"))
	m, _ = update(t, m, StatusMsg("CONFIRM --> delete"))
	m, _ = update(t, m, PanelsMsg{{Name: "c", Content: "[ok?]", Left: 5, Top: 1, Width: 5, Height: 1}})

	rows := strings.Split(ansi.Strip(m.View()), "\n")
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d: %q", len(rows), rows)
	}
	if !strings.HasPrefix(rows[0], "first line") {
		t.Errorf("row 0: %q", rows[0])
	}
	if !strings.HasPrefix(rows[1], "     [ok?]") {
		t.Errorf("row 1 should hold the panel: %q", rows[1])
	}
	if !strings.Contains(rows[3], "CONFIRM --> delete") || !strings.Contains(rows[3], "ctrl+c quit") {
		t.Errorf("status bar: %q", rows[3])
	}
}

func TestModelScrollbackCap(t *testing.T) {
	m := NewModel(nil)
	for i := 0; i < maxScrollback+5; i++ {
		m, _ = update(t, m, PrintLineMsg("x"))
	}
	if len(m.lines) != maxScrollback {
		t.Errorf("expected %d lines, got %d", maxScrollback, len(m.lines))
	}

	m, _ = update(t, m, PanelsMsg([]panel.Snapshot{}))
	if len(m.panels) != 0 {
		t.Error("empty panels message should clear panels")
	}
}
