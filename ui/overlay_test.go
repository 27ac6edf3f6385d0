package ui

import (
	"strings"
	"testing"

	"github.com/drake/slide/panel"
)

func background(rows, width int) []string {
	bg := make([]string, rows)
	for i := range bg {
		bg[i] = strings.Repeat(".", width)
	}
	return bg
}

func TestPlace(t *testing.T) {
	tests := []struct {
		name  string
		bg    string
		fg    string
		x     int
		width int
		want  string
	}{
		{"middle", "..........", "AB", 3, 10, "...AB....."},
		{"at start", "..........", "AB", 0, 10, "AB........"},
		{"clipped right", "..........", "ABCD", 8, 10, "........AB"},
		{"clipped left", "..........", "ABCD", -2, 10, "CD........"},
		{"off screen", "..........", "AB", 10, 10, ".........."},
		{"short background", "..", "AB", 4, 10, "..  AB"},
		{"wide runes", "..........", "日本", 2, 10, "..日本...."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := place(tt.bg, tt.fg, tt.x, tt.width); got != tt.want {
				t.Errorf("place(%q, %q, %d) = %q, want %q", tt.bg, tt.fg, tt.x, got, tt.want)
			}
		})
	}
}

func TestComposeClipsRowsAboveViewport(t *testing.T) {
	o := NewOverlay(8)
	bg := background(4, 10)

	snap := panel.Snapshot{Content: "AAA\nBBB\nCCC", Left: 2, Top: -1, Width: 3, Height: 3}
	got := o.Compose(bg, 10, []panel.Snapshot{snap})

	want := []string{
		"..BBB.....",
		"..CCC.....",
		"..........",
		"..........",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d: got %q, want %q", i, got[i], want[i])
		}
	}
	if bg[0] != ".........." {
		t.Error("compose must not modify the background")
	}
}

func TestComposeLaterPanelsDrawOnTop(t *testing.T) {
	o := NewOverlay(8)
	bg := background(1, 10)

	got := o.Compose(bg, 10, []panel.Snapshot{
		{Content: "AAAA", Left: 0, Top: 0},
		{Content: "BB", Left: 2, Top: 0},
	})
	if got[0] != "AABB......" {
		t.Errorf("got %q", got[0])
	}
}

func TestComposeHiddenAbove(t *testing.T) {
	o := NewOverlay(8)
	bg := background(2, 10)

	got := o.Compose(bg, 10, []panel.Snapshot{{Content: "A\nB", Left: 0, Top: -3}})
	for i, row := range got {
		if row != bg[i] {
			t.Errorf("row %d changed: %q", i, row)
		}
	}
}
