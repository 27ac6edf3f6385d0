package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/mattn/go-runewidth"

	"github.com/drake/slide/panel"
)

// Overlay draws panels over background rows. Panel content is split into
// rows once and cached by content, since a sliding panel redraws the same
// content every frame.
type Overlay struct {
	rows *lru.Cache[string, []string]
}

// NewOverlay creates an Overlay caching up to size distinct panel contents.
func NewOverlay(size int) *Overlay {
	cache, _ := lru.New[string, []string](size)
	return &Overlay{rows: cache}
}

func (o *Overlay) split(content string) []string {
	if rows, ok := o.rows.Get(content); ok {
		return rows
	}
	rows := strings.Split(content, "\n")
	o.rows.Add(content, rows)
	return rows
}

// Compose returns bg with each panel drawn at its Left/Top, in order.
// Rows above the first or below the last background row are clipped, as are
// columns outside [0, width).
func (o *Overlay) Compose(bg []string, width int, panels []panel.Snapshot) []string {
	out := make([]string, len(bg))
	copy(out, bg)

	for _, p := range panels {
		for i, row := range o.split(p.Content) {
			y := p.Top + i
			if y < 0 || y >= len(out) {
				continue
			}
			out[y] = place(out[y], row, p.Left, width)
		}
	}
	return out
}

// place writes fg over bg starting at column x.
func place(bg, fg string, x, width int) string {
	if x < 0 {
		fg = ansi.TruncateLeft(fg, -x, "")
		x = 0
	}
	if x >= width {
		return bg
	}

	fgWidth := visibleWidth(fg)
	if x+fgWidth > width {
		fg = ansi.Truncate(fg, width-x, "")
		fgWidth = visibleWidth(fg)
	}
	if fgWidth == 0 {
		return bg
	}

	if pad := x + fgWidth - visibleWidth(bg); pad > 0 {
		bg += strings.Repeat(" ", pad)
	}

	left := ansi.Truncate(bg, x, "")
	right := ansi.TruncateLeft(bg, x+fgWidth, "")
	return left + fg + right
}

// visibleWidth returns the display width of s, excluding ANSI codes.
func visibleWidth(s string) int {
	return runewidth.StringWidth(ansi.Strip(s))
}
