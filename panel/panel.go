// Package panel holds the named on-screen panels that dialogs slide in and out of.
package panel

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ErrNotFound is returned when a lookup names a panel that was never registered.
var ErrNotFound = errors.New("panel not found")

// Display mirrors the display style of the panel.
type Display int

const (
	DisplayNone  Display = iota // Not drawn
	DisplayShown                // Drawn at Left/Top
)

// Offset is a stored position that may be missing.
// A zero Offset is invalid and means "never positioned".
type Offset struct {
	Value int
	Valid bool
}

// At returns a valid offset.
func At(v int) Offset {
	return Offset{Value: v, Valid: true}
}

// Panel is a pre-rendered block of text positioned in cell coordinates.
// Left is the column of its first cell, Top the row; negative Top means
// rows above the visible area.
type Panel struct {
	Name    string
	Content string
	Width   int
	Height  int

	Left    Offset
	Top     Offset
	Display Display
}

// New creates a hidden, unpositioned panel sized to its content.
func New(name, content string) *Panel {
	return &Panel{
		Name:    name,
		Content: content,
		Width:   lipgloss.Width(content),
		Height:  lipgloss.Height(content),
	}
}

// Visible reports whether the panel is displayed.
func (p *Panel) Visible() bool {
	return p.Display == DisplayShown
}

// Snapshot is an immutable copy of a panel for rendering.
type Snapshot struct {
	Name    string
	Content string
	Width   int
	Height  int
	Left    int
	Top     int
}

// Snapshot copies the drawable state. Invalid offsets collapse to zero.
func (p *Panel) Snapshot() Snapshot {
	return Snapshot{
		Name:    p.Name,
		Content: p.Content,
		Width:   p.Width,
		Height:  p.Height,
		Left:    p.Left.Value,
		Top:     p.Top.Value,
	}
}

// Registry is the name-indexed set of panels. It is not safe for concurrent
// use; the session loop owns it.
type Registry struct {
	panels map[string]*Panel
	order  []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{panels: make(map[string]*Panel)}
}

// Register adds p, or replaces the content of an existing panel with the same
// name. A replaced panel keeps its position and display so an in-flight
// animation is not disturbed. The registered panel is returned.
func (r *Registry) Register(p *Panel) *Panel {
	if old, ok := r.panels[p.Name]; ok {
		old.Content = p.Content
		old.Width = p.Width
		old.Height = p.Height
		return old
	}
	r.panels[p.Name] = p
	r.order = append(r.order, p.Name)
	return p
}

// Lookup returns the panel registered under name.
func (r *Registry) Lookup(name string) (*Panel, error) {
	p, ok := r.panels[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	return p, nil
}

// Names returns panel names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered panels.
func (r *Registry) Len() int {
	return len(r.order)
}

// Snapshots returns the visible panels in registration order.
// Later panels draw over earlier ones.
func (r *Registry) Snapshots() []Snapshot {
	var out []Snapshot
	for _, name := range r.order {
		if p := r.panels[name]; p.Visible() {
			out = append(out, p.Snapshot())
		}
	}
	return out
}
