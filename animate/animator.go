// Package animate slides panels down into view and back up out of it.
//
// Every animation is an explicit task stepped by one-shot timers. Timer IDs
// come from a Scheduler; the owner of the event loop hands fired IDs back to
// OnTimer. All methods must be called from that one loop.
package animate

import (
	"time"

	"github.com/drake/slide/panel"
)

// Defaults for Config.
const (
	DefaultStep     = 10
	DefaultMargin   = 10
	DefaultInterval = 10 * time.Millisecond
)

// Config holds the step geometry.
type Config struct {
	Step     int           // Offset change per tick
	Margin   int           // Extra distance above the viewport when hidden
	Interval time.Duration // Delay between ticks
}

// DefaultConfig returns the stock 10/10/10ms animation.
func DefaultConfig() Config {
	return Config{
		Step:     DefaultStep,
		Margin:   DefaultMargin,
		Interval: DefaultInterval,
	}
}

func (c Config) withDefaults() Config {
	if c.Step <= 0 {
		c.Step = DefaultStep
	}
	if c.Margin <= 0 {
		c.Margin = DefaultMargin
	}
	if c.Interval <= 0 {
		c.Interval = DefaultInterval
	}
	return c
}

// Scheduler hands out one-shot timer IDs.
type Scheduler interface {
	After(d time.Duration) int
	Cancel(id int)
}

// Panels resolves panel names.
type Panels interface {
	Lookup(name string) (*panel.Panel, error)
}

// Viewport reports the width panels are centered in.
type Viewport interface {
	Width() int
}

// State is the per-panel animation state.
type State int

const (
	Hidden State = iota
	Descending
	Shown
	Ascending
)

func (s State) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Descending:
		return "descending"
	case Shown:
		return "shown"
	case Ascending:
		return "ascending"
	}
	return "unknown"
}

type direction int

const (
	down direction = iota
	up
)

// task is one running animation.
type task struct {
	panel    *panel.Panel
	dir      direction
	offset   int
	target   int // Resting top of a descent
	timerID  int
	onHidden func()
}

// Animator owns the running tasks.
type Animator struct {
	cfg    Config
	panels Panels
	view   Viewport
	sched  Scheduler

	tasks  map[string]*task // Keyed by panel name
	timers map[int]*task    // Keyed by pending timer ID

	onChange func(p *panel.Panel)
}

// New creates an Animator. Zero fields of cfg take their defaults.
func New(cfg Config, panels Panels, view Viewport, sched Scheduler) *Animator {
	return &Animator{
		cfg:    cfg.withDefaults(),
		panels: panels,
		view:   view,
		sched:  sched,
		tasks:  make(map[string]*task),
		timers: make(map[int]*task),
	}
}

// Config returns the effective configuration.
func (a *Animator) Config() Config {
	return a.cfg
}

// OnChange registers fn to run after every panel mutation.
func (a *Animator) OnChange(fn func(p *panel.Panel)) {
	a.onChange = fn
}

// Reveal slides the named panel down to rest at the top of the viewport.
// A panel that is already descending keeps its current descent.
func (a *Animator) Reveal(name string) error {
	p, err := a.panels.Lookup(name)
	if err != nil {
		return err
	}

	if t, ok := a.tasks[name]; ok {
		if t.dir == down {
			return nil
		}
		a.stop(t)
	}

	if !p.Visible() || !p.Top.Valid {
		p.Left = panel.At(a.restingLeft(p))
		p.Top = panel.At(a.hiddenTop(p))
	}
	p.Display = panel.DisplayShown
	a.changed(p)

	t := &task{
		panel:  p,
		dir:    down,
		offset: p.Top.Value,
		target: 0,
	}
	a.tasks[name] = t
	a.step(t)
	return nil
}

// Conceal slides the named panel up out of view and hides it. onHidden, if
// non-nil, runs once after the panel is hidden. Concealing a panel that is
// already ascending keeps the ascent; a non-nil onHidden replaces the pending
// one.
func (a *Animator) Conceal(name string, onHidden func()) error {
	p, err := a.panels.Lookup(name)
	if err != nil {
		return err
	}

	if t, ok := a.tasks[name]; ok {
		if t.dir == up {
			if onHidden != nil {
				t.onHidden = onHidden
			}
			return nil
		}
		a.stop(t)
	}

	start := a.hiddenTop(p)
	if p.Visible() && p.Top.Valid {
		start = p.Top.Value
	}

	t := &task{
		panel:    p,
		dir:      up,
		offset:   start,
		onHidden: onHidden,
	}
	a.tasks[name] = t
	a.step(t)
	return nil
}

// OnTimer advances the task waiting on timer id. It reports whether the id
// belonged to this Animator.
func (a *Animator) OnTimer(id int) bool {
	t, ok := a.timers[id]
	if !ok {
		return false
	}
	delete(a.timers, id)
	t.timerID = 0
	a.step(t)
	return true
}

// State reports where the named panel is in its show/hide cycle.
func (a *Animator) State(name string) State {
	if t, ok := a.tasks[name]; ok {
		if t.dir == down {
			return Descending
		}
		return Ascending
	}
	p, err := a.panels.Lookup(name)
	if err != nil || !p.Visible() {
		return Hidden
	}
	return Shown
}

// Active returns the number of running animations.
func (a *Animator) Active() int {
	return len(a.tasks)
}

// CancelAll stops every animation where it is. Pending callbacks are dropped.
func (a *Animator) CancelAll() {
	for _, t := range a.tasks {
		a.stop(t)
	}
}

// Recenter moves the named panels, if displayed, to the horizontal center of
// the current viewport width.
func (a *Animator) Recenter(names []string) {
	for _, name := range names {
		p, err := a.panels.Lookup(name)
		if err != nil || !p.Visible() {
			continue
		}
		if left := a.restingLeft(p); !p.Left.Valid || p.Left.Value != left {
			p.Left = panel.At(left)
			a.changed(p)
		}
	}
}

// step applies one tick of t and schedules the next one, or finishes.
func (a *Animator) step(t *task) {
	p := t.panel

	switch t.dir {
	case down:
		if t.offset < t.target-a.cfg.Margin {
			t.offset += a.cfg.Step
			a.move(t)
			a.schedule(t)
			return
		}
		t.offset = t.target
		a.move(t)
		delete(a.tasks, p.Name)

	case up:
		if t.offset > -p.Height {
			t.offset -= a.cfg.Step
			a.move(t)
			a.schedule(t)
			return
		}
		// Height may have changed during the ascent
		t.offset = a.hiddenTop(p)
		p.Top = panel.At(t.offset)
		p.Display = panel.DisplayNone
		delete(a.tasks, p.Name)
		a.changed(p)

		if cb := t.onHidden; cb != nil {
			t.onHidden = nil
			cb()
		}
	}
}

func (a *Animator) move(t *task) {
	t.panel.Top = panel.At(t.offset)
	a.changed(t.panel)
}

func (a *Animator) schedule(t *task) {
	t.timerID = a.sched.After(a.cfg.Interval)
	a.timers[t.timerID] = t
}

// stop cancels t without finishing it.
func (a *Animator) stop(t *task) {
	if t.timerID != 0 {
		a.sched.Cancel(t.timerID)
		delete(a.timers, t.timerID)
		t.timerID = 0
	}
	t.onHidden = nil
	delete(a.tasks, t.panel.Name)
}

func (a *Animator) changed(p *panel.Panel) {
	if a.onChange != nil {
		a.onChange(p)
	}
}

func (a *Animator) restingLeft(p *panel.Panel) int {
	return a.view.Width()/2 - p.Width/2
}

func (a *Animator) hiddenTop(p *panel.Panel) int {
	return -(p.Height + a.cfg.Margin)
}
