package lua

import "time"

// PanelDef describes a dialog panel defined from Lua.
// Session renders it into a panel.Panel (decoupling lua from ui).
type PanelDef struct {
	Title string
	Body  string
	Hint  string // Key help line, e.g. "[y] yes  [n] no"
}

// Host provides the bridge between Engine and the rest of the system.
// This abstraction decouples Engine from specific implementations,
// making it testable without full infrastructure.
type Host interface {
	// IO
	Print(text string)
	SetStatus(text string)
	Quit()

	// Panels
	DefinePanel(name string, def PanelDef)
	Reveal(name string) error
	Conceal(name string, onHidden func()) error
	PanelState(name string) (string, error) // "hidden", "descending", "shown" or "ascending"

	// Timers - Timer service owns IDs, scheduling, and cancellation
	TimerAfter(d time.Duration) int
	TimerEvery(d time.Duration) int
	TimerCancel(id int)

	// OnError reports a Lua error raised outside a caller's control
	// (key bindings, timers, callbacks).
	OnError(err error)

	// OnBindsChange is called synchronously when slide.bind or
	// slide.unbind changes the bound key set.
	OnBindsChange()
}
