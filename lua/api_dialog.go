package lua

import (
	glua "github.com/yuin/gopher-lua"

	"github.com/drake/slide/nav"
)

// registerDialogFuncs registers the panel and animation API.
func (e *Engine) registerDialogFuncs() {
	// slide.panel(name, {title=, body=, hint=}): Define or replace a panel
	e.L.SetField(e.slideTable, "panel", e.L.NewFunction(func(L *glua.LState) int {
		name := L.CheckString(1)
		opts := L.CheckTable(2)

		def := PanelDef{
			Title: glua.LVAsString(opts.RawGetString("title")),
			Body:  glua.LVAsString(opts.RawGetString("body")),
			Hint:  glua.LVAsString(opts.RawGetString("hint")),
		}
		e.host.DefinePanel(name, def)
		return 0
	}))

	// slide.reveal(name): Slide a panel down into view
	e.L.SetField(e.slideTable, "reveal", e.L.NewFunction(func(L *glua.LState) int {
		name := L.CheckString(1)
		if err := e.host.Reveal(name); err != nil {
			L.RaiseError("%s", err.Error())
		}
		return 0
	}))

	// slide.conceal(name [, fn]): Slide a panel out of view; fn runs once
	// the panel is hidden
	e.L.SetField(e.slideTable, "conceal", e.L.NewFunction(func(L *glua.LState) int {
		name := L.CheckString(1)
		fn := L.OptFunction(2, nil)

		var onHidden func()
		if fn != nil {
			onHidden = e.callback("conceal "+name, fn)
		}
		if err := e.host.Conceal(name, onHidden); err != nil {
			L.RaiseError("%s", err.Error())
		}
		return 0
	}))

	// slide.state(name): "hidden", "descending", "shown" or "ascending"
	e.L.SetField(e.slideTable, "state", e.L.NewFunction(func(L *glua.LState) int {
		state, err := e.host.PanelState(L.CheckString(1))
		if err != nil {
			L.RaiseError("%s", err.Error())
		}
		L.Push(glua.LString(state))
		return 1
	}))

	// slide.two_step(label, fn): Returns a function that runs fn on its
	// second call, and a function that disarms it. The first call shows the
	// confirm marker in the status line.
	e.L.SetField(e.slideTable, "two_step", e.L.NewFunction(func(L *glua.LState) int {
		label := L.CheckString(1)
		fn := L.CheckFunction(2)

		run := e.callback("two_step "+label, fn)
		ts := nav.NewTwoStep(label, func() {
			e.host.SetStatus("")
			run()
		}, e.host.SetStatus)

		L.Push(L.NewFunction(func(L *glua.LState) int {
			ts.Press()
			return 0
		}))
		L.Push(L.NewFunction(func(L *glua.LState) int {
			if ts.Armed() {
				ts.Disarm()
				e.host.SetStatus("")
			}
			return 0
		}))
		return 2
	}))
}
