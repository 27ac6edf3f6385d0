package lua

import (
	"strings"

	glua "github.com/yuin/gopher-lua"
)

// registerCoreFuncs registers slide.print, status, quit and trim.
func (e *Engine) registerCoreFuncs() {
	// slide.print(text): Append a line to the screen
	e.L.SetField(e.slideTable, "print", e.L.NewFunction(func(L *glua.LState) int {
		e.host.Print(L.CheckString(1))
		return 0
	}))

	// slide.status(text): Replace the status line
	e.L.SetField(e.slideTable, "status", e.L.NewFunction(func(L *glua.LState) int {
		e.host.SetStatus(L.OptString(1, ""))
		return 0
	}))

	// slide.quit(): Exit
	e.L.SetField(e.slideTable, "quit", e.L.NewFunction(func(L *glua.LState) int {
		e.host.Quit()
		return 0
	}))

	// slide.trim(s): Strip leading and trailing whitespace
	e.L.SetField(e.slideTable, "trim", e.L.NewFunction(func(L *glua.LState) int {
		L.Push(glua.LString(strings.TrimSpace(L.CheckString(1))))
		return 1
	}))
}
