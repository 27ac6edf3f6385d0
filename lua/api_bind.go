package lua

import (
	"strings"

	glua "github.com/yuin/gopher-lua"
)

// registerBindFuncs registers the slide.bind API.
func (e *Engine) registerBindFuncs() {
	// slide.bind(key, fn): key is "y", "ctrl+d", "f1", ...
	// fn receives the key
	e.L.SetField(e.slideTable, "bind", e.L.NewFunction(func(L *glua.LState) int {
		key := strings.TrimSpace(L.CheckString(1))
		fn := L.CheckFunction(2)
		if key == "" {
			L.ArgError(1, "empty key")
			return 0
		}
		e.binds[key] = fn
		e.host.OnBindsChange()
		return 0
	}))

	// slide.unbind(key)
	e.L.SetField(e.slideTable, "unbind", e.L.NewFunction(func(L *glua.LState) int {
		key := strings.TrimSpace(L.CheckString(1))
		if _, ok := e.binds[key]; ok {
			delete(e.binds, key)
			e.host.OnBindsChange()
		}
		return 0
	}))
}
