package lua

import (
	"time"

	glua "github.com/yuin/gopher-lua"
)

// registerTimerFuncs registers slide.after, slide.every and slide.cancel.
func (e *Engine) registerTimerFuncs() {
	// slide.after(seconds, callback): One-shot timer, returns ID
	e.L.SetField(e.slideTable, "after", e.L.NewFunction(func(L *glua.LState) int {
		seconds := L.CheckNumber(1)
		fn := L.CheckFunction(2)

		id := e.host.TimerAfter(toDuration(seconds))
		e.callbacks[id] = fn

		L.Push(glua.LNumber(id))
		return 1
	}))

	// slide.every(seconds, callback): Repeating timer, returns ID
	e.L.SetField(e.slideTable, "every", e.L.NewFunction(func(L *glua.LState) int {
		seconds := L.CheckNumber(1)
		fn := L.CheckFunction(2)
		if seconds <= 0 {
			L.ArgError(1, "interval must be positive")
			return 0
		}

		id := e.host.TimerEvery(toDuration(seconds))
		e.callbacks[id] = fn

		L.Push(glua.LNumber(id))
		return 1
	}))

	// slide.cancel(id): Stop a timer
	e.L.SetField(e.slideTable, "cancel", e.L.NewFunction(func(L *glua.LState) int {
		id := int(L.CheckNumber(1))
		if _, ok := e.callbacks[id]; ok {
			delete(e.callbacks, id)
			e.host.TimerCancel(id)
		}
		return 0
	}))
}

// toDuration converts Lua number seconds to Go duration
func toDuration(seconds glua.LNumber) time.Duration {
	return time.Duration(float64(seconds) * float64(time.Second))
}
