package lua

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	glua "github.com/yuin/gopher-lua"
)

// Engine wraps gopher-lua and manages the VM lifecycle.
// It is a pure mechanism: it knows how to run Lua code and expose APIs.
// It does NOT know about core scripts, config dirs, or boot sequences.
type Engine struct {
	L *glua.LState

	// Cached table reference
	slideTable *glua.LTable

	// Host interface for communication with the rest of the system
	host Host

	// Timer callbacks - Engine owns callbacks, Timer service owns IDs and scheduling
	callbacks map[int]*glua.LFunction

	// Key bindings
	binds map[string]*glua.LFunction
}

// NewEngine creates an Engine with the given Host.
func NewEngine(host Host) *Engine {
	return &Engine{
		host:      host,
		callbacks: make(map[int]*glua.LFunction),
		binds:     make(map[string]*glua.LFunction),
	}
}

// --- Lifecycle ---

// Init initializes (or re-initializes) the Lua VM with fresh state.
// It registers the API but does NOT load any scripts - that's the caller's job.
func (e *Engine) Init() error {
	if e.L != nil {
		e.L.Close()
	}

	e.L = glua.NewState()

	// Only our own timers: the host shares its timer service
	e.cancelTimers()
	if len(e.binds) > 0 {
		e.binds = make(map[string]*glua.LFunction)
		e.host.OnBindsChange()
	}

	e.registerAPIs()
	return nil
}

// Close cleans up the Lua state.
func (e *Engine) Close() {
	e.cancelTimers()
	e.binds = make(map[string]*glua.LFunction)
	if e.L != nil {
		e.L.Close()
		e.L = nil
	}
}

func (e *Engine) cancelTimers() {
	for id := range e.callbacks {
		e.host.TimerCancel(id)
	}
	e.callbacks = make(map[int]*glua.LFunction)
}

// OnTimer handles wake-up calls from Session.
// It reports whether the timer belonged to a Lua callback.
func (e *Engine) OnTimer(id int, repeating bool) bool {
	if e.L == nil {
		return false
	}

	fn, ok := e.callbacks[id]
	if !ok {
		return false // Cancelled, or belonged to previous VM
	}

	if !repeating {
		delete(e.callbacks, id)
	}
	e.call("timer", fn)
	return true
}

// OnKey runs the binding for key. It reports whether one existed.
func (e *Engine) OnKey(key string) bool {
	if e.L == nil {
		return false
	}
	fn, ok := e.binds[key]
	if !ok {
		return false
	}
	e.call("bind "+key, fn, glua.LString(key))
	return true
}

// BoundKeys returns the bound keys, sorted.
func (e *Engine) BoundKeys() []string {
	keys := make([]string, 0, len(e.binds))
	for k := range e.binds {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// TimerCallbacks returns the number of live Lua timer callbacks.
func (e *Engine) TimerCallbacks() int {
	return len(e.callbacks)
}

// --- Execution Primitives (Mechanism) ---

// DoString executes a raw string of Lua code.
// The name parameter is used for stack traces.
func (e *Engine) DoString(name, code string) error {
	fn, err := e.L.Load(strings.NewReader(code), name)
	if err != nil {
		return err
	}
	e.L.Push(fn)
	return e.L.PCall(0, 0, nil)
}

// DoFile executes a Lua file from the filesystem.
// It temporarily adjusts package.path to allow local requires.
func (e *Engine) DoFile(path string) error {
	path = expandTilde(path)

	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(absPath)

	pkg := e.L.GetGlobal("package").(*glua.LTable)
	oldPath := e.L.GetField(pkg, "path").String()
	e.L.SetField(pkg, "path", glua.LString(dir+"/?.lua;"+oldPath))

	err = e.L.DoFile(absPath)

	e.L.SetField(pkg, "path", glua.LString(oldPath))

	return err
}

// call runs fn in protected mode and reports errors to the host.
func (e *Engine) call(what string, fn *glua.LFunction, args ...glua.LValue) {
	if err := e.L.CallByParam(glua.P{
		Fn:      fn,
		NRet:    0,
		Protect: true,
	}, args...); err != nil {
		e.host.OnError(fmt.Errorf("%s: %w", what, err))
	}
}

// callback wraps fn as a Go closure. The closure does nothing once the VM
// that owns fn has been replaced.
func (e *Engine) callback(what string, fn *glua.LFunction) func() {
	owner := e.L
	return func() {
		if e.L != owner {
			return
		}
		e.call(what, fn)
	}
}

// --- API Registration ---

func (e *Engine) registerAPIs() {
	e.slideTable = e.L.NewTable()
	e.L.SetGlobal("slide", e.slideTable)

	e.registerCoreFuncs()
	e.registerBindFuncs()
	e.registerTimerFuncs()
	e.registerDialogFuncs()
}

// --- Private Helpers ---

// expandTilde expands ~ to home directory.
func expandTilde(path string) string {
	if len(path) > 0 && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
