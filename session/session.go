package session

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/drake/slide/animate"
	"github.com/drake/slide/internal/log"
	"github.com/drake/slide/lua"
	"github.com/drake/slide/panel"
	"github.com/drake/slide/timer"
	"github.com/drake/slide/ui"
	"github.com/drake/slide/ui/style"
)

// Ensure Session implements lua.Host at compile time
var _ lua.Host = (*Session)(nil)

// defaultWidth is assumed until the UI reports a size.
const defaultWidth = 80

// drainLimit bounds how long animations may run after the UI exits.
const drainLimit = 5 * time.Second

// UI is the display the Session drives. BubbleTeaUI and ConsoleUI
// implement it.
type UI interface {
	Run() error
	Quit()
	Events() <-chan ui.Event

	Print(text string)
	SetStatus(text string)
	SetPanels(panels []panel.Snapshot)
	SetBinds(keys []string)
}

// Config holds session configuration
type Config struct {
	CoreScripts fs.FS          // Embedded core Lua scripts under "core/"
	ConfigDir   string         // Path to ~/.config/slide
	InitFile    string         // User init.lua, skipped if missing
	UserScripts []string       // CLI script arguments
	Animation   animate.Config // Zero fields take the animator defaults
}

// Session orchestrates the panels, the animator, timers, Lua and the UI.
// Everything except the UI runs on the loop goroutine.
type Session struct {
	// Components
	ui       UI
	registry *panel.Registry
	anim     *animate.Animator
	engine   *lua.Engine
	timer    *timer.Service
	styles   style.Styles
	screen   *screen

	// Channels
	timerEvents chan timer.Event

	// Set when a panel changed since the last push to the UI
	dirty bool

	config Config
	stats  atomic.Pointer[Stats]
	events uint64

	// Shutdown coordination
	done      chan struct{}
	closeOnce sync.Once
}

// screen tracks the viewport reported by the UI.
type screen struct {
	width, height int
}

func (v *screen) Width() int { return v.width }

// New creates a new Session. It is passive - no goroutines start here.
func New(u UI, cfg Config) *Session {
	timerEvents := make(chan timer.Event, 1024)

	s := &Session{
		ui:          u,
		registry:    panel.NewRegistry(),
		timer:       timer.NewService(timerEvents),
		styles:      style.DefaultStyles(),
		screen:      &screen{width: defaultWidth},
		timerEvents: timerEvents,
		config:      cfg,
		done:        make(chan struct{}),
	}

	s.anim = animate.New(cfg.Animation, s.registry, s.screen, s.timer)
	s.anim.OnChange(func(*panel.Panel) { s.dirty = true })
	s.engine = lua.NewEngine(s)
	s.stats.Store(&Stats{})

	return s
}

// Run boots the Lua state and runs the event loop alongside the UI.
// When the UI exits, queued keys and running animations are finished
// before Run returns.
func (s *Session) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	uiDone := make(chan struct{})

	g.Go(func() error {
		defer s.engine.Close()
		defer s.anim.CancelAll()
		s.boot()
		s.loop(ctx, uiDone)
		return nil
	})

	g.Go(func() error {
		err := s.ui.Run()
		close(uiDone)
		if err != nil {
			return fmt.Errorf("ui: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// loop is the main event loop.
func (s *Session) loop(ctx context.Context, uiDone <-chan struct{}) {
	events := s.ui.Events()
	var drainTimeout <-chan time.Time

	for {
		if drainTimeout != nil && len(events) == 0 && s.anim.Active() == 0 {
			s.shutdown()
			return
		}

		select {
		case <-ctx.Done():
			s.shutdown()
			return
		case <-s.done:
			return
		case <-uiDone:
			uiDone = nil
			drainTimeout = time.After(drainLimit)
			continue
		case <-drainTimeout:
			log.Warn("session: exiting with %d animations running", s.anim.Active())
			s.shutdown()
			return
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			s.handleEvent(ev)
		case evt := <-s.timerEvents:
			if !s.anim.OnTimer(evt.ID) {
				s.engine.OnTimer(evt.ID, evt.Repeating)
			}
		}
		s.flush()
	}
}

// handleEvent executes a single UI event on the session loop.
func (s *Session) handleEvent(ev ui.Event) {
	switch ev := ev.(type) {
	case ui.KeyPressedMsg:
		if !s.engine.OnKey(string(ev)) {
			s.ui.Print(s.styles.Muted.Render("unbound key: " + string(ev)))
		}
	case ui.WindowSizeChangedMsg:
		s.screen.width = ev.Width
		s.screen.height = ev.Height
		s.anim.Recenter(s.registry.Names())
	default:
		log.Debug("session: unhandled ui event %T", ev)
	}
}

// flush pushes panel snapshots if anything moved and publishes stats.
func (s *Session) flush() {
	s.events++
	if s.dirty {
		s.dirty = false
		s.ui.SetPanels(s.registry.Snapshots())
	}
	s.publishStats()
}

// boot loads the VM state. Errors are shown on screen; the session keeps
// running with whatever loaded.
func (s *Session) boot() {
	if err := s.load(); err != nil {
		s.ui.Print(s.styles.Error.Render(fmt.Sprintf("[System] Boot Error: %v", err)))
		log.Error("boot: %v", err)
	}
	s.flush()
}

func (s *Session) load() error {
	if err := s.engine.Init(); err != nil {
		return err
	}

	// Set config directory
	setupCode := fmt.Sprintf("slide.config_dir = [[%s]]", s.config.ConfigDir)
	if err := s.engine.DoString("boot_config", setupCode); err != nil {
		return err
	}

	// Load core scripts
	if s.config.CoreScripts != nil {
		entries, err := fs.ReadDir(s.config.CoreScripts, "core")
		if err != nil {
			return fmt.Errorf("reading core scripts: %w", err)
		}

		var files []string
		for _, e := range entries {
			if !e.IsDir() {
				files = append(files, e.Name())
			}
		}
		sort.Strings(files)

		for _, file := range files {
			content, err := fs.ReadFile(s.config.CoreScripts, "core/"+file)
			if err != nil {
				return fmt.Errorf("core/%s: %w", file, err)
			}
			if err := s.engine.DoString(file, string(content)); err != nil {
				return fmt.Errorf("core/%s: %w", file, err)
			}
		}
	}

	// Load user init.lua
	if s.config.InitFile != "" {
		if _, err := os.Stat(s.config.InitFile); err == nil {
			if err := s.engine.DoFile(s.config.InitFile); err != nil {
				return fmt.Errorf("%s: %w", filepath.Base(s.config.InitFile), err)
			}
		}
	}

	// Load CLI scripts
	for _, path := range s.config.UserScripts {
		if err := s.engine.DoFile(path); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}

	cfg := s.anim.Config()
	log.Info("boot: %d panels, %d keys bound, step=%d margin=%d interval=%v",
		s.registry.Len(), len(s.engine.BoundKeys()), cfg.Step, cfg.Margin, cfg.Interval)
	return nil
}

// shutdown stops timers and asks the UI to exit. Safe from any goroutine.
func (s *Session) shutdown() {
	s.closeOnce.Do(func() {
		close(s.done)
		s.timer.Close()
		s.ui.Quit()
	})
}

// --- Host Implementation ---

func (s *Session) Print(text string)     { s.ui.Print(text) }
func (s *Session) SetStatus(text string) { s.ui.SetStatus(text) }
func (s *Session) Quit()                 { s.shutdown() }

// DefinePanel renders def as a bordered dialog and registers it. A panel
// redefined while displayed keeps its place and is recentered.
func (s *Session) DefinePanel(name string, def lua.PanelDef) {
	content := s.styles.Dialog(def.Title, def.Body, def.Hint)
	p := s.registry.Register(panel.New(name, content))
	if p.Visible() {
		s.anim.Recenter([]string{name})
	}
	s.dirty = true
}

func (s *Session) Reveal(name string) error {
	return s.anim.Reveal(name)
}

func (s *Session) Conceal(name string, onHidden func()) error {
	return s.anim.Conceal(name, onHidden)
}

func (s *Session) PanelState(name string) (string, error) {
	if _, err := s.registry.Lookup(name); err != nil {
		return "", err
	}
	return s.anim.State(name).String(), nil
}

// TimerAfter schedules a one-shot timer. Returns the timer ID.
func (s *Session) TimerAfter(d time.Duration) int {
	return s.timer.After(d)
}

// TimerEvery schedules a repeating timer. Returns the timer ID.
func (s *Session) TimerEvery(d time.Duration) int {
	return s.timer.Every(d)
}

// TimerCancel cancels a timer by ID.
func (s *Session) TimerCancel(id int) {
	s.timer.Cancel(id)
}

func (s *Session) OnError(err error) {
	s.ui.Print(s.styles.Error.Render(err.Error()))
	log.Error("lua: %v", err)
}

func (s *Session) OnBindsChange() {
	s.ui.SetBinds(s.engine.BoundKeys())
}

// --- Stats ---

// Stats is a point-in-time view of the session for the debug monitor.
type Stats struct {
	EventsProcessed uint64
	TimerQueueLen   int
	TimerQueueCap   int
	Timers          int // Scheduled in the timer service
	LuaCallbacks    int // Timers owned by Lua
	Animations      int
	Panels          int
	VisiblePanels   int
	DroppedEvents   int64
	Goroutines      int
}

// publishStats records loop-owned counters. Runs on the session loop.
func (s *Session) publishStats() {
	st := &Stats{
		EventsProcessed: s.events,
		LuaCallbacks:    s.engine.TimerCallbacks(),
		Animations:      s.anim.Active(),
		Panels:          s.registry.Len(),
		VisiblePanels:   len(s.registry.Snapshots()),
	}
	s.stats.Store(st)
}

// Stats returns the latest statistics. Safe from any goroutine.
func (s *Session) Stats() Stats {
	st := *s.stats.Load()
	st.TimerQueueLen = len(s.timerEvents)
	st.TimerQueueCap = cap(s.timerEvents)
	st.Timers = s.timer.Active()
	st.Goroutines = runtime.NumGoroutine()
	if d, ok := s.ui.(interface{ Dropped() int64 }); ok {
		st.DroppedEvents = d.Dropped()
	}
	return st
}
