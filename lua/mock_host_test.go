package lua

import (
	"fmt"
	"sort"
	"time"
)

// MockHost implements Host for testing.
// Conceal callbacks are held until the test completes the animation with
// FinishConceals, the way the animator would once a panel is hidden.
type MockHost struct {
	// Captured calls
	PrintCalls   []string
	StatusCalls  []string
	QuitCalled   bool
	RevealCalls  []string
	ConcealCalls []string
	Errors       []error
	BindChanges  int

	Panels map[string]PanelDef

	pendingHidden map[string]func()
	shown         map[string]bool

	ScheduledTimers map[int]struct {
		Duration time.Duration
		Repeat   bool
	}
	CancelledTimers []int

	// Timer ID generation
	nextTimerID int
}

func NewMockHost() *MockHost {
	return &MockHost{
		Panels:        make(map[string]PanelDef),
		pendingHidden: make(map[string]func()),
		shown:         make(map[string]bool),
		ScheduledTimers: make(map[int]struct {
			Duration time.Duration
			Repeat   bool
		}),
	}
}

func (m *MockHost) Print(text string)     { m.PrintCalls = append(m.PrintCalls, text) }
func (m *MockHost) SetStatus(text string) { m.StatusCalls = append(m.StatusCalls, text) }
func (m *MockHost) Quit()                 { m.QuitCalled = true }
func (m *MockHost) OnError(err error)     { m.Errors = append(m.Errors, err) }
func (m *MockHost) OnBindsChange()        { m.BindChanges++ }

func (m *MockHost) DefinePanel(name string, def PanelDef) {
	m.Panels[name] = def
}

func (m *MockHost) Reveal(name string) error {
	if _, ok := m.Panels[name]; !ok {
		return fmt.Errorf("%q: panel not found", name)
	}
	m.RevealCalls = append(m.RevealCalls, name)
	m.shown[name] = true
	return nil
}

func (m *MockHost) Conceal(name string, onHidden func()) error {
	if _, ok := m.Panels[name]; !ok {
		return fmt.Errorf("%q: panel not found", name)
	}
	m.ConcealCalls = append(m.ConcealCalls, name)
	m.shown[name] = false
	if onHidden != nil {
		m.pendingHidden[name] = onHidden
	}
	return nil
}

// PanelState reports "shown" between a reveal and a conceal, else "hidden".
func (m *MockHost) PanelState(name string) (string, error) {
	if _, ok := m.Panels[name]; !ok {
		return "", fmt.Errorf("%q: panel not found", name)
	}
	if m.shown[name] {
		return "shown", nil
	}
	return "hidden", nil
}

// FinishConceals runs the pending hidden callbacks in name order.
func (m *MockHost) FinishConceals() {
	names := make([]string, 0, len(m.pendingHidden))
	for name := range m.pendingHidden {
		names = append(names, name)
	}
	sort.Strings(names)

	pending := m.pendingHidden
	m.pendingHidden = make(map[string]func())
	for _, name := range names {
		pending[name]()
	}
}

func (m *MockHost) TimerAfter(d time.Duration) int {
	return m.addTimer(d, false)
}

func (m *MockHost) TimerEvery(d time.Duration) int {
	return m.addTimer(d, true)
}

func (m *MockHost) addTimer(d time.Duration, repeat bool) int {
	m.nextTimerID++
	m.ScheduledTimers[m.nextTimerID] = struct {
		Duration time.Duration
		Repeat   bool
	}{d, repeat}
	return m.nextTimerID
}

func (m *MockHost) TimerCancel(id int) {
	m.CancelledTimers = append(m.CancelledTimers, id)
	delete(m.ScheduledTimers, id)
}
