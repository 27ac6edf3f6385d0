package ui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/drake/slide/internal/buffer"
	"github.com/drake/slide/panel"
)

// BubbleTeaUI runs the Model and bridges it to the Session's channels.
type BubbleTeaUI struct {
	program *tea.Program

	// Message queue - buffered channel drained by a single goroutine.
	// This decouples callers from tea.Program.Send() which can block.
	msgQueue chan tea.Msg

	// Outbound events from the Model to the Session. Unbounded so the
	// Bubble Tea loop never waits on the Session.
	eventsIn chan<- Event
	events   <-chan Event
	drops    buffer.Counter

	// Shutdown coordination
	done     chan struct{}
	doneOnce sync.Once
}

// NewBubbleTeaUI creates a new Bubble Tea-based UI. Extra options are passed
// to tea.NewProgram after the defaults.
func NewBubbleTeaUI(opts ...tea.ProgramOption) *BubbleTeaUI {
	b := &BubbleTeaUI{
		msgQueue: make(chan tea.Msg, 4096),
		done:     make(chan struct{}),
	}
	b.eventsIn, b.events = buffer.Unbounded[Event](64, 10000, &b.drops)

	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	b.program = tea.NewProgram(NewModel(b.eventsIn), opts...)
	return b
}

// send queues a message for delivery to the Bubble Tea program.
func (b *BubbleTeaUI) send(msg tea.Msg) {
	select {
	case <-b.done:
	case b.msgQueue <- msg:
	}
}

// Events returns the channel of UI events. It closes after Run returns.
func (b *BubbleTeaUI) Events() <-chan Event {
	return b.events
}

// Print appends a line to the scrollback.
func (b *BubbleTeaUI) Print(text string) {
	b.send(PrintLineMsg(text))
}

// SetStatus replaces the status line.
func (b *BubbleTeaUI) SetStatus(text string) {
	b.send(StatusMsg(text))
}

// SetPanels replaces the visible panels.
func (b *BubbleTeaUI) SetPanels(panels []panel.Snapshot) {
	b.send(PanelsMsg(panels))
}

// SetBinds replaces the keys forwarded as KeyPressedMsg.
func (b *BubbleTeaUI) SetBinds(keys []string) {
	b.send(BindsMsg(keys))
}

// Dropped returns the number of UI events lost to a stalled Session.
func (b *BubbleTeaUI) Dropped() int64 {
	return b.drops.Dropped()
}

// Run starts the TUI and blocks until exit.
func (b *BubbleTeaUI) Run() error {
	// Single goroutine drains message queue to Bubble Tea.
	// This can block on Send() without affecting producers.
	go func() {
		for {
			select {
			case <-b.done:
				return
			case msg := <-b.msgQueue:
				b.program.Send(msg)
			}
		}
	}()

	_, err := b.program.Run()

	b.doneOnce.Do(func() {
		close(b.done)
	})
	// Update is no longer called, so nothing sends on eventsIn
	close(b.eventsIn)

	return err
}

// Quit signals the TUI to exit.
func (b *BubbleTeaUI) Quit() {
	b.program.Quit()
}
