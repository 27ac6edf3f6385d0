package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/drake/slide/panel"
)

// ConsoleUI is a line-oriented UI for pipes and dumb terminals. Each input
// line is a key name and is forwarded as-is; the Session ignores unbound
// keys. Panels are reported as they appear, come to rest, and disappear
// instead of being drawn.
type ConsoleUI struct {
	in  io.Reader
	out io.Writer

	events chan Event
	done   chan struct{}

	mu       sync.Mutex
	resting  map[string]bool // Panels last seen at Top 0
	visible  map[string]bool
	doneOnce sync.Once
}

// NewConsoleUI creates a console UI reading keys from in and writing to out.
func NewConsoleUI(in io.Reader, out io.Writer) *ConsoleUI {
	return &ConsoleUI{
		in:      in,
		out:     out,
		events:  make(chan Event, 256),
		done:    make(chan struct{}),
		resting: make(map[string]bool),
		visible: make(map[string]bool),
	}
}

// Events returns the channel of UI events. It closes after Run returns.
func (c *ConsoleUI) Events() <-chan Event {
	return c.events
}

// Print writes a line.
func (c *ConsoleUI) Print(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out, text)
}

// SetStatus writes a status line; empty status is not shown.
func (c *ConsoleUI) SetStatus(text string) {
	if text == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.out, "[status] %s\n", text)
}

// SetPanels reports panel transitions.
func (c *ConsoleUI) SetPanels(panels []panel.Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	seen := make(map[string]bool, len(panels))
	for _, p := range panels {
		seen[p.Name] = true
		if !c.visible[p.Name] {
			c.visible[p.Name] = true
			fmt.Fprintf(c.out, "[panel %s] revealing\n", p.Name)
		}
		atRest := p.Top == 0
		if atRest && !c.resting[p.Name] {
			fmt.Fprintf(c.out, "[panel %s] shown\n", p.Name)
		}
		c.resting[p.Name] = atRest
	}

	for name := range c.visible {
		if !seen[name] {
			delete(c.visible, name)
			delete(c.resting, name)
			fmt.Fprintf(c.out, "[panel %s] hidden\n", name)
		}
	}
}

// SetBinds is a no-op: every line is forwarded.
func (c *ConsoleUI) SetBinds(keys []string) {}

// Run reads key lines until input ends or Quit is called.
func (c *ConsoleUI) Run() error {
	defer close(c.events)

	scanDone := make(chan error, 1)
	lines := make(chan string)

	go func() {
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-c.done:
				return
			}
		}
		scanDone <- scanner.Err()
	}()

	for {
		select {
		case <-c.done:
			return nil
		case err := <-scanDone:
			return err
		case line := <-lines:
			key := strings.TrimSpace(line)
			if key == "" {
				continue
			}
			select {
			case c.events <- KeyPressedMsg(key):
			case <-c.done:
				return nil
			}
		}
	}
}

// Quit requests the console UI to exit.
func (c *ConsoleUI) Quit() {
	c.doneOnce.Do(func() {
		close(c.done)
	})
}
