package ui

import (
	"github.com/drake/slide/panel"
)

// Event is sent from the UI to the Session.
type Event any

// KeyPressedMsg reports a key press.
type KeyPressedMsg string

// WindowSizeChangedMsg reports a terminal resize.
type WindowSizeChangedMsg struct {
	Width  int
	Height int
}

// PrintLineMsg appends a line to the scrollback.
type PrintLineMsg string

// StatusMsg replaces the status line text.
type StatusMsg string

// PanelsMsg replaces the set of visible panels.
type PanelsMsg []panel.Snapshot

// BindsMsg replaces the set of keys forwarded to the Session.
type BindsMsg []string
