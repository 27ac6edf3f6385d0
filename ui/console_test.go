package ui

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/drake/slide/panel"
)

func TestConsoleForwardsEveryKey(t *testing.T) {
	var out bytes.Buffer
	c := NewConsoleUI(strings.NewReader("d\n\n  y  \nq\n"), &out)

	errc := make(chan error, 1)
	go func() { errc <- c.Run() }()

	var got []Event
	for ev := range c.Events() {
		got = append(got, ev)
	}
	if err := <-errc; err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := []Event{KeyPressedMsg("d"), KeyPressedMsg("y"), KeyPressedMsg("q")}
	if len(got) != len(want) {
		t.Fatalf("expected %d events, got %#v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d: got %#v, want %#v", i, got[i], want[i])
		}
	}
}

func TestConsoleReportsPanelTransitions(t *testing.T) {
	var out bytes.Buffer
	c := NewConsoleUI(strings.NewReader(""), &out)

	c.SetPanels([]panel.Snapshot{{Name: "confirm", Top: -5}})
	c.SetPanels([]panel.Snapshot{{Name: "confirm", Top: 0}})
	c.SetPanels([]panel.Snapshot{{Name: "confirm", Top: 0}})
	c.SetPanels(nil)
	c.SetStatus("")
	c.SetStatus("CONFIRM --> delete")

	want := "[panel confirm] revealing\n" +
		"[panel confirm] shown\n" +
		"[panel confirm] hidden\n" +
		"[status] CONFIRM --> delete\n"
	if out.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestConsoleQuit(t *testing.T) {
	r, w := newBlockingReader()
	defer w()

	c := NewConsoleUI(r, &bytes.Buffer{})
	errc := make(chan error, 1)
	go func() { errc <- c.Run() }()

	c.Quit()
	c.Quit()

	select {
	case err := <-errc:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Quit")
	}
	if _, ok := <-c.Events(); ok {
		t.Error("events channel should be closed")
	}
}

// blockingReader never returns data until released.
type blockingReader struct{ release chan struct{} }

func newBlockingReader() (*blockingReader, func()) {
	r := &blockingReader{release: make(chan struct{})}
	return r, func() { close(r.release) }
}

func (r *blockingReader) Read(p []byte) (int, error) {
	<-r.release
	return 0, io.EOF
}
