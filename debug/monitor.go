// Package debug provides runtime monitoring and diagnostics.
package debug

import (
	"context"
	"os"
	"time"

	"github.com/drake/slide/internal/log"
	"github.com/drake/slide/session"
)

// Enabled returns true if debug mode is active (SLIDE_DEBUG=1).
func Enabled() bool {
	return os.Getenv("SLIDE_DEBUG") == "1"
}

// StatsSource reports session statistics.
type StatsSource interface {
	Stats() session.Stats
}

// Monitor periodically logs session statistics when debug mode is enabled.
type Monitor struct {
	source   StatsSource
	interval time.Duration
	ctx      context.Context
}

// NewMonitor creates a new monitor for the given session.
// If debug mode is not enabled, returns nil.
func NewMonitor(ctx context.Context, s StatsSource) *Monitor {
	if !Enabled() {
		return nil
	}

	return &Monitor{
		source:   s,
		interval: 5 * time.Second,
		ctx:      ctx,
	}
}

// Start begins the monitoring loop in a goroutine.
func (m *Monitor) Start() {
	if m == nil {
		return
	}
	go m.run()
}

func (m *Monitor) run() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	log.Debug("monitor started")

	for {
		select {
		case <-m.ctx.Done():
			log.Debug("monitor stopped")
			return
		case <-ticker.C:
			m.logStats()
		}
	}
}

func (m *Monitor) logStats() {
	s := m.source.Stats()

	log.Debug("events=%d timerQ=%d/%d goroutines=%d dropped=%d | panels=%d visible=%d anim=%d | timers=%d lua=%d",
		s.EventsProcessed,
		s.TimerQueueLen, s.TimerQueueCap,
		s.Goroutines,
		s.DroppedEvents,
		s.Panels,
		s.VisiblePanels,
		s.Animations,
		s.Timers,
		s.LuaCallbacks,
	)
}
