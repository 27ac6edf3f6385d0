package timer

import (
	"sync"
	"time"
)

// Event is sent when a timer fires.
type Event struct {
	ID        int
	Repeating bool
}

// Service hands out timer IDs and turns elapsed timers into Events.
// It never runs callbacks itself: the receiver of the events channel maps
// IDs back to work, so everything runs on the receiver's goroutine.
// Repeating timers use fixed-interval semantics.
//
// A one-shot event is always delivered unless the service is closed first.
// A repeating tick is dropped if the receiver is behind.
type Service struct {
	events chan<- Event
	timers map[int]*entry
	nextID int
	mu     sync.Mutex

	done      chan struct{}
	closeOnce sync.Once

	afterFunc func(d time.Duration, f func()) func() bool
}

type entry struct {
	interval time.Duration // 0 = one-shot, >0 = repeating
	stop     func() bool
}

// NewService creates a timer service that sends fired timer events.
func NewService(events chan<- Event) *Service {
	return &Service{
		events: events,
		timers: make(map[int]*entry),
		done:   make(chan struct{}),
		afterFunc: func(d time.Duration, f func()) func() bool {
			return time.AfterFunc(d, f).Stop
		},
	}
}

// After schedules a one-shot timer. Returns the timer ID.
func (s *Service) After(d time.Duration) int {
	return s.schedule(d, 0)
}

// Every schedules a repeating timer. Returns the timer ID.
func (s *Service) Every(d time.Duration) int {
	return s.schedule(d, d)
}

func (s *Service) schedule(d, interval time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID

	s.timers[id] = &entry{
		interval: interval,
		stop:     s.afterFunc(d, func() { s.fire(id) }),
	}

	return id
}

// fire sends the event and re-arms repeating timers.
func (s *Service) fire(id int) {
	s.mu.Lock()
	e, ok := s.timers[id]
	if !ok {
		s.mu.Unlock()
		return // Cancelled before firing
	}

	repeating := e.interval > 0
	if repeating {
		e.stop = s.afterFunc(e.interval, func() { s.fire(id) })
	} else {
		delete(s.timers, id)
	}
	s.mu.Unlock()

	ev := Event{ID: id, Repeating: repeating}
	if repeating {
		select {
		case s.events <- ev:
		default:
			// Receiver is behind; the next tick replaces this one
		}
		return
	}

	select {
	case s.events <- ev:
	case <-s.done:
	}
}

// Cancel stops a timer and removes it.
func (s *Service) Cancel(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.timers[id]; ok {
		e.stop()
		delete(s.timers, id)
	}
}

// CancelAll stops all timers.
func (s *Service) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.timers {
		e.stop()
	}
	s.timers = make(map[int]*entry)
}

// Active returns the number of scheduled timers.
func (s *Service) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Close cancels all timers and releases fires waiting on the receiver.
func (s *Service) Close() {
	s.CancelAll()
	s.closeOnce.Do(func() {
		close(s.done)
	})
}
