package buffer

import (
	"sync/atomic"

	"github.com/drake/slide/internal/log"
)

// Counter tracks items a queue had to drop. The zero value is ready to use.
type Counter struct {
	n atomic.Int64
}

// Dropped returns the number of dropped items.
func (c *Counter) Dropped() int64 {
	if c == nil {
		return 0
	}
	return c.n.Load()
}

// Unbounded creates a channel buffer that grows as needed, so producers never
// block on a slow consumer. Past hardLimit queued items the oldest item is
// dropped and counted in drops (which may be nil).
//
//	in, out := buffer.Unbounded[ui.Event](64, 10000, &drops)
//	in <- ev
//	ev = <-out
//
// Closing in flushes the queue and closes out.
func Unbounded[T any](initialCap, hardLimit int, drops *Counter) (chan<- T, <-chan T) {
	in := make(chan T, 10)
	out := make(chan T, 10)

	go func() {
		defer close(out)

		queue := make([]T, 0, initialCap)

		for {
			var next T
			var downstream chan T

			// The send case is only live while something is queued
			if len(queue) > 0 {
				next = queue[0]
				downstream = out
			}

			select {
			case val, ok := <-in:
				if !ok {
					for _, item := range queue {
						out <- item
					}
					return
				}

				if len(queue) >= hardLimit {
					log.Warn("buffer: queue limit %d reached, dropping oldest item", hardLimit)
					if drops != nil {
						drops.n.Add(1)
					}
					queue = queue[1:]
				}
				queue = append(queue, val)

			case downstream <- next:
				queue = queue[1:]
			}
		}
	}()

	return in, out
}
