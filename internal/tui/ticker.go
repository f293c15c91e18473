package tui

import "time"

// tickBuffer bounds how many undelivered ticks can queue while the
// consumer stalls. Ticks are never dropped: if the UI hangs, queued ticks
// drain one per update pass afterwards, fast-forwarding the display to
// stay wall-clock accurate. The buffer only delays the producer once a
// stall exceeds a full minute of ticks.
const tickBuffer = 64

// Ticker is a background time source emitting one event per interval for
// the lifetime of the process. Its period is measured as sleep-then-send,
// so scheduling jitter can accumulate over a long run; there is no drift
// correction. It has no shutdown signal and is abandoned at process exit,
// which follows loop termination almost immediately.
type Ticker struct {
	interval time.Duration
	ch       chan time.Time
}

// NewTicker creates a ticker with the given interval. Production code
// uses one second; tests inject shorter intervals.
func NewTicker(interval time.Duration) *Ticker {
	return &Ticker{
		interval: interval,
		ch:       make(chan time.Time, tickBuffer),
	}
}

// Start launches the producer goroutine. Call once.
func (t *Ticker) Start() {
	go func() {
		for {
			time.Sleep(t.interval)
			t.ch <- time.Now()
		}
	}()
}

// C returns the tick channel. The ticker is the sole producer and the
// update loop the sole consumer, so no further synchronization is needed.
func (t *Ticker) C() <-chan time.Time {
	return t.ch
}
