// Package timer implements the cooperative timer set that drives the
// ghost's animations. Every behavior owns an independent timer; a one-shot
// timer reschedules itself from its own callback. All timers advance on the
// UI tick, so callbacks never race and stopping a timer is an immediate,
// reliable cancellation.
package timer

import "time"

// Timer is a single one-shot or repeating countdown. Timers are created
// through Set.New and fired by Set.Advance; callbacks run on the caller's
// goroutine and may freely start or stop any timer, including their own.
type Timer struct {
	fn        func()
	remaining time.Duration
	interval  time.Duration // > 0 for repeating timers
	active    bool
}

// Start arms the timer as a one-shot firing after d. Restarting an active
// timer replaces its pending deadline.
func (t *Timer) Start(d time.Duration) {
	t.remaining = d
	t.interval = 0
	t.active = true
}

// StartRepeating arms the timer to fire every d until stopped.
func (t *Timer) StartRepeating(d time.Duration) {
	t.remaining = d
	t.interval = d
	t.active = true
}

// Stop cancels any pending firing. A stopped timer never fires until it is
// started again.
func (t *Timer) Stop() {
	t.active = false
}

// Active reports whether a firing is pending.
func (t *Timer) Active() bool {
	return t.active
}

// Remaining returns the time left until the next firing.
func (t *Timer) Remaining() time.Duration {
	return t.remaining
}

// Set owns a group of timers advanced together.
type Set struct {
	timers []*Timer
}

// New registers a timer with the given callback. The timer starts stopped.
func (s *Set) New(fn func()) *Timer {
	t := &Timer{fn: fn}
	s.timers = append(s.timers, t)
	return t
}

// Advance moves time forward by dt and fires every due timer. Repeating
// timers catch up when dt spans several periods. Timers created during a
// callback are not advanced until the next call.
func (s *Set) Advance(dt time.Duration) {
	n := len(s.timers)
	for i := 0; i < n; i++ {
		t := s.timers[i]
		if !t.active {
			continue
		}
		t.remaining -= dt
		for t.active && t.remaining <= 0 {
			if t.interval > 0 {
				t.remaining += t.interval
			} else {
				t.active = false
			}
			t.fn()
		}
	}
}
