// Package debounce delays an action until its trigger has been quiet for a fixed interval.
package debounce

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// DefaultDelay is the quiet period used when none is configured.
const DefaultDelay = 500 * time.Millisecond

// Debouncer runs only the most recently triggered function, once the delay
// has elapsed without another trigger.
type Debouncer struct {
	clock clockwork.Clock
	delay time.Duration

	mu      sync.Mutex
	pending *pending
	stopped bool
}

type pending struct {
	fn     func()
	timer  clockwork.Timer
	cancel chan struct{}
}

// New creates a debouncer. A nil clock uses the real clock; delay <= 0 uses DefaultDelay.
func New(clock clockwork.Clock, delay time.Duration) *Debouncer {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{clock: clock, delay: delay}
}

// Delay returns the configured quiet period.
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

// Trigger (re)starts the timer with fn as the action to run.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped || fn == nil {
		return
	}
	d.cancelLocked()

	p := &pending{
		fn:     fn,
		timer:  d.clock.NewTimer(d.delay),
		cancel: make(chan struct{}),
	}
	d.pending = p
	go d.wait(p)
}

// Flush runs the pending action now, if any.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	p := d.pending
	if p == nil {
		d.mu.Unlock()
		return
	}
	d.cancelLocked()
	d.mu.Unlock()
	p.fn()
}

// Stop drops the pending action and ignores later triggers.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	d.cancelLocked()
}

// Pending reports whether an action is waiting to run.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}

func (d *Debouncer) wait(p *pending) {
	select {
	case <-p.timer.Chan():
	case <-p.cancel:
		return
	}

	d.mu.Lock()
	if d.pending != p {
		d.mu.Unlock()
		return
	}
	d.pending = nil
	d.mu.Unlock()
	p.fn()
}

func (d *Debouncer) cancelLocked() {
	if d.pending == nil {
		return
	}
	stopAndDrainTimer(d.pending.timer)
	close(d.pending.cancel)
	d.pending = nil
}

func stopAndDrainTimer(timer clockwork.Timer) {
	if !timer.Stop() {
		select {
		case <-timer.Chan():
		default:
		}
	}
}
