package debounce

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func waitForTimer(t *testing.T, clock *clockwork.FakeClock) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := clock.BlockUntilContext(ctx, 1); err != nil {
		t.Fatalf("timer never armed: %v", err)
	}
}

func receive(t *testing.T, ch <-chan string) string {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for debounced call")
		return ""
	}
}

func TestOnlyLastTriggerFires(t *testing.T) {
	clock := clockwork.NewFakeClock()
	d := New(clock, 500*time.Millisecond)
	fired := make(chan string, 3)

	for _, q := range []string{"l", "le", "leb"} {
		q := q
		d.Trigger(func() { fired <- q })
		waitForTimer(t, clock)
		clock.Advance(200 * time.Millisecond)
	}
	clock.Advance(300 * time.Millisecond)

	if got := receive(t, fired); got != "leb" {
		t.Fatalf("expected last trigger, got %s", got)
	}
	select {
	case extra := <-fired:
		t.Fatalf("expected a single call, also got %s", extra)
	case <-time.After(20 * time.Millisecond):
	}
	if d.Pending() {
		t.Fatalf("expected nothing pending after firing")
	}
}

func TestNothingFiresBeforeDelay(t *testing.T) {
	clock := clockwork.NewFakeClock()
	d := New(clock, 0)
	var calls atomic.Int32

	d.Trigger(func() { calls.Add(1) })
	waitForTimer(t, clock)
	clock.Advance(DefaultDelay - time.Millisecond)
	time.Sleep(10 * time.Millisecond)

	if calls.Load() != 0 {
		t.Fatalf("expected no call before delay")
	}
	if !d.Pending() {
		t.Fatalf("expected pending action")
	}
}

func TestFlushRunsPendingImmediately(t *testing.T) {
	clock := clockwork.NewFakeClock()
	d := New(clock, time.Second)
	var calls atomic.Int32

	d.Trigger(func() { calls.Add(1) })
	d.Flush()
	d.Flush()

	if calls.Load() != 1 {
		t.Fatalf("expected exactly one call, got %d", calls.Load())
	}
	clock.Advance(2 * time.Second)
	time.Sleep(10 * time.Millisecond)
	if calls.Load() != 1 {
		t.Fatalf("expected flushed timer not to fire again")
	}
}

func TestStopDropsPendingAndLaterTriggers(t *testing.T) {
	clock := clockwork.NewFakeClock()
	d := New(clock, time.Second)
	var calls atomic.Int32

	d.Trigger(func() { calls.Add(1) })
	d.Stop()
	d.Trigger(func() { calls.Add(1) })
	clock.Advance(2 * time.Second)
	time.Sleep(10 * time.Millisecond)

	if calls.Load() != 0 {
		t.Fatalf("expected no calls after stop, got %d", calls.Load())
	}
	if d.Pending() {
		t.Fatalf("expected nothing pending after stop")
	}
}

func TestNewDefaults(t *testing.T) {
	d := New(nil, -1)
	if d.Delay() != DefaultDelay {
		t.Fatalf("expected default delay, got %s", d.Delay())
	}
	if d.clock == nil {
		t.Fatalf("expected real clock")
	}
}
