package testutil

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// FixedTime is the instant fake clocks start at.
var FixedTime = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

// NewFakeClock returns a clockwork fake clock positioned at FixedTime.
func NewFakeClock() *clockwork.FakeClock {
	return clockwork.NewFakeClockAt(FixedTime)
}
