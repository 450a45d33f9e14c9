package domain

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// clock is a package-level time source so tests can freeze time via SetClock.
// Production code uses the real clock; tests inject a fake for deterministic
// report dates and filenames.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source for report timestamps. Pass nil to reset to
// real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}

// Now returns the current instant from the active clock, in UTC.
func Now() time.Time {
	return clock.Now().UTC()
}

// NowAST returns the current instant in the report's fixed AST offset.
func NowAST() time.Time {
	return clock.Now().In(AST)
}
