package testutil

import "time"

// NowAt returns a clock function fixed at the provided time.
func NowAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// SteppingClock returns a clock that starts at t and a step function that
// advances it.
func SteppingClock(t time.Time) (func() time.Time, func(d time.Duration)) {
	current := t
	now := func() time.Time { return current }
	step := func(d time.Duration) { current = current.Add(d) }
	return now, step
}
