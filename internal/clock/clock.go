// Package clock provides helpers for time-related operations.
package clock

import "time"

// Clock reports the current wall clock time.
type Clock interface {
	Now() time.Time
}

// Func adapts a plain function to Clock.
type Func func() time.Time

// Now calls f.
func (f Func) Now() time.Time {
	return f()
}

// System returns a Clock backed by time.Now.
func System() Clock {
	return Func(time.Now)
}

// Fixed returns a Clock frozen at t.
func Fixed(t time.Time) Clock {
	return Func(func() time.Time { return t })
}
