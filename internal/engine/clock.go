package engine

import "time"

// Clock abstracts time.Now() to allow deterministic testing.
// The UI ticks it once per second for digital displays and at the hand
// refresh cadence for analog faces; Project is called with the result.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
