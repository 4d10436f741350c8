package engine

import "time"

// Clock abstracts time.Now() so every calculator can be driven by an explicit
// "now" in tests. No core function reads the system clock directly.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}
