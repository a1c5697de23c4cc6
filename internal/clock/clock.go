// Package clock supplies the time source used for metadata timestamps.
//
// Metadata stores times as floating point seconds since the Unix epoch, so the
// package also converts between time.Time and that representation.
package clock

import (
	"math"
	"time"
)

// Clock provides an abstraction for time operations to enable deterministic testing.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system time.
type RealClock struct{}

// Now returns the current system time.
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// FakeClock implements Clock with a fixed time for testing.
type FakeClock struct {
	current time.Time
}

// NewFakeClock creates a new FakeClock with the given time.
func NewFakeClock(t time.Time) *FakeClock {
	return &FakeClock{current: t}
}

// Now returns the fixed time.
func (c *FakeClock) Now() time.Time {
	return c.current
}

// Advance moves the fixed time forward by the given duration.
func (c *FakeClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}

// EpochSeconds converts t to seconds since the Unix epoch with sub-second precision.
func EpochSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}

// FromEpochSeconds is the inverse of EpochSeconds, rounded to the microsecond.
// A zero value maps to the zero time.
func FromEpochSeconds(s float64) time.Time {
	if s == 0 {
		return time.Time{}
	}
	sec, frac := math.Modf(s)
	usec := math.Round(frac * 1e6)
	return time.Unix(int64(sec), int64(usec)*int64(time.Microsecond))
}
