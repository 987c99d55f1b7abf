package clock

import "time"

// Clock provides time operations that can be mocked for testing.
// Rounds are stamped with Now and timed with Since.
type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}

// SystemClock implements Clock using the system clock
type SystemClock struct{}

// New creates a new SystemClock
func New() *SystemClock {
	return &SystemClock{}
}

// Now returns the current time
func (c *SystemClock) Now() time.Time {
	return time.Now()
}

// Since returns the time elapsed since t
func (c *SystemClock) Since(t time.Time) time.Duration {
	return time.Since(t)
}
