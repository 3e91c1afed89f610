package drill

import "time"

// Clock reports monotonic elapsed time.
type Clock interface {
	Now() time.Duration
}

// MonotonicClock measures time since it was created.
type MonotonicClock struct {
	start time.Time
}

// NewMonotonicClock starts a clock at zero.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

// Now returns the elapsed time since the clock started. time.Since uses
// the monotonic reading, so wall clock changes do not move it backwards.
func (c *MonotonicClock) Now() time.Duration {
	return time.Since(c.start)
}
