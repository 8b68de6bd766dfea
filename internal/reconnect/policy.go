package reconnect

import "time"

// Policy decides how long to wait before the next connection attempt.
// Retries are unlimited.
type Policy struct {
	// Delay is waited before every retry, whatever the attempt number.
	Delay time.Duration
}

// NextDelay returns the wait before retry number attempt (1-based).
func (p Policy) NextDelay(attempt int) time.Duration {
	return p.Delay
}
