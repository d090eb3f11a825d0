package hal

import "time"

// monotonicClock derives wrapping counters from the runtime clock. Works on
// the host and under TinyGo.
type monotonicClock struct {
	start time.Time
}

// NewClock returns a Clock that counts from now.
func NewClock() Clock {
	return &monotonicClock{start: time.Now()}
}

func (c *monotonicClock) Millis() uint32 {
	return uint32(time.Since(c.start).Milliseconds())
}

func (c *monotonicClock) Micros() uint32 {
	return uint32(time.Since(c.start).Microseconds())
}
